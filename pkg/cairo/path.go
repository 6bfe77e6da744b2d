package cairo

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/opd-ai/go-cairo/internal/native"
)

var pathFns struct {
	destroy func(uintptr)
}

func init() {
	bind(featureCore, &pathFns.destroy, "cairo_path_destroy")
}

// cPath mirrors cairo_path_t.
type cPath struct {
	Status  Status
	Data    uintptr
	NumData int32
}

// cPathHeader and cPathPoint are the two arms of the cairo_path_data_t
// union. Every element of the data array is pathDataSize bytes wide; a
// header element is followed by Length-1 point elements.
type cPathHeader struct {
	Type   PathDataType
	Length int32
}

type cPathPoint struct {
	X, Y float64
}

const pathDataSize = unsafe.Sizeof(cPathPoint{})

// cRectangleList mirrors cairo_rectangle_list_t.
type cRectangleList struct {
	Status        Status
	Rectangles    uintptr
	NumRectangles int32
}

// PathSegment is one decoded path element.
type PathSegment struct {
	Type   PathDataType
	Points []Point
}

// pointsFor returns how many points follow a header of type t.
func pointsFor(t PathDataType) (int, bool) {
	switch t {
	case PathMoveTo, PathLineTo:
		return 1, true
	case PathCurveTo:
		return 3, true
	case PathClosePath:
		return 0, true
	}
	return 0, false
}

// Path is a native path, cairo_path_t, as returned by Context.CopyPath.
// Its data stays in native memory and is decoded on demand.
type Path struct {
	object
}

func newPath(ptr uintptr) (*Path, error) {
	if ptr == 0 {
		return nil, StatusNoMemory.errorFor("copy_path")
	}
	p := &Path{}
	track(p, &p.object, "path", ptr, true, pathFns.destroy)
	if err := p.Status(); err != nil {
		p.Destroy()
		return nil, err
	}
	return p, nil
}

func (p *Path) header() cPath {
	defer runtime.KeepAlive(p)
	return native.Read[cPath](p.raw(), 0)
}

// Status returns the status the path was created with.
func (p *Path) Status() error {
	return p.header().Status.errorFor("path")
}

// NumData returns the number of union elements in the native data array.
func (p *Path) NumData() int {
	return int(p.header().NumData)
}

// Segments decodes the path into Go values.
func (p *Path) Segments() ([]PathSegment, error) {
	defer runtime.KeepAlive(p)
	h := p.header()
	if h.Status != StatusSuccess {
		return nil, h.Status.errorFor("path")
	}
	return decodePathData(h.Data, int(h.NumData))
}

func decodePathData(data uintptr, num int) ([]PathSegment, error) {
	if num == 0 {
		return nil, nil
	}
	if data == 0 {
		return nil, ErrMalformedPath
	}
	var segs []PathSegment
	for i := 0; i < num; {
		h := native.Read[cPathHeader](data, uintptr(i)*pathDataSize)
		want, ok := pointsFor(h.Type)
		if !ok {
			return nil, fmt.Errorf("%w: element %d has type %d", ErrMalformedPath, i, int32(h.Type))
		}
		if h.Length < 1 || i+int(h.Length) > num || int(h.Length)-1 < want {
			return nil, fmt.Errorf("%w: element %d has length %d", ErrMalformedPath, i, h.Length)
		}
		seg := PathSegment{Type: h.Type}
		if want > 0 {
			seg.Points = make([]Point, want)
			for j := 0; j < want; j++ {
				pt := native.Read[cPathPoint](data, uintptr(i+1+j)*pathDataSize)
				seg.Points[j] = Point{X: pt.X, Y: pt.Y}
			}
		}
		segs = append(segs, seg)
		i += int(h.Length)
	}
	return segs, nil
}

func readRectangleList(ptr uintptr) ([]Rectangle, error) {
	list := native.Read[cRectangleList](ptr, 0)
	if list.Status != StatusSuccess {
		return nil, list.Status.errorFor("rectangle_list")
	}
	if list.NumRectangles <= 0 || list.Rectangles == 0 {
		return nil, nil
	}
	src := unsafe.Slice((*Rectangle)(unsafe.Pointer(list.Rectangles)), list.NumRectangles)
	out := make([]Rectangle, len(src))
	copy(out, src)
	return out, nil
}
