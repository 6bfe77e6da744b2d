package cairo

import (
	"runtime"
	"unsafe"
)

var regionFns struct {
	create             func() uintptr
	createRectangle    func(*RectangleInt) uintptr
	createRectangles   func(unsafe.Pointer, int32) uintptr
	copy               func(uintptr) uintptr
	reference          func(uintptr) uintptr
	destroy            func(uintptr)
	equal              func(uintptr, uintptr) int32
	status             func(uintptr) Status
	getExtents         func(uintptr, *RectangleInt)
	numRectangles      func(uintptr) int32
	getRectangle       func(uintptr, int32, *RectangleInt)
	isEmpty            func(uintptr) int32
	containsRectangle  func(uintptr, *RectangleInt) RegionOverlap
	containsPoint      func(uintptr, int32, int32) int32
	translate          func(uintptr, int32, int32)
	subtract           func(uintptr, uintptr) Status
	subtractRectangle  func(uintptr, *RectangleInt) Status
	intersect          func(uintptr, uintptr) Status
	intersectRectangle func(uintptr, *RectangleInt) Status
	union              func(uintptr, uintptr) Status
	unionRectangle     func(uintptr, *RectangleInt) Status
	xor                func(uintptr, uintptr) Status
	xorRectangle       func(uintptr, *RectangleInt) Status
}

func init() {
	c := featureCore
	bind(c, &regionFns.create, "cairo_region_create")
	bind(c, &regionFns.createRectangle, "cairo_region_create_rectangle")
	bind(c, &regionFns.createRectangles, "cairo_region_create_rectangles")
	bind(c, &regionFns.copy, "cairo_region_copy")
	bind(c, &regionFns.reference, "cairo_region_reference")
	bind(c, &regionFns.destroy, "cairo_region_destroy")
	bind(c, &regionFns.equal, "cairo_region_equal")
	bind(c, &regionFns.status, "cairo_region_status")
	bind(c, &regionFns.getExtents, "cairo_region_get_extents")
	bind(c, &regionFns.numRectangles, "cairo_region_num_rectangles")
	bind(c, &regionFns.getRectangle, "cairo_region_get_rectangle")
	bind(c, &regionFns.isEmpty, "cairo_region_is_empty")
	bind(c, &regionFns.containsRectangle, "cairo_region_contains_rectangle")
	bind(c, &regionFns.containsPoint, "cairo_region_contains_point")
	bind(c, &regionFns.translate, "cairo_region_translate")
	bind(c, &regionFns.subtract, "cairo_region_subtract")
	bind(c, &regionFns.subtractRectangle, "cairo_region_subtract_rectangle")
	bind(c, &regionFns.intersect, "cairo_region_intersect")
	bind(c, &regionFns.intersectRectangle, "cairo_region_intersect_rectangle")
	bind(c, &regionFns.union, "cairo_region_union")
	bind(c, &regionFns.unionRectangle, "cairo_region_union_rectangle")
	bind(c, &regionFns.xor, "cairo_region_xor")
	bind(c, &regionFns.xorRectangle, "cairo_region_xor_rectangle")
}

// Region is a set of integer-aligned rectangles, cairo_region_t. The
// set operations modify the receiver in place.
type Region struct {
	object
}

func checkedRegion(op string, ptr uintptr) (*Region, error) {
	if ptr == 0 {
		return nil, StatusNoMemory.errorFor(op)
	}
	r := &Region{}
	track(r, &r.object, "region", ptr, true, regionFns.destroy)
	if err := r.Status(); err != nil {
		r.Destroy()
		return nil, err
	}
	return r, nil
}

// NewRegion creates an empty region, or the union of rects.
func NewRegion(rects ...RectangleInt) (*Region, error) {
	if err := ensureLoaded(); err != nil {
		return nil, err
	}
	switch len(rects) {
	case 0:
		return checkedRegion("region_create", regionFns.create())
	case 1:
		return checkedRegion("region_create_rectangle", regionFns.createRectangle(&rects[0]))
	}
	ptr := regionFns.createRectangles(unsafe.Pointer(&rects[0]), int32(len(rects)))
	runtime.KeepAlive(rects)
	return checkedRegion("region_create_rectangles", ptr)
}

// Copy returns an independent copy.
func (r *Region) Copy() (*Region, error) {
	defer runtime.KeepAlive(r)
	return checkedRegion("region_copy", regionFns.copy(r.raw()))
}

// Reference returns a new proxy sharing the same native region.
func (r *Region) Reference() *Region {
	defer runtime.KeepAlive(r)
	n := &Region{}
	track(n, &n.object, "region", regionFns.reference(r.raw()), true, regionFns.destroy)
	return n
}

// Status returns the region's error state, or nil.
func (r *Region) Status() error {
	defer runtime.KeepAlive(r)
	return regionFns.status(r.raw()).errorFor("region")
}

// Equal reports whether both regions cover the same area.
func (r *Region) Equal(other *Region) bool {
	defer runtime.KeepAlive(r)
	defer runtime.KeepAlive(other)
	return regionFns.equal(r.raw(), other.raw()) != 0
}

// Extents returns the bounding box.
func (r *Region) Extents() RectangleInt {
	defer runtime.KeepAlive(r)
	var e RectangleInt
	regionFns.getExtents(r.raw(), &e)
	return e
}

// Rectangles returns the disjoint rectangles making up the region.
func (r *Region) Rectangles() []RectangleInt {
	defer runtime.KeepAlive(r)
	n := int(regionFns.numRectangles(r.raw()))
	out := make([]RectangleInt, n)
	for i := range out {
		regionFns.getRectangle(r.raw(), int32(i), &out[i])
	}
	return out
}

// Empty reports whether the region covers nothing.
func (r *Region) Empty() bool {
	defer runtime.KeepAlive(r)
	return regionFns.isEmpty(r.raw()) != 0
}

// ContainsRectangle classifies rect against the region.
func (r *Region) ContainsRectangle(rect RectangleInt) RegionOverlap {
	defer runtime.KeepAlive(r)
	return regionFns.containsRectangle(r.raw(), &rect)
}

// ContainsPoint reports whether (x, y) lies inside the region.
func (r *Region) ContainsPoint(x, y int) bool {
	defer runtime.KeepAlive(r)
	return regionFns.containsPoint(r.raw(), int32(x), int32(y)) != 0
}

// Translate moves the region by (dx, dy).
func (r *Region) Translate(dx, dy int) {
	defer runtime.KeepAlive(r)
	regionFns.translate(r.raw(), int32(dx), int32(dy))
}

// Subtract removes other from r.
func (r *Region) Subtract(other *Region) error {
	defer runtime.KeepAlive(r)
	defer runtime.KeepAlive(other)
	return regionFns.subtract(r.raw(), other.raw()).errorFor("region_subtract")
}

// SubtractRectangle removes rect from r.
func (r *Region) SubtractRectangle(rect RectangleInt) error {
	defer runtime.KeepAlive(r)
	return regionFns.subtractRectangle(r.raw(), &rect).errorFor("region_subtract_rectangle")
}

// Intersect keeps only the area r shares with other.
func (r *Region) Intersect(other *Region) error {
	defer runtime.KeepAlive(r)
	defer runtime.KeepAlive(other)
	return regionFns.intersect(r.raw(), other.raw()).errorFor("region_intersect")
}

// IntersectRectangle keeps only the area r shares with rect.
func (r *Region) IntersectRectangle(rect RectangleInt) error {
	defer runtime.KeepAlive(r)
	return regionFns.intersectRectangle(r.raw(), &rect).errorFor("region_intersect_rectangle")
}

// Union adds other to r.
func (r *Region) Union(other *Region) error {
	defer runtime.KeepAlive(r)
	defer runtime.KeepAlive(other)
	return regionFns.union(r.raw(), other.raw()).errorFor("region_union")
}

// UnionRectangle adds rect to r.
func (r *Region) UnionRectangle(rect RectangleInt) error {
	defer runtime.KeepAlive(r)
	return regionFns.unionRectangle(r.raw(), &rect).errorFor("region_union_rectangle")
}

// Xor keeps the area covered by exactly one of r and other.
func (r *Region) Xor(other *Region) error {
	defer runtime.KeepAlive(r)
	defer runtime.KeepAlive(other)
	return regionFns.xor(r.raw(), other.raw()).errorFor("region_xor")
}

// XorRectangle keeps the area covered by exactly one of r and rect.
func (r *Region) XorRectangle(rect RectangleInt) error {
	defer runtime.KeepAlive(r)
	return regionFns.xorRectangle(r.raw(), &rect).errorFor("region_xor_rectangle")
}
