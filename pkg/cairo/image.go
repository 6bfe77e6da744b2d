package cairo

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"io"
	"runtime"

	"github.com/opd-ai/go-cairo/internal/native"
)

var imageFns struct {
	create              func(Format, int32, int32) uintptr
	createFromPNG       func(string) uintptr
	createFromPNGStream func(uintptr, uintptr) uintptr
	getData             func(uintptr) uintptr
	getFormat           func(uintptr) Format
	getWidth            func(uintptr) int32
	getHeight           func(uintptr) int32
	getStride           func(uintptr) int32
}

func init() {
	bind(featureCore, &imageFns.create, "cairo_image_surface_create")
	bind(FeaturePNG, &imageFns.createFromPNG, "cairo_image_surface_create_from_png")
	bind(FeaturePNG, &imageFns.createFromPNGStream, "cairo_image_surface_create_from_png_stream")
	bind(featureCore, &imageFns.getData, "cairo_image_surface_get_data")
	bind(featureCore, &imageFns.getFormat, "cairo_image_surface_get_format")
	bind(featureCore, &imageFns.getWidth, "cairo_image_surface_get_width")
	bind(featureCore, &imageFns.getHeight, "cairo_image_surface_get_height")
	bind(featureCore, &imageFns.getStride, "cairo_image_surface_get_stride")
}

// ImageSurface is a surface backed by pixels in native memory.
type ImageSurface struct {
	*Surface
}

// NewImageSurface allocates a cleared image surface.
func NewImageSurface(format Format, width, height int) (*ImageSurface, error) {
	if err := ensureLoaded(); err != nil {
		return nil, err
	}
	s, err := checkedSurface("image_surface_create", imageFns.create(format, int32(width), int32(height)))
	if err != nil {
		return nil, err
	}
	return &ImageSurface{Surface: s}, nil
}

// NewImageSurfaceFromPNG decodes a PNG file.
func NewImageSurfaceFromPNG(filename string) (*ImageSurface, error) {
	if err := requireFeature(FeaturePNG); err != nil {
		return nil, err
	}
	s, err := checkedSurface("image_surface_create_from_png", imageFns.createFromPNG(filename))
	if err != nil {
		return nil, err
	}
	return &ImageSurface{Surface: s}, nil
}

// NewImageSurfaceFromPNGStream decodes a PNG read from r.
func NewImageSurfaceFromPNGStream(r io.Reader) (*ImageSurface, error) {
	if err := requireFeature(FeaturePNG); err != nil {
		return nil, err
	}
	fn, err := readFuncPtr()
	if err != nil {
		return nil, err
	}
	rs := &readStream{r: r}
	id := closures.Register(rs)
	defer closures.Release(id)

	ptr := imageFns.createFromPNGStream(fn, id)
	if ptr == 0 {
		return nil, StatusNoMemory.errorFor("image_surface_create_from_png_stream")
	}
	s := newSurface(ptr)
	if st := surfaceFns.status(ptr); st != StatusSuccess {
		s.Destroy()
		return nil, streamError("image_surface_create_from_png_stream", st, rs.err)
	}
	return &ImageSurface{Surface: s}, nil
}

// NewImageSurfaceFromImage copies img into a new ARGB32 surface.
func NewImageSurfaceFromImage(img image.Image) (*ImageSurface, error) {
	b := img.Bounds()
	s, err := NewImageSurface(FormatARGB32, b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	s.Flush()
	data, stride := s.Data(), s.Stride()
	for y := 0; y < b.Dy(); y++ {
		row := data[y*stride:]
		for x := 0; x < b.Dx(); x++ {
			r, g, bl, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			px := (a>>8)<<24 | (r>>8)<<16 | (g>>8)<<8 | bl>>8
			binary.NativeEndian.PutUint32(row[x*4:], px)
		}
	}
	s.MarkDirty()
	return s, nil
}

// AsImage returns s as an ImageSurface when it is one.
func (s *Surface) AsImage() (*ImageSurface, bool) {
	if s.Type() != SurfaceTypeImage {
		return nil, false
	}
	return &ImageSurface{Surface: s}, true
}

// Format returns the pixel format.
func (s *ImageSurface) Format() Format {
	defer runtime.KeepAlive(s)
	return imageFns.getFormat(s.raw())
}

// Width returns the width in pixels.
func (s *ImageSurface) Width() int {
	defer runtime.KeepAlive(s)
	return int(imageFns.getWidth(s.raw()))
}

// Height returns the height in pixels.
func (s *ImageSurface) Height() int {
	defer runtime.KeepAlive(s)
	return int(imageFns.getHeight(s.raw()))
}

// Stride returns the length of a row in bytes.
func (s *ImageSurface) Stride() int {
	defer runtime.KeepAlive(s)
	return int(imageFns.getStride(s.raw()))
}

// Data returns the pixel memory in place. The slice is only valid while the
// surface is alive. Call Flush before reading it and MarkDirty after
// writing it.
func (s *ImageSurface) Data() []byte {
	defer runtime.KeepAlive(s)
	ptr := imageFns.getData(s.raw())
	if ptr == 0 {
		return nil
	}
	return native.Bytes(ptr, s.Stride()*s.Height())
}

// Image copies the pixels into a Go image: *image.RGBA for ARGB32 and
// RGB24, *image.Alpha for A8. Other formats return ErrUnsupportedFormat.
func (s *ImageSurface) Image() (image.Image, error) {
	defer runtime.KeepAlive(s)
	s.Flush()
	w, h, stride := s.Width(), s.Height(), s.Stride()
	format := s.Format()
	data := s.Data()
	switch format {
	case FormatARGB32, FormatRGB24:
		img := image.NewRGBA(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			row := data[y*stride:]
			for x := 0; x < w; x++ {
				px := binary.NativeEndian.Uint32(row[x*4:])
				a := uint8(px >> 24)
				if format == FormatRGB24 {
					a = 0xff
				}
				img.SetRGBA(x, y, color.RGBA{R: uint8(px >> 16), G: uint8(px >> 8), B: uint8(px), A: a})
			}
		}
		return img, nil
	case FormatA8:
		img := image.NewAlpha(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			copy(img.Pix[y*img.Stride:y*img.Stride+w], data[y*stride:])
		}
		return img, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}
