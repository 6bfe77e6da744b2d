package lua

import (
	"fmt"
	"io"

	rt "github.com/arnodel/golua/runtime"

	"github.com/opd-ai/go-cairo/pkg/cairo"
)

// luaWriter forwards each chunk the native library writes to a Lua
// function. A Lua error raised by the function aborts the write.
type luaWriter struct {
	t  *rt.Thread
	fn rt.Value
}

func (w luaWriter) Write(p []byte) (int, error) {
	if _, err := rt.Call1(w.t, w.fn, rt.StringValue(string(p))); err != nil {
		return 0, err
	}
	return len(p), nil
}

// luaReader pulls data from a Lua function called with the number of
// bytes wanted. Returning nil or an empty string ends the stream. A chunk
// longer than requested is kept and served by the following reads.
type luaReader struct {
	t       *rt.Thread
	fn      rt.Value
	pending string
}

func (r *luaReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.pending == "" {
		v, err := rt.Call1(r.t, r.fn, rt.IntValue(int64(len(p))))
		if err != nil {
			return 0, err
		}
		s, ok := v.TryString()
		if !ok || s == "" {
			return 0, io.EOF
		}
		r.pending = s
	}
	n := copy(p, r.pending)
	r.pending = r.pending[n:]
	return n, nil
}

func getFunctionArg(args []rt.Value, idx int) (rt.Value, error) {
	if idx >= len(args) {
		return rt.NilValue, fmt.Errorf("argument %d out of range (have %d)", idx, len(args))
	}
	if args[idx].Type() != rt.FunctionType {
		return rt.NilValue, fmt.Errorf("%w: argument %d is not a function", ErrWrongType, idx)
	}
	return args[idx], nil
}

func (b *Bindings) registerSurfaceFunctions() {
	b.set("image_surface_create", b.imageSurfaceCreate, 3)
	b.set("image_surface_create_from_png", b.imageSurfaceCreateFromPNG, 1)
	b.set("image_surface_create_from_png_stream", b.imageSurfaceCreateFromPNGStream, 1)
	b.set("image_surface_get_width", imageInt((*cairo.ImageSurface).Width), 1)
	b.set("image_surface_get_height", imageInt((*cairo.ImageSurface).Height), 1)
	b.set("image_surface_get_stride", imageInt((*cairo.ImageSurface).Stride), 1)
	b.set("image_surface_get_format", imageInt(func(s *cairo.ImageSurface) int { return int(s.Format()) }), 1)
	b.set("format_stride_for_width", b.formatStrideForWidth, 2)

	b.set("surface_destroy", b.surfaceDestroy, 1)
	b.set("surface_status", b.surfaceStatus, 1)
	b.set("surface_get_reference_count", surfaceInt((*cairo.Surface).ReferenceCount), 1)
	b.set("surface_get_type", surfaceInt(func(s *cairo.Surface) int { return int(s.Type()) }), 1)
	b.set("surface_get_content", surfaceInt(func(s *cairo.Surface) int { return int(s.Content()) }), 1)
	b.set("surface_flush", surfaceVoid((*cairo.Surface).Flush), 1)
	b.set("surface_mark_dirty", surfaceVoid((*cairo.Surface).MarkDirty), 1)
	b.set("surface_show_page", surfaceVoid((*cairo.Surface).ShowPage), 1)
	b.set("surface_copy_page", surfaceVoid((*cairo.Surface).CopyPage), 1)
	b.set("surface_finish", b.surfaceFinish, 1)
	b.set("surface_create_similar", b.surfaceCreateSimilar, 4)
	b.set("surface_create_for_rectangle", b.surfaceCreateForRectangle, 5)
	b.set("surface_set_device_offset", surfaceNumbers(func(s *cairo.Surface, v []float64) { s.SetDeviceOffset(v[0], v[1]) }), 3)
	b.set("surface_get_device_offset", surfacePair((*cairo.Surface).DeviceOffset), 1)
	b.set("surface_set_device_scale", surfaceNumbers(func(s *cairo.Surface, v []float64) { s.SetDeviceScale(v[0], v[1]) }), 3)
	b.set("surface_get_device_scale", surfacePair((*cairo.Surface).DeviceScale), 1)
	b.set("surface_set_fallback_resolution", surfaceNumbers(func(s *cairo.Surface, v []float64) { s.SetFallbackResolution(v[0], v[1]) }), 3)
	b.set("surface_write_to_png", b.surfaceWriteToPNG, 2)
	b.set("surface_write_to_png_stream", b.surfaceWriteToPNGStream, 2)

	b.set("recording_surface_create", b.recordingSurfaceCreate, 5)
	b.set("recording_surface_ink_extents", b.recordingSurfaceInkExtents, 1)
}

func surfaceVoid(fn func(*cairo.Surface)) rt.GoFunctionFunc {
	return func(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
		s, err := getSurfaceArg(getAllArgs(c), 0)
		if err != nil {
			return nil, fmt.Errorf("surface: %w", err)
		}
		fn(s)
		return c.Next(), nil
	}
}

func surfaceInt(fn func(*cairo.Surface) int) rt.GoFunctionFunc {
	return func(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
		s, err := getSurfaceArg(getAllArgs(c), 0)
		if err != nil {
			return nil, fmt.Errorf("surface: %w", err)
		}
		return c.PushingNext1(t.Runtime, rt.IntValue(int64(fn(s)))), nil
	}
}

func surfaceNumbers(fn func(*cairo.Surface, []float64)) rt.GoFunctionFunc {
	return func(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
		args := getAllArgs(c)
		s, err := getSurfaceArg(args, 0)
		if err != nil {
			return nil, fmt.Errorf("surface: %w", err)
		}
		v, err := getFloatArgs(args, 1, 2)
		if err != nil {
			return nil, err
		}
		fn(s, v)
		return c.Next(), nil
	}
}

func surfacePair(fn func(*cairo.Surface) (float64, float64)) rt.GoFunctionFunc {
	return func(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
		s, err := getSurfaceArg(getAllArgs(c), 0)
		if err != nil {
			return nil, fmt.Errorf("surface: %w", err)
		}
		x, y := fn(s)
		return pushFloats(t, c, x, y), nil
	}
}

func getImageSurfaceArg(args []rt.Value, idx int) (*cairo.ImageSurface, error) {
	s, err := getSurfaceArg(args, idx)
	if err != nil {
		return nil, err
	}
	img, ok := s.AsImage()
	if !ok {
		return nil, fmt.Errorf("%w: argument %d is not an image surface", ErrWrongType, idx)
	}
	return img, nil
}

func imageInt(fn func(*cairo.ImageSurface) int) rt.GoFunctionFunc {
	return func(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
		s, err := getImageSurfaceArg(getAllArgs(c), 0)
		if err != nil {
			return nil, fmt.Errorf("surface: %w", err)
		}
		return c.PushingNext1(t.Runtime, rt.IntValue(int64(fn(s)))), nil
	}
}

// imageSurfaceCreate handles cairo_image_surface_create(format, width, height)
func (b *Bindings) imageSurfaceCreate(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	args := getAllArgs(c)
	format, err := getEnumArg(args, 0, cairo.FormatOf)
	if err != nil {
		return nil, fmt.Errorf("format: %w", err)
	}
	width, err := getIntArg(args, 1)
	if err != nil {
		return nil, fmt.Errorf("width: %w", err)
	}
	height, err := getIntArg(args, 2)
	if err != nil {
		return nil, fmt.Errorf("height: %w", err)
	}
	s, err := cairo.NewImageSurface(format, int(width), int(height))
	if err != nil {
		return nil, err
	}
	return c.PushingNext1(t.Runtime, newUserData(s)), nil
}

// imageSurfaceCreateFromPNG handles cairo_image_surface_create_from_png(filename)
func (b *Bindings) imageSurfaceCreateFromPNG(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	filename, err := getStringArg(getAllArgs(c), 0)
	if err != nil {
		return nil, fmt.Errorf("filename: %w", err)
	}
	s, err := cairo.NewImageSurfaceFromPNG(filename)
	if err != nil {
		return nil, err
	}
	return c.PushingNext1(t.Runtime, newUserData(s)), nil
}

// imageSurfaceCreateFromPNGStream handles
// cairo_image_surface_create_from_png_stream(fn). fn(n) returns the next
// chunk of at most n bytes, or nil at the end.
func (b *Bindings) imageSurfaceCreateFromPNGStream(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	fn, err := getFunctionArg(getAllArgs(c), 0)
	if err != nil {
		return nil, fmt.Errorf("reader: %w", err)
	}
	s, err := cairo.NewImageSurfaceFromPNGStream(&luaReader{t: t, fn: fn})
	if err != nil {
		return nil, err
	}
	return c.PushingNext1(t.Runtime, newUserData(s)), nil
}

// formatStrideForWidth handles cairo_format_stride_for_width(format, width)
func (b *Bindings) formatStrideForWidth(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	args := getAllArgs(c)
	format, err := getEnumArg(args, 0, cairo.FormatOf)
	if err != nil {
		return nil, fmt.Errorf("format: %w", err)
	}
	width, err := getIntArg(args, 1)
	if err != nil {
		return nil, fmt.Errorf("width: %w", err)
	}
	return c.PushingNext1(t.Runtime, rt.IntValue(int64(format.StrideForWidth(int(width))))), nil
}

// surfaceDestroy handles cairo_surface_destroy(surface). Destroying twice
// is allowed.
func (b *Bindings) surfaceDestroy(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	args := getAllArgs(c)
	if len(args) == 0 || args[0].IsNil() {
		return c.Next(), nil
	}
	ud, ok := args[0].TryUserData()
	if !ok {
		return nil, fmt.Errorf("%w: argument 0 is not a surface", ErrWrongType)
	}
	switch s := ud.Value().(type) {
	case *cairo.Surface:
		s.Destroy()
	case *cairo.ImageSurface:
		s.Destroy()
	case *cairo.PDFSurface:
		s.Destroy()
	case *cairo.PSSurface:
		s.Destroy()
	case *cairo.SVGSurface:
		s.Destroy()
	case *cairo.RecordingSurface:
		s.Destroy()
	default:
		return nil, fmt.Errorf("%w: argument 0 is not a surface", ErrWrongType)
	}
	return c.Next(), nil
}

// surfaceStatus handles cairo_surface_status(surface)
func (b *Bindings) surfaceStatus(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	s, err := getSurfaceArg(getAllArgs(c), 0)
	if err != nil {
		return nil, fmt.Errorf("surface: %w", err)
	}
	return c.PushingNext1(t.Runtime, statusValue(s.Status())), nil
}

// surfaceFinish handles cairo_surface_finish(surface). Unlike the C call
// it raises an error if a stream writer failed.
func (b *Bindings) surfaceFinish(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	s, err := getSurfaceArg(getAllArgs(c), 0)
	if err != nil {
		return nil, fmt.Errorf("surface: %w", err)
	}
	if err := s.Finish(); err != nil {
		return nil, err
	}
	return c.Next(), nil
}

// surfaceCreateSimilar handles cairo_surface_create_similar(surface, content, width, height)
func (b *Bindings) surfaceCreateSimilar(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	args := getAllArgs(c)
	s, err := getSurfaceArg(args, 0)
	if err != nil {
		return nil, fmt.Errorf("surface: %w", err)
	}
	content, err := getEnumArg(args, 1, cairo.ContentOf)
	if err != nil {
		return nil, fmt.Errorf("content: %w", err)
	}
	width, err := getIntArg(args, 2)
	if err != nil {
		return nil, fmt.Errorf("width: %w", err)
	}
	height, err := getIntArg(args, 3)
	if err != nil {
		return nil, fmt.Errorf("height: %w", err)
	}
	similar, err := s.CreateSimilar(content, int(width), int(height))
	if err != nil {
		return nil, err
	}
	return c.PushingNext1(t.Runtime, newUserData(similar)), nil
}

// surfaceCreateForRectangle handles cairo_surface_create_for_rectangle(surface, x, y, width, height)
func (b *Bindings) surfaceCreateForRectangle(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	args := getAllArgs(c)
	s, err := getSurfaceArg(args, 0)
	if err != nil {
		return nil, fmt.Errorf("surface: %w", err)
	}
	v, err := getFloatArgs(args, 1, 4)
	if err != nil {
		return nil, err
	}
	sub, err := s.CreateForRectangle(v[0], v[1], v[2], v[3])
	if err != nil {
		return nil, err
	}
	return c.PushingNext1(t.Runtime, newUserData(sub)), nil
}

// surfaceWriteToPNG handles cairo_surface_write_to_png(surface, filename)
func (b *Bindings) surfaceWriteToPNG(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	args := getAllArgs(c)
	s, err := getSurfaceArg(args, 0)
	if err != nil {
		return nil, fmt.Errorf("surface: %w", err)
	}
	filename, err := getStringArg(args, 1)
	if err != nil {
		return nil, fmt.Errorf("filename: %w", err)
	}
	if err := s.WriteToPNG(filename); err != nil {
		return nil, err
	}
	return c.Next(), nil
}

// surfaceWriteToPNGStream handles cairo_surface_write_to_png_stream(surface, fn).
// fn is called with each chunk of encoded data as a string.
func (b *Bindings) surfaceWriteToPNGStream(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	args := getAllArgs(c)
	s, err := getSurfaceArg(args, 0)
	if err != nil {
		return nil, fmt.Errorf("surface: %w", err)
	}
	fn, err := getFunctionArg(args, 1)
	if err != nil {
		return nil, fmt.Errorf("writer: %w", err)
	}
	if err := s.WriteToPNGStream(luaWriter{t: t, fn: fn}); err != nil {
		return nil, err
	}
	return c.Next(), nil
}

// recordingSurfaceCreate handles cairo_recording_surface_create(content[, x, y, width, height]).
// Without the rectangle the surface is unbounded.
func (b *Bindings) recordingSurfaceCreate(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	args := getAllArgs(c)
	content, err := getEnumArg(args, 0, cairo.ContentOf)
	if err != nil {
		return nil, fmt.Errorf("content: %w", err)
	}
	var extents *cairo.Rectangle
	if len(args) > 1 && !args[1].IsNil() {
		v, err := getFloatArgs(args, 1, 4)
		if err != nil {
			return nil, fmt.Errorf("extents: %w", err)
		}
		extents = &cairo.Rectangle{X: v[0], Y: v[1], Width: v[2], Height: v[3]}
	}
	s, err := cairo.NewRecordingSurface(content, extents)
	if err != nil {
		return nil, err
	}
	return c.PushingNext1(t.Runtime, newUserData(s)), nil
}

// recordingSurfaceInkExtents handles cairo_recording_surface_ink_extents(surface)
func (b *Bindings) recordingSurfaceInkExtents(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	s, err := getHandleArg[*cairo.RecordingSurface](getAllArgs(c), 0, "recording surface")
	if err != nil {
		return nil, fmt.Errorf("surface: %w", err)
	}
	r := s.InkExtents()
	return pushFloats(t, c, r.X, r.Y, r.Width, r.Height), nil
}
