package cairo

import (
	"io"
	"runtime"
)

var surfaceFns struct {
	reference             func(uintptr) uintptr
	destroy               func(uintptr)
	getReferenceCount     func(uintptr) uint32
	status                func(uintptr) Status
	getType               func(uintptr) SurfaceType
	getContent            func(uintptr) Content
	flush                 func(uintptr)
	finish                func(uintptr)
	markDirty             func(uintptr)
	markDirtyRectangle    func(uintptr, int32, int32, int32, int32)
	setDeviceOffset       func(uintptr, float64, float64)
	getDeviceOffset       func(uintptr, *float64, *float64)
	setDeviceScale        func(uintptr, float64, float64)
	getDeviceScale        func(uintptr, *float64, *float64)
	setFallbackResolution func(uintptr, float64, float64)
	getFallbackResolution func(uintptr, *float64, *float64)
	createSimilar         func(uintptr, Content, int32, int32) uintptr
	createSimilarImage    func(uintptr, Format, int32, int32) uintptr
	createForRectangle    func(uintptr, float64, float64, float64, float64) uintptr
	writeToPNG            func(uintptr, string) Status
	writeToPNGStream      func(uintptr, uintptr, uintptr) Status
	showPage              func(uintptr)
	copyPage              func(uintptr)
	hasShowTextGlyphs     func(uintptr) int32
	setUserData           func(uintptr, uintptr, uintptr, uintptr) Status
	getUserData           func(uintptr, uintptr) uintptr
	getDevice             func(uintptr) uintptr
}

func init() {
	c := featureCore
	bind(c, &surfaceFns.reference, "cairo_surface_reference")
	bind(c, &surfaceFns.destroy, "cairo_surface_destroy")
	bind(c, &surfaceFns.getReferenceCount, "cairo_surface_get_reference_count")
	bind(c, &surfaceFns.status, "cairo_surface_status")
	bind(c, &surfaceFns.getType, "cairo_surface_get_type")
	bind(c, &surfaceFns.getContent, "cairo_surface_get_content")
	bind(c, &surfaceFns.flush, "cairo_surface_flush")
	bind(c, &surfaceFns.finish, "cairo_surface_finish")
	bind(c, &surfaceFns.markDirty, "cairo_surface_mark_dirty")
	bind(c, &surfaceFns.markDirtyRectangle, "cairo_surface_mark_dirty_rectangle")
	bind(c, &surfaceFns.setDeviceOffset, "cairo_surface_set_device_offset")
	bind(c, &surfaceFns.getDeviceOffset, "cairo_surface_get_device_offset")
	bind(c, &surfaceFns.setDeviceScale, "cairo_surface_set_device_scale")
	bind(c, &surfaceFns.getDeviceScale, "cairo_surface_get_device_scale")
	bind(c, &surfaceFns.setFallbackResolution, "cairo_surface_set_fallback_resolution")
	bind(c, &surfaceFns.getFallbackResolution, "cairo_surface_get_fallback_resolution")
	bind(c, &surfaceFns.createSimilar, "cairo_surface_create_similar")
	bind(c, &surfaceFns.createSimilarImage, "cairo_surface_create_similar_image")
	bind(c, &surfaceFns.createForRectangle, "cairo_surface_create_for_rectangle")
	bind(FeaturePNG, &surfaceFns.writeToPNG, "cairo_surface_write_to_png")
	bind(FeaturePNG, &surfaceFns.writeToPNGStream, "cairo_surface_write_to_png_stream")
	bind(c, &surfaceFns.showPage, "cairo_surface_show_page")
	bind(c, &surfaceFns.copyPage, "cairo_surface_copy_page")
	bind(c, &surfaceFns.hasShowTextGlyphs, "cairo_surface_has_show_text_glyphs")
	bind(c, &surfaceFns.setUserData, "cairo_surface_set_user_data")
	bind(c, &surfaceFns.getUserData, "cairo_surface_get_user_data")
	bind(c, &surfaceFns.getDevice, "cairo_surface_get_device")
}

// Surface is any cairo_surface_t. Backend-specific operations live on the
// ImageSurface, PDFSurface, PSSurface, SVGSurface and RecordingSurface
// types, which embed *Surface.
//
// A Surface is not safe for concurrent use.
type Surface struct {
	object
}

// newSurface takes ownership of a reference the caller already holds.
func newSurface(ptr uintptr) *Surface {
	s := &Surface{}
	track(s, &s.object, "surface", ptr, true, surfaceFns.destroy)
	return s
}

// refSurface wraps a borrowed pointer, taking a reference of its own.
func refSurface(ptr uintptr) *Surface {
	if ptr == 0 {
		return nil
	}
	return newSurface(surfaceFns.reference(ptr))
}

// checkedSurface wraps a freshly created surface and reports its error
// state, destroying the surface if it is in one.
func checkedSurface(op string, ptr uintptr) (*Surface, error) {
	if ptr == 0 {
		return nil, StatusNoMemory.errorFor(op)
	}
	s := newSurface(ptr)
	if st := surfaceFns.status(ptr); st != StatusSuccess {
		s.Destroy()
		return nil, st.errorFor(op)
	}
	return s, nil
}

// Reference returns a new proxy sharing the same native surface.
func (s *Surface) Reference() *Surface {
	defer runtime.KeepAlive(s)
	return newSurface(surfaceFns.reference(s.raw()))
}

// ReferenceCount returns the native reference count.
func (s *Surface) ReferenceCount() int {
	defer runtime.KeepAlive(s)
	return int(surfaceFns.getReferenceCount(s.raw()))
}

// Status returns the surface's error state, or nil.
func (s *Surface) Status() error {
	defer runtime.KeepAlive(s)
	return surfaceFns.status(s.raw()).errorFor("surface")
}

// Type returns the backend type.
func (s *Surface) Type() SurfaceType {
	defer runtime.KeepAlive(s)
	return surfaceFns.getType(s.raw())
}

// Content returns the content type.
func (s *Surface) Content() Content {
	defer runtime.KeepAlive(s)
	return surfaceFns.getContent(s.raw())
}

// Flush completes pending drawing so the surface memory can be read.
func (s *Surface) Flush() {
	defer runtime.KeepAlive(s)
	surfaceFns.flush(s.raw())
}

// Finish flushes and detaches the surface from its backing resource. For
// document surfaces this writes the trailer; for stream surfaces the
// writer receives its last bytes here.
func (s *Surface) Finish() error {
	defer runtime.KeepAlive(s)
	surfaceFns.finish(s.raw())
	return s.streamStatus("finish")
}

// MarkDirty tells the library the surface memory was changed externally.
func (s *Surface) MarkDirty() {
	defer runtime.KeepAlive(s)
	surfaceFns.markDirty(s.raw())
}

// MarkDirtyRectangle is MarkDirty restricted to a device-space rectangle.
func (s *Surface) MarkDirtyRectangle(x, y, width, height int) {
	defer runtime.KeepAlive(s)
	surfaceFns.markDirtyRectangle(s.raw(), int32(x), int32(y), int32(width), int32(height))
}

// SetDeviceOffset sets an offset added to device coordinates.
func (s *Surface) SetDeviceOffset(x, y float64) {
	defer runtime.KeepAlive(s)
	surfaceFns.setDeviceOffset(s.raw(), x, y)
}

// DeviceOffset returns the device offset.
func (s *Surface) DeviceOffset() (x, y float64) {
	defer runtime.KeepAlive(s)
	surfaceFns.getDeviceOffset(s.raw(), &x, &y)
	return
}

// SetDeviceScale sets a scale multiplied into device coordinates.
func (s *Surface) SetDeviceScale(sx, sy float64) {
	defer runtime.KeepAlive(s)
	surfaceFns.setDeviceScale(s.raw(), sx, sy)
}

// DeviceScale returns the device scale.
func (s *Surface) DeviceScale() (sx, sy float64) {
	defer runtime.KeepAlive(s)
	surfaceFns.getDeviceScale(s.raw(), &sx, &sy)
	return
}

// SetFallbackResolution sets the resolution in pixels per inch used when
// vector backends rasterize unsupported operations.
func (s *Surface) SetFallbackResolution(xppi, yppi float64) {
	defer runtime.KeepAlive(s)
	surfaceFns.setFallbackResolution(s.raw(), xppi, yppi)
}

// FallbackResolution returns the fallback resolution.
func (s *Surface) FallbackResolution() (xppi, yppi float64) {
	defer runtime.KeepAlive(s)
	surfaceFns.getFallbackResolution(s.raw(), &xppi, &yppi)
	return
}

// CreateSimilar creates a surface of the same backend, sized in device
// units.
func (s *Surface) CreateSimilar(content Content, width, height int) (*Surface, error) {
	defer runtime.KeepAlive(s)
	return checkedSurface("surface_create_similar",
		surfaceFns.createSimilar(s.raw(), content, int32(width), int32(height)))
}

// CreateSimilarImage creates an image surface suited for uploading to s.
func (s *Surface) CreateSimilarImage(format Format, width, height int) (*ImageSurface, error) {
	defer runtime.KeepAlive(s)
	base, err := checkedSurface("surface_create_similar_image",
		surfaceFns.createSimilarImage(s.raw(), format, int32(width), int32(height)))
	if err != nil {
		return nil, err
	}
	return &ImageSurface{Surface: base}, nil
}

// CreateForRectangle creates a view onto a region of s. Drawing on the
// view draws on s.
func (s *Surface) CreateForRectangle(x, y, width, height float64) (*Surface, error) {
	defer runtime.KeepAlive(s)
	return checkedSurface("surface_create_for_rectangle",
		surfaceFns.createForRectangle(s.raw(), x, y, width, height))
}

// WriteToPNG writes the surface contents to a PNG file.
func (s *Surface) WriteToPNG(filename string) error {
	defer runtime.KeepAlive(s)
	if err := requireFeature(FeaturePNG); err != nil {
		return err
	}
	return surfaceFns.writeToPNG(s.raw(), filename).errorFor("surface_write_to_png")
}

// WriteToPNGStream encodes the surface contents as PNG into w.
func (s *Surface) WriteToPNGStream(w io.Writer) error {
	defer runtime.KeepAlive(s)
	if err := requireFeature(FeaturePNG); err != nil {
		return err
	}
	fn, err := writeFuncPtr()
	if err != nil {
		return err
	}
	ws := &writeStream{w: w}
	id := closures.Register(ws)
	defer closures.Release(id)

	st := surfaceFns.writeToPNGStream(s.raw(), fn, id)
	return streamError("surface_write_to_png_stream", st, ws.Err())
}

// ShowPage emits the current page of a multi-page surface.
func (s *Surface) ShowPage() {
	defer runtime.KeepAlive(s)
	surfaceFns.showPage(s.raw())
}

// CopyPage emits the current page and keeps its contents.
func (s *Surface) CopyPage() {
	defer runtime.KeepAlive(s)
	surfaceFns.copyPage(s.raw())
}

// HasShowTextGlyphs reports whether the backend preserves text as text.
func (s *Surface) HasShowTextGlyphs() bool {
	defer runtime.KeepAlive(s)
	return surfaceFns.hasShowTextGlyphs(s.raw()) != 0
}

// SetUserData attaches value to the native surface under key. onDestroy,
// if not nil, runs when the value is replaced or the native surface is
// destroyed, which may be after every Go proxy is gone. A nil value
// clears the slot.
func (s *Surface) SetUserData(key UserDataKey, value any, onDestroy func(any)) error {
	defer runtime.KeepAlive(s)
	if value == nil {
		return surfaceFns.setUserData(s.raw(), uintptr(key), 0, 0).errorFor("surface_set_user_data")
	}
	destroy, err := destroyFuncPtr()
	if err != nil {
		return err
	}
	id := closures.Register(&userDataEntry{value: value, onDestroy: onDestroy})
	st := surfaceFns.setUserData(s.raw(), uintptr(key), id, destroy)
	if st != StatusSuccess {
		closures.Release(id)
		return st.errorFor("surface_set_user_data")
	}
	return nil
}

// UserData returns the value attached under key.
func (s *Surface) UserData(key UserDataKey) (any, bool) {
	defer runtime.KeepAlive(s)
	id := surfaceFns.getUserData(s.raw(), uintptr(key))
	if id == 0 {
		return nil, false
	}
	v, ok := closures.Get(id)
	if !ok {
		return nil, false
	}
	ud, ok := v.(*userDataEntry)
	if !ok {
		return nil, false
	}
	return ud.value, true
}

// Device returns the device the surface belongs to, or nil.
func (s *Surface) Device() *Device {
	defer runtime.KeepAlive(s)
	return refDevice(surfaceFns.getDevice(s.raw()))
}

// attachStream ties a writer's closure id to the native surface so it is
// released when the library destroys the surface.
func (s *Surface) attachStream(id uintptr) error {
	defer runtime.KeepAlive(s)
	destroy, err := destroyFuncPtr()
	if err != nil {
		return err
	}
	return surfaceFns.setUserData(s.raw(), uintptr(streamKey), id, destroy).errorFor("surface_set_user_data")
}

// streamStatus folds the writer's first error into the surface status for
// stream-backed surfaces.
func (s *Surface) streamStatus(op string) error {
	defer runtime.KeepAlive(s)
	st := surfaceFns.status(s.raw())
	if id := surfaceFns.getUserData(s.raw(), uintptr(streamKey)); id != 0 {
		if v, ok := closures.Get(id); ok {
			if ws, ok := v.(*writeStream); ok {
				if err := ws.Err(); err != nil {
					return streamError(op, StatusWriteError, err)
				}
			}
		}
	}
	return st.errorFor(op)
}

// createStreamSurface registers w, calls create with the write trampoline
// and the closure id, and attaches the id to the new surface.
func createStreamSurface(op string, w io.Writer, create func(fn, closure uintptr) uintptr) (*Surface, error) {
	fn, err := writeFuncPtr()
	if err != nil {
		return nil, err
	}
	ws := &writeStream{w: w}
	id := closures.Register(ws)
	s, err := checkedSurface(op, create(fn, id))
	if err != nil {
		closures.Release(id)
		return nil, err
	}
	if err := s.attachStream(id); err != nil {
		closures.Release(id)
		s.Destroy()
		return nil, err
	}
	runtime.KeepAlive(ws)
	return s, nil
}

var deviceFns struct {
	reference         func(uintptr) uintptr
	destroy           func(uintptr)
	getReferenceCount func(uintptr) uint32
	status            func(uintptr) Status
	getType           func(uintptr) DeviceType
	flush             func(uintptr)
	finish            func(uintptr)
}

func init() {
	c := featureCore
	bind(c, &deviceFns.reference, "cairo_device_reference")
	bind(c, &deviceFns.destroy, "cairo_device_destroy")
	bind(c, &deviceFns.getReferenceCount, "cairo_device_get_reference_count")
	bind(c, &deviceFns.status, "cairo_device_status")
	bind(c, &deviceFns.getType, "cairo_device_get_type")
	bind(c, &deviceFns.flush, "cairo_device_flush")
	bind(c, &deviceFns.finish, "cairo_device_finish")
}

// Device is a cairo_device_t, the backend resource shared by a group of
// surfaces, such as a GL context or X connection.
type Device struct {
	object
}

func refDevice(ptr uintptr) *Device {
	if ptr == 0 {
		return nil
	}
	d := &Device{}
	track(d, &d.object, "device", deviceFns.reference(ptr), true, deviceFns.destroy)
	return d
}

// ReferenceCount returns the native reference count.
func (d *Device) ReferenceCount() int {
	defer runtime.KeepAlive(d)
	return int(deviceFns.getReferenceCount(d.raw()))
}

// Status returns the device's error state, or nil.
func (d *Device) Status() error {
	defer runtime.KeepAlive(d)
	return deviceFns.status(d.raw()).errorFor("device")
}

// Type returns the backend type.
func (d *Device) Type() DeviceType {
	defer runtime.KeepAlive(d)
	return deviceFns.getType(d.raw())
}

// Flush completes pending operations on the device.
func (d *Device) Flush() {
	defer runtime.KeepAlive(d)
	deviceFns.flush(d.raw())
}

// Finish detaches the device from its backend resource.
func (d *Device) Finish() {
	defer runtime.KeepAlive(d)
	deviceFns.finish(d.raw())
}
