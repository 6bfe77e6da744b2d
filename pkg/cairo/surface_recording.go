package cairo

import "runtime"

var recordingFns struct {
	create     func(Content, *Rectangle) uintptr
	inkExtents func(uintptr, *float64, *float64, *float64, *float64)
	getExtents func(uintptr, *Rectangle) int32
}

func init() {
	bind(FeatureRecording, &recordingFns.create, "cairo_recording_surface_create")
	bind(FeatureRecording, &recordingFns.inkExtents, "cairo_recording_surface_ink_extents")
	bind(FeatureRecording, &recordingFns.getExtents, "cairo_recording_surface_get_extents")
}

// RecordingSurface records drawing operations for replay onto another
// surface via SetSourceSurface.
type RecordingSurface struct {
	*Surface
}

// NewRecordingSurface creates a recording surface. A nil extents makes
// it unbounded.
func NewRecordingSurface(content Content, extents *Rectangle) (*RecordingSurface, error) {
	if err := requireFeature(FeatureRecording); err != nil {
		return nil, err
	}
	s, err := checkedSurface("recording_surface_create", recordingFns.create(content, extents))
	if err != nil {
		return nil, err
	}
	return &RecordingSurface{Surface: s}, nil
}

// InkExtents returns the bounding box of everything recorded so far.
func (s *RecordingSurface) InkExtents() Rectangle {
	defer runtime.KeepAlive(s)
	var r Rectangle
	recordingFns.inkExtents(s.raw(), &r.X, &r.Y, &r.Width, &r.Height)
	return r
}

// Extents returns the extents given at creation; ok is false for an
// unbounded surface.
func (s *RecordingSurface) Extents() (r Rectangle, ok bool) {
	defer runtime.KeepAlive(s)
	ok = recordingFns.getExtents(s.raw(), &r) != 0
	return r, ok
}
