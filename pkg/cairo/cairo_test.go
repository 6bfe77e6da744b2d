package cairo

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// requireCairo skips tests that need the native library.
func requireCairo(t *testing.T) {
	t.Helper()
	if err := Load(); err != nil {
		t.Skipf("libcairo not available: %v", err)
	}
}

func requireCairoFeature(t *testing.T, f Feature) {
	t.Helper()
	requireCairo(t)
	if !Supports(f) {
		t.Skipf("libcairo built without %s support", f)
	}
}

func newTestImage(t *testing.T, w, h int) (*ImageSurface, *Context) {
	t.Helper()
	s, err := NewImageSurface(FormatARGB32, w, h)
	if err != nil {
		t.Fatalf("NewImageSurface failed: %v", err)
	}
	cr, err := NewContext(s.Surface)
	if err != nil {
		s.Destroy()
		t.Fatalf("NewContext failed: %v", err)
	}
	t.Cleanup(func() {
		cr.Destroy()
		s.Destroy()
	})
	return s, cr
}

func TestVersion(t *testing.T) {
	requireCairo(t)
	if Version() < EncodeVersion(1, 10, 0) {
		t.Errorf("Version() = %d, want at least 1.10.0", Version())
	}
	if VersionString() == "" {
		t.Error("VersionString() is empty")
	}
	if LibraryPath() == "" {
		t.Error("LibraryPath() is empty")
	}
	if got := StatusNoMemory.Message(); got != "out of memory" {
		t.Errorf("StatusNoMemory.Message() = %q", got)
	}
}

func TestImageSurfacePaint(t *testing.T) {
	requireCairo(t)
	s, cr := newTestImage(t, 4, 3)

	if s.Width() != 4 || s.Height() != 3 || s.Format() != FormatARGB32 {
		t.Fatalf("surface is %dx%d %v", s.Width(), s.Height(), s.Format())
	}
	if s.Stride() < 16 || s.Stride() != FormatARGB32.StrideForWidth(4) {
		t.Errorf("Stride() = %d", s.Stride())
	}
	if s.Type() != SurfaceTypeImage || s.Content() != ContentColorAlpha {
		t.Errorf("Type() = %v, Content() = %v", s.Type(), s.Content())
	}

	cr.SetSourceRGB(1, 0, 0)
	cr.Paint()
	if err := cr.Status(); err != nil {
		t.Fatalf("context status: %v", err)
	}

	img, err := s.Image()
	if err != nil {
		t.Fatalf("Image() failed: %v", err)
	}
	want := color.RGBA{R: 255, A: 255}
	if got := img.At(2, 1); got != want {
		t.Errorf("pixel = %v, want %v", got, want)
	}
}

func TestImageFromGoImage(t *testing.T) {
	requireCairo(t)
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	src.SetRGBA(1, 0, color.RGBA{G: 255, A: 255})
	src.SetRGBA(0, 1, color.RGBA{B: 255, A: 255})
	src.SetRGBA(1, 1, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	s, err := NewImageSurfaceFromImage(src)
	if err != nil {
		t.Fatalf("NewImageSurfaceFromImage failed: %v", err)
	}
	defer s.Destroy()

	got, err := s.Image()
	if err != nil {
		t.Fatalf("Image() failed: %v", err)
	}
	if diff := cmp.Diff(src.Pix, got.(*image.RGBA).Pix); diff != "" {
		t.Errorf("pixels mismatch (-want +got):\n%s", diff)
	}
}

func TestReferenceCounting(t *testing.T) {
	requireCairo(t)
	s, cr := newTestImage(t, 1, 1)

	target := cr.Target()
	defer target.Destroy()
	if target.Handle() != s.Handle() {
		t.Fatal("Target() returned a different surface")
	}
	if n := s.ReferenceCount(); n != 3 {
		t.Errorf("ReferenceCount() = %d, want 3", n)
	}
	target.Destroy()
	if n := s.ReferenceCount(); n != 2 {
		t.Errorf("ReferenceCount() after Destroy = %d, want 2", n)
	}
}

func TestCopyPath(t *testing.T) {
	requireCairo(t)
	_, cr := newTestImage(t, 10, 10)

	cr.MoveTo(1, 2)
	cr.LineTo(3, 4)
	cr.CurveTo(5, 6, 7, 8, 9, 9)
	cr.ClosePath()

	p, err := cr.CopyPath()
	if err != nil {
		t.Fatalf("CopyPath failed: %v", err)
	}
	defer p.Destroy()

	segs, err := p.Segments()
	if err != nil {
		t.Fatalf("Segments failed: %v", err)
	}
	want := []PathSegment{
		{Type: PathMoveTo, Points: []Point{{1, 2}}},
		{Type: PathLineTo, Points: []Point{{3, 4}}},
		{Type: PathCurveTo, Points: []Point{{5, 6}, {7, 8}, {9, 9}}},
		{Type: PathClosePath},
	}
	if len(segs) < len(want) {
		t.Fatalf("got %d segments, want at least %d", len(segs), len(want))
	}
	if diff := cmp.Diff(want, segs[:len(want)]); diff != "" {
		t.Errorf("segments mismatch (-want +got):\n%s", diff)
	}

	cr.NewPath()
	if err := cr.AppendSegments(want); err != nil {
		t.Fatalf("AppendSegments failed: %v", err)
	}
	again, err := cr.CopyPath()
	if err != nil {
		t.Fatalf("CopyPath after append failed: %v", err)
	}
	defer again.Destroy()
	segs2, err := again.Segments()
	if err != nil {
		t.Fatalf("Segments failed: %v", err)
	}
	if diff := cmp.Diff(segs[:len(want)], segs2[:len(want)]); diff != "" {
		t.Errorf("appended path mismatch (-want +got):\n%s", diff)
	}
}

func TestMatrix(t *testing.T) {
	requireCairo(t)
	m := NewTranslateMatrix(10, 20)
	if x, y := m.TransformPoint(1, 1); x != 11 || y != 21 {
		t.Errorf("TransformPoint = (%v, %v), want (11, 21)", x, y)
	}
	if dx, dy := m.TransformDistance(1, 1); dx != 1 || dy != 1 {
		t.Errorf("TransformDistance = (%v, %v), want (1, 1)", dx, dy)
	}

	s := NewScaleMatrix(2, 4)
	if err := s.Invert(); err != nil {
		t.Fatalf("Invert failed: %v", err)
	}
	if diff := cmp.Diff(NewScaleMatrix(0.5, 0.25), s); diff != "" {
		t.Errorf("inverse mismatch (-want +got):\n%s", diff)
	}

	singular := NewMatrix(0, 0, 0, 0, 0, 0)
	if err := singular.Invert(); !errors.Is(err, StatusInvalidMatrix.Err()) {
		t.Errorf("singular Invert() = %v, want StatusInvalidMatrix", err)
	}
}

func TestPatternColorStops(t *testing.T) {
	requireCairo(t)
	p, err := NewLinearGradient(0, 0, 100, 0)
	if err != nil {
		t.Fatalf("NewLinearGradient failed: %v", err)
	}
	defer p.Destroy()

	p.AddColorStop(0, 1, 0, 0)
	p.AddColorStopRGBA(1, 0, 0, 1, 0.5)

	stops, err := p.ColorStops()
	if err != nil {
		t.Fatalf("ColorStops failed: %v", err)
	}
	want := []ColorStop{
		{Offset: 0, Color: RGBA{R: 1, A: 1}},
		{Offset: 1, Color: RGBA{B: 1, A: 0.5}},
	}
	if diff := cmp.Diff(want, stops); diff != "" {
		t.Errorf("stops mismatch (-want +got):\n%s", diff)
	}

	if p.Type() != PatternTypeLinear {
		t.Errorf("Type() = %v", p.Type())
	}
	start, end, err := p.LinearPoints()
	if err != nil || start != (Point{0, 0}) || end != (Point{100, 0}) {
		t.Errorf("LinearPoints() = %v, %v, %v", start, end, err)
	}
	if _, err := p.Color(); !errors.Is(err, StatusPatternTypeMismatch.Err()) {
		t.Errorf("Color() on a gradient = %v, want StatusPatternTypeMismatch", err)
	}
}

func TestRegion(t *testing.T) {
	requireCairo(t)
	r, err := NewRegion(RectangleInt{X: 0, Y: 0, Width: 10, Height: 10})
	if err != nil {
		t.Fatalf("NewRegion failed: %v", err)
	}
	defer r.Destroy()

	if err := r.UnionRectangle(RectangleInt{X: 20, Y: 0, Width: 10, Height: 10}); err != nil {
		t.Fatalf("UnionRectangle failed: %v", err)
	}
	if got := len(r.Rectangles()); got != 2 {
		t.Errorf("len(Rectangles()) = %d, want 2", got)
	}
	if got, want := r.Extents(), (RectangleInt{0, 0, 30, 10}); got != want {
		t.Errorf("Extents() = %v, want %v", got, want)
	}
	if !r.ContainsPoint(5, 5) || r.ContainsPoint(15, 5) {
		t.Error("ContainsPoint gave wrong answers")
	}
	if got := r.ContainsRectangle(RectangleInt{X: 5, Y: 5, Width: 10, Height: 2}); got != RegionOverlapPart {
		t.Errorf("ContainsRectangle() = %v, want PART", got)
	}

	c, err := r.Copy()
	if err != nil {
		t.Fatalf("Copy failed: %v", err)
	}
	defer c.Destroy()
	if !c.Equal(r) {
		t.Error("copy is not equal")
	}
	if err := c.Subtract(r); err != nil || !c.Empty() {
		t.Errorf("Subtract left %v, err %v", c.Rectangles(), err)
	}
}

func TestSurfaceUserData(t *testing.T) {
	requireCairo(t)
	s, err := NewImageSurface(FormatA8, 1, 1)
	if err != nil {
		t.Fatalf("NewImageSurface failed: %v", err)
	}

	key := NewUserDataKey()
	var destroyed []any
	if err := s.SetUserData(key, "payload", func(v any) { destroyed = append(destroyed, v) }); err != nil {
		t.Fatalf("SetUserData failed: %v", err)
	}
	if v, ok := s.UserData(key); !ok || v != "payload" {
		t.Errorf("UserData() = %v, %v", v, ok)
	}
	if _, ok := s.UserData(NewUserDataKey()); ok {
		t.Error("unknown key returned data")
	}

	s.Destroy()
	if len(destroyed) != 1 || destroyed[0] != "payload" {
		t.Errorf("destroy callbacks = %v", destroyed)
	}
}

func TestPNGStreamRoundTrip(t *testing.T) {
	requireCairoFeature(t, FeaturePNG)
	s, cr := newTestImage(t, 8, 8)
	cr.SetSourceRGBA(0, 1, 0, 1)
	cr.Rectangle(0, 0, 4, 8)
	cr.Fill()

	var buf bytes.Buffer
	if err := s.WriteToPNGStream(&buf); err != nil {
		t.Fatalf("WriteToPNGStream failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Fatal("output is not a PNG")
	}

	back, err := NewImageSurfaceFromPNGStream(&buf)
	if err != nil {
		t.Fatalf("NewImageSurfaceFromPNGStream failed: %v", err)
	}
	defer back.Destroy()
	if back.Width() != 8 || back.Height() != 8 {
		t.Errorf("decoded size %dx%d", back.Width(), back.Height())
	}
	img, err := back.Image()
	if err != nil {
		t.Fatalf("Image() failed: %v", err)
	}
	if got := img.At(1, 1); got != (color.RGBA{G: 255, A: 255}) {
		t.Errorf("pixel = %v", got)
	}
}

func TestPNGStreamWriterError(t *testing.T) {
	requireCairoFeature(t, FeaturePNG)
	s, _ := newTestImage(t, 2, 2)
	base := closures.Len()

	err := s.WriteToPNGStream(&failingWriter{})
	if !errors.Is(err, errDiskFull) {
		t.Errorf("WriteToPNGStream error = %v, want errDiskFull", err)
	}
	if closures.Len() != base {
		t.Errorf("closure leaked: %d live, want %d", closures.Len(), base)
	}
}

func TestPNGStreamTruncated(t *testing.T) {
	requireCairoFeature(t, FeaturePNG)
	_, err := NewImageSurfaceFromPNGStream(strings.NewReader("\x89PNG\r\n"))
	if err == nil {
		t.Fatal("expected error for truncated PNG")
	}
}

func TestDocumentStreams(t *testing.T) {
	tests := []struct {
		name    string
		feature Feature
		create  func(*bytes.Buffer) (*Surface, error)
		prefix  string
	}{
		{"pdf", FeaturePDF, func(b *bytes.Buffer) (*Surface, error) {
			s, err := NewPDFSurfaceForStream(b, 100, 100)
			if err != nil {
				return nil, err
			}
			return s.Surface, nil
		}, "%PDF-"},
		{"ps", FeaturePS, func(b *bytes.Buffer) (*Surface, error) {
			s, err := NewPSSurfaceForStream(b, 100, 100)
			if err != nil {
				return nil, err
			}
			return s.Surface, nil
		}, "%!PS"},
		{"svg", FeatureSVG, func(b *bytes.Buffer) (*Surface, error) {
			s, err := NewSVGSurfaceForStream(b, 100, 100)
			if err != nil {
				return nil, err
			}
			return s.Surface, nil
		}, "<?xml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireCairoFeature(t, tt.feature)
			base := closures.Len()

			var buf bytes.Buffer
			s, err := tt.create(&buf)
			if err != nil {
				t.Fatalf("create failed: %v", err)
			}
			cr, err := NewContext(s)
			if err != nil {
				t.Fatalf("NewContext failed: %v", err)
			}
			cr.SetSourceRGB(0, 0, 1)
			cr.Rectangle(10, 10, 50, 50)
			cr.Fill()
			cr.Destroy()

			if err := s.Finish(); err != nil {
				t.Fatalf("Finish failed: %v", err)
			}
			if !strings.HasPrefix(buf.String(), tt.prefix) {
				t.Errorf("output starts with %q, want %q", buf.String()[:min(len(buf.String()), 16)], tt.prefix)
			}

			s.Destroy()
			if closures.Len() != base {
				t.Errorf("stream closure not released: %d live, want %d", closures.Len(), base)
			}
		})
	}
}

func TestFontOptions(t *testing.T) {
	requireCairo(t)
	o, err := NewFontOptions()
	if err != nil {
		t.Fatalf("NewFontOptions failed: %v", err)
	}
	defer o.Destroy()

	o.SetAntialias(AntialiasGray)
	o.SetHintStyle(HintStyleFull)
	c, err := o.Copy()
	if err != nil {
		t.Fatalf("Copy failed: %v", err)
	}
	defer c.Destroy()
	if !c.Equal(o) || c.Antialias() != AntialiasGray || c.HintStyle() != HintStyleFull {
		t.Error("copy differs from original")
	}
	c.SetAntialias(AntialiasNone)
	if c.Equal(o) || c.Hash() == o.Hash() {
		t.Error("modified copy still equal to original")
	}
}

func TestToyFontFace(t *testing.T) {
	requireCairo(t)
	f, err := NewToyFontFace("sans-serif", FontSlantItalic, FontWeightBold)
	if err != nil {
		t.Fatalf("NewToyFontFace failed: %v", err)
	}
	defer f.Destroy()
	if f.Type() != FontTypeToy || f.Family() != "sans-serif" {
		t.Errorf("Type() = %v, Family() = %q", f.Type(), f.Family())
	}
	if f.Slant() != FontSlantItalic || f.Weight() != FontWeightBold {
		t.Errorf("Slant() = %v, Weight() = %v", f.Slant(), f.Weight())
	}
}
