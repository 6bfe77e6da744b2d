package cairo

import "runtime"

var patternFns struct {
	createRGB         func(float64, float64, float64) uintptr
	createRGBA        func(float64, float64, float64, float64) uintptr
	createForSurface  func(uintptr) uintptr
	createLinear      func(float64, float64, float64, float64) uintptr
	createRadial      func(float64, float64, float64, float64, float64, float64) uintptr
	reference         func(uintptr) uintptr
	destroy           func(uintptr)
	getReferenceCount func(uintptr) uint32
	status            func(uintptr) Status
	getType           func(uintptr) PatternType
	addColorStopRGB   func(uintptr, float64, float64, float64, float64)
	addColorStopRGBA  func(uintptr, float64, float64, float64, float64, float64)
	getColorStopCount func(uintptr, *int32) Status
	getColorStopRGBA  func(uintptr, int32, *float64, *float64, *float64, *float64, *float64) Status
	getRGBA           func(uintptr, *float64, *float64, *float64, *float64) Status
	getSurface        func(uintptr, *uintptr) Status
	getLinearPoints   func(uintptr, *float64, *float64, *float64, *float64) Status
	getRadialCircles  func(uintptr, *float64, *float64, *float64, *float64, *float64, *float64) Status
	setExtend         func(uintptr, Extend)
	getExtend         func(uintptr) Extend
	setFilter         func(uintptr, Filter)
	getFilter         func(uintptr) Filter
	setMatrix         func(uintptr, *Matrix)
	getMatrix         func(uintptr, *Matrix)
	createMesh        func() uintptr
	meshBeginPatch    func(uintptr)
	meshEndPatch      func(uintptr)
	meshMoveTo        func(uintptr, float64, float64)
	meshLineTo        func(uintptr, float64, float64)
	meshCurveTo       func(uintptr, float64, float64, float64, float64, float64, float64)
	meshSetControl    func(uintptr, uint32, float64, float64)
	meshSetCornerRGBA func(uintptr, uint32, float64, float64, float64, float64)
	meshGetPatchCount func(uintptr, *uint32) Status
	meshGetPath       func(uintptr, uint32) uintptr
	meshGetControl    func(uintptr, uint32, uint32, *float64, *float64) Status
	meshGetCornerRGBA func(uintptr, uint32, uint32, *float64, *float64, *float64, *float64) Status
}

func init() {
	c := featureCore
	bind(c, &patternFns.createRGB, "cairo_pattern_create_rgb")
	bind(c, &patternFns.createRGBA, "cairo_pattern_create_rgba")
	bind(c, &patternFns.createForSurface, "cairo_pattern_create_for_surface")
	bind(c, &patternFns.createLinear, "cairo_pattern_create_linear")
	bind(c, &patternFns.createRadial, "cairo_pattern_create_radial")
	bind(c, &patternFns.reference, "cairo_pattern_reference")
	bind(c, &patternFns.destroy, "cairo_pattern_destroy")
	bind(c, &patternFns.getReferenceCount, "cairo_pattern_get_reference_count")
	bind(c, &patternFns.status, "cairo_pattern_status")
	bind(c, &patternFns.getType, "cairo_pattern_get_type")
	bind(c, &patternFns.addColorStopRGB, "cairo_pattern_add_color_stop_rgb")
	bind(c, &patternFns.addColorStopRGBA, "cairo_pattern_add_color_stop_rgba")
	bind(c, &patternFns.getColorStopCount, "cairo_pattern_get_color_stop_count")
	bind(c, &patternFns.getColorStopRGBA, "cairo_pattern_get_color_stop_rgba")
	bind(c, &patternFns.getRGBA, "cairo_pattern_get_rgba")
	bind(c, &patternFns.getSurface, "cairo_pattern_get_surface")
	bind(c, &patternFns.getLinearPoints, "cairo_pattern_get_linear_points")
	bind(c, &patternFns.getRadialCircles, "cairo_pattern_get_radial_circles")
	bind(c, &patternFns.setExtend, "cairo_pattern_set_extend")
	bind(c, &patternFns.getExtend, "cairo_pattern_get_extend")
	bind(c, &patternFns.setFilter, "cairo_pattern_set_filter")
	bind(c, &patternFns.getFilter, "cairo_pattern_get_filter")
	bind(c, &patternFns.setMatrix, "cairo_pattern_set_matrix")
	bind(c, &patternFns.getMatrix, "cairo_pattern_get_matrix")

	m := FeatureMesh
	bind(m, &patternFns.createMesh, "cairo_pattern_create_mesh")
	bind(m, &patternFns.meshBeginPatch, "cairo_mesh_pattern_begin_patch")
	bind(m, &patternFns.meshEndPatch, "cairo_mesh_pattern_end_patch")
	bind(m, &patternFns.meshMoveTo, "cairo_mesh_pattern_move_to")
	bind(m, &patternFns.meshLineTo, "cairo_mesh_pattern_line_to")
	bind(m, &patternFns.meshCurveTo, "cairo_mesh_pattern_curve_to")
	bind(m, &patternFns.meshSetControl, "cairo_mesh_pattern_set_control_point")
	bind(m, &patternFns.meshSetCornerRGBA, "cairo_mesh_pattern_set_corner_color_rgba")
	bind(m, &patternFns.meshGetPatchCount, "cairo_mesh_pattern_get_patch_count")
	bind(m, &patternFns.meshGetPath, "cairo_mesh_pattern_get_path")
	bind(m, &patternFns.meshGetControl, "cairo_mesh_pattern_get_control_point")
	bind(m, &patternFns.meshGetCornerRGBA, "cairo_mesh_pattern_get_corner_color_rgba")
}

// Pattern is a cairo_pattern_t: a solid color, surface, gradient or mesh
// used as a drawing source or mask. Which getters succeed depends on
// Type; the others return StatusPatternTypeMismatch.
type Pattern struct {
	object
}

func newPattern(ptr uintptr) *Pattern {
	if ptr == 0 {
		return nil
	}
	p := &Pattern{}
	track(p, &p.object, "pattern", ptr, true, patternFns.destroy)
	return p
}

func refPattern(ptr uintptr) *Pattern {
	if ptr == 0 {
		return nil
	}
	return newPattern(patternFns.reference(ptr))
}

func checkedPattern(op string, ptr uintptr) (*Pattern, error) {
	if ptr == 0 {
		return nil, StatusNoMemory.errorFor(op)
	}
	p := newPattern(ptr)
	if err := p.Status(); err != nil {
		p.Destroy()
		return nil, err
	}
	return p, nil
}

// NewSolidPattern creates an opaque color pattern.
func NewSolidPattern(r, g, b float64) (*Pattern, error) {
	if err := ensureLoaded(); err != nil {
		return nil, err
	}
	return checkedPattern("pattern_create_rgb", patternFns.createRGB(r, g, b))
}

// NewSolidPatternRGBA creates a translucent color pattern.
func NewSolidPatternRGBA(r, g, b, a float64) (*Pattern, error) {
	if err := ensureLoaded(); err != nil {
		return nil, err
	}
	return checkedPattern("pattern_create_rgba", patternFns.createRGBA(r, g, b, a))
}

// NewSurfacePattern creates a pattern that paints s.
func NewSurfacePattern(s *Surface) (*Pattern, error) {
	defer runtime.KeepAlive(s)
	if err := ensureLoaded(); err != nil {
		return nil, err
	}
	return checkedPattern("pattern_create_for_surface", patternFns.createForSurface(s.raw()))
}

// NewLinearGradient creates a gradient along the line (x0, y0)-(x1, y1).
func NewLinearGradient(x0, y0, x1, y1 float64) (*Pattern, error) {
	if err := ensureLoaded(); err != nil {
		return nil, err
	}
	return checkedPattern("pattern_create_linear", patternFns.createLinear(x0, y0, x1, y1))
}

// NewRadialGradient creates a gradient between two circles.
func NewRadialGradient(start, end Circle) (*Pattern, error) {
	if err := ensureLoaded(); err != nil {
		return nil, err
	}
	return checkedPattern("pattern_create_radial",
		patternFns.createRadial(start.X, start.Y, start.Radius, end.X, end.Y, end.Radius))
}

// NewMeshPattern creates an empty mesh pattern. Add patches with
// BeginPatch and EndPatch.
func NewMeshPattern() (*Pattern, error) {
	if err := requireFeature(FeatureMesh); err != nil {
		return nil, err
	}
	return checkedPattern("pattern_create_mesh", patternFns.createMesh())
}

// Reference returns a new proxy sharing the same native pattern.
func (p *Pattern) Reference() *Pattern {
	defer runtime.KeepAlive(p)
	return newPattern(patternFns.reference(p.raw()))
}

// ReferenceCount returns the native reference count.
func (p *Pattern) ReferenceCount() int {
	defer runtime.KeepAlive(p)
	return int(patternFns.getReferenceCount(p.raw()))
}

// Status returns the pattern's error state, or nil.
func (p *Pattern) Status() error {
	defer runtime.KeepAlive(p)
	return patternFns.status(p.raw()).errorFor("pattern")
}

// Type returns the kind of pattern.
func (p *Pattern) Type() PatternType {
	defer runtime.KeepAlive(p)
	return patternFns.getType(p.raw())
}

// AddColorStop adds an opaque color stop at offset in [0, 1] to a
// gradient.
func (p *Pattern) AddColorStop(offset, r, g, b float64) {
	defer runtime.KeepAlive(p)
	patternFns.addColorStopRGB(p.raw(), offset, r, g, b)
}

// AddColorStopRGBA adds a translucent color stop to a gradient.
func (p *Pattern) AddColorStopRGBA(offset, r, g, b, a float64) {
	defer runtime.KeepAlive(p)
	patternFns.addColorStopRGBA(p.raw(), offset, r, g, b, a)
}

// ColorStop is one stop of a gradient.
type ColorStop struct {
	Offset float64
	Color  RGBA
}

// ColorStops returns the stops of a gradient in offset order.
func (p *Pattern) ColorStops() ([]ColorStop, error) {
	defer runtime.KeepAlive(p)
	var n int32
	if err := patternFns.getColorStopCount(p.raw(), &n).errorFor("pattern_get_color_stop_count"); err != nil {
		return nil, err
	}
	stops := make([]ColorStop, n)
	for i := range stops {
		s := &stops[i]
		st := patternFns.getColorStopRGBA(p.raw(), int32(i), &s.Offset, &s.Color.R, &s.Color.G, &s.Color.B, &s.Color.A)
		if err := st.errorFor("pattern_get_color_stop_rgba"); err != nil {
			return nil, err
		}
	}
	return stops, nil
}

// Color returns the color of a solid pattern.
func (p *Pattern) Color() (RGBA, error) {
	defer runtime.KeepAlive(p)
	var c RGBA
	err := patternFns.getRGBA(p.raw(), &c.R, &c.G, &c.B, &c.A).errorFor("pattern_get_rgba")
	return c, err
}

// Surface returns the surface of a surface pattern.
func (p *Pattern) Surface() (*Surface, error) {
	defer runtime.KeepAlive(p)
	var ptr uintptr
	if err := patternFns.getSurface(p.raw(), &ptr).errorFor("pattern_get_surface"); err != nil {
		return nil, err
	}
	return refSurface(ptr), nil
}

// LinearPoints returns the end points of a linear gradient.
func (p *Pattern) LinearPoints() (start, end Point, err error) {
	defer runtime.KeepAlive(p)
	err = patternFns.getLinearPoints(p.raw(), &start.X, &start.Y, &end.X, &end.Y).
		errorFor("pattern_get_linear_points")
	return start, end, err
}

// RadialCircles returns the circles of a radial gradient.
func (p *Pattern) RadialCircles() (start, end Circle, err error) {
	defer runtime.KeepAlive(p)
	err = patternFns.getRadialCircles(p.raw(),
		&start.X, &start.Y, &start.Radius, &end.X, &end.Y, &end.Radius).
		errorFor("pattern_get_radial_circles")
	return start, end, err
}

// SetExtend sets how the pattern is drawn outside its natural area.
func (p *Pattern) SetExtend(e Extend) {
	defer runtime.KeepAlive(p)
	patternFns.setExtend(p.raw(), e)
}

// Extend returns the extend mode.
func (p *Pattern) Extend() Extend {
	defer runtime.KeepAlive(p)
	return patternFns.getExtend(p.raw())
}

// SetFilter sets the filter used when resampling surface patterns.
func (p *Pattern) SetFilter(f Filter) {
	defer runtime.KeepAlive(p)
	patternFns.setFilter(p.raw(), f)
}

// Filter returns the resampling filter.
func (p *Pattern) Filter() Filter {
	defer runtime.KeepAlive(p)
	return patternFns.getFilter(p.raw())
}

// SetMatrix sets the transformation from user space to pattern space.
func (p *Pattern) SetMatrix(m Matrix) {
	defer runtime.KeepAlive(p)
	patternFns.setMatrix(p.raw(), &m)
}

// Matrix returns the pattern matrix.
func (p *Pattern) Matrix() Matrix {
	defer runtime.KeepAlive(p)
	var m Matrix
	patternFns.getMatrix(p.raw(), &m)
	return m
}

// BeginPatch starts a new mesh patch.
func (p *Pattern) BeginPatch() {
	defer runtime.KeepAlive(p)
	patternFns.meshBeginPatch(p.raw())
}

// EndPatch completes the current mesh patch.
func (p *Pattern) EndPatch() {
	defer runtime.KeepAlive(p)
	patternFns.meshEndPatch(p.raw())
}

// MeshMoveTo starts the outline of the current patch.
func (p *Pattern) MeshMoveTo(x, y float64) {
	defer runtime.KeepAlive(p)
	patternFns.meshMoveTo(p.raw(), x, y)
}

// MeshLineTo adds a straight side to the current patch.
func (p *Pattern) MeshLineTo(x, y float64) {
	defer runtime.KeepAlive(p)
	patternFns.meshLineTo(p.raw(), x, y)
}

// MeshCurveTo adds a Bézier side to the current patch.
func (p *Pattern) MeshCurveTo(x1, y1, x2, y2, x3, y3 float64) {
	defer runtime.KeepAlive(p)
	patternFns.meshCurveTo(p.raw(), x1, y1, x2, y2, x3, y3)
}

// SetControlPoint sets interior control point n (0 to 3) of the current
// patch.
func (p *Pattern) SetControlPoint(n int, x, y float64) {
	defer runtime.KeepAlive(p)
	patternFns.meshSetControl(p.raw(), uint32(n), x, y)
}

// SetCornerColor sets the color of corner n (0 to 3) of the current patch.
func (p *Pattern) SetCornerColor(n int, c RGBA) {
	defer runtime.KeepAlive(p)
	patternFns.meshSetCornerRGBA(p.raw(), uint32(n), c.R, c.G, c.B, c.A)
}

// PatchCount returns the number of completed mesh patches.
func (p *Pattern) PatchCount() (int, error) {
	defer runtime.KeepAlive(p)
	var n uint32
	err := patternFns.meshGetPatchCount(p.raw(), &n).errorFor("mesh_pattern_get_patch_count")
	return int(n), err
}

// PatchPath returns the outline of patch i.
func (p *Pattern) PatchPath(i int) (*Path, error) {
	defer runtime.KeepAlive(p)
	return newPath(patternFns.meshGetPath(p.raw(), uint32(i)))
}

// ControlPoint returns control point n of patch i.
func (p *Pattern) ControlPoint(i, n int) (Point, error) {
	defer runtime.KeepAlive(p)
	var pt Point
	err := patternFns.meshGetControl(p.raw(), uint32(i), uint32(n), &pt.X, &pt.Y).
		errorFor("mesh_pattern_get_control_point")
	return pt, err
}

// CornerColor returns the color of corner n of patch i.
func (p *Pattern) CornerColor(i, n int) (RGBA, error) {
	defer runtime.KeepAlive(p)
	var c RGBA
	err := patternFns.meshGetCornerRGBA(p.raw(), uint32(i), uint32(n), &c.R, &c.G, &c.B, &c.A).
		errorFor("mesh_pattern_get_corner_color_rgba")
	return c, err
}
