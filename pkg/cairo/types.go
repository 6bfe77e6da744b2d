package cairo

import "math"

// The struct mirrors in this file share their memory layout with the C
// structs of the same name and are passed to native calls by pointer.
// layout_test.go pins every size and offset.

// Matrix is an affine transformation, cairo_matrix_t:
//
//	x_new = XX*x + XY*y + X0
//	y_new = YX*x + YY*y + Y0
type Matrix struct {
	XX, YX float64
	XY, YY float64
	X0, Y0 float64
}

var matrixFns struct {
	initIdentity      func(*Matrix)
	initTranslate     func(*Matrix, float64, float64)
	initScale         func(*Matrix, float64, float64)
	initRotate        func(*Matrix, float64)
	translate         func(*Matrix, float64, float64)
	scale             func(*Matrix, float64, float64)
	rotate            func(*Matrix, float64)
	invert            func(*Matrix) Status
	multiply          func(*Matrix, *Matrix, *Matrix)
	transformDistance func(*Matrix, *float64, *float64)
	transformPoint    func(*Matrix, *float64, *float64)
}

func init() {
	bind(featureCore, &matrixFns.initIdentity, "cairo_matrix_init_identity")
	bind(featureCore, &matrixFns.initTranslate, "cairo_matrix_init_translate")
	bind(featureCore, &matrixFns.initScale, "cairo_matrix_init_scale")
	bind(featureCore, &matrixFns.initRotate, "cairo_matrix_init_rotate")
	bind(featureCore, &matrixFns.translate, "cairo_matrix_translate")
	bind(featureCore, &matrixFns.scale, "cairo_matrix_scale")
	bind(featureCore, &matrixFns.rotate, "cairo_matrix_rotate")
	bind(featureCore, &matrixFns.invert, "cairo_matrix_invert")
	bind(featureCore, &matrixFns.multiply, "cairo_matrix_multiply")
	bind(featureCore, &matrixFns.transformDistance, "cairo_matrix_transform_distance")
	bind(featureCore, &matrixFns.transformPoint, "cairo_matrix_transform_point")
}

// NewMatrix returns the matrix with the given components.
func NewMatrix(xx, yx, xy, yy, x0, y0 float64) Matrix {
	return Matrix{XX: xx, YX: yx, XY: xy, YY: yy, X0: x0, Y0: y0}
}

// NewIdentityMatrix returns the identity transformation.
func NewIdentityMatrix() Matrix {
	mustLoad()
	var m Matrix
	matrixFns.initIdentity(&m)
	return m
}

// NewTranslateMatrix returns a translation by (tx, ty).
func NewTranslateMatrix(tx, ty float64) Matrix {
	mustLoad()
	var m Matrix
	matrixFns.initTranslate(&m, tx, ty)
	return m
}

// NewScaleMatrix returns a scaling by (sx, sy).
func NewScaleMatrix(sx, sy float64) Matrix {
	mustLoad()
	var m Matrix
	matrixFns.initScale(&m, sx, sy)
	return m
}

// NewRotateMatrix returns a rotation by radians.
func NewRotateMatrix(radians float64) Matrix {
	mustLoad()
	var m Matrix
	matrixFns.initRotate(&m, radians)
	return m
}

// Translate applies a translation by (tx, ty) before the existing
// transformation.
func (m *Matrix) Translate(tx, ty float64) {
	mustLoad()
	matrixFns.translate(m, tx, ty)
}

// Scale applies a scaling by (sx, sy) before the existing transformation.
func (m *Matrix) Scale(sx, sy float64) {
	mustLoad()
	matrixFns.scale(m, sx, sy)
}

// Rotate applies a rotation by radians before the existing transformation.
func (m *Matrix) Rotate(radians float64) {
	mustLoad()
	matrixFns.rotate(m, radians)
}

// Invert replaces m with its inverse. A singular matrix is left unchanged
// and StatusInvalidMatrix is returned.
func (m *Matrix) Invert() error {
	mustLoad()
	return matrixFns.invert(m).errorFor("matrix_invert")
}

// Multiply returns the transformation that applies m then other.
func (m Matrix) Multiply(other Matrix) Matrix {
	mustLoad()
	var out Matrix
	matrixFns.multiply(&out, &m, &other)
	return out
}

// TransformPoint transforms the point (x, y).
func (m Matrix) TransformPoint(x, y float64) (float64, float64) {
	mustLoad()
	matrixFns.transformPoint(&m, &x, &y)
	return x, y
}

// TransformDistance transforms the vector (dx, dy), ignoring translation.
func (m Matrix) TransformDistance(dx, dy float64) (float64, float64) {
	mustLoad()
	matrixFns.transformDistance(&m, &dx, &dy)
	return dx, dy
}

// Rectangle is cairo_rectangle_t.
type Rectangle struct {
	X, Y, Width, Height float64
}

// RectangleInt is cairo_rectangle_int_t.
type RectangleInt struct {
	X, Y, Width, Height int32
}

// Empty reports whether the rectangle has no area.
func (r RectangleInt) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// TextExtents is cairo_text_extents_t, in user-space units.
type TextExtents struct {
	XBearing float64
	YBearing float64
	Width    float64
	Height   float64
	XAdvance float64
	YAdvance float64
}

// FontExtents is cairo_font_extents_t, in user-space units.
type FontExtents struct {
	Ascent      float64
	Descent     float64
	Height      float64
	MaxXAdvance float64
	MaxYAdvance float64
}

// TextCluster is cairo_text_cluster_t: NumBytes of UTF-8 text map to
// NumGlyphs glyphs.
type TextCluster struct {
	NumBytes  int32
	NumGlyphs int32
}

// Glyph positions one glyph of a font. Index is font-specific. Glyph is
// converted to the platform's cairo_glyph_t layout when passed to native
// calls; see cGlyph.
type Glyph struct {
	Index uint64
	X, Y  float64
}

func toCGlyphs(glyphs []Glyph) []cGlyph {
	out := make([]cGlyph, len(glyphs))
	for i, g := range glyphs {
		out[i] = newCGlyph(g)
	}
	return out
}

// Point is a position in user space.
type Point struct {
	X, Y float64
}

// Circle is a center and radius, used by radial gradients.
type Circle struct {
	X, Y, Radius float64
}

// RGBA is a color with components in [0, 1], not premultiplied.
type RGBA struct {
	R, G, B, A float64
}

// Clamped returns c with every component clamped to [0, 1].
func (c RGBA) Clamped() RGBA {
	clamp := func(v float64) float64 { return math.Max(0, math.Min(1, v)) }
	return RGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: clamp(c.A)}
}

// cBool converts to cairo_bool_t.
func cBool(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
