package cairo

import (
	"fmt"
	"math"
	"runtime"
	"unsafe"
)

var ctxFns struct {
	create            func(uintptr) uintptr
	reference         func(uintptr) uintptr
	destroy           func(uintptr)
	getReferenceCount func(uintptr) uint32
	status            func(uintptr) Status
	save              func(uintptr)
	restore           func(uintptr)
	getTarget         func(uintptr) uintptr

	pushGroup            func(uintptr)
	pushGroupWithContent func(uintptr, Content)
	popGroup             func(uintptr) uintptr
	popGroupToSource     func(uintptr)
	getGroupTarget       func(uintptr) uintptr

	setSourceRGB     func(uintptr, float64, float64, float64)
	setSourceRGBA    func(uintptr, float64, float64, float64, float64)
	setSource        func(uintptr, uintptr)
	setSourceSurface func(uintptr, uintptr, float64, float64)
	getSource        func(uintptr) uintptr

	setOperator   func(uintptr, Operator)
	getOperator   func(uintptr) Operator
	setTolerance  func(uintptr, float64)
	getTolerance  func(uintptr) float64
	setAntialias  func(uintptr, Antialias)
	getAntialias  func(uintptr) Antialias
	setFillRule   func(uintptr, FillRule)
	getFillRule   func(uintptr) FillRule
	setLineWidth  func(uintptr, float64)
	getLineWidth  func(uintptr) float64
	setLineCap    func(uintptr, LineCap)
	getLineCap    func(uintptr) LineCap
	setLineJoin   func(uintptr, LineJoin)
	getLineJoin   func(uintptr) LineJoin
	setDash       func(uintptr, *float64, int32, float64)
	getDashCount  func(uintptr) int32
	getDash       func(uintptr, *float64, *float64)
	setMiterLimit func(uintptr, float64)
	getMiterLimit func(uintptr) float64

	translate      func(uintptr, float64, float64)
	scale          func(uintptr, float64, float64)
	rotate         func(uintptr, float64)
	transform      func(uintptr, *Matrix)
	setMatrix      func(uintptr, *Matrix)
	getMatrix      func(uintptr, *Matrix)
	identityMatrix func(uintptr)

	userToDevice         func(uintptr, *float64, *float64)
	userToDeviceDistance func(uintptr, *float64, *float64)
	deviceToUser         func(uintptr, *float64, *float64)
	deviceToUserDistance func(uintptr, *float64, *float64)

	newPath         func(uintptr)
	newSubPath      func(uintptr)
	moveTo          func(uintptr, float64, float64)
	lineTo          func(uintptr, float64, float64)
	curveTo         func(uintptr, float64, float64, float64, float64, float64, float64)
	arc             func(uintptr, float64, float64, float64, float64, float64)
	arcNegative     func(uintptr, float64, float64, float64, float64, float64)
	relMoveTo       func(uintptr, float64, float64)
	relLineTo       func(uintptr, float64, float64)
	relCurveTo      func(uintptr, float64, float64, float64, float64, float64, float64)
	rectangle       func(uintptr, float64, float64, float64, float64)
	closePath       func(uintptr)
	pathExtents     func(uintptr, *float64, *float64, *float64, *float64)
	getCurrentPoint func(uintptr, *float64, *float64)
	hasCurrentPoint func(uintptr) int32
	copyPath        func(uintptr) uintptr
	copyPathFlat    func(uintptr) uintptr
	appendPath      func(uintptr, uintptr)

	paint          func(uintptr)
	paintWithAlpha func(uintptr, float64)
	mask           func(uintptr, uintptr)
	maskSurface    func(uintptr, uintptr, float64, float64)
	stroke         func(uintptr)
	strokePreserve func(uintptr)
	fill           func(uintptr)
	fillPreserve   func(uintptr)
	strokeExtents  func(uintptr, *float64, *float64, *float64, *float64)
	fillExtents    func(uintptr, *float64, *float64, *float64, *float64)
	inStroke       func(uintptr, float64, float64) int32
	inFill         func(uintptr, float64, float64) int32
	inClip         func(uintptr, float64, float64) int32

	clip                  func(uintptr)
	clipPreserve          func(uintptr)
	resetClip             func(uintptr)
	clipExtents           func(uintptr, *float64, *float64, *float64, *float64)
	copyClipRectangleList func(uintptr) uintptr
	rectangleListDestroy  func(uintptr)

	copyPage func(uintptr)
	showPage func(uintptr)

	selectFontFace func(uintptr, string, FontSlant, FontWeight)
	setFontSize    func(uintptr, float64)
	setFontMatrix  func(uintptr, *Matrix)
	getFontMatrix  func(uintptr, *Matrix)
	setFontOptions func(uintptr, uintptr)
	getFontOptions func(uintptr, uintptr)
	setFontFace    func(uintptr, uintptr)
	getFontFace    func(uintptr) uintptr
	setScaledFont  func(uintptr, uintptr)
	getScaledFont  func(uintptr) uintptr
	showText       func(uintptr, string)
	textPath       func(uintptr, string)
	textExtents    func(uintptr, string, *TextExtents)
	fontExtents    func(uintptr, *FontExtents)
	showGlyphs     func(uintptr, unsafe.Pointer, int32)
	glyphPath      func(uintptr, unsafe.Pointer, int32)
	glyphExtents   func(uintptr, unsafe.Pointer, int32, *TextExtents)

	tagBegin func(uintptr, string, string)
	tagEnd   func(uintptr, string)
}

func init() {
	c := featureCore
	bind(c, &ctxFns.create, "cairo_create")
	bind(c, &ctxFns.reference, "cairo_reference")
	bind(c, &ctxFns.destroy, "cairo_destroy")
	bind(c, &ctxFns.getReferenceCount, "cairo_get_reference_count")
	bind(c, &ctxFns.status, "cairo_status")
	bind(c, &ctxFns.save, "cairo_save")
	bind(c, &ctxFns.restore, "cairo_restore")
	bind(c, &ctxFns.getTarget, "cairo_get_target")

	bind(c, &ctxFns.pushGroup, "cairo_push_group")
	bind(c, &ctxFns.pushGroupWithContent, "cairo_push_group_with_content")
	bind(c, &ctxFns.popGroup, "cairo_pop_group")
	bind(c, &ctxFns.popGroupToSource, "cairo_pop_group_to_source")
	bind(c, &ctxFns.getGroupTarget, "cairo_get_group_target")

	bind(c, &ctxFns.setSourceRGB, "cairo_set_source_rgb")
	bind(c, &ctxFns.setSourceRGBA, "cairo_set_source_rgba")
	bind(c, &ctxFns.setSource, "cairo_set_source")
	bind(c, &ctxFns.setSourceSurface, "cairo_set_source_surface")
	bind(c, &ctxFns.getSource, "cairo_get_source")

	bind(c, &ctxFns.setOperator, "cairo_set_operator")
	bind(c, &ctxFns.getOperator, "cairo_get_operator")
	bind(c, &ctxFns.setTolerance, "cairo_set_tolerance")
	bind(c, &ctxFns.getTolerance, "cairo_get_tolerance")
	bind(c, &ctxFns.setAntialias, "cairo_set_antialias")
	bind(c, &ctxFns.getAntialias, "cairo_get_antialias")
	bind(c, &ctxFns.setFillRule, "cairo_set_fill_rule")
	bind(c, &ctxFns.getFillRule, "cairo_get_fill_rule")
	bind(c, &ctxFns.setLineWidth, "cairo_set_line_width")
	bind(c, &ctxFns.getLineWidth, "cairo_get_line_width")
	bind(c, &ctxFns.setLineCap, "cairo_set_line_cap")
	bind(c, &ctxFns.getLineCap, "cairo_get_line_cap")
	bind(c, &ctxFns.setLineJoin, "cairo_set_line_join")
	bind(c, &ctxFns.getLineJoin, "cairo_get_line_join")
	bind(c, &ctxFns.setDash, "cairo_set_dash")
	bind(c, &ctxFns.getDashCount, "cairo_get_dash_count")
	bind(c, &ctxFns.getDash, "cairo_get_dash")
	bind(c, &ctxFns.setMiterLimit, "cairo_set_miter_limit")
	bind(c, &ctxFns.getMiterLimit, "cairo_get_miter_limit")

	bind(c, &ctxFns.translate, "cairo_translate")
	bind(c, &ctxFns.scale, "cairo_scale")
	bind(c, &ctxFns.rotate, "cairo_rotate")
	bind(c, &ctxFns.transform, "cairo_transform")
	bind(c, &ctxFns.setMatrix, "cairo_set_matrix")
	bind(c, &ctxFns.getMatrix, "cairo_get_matrix")
	bind(c, &ctxFns.identityMatrix, "cairo_identity_matrix")

	bind(c, &ctxFns.userToDevice, "cairo_user_to_device")
	bind(c, &ctxFns.userToDeviceDistance, "cairo_user_to_device_distance")
	bind(c, &ctxFns.deviceToUser, "cairo_device_to_user")
	bind(c, &ctxFns.deviceToUserDistance, "cairo_device_to_user_distance")

	bind(c, &ctxFns.newPath, "cairo_new_path")
	bind(c, &ctxFns.newSubPath, "cairo_new_sub_path")
	bind(c, &ctxFns.moveTo, "cairo_move_to")
	bind(c, &ctxFns.lineTo, "cairo_line_to")
	bind(c, &ctxFns.curveTo, "cairo_curve_to")
	bind(c, &ctxFns.arc, "cairo_arc")
	bind(c, &ctxFns.arcNegative, "cairo_arc_negative")
	bind(c, &ctxFns.relMoveTo, "cairo_rel_move_to")
	bind(c, &ctxFns.relLineTo, "cairo_rel_line_to")
	bind(c, &ctxFns.relCurveTo, "cairo_rel_curve_to")
	bind(c, &ctxFns.rectangle, "cairo_rectangle")
	bind(c, &ctxFns.closePath, "cairo_close_path")
	bind(c, &ctxFns.pathExtents, "cairo_path_extents")
	bind(c, &ctxFns.getCurrentPoint, "cairo_get_current_point")
	bind(c, &ctxFns.hasCurrentPoint, "cairo_has_current_point")
	bind(c, &ctxFns.copyPath, "cairo_copy_path")
	bind(c, &ctxFns.copyPathFlat, "cairo_copy_path_flat")
	bind(c, &ctxFns.appendPath, "cairo_append_path")

	bind(c, &ctxFns.paint, "cairo_paint")
	bind(c, &ctxFns.paintWithAlpha, "cairo_paint_with_alpha")
	bind(c, &ctxFns.mask, "cairo_mask")
	bind(c, &ctxFns.maskSurface, "cairo_mask_surface")
	bind(c, &ctxFns.stroke, "cairo_stroke")
	bind(c, &ctxFns.strokePreserve, "cairo_stroke_preserve")
	bind(c, &ctxFns.fill, "cairo_fill")
	bind(c, &ctxFns.fillPreserve, "cairo_fill_preserve")
	bind(c, &ctxFns.strokeExtents, "cairo_stroke_extents")
	bind(c, &ctxFns.fillExtents, "cairo_fill_extents")
	bind(c, &ctxFns.inStroke, "cairo_in_stroke")
	bind(c, &ctxFns.inFill, "cairo_in_fill")
	bind(c, &ctxFns.inClip, "cairo_in_clip")

	bind(c, &ctxFns.clip, "cairo_clip")
	bind(c, &ctxFns.clipPreserve, "cairo_clip_preserve")
	bind(c, &ctxFns.resetClip, "cairo_reset_clip")
	bind(c, &ctxFns.clipExtents, "cairo_clip_extents")
	bind(c, &ctxFns.copyClipRectangleList, "cairo_copy_clip_rectangle_list")
	bind(c, &ctxFns.rectangleListDestroy, "cairo_rectangle_list_destroy")

	bind(c, &ctxFns.copyPage, "cairo_copy_page")
	bind(c, &ctxFns.showPage, "cairo_show_page")

	bind(c, &ctxFns.selectFontFace, "cairo_select_font_face")
	bind(c, &ctxFns.setFontSize, "cairo_set_font_size")
	bind(c, &ctxFns.setFontMatrix, "cairo_set_font_matrix")
	bind(c, &ctxFns.getFontMatrix, "cairo_get_font_matrix")
	bind(c, &ctxFns.setFontOptions, "cairo_set_font_options")
	bind(c, &ctxFns.getFontOptions, "cairo_get_font_options")
	bind(c, &ctxFns.setFontFace, "cairo_set_font_face")
	bind(c, &ctxFns.getFontFace, "cairo_get_font_face")
	bind(c, &ctxFns.setScaledFont, "cairo_set_scaled_font")
	bind(c, &ctxFns.getScaledFont, "cairo_get_scaled_font")
	bind(c, &ctxFns.showText, "cairo_show_text")
	bind(c, &ctxFns.textPath, "cairo_text_path")
	bind(c, &ctxFns.textExtents, "cairo_text_extents")
	bind(c, &ctxFns.fontExtents, "cairo_font_extents")
	bind(c, &ctxFns.showGlyphs, "cairo_show_glyphs")
	bind(c, &ctxFns.glyphPath, "cairo_glyph_path")
	bind(c, &ctxFns.glyphExtents, "cairo_glyph_extents")

	bind(FeatureTags, &ctxFns.tagBegin, "cairo_tag_begin")
	bind(FeatureTags, &ctxFns.tagEnd, "cairo_tag_end")
}

// Context is a drawing context, cairo_t. It carries the graphics state
// (source, line style, transformation, clip, font) and the current path,
// and draws onto its target surface.
//
// A Context is not safe for concurrent use.
type Context struct {
	object
}

// NewContext creates a drawing context targeting surface. The context
// holds its own reference to the surface.
func NewContext(target *Surface) (*Context, error) {
	defer runtime.KeepAlive(target)
	if err := ensureLoaded(); err != nil {
		return nil, err
	}
	cr := ctxFns.create(target.raw())
	if cr == 0 {
		return nil, StatusNoMemory.errorFor("create")
	}
	c := newContext(cr)
	if err := c.Status(); err != nil {
		c.Destroy()
		return nil, err
	}
	return c, nil
}

func newContext(cr uintptr) *Context {
	c := &Context{}
	track(c, &c.object, "context", cr, true, ctxFns.destroy)
	return c
}

// Reference returns a new proxy sharing the same native context.
func (c *Context) Reference() *Context {
	defer runtime.KeepAlive(c)
	return newContext(ctxFns.reference(c.raw()))
}

// ReferenceCount returns the native reference count.
func (c *Context) ReferenceCount() int {
	defer runtime.KeepAlive(c)
	return int(ctxFns.getReferenceCount(c.raw()))
}

// Status returns the context's error state, or nil.
func (c *Context) Status() error {
	defer runtime.KeepAlive(c)
	return ctxFns.status(c.raw()).errorFor("context")
}

// Save pushes a copy of the graphics state.
func (c *Context) Save() {
	defer runtime.KeepAlive(c)
	ctxFns.save(c.raw())
}

// Restore pops the graphics state pushed by the matching Save.
func (c *Context) Restore() {
	defer runtime.KeepAlive(c)
	ctxFns.restore(c.raw())
}

// Target returns the surface the context was created for.
func (c *Context) Target() *Surface {
	defer runtime.KeepAlive(c)
	return refSurface(ctxFns.getTarget(c.raw()))
}

// PushGroup redirects drawing to an intermediate surface until PopGroup.
func (c *Context) PushGroup() {
	defer runtime.KeepAlive(c)
	ctxFns.pushGroup(c.raw())
}

// PushGroupWithContent is PushGroup with an explicit content type.
func (c *Context) PushGroupWithContent(content Content) {
	defer runtime.KeepAlive(c)
	ctxFns.pushGroupWithContent(c.raw(), content)
}

// PopGroup ends a group and returns its contents as a pattern.
func (c *Context) PopGroup() *Pattern {
	defer runtime.KeepAlive(c)
	return newPattern(ctxFns.popGroup(c.raw()))
}

// PopGroupToSource ends a group and installs it as the source.
func (c *Context) PopGroupToSource() {
	defer runtime.KeepAlive(c)
	ctxFns.popGroupToSource(c.raw())
}

// GroupTarget returns the surface currently being drawn to.
func (c *Context) GroupTarget() *Surface {
	defer runtime.KeepAlive(c)
	return refSurface(ctxFns.getGroupTarget(c.raw()))
}

// SetSourceRGB sets an opaque color source.
func (c *Context) SetSourceRGB(r, g, b float64) {
	defer runtime.KeepAlive(c)
	ctxFns.setSourceRGB(c.raw(), r, g, b)
}

// SetSourceRGBA sets a translucent color source.
func (c *Context) SetSourceRGBA(r, g, b, a float64) {
	defer runtime.KeepAlive(c)
	ctxFns.setSourceRGBA(c.raw(), r, g, b, a)
}

// SetSourceColor sets the source from an RGBA value.
func (c *Context) SetSourceColor(col RGBA) {
	defer runtime.KeepAlive(c)
	ctxFns.setSourceRGBA(c.raw(), col.R, col.G, col.B, col.A)
}

// SetSource sets an arbitrary pattern as the source.
func (c *Context) SetSource(p *Pattern) {
	defer runtime.KeepAlive(c)
	defer runtime.KeepAlive(p)
	ctxFns.setSource(c.raw(), p.raw())
}

// SetSourceSurface uses surface as the source, with its origin at (x, y).
func (c *Context) SetSourceSurface(s *Surface, x, y float64) {
	defer runtime.KeepAlive(c)
	defer runtime.KeepAlive(s)
	ctxFns.setSourceSurface(c.raw(), s.raw(), x, y)
}

// Source returns the current source pattern.
func (c *Context) Source() *Pattern {
	defer runtime.KeepAlive(c)
	return refPattern(ctxFns.getSource(c.raw()))
}

// SetOperator sets the compositing operator.
func (c *Context) SetOperator(op Operator) {
	defer runtime.KeepAlive(c)
	ctxFns.setOperator(c.raw(), op)
}

// Operator returns the compositing operator.
func (c *Context) Operator() Operator {
	defer runtime.KeepAlive(c)
	return ctxFns.getOperator(c.raw())
}

// SetTolerance sets the curve flattening tolerance in device pixels.
func (c *Context) SetTolerance(t float64) {
	defer runtime.KeepAlive(c)
	ctxFns.setTolerance(c.raw(), t)
}

// Tolerance returns the curve flattening tolerance.
func (c *Context) Tolerance() float64 {
	defer runtime.KeepAlive(c)
	return ctxFns.getTolerance(c.raw())
}

// SetAntialias sets the antialiasing mode for shapes.
func (c *Context) SetAntialias(a Antialias) {
	defer runtime.KeepAlive(c)
	ctxFns.setAntialias(c.raw(), a)
}

// Antialias returns the antialiasing mode for shapes.
func (c *Context) Antialias() Antialias {
	defer runtime.KeepAlive(c)
	return ctxFns.getAntialias(c.raw())
}

// SetFillRule sets the fill rule.
func (c *Context) SetFillRule(r FillRule) {
	defer runtime.KeepAlive(c)
	ctxFns.setFillRule(c.raw(), r)
}

// FillRule returns the fill rule.
func (c *Context) FillRule() FillRule {
	defer runtime.KeepAlive(c)
	return ctxFns.getFillRule(c.raw())
}

// SetLineWidth sets the stroke width in user-space units.
func (c *Context) SetLineWidth(w float64) {
	defer runtime.KeepAlive(c)
	ctxFns.setLineWidth(c.raw(), w)
}

// LineWidth returns the stroke width.
func (c *Context) LineWidth() float64 {
	defer runtime.KeepAlive(c)
	return ctxFns.getLineWidth(c.raw())
}

// SetLineCap sets the line cap style.
func (c *Context) SetLineCap(lc LineCap) {
	defer runtime.KeepAlive(c)
	ctxFns.setLineCap(c.raw(), lc)
}

// LineCap returns the line cap style.
func (c *Context) LineCap() LineCap {
	defer runtime.KeepAlive(c)
	return ctxFns.getLineCap(c.raw())
}

// SetLineJoin sets the line join style.
func (c *Context) SetLineJoin(lj LineJoin) {
	defer runtime.KeepAlive(c)
	ctxFns.setLineJoin(c.raw(), lj)
}

// LineJoin returns the line join style.
func (c *Context) LineJoin() LineJoin {
	defer runtime.KeepAlive(c)
	return ctxFns.getLineJoin(c.raw())
}

// SetDash sets the dash pattern. An empty dashes slice disables dashing.
// Negative or all-zero dashes put the context into StatusInvalidDash.
func (c *Context) SetDash(dashes []float64, offset float64) {
	defer runtime.KeepAlive(c)
	if len(dashes) == 0 {
		ctxFns.setDash(c.raw(), nil, 0, offset)
		return
	}
	ctxFns.setDash(c.raw(), &dashes[0], int32(len(dashes)), offset)
	runtime.KeepAlive(dashes)
}

// DashCount returns the length of the dash array.
func (c *Context) DashCount() int {
	defer runtime.KeepAlive(c)
	return int(ctxFns.getDashCount(c.raw()))
}

// Dash returns the dash array and offset.
func (c *Context) Dash() ([]float64, float64) {
	defer runtime.KeepAlive(c)
	cr := c.raw()
	n := ctxFns.getDashCount(cr)
	var offset float64
	if n == 0 {
		ctxFns.getDash(cr, nil, &offset)
		return nil, offset
	}
	dashes := make([]float64, n)
	ctxFns.getDash(cr, &dashes[0], &offset)
	return dashes, offset
}

// SetMiterLimit sets the miter limit.
func (c *Context) SetMiterLimit(limit float64) {
	defer runtime.KeepAlive(c)
	ctxFns.setMiterLimit(c.raw(), limit)
}

// MiterLimit returns the miter limit.
func (c *Context) MiterLimit() float64 {
	defer runtime.KeepAlive(c)
	return ctxFns.getMiterLimit(c.raw())
}

// Translate shifts the user-space origin by (tx, ty).
func (c *Context) Translate(tx, ty float64) {
	defer runtime.KeepAlive(c)
	ctxFns.translate(c.raw(), tx, ty)
}

// Scale scales user space by (sx, sy).
func (c *Context) Scale(sx, sy float64) {
	defer runtime.KeepAlive(c)
	ctxFns.scale(c.raw(), sx, sy)
}

// Rotate rotates user space by radians.
func (c *Context) Rotate(radians float64) {
	defer runtime.KeepAlive(c)
	ctxFns.rotate(c.raw(), radians)
}

// Transform applies m on top of the current transformation.
func (c *Context) Transform(m Matrix) {
	defer runtime.KeepAlive(c)
	ctxFns.transform(c.raw(), &m)
}

// SetMatrix replaces the current transformation.
func (c *Context) SetMatrix(m Matrix) {
	defer runtime.KeepAlive(c)
	ctxFns.setMatrix(c.raw(), &m)
}

// Matrix returns the current transformation.
func (c *Context) Matrix() Matrix {
	defer runtime.KeepAlive(c)
	var m Matrix
	ctxFns.getMatrix(c.raw(), &m)
	return m
}

// IdentityMatrix resets the current transformation to the identity.
func (c *Context) IdentityMatrix() {
	defer runtime.KeepAlive(c)
	ctxFns.identityMatrix(c.raw())
}

// UserToDevice converts a point from user to device space.
func (c *Context) UserToDevice(x, y float64) (float64, float64) {
	defer runtime.KeepAlive(c)
	ctxFns.userToDevice(c.raw(), &x, &y)
	return x, y
}

// UserToDeviceDistance converts a distance from user to device space.
func (c *Context) UserToDeviceDistance(dx, dy float64) (float64, float64) {
	defer runtime.KeepAlive(c)
	ctxFns.userToDeviceDistance(c.raw(), &dx, &dy)
	return dx, dy
}

// DeviceToUser converts a point from device to user space.
func (c *Context) DeviceToUser(x, y float64) (float64, float64) {
	defer runtime.KeepAlive(c)
	ctxFns.deviceToUser(c.raw(), &x, &y)
	return x, y
}

// DeviceToUserDistance converts a distance from device to user space.
func (c *Context) DeviceToUserDistance(dx, dy float64) (float64, float64) {
	defer runtime.KeepAlive(c)
	ctxFns.deviceToUserDistance(c.raw(), &dx, &dy)
	return dx, dy
}

// NewPath clears the current path.
func (c *Context) NewPath() {
	defer runtime.KeepAlive(c)
	ctxFns.newPath(c.raw())
}

// NewSubPath starts a new sub-path without a current point.
func (c *Context) NewSubPath() {
	defer runtime.KeepAlive(c)
	ctxFns.newSubPath(c.raw())
}

// MoveTo begins a new sub-path at (x, y).
func (c *Context) MoveTo(x, y float64) {
	defer runtime.KeepAlive(c)
	ctxFns.moveTo(c.raw(), x, y)
}

// LineTo adds a line to (x, y).
func (c *Context) LineTo(x, y float64) {
	defer runtime.KeepAlive(c)
	ctxFns.lineTo(c.raw(), x, y)
}

// CurveTo adds a cubic Bézier spline.
func (c *Context) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	defer runtime.KeepAlive(c)
	ctxFns.curveTo(c.raw(), x1, y1, x2, y2, x3, y3)
}

// Arc adds a circular arc in the direction of increasing angles.
func (c *Context) Arc(xc, yc, radius, angle1, angle2 float64) {
	defer runtime.KeepAlive(c)
	ctxFns.arc(c.raw(), xc, yc, radius, angle1, angle2)
}

// ArcNegative adds a circular arc in the direction of decreasing angles.
func (c *Context) ArcNegative(xc, yc, radius, angle1, angle2 float64) {
	defer runtime.KeepAlive(c)
	ctxFns.arcNegative(c.raw(), xc, yc, radius, angle1, angle2)
}

// Circle adds a full circle as a closed sub-path.
func (c *Context) Circle(circle Circle) {
	defer runtime.KeepAlive(c)
	cr := c.raw()
	ctxFns.newSubPath(cr)
	ctxFns.arc(cr, circle.X, circle.Y, circle.Radius, 0, 2*math.Pi)
	ctxFns.closePath(cr)
}

// RelMoveTo moves relative to the current point.
func (c *Context) RelMoveTo(dx, dy float64) {
	defer runtime.KeepAlive(c)
	ctxFns.relMoveTo(c.raw(), dx, dy)
}

// RelLineTo adds a line relative to the current point.
func (c *Context) RelLineTo(dx, dy float64) {
	defer runtime.KeepAlive(c)
	ctxFns.relLineTo(c.raw(), dx, dy)
}

// RelCurveTo adds a spline relative to the current point.
func (c *Context) RelCurveTo(dx1, dy1, dx2, dy2, dx3, dy3 float64) {
	defer runtime.KeepAlive(c)
	ctxFns.relCurveTo(c.raw(), dx1, dy1, dx2, dy2, dx3, dy3)
}

// Rectangle adds a closed rectangle sub-path.
func (c *Context) Rectangle(x, y, width, height float64) {
	defer runtime.KeepAlive(c)
	ctxFns.rectangle(c.raw(), x, y, width, height)
}

// ClosePath closes the current sub-path.
func (c *Context) ClosePath() {
	defer runtime.KeepAlive(c)
	ctxFns.closePath(c.raw())
}

// PathExtents returns the bounding box of the current path.
func (c *Context) PathExtents() (x1, y1, x2, y2 float64) {
	defer runtime.KeepAlive(c)
	ctxFns.pathExtents(c.raw(), &x1, &y1, &x2, &y2)
	return
}

// CurrentPoint returns the current point, (0, 0) if there is none.
func (c *Context) CurrentPoint() (x, y float64) {
	defer runtime.KeepAlive(c)
	ctxFns.getCurrentPoint(c.raw(), &x, &y)
	return
}

// HasCurrentPoint reports whether the path has a current point.
func (c *Context) HasCurrentPoint() bool {
	defer runtime.KeepAlive(c)
	return ctxFns.hasCurrentPoint(c.raw()) != 0
}

// CopyPath returns a copy of the current path.
func (c *Context) CopyPath() (*Path, error) {
	defer runtime.KeepAlive(c)
	return newPath(ctxFns.copyPath(c.raw()))
}

// CopyPathFlat returns a copy of the current path with curves flattened
// to line segments.
func (c *Context) CopyPathFlat() (*Path, error) {
	defer runtime.KeepAlive(c)
	return newPath(ctxFns.copyPathFlat(c.raw()))
}

// AppendPath appends a path obtained from CopyPath or CopyPathFlat.
func (c *Context) AppendPath(p *Path) {
	defer runtime.KeepAlive(c)
	defer runtime.KeepAlive(p)
	ctxFns.appendPath(c.raw(), p.raw())
}

// AppendSegments replays Go-side path segments onto the current path. A
// segment with an unknown type or too few points fails with
// ErrMalformedPath before anything is appended.
func (c *Context) AppendSegments(segments []PathSegment) error {
	defer runtime.KeepAlive(c)
	for i, s := range segments {
		want, ok := pointsFor(s.Type)
		if !ok {
			return fmt.Errorf("%w: segment %d has type %d", ErrMalformedPath, i, int32(s.Type))
		}
		if len(s.Points) < want {
			return fmt.Errorf("%w: segment %d has %d points, want %d", ErrMalformedPath, i, len(s.Points), want)
		}
	}
	cr := c.raw()
	for _, s := range segments {
		switch s.Type {
		case PathMoveTo:
			ctxFns.moveTo(cr, s.Points[0].X, s.Points[0].Y)
		case PathLineTo:
			ctxFns.lineTo(cr, s.Points[0].X, s.Points[0].Y)
		case PathCurveTo:
			ctxFns.curveTo(cr, s.Points[0].X, s.Points[0].Y,
				s.Points[1].X, s.Points[1].Y, s.Points[2].X, s.Points[2].Y)
		case PathClosePath:
			ctxFns.closePath(cr)
		}
	}
	return nil
}

// Paint paints the source everywhere within the clip.
func (c *Context) Paint() {
	defer runtime.KeepAlive(c)
	ctxFns.paint(c.raw())
}

// PaintWithAlpha paints the source with a constant alpha.
func (c *Context) PaintWithAlpha(alpha float64) {
	defer runtime.KeepAlive(c)
	ctxFns.paintWithAlpha(c.raw(), alpha)
}

// Mask paints the source using the alpha channel of p as a mask.
func (c *Context) Mask(p *Pattern) {
	defer runtime.KeepAlive(c)
	defer runtime.KeepAlive(p)
	ctxFns.mask(c.raw(), p.raw())
}

// MaskSurface paints the source using the alpha channel of s, placed at
// (x, y), as a mask.
func (c *Context) MaskSurface(s *Surface, x, y float64) {
	defer runtime.KeepAlive(c)
	defer runtime.KeepAlive(s)
	ctxFns.maskSurface(c.raw(), s.raw(), x, y)
}

// Stroke strokes and clears the current path.
func (c *Context) Stroke() {
	defer runtime.KeepAlive(c)
	ctxFns.stroke(c.raw())
}

// StrokePreserve strokes the current path and keeps it.
func (c *Context) StrokePreserve() {
	defer runtime.KeepAlive(c)
	ctxFns.strokePreserve(c.raw())
}

// Fill fills and clears the current path.
func (c *Context) Fill() {
	defer runtime.KeepAlive(c)
	ctxFns.fill(c.raw())
}

// FillPreserve fills the current path and keeps it.
func (c *Context) FillPreserve() {
	defer runtime.KeepAlive(c)
	ctxFns.fillPreserve(c.raw())
}

// StrokeExtents returns the area a Stroke would touch.
func (c *Context) StrokeExtents() (x1, y1, x2, y2 float64) {
	defer runtime.KeepAlive(c)
	ctxFns.strokeExtents(c.raw(), &x1, &y1, &x2, &y2)
	return
}

// FillExtents returns the area a Fill would touch.
func (c *Context) FillExtents() (x1, y1, x2, y2 float64) {
	defer runtime.KeepAlive(c)
	ctxFns.fillExtents(c.raw(), &x1, &y1, &x2, &y2)
	return
}

// InStroke reports whether (x, y) is inside the area a Stroke would touch.
func (c *Context) InStroke(x, y float64) bool {
	defer runtime.KeepAlive(c)
	return ctxFns.inStroke(c.raw(), x, y) != 0
}

// InFill reports whether (x, y) is inside the area a Fill would touch.
func (c *Context) InFill(x, y float64) bool {
	defer runtime.KeepAlive(c)
	return ctxFns.inFill(c.raw(), x, y) != 0
}

// InClip reports whether (x, y) is inside the current clip.
func (c *Context) InClip(x, y float64) bool {
	defer runtime.KeepAlive(c)
	return ctxFns.inClip(c.raw(), x, y) != 0
}

// Clip intersects the clip with the current path and clears the path.
func (c *Context) Clip() {
	defer runtime.KeepAlive(c)
	ctxFns.clip(c.raw())
}

// ClipPreserve intersects the clip with the current path and keeps it.
func (c *Context) ClipPreserve() {
	defer runtime.KeepAlive(c)
	ctxFns.clipPreserve(c.raw())
}

// ResetClip removes all clipping.
func (c *Context) ResetClip() {
	defer runtime.KeepAlive(c)
	ctxFns.resetClip(c.raw())
}

// ClipExtents returns the bounding box of the clip.
func (c *Context) ClipExtents() (x1, y1, x2, y2 float64) {
	defer runtime.KeepAlive(c)
	ctxFns.clipExtents(c.raw(), &x1, &y1, &x2, &y2)
	return
}

// ClipRectangles returns the clip as a list of rectangles. A clip that
// cannot be represented that way yields StatusClipNotRepresentable.
func (c *Context) ClipRectangles() ([]Rectangle, error) {
	defer runtime.KeepAlive(c)
	ptr := ctxFns.copyClipRectangleList(c.raw())
	if ptr == 0 {
		return nil, StatusNoMemory.errorFor("copy_clip_rectangle_list")
	}
	defer ctxFns.rectangleListDestroy(ptr)
	return readRectangleList(ptr)
}

// CopyPage emits the current page and keeps its contents.
func (c *Context) CopyPage() {
	defer runtime.KeepAlive(c)
	ctxFns.copyPage(c.raw())
}

// ShowPage emits the current page and starts a blank one.
func (c *Context) ShowPage() {
	defer runtime.KeepAlive(c)
	ctxFns.showPage(c.raw())
}

// SelectFontFace selects a toy font face by family name.
func (c *Context) SelectFontFace(family string, slant FontSlant, weight FontWeight) {
	defer runtime.KeepAlive(c)
	ctxFns.selectFontFace(c.raw(), family, slant, weight)
}

// SetFontSize scales the font to size user-space units.
func (c *Context) SetFontSize(size float64) {
	defer runtime.KeepAlive(c)
	ctxFns.setFontSize(c.raw(), size)
}

// SetFontMatrix sets the font matrix.
func (c *Context) SetFontMatrix(m Matrix) {
	defer runtime.KeepAlive(c)
	ctxFns.setFontMatrix(c.raw(), &m)
}

// FontMatrix returns the font matrix.
func (c *Context) FontMatrix() Matrix {
	defer runtime.KeepAlive(c)
	var m Matrix
	ctxFns.getFontMatrix(c.raw(), &m)
	return m
}

// SetFontOptions merges opts into the context's font options.
func (c *Context) SetFontOptions(opts *FontOptions) {
	defer runtime.KeepAlive(c)
	defer runtime.KeepAlive(opts)
	ctxFns.setFontOptions(c.raw(), opts.raw())
}

// FontOptions returns a copy of the context's font options.
func (c *Context) FontOptions() (*FontOptions, error) {
	defer runtime.KeepAlive(c)
	opts, err := NewFontOptions()
	if err != nil {
		return nil, err
	}
	ctxFns.getFontOptions(c.raw(), opts.raw())
	return opts, nil
}

// SetFontFace replaces the font face. A nil face restores the default.
func (c *Context) SetFontFace(f *FontFace) {
	defer runtime.KeepAlive(c)
	defer runtime.KeepAlive(f)
	if f == nil {
		ctxFns.setFontFace(c.raw(), 0)
		return
	}
	ctxFns.setFontFace(c.raw(), f.raw())
}

// FontFace returns the current font face.
func (c *Context) FontFace() *FontFace {
	defer runtime.KeepAlive(c)
	return refFontFace(ctxFns.getFontFace(c.raw()))
}

// SetScaledFont replaces the font face, matrix and options at once.
func (c *Context) SetScaledFont(sf *ScaledFont) {
	defer runtime.KeepAlive(c)
	defer runtime.KeepAlive(sf)
	ctxFns.setScaledFont(c.raw(), sf.raw())
}

// ScaledFont returns the scaled font for the current font state.
func (c *Context) ScaledFont() *ScaledFont {
	defer runtime.KeepAlive(c)
	return refScaledFont(ctxFns.getScaledFont(c.raw()))
}

// ShowText draws UTF-8 text at the current point.
func (c *Context) ShowText(text string) {
	defer runtime.KeepAlive(c)
	ctxFns.showText(c.raw(), text)
}

// TextPath adds the outlines of text to the current path.
func (c *Context) TextPath(text string) {
	defer runtime.KeepAlive(c)
	ctxFns.textPath(c.raw(), text)
}

// TextExtents measures text with the current font.
func (c *Context) TextExtents(text string) TextExtents {
	defer runtime.KeepAlive(c)
	var e TextExtents
	ctxFns.textExtents(c.raw(), text, &e)
	return e
}

// FontExtents returns metrics of the current font.
func (c *Context) FontExtents() FontExtents {
	defer runtime.KeepAlive(c)
	var e FontExtents
	ctxFns.fontExtents(c.raw(), &e)
	return e
}

// ShowGlyphs draws positioned glyphs.
func (c *Context) ShowGlyphs(glyphs []Glyph) {
	defer runtime.KeepAlive(c)
	if len(glyphs) == 0 {
		return
	}
	cg := toCGlyphs(glyphs)
	ctxFns.showGlyphs(c.raw(), unsafe.Pointer(&cg[0]), int32(len(cg)))
	runtime.KeepAlive(cg)
}

// GlyphPath adds the outlines of glyphs to the current path.
func (c *Context) GlyphPath(glyphs []Glyph) {
	defer runtime.KeepAlive(c)
	if len(glyphs) == 0 {
		return
	}
	cg := toCGlyphs(glyphs)
	ctxFns.glyphPath(c.raw(), unsafe.Pointer(&cg[0]), int32(len(cg)))
	runtime.KeepAlive(cg)
}

// GlyphExtents measures positioned glyphs.
func (c *Context) GlyphExtents(glyphs []Glyph) TextExtents {
	defer runtime.KeepAlive(c)
	var e TextExtents
	if len(glyphs) == 0 {
		return e
	}
	cg := toCGlyphs(glyphs)
	ctxFns.glyphExtents(c.raw(), unsafe.Pointer(&cg[0]), int32(len(cg)), &e)
	runtime.KeepAlive(cg)
	return e
}

// TagBegin opens a document structure tag such as "Link" or "H1". attrs
// uses the native attribute syntax, e.g. "uri='https://example.com'".
func (c *Context) TagBegin(name, attrs string) error {
	defer runtime.KeepAlive(c)
	if err := requireFeature(FeatureTags); err != nil {
		return err
	}
	ctxFns.tagBegin(c.raw(), name, attrs)
	return nil
}

// TagEnd closes the innermost tag named name.
func (c *Context) TagEnd(name string) error {
	defer runtime.KeepAlive(c)
	if err := requireFeature(FeatureTags); err != nil {
		return err
	}
	ctxFns.tagEnd(c.raw(), name)
	return nil
}
