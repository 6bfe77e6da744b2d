package lua

import (
	"fmt"

	rt "github.com/arnodel/golua/runtime"

	"github.com/opd-ai/go-cairo/pkg/cairo"
)

// ctxVoid adapts a call taking only cr.
func ctxVoid(fn func(*cairo.Context)) rt.GoFunctionFunc {
	return func(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
		cr, err := getContextArg(getAllArgs(c), 0)
		if err != nil {
			return nil, fmt.Errorf("cr: %w", err)
		}
		fn(cr)
		return c.Next(), nil
	}
}

// ctxNumbers adapts a call taking cr followed by n numbers.
func ctxNumbers(n int, fn func(*cairo.Context, []float64)) rt.GoFunctionFunc {
	return func(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
		args := getAllArgs(c)
		cr, err := getContextArg(args, 0)
		if err != nil {
			return nil, fmt.Errorf("cr: %w", err)
		}
		v, err := getFloatArgs(args, 1, n)
		if err != nil {
			return nil, err
		}
		fn(cr, v)
		return c.Next(), nil
	}
}

// ctxResults adapts a getter returning numbers.
func ctxResults(fn func(*cairo.Context) []float64) rt.GoFunctionFunc {
	return func(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
		cr, err := getContextArg(getAllArgs(c), 0)
		if err != nil {
			return nil, fmt.Errorf("cr: %w", err)
		}
		return pushFloats(t, c, fn(cr)...), nil
	}
}

// ctxConvert adapts the coordinate conversions: (cr, x, y) -> x, y.
func ctxConvert(fn func(*cairo.Context, float64, float64) (float64, float64)) rt.GoFunctionFunc {
	return func(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
		args := getAllArgs(c)
		cr, err := getContextArg(args, 0)
		if err != nil {
			return nil, fmt.Errorf("cr: %w", err)
		}
		v, err := getFloatArgs(args, 1, 2)
		if err != nil {
			return nil, err
		}
		x, y := fn(cr, v[0], v[1])
		return pushFloats(t, c, x, y), nil
	}
}

// ctxHitTest adapts in_fill, in_stroke and in_clip.
func ctxHitTest(fn func(*cairo.Context, float64, float64) bool) rt.GoFunctionFunc {
	return func(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
		args := getAllArgs(c)
		cr, err := getContextArg(args, 0)
		if err != nil {
			return nil, fmt.Errorf("cr: %w", err)
		}
		v, err := getFloatArgs(args, 1, 2)
		if err != nil {
			return nil, err
		}
		return c.PushingNext1(t.Runtime, rt.BoolValue(fn(cr, v[0], v[1]))), nil
	}
}

// ctxSetEnum adapts a setter taking one enum value.
func ctxSetEnum[T any](of func(int) (T, error), fn func(*cairo.Context, T)) rt.GoFunctionFunc {
	return func(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
		args := getAllArgs(c)
		cr, err := getContextArg(args, 0)
		if err != nil {
			return nil, fmt.Errorf("cr: %w", err)
		}
		v, err := getEnumArg(args, 1, of)
		if err != nil {
			return nil, err
		}
		fn(cr, v)
		return c.Next(), nil
	}
}

// ctxGetEnum adapts a getter returning one enum value.
func ctxGetEnum[T ~int32](fn func(*cairo.Context) T) rt.GoFunctionFunc {
	return func(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
		cr, err := getContextArg(getAllArgs(c), 0)
		if err != nil {
			return nil, fmt.Errorf("cr: %w", err)
		}
		return c.PushingNext1(t.Runtime, rt.IntValue(int64(fn(cr)))), nil
	}
}

// ctxPush adapts a call returning a new handle.
func ctxPush(fn func(*cairo.Context) any) rt.GoFunctionFunc {
	return func(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
		cr, err := getContextArg(getAllArgs(c), 0)
		if err != nil {
			return nil, fmt.Errorf("cr: %w", err)
		}
		return c.PushingNext1(t.Runtime, newUserData(fn(cr))), nil
	}
}

func (b *Bindings) registerContextFunctions() {
	b.set("create", b.create, 1)
	b.set("destroy", destroyHandle[*cairo.Context]("context"), 1)
	b.set("status", b.status, 1)
	b.set("get_reference_count", b.referenceCount, 1)
	b.set("save", ctxVoid((*cairo.Context).Save), 1)
	b.set("restore", ctxVoid((*cairo.Context).Restore), 1)
	b.set("get_target", ctxPush(func(cr *cairo.Context) any { return cr.Target() }), 1)

	b.set("push_group", ctxVoid((*cairo.Context).PushGroup), 1)
	b.set("push_group_with_content", ctxSetEnum(cairo.ContentOf, (*cairo.Context).PushGroupWithContent), 2)
	b.set("pop_group", ctxPush(func(cr *cairo.Context) any { return cr.PopGroup() }), 1)
	b.set("pop_group_to_source", ctxVoid((*cairo.Context).PopGroupToSource), 1)
	b.set("get_group_target", ctxPush(func(cr *cairo.Context) any { return cr.GroupTarget() }), 1)

	b.set("set_source_rgb", ctxNumbers(3, func(cr *cairo.Context, v []float64) {
		cr.SetSourceRGB(v[0], v[1], v[2])
	}), 4)
	b.set("set_source_rgba", ctxNumbers(4, func(cr *cairo.Context, v []float64) {
		cr.SetSourceRGBA(v[0], v[1], v[2], v[3])
	}), 5)
	b.set("set_source", b.setSource, 2)
	b.set("set_source_surface", b.setSourceSurface, 4)
	b.set("get_source", ctxPush(func(cr *cairo.Context) any { return cr.Source() }), 1)

	b.set("set_operator", ctxSetEnum(cairo.OperatorOf, (*cairo.Context).SetOperator), 2)
	b.set("get_operator", ctxGetEnum((*cairo.Context).Operator), 1)
	b.set("set_antialias", ctxSetEnum(cairo.AntialiasOf, (*cairo.Context).SetAntialias), 2)
	b.set("get_antialias", ctxGetEnum((*cairo.Context).Antialias), 1)
	b.set("set_fill_rule", ctxSetEnum(cairo.FillRuleOf, (*cairo.Context).SetFillRule), 2)
	b.set("get_fill_rule", ctxGetEnum((*cairo.Context).FillRule), 1)
	b.set("set_line_cap", ctxSetEnum(cairo.LineCapOf, (*cairo.Context).SetLineCap), 2)
	b.set("get_line_cap", ctxGetEnum((*cairo.Context).LineCap), 1)
	b.set("set_line_join", ctxSetEnum(cairo.LineJoinOf, (*cairo.Context).SetLineJoin), 2)
	b.set("get_line_join", ctxGetEnum((*cairo.Context).LineJoin), 1)

	b.set("set_tolerance", ctxNumbers(1, func(cr *cairo.Context, v []float64) { cr.SetTolerance(v[0]) }), 2)
	b.set("get_tolerance", ctxResults(func(cr *cairo.Context) []float64 { return []float64{cr.Tolerance()} }), 1)
	b.set("set_line_width", ctxNumbers(1, func(cr *cairo.Context, v []float64) { cr.SetLineWidth(v[0]) }), 2)
	b.set("get_line_width", ctxResults(func(cr *cairo.Context) []float64 { return []float64{cr.LineWidth()} }), 1)
	b.set("set_miter_limit", ctxNumbers(1, func(cr *cairo.Context, v []float64) { cr.SetMiterLimit(v[0]) }), 2)
	b.set("get_miter_limit", ctxResults(func(cr *cairo.Context) []float64 { return []float64{cr.MiterLimit()} }), 1)
	b.set("set_dash", b.setDash, 3)
	b.set("get_dash_count", b.getDashCount, 1)
	b.set("get_dash", b.getDash, 1)

	b.set("translate", ctxNumbers(2, func(cr *cairo.Context, v []float64) { cr.Translate(v[0], v[1]) }), 3)
	b.set("scale", ctxNumbers(2, func(cr *cairo.Context, v []float64) { cr.Scale(v[0], v[1]) }), 3)
	b.set("rotate", ctxNumbers(1, func(cr *cairo.Context, v []float64) { cr.Rotate(v[0]) }), 2)
	b.set("transform", b.transform, 2)
	b.set("set_matrix", b.setMatrix, 2)
	b.set("get_matrix", ctxPush(func(cr *cairo.Context) any { m := cr.Matrix(); return &m }), 1)
	b.set("identity_matrix", ctxVoid((*cairo.Context).IdentityMatrix), 1)
	b.set("user_to_device", ctxConvert((*cairo.Context).UserToDevice), 3)
	b.set("user_to_device_distance", ctxConvert((*cairo.Context).UserToDeviceDistance), 3)
	b.set("device_to_user", ctxConvert((*cairo.Context).DeviceToUser), 3)
	b.set("device_to_user_distance", ctxConvert((*cairo.Context).DeviceToUserDistance), 3)

	b.set("paint", ctxVoid((*cairo.Context).Paint), 1)
	b.set("paint_with_alpha", ctxNumbers(1, func(cr *cairo.Context, v []float64) { cr.PaintWithAlpha(v[0]) }), 2)
	b.set("mask", b.mask, 2)
	b.set("mask_surface", b.maskSurface, 4)
	b.set("stroke", ctxVoid((*cairo.Context).Stroke), 1)
	b.set("stroke_preserve", ctxVoid((*cairo.Context).StrokePreserve), 1)
	b.set("fill", ctxVoid((*cairo.Context).Fill), 1)
	b.set("fill_preserve", ctxVoid((*cairo.Context).FillPreserve), 1)
	b.set("stroke_extents", ctxResults(extents((*cairo.Context).StrokeExtents)), 1)
	b.set("fill_extents", ctxResults(extents((*cairo.Context).FillExtents)), 1)
	b.set("in_stroke", ctxHitTest((*cairo.Context).InStroke), 3)
	b.set("in_fill", ctxHitTest((*cairo.Context).InFill), 3)
	b.set("in_clip", ctxHitTest((*cairo.Context).InClip), 3)

	b.set("clip", ctxVoid((*cairo.Context).Clip), 1)
	b.set("clip_preserve", ctxVoid((*cairo.Context).ClipPreserve), 1)
	b.set("reset_clip", ctxVoid((*cairo.Context).ResetClip), 1)
	b.set("clip_extents", ctxResults(extents((*cairo.Context).ClipExtents)), 1)

	b.set("copy_page", ctxVoid((*cairo.Context).CopyPage), 1)
	b.set("show_page", ctxVoid((*cairo.Context).ShowPage), 1)
	b.set("tag_begin", b.tagBegin, 3)
	b.set("tag_end", b.tagEnd, 2)
}

func extents(fn func(*cairo.Context) (float64, float64, float64, float64)) func(*cairo.Context) []float64 {
	return func(cr *cairo.Context) []float64 {
		x1, y1, x2, y2 := fn(cr)
		return []float64{x1, y1, x2, y2}
	}
}

// create handles cairo_create(surface)
func (b *Bindings) create(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	s, err := getSurfaceArg(getAllArgs(c), 0)
	if err != nil {
		return nil, fmt.Errorf("surface: %w", err)
	}
	cr, err := cairo.NewContext(s)
	if err != nil {
		return nil, err
	}
	return c.PushingNext1(t.Runtime, newUserData(cr)), nil
}

// status handles cairo_status(cr)
func (b *Bindings) status(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	cr, err := getContextArg(getAllArgs(c), 0)
	if err != nil {
		return nil, fmt.Errorf("cr: %w", err)
	}
	return c.PushingNext1(t.Runtime, statusValue(cr.Status())), nil
}

// referenceCount handles cairo_get_reference_count(cr)
func (b *Bindings) referenceCount(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	cr, err := getContextArg(getAllArgs(c), 0)
	if err != nil {
		return nil, fmt.Errorf("cr: %w", err)
	}
	return c.PushingNext1(t.Runtime, rt.IntValue(int64(cr.ReferenceCount()))), nil
}

// setSource handles cairo_set_source(cr, pattern)
func (b *Bindings) setSource(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	args := getAllArgs(c)
	cr, err := getContextArg(args, 0)
	if err != nil {
		return nil, fmt.Errorf("cr: %w", err)
	}
	p, err := getPatternArg(args, 1)
	if err != nil {
		return nil, fmt.Errorf("pattern: %w", err)
	}
	cr.SetSource(p)
	return c.Next(), nil
}

// setSourceSurface handles cairo_set_source_surface(cr, surface, x, y)
func (b *Bindings) setSourceSurface(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	args := getAllArgs(c)
	cr, err := getContextArg(args, 0)
	if err != nil {
		return nil, fmt.Errorf("cr: %w", err)
	}
	s, err := getSurfaceArg(args, 1)
	if err != nil {
		return nil, fmt.Errorf("surface: %w", err)
	}
	v, err := getFloatArgs(args, 2, 2)
	if err != nil {
		return nil, err
	}
	cr.SetSourceSurface(s, v[0], v[1])
	return c.Next(), nil
}

// mask handles cairo_mask(cr, pattern)
func (b *Bindings) mask(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	args := getAllArgs(c)
	cr, err := getContextArg(args, 0)
	if err != nil {
		return nil, fmt.Errorf("cr: %w", err)
	}
	p, err := getPatternArg(args, 1)
	if err != nil {
		return nil, fmt.Errorf("pattern: %w", err)
	}
	cr.Mask(p)
	return c.Next(), nil
}

// maskSurface handles cairo_mask_surface(cr, surface, x, y)
func (b *Bindings) maskSurface(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	args := getAllArgs(c)
	cr, err := getContextArg(args, 0)
	if err != nil {
		return nil, fmt.Errorf("cr: %w", err)
	}
	s, err := getSurfaceArg(args, 1)
	if err != nil {
		return nil, fmt.Errorf("surface: %w", err)
	}
	v, err := getFloatArgs(args, 2, 2)
	if err != nil {
		return nil, err
	}
	cr.MaskSurface(s, v[0], v[1])
	return c.Next(), nil
}

// setDash handles cairo_set_dash(cr, dashes, offset). dashes is a Lua
// array of numbers; an empty array turns dashing off.
func (b *Bindings) setDash(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	args := getAllArgs(c)
	cr, err := getContextArg(args, 0)
	if err != nil {
		return nil, fmt.Errorf("cr: %w", err)
	}
	if len(args) < 2 {
		return nil, fmt.Errorf("dashes: argument 1 out of range (have %d)", len(args))
	}
	table, ok := args[1].TryTable()
	if !ok {
		return nil, fmt.Errorf("dashes: %w: argument 1 is not a table", ErrWrongType)
	}
	dashes, err := floatArray(table)
	if err != nil {
		return nil, fmt.Errorf("dashes: %w", err)
	}
	offset := 0.0
	if len(args) > 2 {
		if offset, err = getFloatArg(args, 2); err != nil {
			return nil, fmt.Errorf("offset: %w", err)
		}
	}
	cr.SetDash(dashes, offset)
	return c.Next(), nil
}

// getDashCount handles cairo_get_dash_count(cr)
func (b *Bindings) getDashCount(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	cr, err := getContextArg(getAllArgs(c), 0)
	if err != nil {
		return nil, fmt.Errorf("cr: %w", err)
	}
	return c.PushingNext1(t.Runtime, rt.IntValue(int64(cr.DashCount()))), nil
}

// getDash handles cairo_get_dash(cr), returning the dash array and offset.
func (b *Bindings) getDash(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	cr, err := getContextArg(getAllArgs(c), 0)
	if err != nil {
		return nil, fmt.Errorf("cr: %w", err)
	}
	dashes, offset := cr.Dash()
	table := rt.NewTable()
	for i, d := range dashes {
		table.Set(rt.IntValue(int64(i+1)), rt.FloatValue(d))
	}
	return c.PushingNext(t.Runtime, rt.TableValue(table), rt.FloatValue(offset)), nil
}

// transform handles cairo_transform(cr, matrix)
func (b *Bindings) transform(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	args := getAllArgs(c)
	cr, err := getContextArg(args, 0)
	if err != nil {
		return nil, fmt.Errorf("cr: %w", err)
	}
	m, err := getMatrixArg(args, 1)
	if err != nil {
		return nil, fmt.Errorf("matrix: %w", err)
	}
	cr.Transform(*m)
	return c.Next(), nil
}

// setMatrix handles cairo_set_matrix(cr, matrix)
func (b *Bindings) setMatrix(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	args := getAllArgs(c)
	cr, err := getContextArg(args, 0)
	if err != nil {
		return nil, fmt.Errorf("cr: %w", err)
	}
	m, err := getMatrixArg(args, 1)
	if err != nil {
		return nil, fmt.Errorf("matrix: %w", err)
	}
	cr.SetMatrix(*m)
	return c.Next(), nil
}

// tagBegin handles cairo_tag_begin(cr, name, attributes)
func (b *Bindings) tagBegin(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	args := getAllArgs(c)
	cr, err := getContextArg(args, 0)
	if err != nil {
		return nil, fmt.Errorf("cr: %w", err)
	}
	name, err := getStringArg(args, 1)
	if err != nil {
		return nil, fmt.Errorf("name: %w", err)
	}
	attrs := ""
	if len(args) > 2 && !args[2].IsNil() {
		if attrs, err = getStringArg(args, 2); err != nil {
			return nil, fmt.Errorf("attributes: %w", err)
		}
	}
	if err := cr.TagBegin(name, attrs); err != nil {
		return nil, err
	}
	return c.Next(), nil
}

// tagEnd handles cairo_tag_end(cr, name)
func (b *Bindings) tagEnd(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	args := getAllArgs(c)
	cr, err := getContextArg(args, 0)
	if err != nil {
		return nil, fmt.Errorf("cr: %w", err)
	}
	name, err := getStringArg(args, 1)
	if err != nil {
		return nil, fmt.Errorf("name: %w", err)
	}
	if err := cr.TagEnd(name); err != nil {
		return nil, err
	}
	return c.Next(), nil
}

// floatArray reads a Lua array of numbers.
func floatArray(table *rt.Table) ([]float64, error) {
	var out []float64
	for i := int64(1); ; i++ {
		v := table.Get(rt.IntValue(i))
		if v.IsNil() {
			return out, nil
		}
		f, ok := v.TryFloat()
		if !ok {
			n, ok := v.TryInt()
			if !ok {
				return nil, fmt.Errorf("element %d is not a number", i)
			}
			f = float64(n)
		}
		out = append(out, f)
	}
}
