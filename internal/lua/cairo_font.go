package lua

import (
	"fmt"

	rt "github.com/arnodel/golua/runtime"

	"github.com/opd-ai/go-cairo/pkg/cairo"
)

func (b *Bindings) registerTextFunctions() {
	b.set("select_font_face", b.selectFontFace, 4)
	b.set("set_font_size", ctxNumbers(1, func(cr *cairo.Context, v []float64) { cr.SetFontSize(v[0]) }), 2)
	b.set("set_font_matrix", b.setFontMatrix, 2)
	b.set("get_font_matrix", ctxPush(func(cr *cairo.Context) any { m := cr.FontMatrix(); return &m }), 1)
	b.set("set_font_face", b.setFontFace, 2)
	b.set("get_font_face", ctxPush(func(cr *cairo.Context) any { return cr.FontFace() }), 1)
	b.set("set_font_options", b.setFontOptions, 2)
	b.set("get_font_options", b.getFontOptions, 1)
	b.set("show_text", ctxText((*cairo.Context).ShowText), 2)
	b.set("text_path", ctxText((*cairo.Context).TextPath), 2)
	b.set("text_extents", b.textExtents, 2)
	b.set("font_extents", b.fontExtents, 1)
	b.set("show_glyphs", ctxGlyphs((*cairo.Context).ShowGlyphs), 2)
	b.set("glyph_path", ctxGlyphs((*cairo.Context).GlyphPath), 2)

	b.set("toy_font_face_create", b.toyFontFaceCreate, 3)
	b.set("toy_font_face_get_family", b.toyFontFaceGetFamily, 1)
	b.set("font_face_destroy", destroyHandle[*cairo.FontFace]("font face"), 1)
	b.set("font_face_status", b.fontFaceStatus, 1)

	b.set("font_options_create", b.fontOptionsCreate, 0)
	b.set("font_options_destroy", destroyHandle[*cairo.FontOptions]("font options"), 1)
	b.set("font_options_set_antialias", optionsSetEnum(cairo.AntialiasOf, (*cairo.FontOptions).SetAntialias), 2)
	b.set("font_options_get_antialias", optionsGetEnum((*cairo.FontOptions).Antialias), 1)
	b.set("font_options_set_subpixel_order", optionsSetEnum(cairo.SubpixelOrderOf, (*cairo.FontOptions).SetSubpixelOrder), 2)
	b.set("font_options_get_subpixel_order", optionsGetEnum((*cairo.FontOptions).SubpixelOrder), 1)
	b.set("font_options_set_hint_style", optionsSetEnum(cairo.HintStyleOf, (*cairo.FontOptions).SetHintStyle), 2)
	b.set("font_options_get_hint_style", optionsGetEnum((*cairo.FontOptions).HintStyle), 1)
	b.set("font_options_set_hint_metrics", optionsSetEnum(cairo.HintMetricsOf, (*cairo.FontOptions).SetHintMetrics), 2)
	b.set("font_options_get_hint_metrics", optionsGetEnum((*cairo.FontOptions).HintMetrics), 1)
}

// ctxText adapts show_text and text_path.
func ctxText(fn func(*cairo.Context, string)) rt.GoFunctionFunc {
	return func(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
		args := getAllArgs(c)
		cr, err := getContextArg(args, 0)
		if err != nil {
			return nil, fmt.Errorf("cr: %w", err)
		}
		text, err := getStringArg(args, 1)
		if err != nil {
			return nil, fmt.Errorf("text: %w", err)
		}
		fn(cr, text)
		return c.Next(), nil
	}
}

// ctxGlyphs adapts show_glyphs and glyph_path. Glyphs are passed as an
// array of {index, x, y} tables.
func ctxGlyphs(fn func(*cairo.Context, []cairo.Glyph)) rt.GoFunctionFunc {
	return func(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
		args := getAllArgs(c)
		cr, err := getContextArg(args, 0)
		if err != nil {
			return nil, fmt.Errorf("cr: %w", err)
		}
		if len(args) < 2 {
			return nil, fmt.Errorf("glyphs: argument 1 out of range (have %d)", len(args))
		}
		table, ok := args[1].TryTable()
		if !ok {
			return nil, fmt.Errorf("glyphs: %w: argument 1 is not a table", ErrWrongType)
		}
		var glyphs []cairo.Glyph
		for i := int64(1); ; i++ {
			v := table.Get(rt.IntValue(i))
			if v.IsNil() {
				break
			}
			g, ok := v.TryTable()
			if !ok {
				return nil, fmt.Errorf("glyphs: element %d is not a table", i)
			}
			index, iok := g.Get(rt.StringValue("index")).TryInt()
			x, xok := tableNumber(g, "x")
			y, yok := tableNumber(g, "y")
			if !iok || !xok || !yok || index < 0 {
				return nil, fmt.Errorf("glyphs: element %d needs index, x and y", i)
			}
			glyphs = append(glyphs, cairo.Glyph{Index: uint64(index), X: x, Y: y})
		}
		fn(cr, glyphs)
		return c.Next(), nil
	}
}

// selectFontFace handles cairo_select_font_face(cr, family, slant, weight)
func (b *Bindings) selectFontFace(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	args := getAllArgs(c)
	cr, err := getContextArg(args, 0)
	if err != nil {
		return nil, fmt.Errorf("cr: %w", err)
	}
	family, err := getStringArg(args, 1)
	if err != nil {
		return nil, fmt.Errorf("family: %w", err)
	}
	slant, weight, err := slantWeightArgs(args, 2)
	if err != nil {
		return nil, err
	}
	cr.SelectFontFace(family, slant, weight)
	return c.Next(), nil
}

// slantWeightArgs reads optional slant and weight arguments, defaulting
// to normal.
func slantWeightArgs(args []rt.Value, idx int) (cairo.FontSlant, cairo.FontWeight, error) {
	slant, weight := cairo.FontSlantNormal, cairo.FontWeightNormal
	var err error
	if len(args) > idx && !args[idx].IsNil() {
		if slant, err = getEnumArg(args, idx, cairo.FontSlantOf); err != nil {
			return 0, 0, fmt.Errorf("slant: %w", err)
		}
	}
	if len(args) > idx+1 && !args[idx+1].IsNil() {
		if weight, err = getEnumArg(args, idx+1, cairo.FontWeightOf); err != nil {
			return 0, 0, fmt.Errorf("weight: %w", err)
		}
	}
	return slant, weight, nil
}

// setFontMatrix handles cairo_set_font_matrix(cr, matrix)
func (b *Bindings) setFontMatrix(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	args := getAllArgs(c)
	cr, err := getContextArg(args, 0)
	if err != nil {
		return nil, fmt.Errorf("cr: %w", err)
	}
	m, err := getMatrixArg(args, 1)
	if err != nil {
		return nil, fmt.Errorf("matrix: %w", err)
	}
	cr.SetFontMatrix(*m)
	return c.Next(), nil
}

// setFontFace handles cairo_set_font_face(cr, face). A nil face restores
// the default font.
func (b *Bindings) setFontFace(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	args := getAllArgs(c)
	cr, err := getContextArg(args, 0)
	if err != nil {
		return nil, fmt.Errorf("cr: %w", err)
	}
	if len(args) < 2 || args[1].IsNil() {
		cr.SetFontFace(nil)
		return c.Next(), nil
	}
	face, err := getFontFaceArg(args, 1)
	if err != nil {
		return nil, fmt.Errorf("face: %w", err)
	}
	cr.SetFontFace(face)
	return c.Next(), nil
}

// setFontOptions handles cairo_set_font_options(cr, options)
func (b *Bindings) setFontOptions(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	args := getAllArgs(c)
	cr, err := getContextArg(args, 0)
	if err != nil {
		return nil, fmt.Errorf("cr: %w", err)
	}
	opts, err := getFontOptionsArg(args, 1)
	if err != nil {
		return nil, fmt.Errorf("options: %w", err)
	}
	cr.SetFontOptions(opts)
	return c.Next(), nil
}

// getFontOptions handles cairo_get_font_options(cr)
func (b *Bindings) getFontOptions(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	cr, err := getContextArg(getAllArgs(c), 0)
	if err != nil {
		return nil, fmt.Errorf("cr: %w", err)
	}
	opts, err := cr.FontOptions()
	if err != nil {
		return nil, err
	}
	return c.PushingNext1(t.Runtime, newUserData(opts)), nil
}

// textExtents handles cairo_text_extents(cr, text)
func (b *Bindings) textExtents(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	args := getAllArgs(c)
	cr, err := getContextArg(args, 0)
	if err != nil {
		return nil, fmt.Errorf("cr: %w", err)
	}
	text, err := getStringArg(args, 1)
	if err != nil {
		return nil, fmt.Errorf("text: %w", err)
	}
	e := cr.TextExtents(text)
	table := rt.NewTable()
	table.Set(rt.StringValue("x_bearing"), rt.FloatValue(e.XBearing))
	table.Set(rt.StringValue("y_bearing"), rt.FloatValue(e.YBearing))
	table.Set(rt.StringValue("width"), rt.FloatValue(e.Width))
	table.Set(rt.StringValue("height"), rt.FloatValue(e.Height))
	table.Set(rt.StringValue("x_advance"), rt.FloatValue(e.XAdvance))
	table.Set(rt.StringValue("y_advance"), rt.FloatValue(e.YAdvance))
	return c.PushingNext1(t.Runtime, rt.TableValue(table)), nil
}

// fontExtents handles cairo_font_extents(cr)
func (b *Bindings) fontExtents(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	cr, err := getContextArg(getAllArgs(c), 0)
	if err != nil {
		return nil, fmt.Errorf("cr: %w", err)
	}
	e := cr.FontExtents()
	table := rt.NewTable()
	table.Set(rt.StringValue("ascent"), rt.FloatValue(e.Ascent))
	table.Set(rt.StringValue("descent"), rt.FloatValue(e.Descent))
	table.Set(rt.StringValue("height"), rt.FloatValue(e.Height))
	table.Set(rt.StringValue("max_x_advance"), rt.FloatValue(e.MaxXAdvance))
	table.Set(rt.StringValue("max_y_advance"), rt.FloatValue(e.MaxYAdvance))
	return c.PushingNext1(t.Runtime, rt.TableValue(table)), nil
}

// toyFontFaceCreate handles cairo_toy_font_face_create(family, slant, weight)
func (b *Bindings) toyFontFaceCreate(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	args := getAllArgs(c)
	family, err := getStringArg(args, 0)
	if err != nil {
		return nil, fmt.Errorf("family: %w", err)
	}
	slant, weight, err := slantWeightArgs(args, 1)
	if err != nil {
		return nil, err
	}
	face, err := cairo.NewToyFontFace(family, slant, weight)
	if err != nil {
		return nil, err
	}
	return c.PushingNext1(t.Runtime, newUserData(face)), nil
}

// toyFontFaceGetFamily handles cairo_toy_font_face_get_family(face)
func (b *Bindings) toyFontFaceGetFamily(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	face, err := getFontFaceArg(getAllArgs(c), 0)
	if err != nil {
		return nil, fmt.Errorf("face: %w", err)
	}
	return c.PushingNext1(t.Runtime, rt.StringValue(face.Family())), nil
}

// fontFaceStatus handles cairo_font_face_status(face)
func (b *Bindings) fontFaceStatus(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	face, err := getFontFaceArg(getAllArgs(c), 0)
	if err != nil {
		return nil, fmt.Errorf("face: %w", err)
	}
	return c.PushingNext1(t.Runtime, statusValue(face.Status())), nil
}

// fontOptionsCreate handles cairo_font_options_create()
func (b *Bindings) fontOptionsCreate(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	opts, err := cairo.NewFontOptions()
	if err != nil {
		return nil, err
	}
	return c.PushingNext1(t.Runtime, newUserData(opts)), nil
}

func optionsSetEnum[T any](of func(int) (T, error), fn func(*cairo.FontOptions, T)) rt.GoFunctionFunc {
	return func(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
		args := getAllArgs(c)
		opts, err := getFontOptionsArg(args, 0)
		if err != nil {
			return nil, fmt.Errorf("options: %w", err)
		}
		v, err := getEnumArg(args, 1, of)
		if err != nil {
			return nil, err
		}
		fn(opts, v)
		return c.Next(), nil
	}
}

func optionsGetEnum[T ~int32](fn func(*cairo.FontOptions) T) rt.GoFunctionFunc {
	return func(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
		opts, err := getFontOptionsArg(getAllArgs(c), 0)
		if err != nil {
			return nil, fmt.Errorf("options: %w", err)
		}
		return c.PushingNext1(t.Runtime, rt.IntValue(int64(fn(opts)))), nil
	}
}
