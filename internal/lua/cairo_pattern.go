package lua

import (
	"fmt"

	rt "github.com/arnodel/golua/runtime"

	"github.com/opd-ai/go-cairo/pkg/cairo"
)

func (b *Bindings) registerPatternFunctions() {
	b.set("pattern_create_rgb", patternFromNumbers(3, func(v []float64) (*cairo.Pattern, error) {
		return cairo.NewSolidPattern(v[0], v[1], v[2])
	}), 3)
	b.set("pattern_create_rgba", patternFromNumbers(4, func(v []float64) (*cairo.Pattern, error) {
		return cairo.NewSolidPatternRGBA(v[0], v[1], v[2], v[3])
	}), 4)
	b.set("pattern_create_linear", patternFromNumbers(4, func(v []float64) (*cairo.Pattern, error) {
		return cairo.NewLinearGradient(v[0], v[1], v[2], v[3])
	}), 4)
	b.set("pattern_create_radial", patternFromNumbers(6, func(v []float64) (*cairo.Pattern, error) {
		return cairo.NewRadialGradient(
			cairo.Circle{X: v[0], Y: v[1], Radius: v[2]},
			cairo.Circle{X: v[3], Y: v[4], Radius: v[5]},
		)
	}), 6)
	b.set("pattern_create_mesh", patternFromNumbers(0, func([]float64) (*cairo.Pattern, error) {
		return cairo.NewMeshPattern()
	}), 0)
	b.set("pattern_create_for_surface", b.patternCreateForSurface, 1)
	b.set("pattern_destroy", destroyHandle[*cairo.Pattern]("pattern"), 1)
	b.set("pattern_status", b.patternStatus, 1)
	b.set("pattern_get_type", patternGetEnum((*cairo.Pattern).Type), 1)

	b.set("pattern_add_color_stop_rgb", patternNumbers(4, func(p *cairo.Pattern, v []float64) {
		p.AddColorStop(v[0], v[1], v[2], v[3])
	}), 5)
	b.set("pattern_add_color_stop_rgba", patternNumbers(5, func(p *cairo.Pattern, v []float64) {
		p.AddColorStopRGBA(v[0], v[1], v[2], v[3], v[4])
	}), 6)
	b.set("pattern_get_color_stop_count", b.patternGetColorStopCount, 1)
	b.set("pattern_set_extend", patternSetEnum(cairo.ExtendOf, (*cairo.Pattern).SetExtend), 2)
	b.set("pattern_get_extend", patternGetEnum((*cairo.Pattern).Extend), 1)
	b.set("pattern_set_filter", patternSetEnum(cairo.FilterOf, (*cairo.Pattern).SetFilter), 2)
	b.set("pattern_get_filter", patternGetEnum((*cairo.Pattern).Filter), 1)
	b.set("pattern_set_matrix", b.patternSetMatrix, 2)
	b.set("pattern_get_matrix", b.patternGetMatrix, 1)

	b.set("mesh_pattern_begin_patch", patternNumbers(0, func(p *cairo.Pattern, _ []float64) { p.BeginPatch() }), 1)
	b.set("mesh_pattern_end_patch", patternNumbers(0, func(p *cairo.Pattern, _ []float64) { p.EndPatch() }), 1)
	b.set("mesh_pattern_move_to", patternNumbers(2, func(p *cairo.Pattern, v []float64) { p.MeshMoveTo(v[0], v[1]) }), 3)
	b.set("mesh_pattern_line_to", patternNumbers(2, func(p *cairo.Pattern, v []float64) { p.MeshLineTo(v[0], v[1]) }), 3)
	b.set("mesh_pattern_curve_to", patternNumbers(6, func(p *cairo.Pattern, v []float64) {
		p.MeshCurveTo(v[0], v[1], v[2], v[3], v[4], v[5])
	}), 7)
	b.set("mesh_pattern_set_control_point", patternNumbers(3, func(p *cairo.Pattern, v []float64) {
		p.SetControlPoint(int(v[0]), v[1], v[2])
	}), 4)
	b.set("mesh_pattern_set_corner_color_rgb", patternNumbers(4, func(p *cairo.Pattern, v []float64) {
		p.SetCornerColor(int(v[0]), cairo.RGBA{R: v[1], G: v[2], B: v[3], A: 1})
	}), 5)
	b.set("mesh_pattern_set_corner_color_rgba", patternNumbers(5, func(p *cairo.Pattern, v []float64) {
		p.SetCornerColor(int(v[0]), cairo.RGBA{R: v[1], G: v[2], B: v[3], A: v[4]})
	}), 6)
	b.set("mesh_pattern_get_patch_count", b.meshPatternGetPatchCount, 1)
}

func patternFromNumbers(n int, create func([]float64) (*cairo.Pattern, error)) rt.GoFunctionFunc {
	return func(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
		v, err := getFloatArgs(getAllArgs(c), 0, n)
		if err != nil {
			return nil, err
		}
		p, err := create(v)
		if err != nil {
			return nil, err
		}
		return c.PushingNext1(t.Runtime, newUserData(p)), nil
	}
}

func patternNumbers(n int, fn func(*cairo.Pattern, []float64)) rt.GoFunctionFunc {
	return func(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
		args := getAllArgs(c)
		p, err := getPatternArg(args, 0)
		if err != nil {
			return nil, fmt.Errorf("pattern: %w", err)
		}
		v, err := getFloatArgs(args, 1, n)
		if err != nil {
			return nil, err
		}
		fn(p, v)
		return c.Next(), nil
	}
}

func patternSetEnum[T any](of func(int) (T, error), fn func(*cairo.Pattern, T)) rt.GoFunctionFunc {
	return func(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
		args := getAllArgs(c)
		p, err := getPatternArg(args, 0)
		if err != nil {
			return nil, fmt.Errorf("pattern: %w", err)
		}
		v, err := getEnumArg(args, 1, of)
		if err != nil {
			return nil, err
		}
		fn(p, v)
		return c.Next(), nil
	}
}

func patternGetEnum[T ~int32](fn func(*cairo.Pattern) T) rt.GoFunctionFunc {
	return func(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
		p, err := getPatternArg(getAllArgs(c), 0)
		if err != nil {
			return nil, fmt.Errorf("pattern: %w", err)
		}
		return c.PushingNext1(t.Runtime, rt.IntValue(int64(fn(p)))), nil
	}
}

// patternCreateForSurface handles cairo_pattern_create_for_surface(surface)
func (b *Bindings) patternCreateForSurface(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	s, err := getSurfaceArg(getAllArgs(c), 0)
	if err != nil {
		return nil, fmt.Errorf("surface: %w", err)
	}
	p, err := cairo.NewSurfacePattern(s)
	if err != nil {
		return nil, err
	}
	return c.PushingNext1(t.Runtime, newUserData(p)), nil
}

// patternStatus handles cairo_pattern_status(pattern)
func (b *Bindings) patternStatus(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	p, err := getPatternArg(getAllArgs(c), 0)
	if err != nil {
		return nil, fmt.Errorf("pattern: %w", err)
	}
	return c.PushingNext1(t.Runtime, statusValue(p.Status())), nil
}

// patternGetColorStopCount handles cairo_pattern_get_color_stop_count(pattern)
func (b *Bindings) patternGetColorStopCount(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	p, err := getPatternArg(getAllArgs(c), 0)
	if err != nil {
		return nil, fmt.Errorf("pattern: %w", err)
	}
	stops, err := p.ColorStops()
	if err != nil {
		return nil, err
	}
	return c.PushingNext1(t.Runtime, rt.IntValue(int64(len(stops)))), nil
}

// patternSetMatrix handles cairo_pattern_set_matrix(pattern, matrix)
func (b *Bindings) patternSetMatrix(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	args := getAllArgs(c)
	p, err := getPatternArg(args, 0)
	if err != nil {
		return nil, fmt.Errorf("pattern: %w", err)
	}
	m, err := getMatrixArg(args, 1)
	if err != nil {
		return nil, fmt.Errorf("matrix: %w", err)
	}
	p.SetMatrix(*m)
	return c.Next(), nil
}

// patternGetMatrix handles cairo_pattern_get_matrix(pattern)
func (b *Bindings) patternGetMatrix(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	p, err := getPatternArg(getAllArgs(c), 0)
	if err != nil {
		return nil, fmt.Errorf("pattern: %w", err)
	}
	m := p.Matrix()
	return c.PushingNext1(t.Runtime, newUserData(&m)), nil
}

// meshPatternGetPatchCount handles cairo_mesh_pattern_get_patch_count(pattern)
func (b *Bindings) meshPatternGetPatchCount(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	p, err := getPatternArg(getAllArgs(c), 0)
	if err != nil {
		return nil, fmt.Errorf("pattern: %w", err)
	}
	n, err := p.PatchCount()
	if err != nil {
		return nil, err
	}
	return c.PushingNext1(t.Runtime, rt.IntValue(int64(n))), nil
}
