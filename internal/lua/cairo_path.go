package lua

import (
	"fmt"

	rt "github.com/arnodel/golua/runtime"

	"github.com/opd-ai/go-cairo/pkg/cairo"
)

func (b *Bindings) registerPathFunctions() {
	b.set("new_path", ctxVoid((*cairo.Context).NewPath), 1)
	b.set("new_sub_path", ctxVoid((*cairo.Context).NewSubPath), 1)
	b.set("close_path", ctxVoid((*cairo.Context).ClosePath), 1)
	b.set("move_to", ctxNumbers(2, func(cr *cairo.Context, v []float64) { cr.MoveTo(v[0], v[1]) }), 3)
	b.set("line_to", ctxNumbers(2, func(cr *cairo.Context, v []float64) { cr.LineTo(v[0], v[1]) }), 3)
	b.set("rel_move_to", ctxNumbers(2, func(cr *cairo.Context, v []float64) { cr.RelMoveTo(v[0], v[1]) }), 3)
	b.set("rel_line_to", ctxNumbers(2, func(cr *cairo.Context, v []float64) { cr.RelLineTo(v[0], v[1]) }), 3)
	b.set("curve_to", ctxNumbers(6, func(cr *cairo.Context, v []float64) {
		cr.CurveTo(v[0], v[1], v[2], v[3], v[4], v[5])
	}), 7)
	b.set("rel_curve_to", ctxNumbers(6, func(cr *cairo.Context, v []float64) {
		cr.RelCurveTo(v[0], v[1], v[2], v[3], v[4], v[5])
	}), 7)
	b.set("arc", ctxNumbers(5, func(cr *cairo.Context, v []float64) {
		cr.Arc(v[0], v[1], v[2], v[3], v[4])
	}), 6)
	b.set("arc_negative", ctxNumbers(5, func(cr *cairo.Context, v []float64) {
		cr.ArcNegative(v[0], v[1], v[2], v[3], v[4])
	}), 6)
	b.set("rectangle", ctxNumbers(4, func(cr *cairo.Context, v []float64) {
		cr.Rectangle(v[0], v[1], v[2], v[3])
	}), 5)

	b.set("path_extents", ctxResults(extents((*cairo.Context).PathExtents)), 1)
	b.set("has_current_point", b.hasCurrentPoint, 1)
	b.set("get_current_point", ctxResults(func(cr *cairo.Context) []float64 {
		x, y := cr.CurrentPoint()
		return []float64{x, y}
	}), 1)

	b.set("copy_path", b.copyPath((*cairo.Context).CopyPath), 1)
	b.set("copy_path_flat", b.copyPath((*cairo.Context).CopyPathFlat), 1)
	b.set("append_path", b.appendPath, 2)
	b.set("path_destroy", destroyHandle[*cairo.Path]("path"), 1)
	b.set("path_segments", b.pathSegments, 1)
}

// hasCurrentPoint handles cairo_has_current_point(cr)
func (b *Bindings) hasCurrentPoint(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	cr, err := getContextArg(getAllArgs(c), 0)
	if err != nil {
		return nil, fmt.Errorf("cr: %w", err)
	}
	return c.PushingNext1(t.Runtime, rt.BoolValue(cr.HasCurrentPoint())), nil
}

// copyPath handles cairo_copy_path(cr) and cairo_copy_path_flat(cr). The
// result is a path userdata; cairo_path_segments decodes it.
func (b *Bindings) copyPath(copyFn func(*cairo.Context) (*cairo.Path, error)) rt.GoFunctionFunc {
	return func(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
		cr, err := getContextArg(getAllArgs(c), 0)
		if err != nil {
			return nil, fmt.Errorf("cr: %w", err)
		}
		p, err := copyFn(cr)
		if err != nil {
			return nil, err
		}
		return c.PushingNext1(t.Runtime, newUserData(p)), nil
	}
}

// appendPath handles cairo_append_path(cr, path). path is either a path
// userdata or a table in the form cairo_path_segments returns.
func (b *Bindings) appendPath(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	args := getAllArgs(c)
	cr, err := getContextArg(args, 0)
	if err != nil {
		return nil, fmt.Errorf("cr: %w", err)
	}
	if len(args) > 1 {
		if table, ok := args[1].TryTable(); ok {
			segments, err := tableToSegments(table)
			if err != nil {
				return nil, fmt.Errorf("path: %w", err)
			}
			if err := cr.AppendSegments(segments); err != nil {
				return nil, fmt.Errorf("path: %w", err)
			}
			return c.Next(), nil
		}
	}
	p, err := getHandleArg[*cairo.Path](args, 1, "path")
	if err != nil {
		return nil, fmt.Errorf("path: %w", err)
	}
	cr.AppendPath(p)
	return c.Next(), nil
}

// pathSegments handles cairo_path_segments(path), decoding a path into
// an array of {type, x, y[, x1, y1, x2, y2]} tables. For curves x, y is
// the end point and x1..y2 the control points.
func (b *Bindings) pathSegments(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	p, err := getHandleArg[*cairo.Path](getAllArgs(c), 0, "path")
	if err != nil {
		return nil, fmt.Errorf("path: %w", err)
	}
	segments, err := p.Segments()
	if err != nil {
		return nil, err
	}
	return c.PushingNext1(t.Runtime, rt.TableValue(segmentsToTable(segments))), nil
}

func segmentsToTable(segments []cairo.PathSegment) *rt.Table {
	table := rt.NewTable()
	for i, seg := range segments {
		segTable := rt.NewTable()
		segTable.Set(rt.StringValue("type"), rt.IntValue(int64(seg.Type)))
		switch seg.Type {
		case cairo.PathMoveTo, cairo.PathLineTo:
			setPoint(segTable, "x", "y", seg.Points[0])
		case cairo.PathCurveTo:
			setPoint(segTable, "x1", "y1", seg.Points[0])
			setPoint(segTable, "x2", "y2", seg.Points[1])
			setPoint(segTable, "x", "y", seg.Points[2])
		}
		table.Set(rt.IntValue(int64(i+1)), rt.TableValue(segTable))
	}
	return table
}

func setPoint(t *rt.Table, xKey, yKey string, p cairo.Point) {
	t.Set(rt.StringValue(xKey), rt.FloatValue(p.X))
	t.Set(rt.StringValue(yKey), rt.FloatValue(p.Y))
}

func tableToSegments(table *rt.Table) ([]cairo.PathSegment, error) {
	var segments []cairo.PathSegment
	for i := int64(1); ; i++ {
		v := table.Get(rt.IntValue(i))
		if v.IsNil() {
			return segments, nil
		}
		segTable, ok := v.TryTable()
		if !ok {
			return nil, fmt.Errorf("segment %d is not a table", i)
		}
		typ, ok := segTable.Get(rt.StringValue("type")).TryInt()
		if !ok {
			return nil, fmt.Errorf("segment %d has no type", i)
		}
		kind, err := cairo.PathDataTypeOf(int(typ))
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		seg := cairo.PathSegment{Type: kind}
		var keys []string
		switch kind {
		case cairo.PathMoveTo, cairo.PathLineTo:
			keys = []string{"x", "y"}
		case cairo.PathCurveTo:
			keys = []string{"x1", "y1", "x2", "y2", "x", "y"}
		}
		for k := 0; k < len(keys); k += 2 {
			x, xok := tableNumber(segTable, keys[k])
			y, yok := tableNumber(segTable, keys[k+1])
			if !xok || !yok {
				return nil, fmt.Errorf("segment %d is missing %s/%s", i, keys[k], keys[k+1])
			}
			seg.Points = append(seg.Points, cairo.Point{X: x, Y: y})
		}
		segments = append(segments, seg)
	}
}

func tableNumber(t *rt.Table, key string) (float64, bool) {
	v := t.Get(rt.StringValue(key))
	if f, ok := v.TryFloat(); ok {
		return f, true
	}
	if n, ok := v.TryInt(); ok {
		return float64(n), true
	}
	return 0, false
}
