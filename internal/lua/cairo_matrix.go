package lua

import (
	"fmt"

	rt "github.com/arnodel/golua/runtime"

	"github.com/opd-ai/go-cairo/pkg/cairo"
)

func (b *Bindings) registerMatrixFunctions() {
	b.set("matrix_init", newMatrix(6, func(v []float64) cairo.Matrix {
		return cairo.NewMatrix(v[0], v[1], v[2], v[3], v[4], v[5])
	}), 6)
	b.set("matrix_init_identity", newMatrix(0, func([]float64) cairo.Matrix { return cairo.NewIdentityMatrix() }), 0)
	b.set("matrix_init_translate", newMatrix(2, func(v []float64) cairo.Matrix { return cairo.NewTranslateMatrix(v[0], v[1]) }), 2)
	b.set("matrix_init_scale", newMatrix(2, func(v []float64) cairo.Matrix { return cairo.NewScaleMatrix(v[0], v[1]) }), 2)
	b.set("matrix_init_rotate", newMatrix(1, func(v []float64) cairo.Matrix { return cairo.NewRotateMatrix(v[0]) }), 1)

	b.set("matrix_translate", matrixNumbers(2, func(m *cairo.Matrix, v []float64) { m.Translate(v[0], v[1]) }), 3)
	b.set("matrix_scale", matrixNumbers(2, func(m *cairo.Matrix, v []float64) { m.Scale(v[0], v[1]) }), 3)
	b.set("matrix_rotate", matrixNumbers(1, func(m *cairo.Matrix, v []float64) { m.Rotate(v[0]) }), 2)
	b.set("matrix_invert", b.matrixInvert, 1)
	b.set("matrix_multiply", b.matrixMultiply, 2)
	b.set("matrix_transform_point", matrixConvert(cairo.Matrix.TransformPoint), 3)
	b.set("matrix_transform_distance", matrixConvert(cairo.Matrix.TransformDistance), 3)
	b.set("matrix_get", b.matrixGet, 1)
}

func newMatrix(n int, create func([]float64) cairo.Matrix) rt.GoFunctionFunc {
	return func(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
		v, err := getFloatArgs(getAllArgs(c), 0, n)
		if err != nil {
			return nil, err
		}
		m := create(v)
		return c.PushingNext1(t.Runtime, newUserData(&m)), nil
	}
}

func matrixNumbers(n int, fn func(*cairo.Matrix, []float64)) rt.GoFunctionFunc {
	return func(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
		args := getAllArgs(c)
		m, err := getMatrixArg(args, 0)
		if err != nil {
			return nil, fmt.Errorf("matrix: %w", err)
		}
		v, err := getFloatArgs(args, 1, n)
		if err != nil {
			return nil, err
		}
		fn(m, v)
		return c.Next(), nil
	}
}

func matrixConvert(fn func(cairo.Matrix, float64, float64) (float64, float64)) rt.GoFunctionFunc {
	return func(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
		args := getAllArgs(c)
		m, err := getMatrixArg(args, 0)
		if err != nil {
			return nil, fmt.Errorf("matrix: %w", err)
		}
		v, err := getFloatArgs(args, 1, 2)
		if err != nil {
			return nil, err
		}
		x, y := fn(*m, v[0], v[1])
		return pushFloats(t, c, x, y), nil
	}
}

// matrixInvert handles cairo_matrix_invert(matrix). It returns a status
// code; a singular matrix is left unchanged.
func (b *Bindings) matrixInvert(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	m, err := getMatrixArg(getAllArgs(c), 0)
	if err != nil {
		return nil, fmt.Errorf("matrix: %w", err)
	}
	return c.PushingNext1(t.Runtime, statusValue(m.Invert())), nil
}

// matrixMultiply handles cairo_matrix_multiply(a, b), returning a new
// matrix that applies a then b.
func (b *Bindings) matrixMultiply(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	args := getAllArgs(c)
	m1, err := getMatrixArg(args, 0)
	if err != nil {
		return nil, fmt.Errorf("a: %w", err)
	}
	m2, err := getMatrixArg(args, 1)
	if err != nil {
		return nil, fmt.Errorf("b: %w", err)
	}
	out := m1.Multiply(*m2)
	return c.PushingNext1(t.Runtime, newUserData(&out)), nil
}

// matrixGet handles cairo_matrix_get(matrix), returning xx, yx, xy, yy,
// x0, y0.
func (b *Bindings) matrixGet(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	m, err := getMatrixArg(getAllArgs(c), 0)
	if err != nil {
		return nil, fmt.Errorf("matrix: %w", err)
	}
	return pushFloats(t, c, m.XX, m.YX, m.XY, m.YY, m.X0, m.Y0), nil
}

func (b *Bindings) registerMiscFunctions() {
	b.set("version", b.version, 0)
	b.set("version_string", b.versionString, 0)
	b.set("status_to_string", b.statusToString, 1)
}

// version handles cairo_version()
func (b *Bindings) version(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	return c.PushingNext1(t.Runtime, rt.IntValue(int64(cairo.Version()))), nil
}

// versionString handles cairo_version_string()
func (b *Bindings) versionString(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	return c.PushingNext1(t.Runtime, rt.StringValue(cairo.VersionString())), nil
}

// statusToString handles cairo_status_to_string(status)
func (b *Bindings) statusToString(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	st, err := getEnumArg(getAllArgs(c), 0, cairo.StatusOf)
	if err != nil {
		return nil, fmt.Errorf("status: %w", err)
	}
	return c.PushingNext1(t.Runtime, rt.StringValue(st.Message())), nil
}
