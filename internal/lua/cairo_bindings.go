package lua

import (
	"errors"
	"fmt"
	"strings"

	rt "github.com/arnodel/golua/runtime"

	"github.com/opd-ai/go-cairo/pkg/cairo"
)

// Bindings exposes pkg/cairo to a Runtime. Handles cross into Lua as
// userdata holding the Go proxy: *cairo.Context, the surface types,
// *cairo.Pattern, *cairo.Matrix, *cairo.Path, *cairo.FontFace and
// *cairo.FontOptions.
//
// Failures reach the script as Lua errors. That includes using a handle
// after cairo_destroy or one of its siblings.
type Bindings struct {
	runtime *Runtime
	module  *rt.Table
	names   []string
}

// NewBindings registers every cairo_* function and CAIRO_* constant in
// runtime, plus the cairo module table.
func NewBindings(runtime *Runtime) (*Bindings, error) {
	if runtime == nil {
		return nil, ErrNilRuntime
	}

	b := &Bindings{
		runtime: runtime,
		module:  rt.NewTable(),
	}

	b.registerContextFunctions()
	b.registerPathFunctions()
	b.registerTextFunctions()
	b.registerSurfaceFunctions()
	b.registerDocumentFunctions()
	b.registerPatternFunctions()
	b.registerMatrixFunctions()
	b.registerMiscFunctions()
	b.registerConstants()
	b.registerModule()

	return b, nil
}

// Functions returns the global names of the registered functions in
// registration order.
func (b *Bindings) Functions() []string {
	return append([]string(nil), b.names...)
}

// set registers fn as the global cairo_<name> and as module.<name>.
func (b *Bindings) set(name string, fn rt.GoFunctionFunc, nArgs int) {
	full := "cairo_" + name
	wrapped := guard(full, fn)
	b.runtime.SetGoFunction(full, wrapped, nArgs, true)
	b.module.Set(rt.StringValue(name), rt.FunctionValue(newGoFunction(full, wrapped, nArgs, true)))
	b.names = append(b.names, full)
}

// registerConstants publishes every native enum member both as a global
// (CAIRO_FORMAT_ARGB32) and in the module table (FORMAT_ARGB32).
func (b *Bindings) registerConstants() {
	for _, c := range cairo.Constants() {
		v := rt.IntValue(c.Value)
		b.runtime.SetGlobal(c.Name, v)
		b.module.Set(rt.StringValue(strings.TrimPrefix(c.Name, "CAIRO_")), v)
	}
}

// guard prefixes errors with the Lua function name. Use of a destroyed
// handle and calls made without the native library become Lua errors.
func guard(name string, fn rt.GoFunctionFunc) rt.GoFunctionFunc {
	return func(t *rt.Thread, c *rt.GoCont) (next rt.Cont, err error) {
		defer func() {
			if r := recover(); r != nil {
				e, ok := r.(error)
				switch {
				case ok && errors.Is(e, cairo.ErrDestroyed):
					next, err = nil, fmt.Errorf("%s: %w", name, ErrDestroyedHandle)
				case ok && errors.Is(e, cairo.ErrNotLoaded):
					next, err = nil, fmt.Errorf("%s: %w", name, e)
				default:
					panic(r)
				}
			}
		}()
		next, err = fn(t, c)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return next, nil
	}
}

// getAllArgs returns both fixed and variadic arguments.
func getAllArgs(c *rt.GoCont) []rt.Value {
	return append(c.Args(), c.Etc()...)
}

// getFloatArg gets a float argument from the combined args slice
func getFloatArg(args []rt.Value, idx int) (float64, error) {
	if idx >= len(args) {
		return 0, fmt.Errorf("argument %d out of range (have %d)", idx, len(args))
	}
	if f, ok := args[idx].TryFloat(); ok {
		return f, nil
	}
	if i, ok := args[idx].TryInt(); ok {
		return float64(i), nil
	}
	return 0, fmt.Errorf("argument %d is not a number", idx)
}

// getFloatArgs reads n consecutive numbers starting at idx.
func getFloatArgs(args []rt.Value, idx, n int) ([]float64, error) {
	v := make([]float64, n)
	for i := range v {
		f, err := getFloatArg(args, idx+i)
		if err != nil {
			return nil, err
		}
		v[i] = f
	}
	return v, nil
}

// getIntArg gets an int argument from the combined args slice
func getIntArg(args []rt.Value, idx int) (int64, error) {
	if idx >= len(args) {
		return 0, fmt.Errorf("argument %d out of range (have %d)", idx, len(args))
	}
	if i, ok := args[idx].TryInt(); ok {
		return i, nil
	}
	if f, ok := args[idx].TryFloat(); ok {
		return int64(f), nil
	}
	return 0, fmt.Errorf("argument %d is not an integer", idx)
}

// getStringArg gets a string argument from the combined args slice
func getStringArg(args []rt.Value, idx int) (string, error) {
	if idx >= len(args) {
		return "", fmt.Errorf("argument %d out of range (have %d)", idx, len(args))
	}
	if s, ok := args[idx].TryString(); ok {
		return s, nil
	}
	return "", fmt.Errorf("argument %d is not a string", idx)
}

// getBoolArg accepts a boolean or a number, 0 meaning false.
func getBoolArg(args []rt.Value, idx int) (bool, error) {
	if idx >= len(args) {
		return false, fmt.Errorf("argument %d out of range (have %d)", idx, len(args))
	}
	if b, ok := args[idx].TryBool(); ok {
		return b, nil
	}
	if i, ok := args[idx].TryInt(); ok {
		return i != 0, nil
	}
	return false, fmt.Errorf("argument %d is not a boolean", idx)
}

// getEnumArg reads an integer and validates it with a cairo <T>Of
// function.
func getEnumArg[T any](args []rt.Value, idx int, of func(int) (T, error)) (T, error) {
	var zero T
	n, err := getIntArg(args, idx)
	if err != nil {
		return zero, err
	}
	return of(int(n))
}

type destroyable interface {
	Destroyed() bool
}

// getHandleArg returns the userdata value at idx as a T.
func getHandleArg[T any](args []rt.Value, idx int, what string) (T, error) {
	var zero T
	if idx >= len(args) {
		return zero, fmt.Errorf("argument %d out of range (have %d)", idx, len(args))
	}
	ud, ok := args[idx].TryUserData()
	if !ok {
		return zero, fmt.Errorf("%w: argument %d is not a %s", ErrWrongType, idx, what)
	}
	v, ok := ud.Value().(T)
	if !ok {
		return zero, fmt.Errorf("%w: argument %d is not a %s", ErrWrongType, idx, what)
	}
	if d, ok := ud.Value().(destroyable); ok && d.Destroyed() {
		return zero, fmt.Errorf("%w: argument %d", ErrDestroyedHandle, idx)
	}
	return v, nil
}

func getContextArg(args []rt.Value, idx int) (*cairo.Context, error) {
	return getHandleArg[*cairo.Context](args, idx, "context")
}

func getPatternArg(args []rt.Value, idx int) (*cairo.Pattern, error) {
	return getHandleArg[*cairo.Pattern](args, idx, "pattern")
}

func getMatrixArg(args []rt.Value, idx int) (*cairo.Matrix, error) {
	return getHandleArg[*cairo.Matrix](args, idx, "matrix")
}

func getFontFaceArg(args []rt.Value, idx int) (*cairo.FontFace, error) {
	return getHandleArg[*cairo.FontFace](args, idx, "font face")
}

func getFontOptionsArg(args []rt.Value, idx int) (*cairo.FontOptions, error) {
	return getHandleArg[*cairo.FontOptions](args, idx, "font options")
}

// getSurfaceArg accepts any of the surface userdata kinds.
func getSurfaceArg(args []rt.Value, idx int) (*cairo.Surface, error) {
	if idx < len(args) {
		if ud, ok := args[idx].TryUserData(); ok {
			var s *cairo.Surface
			switch v := ud.Value().(type) {
			case *cairo.Surface:
				s = v
			case *cairo.ImageSurface:
				s = v.Surface
			case *cairo.PDFSurface:
				s = v.Surface
			case *cairo.PSSurface:
				s = v.Surface
			case *cairo.SVGSurface:
				s = v.Surface
			case *cairo.RecordingSurface:
				s = v.Surface
			}
			if s != nil {
				if s.Destroyed() {
					return nil, fmt.Errorf("%w: argument %d", ErrDestroyedHandle, idx)
				}
				return s, nil
			}
		}
	}
	return getHandleArg[*cairo.Surface](args, idx, "surface")
}

// newUserData wraps a Go value for Lua.
func newUserData(v any) rt.Value {
	return rt.UserDataValue(rt.NewUserData(v, nil))
}

// Handle wraps a cairo proxy, such as a *cairo.Context, so Go code can
// pass it to a script the way cairo_create hands one out.
func Handle(v any) rt.Value {
	return newUserData(v)
}

func pushFloats(t *rt.Thread, c *rt.GoCont, v ...float64) rt.Cont {
	vals := make([]rt.Value, len(v))
	for i, f := range v {
		vals[i] = rt.FloatValue(f)
	}
	return c.PushingNext(t.Runtime, vals...)
}

// statusValue maps an error from a Status method to the integer a script
// compares against CAIRO_STATUS_*.
func statusValue(err error) rt.Value {
	if err == nil {
		return rt.IntValue(int64(cairo.StatusSuccess))
	}
	var ce *cairo.Error
	if errors.As(err, &ce) {
		return rt.IntValue(int64(ce.Status))
	}
	return rt.IntValue(int64(cairo.StatusInvalidStatus))
}

// destroyHandle releases a proxy the script no longer needs.
func destroyHandle[T interface{ Destroy() }](what string) rt.GoFunctionFunc {
	return func(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
		args := getAllArgs(c)
		if len(args) == 0 || args[0].IsNil() {
			return c.Next(), nil
		}
		ud, ok := args[0].TryUserData()
		if !ok {
			return nil, fmt.Errorf("%w: argument 0 is not a %s", ErrWrongType, what)
		}
		h, ok := ud.Value().(T)
		if !ok {
			return nil, fmt.Errorf("%w: argument 0 is not a %s", ErrWrongType, what)
		}
		h.Destroy()
		return c.Next(), nil
	}
}
