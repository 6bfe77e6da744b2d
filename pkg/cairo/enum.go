package cairo

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrUnknownEnumValue is returned by the <Enum>Of lookups when the value
// does not name a member of the native enum.
var ErrUnknownEnumValue = errors.New("unknown enum value")

// EnumError reports an integer that does not map to a native enum member.
type EnumError struct {
	Kind  string
	Value int
}

// Error implements the error interface.
func (e *EnumError) Error() string {
	return fmt.Sprintf("cairo: %d is not a valid %s", e.Value, e.Kind)
}

// Unwrap returns ErrUnknownEnumValue.
func (e *EnumError) Unwrap() error {
	return ErrUnknownEnumValue
}

// Constant is a native enum member as it is spelled in the C headers.
type Constant struct {
	Name  string
	Value int64
}

type enumTable[T ~int32] struct {
	kind   string
	prefix string
	names  map[T]string
}

var constantTables []func() []Constant

func newEnumTable[T ~int32](kind, prefix string, names map[T]string) enumTable[T] {
	t := enumTable[T]{kind: kind, prefix: prefix, names: names}
	constantTables = append(constantTables, t.constants)
	return t
}

func (t enumTable[T]) name(v T) string {
	if n, ok := t.names[v]; ok {
		return n
	}
	return fmt.Sprintf("%s(%d)", t.kind, int32(v))
}

func (t enumTable[T]) lookup(v int) (T, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, &EnumError{Kind: t.kind, Value: v}
	}
	if _, ok := t.names[T(v)]; !ok {
		return 0, &EnumError{Kind: t.kind, Value: v}
	}
	return T(v), nil
}

func (t enumTable[T]) valid(v T) bool {
	_, ok := t.names[v]
	return ok
}

func (t enumTable[T]) constants() []Constant {
	out := make([]Constant, 0, len(t.names))
	for v, n := range t.names {
		out = append(out, Constant{Name: t.prefix + n, Value: int64(v)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out
}

// Constants returns every enum member mirrored by this package, named as
// in the C headers (CAIRO_FORMAT_ARGB32, CAIRO_OPERATOR_OVER, ...).
func Constants() []Constant {
	var out []Constant
	for _, fn := range constantTables {
		out = append(out, fn()...)
	}
	return out
}
