//go:build !windows

package cairo

// cULong is C unsigned long.
type cULong = uint64

// cGlyph is cairo_glyph_t on LP64 platforms, where unsigned long is the
// pointer size.
type cGlyph struct {
	Index uint64
	X, Y  float64
}

func newCGlyph(g Glyph) cGlyph {
	return cGlyph{Index: g.Index, X: g.X, Y: g.Y}
}

func (g cGlyph) glyph() Glyph {
	return Glyph{Index: g.Index, X: g.X, Y: g.Y}
}
