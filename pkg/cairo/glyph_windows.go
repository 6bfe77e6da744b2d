package cairo

// cULong is C unsigned long, 32 bits wide on Windows.
type cULong = uint32

// cGlyph is cairo_glyph_t on Windows, where unsigned long is 32 bits wide.
type cGlyph struct {
	Index uint32
	_     uint32
	X, Y  float64
}

func newCGlyph(g Glyph) cGlyph {
	return cGlyph{Index: uint32(g.Index), X: g.X, Y: g.Y}
}

func (g cGlyph) glyph() Glyph {
	return Glyph{Index: uint64(g.Index), X: g.X, Y: g.Y}
}
