package cairo

import (
	"runtime"
	"testing"
	"unsafe"
)

func TestStructLayouts(t *testing.T) {
	tests := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"Matrix", unsafe.Sizeof(Matrix{}), 48},
		{"Matrix.X0", unsafe.Offsetof(Matrix{}.X0), 32},
		{"Rectangle", unsafe.Sizeof(Rectangle{}), 32},
		{"Rectangle.Height", unsafe.Offsetof(Rectangle{}.Height), 24},
		{"RectangleInt", unsafe.Sizeof(RectangleInt{}), 16},
		{"RectangleInt.Height", unsafe.Offsetof(RectangleInt{}.Height), 12},
		{"TextExtents", unsafe.Sizeof(TextExtents{}), 48},
		{"TextExtents.XAdvance", unsafe.Offsetof(TextExtents{}.XAdvance), 32},
		{"FontExtents", unsafe.Sizeof(FontExtents{}), 40},
		{"FontExtents.MaxYAdvance", unsafe.Offsetof(FontExtents{}.MaxYAdvance), 32},
		{"TextCluster", unsafe.Sizeof(TextCluster{}), 8},
		{"cGlyph", unsafe.Sizeof(cGlyph{}), 24},
		{"cGlyph.X", unsafe.Offsetof(cGlyph{}.X), 8},
		{"cPathHeader", unsafe.Sizeof(cPathHeader{}), 8},
		{"path data element", pathDataSize, 16},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestPointerLayouts(t *testing.T) {
	if unsafe.Sizeof(uintptr(0)) != 8 {
		t.Skip("64-bit layout")
	}
	if got := unsafe.Offsetof(cPath{}.Data); got != 8 {
		t.Errorf("cPath.Data offset = %d, want 8", got)
	}
	if got := unsafe.Offsetof(cPath{}.NumData); got != 16 {
		t.Errorf("cPath.NumData offset = %d, want 16", got)
	}
	if got := unsafe.Sizeof(cPath{}); got != 24 {
		t.Errorf("cPath size = %d, want 24", got)
	}
	if got := unsafe.Offsetof(cRectangleList{}.NumRectangles); got != 16 {
		t.Errorf("cRectangleList.NumRectangles offset = %d, want 16", got)
	}
}

func TestGlyphConversion(t *testing.T) {
	in := []Glyph{{Index: 7, X: 1.5, Y: 2}, {Index: 65535, X: -3, Y: 4.25}}
	out := toCGlyphs(in)
	for i, g := range out {
		if g.glyph() != in[i] {
			t.Errorf("glyph %d = %+v, want %+v", i, g.glyph(), in[i])
		}
	}
}

func TestRGBAClamped(t *testing.T) {
	got := RGBA{R: -0.5, G: 0.25, B: 2, A: 1}.Clamped()
	want := RGBA{R: 0, G: 0.25, B: 1, A: 1}
	if got != want {
		t.Errorf("Clamped() = %+v, want %+v", got, want)
	}
}

func TestRectangleIntEmpty(t *testing.T) {
	if !(RectangleInt{Width: 0, Height: 5}).Empty() {
		t.Error("zero width should be empty")
	}
	if (RectangleInt{Width: 1, Height: 1}).Empty() {
		t.Error("1x1 should not be empty")
	}
}

func TestCULongWidth(t *testing.T) {
	if unsafe.Sizeof(uintptr(0)) != 8 {
		t.Skip("64-bit layout")
	}
	want := uintptr(8)
	if runtime.GOOS == "windows" {
		want = 4
	}
	if got := unsafe.Sizeof(cULong(0)); got != want {
		t.Errorf("unsigned long is %d bytes, want %d on %s", got, want, runtime.GOOS)
	}
}
