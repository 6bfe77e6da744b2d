package cairo

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEnumRoundTrip(t *testing.T) {
	for v, name := range formatNames.names {
		got, err := FormatOf(int(v))
		if err != nil {
			t.Fatalf("FormatOf(%d) failed: %v", v, err)
		}
		if got != v {
			t.Errorf("FormatOf(%d) = %v, want %v", v, got, v)
		}
		if got.String() != name {
			t.Errorf("Format(%d).String() = %q, want %q", v, got.String(), name)
		}
	}
	for v := range operatorNames.names {
		got, err := OperatorOf(int(v))
		if err != nil || got != v {
			t.Errorf("OperatorOf(%d) = %v, %v", v, got, err)
		}
	}
}

func TestEnumOfUnknown(t *testing.T) {
	tests := []struct {
		name string
		fn   func() error
		kind string
		val  int
	}{
		{"format", func() error { _, err := FormatOf(99); return err }, "format", 99},
		{"content", func() error { _, err := ContentOf(0); return err }, "content", 0},
		{"status", func() error { _, err := StatusOf(-5); return err }, "status", -5},
		{"surface type", func() error { _, err := SurfaceTypeOf(25); return err }, "surface type", 25},
		{"svg unit", func() error { _, err := SVGUnitOf(10); return err }, "SVG unit", 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn()
			if !errors.Is(err, ErrUnknownEnumValue) {
				t.Fatalf("expected ErrUnknownEnumValue, got %v", err)
			}
			var ee *EnumError
			if !errors.As(err, &ee) {
				t.Fatalf("expected *EnumError, got %T", err)
			}
			if ee.Kind != tt.kind || ee.Value != tt.val {
				t.Errorf("EnumError = %+v, want kind %q value %d", ee, tt.kind, tt.val)
			}
		})
	}
}

func TestEnumStringUnknown(t *testing.T) {
	if got := Format(42).String(); got != "format(42)" {
		t.Errorf("Format(42).String() = %q", got)
	}
	if got := LineCap(-3).String(); got != "line cap(-3)" {
		t.Errorf("LineCap(-3).String() = %q", got)
	}
}

func TestConstants(t *testing.T) {
	all := Constants()
	byName := make(map[string]int64, len(all))
	for _, c := range all {
		if _, dup := byName[c.Name]; dup {
			t.Errorf("duplicate constant %s", c.Name)
		}
		byName[c.Name] = c.Value
	}

	want := map[string]int64{
		"CAIRO_FORMAT_INVALID":             -1,
		"CAIRO_FORMAT_ARGB32":              0,
		"CAIRO_CONTENT_COLOR_ALPHA":        0x3000,
		"CAIRO_OPERATOR_OVER":              2,
		"CAIRO_STATUS_NO_MEMORY":           1,
		"CAIRO_PATH_CLOSE_PATH":            3,
		"CAIRO_SVG_UNIT_PERCENT":           9,
		"CAIRO_TEXT_CLUSTER_FLAG_BACKWARD": 1,
		"CAIRO_PDF_OUTLINE_FLAG_ITALIC":    4,
	}
	got := make(map[string]int64, len(want))
	for name := range want {
		if v, ok := byName[name]; ok {
			got[name] = v
		}
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Constants() mismatch (-want +got):\n%s", diff)
	}
}

func TestFlagStrings(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{TextClusterFlags(0).String(), "0"},
		{TextClusterBackward.String(), "BACKWARD"},
		{PDFOutlineFlags(0).String(), "0"},
		{(PDFOutlineOpen | PDFOutlineItalic).String(), "OPEN|ITALIC"},
		{(PDFOutlineOpen | PDFOutlineBold | PDFOutlineItalic).String(), "OPEN|BOLD|ITALIC"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}
