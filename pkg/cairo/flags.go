package cairo

import "strings"

// TextClusterFlags qualifies the cluster array returned by text-to-glyph
// conversion.
type TextClusterFlags int32

// TextClusterBackward means clusters map glyphs right to left.
const TextClusterBackward TextClusterFlags = 0x1

// String returns the C name of the set flag, or "0".
func (f TextClusterFlags) String() string {
	if f&TextClusterBackward != 0 {
		return "BACKWARD"
	}
	return "0"
}

// PDFOutlineFlags controls how an outline entry of a PDF surface is shown.
type PDFOutlineFlags int32

const (
	PDFOutlineOpen   PDFOutlineFlags = 0x1
	PDFOutlineBold   PDFOutlineFlags = 0x2
	PDFOutlineItalic PDFOutlineFlags = 0x4
)

// PDFOutlineRoot is the parent id of top-level outline entries.
const PDFOutlineRoot = 0

// String returns the C names of the set flags joined by "|".
func (f PDFOutlineFlags) String() string {
	var parts []string
	if f&PDFOutlineOpen != 0 {
		parts = append(parts, "OPEN")
	}
	if f&PDFOutlineBold != 0 {
		parts = append(parts, "BOLD")
	}
	if f&PDFOutlineItalic != 0 {
		parts = append(parts, "ITALIC")
	}
	if len(parts) == 0 {
		return "0"
	}
	return strings.Join(parts, "|")
}

func init() {
	constantTables = append(constantTables, func() []Constant {
		return []Constant{
			{Name: "CAIRO_TEXT_CLUSTER_FLAG_BACKWARD", Value: int64(TextClusterBackward)},
			{Name: "CAIRO_PDF_OUTLINE_FLAG_OPEN", Value: int64(PDFOutlineOpen)},
			{Name: "CAIRO_PDF_OUTLINE_FLAG_BOLD", Value: int64(PDFOutlineBold)},
			{Name: "CAIRO_PDF_OUTLINE_FLAG_ITALIC", Value: int64(PDFOutlineItalic)},
			{Name: "CAIRO_PDF_OUTLINE_ROOT", Value: PDFOutlineRoot},
		}
	})
}
