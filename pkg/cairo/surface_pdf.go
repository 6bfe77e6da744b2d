package cairo

import (
	"io"
	"runtime"

	"github.com/opd-ai/go-cairo/internal/native"
)

var pdfFns struct {
	create            func(string, float64, float64) uintptr
	createForStream   func(uintptr, uintptr, float64, float64) uintptr
	restrictToVersion func(uintptr, PDFVersion)
	getVersions       func(*uintptr, *int32)
	versionToString   func(PDFVersion) string
	setSize           func(uintptr, float64, float64)
	addOutline        func(uintptr, int32, string, string, PDFOutlineFlags) int32
	setMetadata       func(uintptr, PDFMetadata, string)
	setPageLabel      func(uintptr, string)
	setThumbnailSize  func(uintptr, int32, int32)
}

func init() {
	bind(FeaturePDF, &pdfFns.create, "cairo_pdf_surface_create")
	bind(FeaturePDF, &pdfFns.createForStream, "cairo_pdf_surface_create_for_stream")
	bind(FeaturePDF, &pdfFns.restrictToVersion, "cairo_pdf_surface_restrict_to_version")
	bind(FeaturePDF, &pdfFns.getVersions, "cairo_pdf_get_versions")
	bind(FeaturePDF, &pdfFns.versionToString, "cairo_pdf_version_to_string")
	bind(FeaturePDF, &pdfFns.setSize, "cairo_pdf_surface_set_size")
	bind(FeaturePDFDocument, &pdfFns.addOutline, "cairo_pdf_surface_add_outline")
	bind(FeaturePDFDocument, &pdfFns.setMetadata, "cairo_pdf_surface_set_metadata")
	bind(FeaturePDFDocument, &pdfFns.setPageLabel, "cairo_pdf_surface_set_page_label")
	bind(FeaturePDFDocument, &pdfFns.setThumbnailSize, "cairo_pdf_surface_set_thumbnail_size")
}

// PDFSurface writes a PDF document. Sizes are in points (1/72 inch).
type PDFSurface struct {
	*Surface
}

// NewPDFSurface creates a PDF surface writing to filename.
func NewPDFSurface(filename string, widthPt, heightPt float64) (*PDFSurface, error) {
	if err := requireFeature(FeaturePDF); err != nil {
		return nil, err
	}
	s, err := checkedSurface("pdf_surface_create", pdfFns.create(filename, widthPt, heightPt))
	if err != nil {
		return nil, err
	}
	return &PDFSurface{Surface: s}, nil
}

// NewPDFSurfaceForStream creates a PDF surface writing to w. The document
// is complete once Finish returns or the surface is destroyed.
func NewPDFSurfaceForStream(w io.Writer, widthPt, heightPt float64) (*PDFSurface, error) {
	if err := requireFeature(FeaturePDF); err != nil {
		return nil, err
	}
	s, err := createStreamSurface("pdf_surface_create_for_stream", w, func(fn, closure uintptr) uintptr {
		return pdfFns.createForStream(fn, closure, widthPt, heightPt)
	})
	if err != nil {
		return nil, err
	}
	return &PDFSurface{Surface: s}, nil
}

// RestrictToVersion limits the output to version. Call it before drawing.
func (s *PDFSurface) RestrictToVersion(version PDFVersion) {
	defer runtime.KeepAlive(s)
	pdfFns.restrictToVersion(s.raw(), version)
}

// SetSize changes the size of the next page.
func (s *PDFSurface) SetSize(widthPt, heightPt float64) {
	defer runtime.KeepAlive(s)
	pdfFns.setSize(s.raw(), widthPt, heightPt)
}

// AddOutline adds a document outline entry under parent and returns its
// id. link uses the tag link attribute syntax, e.g. "page=3".
func (s *PDFSurface) AddOutline(parent int, name, link string, flags PDFOutlineFlags) (int, error) {
	defer runtime.KeepAlive(s)
	if err := requireFeature(FeaturePDFDocument); err != nil {
		return 0, err
	}
	return int(pdfFns.addOutline(s.raw(), int32(parent), name, link, flags)), nil
}

// SetMetadata sets a document metadata field.
func (s *PDFSurface) SetMetadata(field PDFMetadata, value string) error {
	defer runtime.KeepAlive(s)
	if err := requireFeature(FeaturePDFDocument); err != nil {
		return err
	}
	pdfFns.setMetadata(s.raw(), field, value)
	return nil
}

// SetPageLabel sets the label of the current page.
func (s *PDFSurface) SetPageLabel(label string) error {
	defer runtime.KeepAlive(s)
	if err := requireFeature(FeaturePDFDocument); err != nil {
		return err
	}
	pdfFns.setPageLabel(s.raw(), label)
	return nil
}

// SetThumbnailSize enables page thumbnails of the given size; zero
// disables them.
func (s *PDFSurface) SetThumbnailSize(width, height int) error {
	defer runtime.KeepAlive(s)
	if err := requireFeature(FeaturePDFDocument); err != nil {
		return err
	}
	pdfFns.setThumbnailSize(s.raw(), int32(width), int32(height))
	return nil
}

// PDFVersions lists the versions the loaded library can write.
func PDFVersions() ([]PDFVersion, error) {
	if err := requireFeature(FeaturePDF); err != nil {
		return nil, err
	}
	var ptr uintptr
	var n int32
	pdfFns.getVersions(&ptr, &n)
	return readEnumArray[PDFVersion](ptr, int(n)), nil
}

// Label returns the version as the library spells it, e.g. "PDF 1.5".
func (v PDFVersion) Label() string {
	if !Supports(FeaturePDF) {
		return v.String()
	}
	return pdfFns.versionToString(v)
}

// readEnumArray copies a static native array of 32-bit enum values.
func readEnumArray[T ~int32](ptr uintptr, n int) []T {
	if ptr == 0 || n <= 0 {
		return nil
	}
	out := make([]T, n)
	for i := range out {
		out[i] = native.Read[T](ptr, uintptr(i)*4)
	}
	return out
}
