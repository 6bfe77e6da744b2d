package cairo

import (
	"io"
	"runtime"
)

var svgFns struct {
	create            func(string, float64, float64) uintptr
	createForStream   func(uintptr, uintptr, float64, float64) uintptr
	restrictToVersion func(uintptr, SVGVersion)
	getVersions       func(*uintptr, *int32)
	versionToString   func(SVGVersion) string
	setDocumentUnit   func(uintptr, SVGUnit)
	getDocumentUnit   func(uintptr) SVGUnit
}

func init() {
	bind(FeatureSVG, &svgFns.create, "cairo_svg_surface_create")
	bind(FeatureSVG, &svgFns.createForStream, "cairo_svg_surface_create_for_stream")
	bind(FeatureSVG, &svgFns.restrictToVersion, "cairo_svg_surface_restrict_to_version")
	bind(FeatureSVG, &svgFns.getVersions, "cairo_svg_get_versions")
	bind(FeatureSVG, &svgFns.versionToString, "cairo_svg_version_to_string")
	bind(FeatureSVGUnits, &svgFns.setDocumentUnit, "cairo_svg_surface_set_document_unit")
	bind(FeatureSVGUnits, &svgFns.getDocumentUnit, "cairo_svg_surface_get_document_unit")
}

// SVGSurface writes an SVG document.
type SVGSurface struct {
	*Surface
}

// NewSVGSurface creates an SVG surface writing to filename.
func NewSVGSurface(filename string, widthPt, heightPt float64) (*SVGSurface, error) {
	if err := requireFeature(FeatureSVG); err != nil {
		return nil, err
	}
	s, err := checkedSurface("svg_surface_create", svgFns.create(filename, widthPt, heightPt))
	if err != nil {
		return nil, err
	}
	return &SVGSurface{Surface: s}, nil
}

// NewSVGSurfaceForStream creates an SVG surface writing to w.
func NewSVGSurfaceForStream(w io.Writer, widthPt, heightPt float64) (*SVGSurface, error) {
	if err := requireFeature(FeatureSVG); err != nil {
		return nil, err
	}
	s, err := createStreamSurface("svg_surface_create_for_stream", w, func(fn, closure uintptr) uintptr {
		return svgFns.createForStream(fn, closure, widthPt, heightPt)
	})
	if err != nil {
		return nil, err
	}
	return &SVGSurface{Surface: s}, nil
}

// RestrictToVersion limits the output to version.
func (s *SVGSurface) RestrictToVersion(version SVGVersion) {
	defer runtime.KeepAlive(s)
	svgFns.restrictToVersion(s.raw(), version)
}

// SetDocumentUnit sets the unit of the width and height attributes of the
// root element.
func (s *SVGSurface) SetDocumentUnit(unit SVGUnit) error {
	defer runtime.KeepAlive(s)
	if err := requireFeature(FeatureSVGUnits); err != nil {
		return err
	}
	svgFns.setDocumentUnit(s.raw(), unit)
	return nil
}

// DocumentUnit returns the unit set by SetDocumentUnit.
func (s *SVGSurface) DocumentUnit() (SVGUnit, error) {
	defer runtime.KeepAlive(s)
	if err := requireFeature(FeatureSVGUnits); err != nil {
		return 0, err
	}
	return svgFns.getDocumentUnit(s.raw()), nil
}

// SVGVersions lists the versions the loaded library can write.
func SVGVersions() ([]SVGVersion, error) {
	if err := requireFeature(FeatureSVG); err != nil {
		return nil, err
	}
	var ptr uintptr
	var n int32
	svgFns.getVersions(&ptr, &n)
	return readEnumArray[SVGVersion](ptr, int(n)), nil
}

// Label returns the version as the library spells it.
func (v SVGVersion) Label() string {
	if !Supports(FeatureSVG) {
		return v.String()
	}
	return svgFns.versionToString(v)
}
