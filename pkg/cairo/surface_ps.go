package cairo

import (
	"io"
	"runtime"
)

var psFns struct {
	create            func(string, float64, float64) uintptr
	createForStream   func(uintptr, uintptr, float64, float64) uintptr
	restrictToLevel   func(uintptr, PSLevel)
	getLevels         func(*uintptr, *int32)
	levelToString     func(PSLevel) string
	setEPS            func(uintptr, int32)
	getEPS            func(uintptr) int32
	setSize           func(uintptr, float64, float64)
	dscComment        func(uintptr, string)
	dscBeginSetup     func(uintptr)
	dscBeginPageSetup func(uintptr)
}

func init() {
	bind(FeaturePS, &psFns.create, "cairo_ps_surface_create")
	bind(FeaturePS, &psFns.createForStream, "cairo_ps_surface_create_for_stream")
	bind(FeaturePS, &psFns.restrictToLevel, "cairo_ps_surface_restrict_to_level")
	bind(FeaturePS, &psFns.getLevels, "cairo_ps_get_levels")
	bind(FeaturePS, &psFns.levelToString, "cairo_ps_level_to_string")
	bind(FeaturePS, &psFns.setEPS, "cairo_ps_surface_set_eps")
	bind(FeaturePS, &psFns.getEPS, "cairo_ps_surface_get_eps")
	bind(FeaturePS, &psFns.setSize, "cairo_ps_surface_set_size")
	bind(FeaturePS, &psFns.dscComment, "cairo_ps_surface_dsc_comment")
	bind(FeaturePS, &psFns.dscBeginSetup, "cairo_ps_surface_dsc_begin_setup")
	bind(FeaturePS, &psFns.dscBeginPageSetup, "cairo_ps_surface_dsc_begin_page_setup")
}

// PSSurface writes PostScript or Encapsulated PostScript.
type PSSurface struct {
	*Surface
}

// NewPSSurface creates a PostScript surface writing to filename.
func NewPSSurface(filename string, widthPt, heightPt float64) (*PSSurface, error) {
	if err := requireFeature(FeaturePS); err != nil {
		return nil, err
	}
	s, err := checkedSurface("ps_surface_create", psFns.create(filename, widthPt, heightPt))
	if err != nil {
		return nil, err
	}
	return &PSSurface{Surface: s}, nil
}

// NewPSSurfaceForStream creates a PostScript surface writing to w.
func NewPSSurfaceForStream(w io.Writer, widthPt, heightPt float64) (*PSSurface, error) {
	if err := requireFeature(FeaturePS); err != nil {
		return nil, err
	}
	s, err := createStreamSurface("ps_surface_create_for_stream", w, func(fn, closure uintptr) uintptr {
		return psFns.createForStream(fn, closure, widthPt, heightPt)
	})
	if err != nil {
		return nil, err
	}
	return &PSSurface{Surface: s}, nil
}

// RestrictToLevel limits the output to a PostScript language level.
func (s *PSSurface) RestrictToLevel(level PSLevel) {
	defer runtime.KeepAlive(s)
	psFns.restrictToLevel(s.raw(), level)
}

// SetEPS switches Encapsulated PostScript output on or off.
func (s *PSSurface) SetEPS(eps bool) {
	defer runtime.KeepAlive(s)
	psFns.setEPS(s.raw(), cBool(eps))
}

// EPS reports whether the surface writes Encapsulated PostScript.
func (s *PSSurface) EPS() bool {
	defer runtime.KeepAlive(s)
	return psFns.getEPS(s.raw()) != 0
}

// SetSize changes the size of the next page.
func (s *PSSurface) SetSize(widthPt, heightPt float64) {
	defer runtime.KeepAlive(s)
	psFns.setSize(s.raw(), widthPt, heightPt)
}

// DSCComment emits a DSC comment such as "%%Title: report".
func (s *PSSurface) DSCComment(comment string) {
	defer runtime.KeepAlive(s)
	psFns.dscComment(s.raw(), comment)
}

// DSCBeginSetup directs later DSC comments to the Setup section.
func (s *PSSurface) DSCBeginSetup() {
	defer runtime.KeepAlive(s)
	psFns.dscBeginSetup(s.raw())
}

// DSCBeginPageSetup directs later DSC comments to the PageSetup section
// of the current page.
func (s *PSSurface) DSCBeginPageSetup() {
	defer runtime.KeepAlive(s)
	psFns.dscBeginPageSetup(s.raw())
}

// PSLevels lists the language levels the loaded library can write.
func PSLevels() ([]PSLevel, error) {
	if err := requireFeature(FeaturePS); err != nil {
		return nil, err
	}
	var ptr uintptr
	var n int32
	psFns.getLevels(&ptr, &n)
	return readEnumArray[PSLevel](ptr, int(n)), nil
}

// Label returns the level as the library spells it.
func (l PSLevel) Label() string {
	if !Supports(FeaturePS) {
		return l.String()
	}
	return psFns.levelToString(l)
}
