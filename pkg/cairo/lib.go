package cairo

import (
	"errors"
	"fmt"
	"sync"

	"github.com/opd-ai/go-cairo/internal/native"
)

// LibraryEnv names the environment variable that overrides the shared
// library file Load opens.
const LibraryEnv = "GOCAIRO_LIBRARY"

// Feature is an optional part of the native API. Builds of libcairo
// differ in which backends they include, and older releases lack newer
// entry points.
type Feature int

const (
	// FeaturePDF is the PDF surface backend.
	FeaturePDF Feature = iota + 1
	// FeaturePS is the PostScript surface backend.
	FeaturePS
	// FeatureSVG is the SVG surface backend.
	FeatureSVG
	// FeatureRecording is the recording surface backend.
	FeatureRecording
	// FeatureMesh is mesh (Coons patch) pattern support.
	FeatureMesh
	// FeatureTags is tag_begin and tag_end, added in 1.16.
	FeatureTags
	// FeaturePNG is PNG reading and writing.
	FeaturePNG
	// FeaturePDFDocument is PDF outlines, metadata, page labels and
	// thumbnails. It needs the PDF backend of 1.16 or later.
	FeaturePDFDocument
	// FeatureSVGUnits is the SVG document unit API of 1.16.
	FeatureSVGUnits
	// FeatureFontVariations is OpenType font variation settings.
	FeatureFontVariations
)

var featureNames = map[Feature]string{
	FeaturePDF:            "pdf",
	FeaturePS:             "ps",
	FeatureSVG:            "svg",
	FeatureRecording:      "recording",
	FeatureMesh:           "mesh",
	FeatureTags:           "tags",
	FeaturePNG:            "png",
	FeaturePDFDocument:    "pdf-document",
	FeatureSVGUnits:       "svg-units",
	FeatureFontVariations: "font-variations",
}

// String returns the feature's short name.
func (f Feature) String() string {
	if n, ok := featureNames[f]; ok {
		return n
	}
	return fmt.Sprintf("feature(%d)", int(f))
}

// featureCore marks symbols every supported libcairo exports.
const featureCore Feature = 0

type symbol struct {
	fptr    any
	name    string
	feature Feature
}

var symbols []symbol

// bind declares a function descriptor: fptr is filled in from name when
// the library loads.
func bind(feature Feature, fptr any, name string) {
	symbols = append(symbols, symbol{fptr: fptr, name: name, feature: feature})
}

type library struct {
	once    sync.Once
	lib     *native.Library
	err     error
	missing map[Feature][]string
	loaded  bool
	mu      sync.RWMutex
}

var state library

// Load opens libcairo and binds every declared entry point. It is safe to
// call repeatedly; the work happens once and later calls return the first
// result. Constructors call Load implicitly.
func Load() error {
	state.once.Do(func() {
		state.err = load()
	})
	return state.err
}

func load() error {
	lib, err := native.Open(native.Candidates(LibraryEnv, defaultLibraryNames...)...)
	if err != nil {
		logger().Warn("cairo library unavailable", "error", err)
		return fmt.Errorf("%w: %w", ErrNotLoaded, err)
	}

	missing := make(map[Feature][]string)
	var coreErrs []error
	for _, s := range symbols {
		if err := lib.Bind(s.fptr, s.name); err != nil {
			if s.feature == featureCore {
				coreErrs = append(coreErrs, err)
				continue
			}
			missing[s.feature] = append(missing[s.feature], s.name)
		}
	}
	if len(coreErrs) > 0 {
		lib.Close()
		return fmt.Errorf("%w: %w", ErrNotLoaded, errors.Join(coreErrs...))
	}

	state.mu.Lock()
	state.lib = lib
	state.missing = missing
	state.loaded = true
	state.mu.Unlock()

	logger().Debug("cairo library loaded",
		"path", lib.Path(),
		"version", coreFns.versionString(),
		"symbols", len(symbols))
	for f, names := range missing {
		logger().Debug("cairo feature unavailable", "feature", f.String(), "missing", names)
	}
	return nil
}

// Available reports whether the native library is loaded, loading it if
// necessary.
func Available() bool {
	return Load() == nil
}

// Supports reports whether the loaded library exports every entry point
// of feature.
func Supports(feature Feature) bool {
	if !Available() {
		return false
	}
	state.mu.RLock()
	defer state.mu.RUnlock()
	return len(state.missing[feature]) == 0
}

// LibraryPath returns the file name the native library was loaded from.
func LibraryPath() string {
	if !Available() {
		return ""
	}
	state.mu.RLock()
	defer state.mu.RUnlock()
	return state.lib.Path()
}

func ensureLoaded() error {
	return Load()
}

func requireFeature(f Feature) error {
	if err := ensureLoaded(); err != nil {
		return err
	}
	if !Supports(f) {
		return fmt.Errorf("%w: %s", ErrUnsupported, f)
	}
	return nil
}

// mustLoad is used by value-type helpers that have no error return.
func mustLoad() {
	if err := ensureLoaded(); err != nil {
		panic(err)
	}
}

// coreFns holds library-wide entry points.
var coreFns struct {
	version              func() int32
	versionString        func() string
	statusToString       func(Status) string
	debugResetStatic     func()
	formatStrideForWidth func(Format, int32) int32
}

func init() {
	bind(featureCore, &coreFns.version, "cairo_version")
	bind(featureCore, &coreFns.versionString, "cairo_version_string")
	bind(featureCore, &coreFns.statusToString, "cairo_status_to_string")
	bind(featureCore, &coreFns.debugResetStatic, "cairo_debug_reset_static_data")
	bind(featureCore, &coreFns.formatStrideForWidth, "cairo_format_stride_for_width")
}

// Version returns the native library version encoded as
// major*10000 + minor*100 + micro, or 0 if the library is not loaded.
func Version() int {
	if !Available() {
		return 0
	}
	return int(coreFns.version())
}

// VersionString returns the native library version as "X.Y.Z".
func VersionString() string {
	if !Available() {
		return ""
	}
	return coreFns.versionString()
}

// EncodeVersion encodes a version the way Version reports it.
func EncodeVersion(major, minor, micro int) int {
	return major*10000 + minor*100 + micro
}

// DebugResetStaticData releases the library's global caches. All objects
// must have been destroyed first; it is intended for leak checkers.
func DebugResetStaticData() {
	if Available() {
		coreFns.debugResetStatic()
	}
}

// StrideForWidth returns the row stride the native library uses for an
// image of the given width in this format, or -1 when the format or width
// is invalid.
func (f Format) StrideForWidth(width int) int {
	mustLoad()
	return int(coreFns.formatStrideForWidth(f, int32(width)))
}
