package cairo

import (
	"errors"
	"fmt"
)

// Status is the result code reported by native calls and stored on every
// cairo object. Objects enter an error state on the first failure and
// keep it; later operations on them are no-ops.
type Status int32

const (
	StatusSuccess                 Status = 0
	StatusNoMemory                Status = 1
	StatusInvalidRestore          Status = 2
	StatusInvalidPopGroup         Status = 3
	StatusNoCurrentPoint          Status = 4
	StatusInvalidMatrix           Status = 5
	StatusInvalidStatus           Status = 6
	StatusNullPointer             Status = 7
	StatusInvalidString           Status = 8
	StatusInvalidPathData         Status = 9
	StatusReadError               Status = 10
	StatusWriteError              Status = 11
	StatusSurfaceFinished         Status = 12
	StatusSurfaceTypeMismatch     Status = 13
	StatusPatternTypeMismatch     Status = 14
	StatusInvalidContent          Status = 15
	StatusInvalidFormat           Status = 16
	StatusInvalidVisual           Status = 17
	StatusFileNotFound            Status = 18
	StatusInvalidDash             Status = 19
	StatusInvalidDSCComment       Status = 20
	StatusInvalidIndex            Status = 21
	StatusClipNotRepresentable    Status = 22
	StatusTempFileError           Status = 23
	StatusInvalidStride           Status = 24
	StatusFontTypeMismatch        Status = 25
	StatusUserFontImmutable       Status = 26
	StatusUserFontError           Status = 27
	StatusNegativeCount           Status = 28
	StatusInvalidClusters         Status = 29
	StatusInvalidSlant            Status = 30
	StatusInvalidWeight           Status = 31
	StatusInvalidSize             Status = 32
	StatusUserFontNotImplemented  Status = 33
	StatusDeviceTypeMismatch      Status = 34
	StatusDeviceError             Status = 35
	StatusInvalidMeshConstruction Status = 36
	StatusDeviceFinished          Status = 37
	StatusJBIG2GlobalMissing      Status = 38
	StatusPNGError                Status = 39
	StatusFreeTypeError           Status = 40
	StatusWin32GDIError           Status = 41
	StatusTagError                Status = 42
	StatusDWriteError             Status = 43
	StatusSVGFontError            Status = 44
)

var statusNames = newEnumTable("status", "CAIRO_STATUS_", map[Status]string{
	StatusSuccess:                 "SUCCESS",
	StatusNoMemory:                "NO_MEMORY",
	StatusInvalidRestore:          "INVALID_RESTORE",
	StatusInvalidPopGroup:         "INVALID_POP_GROUP",
	StatusNoCurrentPoint:          "NO_CURRENT_POINT",
	StatusInvalidMatrix:           "INVALID_MATRIX",
	StatusInvalidStatus:           "INVALID_STATUS",
	StatusNullPointer:             "NULL_POINTER",
	StatusInvalidString:           "INVALID_STRING",
	StatusInvalidPathData:         "INVALID_PATH_DATA",
	StatusReadError:               "READ_ERROR",
	StatusWriteError:              "WRITE_ERROR",
	StatusSurfaceFinished:         "SURFACE_FINISHED",
	StatusSurfaceTypeMismatch:     "SURFACE_TYPE_MISMATCH",
	StatusPatternTypeMismatch:     "PATTERN_TYPE_MISMATCH",
	StatusInvalidContent:          "INVALID_CONTENT",
	StatusInvalidFormat:           "INVALID_FORMAT",
	StatusInvalidVisual:           "INVALID_VISUAL",
	StatusFileNotFound:            "FILE_NOT_FOUND",
	StatusInvalidDash:             "INVALID_DASH",
	StatusInvalidDSCComment:       "INVALID_DSC_COMMENT",
	StatusInvalidIndex:            "INVALID_INDEX",
	StatusClipNotRepresentable:    "CLIP_NOT_REPRESENTABLE",
	StatusTempFileError:           "TEMP_FILE_ERROR",
	StatusInvalidStride:           "INVALID_STRIDE",
	StatusFontTypeMismatch:        "FONT_TYPE_MISMATCH",
	StatusUserFontImmutable:       "USER_FONT_IMMUTABLE",
	StatusUserFontError:           "USER_FONT_ERROR",
	StatusNegativeCount:           "NEGATIVE_COUNT",
	StatusInvalidClusters:         "INVALID_CLUSTERS",
	StatusInvalidSlant:            "INVALID_SLANT",
	StatusInvalidWeight:           "INVALID_WEIGHT",
	StatusInvalidSize:             "INVALID_SIZE",
	StatusUserFontNotImplemented:  "USER_FONT_NOT_IMPLEMENTED",
	StatusDeviceTypeMismatch:      "DEVICE_TYPE_MISMATCH",
	StatusDeviceError:             "DEVICE_ERROR",
	StatusInvalidMeshConstruction: "INVALID_MESH_CONSTRUCTION",
	StatusDeviceFinished:          "DEVICE_FINISHED",
	StatusJBIG2GlobalMissing:      "JBIG2_GLOBAL_MISSING",
	StatusPNGError:                "PNG_ERROR",
	StatusFreeTypeError:           "FREETYPE_ERROR",
	StatusWin32GDIError:           "WIN32_GDI_ERROR",
	StatusTagError:                "TAG_ERROR",
	StatusDWriteError:             "DWRITE_ERROR",
	StatusSVGFontError:            "SVG_FONT_ERROR",
})

// String returns the C name of the status without its prefix.
func (s Status) String() string { return statusNames.name(s) }

// StatusOf converts a native integer to a Status, failing on values the
// native enum does not define.
func StatusOf(v int) (Status, error) { return statusNames.lookup(v) }

// Message returns the library's human-readable description of the status.
// When the library is not loaded the C name is returned instead.
func (s Status) Message() string {
	if !Available() || coreFns.statusToString == nil {
		return s.String()
	}
	return coreFns.statusToString(s)
}

// Err converts the status into an error; StatusSuccess yields nil.
func (s Status) Err() error {
	return s.errorFor("")
}

func (s Status) errorFor(op string) error {
	if s == StatusSuccess {
		return nil
	}
	return &Error{Op: op, Status: s}
}

var (
	// ErrNotLoaded is returned when the native library could not be loaded.
	ErrNotLoaded = errors.New("cairo: native library not loaded")

	// ErrDestroyed is the panic value raised when a destroyed object is used.
	ErrDestroyed = errors.New("cairo: object already destroyed")

	// ErrUnsupported is returned when the loaded library lacks the symbols a
	// call needs, e.g. a build without the PDF backend.
	ErrUnsupported = errors.New("cairo: not supported by the loaded library")

	// ErrUnsupportedFormat is returned when pixel data cannot be converted
	// between a surface format and a Go image.
	ErrUnsupportedFormat = errors.New("cairo: unsupported pixel format")

	// ErrMalformedPath is returned when native path data is inconsistent.
	ErrMalformedPath = errors.New("cairo: malformed path data")
)

// Error carries a non-success Status from a native call.
type Error struct {
	Op     string
	Status Status
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("cairo: %s", e.Status.Message())
	}
	return fmt.Sprintf("cairo: %s: %s", e.Op, e.Status.Message())
}

// Is reports whether target is an *Error with the same Status, whatever
// its Op, so errors.Is(err, cairo.StatusNoMemory.Err()) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && e.Status == t.Status
}

