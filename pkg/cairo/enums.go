package cairo

// Code below mirrors the native enums value for value; keep the numbering
// in sync with cairo.h when adding members.

// Format identifies the memory layout of an image surface's pixels.
type Format int32

const (
	FormatInvalid  Format = -1
	FormatARGB32   Format = 0
	FormatRGB24    Format = 1
	FormatA8       Format = 2
	FormatA1       Format = 3
	FormatRGB16565 Format = 4
	FormatRGB30    Format = 5
	FormatRGB96F   Format = 6
	FormatRGBA128F Format = 7
)

var formatNames = newEnumTable("format", "CAIRO_FORMAT_", map[Format]string{
	FormatInvalid:  "INVALID",
	FormatARGB32:   "ARGB32",
	FormatRGB24:    "RGB24",
	FormatA8:       "A8",
	FormatA1:       "A1",
	FormatRGB16565: "RGB16_565",
	FormatRGB30:    "RGB30",
	FormatRGB96F:   "RGB96F",
	FormatRGBA128F: "RGBA128F",
})

// String returns the C name of the value without its prefix.
func (v Format) String() string { return formatNames.name(v) }

// FormatOf converts a native integer to a Format, failing on values the
// native enum does not define.
func FormatOf(v int) (Format, error) { return formatNames.lookup(v) }

// Content describes whether a surface holds color, alpha, or both.
type Content int32

const (
	ContentColor      Content = 4096
	ContentAlpha      Content = 8192
	ContentColorAlpha Content = 12288
)

var contentNames = newEnumTable("content", "CAIRO_CONTENT_", map[Content]string{
	ContentColor:      "COLOR",
	ContentAlpha:      "ALPHA",
	ContentColorAlpha: "COLOR_ALPHA",
})

// String returns the C name of the value without its prefix.
func (v Content) String() string { return contentNames.name(v) }

// ContentOf converts a native integer to a Content, failing on values the
// native enum does not define.
func ContentOf(v int) (Content, error) { return contentNames.lookup(v) }

// Operator is the compositing operator applied by drawing operations.
type Operator int32

const (
	OperatorClear         Operator = 0
	OperatorSource        Operator = 1
	OperatorOver          Operator = 2
	OperatorIn            Operator = 3
	OperatorOut           Operator = 4
	OperatorAtop          Operator = 5
	OperatorDest          Operator = 6
	OperatorDestOver      Operator = 7
	OperatorDestIn        Operator = 8
	OperatorDestOut       Operator = 9
	OperatorDestAtop      Operator = 10
	OperatorXor           Operator = 11
	OperatorAdd           Operator = 12
	OperatorSaturate      Operator = 13
	OperatorMultiply      Operator = 14
	OperatorScreen        Operator = 15
	OperatorOverlay       Operator = 16
	OperatorDarken        Operator = 17
	OperatorLighten       Operator = 18
	OperatorColorDodge    Operator = 19
	OperatorColorBurn     Operator = 20
	OperatorHardLight     Operator = 21
	OperatorSoftLight     Operator = 22
	OperatorDifference    Operator = 23
	OperatorExclusion     Operator = 24
	OperatorHSLHue        Operator = 25
	OperatorHSLSaturation Operator = 26
	OperatorHSLColor      Operator = 27
	OperatorHSLLuminosity Operator = 28
)

var operatorNames = newEnumTable("operator", "CAIRO_OPERATOR_", map[Operator]string{
	OperatorClear:         "CLEAR",
	OperatorSource:        "SOURCE",
	OperatorOver:          "OVER",
	OperatorIn:            "IN",
	OperatorOut:           "OUT",
	OperatorAtop:          "ATOP",
	OperatorDest:          "DEST",
	OperatorDestOver:      "DEST_OVER",
	OperatorDestIn:        "DEST_IN",
	OperatorDestOut:       "DEST_OUT",
	OperatorDestAtop:      "DEST_ATOP",
	OperatorXor:           "XOR",
	OperatorAdd:           "ADD",
	OperatorSaturate:      "SATURATE",
	OperatorMultiply:      "MULTIPLY",
	OperatorScreen:        "SCREEN",
	OperatorOverlay:       "OVERLAY",
	OperatorDarken:        "DARKEN",
	OperatorLighten:       "LIGHTEN",
	OperatorColorDodge:    "COLOR_DODGE",
	OperatorColorBurn:     "COLOR_BURN",
	OperatorHardLight:     "HARD_LIGHT",
	OperatorSoftLight:     "SOFT_LIGHT",
	OperatorDifference:    "DIFFERENCE",
	OperatorExclusion:     "EXCLUSION",
	OperatorHSLHue:        "HSL_HUE",
	OperatorHSLSaturation: "HSL_SATURATION",
	OperatorHSLColor:      "HSL_COLOR",
	OperatorHSLLuminosity: "HSL_LUMINOSITY",
})

// String returns the C name of the value without its prefix.
func (v Operator) String() string { return operatorNames.name(v) }

// OperatorOf converts a native integer to a Operator, failing on values the
// native enum does not define.
func OperatorOf(v int) (Operator, error) { return operatorNames.lookup(v) }

// Antialias selects the antialiasing mode used for shapes and text.
type Antialias int32

const (
	AntialiasDefault  Antialias = 0
	AntialiasNone     Antialias = 1
	AntialiasGray     Antialias = 2
	AntialiasSubpixel Antialias = 3
	AntialiasFast     Antialias = 4
	AntialiasGood     Antialias = 5
	AntialiasBest     Antialias = 6
)

var antialiasNames = newEnumTable("antialias", "CAIRO_ANTIALIAS_", map[Antialias]string{
	AntialiasDefault:  "DEFAULT",
	AntialiasNone:     "NONE",
	AntialiasGray:     "GRAY",
	AntialiasSubpixel: "SUBPIXEL",
	AntialiasFast:     "FAST",
	AntialiasGood:     "GOOD",
	AntialiasBest:     "BEST",
})

// String returns the C name of the value without its prefix.
func (v Antialias) String() string { return antialiasNames.name(v) }

// AntialiasOf converts a native integer to a Antialias, failing on values the
// native enum does not define.
func AntialiasOf(v int) (Antialias, error) { return antialiasNames.lookup(v) }

// FillRule decides which areas are inside a self-intersecting path.
type FillRule int32

const (
	FillRuleWinding FillRule = 0
	FillRuleEvenOdd FillRule = 1
)

var fillRuleNames = newEnumTable("fill rule", "CAIRO_FILL_RULE_", map[FillRule]string{
	FillRuleWinding: "WINDING",
	FillRuleEvenOdd: "EVEN_ODD",
})

// String returns the C name of the value without its prefix.
func (v FillRule) String() string { return fillRuleNames.name(v) }

// FillRuleOf converts a native integer to a FillRule, failing on values the
// native enum does not define.
func FillRuleOf(v int) (FillRule, error) { return fillRuleNames.lookup(v) }

// LineCap is the shape drawn at the open ends of a stroke.
type LineCap int32

const (
	LineCapButt   LineCap = 0
	LineCapRound  LineCap = 1
	LineCapSquare LineCap = 2
)

var lineCapNames = newEnumTable("line cap", "CAIRO_LINE_CAP_", map[LineCap]string{
	LineCapButt:   "BUTT",
	LineCapRound:  "ROUND",
	LineCapSquare: "SQUARE",
})

// String returns the C name of the value without its prefix.
func (v LineCap) String() string { return lineCapNames.name(v) }

// LineCapOf converts a native integer to a LineCap, failing on values the
// native enum does not define.
func LineCapOf(v int) (LineCap, error) { return lineCapNames.lookup(v) }

// LineJoin is the shape drawn where two stroked segments meet.
type LineJoin int32

const (
	LineJoinMiter LineJoin = 0
	LineJoinRound LineJoin = 1
	LineJoinBevel LineJoin = 2
)

var lineJoinNames = newEnumTable("line join", "CAIRO_LINE_JOIN_", map[LineJoin]string{
	LineJoinMiter: "MITER",
	LineJoinRound: "ROUND",
	LineJoinBevel: "BEVEL",
})

// String returns the C name of the value without its prefix.
func (v LineJoin) String() string { return lineJoinNames.name(v) }

// LineJoinOf converts a native integer to a LineJoin, failing on values the
// native enum does not define.
func LineJoinOf(v int) (LineJoin, error) { return lineJoinNames.lookup(v) }

// Extend describes how a pattern paints outside its natural area.
type Extend int32

const (
	ExtendNone    Extend = 0
	ExtendRepeat  Extend = 1
	ExtendReflect Extend = 2
	ExtendPad     Extend = 3
)

var extendNames = newEnumTable("extend", "CAIRO_EXTEND_", map[Extend]string{
	ExtendNone:    "NONE",
	ExtendRepeat:  "REPEAT",
	ExtendReflect: "REFLECT",
	ExtendPad:     "PAD",
})

// String returns the C name of the value without its prefix.
func (v Extend) String() string { return extendNames.name(v) }

// ExtendOf converts a native integer to a Extend, failing on values the
// native enum does not define.
func ExtendOf(v int) (Extend, error) { return extendNames.lookup(v) }

// Filter is the sampling filter used when reading pixels from a pattern.
type Filter int32

const (
	FilterFast     Filter = 0
	FilterGood     Filter = 1
	FilterBest     Filter = 2
	FilterNearest  Filter = 3
	FilterBilinear Filter = 4
	FilterGaussian Filter = 5
)

var filterNames = newEnumTable("filter", "CAIRO_FILTER_", map[Filter]string{
	FilterFast:     "FAST",
	FilterGood:     "GOOD",
	FilterBest:     "BEST",
	FilterNearest:  "NEAREST",
	FilterBilinear: "BILINEAR",
	FilterGaussian: "GAUSSIAN",
})

// String returns the C name of the value without its prefix.
func (v Filter) String() string { return filterNames.name(v) }

// FilterOf converts a native integer to a Filter, failing on values the
// native enum does not define.
func FilterOf(v int) (Filter, error) { return filterNames.lookup(v) }

// FontSlant selects a toy font face's slant.
type FontSlant int32

const (
	FontSlantNormal  FontSlant = 0
	FontSlantItalic  FontSlant = 1
	FontSlantOblique FontSlant = 2
)

var fontSlantNames = newEnumTable("font slant", "CAIRO_FONT_SLANT_", map[FontSlant]string{
	FontSlantNormal:  "NORMAL",
	FontSlantItalic:  "ITALIC",
	FontSlantOblique: "OBLIQUE",
})

// String returns the C name of the value without its prefix.
func (v FontSlant) String() string { return fontSlantNames.name(v) }

// FontSlantOf converts a native integer to a FontSlant, failing on values the
// native enum does not define.
func FontSlantOf(v int) (FontSlant, error) { return fontSlantNames.lookup(v) }

// FontWeight selects a toy font face's weight.
type FontWeight int32

const (
	FontWeightNormal FontWeight = 0
	FontWeightBold   FontWeight = 1
)

var fontWeightNames = newEnumTable("font weight", "CAIRO_FONT_WEIGHT_", map[FontWeight]string{
	FontWeightNormal: "NORMAL",
	FontWeightBold:   "BOLD",
})

// String returns the C name of the value without its prefix.
func (v FontWeight) String() string { return fontWeightNames.name(v) }

// FontWeightOf converts a native integer to a FontWeight, failing on values the
// native enum does not define.
func FontWeightOf(v int) (FontWeight, error) { return fontWeightNames.lookup(v) }

// SubpixelOrder is the display subpixel layout assumed by subpixel antialiasing.
type SubpixelOrder int32

const (
	SubpixelOrderDefault SubpixelOrder = 0
	SubpixelOrderRGB     SubpixelOrder = 1
	SubpixelOrderBGR     SubpixelOrder = 2
	SubpixelOrderVRGB    SubpixelOrder = 3
	SubpixelOrderVBGR    SubpixelOrder = 4
)

var subpixelOrderNames = newEnumTable("subpixel order", "CAIRO_SUBPIXEL_ORDER_", map[SubpixelOrder]string{
	SubpixelOrderDefault: "DEFAULT",
	SubpixelOrderRGB:     "RGB",
	SubpixelOrderBGR:     "BGR",
	SubpixelOrderVRGB:    "VRGB",
	SubpixelOrderVBGR:    "VBGR",
})

// String returns the C name of the value without its prefix.
func (v SubpixelOrder) String() string { return subpixelOrderNames.name(v) }

// SubpixelOrderOf converts a native integer to a SubpixelOrder, failing on values the
// native enum does not define.
func SubpixelOrderOf(v int) (SubpixelOrder, error) { return subpixelOrderNames.lookup(v) }

// HintStyle is the amount of outline hinting applied to glyphs.
type HintStyle int32

const (
	HintStyleDefault HintStyle = 0
	HintStyleNone    HintStyle = 1
	HintStyleSlight  HintStyle = 2
	HintStyleMedium  HintStyle = 3
	HintStyleFull    HintStyle = 4
)

var hintStyleNames = newEnumTable("hint style", "CAIRO_HINT_STYLE_", map[HintStyle]string{
	HintStyleDefault: "DEFAULT",
	HintStyleNone:    "NONE",
	HintStyleSlight:  "SLIGHT",
	HintStyleMedium:  "MEDIUM",
	HintStyleFull:    "FULL",
})

// String returns the C name of the value without its prefix.
func (v HintStyle) String() string { return hintStyleNames.name(v) }

// HintStyleOf converts a native integer to a HintStyle, failing on values the
// native enum does not define.
func HintStyleOf(v int) (HintStyle, error) { return hintStyleNames.lookup(v) }

// HintMetrics controls whether font metrics are rounded to integers.
type HintMetrics int32

const (
	HintMetricsDefault HintMetrics = 0
	HintMetricsOff     HintMetrics = 1
	HintMetricsOn      HintMetrics = 2
)

var hintMetricsNames = newEnumTable("hint metrics", "CAIRO_HINT_METRICS_", map[HintMetrics]string{
	HintMetricsDefault: "DEFAULT",
	HintMetricsOff:     "OFF",
	HintMetricsOn:      "ON",
})

// String returns the C name of the value without its prefix.
func (v HintMetrics) String() string { return hintMetricsNames.name(v) }

// HintMetricsOf converts a native integer to a HintMetrics, failing on values the
// native enum does not define.
func HintMetricsOf(v int) (HintMetrics, error) { return hintMetricsNames.lookup(v) }

// FontType identifies the backend of a font face or scaled font.
type FontType int32

const (
	FontTypeToy    FontType = 0
	FontTypeFT     FontType = 1
	FontTypeWin32  FontType = 2
	FontTypeQuartz FontType = 3
	FontTypeUser   FontType = 4
	FontTypeDWrite FontType = 5
)

var fontTypeNames = newEnumTable("font type", "CAIRO_FONT_TYPE_", map[FontType]string{
	FontTypeToy:    "TOY",
	FontTypeFT:     "FT",
	FontTypeWin32:  "WIN32",
	FontTypeQuartz: "QUARTZ",
	FontTypeUser:   "USER",
	FontTypeDWrite: "DWRITE",
})

// String returns the C name of the value without its prefix.
func (v FontType) String() string { return fontTypeNames.name(v) }

// FontTypeOf converts a native integer to a FontType, failing on values the
// native enum does not define.
func FontTypeOf(v int) (FontType, error) { return fontTypeNames.lookup(v) }

// PatternType identifies the kind of a pattern.
type PatternType int32

const (
	PatternTypeSolid        PatternType = 0
	PatternTypeSurface      PatternType = 1
	PatternTypeLinear       PatternType = 2
	PatternTypeRadial       PatternType = 3
	PatternTypeMesh         PatternType = 4
	PatternTypeRasterSource PatternType = 5
)

var patternTypeNames = newEnumTable("pattern type", "CAIRO_PATTERN_TYPE_", map[PatternType]string{
	PatternTypeSolid:        "SOLID",
	PatternTypeSurface:      "SURFACE",
	PatternTypeLinear:       "LINEAR",
	PatternTypeRadial:       "RADIAL",
	PatternTypeMesh:         "MESH",
	PatternTypeRasterSource: "RASTER_SOURCE",
})

// String returns the C name of the value without its prefix.
func (v PatternType) String() string { return patternTypeNames.name(v) }

// PatternTypeOf converts a native integer to a PatternType, failing on values the
// native enum does not define.
func PatternTypeOf(v int) (PatternType, error) { return patternTypeNames.lookup(v) }

// SurfaceType identifies the backend of a surface.
type SurfaceType int32

const (
	SurfaceTypeImage         SurfaceType = 0
	SurfaceTypePDF           SurfaceType = 1
	SurfaceTypePS            SurfaceType = 2
	SurfaceTypeXlib          SurfaceType = 3
	SurfaceTypeXCB           SurfaceType = 4
	SurfaceTypeGlitz         SurfaceType = 5
	SurfaceTypeQuartz        SurfaceType = 6
	SurfaceTypeWin32         SurfaceType = 7
	SurfaceTypeBeOS          SurfaceType = 8
	SurfaceTypeDirectFB      SurfaceType = 9
	SurfaceTypeSVG           SurfaceType = 10
	SurfaceTypeOS2           SurfaceType = 11
	SurfaceTypeWin32Printing SurfaceType = 12
	SurfaceTypeQuartzImage   SurfaceType = 13
	SurfaceTypeScript        SurfaceType = 14
	SurfaceTypeQt            SurfaceType = 15
	SurfaceTypeRecording     SurfaceType = 16
	SurfaceTypeVG            SurfaceType = 17
	SurfaceTypeGL            SurfaceType = 18
	SurfaceTypeDRM           SurfaceType = 19
	SurfaceTypeTee           SurfaceType = 20
	SurfaceTypeXML           SurfaceType = 21
	SurfaceTypeSkia          SurfaceType = 22
	SurfaceTypeSubsurface    SurfaceType = 23
	SurfaceTypeCogl          SurfaceType = 24
)

var surfaceTypeNames = newEnumTable("surface type", "CAIRO_SURFACE_TYPE_", map[SurfaceType]string{
	SurfaceTypeImage:         "IMAGE",
	SurfaceTypePDF:           "PDF",
	SurfaceTypePS:            "PS",
	SurfaceTypeXlib:          "XLIB",
	SurfaceTypeXCB:           "XCB",
	SurfaceTypeGlitz:         "GLITZ",
	SurfaceTypeQuartz:        "QUARTZ",
	SurfaceTypeWin32:         "WIN32",
	SurfaceTypeBeOS:          "BEOS",
	SurfaceTypeDirectFB:      "DIRECTFB",
	SurfaceTypeSVG:           "SVG",
	SurfaceTypeOS2:           "OS2",
	SurfaceTypeWin32Printing: "WIN32_PRINTING",
	SurfaceTypeQuartzImage:   "QUARTZ_IMAGE",
	SurfaceTypeScript:        "SCRIPT",
	SurfaceTypeQt:            "QT",
	SurfaceTypeRecording:     "RECORDING",
	SurfaceTypeVG:            "VG",
	SurfaceTypeGL:            "GL",
	SurfaceTypeDRM:           "DRM",
	SurfaceTypeTee:           "TEE",
	SurfaceTypeXML:           "XML",
	SurfaceTypeSkia:          "SKIA",
	SurfaceTypeSubsurface:    "SUBSURFACE",
	SurfaceTypeCogl:          "COGL",
})

// String returns the C name of the value without its prefix.
func (v SurfaceType) String() string { return surfaceTypeNames.name(v) }

// SurfaceTypeOf converts a native integer to a SurfaceType, failing on values the
// native enum does not define.
func SurfaceTypeOf(v int) (SurfaceType, error) { return surfaceTypeNames.lookup(v) }

// DeviceType identifies the backend of a device.
type DeviceType int32

const (
	DeviceTypeInvalid DeviceType = -1
	DeviceTypeDRM     DeviceType = 0
	DeviceTypeGL      DeviceType = 1
	DeviceTypeScript  DeviceType = 2
	DeviceTypeXCB     DeviceType = 3
	DeviceTypeXlib    DeviceType = 4
	DeviceTypeXML     DeviceType = 5
	DeviceTypeCogl    DeviceType = 6
	DeviceTypeWin32   DeviceType = 7
)

var deviceTypeNames = newEnumTable("device type", "CAIRO_DEVICE_TYPE_", map[DeviceType]string{
	DeviceTypeInvalid: "INVALID",
	DeviceTypeDRM:     "DRM",
	DeviceTypeGL:      "GL",
	DeviceTypeScript:  "SCRIPT",
	DeviceTypeXCB:     "XCB",
	DeviceTypeXlib:    "XLIB",
	DeviceTypeXML:     "XML",
	DeviceTypeCogl:    "COGL",
	DeviceTypeWin32:   "WIN32",
})

// String returns the C name of the value without its prefix.
func (v DeviceType) String() string { return deviceTypeNames.name(v) }

// DeviceTypeOf converts a native integer to a DeviceType, failing on values the
// native enum does not define.
func DeviceTypeOf(v int) (DeviceType, error) { return deviceTypeNames.lookup(v) }

// PathDataType tags an element of a native path.
type PathDataType int32

const (
	PathMoveTo    PathDataType = 0
	PathLineTo    PathDataType = 1
	PathCurveTo   PathDataType = 2
	PathClosePath PathDataType = 3
)

var pathDataTypeNames = newEnumTable("path data type", "CAIRO_PATH_", map[PathDataType]string{
	PathMoveTo:    "MOVE_TO",
	PathLineTo:    "LINE_TO",
	PathCurveTo:   "CURVE_TO",
	PathClosePath: "CLOSE_PATH",
})

// String returns the C name of the value without its prefix.
func (v PathDataType) String() string { return pathDataTypeNames.name(v) }

// PathDataTypeOf converts a native integer to a PathDataType, failing on values the
// native enum does not define.
func PathDataTypeOf(v int) (PathDataType, error) { return pathDataTypeNames.lookup(v) }

// RegionOverlap describes how a rectangle overlaps a region.
type RegionOverlap int32

const (
	RegionOverlapIn   RegionOverlap = 0
	RegionOverlapOut  RegionOverlap = 1
	RegionOverlapPart RegionOverlap = 2
)

var regionOverlapNames = newEnumTable("region overlap", "CAIRO_REGION_OVERLAP_", map[RegionOverlap]string{
	RegionOverlapIn:   "IN",
	RegionOverlapOut:  "OUT",
	RegionOverlapPart: "PART",
})

// String returns the C name of the value without its prefix.
func (v RegionOverlap) String() string { return regionOverlapNames.name(v) }

// RegionOverlapOf converts a native integer to a RegionOverlap, failing on values the
// native enum does not define.
func RegionOverlapOf(v int) (RegionOverlap, error) { return regionOverlapNames.lookup(v) }

// PDFVersion is a PDF version a PDF surface can be restricted to.
type PDFVersion int32

const (
	PDFVersion14 PDFVersion = 0
	PDFVersion15 PDFVersion = 1
	PDFVersion16 PDFVersion = 2
	PDFVersion17 PDFVersion = 3
)

var pdfVersionNames = newEnumTable("PDF version", "CAIRO_PDF_VERSION_", map[PDFVersion]string{
	PDFVersion14: "1_4",
	PDFVersion15: "1_5",
	PDFVersion16: "1_6",
	PDFVersion17: "1_7",
})

// String returns the C name of the value without its prefix.
func (v PDFVersion) String() string { return pdfVersionNames.name(v) }

// PDFVersionOf converts a native integer to a PDFVersion, failing on values the
// native enum does not define.
func PDFVersionOf(v int) (PDFVersion, error) { return pdfVersionNames.lookup(v) }

// PDFMetadata names a document information field of a PDF surface.
type PDFMetadata int32

const (
	PDFMetadataTitle      PDFMetadata = 0
	PDFMetadataAuthor     PDFMetadata = 1
	PDFMetadataSubject    PDFMetadata = 2
	PDFMetadataKeywords   PDFMetadata = 3
	PDFMetadataCreator    PDFMetadata = 4
	PDFMetadataCreateDate PDFMetadata = 5
	PDFMetadataModDate    PDFMetadata = 6
)

var pdfMetadataNames = newEnumTable("PDF metadata", "CAIRO_PDF_METADATA_", map[PDFMetadata]string{
	PDFMetadataTitle:      "TITLE",
	PDFMetadataAuthor:     "AUTHOR",
	PDFMetadataSubject:    "SUBJECT",
	PDFMetadataKeywords:   "KEYWORDS",
	PDFMetadataCreator:    "CREATOR",
	PDFMetadataCreateDate: "CREATE_DATE",
	PDFMetadataModDate:    "MOD_DATE",
})

// String returns the C name of the value without its prefix.
func (v PDFMetadata) String() string { return pdfMetadataNames.name(v) }

// PDFMetadataOf converts a native integer to a PDFMetadata, failing on values the
// native enum does not define.
func PDFMetadataOf(v int) (PDFMetadata, error) { return pdfMetadataNames.lookup(v) }

// PSLevel is a PostScript language level a PS surface can be restricted to.
type PSLevel int32

const (
	PSLevel2 PSLevel = 0
	PSLevel3 PSLevel = 1
)

var psLevelNames = newEnumTable("PostScript level", "CAIRO_PS_LEVEL_", map[PSLevel]string{
	PSLevel2: "2",
	PSLevel3: "3",
})

// String returns the C name of the value without its prefix.
func (v PSLevel) String() string { return psLevelNames.name(v) }

// PSLevelOf converts a native integer to a PSLevel, failing on values the
// native enum does not define.
func PSLevelOf(v int) (PSLevel, error) { return psLevelNames.lookup(v) }

// SVGVersion is an SVG version an SVG surface can be restricted to.
type SVGVersion int32

const (
	SVGVersion11 SVGVersion = 0
	SVGVersion12 SVGVersion = 1
)

var svgVersionNames = newEnumTable("SVG version", "CAIRO_SVG_VERSION_", map[SVGVersion]string{
	SVGVersion11: "1_1",
	SVGVersion12: "1_2",
})

// String returns the C name of the value without its prefix.
func (v SVGVersion) String() string { return svgVersionNames.name(v) }

// SVGVersionOf converts a native integer to a SVGVersion, failing on values the
// native enum does not define.
func SVGVersionOf(v int) (SVGVersion, error) { return svgVersionNames.lookup(v) }

// SVGUnit is the unit used for an SVG document's width and height.
type SVGUnit int32

const (
	SVGUnitUser    SVGUnit = 0
	SVGUnitEm      SVGUnit = 1
	SVGUnitEx      SVGUnit = 2
	SVGUnitPx      SVGUnit = 3
	SVGUnitIn      SVGUnit = 4
	SVGUnitCm      SVGUnit = 5
	SVGUnitMm      SVGUnit = 6
	SVGUnitPt      SVGUnit = 7
	SVGUnitPc      SVGUnit = 8
	SVGUnitPercent SVGUnit = 9
)

var svgUnitNames = newEnumTable("SVG unit", "CAIRO_SVG_UNIT_", map[SVGUnit]string{
	SVGUnitUser:    "USER",
	SVGUnitEm:      "EM",
	SVGUnitEx:      "EX",
	SVGUnitPx:      "PX",
	SVGUnitIn:      "IN",
	SVGUnitCm:      "CM",
	SVGUnitMm:      "MM",
	SVGUnitPt:      "PT",
	SVGUnitPc:      "PC",
	SVGUnitPercent: "PERCENT",
})

// String returns the C name of the value without its prefix.
func (v SVGUnit) String() string { return svgUnitNames.name(v) }

// SVGUnitOf converts a native integer to a SVGUnit, failing on values the
// native enum does not define.
func SVGUnitOf(v int) (SVGUnit, error) { return svgUnitNames.lookup(v) }
