package cairo

import (
	"runtime"
	"unsafe"

	"github.com/opd-ai/go-cairo/internal/native"
)

var fontOptionsFns struct {
	create           func() uintptr
	copy             func(uintptr) uintptr
	destroy          func(uintptr)
	status           func(uintptr) Status
	merge            func(uintptr, uintptr)
	equal            func(uintptr, uintptr) int32
	hash             func(uintptr) cULong
	setAntialias     func(uintptr, Antialias)
	getAntialias     func(uintptr) Antialias
	setSubpixelOrder func(uintptr, SubpixelOrder)
	getSubpixelOrder func(uintptr) SubpixelOrder
	setHintStyle     func(uintptr, HintStyle)
	getHintStyle     func(uintptr) HintStyle
	setHintMetrics   func(uintptr, HintMetrics)
	getHintMetrics   func(uintptr) HintMetrics
	setVariations    func(uintptr, string)
	getVariations    func(uintptr) string
}

func init() {
	c := featureCore
	bind(c, &fontOptionsFns.create, "cairo_font_options_create")
	bind(c, &fontOptionsFns.copy, "cairo_font_options_copy")
	bind(c, &fontOptionsFns.destroy, "cairo_font_options_destroy")
	bind(c, &fontOptionsFns.status, "cairo_font_options_status")
	bind(c, &fontOptionsFns.merge, "cairo_font_options_merge")
	bind(c, &fontOptionsFns.equal, "cairo_font_options_equal")
	bind(c, &fontOptionsFns.hash, "cairo_font_options_hash")
	bind(c, &fontOptionsFns.setAntialias, "cairo_font_options_set_antialias")
	bind(c, &fontOptionsFns.getAntialias, "cairo_font_options_get_antialias")
	bind(c, &fontOptionsFns.setSubpixelOrder, "cairo_font_options_set_subpixel_order")
	bind(c, &fontOptionsFns.getSubpixelOrder, "cairo_font_options_get_subpixel_order")
	bind(c, &fontOptionsFns.setHintStyle, "cairo_font_options_set_hint_style")
	bind(c, &fontOptionsFns.getHintStyle, "cairo_font_options_get_hint_style")
	bind(c, &fontOptionsFns.setHintMetrics, "cairo_font_options_set_hint_metrics")
	bind(c, &fontOptionsFns.getHintMetrics, "cairo_font_options_get_hint_metrics")
	bind(FeatureFontVariations, &fontOptionsFns.setVariations, "cairo_font_options_set_variations")
	bind(FeatureFontVariations, &fontOptionsFns.getVariations, "cairo_font_options_get_variations")
}

// FontOptions is cairo_font_options_t. Unlike the other proxies it is not
// reference counted: every FontOptions owns a private native copy.
type FontOptions struct {
	object
}

func newFontOptions(op string, ptr uintptr) (*FontOptions, error) {
	if ptr == 0 {
		return nil, StatusNoMemory.errorFor(op)
	}
	o := &FontOptions{}
	track(o, &o.object, "font_options", ptr, true, fontOptionsFns.destroy)
	if err := fontOptionsFns.status(ptr).errorFor(op); err != nil {
		o.Destroy()
		return nil, err
	}
	return o, nil
}

// NewFontOptions returns options with every field at its default.
func NewFontOptions() (*FontOptions, error) {
	if err := ensureLoaded(); err != nil {
		return nil, err
	}
	return newFontOptions("font_options_create", fontOptionsFns.create())
}

// Copy returns an independent copy.
func (o *FontOptions) Copy() (*FontOptions, error) {
	defer runtime.KeepAlive(o)
	return newFontOptions("font_options_copy", fontOptionsFns.copy(o.raw()))
}

// Merge overwrites o with every non-default field of other.
func (o *FontOptions) Merge(other *FontOptions) {
	defer runtime.KeepAlive(o)
	defer runtime.KeepAlive(other)
	fontOptionsFns.merge(o.raw(), other.raw())
}

// Equal reports whether both hold the same values.
func (o *FontOptions) Equal(other *FontOptions) bool {
	defer runtime.KeepAlive(o)
	defer runtime.KeepAlive(other)
	return fontOptionsFns.equal(o.raw(), other.raw()) != 0
}

// Hash returns a hash of the option values.
func (o *FontOptions) Hash() uint64 {
	defer runtime.KeepAlive(o)
	return uint64(fontOptionsFns.hash(o.raw()))
}

func (o *FontOptions) SetAntialias(a Antialias) {
	defer runtime.KeepAlive(o)
	fontOptionsFns.setAntialias(o.raw(), a)
}
func (o *FontOptions) Antialias() Antialias     {
	defer runtime.KeepAlive(o)
	return fontOptionsFns.getAntialias(o.raw())
}

func (o *FontOptions) SetSubpixelOrder(s SubpixelOrder) {
	defer runtime.KeepAlive(o)
	fontOptionsFns.setSubpixelOrder(o.raw(), s)
}
func (o *FontOptions) SubpixelOrder() SubpixelOrder {
	defer runtime.KeepAlive(o)
	return fontOptionsFns.getSubpixelOrder(o.raw())
}

func (o *FontOptions) SetHintStyle(h HintStyle) {
	defer runtime.KeepAlive(o)
	fontOptionsFns.setHintStyle(o.raw(), h)
}
func (o *FontOptions) HintStyle() HintStyle     {
	defer runtime.KeepAlive(o)
	return fontOptionsFns.getHintStyle(o.raw())
}

func (o *FontOptions) SetHintMetrics(h HintMetrics) {
	defer runtime.KeepAlive(o)
	fontOptionsFns.setHintMetrics(o.raw(), h)
}
func (o *FontOptions) HintMetrics() HintMetrics     {
	defer runtime.KeepAlive(o)
	return fontOptionsFns.getHintMetrics(o.raw())
}

// SetVariations sets OpenType font variations, e.g. "wght=700,wdth=80".
func (o *FontOptions) SetVariations(v string) error {
	defer runtime.KeepAlive(o)
	if err := requireFeature(FeatureFontVariations); err != nil {
		return err
	}
	fontOptionsFns.setVariations(o.raw(), v)
	return nil
}

// Variations returns the font variations string.
func (o *FontOptions) Variations() (string, error) {
	defer runtime.KeepAlive(o)
	if err := requireFeature(FeatureFontVariations); err != nil {
		return "", err
	}
	return fontOptionsFns.getVariations(o.raw()), nil
}

var fontFaceFns struct {
	toyCreate         func(string, FontSlant, FontWeight) uintptr
	reference         func(uintptr) uintptr
	destroy           func(uintptr)
	getReferenceCount func(uintptr) uint32
	status            func(uintptr) Status
	getType           func(uintptr) FontType
	toyGetFamily      func(uintptr) string
	toyGetSlant       func(uintptr) FontSlant
	toyGetWeight      func(uintptr) FontWeight
}

func init() {
	c := featureCore
	bind(c, &fontFaceFns.toyCreate, "cairo_toy_font_face_create")
	bind(c, &fontFaceFns.reference, "cairo_font_face_reference")
	bind(c, &fontFaceFns.destroy, "cairo_font_face_destroy")
	bind(c, &fontFaceFns.getReferenceCount, "cairo_font_face_get_reference_count")
	bind(c, &fontFaceFns.status, "cairo_font_face_status")
	bind(c, &fontFaceFns.getType, "cairo_font_face_get_type")
	bind(c, &fontFaceFns.toyGetFamily, "cairo_toy_font_face_get_family")
	bind(c, &fontFaceFns.toyGetSlant, "cairo_toy_font_face_get_slant")
	bind(c, &fontFaceFns.toyGetWeight, "cairo_toy_font_face_get_weight")
}

// FontFace is cairo_font_face_t. Only toy faces can be created from Go;
// faces of other backends are reachable through a Context or ScaledFont.
type FontFace struct {
	object
}

func newFontFace(ptr uintptr) *FontFace {
	f := &FontFace{}
	track(f, &f.object, "font_face", ptr, true, fontFaceFns.destroy)
	return f
}

func refFontFace(ptr uintptr) *FontFace {
	if ptr == 0 {
		return nil
	}
	return newFontFace(fontFaceFns.reference(ptr))
}

// NewToyFontFace selects a face by CSS2-style family name, slant and
// weight.
func NewToyFontFace(family string, slant FontSlant, weight FontWeight) (*FontFace, error) {
	if err := ensureLoaded(); err != nil {
		return nil, err
	}
	ptr := fontFaceFns.toyCreate(family, slant, weight)
	if ptr == 0 {
		return nil, StatusNoMemory.errorFor("toy_font_face_create")
	}
	f := newFontFace(ptr)
	if err := f.Status(); err != nil {
		f.Destroy()
		return nil, err
	}
	return f, nil
}

// Reference returns a new proxy sharing the same native face.
func (f *FontFace) Reference() *FontFace {
	defer runtime.KeepAlive(f)
	return newFontFace(fontFaceFns.reference(f.raw()))
}

// ReferenceCount returns the native reference count.
func (f *FontFace) ReferenceCount() int {
	defer runtime.KeepAlive(f)
	return int(fontFaceFns.getReferenceCount(f.raw()))
}

// Status returns the face's error state, or nil.
func (f *FontFace) Status() error {
	defer runtime.KeepAlive(f)
	return fontFaceFns.status(f.raw()).errorFor("font_face")
}

// Type returns the font backend.
func (f *FontFace) Type() FontType {
	defer runtime.KeepAlive(f)
	return fontFaceFns.getType(f.raw())
}

// Family returns the family of a toy face.
func (f *FontFace) Family() string {
	defer runtime.KeepAlive(f)
	return fontFaceFns.toyGetFamily(f.raw())
}

// Slant returns the slant of a toy face.
func (f *FontFace) Slant() FontSlant {
	defer runtime.KeepAlive(f)
	return fontFaceFns.toyGetSlant(f.raw())
}

// Weight returns the weight of a toy face.
func (f *FontFace) Weight() FontWeight {
	defer runtime.KeepAlive(f)
	return fontFaceFns.toyGetWeight(f.raw())
}

var scaledFontFns struct {
	create            func(uintptr, *Matrix, *Matrix, uintptr) uintptr
	reference         func(uintptr) uintptr
	destroy           func(uintptr)
	getReferenceCount func(uintptr) uint32
	status            func(uintptr) Status
	getType           func(uintptr) FontType
	getFontFace       func(uintptr) uintptr
	getFontMatrix     func(uintptr, *Matrix)
	getCTM            func(uintptr, *Matrix)
	getScaleMatrix    func(uintptr, *Matrix)
	getFontOptions    func(uintptr, uintptr)
	extents           func(uintptr, *FontExtents)
	textExtents       func(uintptr, string, *TextExtents)
	glyphExtents      func(uintptr, unsafe.Pointer, int32, *TextExtents)
	textToGlyphs      func(uintptr, float64, float64, string, int32, *uintptr, *int32, *uintptr, *int32, *TextClusterFlags) Status
	glyphFree         func(uintptr)
	textClusterFree   func(uintptr)
}

func init() {
	c := featureCore
	bind(c, &scaledFontFns.create, "cairo_scaled_font_create")
	bind(c, &scaledFontFns.reference, "cairo_scaled_font_reference")
	bind(c, &scaledFontFns.destroy, "cairo_scaled_font_destroy")
	bind(c, &scaledFontFns.getReferenceCount, "cairo_scaled_font_get_reference_count")
	bind(c, &scaledFontFns.status, "cairo_scaled_font_status")
	bind(c, &scaledFontFns.getType, "cairo_scaled_font_get_type")
	bind(c, &scaledFontFns.getFontFace, "cairo_scaled_font_get_font_face")
	bind(c, &scaledFontFns.getFontMatrix, "cairo_scaled_font_get_font_matrix")
	bind(c, &scaledFontFns.getCTM, "cairo_scaled_font_get_ctm")
	bind(c, &scaledFontFns.getScaleMatrix, "cairo_scaled_font_get_scale_matrix")
	bind(c, &scaledFontFns.getFontOptions, "cairo_scaled_font_get_font_options")
	bind(c, &scaledFontFns.extents, "cairo_scaled_font_extents")
	bind(c, &scaledFontFns.textExtents, "cairo_scaled_font_text_extents")
	bind(c, &scaledFontFns.glyphExtents, "cairo_scaled_font_glyph_extents")
	bind(c, &scaledFontFns.textToGlyphs, "cairo_scaled_font_text_to_glyphs")
	bind(c, &scaledFontFns.glyphFree, "cairo_glyph_free")
	bind(c, &scaledFontFns.textClusterFree, "cairo_text_cluster_free")
}

// ScaledFont is a font face at a particular size and transformation.
type ScaledFont struct {
	object
}

func newScaledFont(ptr uintptr) *ScaledFont {
	f := &ScaledFont{}
	track(f, &f.object, "scaled_font", ptr, true, scaledFontFns.destroy)
	return f
}

func refScaledFont(ptr uintptr) *ScaledFont {
	if ptr == 0 {
		return nil
	}
	return newScaledFont(scaledFontFns.reference(ptr))
}

// NewScaledFont creates a scaled font. fontMatrix maps font space to user
// space and ctm maps user space to device space. opts may be nil.
func NewScaledFont(face *FontFace, fontMatrix, ctm Matrix, opts *FontOptions) (*ScaledFont, error) {
	defer runtime.KeepAlive(face)
	defer runtime.KeepAlive(opts)
	if err := ensureLoaded(); err != nil {
		return nil, err
	}
	if opts == nil {
		var err error
		if opts, err = NewFontOptions(); err != nil {
			return nil, err
		}
		defer opts.Destroy()
	}
	ptr := scaledFontFns.create(face.raw(), &fontMatrix, &ctm, opts.raw())
	if ptr == 0 {
		return nil, StatusNoMemory.errorFor("scaled_font_create")
	}
	f := newScaledFont(ptr)
	if err := f.Status(); err != nil {
		f.Destroy()
		return nil, err
	}
	return f, nil
}

// Reference returns a new proxy sharing the same native font.
func (f *ScaledFont) Reference() *ScaledFont {
	defer runtime.KeepAlive(f)
	return newScaledFont(scaledFontFns.reference(f.raw()))
}

// ReferenceCount returns the native reference count.
func (f *ScaledFont) ReferenceCount() int {
	defer runtime.KeepAlive(f)
	return int(scaledFontFns.getReferenceCount(f.raw()))
}

// Status returns the font's error state, or nil.
func (f *ScaledFont) Status() error {
	defer runtime.KeepAlive(f)
	return scaledFontFns.status(f.raw()).errorFor("scaled_font")
}

// Type returns the font backend.
func (f *ScaledFont) Type() FontType {
	defer runtime.KeepAlive(f)
	return scaledFontFns.getType(f.raw())
}

// FontFace returns the face the font was created from.
func (f *ScaledFont) FontFace() *FontFace {
	defer runtime.KeepAlive(f)
	return refFontFace(scaledFontFns.getFontFace(f.raw()))
}

// FontMatrix returns the font matrix.
func (f *ScaledFont) FontMatrix() Matrix {
	defer runtime.KeepAlive(f)
	var m Matrix
	scaledFontFns.getFontMatrix(f.raw(), &m)
	return m
}

// CTM returns the user-to-device matrix the font was created with.
func (f *ScaledFont) CTM() Matrix {
	defer runtime.KeepAlive(f)
	var m Matrix
	scaledFontFns.getCTM(f.raw(), &m)
	return m
}

// ScaleMatrix returns the font matrix multiplied by the CTM.
func (f *ScaledFont) ScaleMatrix() Matrix {
	defer runtime.KeepAlive(f)
	var m Matrix
	scaledFontFns.getScaleMatrix(f.raw(), &m)
	return m
}

// FontOptions returns a copy of the font's options.
func (f *ScaledFont) FontOptions() (*FontOptions, error) {
	defer runtime.KeepAlive(f)
	opts, err := NewFontOptions()
	if err != nil {
		return nil, err
	}
	scaledFontFns.getFontOptions(f.raw(), opts.raw())
	return opts, nil
}

// Extents returns the font metrics.
func (f *ScaledFont) Extents() FontExtents {
	defer runtime.KeepAlive(f)
	var e FontExtents
	scaledFontFns.extents(f.raw(), &e)
	return e
}

// TextExtents measures UTF-8 text.
func (f *ScaledFont) TextExtents(text string) TextExtents {
	defer runtime.KeepAlive(f)
	var e TextExtents
	scaledFontFns.textExtents(f.raw(), text, &e)
	return e
}

// GlyphExtents measures positioned glyphs.
func (f *ScaledFont) GlyphExtents(glyphs []Glyph) TextExtents {
	defer runtime.KeepAlive(f)
	var e TextExtents
	if len(glyphs) == 0 {
		return e
	}
	cg := toCGlyphs(glyphs)
	scaledFontFns.glyphExtents(f.raw(), unsafe.Pointer(&cg[0]), int32(len(cg)), &e)
	runtime.KeepAlive(cg)
	return e
}

// TextToGlyphs shapes text starting at (x, y) and returns the glyphs with
// the clusters mapping them back to bytes of text.
func (f *ScaledFont) TextToGlyphs(x, y float64, text string) ([]Glyph, []TextCluster, TextClusterFlags, error) {
	defer runtime.KeepAlive(f)
	var (
		glyphPtr, clusterPtr uintptr
		numGlyphs, numClust  int32
		flags                TextClusterFlags
	)
	st := scaledFontFns.textToGlyphs(f.raw(), x, y, text, int32(len(text)),
		&glyphPtr, &numGlyphs, &clusterPtr, &numClust, &flags)
	defer func() {
		if glyphPtr != 0 {
			scaledFontFns.glyphFree(glyphPtr)
		}
		if clusterPtr != 0 {
			scaledFontFns.textClusterFree(clusterPtr)
		}
	}()
	if err := st.errorFor("scaled_font_text_to_glyphs"); err != nil {
		return nil, nil, 0, err
	}

	glyphs := make([]Glyph, numGlyphs)
	gsize := unsafe.Sizeof(cGlyph{})
	for i := range glyphs {
		glyphs[i] = native.Read[cGlyph](glyphPtr, uintptr(i)*gsize).glyph()
	}
	clusters := make([]TextCluster, numClust)
	csize := unsafe.Sizeof(TextCluster{})
	for i := range clusters {
		clusters[i] = native.Read[TextCluster](clusterPtr, uintptr(i)*csize)
	}
	return glyphs, clusters, flags, nil
}
