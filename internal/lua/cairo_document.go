package lua

import (
	"fmt"
	"io"

	rt "github.com/arnodel/golua/runtime"

	"github.com/opd-ai/go-cairo/pkg/cairo"
)

func (b *Bindings) registerDocumentFunctions() {
	b.set("pdf_surface_create", documentCreate(cairo.NewPDFSurface), 3)
	b.set("pdf_surface_create_for_stream", documentCreateForStream(cairo.NewPDFSurfaceForStream), 3)
	b.set("pdf_surface_set_size", pdfNumbers((*cairo.PDFSurface).SetSize), 3)
	b.set("pdf_surface_restrict_to_version", pdfRestrict, 2)
	b.set("pdf_surface_set_metadata", pdfSetMetadata, 3)
	b.set("pdf_surface_set_page_label", pdfSetPageLabel, 2)
	b.set("pdf_surface_add_outline", pdfAddOutline, 5)

	b.set("ps_surface_create", documentCreate(cairo.NewPSSurface), 3)
	b.set("ps_surface_create_for_stream", documentCreateForStream(cairo.NewPSSurfaceForStream), 3)
	b.set("ps_surface_set_size", psNumbers, 3)
	b.set("ps_surface_set_eps", psSetEPS, 2)
	b.set("ps_surface_get_eps", psGetEPS, 1)
	b.set("ps_surface_restrict_to_level", psRestrict, 2)
	b.set("ps_surface_dsc_comment", psDSCComment, 2)

	b.set("svg_surface_create", documentCreate(cairo.NewSVGSurface), 3)
	b.set("svg_surface_create_for_stream", documentCreateForStream(cairo.NewSVGSurfaceForStream), 3)
	b.set("svg_surface_restrict_to_version", svgRestrict, 2)
	b.set("svg_surface_set_document_unit", svgSetDocumentUnit, 2)
}

// documentCreate adapts the (filename, width_pt, height_pt) constructors.
func documentCreate[S any](create func(string, float64, float64) (S, error)) rt.GoFunctionFunc {
	return func(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
		args := getAllArgs(c)
		filename, err := getStringArg(args, 0)
		if err != nil {
			return nil, fmt.Errorf("filename: %w", err)
		}
		size, err := getFloatArgs(args, 1, 2)
		if err != nil {
			return nil, fmt.Errorf("size: %w", err)
		}
		s, err := create(filename, size[0], size[1])
		if err != nil {
			return nil, err
		}
		return c.PushingNext1(t.Runtime, newUserData(s)), nil
	}
}

// documentCreateForStream adapts the (fn, width_pt, height_pt)
// constructors. fn receives the document as string chunks until the
// surface is finished.
func documentCreateForStream[S any](create func(io.Writer, float64, float64) (S, error)) rt.GoFunctionFunc {
	return func(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
		args := getAllArgs(c)
		fn, err := getFunctionArg(args, 0)
		if err != nil {
			return nil, fmt.Errorf("writer: %w", err)
		}
		size, err := getFloatArgs(args, 1, 2)
		if err != nil {
			return nil, fmt.Errorf("size: %w", err)
		}
		s, err := create(luaWriter{t: t, fn: fn}, size[0], size[1])
		if err != nil {
			return nil, err
		}
		return c.PushingNext1(t.Runtime, newUserData(s)), nil
	}
}

func getPDFSurfaceArg(args []rt.Value, idx int) (*cairo.PDFSurface, error) {
	return getHandleArg[*cairo.PDFSurface](args, idx, "PDF surface")
}

func getPSSurfaceArg(args []rt.Value, idx int) (*cairo.PSSurface, error) {
	return getHandleArg[*cairo.PSSurface](args, idx, "PostScript surface")
}

func getSVGSurfaceArg(args []rt.Value, idx int) (*cairo.SVGSurface, error) {
	return getHandleArg[*cairo.SVGSurface](args, idx, "SVG surface")
}

func pdfNumbers(fn func(*cairo.PDFSurface, float64, float64)) rt.GoFunctionFunc {
	return func(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
		args := getAllArgs(c)
		s, err := getPDFSurfaceArg(args, 0)
		if err != nil {
			return nil, fmt.Errorf("surface: %w", err)
		}
		v, err := getFloatArgs(args, 1, 2)
		if err != nil {
			return nil, err
		}
		fn(s, v[0], v[1])
		return c.Next(), nil
	}
}

// pdfRestrict handles cairo_pdf_surface_restrict_to_version(surface, version)
func pdfRestrict(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	args := getAllArgs(c)
	s, err := getPDFSurfaceArg(args, 0)
	if err != nil {
		return nil, fmt.Errorf("surface: %w", err)
	}
	version, err := getEnumArg(args, 1, cairo.PDFVersionOf)
	if err != nil {
		return nil, fmt.Errorf("version: %w", err)
	}
	s.RestrictToVersion(version)
	return c.Next(), nil
}

// pdfSetMetadata handles cairo_pdf_surface_set_metadata(surface, field, value)
func pdfSetMetadata(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	args := getAllArgs(c)
	s, err := getPDFSurfaceArg(args, 0)
	if err != nil {
		return nil, fmt.Errorf("surface: %w", err)
	}
	field, err := getEnumArg(args, 1, cairo.PDFMetadataOf)
	if err != nil {
		return nil, fmt.Errorf("field: %w", err)
	}
	value, err := getStringArg(args, 2)
	if err != nil {
		return nil, fmt.Errorf("value: %w", err)
	}
	if err := s.SetMetadata(field, value); err != nil {
		return nil, err
	}
	return c.Next(), nil
}

// pdfSetPageLabel handles cairo_pdf_surface_set_page_label(surface, label)
func pdfSetPageLabel(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	args := getAllArgs(c)
	s, err := getPDFSurfaceArg(args, 0)
	if err != nil {
		return nil, fmt.Errorf("surface: %w", err)
	}
	label, err := getStringArg(args, 1)
	if err != nil {
		return nil, fmt.Errorf("label: %w", err)
	}
	if err := s.SetPageLabel(label); err != nil {
		return nil, err
	}
	return c.Next(), nil
}

// pdfAddOutline handles cairo_pdf_surface_add_outline(surface, parent, name, link, flags)
// and returns the new entry's id.
func pdfAddOutline(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	args := getAllArgs(c)
	s, err := getPDFSurfaceArg(args, 0)
	if err != nil {
		return nil, fmt.Errorf("surface: %w", err)
	}
	parent, err := getIntArg(args, 1)
	if err != nil {
		return nil, fmt.Errorf("parent: %w", err)
	}
	name, err := getStringArg(args, 2)
	if err != nil {
		return nil, fmt.Errorf("name: %w", err)
	}
	link, err := getStringArg(args, 3)
	if err != nil {
		return nil, fmt.Errorf("link: %w", err)
	}
	var flags int64
	if len(args) > 4 && !args[4].IsNil() {
		if flags, err = getIntArg(args, 4); err != nil {
			return nil, fmt.Errorf("flags: %w", err)
		}
	}
	id, err := s.AddOutline(int(parent), name, link, cairo.PDFOutlineFlags(flags))
	if err != nil {
		return nil, err
	}
	return c.PushingNext1(t.Runtime, rt.IntValue(int64(id))), nil
}

// psNumbers handles cairo_ps_surface_set_size(surface, width_pt, height_pt)
func psNumbers(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	args := getAllArgs(c)
	s, err := getPSSurfaceArg(args, 0)
	if err != nil {
		return nil, fmt.Errorf("surface: %w", err)
	}
	v, err := getFloatArgs(args, 1, 2)
	if err != nil {
		return nil, err
	}
	s.SetSize(v[0], v[1])
	return c.Next(), nil
}

// psSetEPS handles cairo_ps_surface_set_eps(surface, eps)
func psSetEPS(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	args := getAllArgs(c)
	s, err := getPSSurfaceArg(args, 0)
	if err != nil {
		return nil, fmt.Errorf("surface: %w", err)
	}
	eps, err := getBoolArg(args, 1)
	if err != nil {
		return nil, fmt.Errorf("eps: %w", err)
	}
	s.SetEPS(eps)
	return c.Next(), nil
}

// psGetEPS handles cairo_ps_surface_get_eps(surface)
func psGetEPS(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	s, err := getPSSurfaceArg(getAllArgs(c), 0)
	if err != nil {
		return nil, fmt.Errorf("surface: %w", err)
	}
	return c.PushingNext1(t.Runtime, rt.BoolValue(s.EPS())), nil
}

// psRestrict handles cairo_ps_surface_restrict_to_level(surface, level)
func psRestrict(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	args := getAllArgs(c)
	s, err := getPSSurfaceArg(args, 0)
	if err != nil {
		return nil, fmt.Errorf("surface: %w", err)
	}
	level, err := getEnumArg(args, 1, cairo.PSLevelOf)
	if err != nil {
		return nil, fmt.Errorf("level: %w", err)
	}
	s.RestrictToLevel(level)
	return c.Next(), nil
}

// psDSCComment handles cairo_ps_surface_dsc_comment(surface, comment)
func psDSCComment(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	args := getAllArgs(c)
	s, err := getPSSurfaceArg(args, 0)
	if err != nil {
		return nil, fmt.Errorf("surface: %w", err)
	}
	comment, err := getStringArg(args, 1)
	if err != nil {
		return nil, fmt.Errorf("comment: %w", err)
	}
	s.DSCComment(comment)
	return c.Next(), nil
}

// svgRestrict handles cairo_svg_surface_restrict_to_version(surface, version)
func svgRestrict(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	args := getAllArgs(c)
	s, err := getSVGSurfaceArg(args, 0)
	if err != nil {
		return nil, fmt.Errorf("surface: %w", err)
	}
	version, err := getEnumArg(args, 1, cairo.SVGVersionOf)
	if err != nil {
		return nil, fmt.Errorf("version: %w", err)
	}
	s.RestrictToVersion(version)
	return c.Next(), nil
}

// svgSetDocumentUnit handles cairo_svg_surface_set_document_unit(surface, unit)
func svgSetDocumentUnit(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	args := getAllArgs(c)
	s, err := getSVGSurfaceArg(args, 0)
	if err != nil {
		return nil, fmt.Errorf("surface: %w", err)
	}
	unit, err := getEnumArg(args, 1, cairo.SVGUnitOf)
	if err != nil {
		return nil, fmt.Errorf("unit: %w", err)
	}
	if err := s.SetDocumentUnit(unit); err != nil {
		return nil, err
	}
	return c.Next(), nil
}
