package render

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/opd-ai/go-cairo/internal/config"
	"github.com/opd-ai/go-cairo/pkg/cairo"
)

// target is the surface a job draws on together with the file it ends up
// in. Raster targets draw into memory and encode on commit. Vector targets
// stream into a temporary file that commit moves into place.
type target struct {
	format config.Format
	output string

	raster *cairo.ImageSurface
	doc    *cairo.Surface
	tmp    *os.File
	done   bool
}

func newTarget(format config.Format, output string, cfg config.Config) (*target, error) {
	t := &target{format: format, output: output}
	if !format.Vector() {
		s, err := cairo.NewImageSurface(cairo.FormatARGB32, cfg.Width, cfg.Height)
		if err != nil {
			return nil, fmt.Errorf("failed to create %dx%d image surface: %w", cfg.Width, cfg.Height, err)
		}
		t.raster = s
		return t, nil
	}

	dir := filepath.Dir(output)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(output)+".*")
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	t.tmp = tmp

	w, h := float64(cfg.Width), float64(cfg.Height)
	switch format {
	case config.FormatPDF:
		s, err := cairo.NewPDFSurfaceForStream(tmp, w, h)
		if err != nil {
			t.discard()
			return nil, err
		}
		setDocumentInfo(s, cfg.Document)
		t.doc = s.Surface
	case config.FormatSVG:
		s, err := cairo.NewSVGSurfaceForStream(tmp, w, h)
		if err != nil {
			t.discard()
			return nil, err
		}
		t.doc = s.Surface
	case config.FormatPS:
		s, err := cairo.NewPSSurfaceForStream(tmp, w, h)
		if err != nil {
			t.discard()
			return nil, err
		}
		if strings.EqualFold(filepath.Ext(output), ".eps") {
			s.SetEPS(true)
		}
		t.doc = s.Surface
	default:
		t.discard()
		return nil, fmt.Errorf("no surface for format %s", format)
	}
	return t, nil
}

// setDocumentInfo copies the document fields into the PDF information
// dictionary. Libraries too old for metadata produce untitled documents.
func setDocumentInfo(s *cairo.PDFSurface, doc config.DocumentConfig) {
	fields := []struct {
		key   cairo.PDFMetadata
		value string
	}{
		{cairo.PDFMetadataTitle, doc.Title},
		{cairo.PDFMetadataAuthor, doc.Author},
		{cairo.PDFMetadataSubject, doc.Subject},
		{cairo.PDFMetadataCreator, "cairo-lua"},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		if err := s.SetMetadata(f.key, f.value); err != nil && errUnsupported(err) {
			return
		}
	}
}

func (t *target) surface() *cairo.Surface {
	if t.raster != nil {
		return t.raster.Surface
	}
	return t.doc
}

// image returns a copy of the current raster frame, or nil for documents.
func (t *target) image() (image.Image, error) {
	if t.raster == nil {
		return nil, nil
	}
	return t.raster.Image()
}

// commit writes the output file and returns the final raster frame.
func (t *target) commit() (image.Image, error) {
	if t.raster != nil {
		return t.commitRaster()
	}

	if err := t.doc.Finish(); err != nil {
		return nil, fmt.Errorf("failed to finish %s document: %w", t.format, err)
	}
	name := t.tmp.Name()
	if err := t.tmp.Close(); err != nil {
		return nil, fmt.Errorf("failed to close output file: %w", err)
	}
	if err := os.Chmod(name, 0o644); err != nil {
		return nil, fmt.Errorf("failed to set output permissions: %w", err)
	}
	if err := os.Rename(name, t.output); err != nil {
		return nil, fmt.Errorf("failed to move output into place: %w", err)
	}
	t.done = true
	return nil, nil
}

func (t *target) commitRaster() (image.Image, error) {
	t.raster.Flush()
	if err := t.raster.Status(); err != nil {
		return nil, err
	}
	img, err := t.raster.Image()
	if err != nil {
		return nil, err
	}

	var encode func(io.Writer) error
	switch t.format {
	case config.FormatBMP:
		encode = func(w io.Writer) error { return bmp.Encode(w, img) }
	case config.FormatTIFF:
		encode = func(w io.Writer) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
		}
	default:
		encode = t.raster.WriteToPNGStream
	}
	if err := writeFileAtomic(t.output, encode); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", t.format, err)
	}
	t.done = true
	return img, nil
}

// discard releases the surfaces and removes any partial document.
func (t *target) discard() {
	if t.raster != nil {
		t.raster.Destroy()
		t.raster = nil
	}
	if t.doc != nil {
		t.doc.Destroy()
		t.doc = nil
	}
	if t.tmp != nil {
		t.tmp.Close()
		if !t.done {
			os.Remove(t.tmp.Name())
		}
		t.tmp = nil
	}
}
