// Package config describes a render job: which script to run, what to
// draw it onto and where to write the result. Jobs are written either as
// YAML or as a Lua file assigning a job table; see Parser.
package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is one render job.
type Config struct {
	// Script is the Lua file defining draw(cr, width, height).
	Script string `yaml:"script"`
	// Output is the file the result is written to. Empty means derive it
	// from Script and Format.
	Output string `yaml:"output"`
	// Format selects the surface type. FormatAuto picks it from Output.
	Format Format `yaml:"format"`
	// Width and Height are the canvas size in pixels, or points for the
	// vector formats.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// Background is painted before draw runs. It accepts a color name,
	// #RRGGBB or #RRGGBBAA. Empty leaves the surface transparent.
	Background string `yaml:"background"`
	// Frames is how many times draw is called. Vector formats emit one
	// page per frame; raster formats keep the last one.
	Frames int `yaml:"frames"`
	// Lua configures the script sandbox.
	Lua LuaConfig `yaml:"lua"`
	// Watch configures re-rendering on script changes.
	Watch WatchConfig `yaml:"watch"`
	// Document holds metadata for the PDF output.
	Document DocumentConfig `yaml:"document"`
}

// LuaConfig limits what a script may consume per call.
type LuaConfig struct {
	// CPULimit is the instruction budget per call. 0 means unlimited.
	CPULimit uint64 `yaml:"cpu_limit"`
	// MemoryLimit is the allocation budget in bytes per call.
	// 0 means unlimited.
	MemoryLimit uint64 `yaml:"memory_limit"`
}

// WatchConfig holds watch mode settings.
type WatchConfig struct {
	// Debounce is how long the watcher waits for writes to settle.
	Debounce time.Duration `yaml:"debounce"`
}

// DocumentConfig holds document metadata.
type DocumentConfig struct {
	Title   string `yaml:"title"`
	Author  string `yaml:"author"`
	Subject string `yaml:"subject"`
}

// Format is the output file type.
type Format int

const (
	// FormatAuto derives the format from the output file extension.
	FormatAuto Format = iota
	// FormatPNG renders to an image surface written as PNG.
	FormatPNG
	// FormatPDF renders to a PDF surface.
	FormatPDF
	// FormatSVG renders to an SVG surface.
	FormatSVG
	// FormatPS renders to a PostScript surface.
	FormatPS
	// FormatBMP renders to an image surface encoded as BMP.
	FormatBMP
	// FormatTIFF renders to an image surface encoded as TIFF.
	FormatTIFF
)

// String returns the string representation of a Format.
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatPNG:
		return "png"
	case FormatPDF:
		return "pdf"
	case FormatSVG:
		return "svg"
	case FormatPS:
		return "ps"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	default:
		return "unknown"
	}
}

// Vector reports whether the format is a paged document format.
func (f Format) Vector() bool {
	return f == FormatPDF || f == FormatSVG || f == FormatPS
}

// Extension returns the file extension for the format, with the dot.
func (f Format) Extension() string {
	switch f {
	case FormatAuto, FormatPNG:
		return ".png"
	case FormatTIFF:
		return ".tiff"
	default:
		return "." + f.String()
	}
}

// ParseFormat parses a string into a Format. The empty string is
// FormatAuto.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "png":
		return FormatPNG, nil
	case "pdf":
		return FormatPDF, nil
	case "svg":
		return FormatSVG, nil
	case "ps", "eps":
		return FormatPS, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	default:
		return FormatAuto, fmt.Errorf("unknown format: %s", s)
	}
}

// FormatFromPath picks the format matching the extension of path.
// Unknown extensions give FormatPNG.
func FormatFromPath(path string) Format {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	f, err := ParseFormat(ext)
	if err != nil || f == FormatAuto {
		return FormatPNG
	}
	return f
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *Format) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseFormat(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*f = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (f Format) MarshalYAML() (interface{}, error) {
	return f.String(), nil
}

// ParseSize parses "WIDTHxHEIGHT", e.g. "400x300".
func ParseSize(s string) (width, height int, err error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q: expected WIDTHxHEIGHT", s)
	}
	width, err = strconv.Atoi(strings.TrimSpace(w))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid width in size %q: %w", s, err)
	}
	height, err = strconv.Atoi(strings.TrimSpace(h))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid height in size %q: %w", s, err)
	}
	return width, height, nil
}

// ResolvedFormat returns Format, or the format implied by Output when
// Format is FormatAuto.
func (c *Config) ResolvedFormat() Format {
	if c.Format != FormatAuto {
		return c.Format
	}
	if c.Output == "" {
		return FormatPNG
	}
	return FormatFromPath(c.Output)
}

// ResolvedOutput returns Output, or the script path with the format's
// extension when Output is empty.
func (c *Config) ResolvedOutput() string {
	if c.Output != "" {
		return c.Output
	}
	base := strings.TrimSuffix(c.Script, filepath.Ext(c.Script))
	return base + c.ResolvedFormat().Extension()
}
