package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/google/go-cmp/cmp"
)

func newTestParser(t *testing.T) *Parser {
	t.Helper()
	p, err := NewParser()
	if err != nil {
		t.Fatalf("NewParser failed: %v", err)
	}
	t.Cleanup(func() { p.Close() })
	return p
}

const yamlJob = `# clock job
script: clock.lua
output: clock.pdf
format: pdf
width: 640
height: 480
background: "#202020"
frames: 3
lua:
  cpu_limit: 1000000
  memory_limit: 8388608
watch:
  debounce: 250ms
document:
  title: Clock
  author: Ada
`

func TestParserParseYAML(t *testing.T) {
	p := newTestParser(t)

	cfg, err := p.Parse([]byte(yamlJob))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := &Config{
		Script:     "clock.lua",
		Output:     "clock.pdf",
		Format:     FormatPDF,
		Width:      640,
		Height:     480,
		Background: "#202020",
		Frames:     3,
		Lua:        LuaConfig{CPULimit: 1_000_000, MemoryLimit: 8 * 1024 * 1024},
		Watch:      WatchConfig{Debounce: 250 * time.Millisecond},
		Document:   DocumentConfig{Title: "Clock", Author: "Ada"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParserParseYAMLDefaults(t *testing.T) {
	p := newTestParser(t)

	cfg, err := p.Parse([]byte("script: draw.lua\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := DefaultConfig()
	want.Script = "draw.lua"
	if diff := cmp.Diff(&want, cfg); diff != "" {
		t.Errorf("defaults not applied (-want +got):\n%s", diff)
	}

	// An empty document is all defaults.
	cfg, err = p.Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) failed: %v", err)
	}
	if cfg.Width != DefaultWidth {
		t.Errorf("expected default width, got %d", cfg.Width)
	}
}

func TestParserParseYAMLErrors(t *testing.T) {
	p := newTestParser(t)

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown key", "script: a.lua\nwidht: 10\n", "widht"},
		{"bad format", "format: jpeg\n", "unknown format"},
		{"bad duration", "watch:\n  debounce: soon\n", "debounce"},
		{"bad type", "width: wide\n", "width"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Parse([]byte(tt.content))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) && !strings.Contains(err.Error(), "parse") {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestParserParseLua(t *testing.T) {
	p := newTestParser(t)

	content := `
local size = 128
job = {
    script = "gauge.lua",
    output = "gauge.svg",
    width = size * 2,
    height = size,
    lua = { cpu_limit = 5000000 },
    watch = { debounce = 0.5 },
    document = { title = "Gauge" },
}
`
	cfg, err := p.Parse([]byte(content))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Script != "gauge.lua" || cfg.Output != "gauge.svg" {
		t.Errorf("unexpected paths %q, %q", cfg.Script, cfg.Output)
	}
	if cfg.Width != 256 || cfg.Height != 128 {
		t.Errorf("unexpected size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Lua.CPULimit != 5_000_000 {
		t.Errorf("unexpected cpu limit %d", cfg.Lua.CPULimit)
	}
	if cfg.Lua.MemoryLimit != DefaultMemoryLimit {
		t.Errorf("expected default memory limit, got %d", cfg.Lua.MemoryLimit)
	}
	if cfg.Watch.Debounce != 500*time.Millisecond {
		t.Errorf("unexpected debounce %v", cfg.Watch.Debounce)
	}
	if cfg.Document.Title != "Gauge" {
		t.Errorf("unexpected title %q", cfg.Document.Title)
	}
}

func TestParserParseLuaFieldAssignments(t *testing.T) {
	p := newTestParser(t)

	cfg, err := p.Parse([]byte(`job.script = "a.lua"
job.format = "tiff"
job.watch = { debounce = "1s" }
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Script != "a.lua" || cfg.Format != FormatTIFF || cfg.Watch.Debounce != time.Second {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestParserParseLuaErrors(t *testing.T) {
	p := newTestParser(t)

	tests := []struct {
		name    string
		content string
	}{
		{"syntax error", "job = {"},
		{"runtime error", `job = {} error("nope")`},
		{"job not a table", `job = 42`},
		{"bad format", `job = { format = "gif" }`},
		{"negative cpu", `job = { lua = { cpu_limit = -1 } }`},
		{"bad duration", `job = { watch = { debounce = "later" } }`},
		{"runaway", `job = {} while true do end`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := p.ParseReader(strings.NewReader(tt.content), "lua"); err == nil {
				t.Error("expected an error")
			}
		})
	}

	// The parser stays usable after a failure.
	if _, err := p.ParseReader(strings.NewReader(`job = { width = 1 }`), "lua"); err != nil {
		t.Errorf("parse after failure: %v", err)
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		content string
		want    string
	}{
		{"job = {}", "lua"},
		{"  job.width = 10", "lua"},
		{"-- comment\njob={script='a.lua'}", "lua"},
		{"script: a.lua", "yaml"},
		{"# job = {}", "yaml"},
		{"jobs: 1", "yaml"},
	}
	for _, tt := range tests {
		if got := detectFormat([]byte(tt.content)); got != tt.want {
			t.Errorf("detectFormat(%q) = %q, want %q", tt.content, got, tt.want)
		}
	}
}

func TestParserParseFile(t *testing.T) {
	p := newTestParser(t)
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "job.yaml")
	if err := os.WriteFile(yamlPath, []byte("script: draw.lua\noutput: /abs/out.png\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := p.ParseFile(yamlPath)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if cfg.Script != filepath.Join(dir, "draw.lua") {
		t.Errorf("expected script resolved against %s, got %q", dir, cfg.Script)
	}
	if cfg.Output != "/abs/out.png" {
		t.Errorf("expected absolute output untouched, got %q", cfg.Output)
	}

	luaPath := filepath.Join(dir, "job.lua")
	if err := os.WriteFile(luaPath, []byte(`job = { script = "x.lua" }`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = p.ParseFile(luaPath)
	if err != nil {
		t.Fatalf("ParseFile(lua) failed: %v", err)
	}
	if cfg.Script != filepath.Join(dir, "x.lua") {
		t.Errorf("unexpected script %q", cfg.Script)
	}

	if _, err := p.ParseFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParserParseFromFS(t *testing.T) {
	p := newTestParser(t)
	fsys := fstest.MapFS{
		"jobs/a.yml": &fstest.MapFile{Data: []byte("script: a.lua\nwidth: 10\n")},
		"jobs/b.cfg": &fstest.MapFile{Data: []byte("job = { script = 'b.lua' }")},
	}

	cfg, err := p.ParseFromFS(fsys, "jobs/a.yml")
	if err != nil {
		t.Fatalf("ParseFromFS failed: %v", err)
	}
	if cfg.Script != "a.lua" || cfg.Width != 10 {
		t.Errorf("unexpected config %+v", cfg)
	}

	cfg, err = p.ParseFromFS(fsys, "jobs/b.cfg")
	if err != nil {
		t.Fatalf("ParseFromFS(detected lua) failed: %v", err)
	}
	if cfg.Script != "b.lua" {
		t.Errorf("unexpected script %q", cfg.Script)
	}

	if _, err := p.ParseFromFS(fsys, "jobs/c.yml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParserParseReaderUnknownFormat(t *testing.T) {
	p := newTestParser(t)
	if _, err := p.ParseReader(strings.NewReader(""), "toml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestMarshalYAMLRoundTrip(t *testing.T) {
	p := newTestParser(t)

	cfg, err := p.Parse([]byte(yamlJob))
	if err != nil {
		t.Fatal(err)
	}
	data, err := MarshalYAML(cfg)
	if err != nil {
		t.Fatalf("MarshalYAML failed: %v", err)
	}
	if !strings.Contains(string(data), "format: pdf") {
		t.Errorf("expected format as a name, got:\n%s", data)
	}

	again, err := p.ParseReader(strings.NewReader(string(data)), "yaml")
	if err != nil {
		t.Fatalf("re-parse failed: %v\n%s", err, data)
	}
	if diff := cmp.Diff(cfg, again); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
