package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/opd-ai/go-cairo/internal/config"
	"github.com/opd-ai/go-cairo/pkg/cairo"
)

const script = `
function draw(cr, w, h)
    cairo_set_source_rgb(cr, 0, 0.5, 1)
    cairo_paint(cr)
end
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestVersion(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-v"}, &stdout, &stderr); code != 0 {
		t.Errorf("run(-v) = %d", code)
	}
	if !strings.Contains(stdout.String(), Version) {
		t.Errorf("version output %q", stdout.String())
	}
}

func TestParseFlags(t *testing.T) {
	var stderr bytes.Buffer

	opts, err := parseFlags([]string{"-size", "10x20", "-watch", "draw.lua"}, &stderr)
	if err != nil {
		t.Fatalf("parseFlags failed: %v", err)
	}
	if opts.script != "draw.lua" || opts.size != "10x20" || !opts.watch {
		t.Errorf("unexpected options %+v", opts)
	}
	want := map[string]bool{"size": true, "watch": true, "script": true}
	if diff := cmp.Diff(want, opts.set); diff != "" {
		t.Errorf("set flags mismatch (-want +got):\n%s", diff)
	}

	if _, err := parseFlags([]string{"-script", "a.lua", "b.lua"}, &stderr); err == nil {
		t.Error("expected an error for two scripts")
	}
	if _, err := parseFlags([]string{"a.lua", "b.lua"}, &stderr); err == nil {
		t.Error("expected an error for extra arguments")
	}
	if _, err := parseFlags([]string{"-nope"}, &stderr); err == nil {
		t.Error("expected an error for an unknown flag")
	}
}

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "draw.lua", script)
	job := writeFile(t, dir, "job.yaml", "script: draw.lua\nwidth: 50\nheight: 60\nformat: pdf\nbackground: black\n")

	var stderr bytes.Buffer
	opts, err := parseFlags([]string{"-c", job, "-size", "7x8", "-bg", "white", "-frames", "2"}, &stderr)
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfig(opts)
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}

	if cfg.Script != filepath.Join(dir, "draw.lua") {
		t.Errorf("script not resolved against the job file: %q", cfg.Script)
	}
	if cfg.Width != 7 || cfg.Height != 8 {
		t.Errorf("size flag not applied: %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Format != config.FormatPDF {
		t.Errorf("format from file lost: %v", cfg.Format)
	}
	if cfg.Background != "white" || cfg.Frames != 2 {
		t.Errorf("unexpected overrides %q, %d", cfg.Background, cfg.Frames)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	draw := writeFile(t, dir, "draw.lua", script)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no script", nil, "no script"},
		{"missing script", []string{filepath.Join(dir, "gone.lua")}, "not found"},
		{"bad size", []string{"-size", "big", draw}, "size"},
		{"bad format", []string{"-format", "gif", draw}, "format"},
		{"missing job", []string{"-c", filepath.Join(dir, "job.yaml")}, "job.yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			opts, err := parseFlags(tt.args, &stderr)
			if err != nil {
				t.Fatal(err)
			}
			_, err = loadConfig(opts)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestRunFailures(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"help", []string{"-h"}, 0},
		{"bad flag", []string{"-nope"}, 1},
		{"no script", nil, 1},
		{"invalid size", []string{"-size", "0x10", "x.lua"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tt.args, &stdout, &stderr); code != tt.code {
				t.Errorf("run(%v) = %d, want %d; stderr: %s", tt.args, code, tt.code, stderr.String())
			}
		})
	}
}

func TestRunRender(t *testing.T) {
	if err := cairo.Load(); err != nil {
		t.Skipf("libcairo not available: %v", err)
	}

	dir := t.TempDir()
	draw := writeFile(t, dir, "draw.lua", script)
	out := filepath.Join(dir, "out.png")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-size", "16x16", "-o", out, draw}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run failed with %d: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "wrote "+out) {
		t.Errorf("unexpected stdout %q", stdout.String())
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("output missing: %v", err)
	}

	broken := writeFile(t, dir, "broken.lua", "function setup() end")
	stdout.Reset()
	stderr.Reset()
	if code := run([]string{broken}, &stdout, &stderr); code != 1 {
		t.Errorf("expected failure for a script without draw, got %d", code)
	}
	if !strings.Contains(stderr.String(), "[script]") {
		t.Errorf("expected a script stage error, got %q", stderr.String())
	}
}

func TestRunProfiles(t *testing.T) {
	if err := cairo.Load(); err != nil {
		t.Skipf("libcairo not available: %v", err)
	}

	dir := t.TempDir()
	draw := writeFile(t, dir, "draw.lua", script)
	cpu := filepath.Join(dir, "cpu.prof")
	mem := filepath.Join(dir, "mem.prof")

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-cpuprofile", cpu, "-memprofile", mem, draw}, &stdout, &stderr); code != 0 {
		t.Fatalf("run failed: %s", stderr.String())
	}
	for _, p := range []string{cpu, mem} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("profile %s missing: %v", p, err)
		}
	}
}
