package render

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/opd-ai/go-cairo/internal/config"
	"github.com/opd-ai/go-cairo/internal/lua"
	"github.com/opd-ai/go-cairo/pkg/cairo"
)

func requireCairo(t *testing.T) {
	t.Helper()
	if err := cairo.Load(); err != nil {
		t.Skipf("libcairo not available: %v", err)
	}
}

// skipUnsupported skips when the loaded library was built without the
// backend a test needs.
func skipUnsupported(t *testing.T, err error) {
	t.Helper()
	if errors.Is(err, cairo.ErrUnsupported) {
		t.Skipf("backend not available: %v", err)
	}
}

const halfRed = `
function draw(cr, w, h)
    cairo_set_source_rgb(cr, 1, 0, 0)
    cairo_rectangle(cr, 0, 0, w / 2, h)
    cairo_fill(cr)
end
`

func writeScript(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "draw.lua")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}
	return path
}

func testConfig(t *testing.T, body, output string) config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Script = writeScript(t, dir, body)
	cfg.Width = 40
	cfg.Height = 20
	if output != "" {
		cfg.Output = filepath.Join(dir, output)
	}
	return cfg
}

func runJob(t *testing.T, cfg config.Config, opts ...Option) (*Result, error) {
	t.Helper()
	job, err := NewJob(cfg, opts...)
	if err != nil {
		t.Fatalf("NewJob failed: %v", err)
	}
	return job.Run(context.Background())
}

func TestNewJobInvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	_, err := NewJob(cfg)
	if err == nil {
		t.Fatal("expected an error for a job without a script")
	}
	if StageOf(err) != StageConfig {
		t.Errorf("expected config stage, got %v", StageOf(err))
	}

	cfg.Script = "a.lua"
	cfg.Width = 0
	if _, err := NewJob(cfg); StageOf(err) != StageConfig {
		t.Errorf("expected config stage for zero width, got %v", err)
	}
}

func TestNewJobKeepsConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Script = "a.lua"
	job, err := NewJob(cfg, WithLogger(nil), WithStdout(nil))
	if err != nil {
		t.Fatalf("NewJob failed: %v", err)
	}
	if job.Config().Script != "a.lua" {
		t.Errorf("unexpected config %+v", job.Config())
	}
	if _, ok := job.logger.(nopLogger); !ok {
		t.Error("a nil logger should leave the silent default")
	}
}

func TestRunPNG(t *testing.T) {
	requireCairo(t)

	cfg := testConfig(t, halfRed, "out.png")
	cfg.Background = "white"

	res, err := runJob(t, cfg)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.Output != cfg.Output || res.Format != config.FormatPNG || res.Frames != 1 {
		t.Errorf("unexpected result %+v", res)
	}
	if res.Image == nil {
		t.Fatal("expected the final frame in the result")
	}

	f, err := os.Open(cfg.Output)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 20 {
		t.Errorf("unexpected size %v", img.Bounds())
	}

	tests := []struct {
		x, y int
		want color.NRGBA
	}{
		{5, 10, color.NRGBA{R: 255, A: 255}},
		{35, 10, color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
	}
	for _, tt := range tests {
		got := color.NRGBAModel.Convert(img.At(tt.x, tt.y)).(color.NRGBA)
		if got != tt.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRunDerivedOutput(t *testing.T) {
	requireCairo(t)

	cfg := testConfig(t, halfRed, "")
	res, err := runJob(t, cfg)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	want := strings.TrimSuffix(cfg.Script, ".lua") + ".png"
	if res.Output != want {
		t.Errorf("Output = %q, want %q", res.Output, want)
	}
	if _, err := os.Stat(want); err != nil {
		t.Errorf("derived output missing: %v", err)
	}
}

func TestRunTransparentBackground(t *testing.T) {
	requireCairo(t)

	cfg := testConfig(t, halfRed, "out.png")
	res, err := runJob(t, cfg)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if _, _, _, a := res.Image.At(35, 10).RGBA(); a != 0 {
		t.Errorf("expected an untouched pixel to stay transparent, alpha = %d", a)
	}
}

func TestRunRasterFormats(t *testing.T) {
	requireCairo(t)

	tests := []struct {
		output string
		decode func(*bytes.Reader) (image.Image, error)
	}{
		{"out.bmp", func(r *bytes.Reader) (image.Image, error) { return bmp.Decode(r) }},
		{"out.tiff", func(r *bytes.Reader) (image.Image, error) { return tiff.Decode(r) }},
	}
	for _, tt := range tests {
		t.Run(tt.output, func(t *testing.T) {
			cfg := testConfig(t, halfRed, tt.output)
			cfg.Background = "#0000ff"
			if _, err := runJob(t, cfg); err != nil {
				t.Fatalf("Run failed: %v", err)
			}

			data, err := os.ReadFile(cfg.Output)
			if err != nil {
				t.Fatalf("output not written: %v", err)
			}
			img, err := tt.decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			r, _, b, _ := img.At(35, 10).RGBA()
			if r != 0 || b != 0xffff {
				t.Errorf("expected blue background, got r=%d b=%d", r, b)
			}
			r, _, _, _ = img.At(5, 10).RGBA()
			if r != 0xffff {
				t.Errorf("expected red fill, got r=%d", r)
			}
		})
	}
}

func TestRunVectorFormats(t *testing.T) {
	requireCairo(t)

	tests := []struct {
		output string
		magic  string
	}{
		{"out.pdf", "%PDF-"},
		{"out.svg", "<?xml"},
		{"out.ps", "%!PS-Adobe"},
		{"out.eps", "%!PS-Adobe"},
	}
	for _, tt := range tests {
		t.Run(tt.output, func(t *testing.T) {
			cfg := testConfig(t, halfRed, tt.output)
			cfg.Document.Title = "Half red"

			res, err := runJob(t, cfg)
			skipUnsupported(t, err)
			if err != nil {
				t.Fatalf("Run failed: %v", err)
			}
			if res.Image != nil {
				t.Error("vector renders have no final image")
			}

			data, err := os.ReadFile(cfg.Output)
			if err != nil {
				t.Fatalf("output not written: %v", err)
			}
			if !bytes.HasPrefix(data, []byte(tt.magic)) {
				t.Errorf("output starts with %q, want %q", data[:min(len(data), 16)], tt.magic)
			}
			assertNoTempFiles(t, filepath.Dir(cfg.Output))
		})
	}
}

func TestRunMultiPagePDF(t *testing.T) {
	requireCairo(t)

	cfg := testConfig(t, halfRed, "pages.pdf")
	cfg.Frames = 3
	res, err := runJob(t, cfg)
	skipUnsupported(t, err)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.Frames != 3 {
		t.Errorf("Frames = %d, want 3", res.Frames)
	}
	if _, err := os.Stat(cfg.Output); err != nil {
		t.Errorf("output missing: %v", err)
	}
}

func TestRunHookOrder(t *testing.T) {
	requireCairo(t)

	script := `
function setup() print("setup " .. canvas.width .. "x" .. canvas.height .. " " .. canvas.format) end
function draw(cr, w, h) print("draw " .. frame .. " " .. w .. "x" .. h) end
function teardown() print("teardown") end
`
	cfg := testConfig(t, script, "out.png")
	cfg.Frames = 3

	var stdout bytes.Buffer
	res, err := runJob(t, cfg, WithStdout(&stdout))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := "setup 40x20 png\ndraw 1 40x20\ndraw 2 40x20\ndraw 3 40x20\nteardown\n"
	if res.ScriptOutput != want {
		t.Errorf("ScriptOutput = %q, want %q", res.ScriptOutput, want)
	}
	if stdout.String() != want {
		t.Errorf("stdout = %q, want %q", stdout.String(), want)
	}
}

func TestRunFrameHandler(t *testing.T) {
	requireCairo(t)

	cfg := testConfig(t, halfRed, "out.png")
	cfg.Frames = 2

	var frames []image.Image
	_, err := runJob(t, cfg, WithFrameHandler(func(img image.Image) {
		frames = append(frames, img)
	}))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(frames) != 2 {
		t.Fatalf("got %d frames, want 2", len(frames))
	}
	if frames[0] == frames[1] {
		t.Error("each frame should be a separate copy")
	}
}

func TestRunScriptDestroysContext(t *testing.T) {
	requireCairo(t)

	script := `
function draw(cr, w, h)
    cairo_paint(cr)
    cairo_destroy(cr)
end
`
	cfg := testConfig(t, script, "out.png")
	if _, err := runJob(t, cfg); err != nil {
		t.Errorf("Run failed: %v", err)
	}
}

func TestRunScriptErrors(t *testing.T) {
	requireCairo(t)

	tests := []struct {
		name   string
		script string
		is     error
	}{
		{"missing draw", `function setup() end`, lua.ErrMissingHook},
		{"syntax error", `function draw(`, nil},
		{"load error", `error("no")`, nil},
		{"setup error", "function setup() error('setup') end\nfunction draw() end", nil},
		{"draw error", `function draw(cr) cairo_set_source_rgb(cr, "red") end`, nil},
		{"teardown error", "function draw() end\nfunction teardown() error('late') end", nil},
		{"runaway draw", `function draw() while true do end end`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t, tt.script, "out.png")
			cfg.Lua.CPULimit = 100_000

			_, err := runJob(t, cfg)
			if err == nil {
				t.Fatal("expected an error")
			}
			if StageOf(err) != StageScript {
				t.Errorf("expected script stage, got %v: %v", StageOf(err), err)
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("expected %v, got %v", tt.is, err)
			}
			if _, statErr := os.Stat(cfg.Output); !os.IsNotExist(statErr) {
				t.Error("a failed render must not leave an output file")
			}
			assertNoTempFiles(t, filepath.Dir(cfg.Output))
		})
	}
}

func TestRunMissingScript(t *testing.T) {
	requireCairo(t)

	cfg := config.DefaultConfig()
	cfg.Script = filepath.Join(t.TempDir(), "missing.lua")
	_, err := runJob(t, cfg)
	if StageOf(err) != StageScript {
		t.Errorf("expected script stage, got %v", err)
	}
}

func TestRunCanceled(t *testing.T) {
	requireCairo(t)

	cfg := testConfig(t, halfRed, "out.png")
	job, err := NewJob(cfg)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = job.Run(ctx)
	if !errors.Is(err, ErrCanceled) {
		t.Fatalf("expected ErrCanceled, got %v", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected the context error to be wrapped, got %v", err)
	}
	assertNoTempFiles(t, filepath.Dir(cfg.Output))
}

func TestRunOutputDirectoryCreated(t *testing.T) {
	requireCairo(t)

	cfg := testConfig(t, halfRed, filepath.Join("nested", "dir", "out.png"))
	if _, err := runJob(t, cfg); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if _, err := os.Stat(cfg.Output); err != nil {
		t.Errorf("output missing: %v", err)
	}
}

func TestRunOutputError(t *testing.T) {
	requireCairo(t)

	cfg := testConfig(t, halfRed, "out.png")
	// A directory where the file should go makes the final rename fail.
	if err := os.Mkdir(cfg.Output, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfg.Output, "keep"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := runJob(t, cfg)
	if StageOf(err) != StageOutput {
		t.Errorf("expected output stage, got %v", err)
	}
	assertNoTempFiles(t, filepath.Dir(cfg.Output))
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "file.bin")

	err := writeFileAtomic(path, func(w io.Writer) error {
		_, err := w.Write([]byte("hello"))
		return err
	})
	if err != nil {
		t.Fatalf("writeFileAtomic failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "hello" {
		t.Errorf("unexpected content %q, %v", data, err)
	}

	boom := errors.New("boom")
	err = writeFileAtomic(filepath.Join(dir, "sub", "other.bin"), func(w io.Writer) error {
		w.Write([]byte("partial"))
		return boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("expected the write error, got %v", err)
	}
	entries, _ := os.ReadDir(filepath.Join(dir, "sub"))
	if len(entries) != 1 {
		t.Errorf("expected only the first file, found %d entries", len(entries))
	}
}

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".out.") || strings.HasPrefix(e.Name(), ".pages.") {
			t.Errorf("temporary file %s left behind", e.Name())
		}
	}
}
