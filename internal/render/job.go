// Package render runs drawing scripts against cairo surfaces and writes
// the results: one shot with Job.Run, repeatedly with Job.Watch, or into
// a window with Preview.
package render

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	rt "github.com/arnodel/golua/runtime"

	"github.com/opd-ai/go-cairo/internal/config"
	"github.com/opd-ai/go-cairo/internal/lua"
	"github.com/opd-ai/go-cairo/pkg/cairo"
)

// Result describes a finished render.
type Result struct {
	// Output is the file written.
	Output string
	// Format is the format used.
	Format config.Format
	// Frames is the number of draw calls made.
	Frames int
	// Duration is the wall time of the whole job.
	Duration time.Duration
	// Image is the final frame for raster formats, nil otherwise.
	Image image.Image
	// ScriptOutput is everything the script printed.
	ScriptOutput string
}

// Option configures a Job.
type Option func(*Job)

// WithLogger sets the logger used for job progress. The default is silent.
func WithLogger(l cairo.Logger) Option {
	return func(j *Job) {
		if l != nil {
			j.logger = l
		}
	}
}

// WithStdout sets where the script's print output goes in addition to
// Result.ScriptOutput. The default discards it.
func WithStdout(w io.Writer) Option {
	return func(j *Job) {
		j.stdout = w
	}
}

// WithFrameHandler registers fn to receive a copy of each raster frame,
// for example Preview.SetFrame.
func WithFrameHandler(fn func(image.Image)) Option {
	return func(j *Job) {
		j.onFrame = fn
	}
}

// Job renders one script to one output.
type Job struct {
	cfg     config.Config
	logger  cairo.Logger
	stdout  io.Writer
	onFrame func(image.Image)
	mu      sync.Mutex
}

// NewJob validates cfg and returns a Job for it.
func NewJob(cfg config.Config, opts ...Option) (*Job, error) {
	if err := config.ValidateConfig(&cfg); err != nil {
		return nil, stageError(StageConfig, err)
	}

	j := &Job{
		cfg:    cfg,
		logger: nopLogger{},
	}
	for _, opt := range opts {
		opt(j)
	}
	return j, nil
}

// Config returns the job configuration.
func (j *Job) Config() config.Config {
	return j.cfg
}

// Run renders the job once. Runs of the same Job are serialized.
func (j *Job) Run(ctx context.Context) (*Result, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	start := time.Now()
	format := j.cfg.ResolvedFormat()
	output := j.cfg.ResolvedOutput()

	if err := cairo.Load(); err != nil {
		return nil, stageError(StageSurface, err)
	}

	runtime, bindings, hooks, err := j.loadScript(format)
	if err != nil {
		return nil, err
	}
	defer runtime.Close()

	target, err := newTarget(format, output, j.cfg)
	if err != nil {
		return nil, stageError(StageSurface, err)
	}
	defer target.discard()

	if _, err := hooks.Call(lua.HookSetup); err != nil {
		return nil, stageError(StageScript, err)
	}

	for frame := 1; frame <= j.cfg.Frames; frame++ {
		if err := ctx.Err(); err != nil {
			return nil, stageError(StageScript, fmt.Errorf("%w: %w", ErrCanceled, err))
		}
		if frame > 1 {
			target.surface().ShowPage()
		}
		if err := j.drawFrame(target, bindings, hooks, frame); err != nil {
			return nil, err
		}
		if j.onFrame != nil {
			if img, err := target.image(); err == nil && img != nil {
				j.onFrame(img)
			}
		}
	}

	if _, err := hooks.Call(lua.HookTeardown); err != nil {
		return nil, stageError(StageScript, err)
	}

	img, err := target.commit()
	if err != nil {
		return nil, stageError(StageOutput, err)
	}

	result := &Result{
		Output:       output,
		Format:       format,
		Frames:       j.cfg.Frames,
		Duration:     time.Since(start),
		Image:        img,
		ScriptOutput: runtime.Output(),
	}
	j.logger.Info("rendered", "script", j.cfg.Script, "output", output,
		"format", format.String(), "frames", result.Frames, "duration", result.Duration)
	return result, nil
}

// loadScript creates the sandbox, runs the script body and checks its
// hooks.
func (j *Job) loadScript(format config.Format) (*lua.Runtime, *lua.Bindings, *lua.HookManager, error) {
	runtime, err := lua.New(lua.RuntimeConfig{
		CPULimit:    j.cfg.Lua.CPULimit,
		MemoryLimit: j.cfg.Lua.MemoryLimit,
		Stdout:      j.stdout,
	})
	if err != nil {
		return nil, nil, nil, stageError(StageScript, err)
	}

	bindings, err := lua.NewBindings(runtime)
	if err != nil {
		runtime.Close()
		return nil, nil, nil, stageError(StageScript, err)
	}
	bindings.SetCanvas(j.cfg.Width, j.cfg.Height, format.String())

	if _, err := runtime.ExecuteFile(j.cfg.Script); err != nil {
		runtime.Close()
		return nil, nil, nil, stageError(StageScript, err)
	}

	hooks, err := lua.NewHookManager(runtime)
	if err != nil {
		runtime.Close()
		return nil, nil, nil, stageError(StageScript, err)
	}
	found, err := hooks.Discover()
	if err != nil {
		runtime.Close()
		return nil, nil, nil, stageError(StageScript, fmt.Errorf("%s: %w", j.cfg.Script, err))
	}
	j.logger.Debug("script loaded", "script", j.cfg.Script, "hooks", found)

	return runtime, bindings, hooks, nil
}

// drawFrame paints the background and calls draw(cr, width, height) on a
// fresh context.
func (j *Job) drawFrame(target *target, bindings *lua.Bindings, hooks *lua.HookManager, frame int) error {
	cr, err := cairo.NewContext(target.surface())
	if err != nil {
		return stageError(StageSurface, err)
	}
	defer cr.Destroy()

	if err := j.paintBackground(cr, target.format.Vector()); err != nil {
		return stageError(StageConfig, err)
	}

	bindings.SetFrame(frame)
	_, err = hooks.Call(lua.HookDraw,
		lua.Handle(cr),
		rt.IntValue(int64(j.cfg.Width)),
		rt.IntValue(int64(j.cfg.Height)),
	)
	if err != nil {
		return stageError(StageScript, fmt.Errorf("frame %d: %w", frame, err))
	}

	// The script may have destroyed cr itself.
	if !cr.Destroyed() {
		if err := cr.Status(); err != nil {
			return stageError(StageSurface, fmt.Errorf("frame %d: %w", frame, err))
		}
	}
	return nil
}

// paintBackground fills the canvas with the configured background. Raster
// frames are cleared first so each frame starts from nothing.
func (j *Job) paintBackground(cr *cairo.Context, vector bool) error {
	bg, ok, err := j.cfg.BackgroundColor()
	if err != nil {
		return err
	}
	if vector && !ok {
		return nil
	}

	cr.Save()
	defer cr.Restore()
	cr.SetOperator(cairo.OperatorSource)
	if ok {
		cr.SetSourceColor(cairo.RGBA{
			R: float64(bg.R) / 255,
			G: float64(bg.G) / 255,
			B: float64(bg.B) / 255,
			A: float64(bg.A) / 255,
		})
	} else {
		cr.SetSourceRGBA(0, 0, 0, 0)
	}
	cr.Paint()
	return nil
}

// writeFileAtomic creates path through a temporary file in the same
// directory, so a failed render never leaves a truncated output behind.
func writeFileAtomic(path string, write func(io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()

	if err := write(f); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	if err := os.Chmod(f.Name(), 0o644); err != nil {
		return fmt.Errorf("failed to set output permissions: %w", err)
	}
	if err := os.Rename(f.Name(), path); err != nil {
		return fmt.Errorf("failed to move output into place: %w", err)
	}
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// errUnsupported reports whether err only says an optional entry point is
// missing from the loaded library.
func errUnsupported(err error) bool {
	return errors.Is(err, cairo.ErrUnsupported)
}
