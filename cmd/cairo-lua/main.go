// Package main provides the cairo-lua command, which renders Lua drawing
// scripts to PNG, PDF, SVG, PostScript, BMP or TIFF through libcairo.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/opd-ai/go-cairo/internal/config"
	"github.com/opd-ai/go-cairo/internal/profiling"
	"github.com/opd-ai/go-cairo/internal/render"
	"github.com/opd-ai/go-cairo/pkg/cairo"
)

// Version is the current version of cairo-lua.
// This default value can be overridden at build time using:
//
//	go build -ldflags "-X main.Version=x.y.z"
var Version = "0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// options holds the parsed command line.
type options struct {
	configPath string
	script     string
	output     string
	size       string
	format     string
	background string
	frames     int
	watch      bool
	preview    bool
	version    bool
	debug      bool
	jsonLog    bool
	cpuProfile string
	memProfile string
	set        map[string]bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{set: make(map[string]bool)}

	fs := flag.NewFlagSet("cairo-lua", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "c", "", "Path to a job file (YAML or Lua)")
	fs.StringVar(&opts.script, "script", "", "Lua drawing script")
	fs.StringVar(&opts.output, "o", "", "Output file (default: script name with the format's extension)")
	fs.StringVar(&opts.size, "size", "", "Canvas size as WIDTHxHEIGHT")
	fs.StringVar(&opts.format, "format", "", "Output format: png, pdf, svg, ps, bmp, tiff")
	fs.StringVar(&opts.background, "bg", "", "Background color name or #RRGGBB[AA]")
	fs.IntVar(&opts.frames, "frames", 0, "Number of frames (pages for vector formats)")
	fs.BoolVar(&opts.watch, "watch", false, "Re-render whenever the script changes")
	fs.BoolVar(&opts.preview, "preview", false, "Show the rendered frames in a window")
	fs.BoolVar(&opts.version, "v", false, "Print version and exit")
	fs.BoolVar(&opts.debug, "debug", false, "Log debug output, including library loading")
	fs.BoolVar(&opts.jsonLog, "log-json", false, "Log as JSON lines")
	fs.StringVar(&opts.cpuProfile, "cpuprofile", "", "Write CPU profile to file")
	fs.StringVar(&opts.memProfile, "memprofile", "", "Write memory profile to file")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: cairo-lua [flags] [script.lua]")
		fmt.Fprintln(stderr, "       cairo-lua -c job.yaml [flags]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })

	switch rest := fs.Args(); len(rest) {
	case 0:
	case 1:
		if opts.script != "" {
			return nil, fmt.Errorf("script given both as -script and as argument")
		}
		opts.script = rest[0]
		opts.set["script"] = true
	default:
		return nil, fmt.Errorf("unexpected arguments: %v", rest[1:])
	}
	return opts, nil
}

// newLogger builds the command's logger. Without -debug only warnings and
// errors are shown.
func newLogger(opts *options, stderr io.Writer) cairo.Logger {
	level := slog.LevelWarn
	if opts.debug {
		level = slog.LevelDebug
	}
	if opts.jsonLog {
		return cairo.JSONLogger(stderr, level)
	}
	handler := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})
	return cairo.NewSlogAdapter(slog.New(handler))
}

// loadConfig reads the job file if one was given and applies the flags
// on top of it.
func loadConfig(opts *options) (config.Config, error) {
	cfg := config.DefaultConfig()
	if opts.configPath != "" {
		parser, err := config.NewParser()
		if err != nil {
			return cfg, err
		}
		defer parser.Close()

		parsed, err := parser.ParseFile(opts.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = *parsed
	}

	if opts.set["script"] {
		cfg.Script = opts.script
	}
	if opts.set["o"] {
		cfg.Output = opts.output
	}
	if opts.set["size"] {
		w, h, err := config.ParseSize(opts.size)
		if err != nil {
			return cfg, err
		}
		cfg.Width, cfg.Height = w, h
	}
	if opts.set["format"] {
		f, err := config.ParseFormat(opts.format)
		if err != nil {
			return cfg, err
		}
		cfg.Format = f
	}
	if opts.set["bg"] {
		cfg.Background = opts.background
	}
	if opts.set["frames"] {
		cfg.Frames = opts.frames
	}

	if cfg.Script == "" {
		return cfg, errors.New("no script given; use -script, a script argument or -c with a job file")
	}
	if _, err := os.Stat(cfg.Script); err != nil {
		if os.IsNotExist(err) {
			return cfg, fmt.Errorf("script not found: %s", cfg.Script)
		}
		return cfg, fmt.Errorf("error accessing script %s: %w", cfg.Script, err)
	}
	return cfg, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if opts.version {
		fmt.Fprintf(stdout, "cairo-lua version %s\n", Version)
		return 0
	}

	logger := newLogger(opts, stderr)
	cairo.SetLogger(logger)

	profConfig := profiling.Config{
		CPUProfilePath: opts.cpuProfile,
		MemProfilePath: opts.memProfile,
	}
	if profConfig.Enabled() {
		profiler := profiling.New(profConfig)
		if err := profiler.Start(); err != nil {
			fmt.Fprintf(stderr, "Failed to start profiling: %v\n", err)
			return 1
		}
		defer func() {
			if err := profiler.Stop(); err != nil {
				fmt.Fprintf(stderr, "Warning: failed to stop profiling: %v\n", err)
			}
		}()
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	jobOpts := []render.Option{
		render.WithLogger(logger),
		render.WithStdout(stdout),
	}

	var preview *render.Preview
	if opts.preview {
		preview = render.NewPreview("cairo-lua: "+filepath.Base(cfg.Script), cfg.Width, cfg.Height)
		jobOpts = append(jobOpts, render.WithFrameHandler(preview.SetFrame))
	}

	job, err := render.NewJob(cfg, jobOpts...)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	switch {
	case preview != nil:
		return runPreview(ctx, job, preview, opts.watch, logger, stdout, stderr)
	case opts.watch:
		return runWatch(ctx, job, logger, stdout, stderr)
	default:
		res, err := job.Run(ctx)
		return report(res, err, stdout, stderr)
	}
}

// report prints the outcome of one render and returns the exit code.
func report(res *render.Result, err error, stdout, stderr io.Writer) int {
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	noun := "frame"
	if res.Frames != 1 {
		noun = "frames"
	}
	fmt.Fprintf(stdout, "wrote %s (%s, %d %s, %s)\n", res.Output, res.Format, res.Frames, noun, res.Duration.Round(time.Millisecond))
	return 0
}

// runWatch renders until interrupted. Failed renders are reported but do
// not end the session.
func runWatch(ctx context.Context, job *render.Job, logger cairo.Logger, stdout, stderr io.Writer) int {
	tracker := profiling.NewTracker(profiling.DefaultTrackerConfig())
	tracker.OnLeak(func(g profiling.Growth) {
		logger.Warn("resource growth across renders", "analysis", g.String())
	})

	fmt.Fprintf(stdout, "watching %s (Ctrl-C to stop)\n", job.Config().Script)
	err := job.Watch(ctx, func(res *render.Result, err error) {
		report(res, err, stdout, stderr)
		logger.Debug("after render", "sample", tracker.Record().String())
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// runPreview keeps the window on the main goroutine and renders beside
// it. Closing the window ends the renders and the other way round.
func runPreview(ctx context.Context, job *render.Job, preview *render.Preview, watch bool, logger cairo.Logger, stdout, stderr io.Writer) int {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	code := make(chan int, 1)
	go func() {
		if watch {
			code <- runWatch(ctx, job, logger, stdout, stderr)
			return
		}
		res, err := job.Run(ctx)
		code <- report(res, err, stdout, stderr)
	}()

	if err := preview.Run(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: preview: %v\n", err)
		cancel()
		<-code
		return 1
	}
	cancel()
	return <-code
}
