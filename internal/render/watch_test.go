package render

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestFileWatcherDetectsChange(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	dir := t.TempDir()
	path := filepath.Join(dir, "draw.lua")
	if err := os.WriteFile(path, []byte("initial"), 0o644); err != nil {
		t.Fatal(err)
	}

	var changes atomic.Int32
	fw, err := newFileWatcher([]string{path}, 50*time.Millisecond, func() { changes.Add(1) }, nil)
	if err != nil {
		t.Fatalf("newFileWatcher failed: %v", err)
	}
	fw.Start()
	defer fw.Stop()

	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(path, []byte("modified"), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(250 * time.Millisecond)

	if n := changes.Load(); n != 1 {
		t.Errorf("expected 1 change, got %d", n)
	}
}

func TestFileWatcherDebounce(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	dir := t.TempDir()
	path := filepath.Join(dir, "draw.lua")
	if err := os.WriteFile(path, []byte("initial"), 0o644); err != nil {
		t.Fatal(err)
	}

	var changes atomic.Int32
	fw, err := newFileWatcher([]string{path}, 100*time.Millisecond, func() { changes.Add(1) }, nil)
	if err != nil {
		t.Fatal(err)
	}
	fw.Start()
	defer fw.Stop()

	time.Sleep(50 * time.Millisecond)
	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte{byte('0' + i)}, 0o644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(20 * time.Millisecond)
	}
	time.Sleep(250 * time.Millisecond)

	if n := changes.Load(); n != 1 {
		t.Errorf("expected 1 debounced change, got %d", n)
	}
}

func TestFileWatcherIgnoresOtherFiles(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	dir := t.TempDir()
	path := filepath.Join(dir, "draw.lua")
	if err := os.WriteFile(path, []byte("initial"), 0o644); err != nil {
		t.Fatal(err)
	}

	var changes atomic.Int32
	fw, err := newFileWatcher([]string{path}, 20*time.Millisecond, func() { changes.Add(1) }, nil)
	if err != nil {
		t.Fatal(err)
	}
	fw.Start()
	defer fw.Stop()

	time.Sleep(50 * time.Millisecond)
	// Rendering writes its output next to the script.
	if err := os.WriteFile(filepath.Join(dir, "draw.png"), []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(150 * time.Millisecond)

	if n := changes.Load(); n != 0 {
		t.Errorf("expected no changes, got %d", n)
	}
}

func TestFileWatcherMultipleFiles(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	dirA, dirB := t.TempDir(), t.TempDir()
	a := filepath.Join(dirA, "draw.lua")
	b := filepath.Join(dirB, "lib.lua")
	for _, p := range []string{a, b} {
		if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	var changes atomic.Int32
	fw, err := newFileWatcher([]string{a, b, a}, 30*time.Millisecond, func() { changes.Add(1) }, nil)
	if err != nil {
		t.Fatal(err)
	}
	fw.Start()
	defer fw.Stop()

	time.Sleep(50 * time.Millisecond)
	if err := os.WriteFile(b, []byte("y"), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(200 * time.Millisecond)

	if n := changes.Load(); n != 1 {
		t.Errorf("expected 1 change from the second file, got %d", n)
	}
}

func TestFileWatcherStop(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	path := filepath.Join(t.TempDir(), "draw.lua")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	// Never started.
	fw, err := newFileWatcher([]string{path}, 0, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	fw.Stop()
	fw.Stop()
	fw.Start()

	fw, err = newFileWatcher([]string{path}, 0, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if fw.debounce <= 0 {
		t.Errorf("expected the default debounce, got %v", fw.debounce)
	}
	fw.Start()
	fw.Start()
	fw.Stop()
	fw.Stop()
}

func TestNewFileWatcherErrors(t *testing.T) {
	if _, err := newFileWatcher(nil, time.Second, nil, nil); err == nil {
		t.Error("expected an error with no files")
	}
	missing := filepath.Join(t.TempDir(), "no", "such", "dir", "draw.lua")
	if _, err := newFileWatcher([]string{missing}, time.Second, nil, nil); err == nil {
		t.Error("expected an error for a missing directory")
	}
}

func TestJobWatch(t *testing.T) {
	requireCairo(t)
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	cfg := testConfig(t, halfRed, "out.png")
	cfg.Watch.Debounce = 30 * time.Millisecond
	job, err := NewJob(cfg)
	if err != nil {
		t.Fatal(err)
	}

	type outcome struct {
		res *Result
		err error
	}
	results := make(chan outcome, 8)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- job.Watch(ctx, func(res *Result, err error) {
			results <- outcome{res, err}
		})
	}()

	next := func() outcome {
		t.Helper()
		select {
		case o := <-results:
			return o
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for a render")
			return outcome{}
		}
	}

	if o := next(); o.err != nil {
		t.Fatalf("initial render failed: %v", o.err)
	}

	// A broken script is reported but does not stop watching.
	if err := os.WriteFile(cfg.Script, []byte("function draw("), 0o644); err != nil {
		t.Fatal(err)
	}
	if o := next(); o.err == nil || StageOf(o.err) != StageScript {
		t.Errorf("expected a script error, got %v", o.err)
	}

	if err := os.WriteFile(cfg.Script, []byte(halfRed), 0o644); err != nil {
		t.Fatal(err)
	}
	if o := next(); o.err != nil || o.res == nil {
		t.Errorf("expected a successful re-render, got %v", o.err)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestJobWatchMissingDirectory(t *testing.T) {
	cfg := testConfig(t, halfRed, "out.png")
	cfg.Script = filepath.Join(t.TempDir(), "gone", "draw.lua")
	job, err := NewJob(cfg)
	if err != nil {
		t.Fatal(err)
	}
	err = job.Watch(context.Background(), nil)
	if StageOf(err) != StageConfig {
		t.Errorf("expected config stage, got %v", err)
	}
}
