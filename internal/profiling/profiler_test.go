package profiling

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestConfigEnabled(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		want   bool
	}{
		{"none", Config{}, false},
		{"cpu", Config{CPUProfilePath: "cpu.prof"}, true},
		{"mem", Config{MemProfilePath: "mem.prof"}, true},
		{"both", Config{CPUProfilePath: "cpu.prof", MemProfilePath: "mem.prof"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.config.Enabled(); got != tt.want {
				t.Errorf("Enabled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProfilerStartStop(t *testing.T) {
	dir := t.TempDir()
	cpuPath := filepath.Join(dir, "cpu.prof")
	memPath := filepath.Join(dir, "mem.prof")

	p := New(Config{CPUProfilePath: cpuPath, MemProfilePath: memPath})
	if p.IsRunning() {
		t.Error("new profiler should not be running")
	}

	if err := p.Start(); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	if !p.IsRunning() {
		t.Error("IsRunning() should be true after Start()")
	}
	if err := p.Start(); err == nil {
		t.Error("Start() should fail when already running")
	}

	if err := p.Stop(); err != nil {
		t.Fatalf("Stop() failed: %v", err)
	}
	if p.IsRunning() {
		t.Error("IsRunning() should be false after Stop()")
	}

	for _, path := range []string{cpuPath, memPath} {
		info, err := os.Stat(path)
		if err != nil {
			t.Errorf("profile %s not written: %v", path, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("profile %s is empty", path)
		}
	}
}

func TestProfilerStopWithoutStart(t *testing.T) {
	if err := New(Config{}).Stop(); err == nil {
		t.Error("Stop() should fail when not running")
	}
}

func TestProfilerNothingConfigured(t *testing.T) {
	p := New(Config{})
	if err := p.Start(); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	if err := p.Stop(); err != nil {
		t.Errorf("Stop() failed: %v", err)
	}
}

func TestProfilerInvalidPaths(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no", "such", "dir")

	p := New(Config{CPUProfilePath: filepath.Join(missing, "cpu.prof")})
	if err := p.Start(); err == nil {
		t.Error("Start() should fail for an unwritable CPU profile")
	}
	if p.IsRunning() {
		t.Error("a failed Start() must leave the profiler stopped")
	}

	p = New(Config{MemProfilePath: filepath.Join(missing, "mem.prof")})
	if err := p.Start(); err != nil {
		t.Fatal(err)
	}
	if err := p.Stop(); err == nil {
		t.Error("Stop() should report the heap profile failure")
	}
	if p.IsRunning() {
		t.Error("Stop() must stop the profiler even when writing fails")
	}
}

func TestWriteHeapProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heap.prof")
	if err := WriteHeapProfile(path); err != nil {
		t.Fatalf("WriteHeapProfile() failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("heap profile not written: %v", err)
	}
}

func TestProfilerConcurrency(t *testing.T) {
	p := New(Config{})
	if err := p.Start(); err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = p.IsRunning()
			}
		}()
	}
	wg.Wait()

	if err := p.Stop(); err != nil {
		t.Errorf("Stop() failed: %v", err)
	}
}
