package lua

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	rt "github.com/arnodel/golua/runtime"
)

func newTestRuntime(t *testing.T) *Runtime {
	t.Helper()
	config := DefaultConfig()
	config.Stdout = nil
	r, err := New(config)
	if err != nil {
		t.Fatalf("failed to create runtime: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.CPULimit != 50_000_000 {
		t.Errorf("expected CPULimit 50000000, got %d", config.CPULimit)
	}
	if config.MemoryLimit != 64*1024*1024 {
		t.Errorf("expected MemoryLimit %d, got %d", 64*1024*1024, config.MemoryLimit)
	}
	if config.Stdout != os.Stdout {
		t.Error("expected Stdout to be os.Stdout")
	}
}

func TestNewWithCustomStdout(t *testing.T) {
	buf := &bytes.Buffer{}
	r, err := New(RuntimeConfig{
		CPULimit:    1_000_000,
		MemoryLimit: 10 * 1024 * 1024,
		Stdout:      buf,
	})
	if err != nil {
		t.Fatalf("failed to create runtime: %v", err)
	}
	defer r.Close()

	if _, err := r.ExecuteString("test", `print("hello from lua")`); err != nil {
		t.Fatalf("failed to execute Lua code: %v", err)
	}
	if got := buf.String(); got != "hello from lua\n" {
		t.Errorf("expected 'hello from lua\\n', got %q", got)
	}
	if got := r.Output(); got != "hello from lua\n" {
		t.Errorf("expected captured output, got %q", got)
	}
}

func TestLoadString(t *testing.T) {
	r := newTestRuntime(t)

	tests := []struct {
		name    string
		code    string
		wantErr bool
	}{
		{"valid code", "return 42", false},
		{"valid function", "function test() return 1 end", false},
		{"syntax error", "invalid lua syntax {{}}", true},
		{"empty code", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			closure, err := r.LoadString(tt.name, tt.code)
			if (err != nil) != tt.wantErr {
				t.Errorf("LoadString() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && closure == nil {
				t.Error("expected closure to be non-nil")
			}
		})
	}
}

func TestExecuteString(t *testing.T) {
	r := newTestRuntime(t)

	tests := []struct {
		name       string
		code       string
		wantResult interface{}
		wantErr    bool
	}{
		{"return integer", "return 42", int64(42), false},
		{"return string", `return "hello"`, "hello", false},
		{"return calculation", "return 10 + 20 * 2", int64(50), false},
		{"return nil", "return nil", nil, false},
		{"syntax error", "return {{invalid", nil, true},
		{"runtime error", `error("boom")`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := r.ExecuteString(tt.name, tt.code)
			if (err != nil) != tt.wantErr {
				t.Errorf("ExecuteString() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}

			switch expected := tt.wantResult.(type) {
			case int64:
				got, ok := rt.ToInt(result)
				if !ok || got != expected {
					t.Errorf("expected %d, got %v", expected, result)
				}
			case string:
				if result.AsString() != expected {
					t.Errorf("expected %q, got %q", expected, result.AsString())
				}
			case nil:
				if result != rt.NilValue {
					t.Errorf("expected nil, got %v", result)
				}
			}
		})
	}
}

func TestCPULimit(t *testing.T) {
	r, err := New(RuntimeConfig{CPULimit: 10_000})
	if err != nil {
		t.Fatalf("failed to create runtime: %v", err)
	}
	defer r.Close()

	if _, err := r.ExecuteString("loop", "while true do end"); err == nil {
		t.Error("expected an infinite loop to exceed the CPU limit")
	}

	// The runtime stays usable.
	r2, err := New(RuntimeConfig{CPULimit: 10_000})
	if err != nil {
		t.Fatalf("failed to create runtime: %v", err)
	}
	defer r2.Close()
	if _, err := r2.ExecuteString("small", "return 1 + 1"); err != nil {
		t.Errorf("small chunk failed: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	r := newTestRuntime(t)

	luaFile := filepath.Join(t.TempDir(), "test.lua")
	if err := os.WriteFile(luaFile, []byte("return 123"), 0o644); err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}

	result, err := r.ExecuteFile(luaFile)
	if err != nil {
		t.Fatalf("ExecuteFile() error = %v", err)
	}
	if got, ok := rt.ToInt(result); !ok || got != 123 {
		t.Errorf("expected 123, got %v", result)
	}

	if _, err := r.LoadFile("/nonexistent/file.lua"); err == nil {
		t.Error("expected error for non-existent file")
	}
}

func TestLoadFileFromFS(t *testing.T) {
	r := newTestRuntime(t)
	r.SetFS(fstest.MapFS{
		"scripts/draw.lua": &fstest.MapFile{Data: []byte("return 7")},
	})

	result, err := r.ExecuteFile("scripts/draw.lua")
	if err != nil {
		t.Fatalf("ExecuteFile() error = %v", err)
	}
	if got, ok := rt.ToInt(result); !ok || got != 7 {
		t.Errorf("expected 7, got %v", result)
	}

	if _, err := r.LoadFile("scripts/missing.lua"); err == nil {
		t.Error("expected error for a file missing from the FS")
	}

	r.SetFS(nil)
	if _, err := r.LoadFile("scripts/draw.lua"); err == nil {
		t.Error("expected disk lookup after SetFS(nil)")
	}
}

func TestSetAndGetGlobal(t *testing.T) {
	r := newTestRuntime(t)

	r.SetGlobal("myVar", rt.IntValue(999))
	if got, ok := rt.ToInt(r.GetGlobal("myVar")); !ok || got != 999 {
		t.Errorf("expected 999, got %v", r.GetGlobal("myVar"))
	}
	if v := r.GetGlobal("nonexistent"); v != rt.NilValue {
		t.Errorf("expected nil for non-existent global, got %v", v)
	}
}

func TestHasFunction(t *testing.T) {
	r := newTestRuntime(t)
	if _, err := r.ExecuteString("defs", "function f() end; g = 1"); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		want bool
	}{
		{"f", true},
		{"g", false},
		{"missing", false},
	}
	for _, tt := range tests {
		if got := r.HasFunction(tt.name); got != tt.want {
			t.Errorf("HasFunction(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSetGoFunction(t *testing.T) {
	r := newTestRuntime(t)

	addFunc := func(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
		a, _ := c.IntArg(0)
		b, _ := c.IntArg(1)
		return c.PushingNext1(t.Runtime, rt.IntValue(a+b)), nil
	}
	r.SetGoFunction("add", addFunc, 2, false)

	result, err := r.ExecuteString("test", "return add(10, 20)")
	if err != nil {
		t.Fatalf("failed to execute Lua code: %v", err)
	}
	if got, ok := rt.ToInt(result); !ok || got != 30 {
		t.Errorf("expected 30, got %v", result)
	}
}

func TestPreload(t *testing.T) {
	r := newTestRuntime(t)

	module := rt.NewTable()
	module.Set(rt.StringValue("answer"), rt.IntValue(42))
	r.Preload("answers", module)

	result, err := r.ExecuteString("test", "return package.loaded.answers.answer")
	if err != nil {
		t.Fatalf("failed to read preloaded module: %v", err)
	}
	if got, ok := rt.ToInt(result); !ok || got != 42 {
		t.Errorf("expected 42, got %v", result)
	}
}

func TestRequireUnderLimits(t *testing.T) {
	r := newTestRuntime(t)

	module := rt.NewTable()
	module.Set(rt.StringValue("answer"), rt.IntValue(42))
	r.Preload("answers", module)

	tests := []struct {
		name string
		code string
		want string
	}{
		{"preloaded table", `return tostring(require('answers').answer)`, "42"},
		{"preload loader", `
			package.preload.greet = function(name) return {name = name} end
			local a, b = require 'greet', require 'greet'
			return a.name .. " " .. tostring(a == b)`, "greet true"},
		{"loader without result", `
			package.preload.empty = function() end
			return tostring(require 'empty') .. " " .. tostring(package.loaded.empty)`, "true true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := r.ExecuteString(tt.name, tt.code)
			if err != nil {
				t.Fatalf("require failed: %v", err)
			}
			if got, _ := result.TryString(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}

	_, err := r.ExecuteString("missing", `return require 'nowhere'`)
	if err == nil || !strings.Contains(err.Error(), "nowhere") {
		t.Errorf("expected a not found error, got %v", err)
	}
}

func TestCallFunction(t *testing.T) {
	r := newTestRuntime(t)

	_, err := r.ExecuteString("setup", `
		function multiply(a, b)
			return a * b
		end
	`)
	if err != nil {
		t.Fatalf("failed to define function: %v", err)
	}

	result, err := r.CallFunction("multiply", rt.IntValue(5), rt.IntValue(7))
	if err != nil {
		t.Fatalf("CallFunction() error = %v", err)
	}
	if got, ok := rt.ToInt(result); !ok || got != 35 {
		t.Errorf("expected 35, got %v", result)
	}

	if _, err := r.CallFunction("nonexistent"); err == nil {
		t.Error("expected error for non-existent function")
	}
}

func TestOutput(t *testing.T) {
	r := newTestRuntime(t)

	for _, code := range []string{`print("line1")`, `print("line2")`} {
		if _, err := r.ExecuteString("test", code); err != nil {
			t.Fatalf("failed to execute: %v", err)
		}
	}
	if output := r.Output(); output != "line1\nline2\n" {
		t.Errorf("expected 'line1\\nline2\\n', got %q", output)
	}

	r.ClearOutput()
	if output := r.Output(); output != "" {
		t.Errorf("expected empty output after clear, got %q", output)
	}
}

func TestConfig(t *testing.T) {
	config := RuntimeConfig{
		CPULimit:    5_000_000,
		MemoryLimit: 25 * 1024 * 1024,
	}

	r, err := New(config)
	if err != nil {
		t.Fatalf("failed to create runtime: %v", err)
	}
	defer r.Close()

	got := r.Config()
	if got.CPULimit != config.CPULimit {
		t.Errorf("expected CPULimit %d, got %d", config.CPULimit, got.CPULimit)
	}
	if got.MemoryLimit != config.MemoryLimit {
		t.Errorf("expected MemoryLimit %d, got %d", config.MemoryLimit, got.MemoryLimit)
	}
	if r.Lua() == nil {
		t.Error("expected the underlying runtime to be set")
	}
}

func TestClose(t *testing.T) {
	r, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("failed to create runtime: %v", err)
	}

	if err := r.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}
