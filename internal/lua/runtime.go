// Package lua runs drawing scripts under golua and exposes the cairo
// binding to them.
//
// Scripts see the binding twice: as cairo_* global functions with CAIRO_*
// global constants, and as a cairo module table (require 'cairo') whose
// members drop those prefixes. A script draws by defining a draw(cr,
// width, height) function; see HookManager.
package lua

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sync"

	"github.com/arnodel/golua/lib"
	rt "github.com/arnodel/golua/runtime"
)

// RuntimeConfig contains configuration options for the Lua runtime.
type RuntimeConfig struct {
	// CPULimit is the CPU instruction limit for a single Execute or
	// CallFunction. 0 means unlimited.
	CPULimit uint64
	// MemoryLimit is the maximum memory in bytes that Lua can allocate
	// during a single Execute or CallFunction. 0 means unlimited.
	MemoryLimit uint64
	// Stdout receives Lua print output in addition to the capture buffer.
	// If nil, output is only captured.
	Stdout io.Writer
}

// DefaultConfig returns a RuntimeConfig with sensible default values.
// CPU limit: 50,000,000 instructions
// Memory limit: 64 MB
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		CPULimit:    50_000_000,
		MemoryLimit: 64 * 1024 * 1024,
		Stdout:      os.Stdout,
	}
}

// Runtime wraps a golua runtime. All methods are safe for concurrent use;
// Lua execution itself is serialized.
type Runtime struct {
	config  RuntimeConfig
	runtime *rt.Runtime
	output  *bytes.Buffer
	cleanup func()
	fsys    fs.FS
	mu      sync.RWMutex
}

// New creates a Runtime with the Lua standard libraries loaded.
func New(config RuntimeConfig) (*Runtime, error) {
	output := &bytes.Buffer{}
	var stdout io.Writer = output
	if config.Stdout != nil {
		stdout = io.MultiWriter(config.Stdout, output)
	}

	runtime := rt.New(stdout)
	cleanup := lib.LoadAll(runtime)
	runtime.GlobalEnv().Set(rt.StringValue("require"), rt.FunctionValue(newGoFunction("require", requireModule, 1, false)))

	return &Runtime{
		config:  config,
		runtime: runtime,
		output:  output,
		cleanup: cleanup,
	}, nil
}

// SetFS makes LoadFile read scripts from fsys instead of the local disk.
// A nil fsys restores disk access.
func (r *Runtime) SetFS(fsys fs.FS) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fsys = fsys
}

// LoadString compiles a chunk of Lua code. The returned closure can be run
// with Execute.
func (r *Runtime) LoadString(name, code string) (*rt.Closure, error) {
	return r.load(name, []byte(code))
}

// LoadFile compiles the script at path, read from the filesystem set with
// SetFS or from disk.
func (r *Runtime) LoadFile(path string) (*rt.Closure, error) {
	r.mu.RLock()
	fsys := r.fsys
	r.mu.RUnlock()

	var (
		content []byte
		err     error
	)
	if fsys != nil {
		content, err = fs.ReadFile(fsys, path)
	} else {
		content, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read Lua file %s: %w", path, err)
	}
	return r.load(path, content)
}

func (r *Runtime) load(name string, code []byte) (*rt.Closure, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	closure, err := r.runtime.CompileAndLoadLuaChunk(
		name,
		code,
		rt.TableValue(r.runtime.GlobalEnv()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load Lua chunk %s: %w", name, err)
	}
	return closure, nil
}

// limits builds the resource context applied to each top-level call.
func (r *Runtime) limits() rt.RuntimeContextDef {
	return rt.RuntimeContextDef{
		HardLimits: rt.RuntimeResources{
			Cpu:    r.config.CPULimit,
			Memory: r.config.MemoryLimit,
		},
	}
}

// call runs fn under the configured limits. golua panics when a hard
// limit is hit; that comes back as ErrScriptAborted. r.mu must be held.
func (r *Runtime) call(fn rt.Value, args ...rt.Value) (result rt.Value, err error) {
	r.runtime.PushContext(r.limits())
	defer r.runtime.PopContext()
	defer func() {
		if p := recover(); p != nil {
			result, err = rt.NilValue, fmt.Errorf("%w: %v", ErrScriptAborted, p)
		}
	}()

	return rt.Call1(r.runtime.MainThread(), fn, args...)
}

// Execute runs a compiled closure within the resource limits and returns
// its first result.
func (r *Runtime) Execute(closure *rt.Closure) (rt.Value, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result, err := r.call(rt.FunctionValue(closure))
	if err != nil {
		return rt.NilValue, fmt.Errorf("Lua execution error: %w", err)
	}
	return result, nil
}

// ExecuteString compiles and runs a chunk of Lua code.
func (r *Runtime) ExecuteString(name, code string) (rt.Value, error) {
	closure, err := r.LoadString(name, code)
	if err != nil {
		return rt.NilValue, err
	}
	return r.Execute(closure)
}

// ExecuteFile compiles and runs a script file.
func (r *Runtime) ExecuteFile(path string) (rt.Value, error) {
	closure, err := r.LoadFile(path)
	if err != nil {
		return rt.NilValue, err
	}
	return r.Execute(closure)
}

// GetGlobal retrieves a global variable from the Lua environment.
func (r *Runtime) GetGlobal(name string) rt.Value {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.runtime.GlobalEnv().Get(rt.StringValue(name))
}

// SetGlobal sets a global variable in the Lua environment.
func (r *Runtime) SetGlobal(name string, value rt.Value) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.runtime.GlobalEnv().Set(rt.StringValue(name), value)
}

// HasFunction reports whether the global name holds a function.
func (r *Runtime) HasFunction(name string) bool {
	return r.GetGlobal(name).Type() == rt.FunctionType
}

// newGoFunction wraps fn as a Lua function value that may run under
// resource limits.
func newGoFunction(name string, fn rt.GoFunctionFunc, nArgs int, hasVarArgs bool) *rt.GoFunction {
	goFunc := rt.NewGoFunction(fn, name, nArgs, hasVarArgs)
	rt.SolemnlyDeclareCompliance(rt.ComplyMemSafe|rt.ComplyCpuSafe, goFunc)
	return goFunc
}

// SetGoFunction registers a Go function as a Lua global.
func (r *Runtime) SetGoFunction(name string, fn rt.GoFunctionFunc, nArgs int, hasVarArgs bool) {
	goFunc := newGoFunction(name, fn, nArgs, hasVarArgs)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.runtime.GlobalEnv().Set(rt.StringValue(name), rt.FunctionValue(goFunc))
}

// Preload makes require(name) return module without searching the
// filesystem.
func (r *Runtime) Preload(name string, module *rt.Table) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pkg, ok := r.runtime.GlobalEnv().Get(rt.StringValue("package")).TryTable()
	if !ok {
		return
	}
	if loaded, ok := pkg.Get(rt.StringValue("loaded")).TryTable(); ok {
		loaded.Set(rt.StringValue(name), rt.TableValue(module))
	}
}

// requireModule replaces the standard require, which cannot run under
// resource limits. Only modules in package.loaded or package.preload can
// be required; scripts never load code from disk this way.
func requireModule(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	if err := c.Check1Arg(); err != nil {
		return nil, err
	}
	name, err := c.StringArg(0)
	if err != nil {
		return nil, err
	}
	nameVal := c.Arg(0)

	pkg, ok := t.GlobalEnv().Get(rt.StringValue("package")).TryTable()
	if !ok {
		return nil, errors.New("package must be a table")
	}
	loaded, ok := pkg.Get(rt.StringValue("loaded")).TryTable()
	if !ok {
		return nil, errors.New("package.loaded must be a table")
	}
	if mod := loaded.Get(nameVal); !mod.IsNil() {
		return c.PushingNext1(t.Runtime, mod), nil
	}

	if preload, ok := pkg.Get(rt.StringValue("preload")).TryTable(); ok {
		if loader := preload.Get(nameVal); !loader.IsNil() {
			mod, err := rt.Call1(t, loader, nameVal, rt.StringValue(":preload:"))
			if err != nil {
				return nil, err
			}
			if mod.IsNil() {
				mod = rt.BoolValue(true)
			}
			loaded.Set(nameVal, mod)
			return c.PushingNext1(t.Runtime, mod), nil
		}
	}
	return nil, fmt.Errorf("module '%s' not found: only preloaded modules can be required", name)
}

// CallFunction calls the global Lua function name and returns its first
// result.
func (r *Runtime) CallFunction(name string, args ...rt.Value) (rt.Value, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fn := r.runtime.GlobalEnv().Get(rt.StringValue(name))
	if fn == rt.NilValue {
		return rt.NilValue, fmt.Errorf("function %s not found", name)
	}

	result, err := r.call(fn, args...)
	if err != nil {
		return rt.NilValue, fmt.Errorf("failed to call function %s: %w", name, err)
	}
	return result, nil
}

// Output returns everything Lua has printed since the last ClearOutput.
func (r *Runtime) Output() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.output.String()
}

// ClearOutput clears the captured output buffer.
func (r *Runtime) ClearOutput() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.output.Reset()
}

// Lua returns the underlying golua runtime.
// Use with caution as this bypasses thread-safety protections.
func (r *Runtime) Lua() *rt.Runtime {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.runtime
}

// Config returns the current runtime configuration.
func (r *Runtime) Config() RuntimeConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.config
}

// Close releases resources associated with the runtime.
// The runtime should not be used after calling Close.
func (r *Runtime) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cleanup != nil {
		r.cleanup()
		r.cleanup = nil
	}
	return nil
}
