package config

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/arnodel/golua/lib"
	rt "github.com/arnodel/golua/runtime"
)

// LuaConfigParser reads jobs written in Lua. The file fills in the global
// job table, either field by field or by replacing it:
//
//	job = {
//	    script = "clock.lua",
//	    output = "clock.pdf",
//	    width = 400, height = 400,
//	    watch = { debounce = "250ms" },
//	}
type LuaConfigParser struct {
	runtime *rt.Runtime
	cleanup func()
	mu      sync.Mutex
}

// NewLuaConfigParser creates a new LuaConfigParser with a fresh Lua runtime.
func NewLuaConfigParser() (*LuaConfigParser, error) {
	return NewLuaConfigParserWithOutput(io.Discard)
}

// NewLuaConfigParserWithOutput creates a LuaConfigParser with custom output.
func NewLuaConfigParserWithOutput(stdout io.Writer) (*LuaConfigParser, error) {
	if stdout == nil {
		stdout = os.Stdout
	}

	runtime := rt.New(stdout)
	cleanup := lib.LoadAll(runtime)

	return &LuaConfigParser{
		runtime: runtime,
		cleanup: cleanup,
	}, nil
}

// Parse runs content and reads the resulting job table. Fields the file
// leaves out keep their defaults.
func (p *LuaConfigParser) Parse(content []byte) (cfg *Config, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.runtime.GlobalEnv().Set(rt.StringValue("job"), rt.TableValue(rt.NewTable()))

	closure, err := p.runtime.CompileAndLoadLuaChunk(
		"job",
		content,
		rt.TableValue(p.runtime.GlobalEnv()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile Lua configuration: %w", err)
	}

	ctx := rt.RuntimeContextDef{
		HardLimits: rt.RuntimeResources{
			Cpu:    10_000_000,
			Memory: 50 * 1024 * 1024, // 50 MB
		},
	}
	p.runtime.PushContext(ctx)
	defer p.runtime.PopContext()
	defer func() {
		if r := recover(); r != nil {
			cfg, err = nil, fmt.Errorf("Lua configuration aborted: %v", r)
		}
	}()

	if _, err := rt.Call1(p.runtime.MainThread(), rt.FunctionValue(closure)); err != nil {
		return nil, fmt.Errorf("failed to execute Lua configuration: %w", err)
	}

	return p.extractConfig()
}

// extractConfig extracts configuration values from the job global.
func (p *LuaConfigParser) extractConfig() (*Config, error) {
	cfg := DefaultConfig()

	jobVal := p.runtime.GlobalEnv().Get(rt.StringValue("job"))
	if jobVal == rt.NilValue {
		return &cfg, nil
	}
	table, ok := jobVal.TryTable()
	if !ok {
		return nil, fmt.Errorf("job is not a table")
	}

	if val := getTableString(table, "script"); val != nil {
		cfg.Script = *val
	}
	if val := getTableString(table, "output"); val != nil {
		cfg.Output = *val
	}
	if val := getTableString(table, "background"); val != nil {
		cfg.Background = *val
	}
	if val := getTableString(table, "format"); val != nil {
		f, err := ParseFormat(*val)
		if err != nil {
			return nil, fmt.Errorf("invalid format: %w", err)
		}
		cfg.Format = f
	}
	if val := getTableInt(table, "width"); val != nil {
		cfg.Width = *val
	}
	if val := getTableInt(table, "height"); val != nil {
		cfg.Height = *val
	}
	if val := getTableInt(table, "frames"); val != nil {
		cfg.Frames = *val
	}

	if sub := getTableTable(table, "lua"); sub != nil {
		if val := getTableInt(sub, "cpu_limit"); val != nil {
			if *val < 0 {
				return nil, fmt.Errorf("lua.cpu_limit must be non-negative, got %d", *val)
			}
			cfg.Lua.CPULimit = uint64(*val)
		}
		if val := getTableInt(sub, "memory_limit"); val != nil {
			if *val < 0 {
				return nil, fmt.Errorf("lua.memory_limit must be non-negative, got %d", *val)
			}
			cfg.Lua.MemoryLimit = uint64(*val)
		}
	}

	if sub := getTableTable(table, "watch"); sub != nil {
		d, err := getTableDuration(sub, "debounce")
		if err != nil {
			return nil, fmt.Errorf("invalid watch.debounce: %w", err)
		}
		if d != nil {
			cfg.Watch.Debounce = *d
		}
	}

	if sub := getTableTable(table, "document"); sub != nil {
		if val := getTableString(sub, "title"); val != nil {
			cfg.Document.Title = *val
		}
		if val := getTableString(sub, "author"); val != nil {
			cfg.Document.Author = *val
		}
		if val := getTableString(sub, "subject"); val != nil {
			cfg.Document.Subject = *val
		}
	}

	return &cfg, nil
}

// Close releases resources associated with the parser's Lua runtime.
func (p *LuaConfigParser) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cleanup != nil {
		p.cleanup()
		p.cleanup = nil
	}
	return nil
}

// getTableTable retrieves a nested table. Returns nil if the key doesn't
// exist or is not a table.
func getTableTable(table *rt.Table, key string) *rt.Table {
	if t, ok := table.Get(rt.StringValue(key)).TryTable(); ok {
		return t
	}
	return nil
}

// getTableString retrieves a string value from a Lua table.
// Returns nil if the key doesn't exist or is not a string.
func getTableString(table *rt.Table, key string) *string {
	val := table.Get(rt.StringValue(key))
	if val == rt.NilValue {
		return nil
	}

	if s, ok := val.TryString(); ok {
		return &s
	}

	return nil
}

// getTableFloat retrieves a float64 value from a Lua table.
// Returns nil if the key doesn't exist or is not a number.
func getTableFloat(table *rt.Table, key string) *float64 {
	val := table.Get(rt.StringValue(key))
	if val == rt.NilValue {
		return nil
	}

	if n, ok := val.TryFloat(); ok {
		return &n
	}

	if n, ok := val.TryInt(); ok {
		f := float64(n)
		return &f
	}

	return nil
}

// getTableInt retrieves an int value from a Lua table.
// Returns nil if the key doesn't exist or is not a number.
func getTableInt(table *rt.Table, key string) *int {
	val := table.Get(rt.StringValue(key))
	if val == rt.NilValue {
		return nil
	}

	if n, ok := val.TryInt(); ok {
		i := int(n)
		return &i
	}

	// Try float conversion (truncate)
	if f, ok := val.TryFloat(); ok {
		i := int(f)
		return &i
	}

	return nil
}

// getTableDuration accepts a Go duration string ("250ms") or a number of
// seconds.
func getTableDuration(table *rt.Table, key string) (*time.Duration, error) {
	if s := getTableString(table, key); s != nil {
		d, err := time.ParseDuration(*s)
		if err != nil {
			return nil, err
		}
		return &d, nil
	}
	if f := getTableFloat(table, key); f != nil {
		d := time.Duration(*f * float64(time.Second))
		return &d, nil
	}
	return nil, nil
}
