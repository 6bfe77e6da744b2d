package lua

import (
	"fmt"
	"sync"

	rt "github.com/arnodel/golua/runtime"
)

// HookType identifies a script lifecycle function.
type HookType int

const (
	// HookInvalid represents an invalid or unknown hook type.
	// This is returned by ParseHookType when parsing fails.
	HookInvalid HookType = iota

	// HookSetup runs once after the script is loaded, before the first draw.
	HookSetup

	// HookDraw runs once per frame with (cr, width, height). Every script
	// must define it.
	HookDraw

	// HookTeardown runs once after the last draw.
	HookTeardown
)

// String returns the Lua function name of the hook.
func (h HookType) String() string {
	switch h {
	case HookSetup:
		return "setup"
	case HookDraw:
		return "draw"
	case HookTeardown:
		return "teardown"
	case HookInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Required reports whether a script must define the hook.
func (h HookType) Required() bool {
	return h == HookDraw
}

// ParseHookType parses a string into a HookType.
// Returns HookInvalid and an error if the string is not a valid hook type.
func ParseHookType(s string) (HookType, error) {
	switch s {
	case "setup":
		return HookSetup, nil
	case "draw":
		return HookDraw, nil
	case "teardown":
		return HookTeardown, nil
	default:
		return HookInvalid, fmt.Errorf("unknown hook type: %s", s)
	}
}

var allHooks = []HookType{HookSetup, HookDraw, HookTeardown}

// HookManager tracks which lifecycle functions a loaded script defines
// and calls them.
type HookManager struct {
	runtime *Runtime
	hooks   map[HookType]bool
	mu      sync.RWMutex
}

// NewHookManager creates a new HookManager for the given runtime.
func NewHookManager(runtime *Runtime) (*HookManager, error) {
	if runtime == nil {
		return nil, ErrNilRuntime
	}

	return &HookManager{
		runtime: runtime,
		hooks:   make(map[HookType]bool),
	}, nil
}

// Discover records the hooks the script defines. It fails with
// ErrMissingHook when a required hook is absent.
func (hm *HookManager) Discover() ([]HookType, error) {
	found := make([]HookType, 0, len(allHooks))
	for _, h := range allHooks {
		if hm.runtime.HasFunction(h.String()) {
			found = append(found, h)
		}
	}

	hm.mu.Lock()
	hm.hooks = make(map[HookType]bool, len(found))
	for _, h := range found {
		hm.hooks[h] = true
	}
	hm.mu.Unlock()

	for _, h := range allHooks {
		if h.Required() && !hm.IsRegistered(h) {
			return found, fmt.Errorf("%w: %s", ErrMissingHook, h)
		}
	}
	return found, nil
}

// IsRegistered returns true if the script defines the hook.
func (hm *HookManager) IsRegistered(hookType HookType) bool {
	hm.mu.RLock()
	defer hm.mu.RUnlock()

	return hm.hooks[hookType]
}

// Call invokes the hook. Calling an optional hook the script does not
// define is a no-op; calling an undefined required hook fails.
func (hm *HookManager) Call(hookType HookType, args ...rt.Value) (rt.Value, error) {
	if !hm.IsRegistered(hookType) {
		if hookType.Required() {
			return rt.NilValue, fmt.Errorf("%w: %s", ErrMissingHook, hookType)
		}
		return rt.NilValue, nil
	}

	result, err := hm.runtime.CallFunction(hookType.String(), args...)
	if err != nil {
		return rt.NilValue, fmt.Errorf("hook %s execution failed: %w", hookType, err)
	}
	return result, nil
}

// Clear forgets all discovered hooks.
func (hm *HookManager) Clear() {
	hm.mu.Lock()
	defer hm.mu.Unlock()

	hm.hooks = make(map[HookType]bool)
}
