// Package native loads shared libraries at runtime and binds their C
// symbols to Go function variables. It is the only place in the module
// that talks to the foreign-function layer directly; higher-level packages
// declare function descriptors and let this package resolve them.
package native

import (
	"errors"
	"fmt"
	"os"
	"sync"
)

var (
	// ErrLibraryNotFound is returned when none of the candidate library
	// names could be opened.
	ErrLibraryNotFound = errors.New("native library not found")

	// ErrUnsupportedPlatform is returned on platforms without a dynamic
	// loader or callback support.
	ErrUnsupportedPlatform = errors.New("dynamic loading is not supported on this platform")

	// ErrClosed is returned when a closed Library is used.
	ErrClosed = errors.New("library is closed")
)

// SymbolError reports a symbol that could not be resolved or bound.
type SymbolError struct {
	Library string
	Symbol  string
	Err     error
}

// Error implements the error interface.
func (e *SymbolError) Error() string {
	return fmt.Sprintf("%s: symbol %s: %v", e.Library, e.Symbol, e.Err)
}

// Unwrap returns the underlying error.
func (e *SymbolError) Unwrap() error {
	return e.Err
}

// Library is an opened shared library.
type Library struct {
	handle uintptr
	path   string
	mu     sync.RWMutex
	closed bool
}

// Open tries each name in order and returns the first library that loads.
// An empty name is skipped so callers can pass optional overrides as-is.
func Open(names ...string) (*Library, error) {
	var errs []error
	for _, name := range names {
		if name == "" {
			continue
		}
		h, err := openLibrary(name)
		if err == nil {
			return &Library{handle: h, path: name}, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", name, err))
	}
	if len(errs) == 0 {
		return nil, fmt.Errorf("%w: no candidate names", ErrLibraryNotFound)
	}
	return nil, fmt.Errorf("%w: %w", ErrLibraryNotFound, errors.Join(errs...))
}

// Candidates returns the list of names Open should try: the value of the
// environment variable env (if set) followed by defaults.
func Candidates(env string, defaults ...string) []string {
	names := make([]string, 0, len(defaults)+1)
	if v := os.Getenv(env); v != "" {
		names = append(names, v)
	}
	return append(names, defaults...)
}

// Path returns the name the library was opened with.
func (l *Library) Path() string {
	return l.path
}

// Lookup returns the address of the named symbol.
func (l *Library) Lookup(name string) (uintptr, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.closed {
		return 0, &SymbolError{Library: l.path, Symbol: name, Err: ErrClosed}
	}
	addr, err := lookupSymbol(l.handle, name)
	if err != nil {
		return 0, &SymbolError{Library: l.path, Symbol: name, Err: err}
	}
	if addr == 0 {
		return 0, &SymbolError{Library: l.path, Symbol: name, Err: errors.New("resolved to NULL")}
	}
	return addr, nil
}

// Has reports whether the library exports the named symbol.
func (l *Library) Has(name string) bool {
	_, err := l.Lookup(name)
	return err == nil
}

// Bind resolves name and stores a Go function calling it into fptr, which
// must be a pointer to a func variable whose signature matches the C
// prototype.
func (l *Library) Bind(fptr any, name string) (err error) {
	addr, err := l.Lookup(name)
	if err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			err = &SymbolError{Library: l.path, Symbol: name, Err: fmt.Errorf("bad descriptor: %v", r)}
		}
	}()
	registerFunc(fptr, addr)
	return nil
}

// Close unloads the library. Functions bound from it must not be called
// afterwards.
func (l *Library) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true
	return closeLibrary(l.handle)
}
