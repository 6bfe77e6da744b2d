package native

import (
	"fmt"
	"sync"
)

// The foreign-function layer keeps a bounded table of callback
// trampolines that are never freed, so each named trampoline is created
// once per process and reused.
var (
	callbackMu sync.Mutex
	callbacks  = make(map[string]uintptr)
)

// Callback returns the C function pointer for the Go function fn,
// creating it on first use under name. Later calls with the same name
// return the original pointer and ignore fn.
func Callback(name string, fn any) (uintptr, error) {
	callbackMu.Lock()
	defer callbackMu.Unlock()

	if ptr, ok := callbacks[name]; ok {
		return ptr, nil
	}
	if !Supported {
		return 0, ErrUnsupportedPlatform
	}

	ptr, err := makeCallback(fn)
	if err != nil {
		return 0, fmt.Errorf("callback %s: %w", name, err)
	}
	callbacks[name] = ptr
	return ptr, nil
}

func makeCallback(fn any) (ptr uintptr, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return newCallback(fn), nil
}
