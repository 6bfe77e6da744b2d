//go:build darwin || freebsd || windows || (linux && (amd64 || arm64))

package native

import "github.com/ebitengine/purego"

// Supported reports whether this build can load libraries and create
// callbacks.
const Supported = true

func registerFunc(fptr any, addr uintptr) {
	purego.RegisterFunc(fptr, addr)
}

func newCallback(fn any) uintptr {
	return purego.NewCallback(fn)
}
