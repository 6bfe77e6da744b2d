//go:build !(darwin || freebsd || windows || (linux && (amd64 || arm64)))

package native

// Supported reports whether this build can load libraries and create
// callbacks.
const Supported = false

func registerFunc(fptr any, addr uintptr) {
	panic(ErrUnsupportedPlatform)
}

func newCallback(fn any) uintptr {
	return 0
}

func openLibrary(name string) (uintptr, error) {
	return 0, ErrUnsupportedPlatform
}

func lookupSymbol(handle uintptr, name string) (uintptr, error) {
	return 0, ErrUnsupportedPlatform
}

func closeLibrary(handle uintptr) error {
	return nil
}
