package native

import "unsafe"

// GoString copies the NUL-terminated C string at ptr.
func GoString(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	p := unsafe.Pointer(ptr)
	n := 0
	for *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(p), n))
}

// Bytes returns a view of n bytes of native memory at ptr. The slice
// aliases native memory and is only valid while the owner keeps it alive.
func Bytes(ptr uintptr, n int) []byte {
	if ptr == 0 || n <= 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(ptr)), n)
}

// Read copies a T out of native memory at ptr+offset.
func Read[T any](ptr uintptr, offset uintptr) T {
	return *(*T)(unsafe.Pointer(ptr + offset))
}
