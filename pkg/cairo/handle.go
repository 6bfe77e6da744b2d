package cairo

import (
	"runtime"
	"sync/atomic"
)

// nativeRef is the part of a proxy the garbage-collection cleanup can see.
// It must not point back at the proxy, or the proxy would never become
// unreachable.
type nativeRef struct {
	ptr     uintptr
	owned   bool
	kind    string
	release func(uintptr)
}

// object is embedded by every handle-owning proxy. A proxy that owns its
// handle holds exactly one native reference, dropped by Destroy or, if
// Destroy is never called, by a cleanup once the proxy is unreachable.
type object struct {
	ref     *nativeRef
	cleanup runtime.Cleanup
}

var liveHandles atomic.Int64

// LiveHandles returns the number of owned native handles not yet released.
func LiveHandles() int64 {
	return liveHandles.Load()
}

// track attaches ptr to owner. When owned is false the proxy only borrows
// ptr and never releases it.
func track[T any](owner *T, o *object, kind string, ptr uintptr, owned bool, release func(uintptr)) {
	o.ref = &nativeRef{ptr: ptr, owned: owned, kind: kind, release: release}
	if owned {
		liveHandles.Add(1)
		o.cleanup = runtime.AddCleanup(owner, releaseCollected, o.ref)
	}
}

func releaseCollected(ref *nativeRef) {
	if ref.ptr == 0 || !ref.owned {
		return
	}
	logger().Debug("cairo object released by garbage collector", "kind", ref.kind)
	ref.release(ref.ptr)
	ref.ptr = 0
	liveHandles.Add(-1)
}

// raw returns the native pointer, panicking with ErrDestroyed after
// Destroy.
func (o *object) raw() uintptr {
	if o == nil || o.ref == nil || o.ref.ptr == 0 {
		panic(ErrDestroyed)
	}
	return o.ref.ptr
}

// Handle returns the native pointer, or 0 after Destroy.
func (o *object) Handle() uintptr {
	if o == nil || o.ref == nil {
		return 0
	}
	return o.ref.ptr
}

// Destroyed reports whether the proxy has been destroyed.
func (o *object) Destroyed() bool {
	return o.Handle() == 0
}

// Owned reports whether the proxy will release its handle.
func (o *object) Owned() bool {
	return o != nil && o.ref != nil && o.ref.ptr != 0 && o.ref.owned
}

// Destroy drops the proxy's reference. It is safe to call more than once.
func (o *object) Destroy() {
	if o == nil || o.ref == nil || o.ref.ptr == 0 {
		return
	}
	ptr := o.ref.ptr
	o.ref.ptr = 0
	if o.ref.owned {
		o.cleanup.Stop()
		o.ref.release(ptr)
		liveHandles.Add(-1)
	}
}

// Disown returns the handle and gives up responsibility for releasing
// it; the caller now owns the native reference. The proxy is unusable
// afterwards.
func (o *object) Disown() uintptr {
	if o == nil || o.ref == nil || o.ref.ptr == 0 {
		return 0
	}
	ptr := o.ref.ptr
	o.ref.ptr = 0
	if o.ref.owned {
		o.cleanup.Stop()
		liveHandles.Add(-1)
	}
	return ptr
}
