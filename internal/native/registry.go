package native

import "sync"

// Registry maps small integer ids to Go values so that the id, not a Go
// pointer, travels through native void* closure parameters. Id 0 is never
// issued and ids are not reused within a process.
type Registry struct {
	mu      sync.RWMutex
	next    uintptr
	entries map[uintptr]any
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[uintptr]any)}
}

// Register stores v and returns its id.
func (r *Registry) Register(v any) uintptr {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.next++
	r.entries[r.next] = v
	return r.next
}

// Get returns the value stored under id.
func (r *Registry) Get(id uintptr) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.entries[id]
	return v, ok
}

// Release removes id. It reports whether the id was live.
func (r *Registry) Release(id uintptr) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[id]; !ok {
		return false
	}
	delete(r.entries, id)
	return true
}

// Len returns the number of live entries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
