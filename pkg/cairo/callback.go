package cairo

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/opd-ai/go-cairo/internal/native"
)

// closures holds the Go values native callbacks refer to. The native side
// only ever sees registry ids.
var closures = native.NewRegistry()

// writeStream adapts an io.Writer to cairo_write_func_t.
type writeStream struct {
	w   io.Writer
	mu  sync.Mutex
	err error
}

func (ws *writeStream) setErr(err error) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	if ws.err == nil {
		ws.err = err
	}
}

// Err returns the first error the writer reported.
func (ws *writeStream) Err() error {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return ws.err
}

// readStream adapts an io.Reader to cairo_read_func_t.
type readStream struct {
	r   io.Reader
	err error
}

// dispatchWrite handles one chunk written by the native library.
func dispatchWrite(closure uintptr, data []byte) (status Status) {
	v, ok := closures.Get(closure)
	if !ok {
		return StatusWriteError
	}
	ws, ok := v.(*writeStream)
	if !ok {
		return StatusWriteError
	}
	defer func() {
		if r := recover(); r != nil {
			ws.setErr(fmt.Errorf("cairo: write callback panicked: %v", r))
			status = StatusWriteError
		}
	}()
	if ws.Err() != nil {
		return StatusWriteError
	}
	n, err := ws.w.Write(data)
	if err == nil && n < len(data) {
		err = io.ErrShortWrite
	}
	if err != nil {
		ws.setErr(err)
		return StatusWriteError
	}
	return StatusSuccess
}

// dispatchRead fills data completely or reports StatusReadError.
func dispatchRead(closure uintptr, data []byte) (status Status) {
	v, ok := closures.Get(closure)
	if !ok {
		return StatusReadError
	}
	rs, ok := v.(*readStream)
	if !ok {
		return StatusReadError
	}
	defer func() {
		if r := recover(); r != nil {
			rs.err = fmt.Errorf("cairo: read callback panicked: %v", r)
			status = StatusReadError
		}
	}()
	if _, err := io.ReadFull(rs.r, data); err != nil {
		rs.err = err
		return StatusReadError
	}
	return StatusSuccess
}

// dispatchDestroy releases a closure when the native object holding it
// goes away.
func dispatchDestroy(closure uintptr) {
	if v, ok := closures.Get(closure); ok {
		if ud, ok := v.(*userDataEntry); ok && ud.onDestroy != nil {
			func() {
				defer func() {
					if r := recover(); r != nil {
						logger().Warn("cairo user data destroy callback panicked", "panic", r)
					}
				}()
				ud.onDestroy(ud.value)
			}()
		}
	}
	closures.Release(closure)
}

func writeTrampoline(closure, data, length uintptr) uintptr {
	return uintptr(dispatchWrite(closure, native.Bytes(data, int(uint32(length)))))
}

func readTrampoline(closure, data, length uintptr) uintptr {
	return uintptr(dispatchRead(closure, native.Bytes(data, int(uint32(length)))))
}

func destroyTrampoline(closure uintptr) {
	dispatchDestroy(closure)
}

func writeFuncPtr() (uintptr, error) {
	ptr, err := native.Callback("cairo_write_func_t", writeTrampoline)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUnsupported, err)
	}
	return ptr, nil
}

func readFuncPtr() (uintptr, error) {
	ptr, err := native.Callback("cairo_read_func_t", readTrampoline)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUnsupported, err)
	}
	return ptr, nil
}

func destroyFuncPtr() (uintptr, error) {
	ptr, err := native.Callback("cairo_destroy_func_t", destroyTrampoline)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUnsupported, err)
	}
	return ptr, nil
}

// streamError picks the most useful error after a streaming call: the
// Go-side error if the callback saw one, else the native status.
func streamError(op string, status Status, goErr error) error {
	if status == StatusSuccess {
		return nil
	}
	if goErr != nil {
		return fmt.Errorf("cairo: %s: %w", op, goErr)
	}
	return status.errorFor(op)
}

// UserDataKey identifies a user data slot on a native object. The native
// library compares keys by address and never dereferences them, so a key
// is a process-unique non-zero integer.
type UserDataKey uintptr

var userDataKeys atomic.Uintptr

// NewUserDataKey allocates a fresh key.
func NewUserDataKey() UserDataKey {
	return UserDataKey(userDataKeys.Add(1))
}

// streamKey holds the closure id of a stream surface's writer.
var streamKey = NewUserDataKey()

type userDataEntry struct {
	value     any
	onDestroy func(any)
}
