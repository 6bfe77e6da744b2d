package lua

import "errors"

var (
	// ErrNilRuntime is returned when a nil runtime is passed to a function that requires one.
	ErrNilRuntime = errors.New("runtime cannot be nil")

	// ErrWrongType is returned when a Lua argument does not hold the expected userdata.
	ErrWrongType = errors.New("wrong argument type")

	// ErrDestroyedHandle is returned when a script uses an object after
	// destroying it.
	ErrDestroyedHandle = errors.New("object already destroyed")

	// ErrScriptAborted is returned when a script is stopped for exceeding
	// its CPU or memory limit.
	ErrScriptAborted = errors.New("script aborted")

	// ErrMissingHook is returned when a script does not define a required hook.
	ErrMissingHook = errors.New("required hook not defined")
)
