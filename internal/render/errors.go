package render

import (
	"errors"
	"fmt"
)

// ErrCanceled is returned when the job's context ends between frames.
var ErrCanceled = errors.New("render canceled")

// Stage identifies the part of a job that failed.
type Stage int

const (
	// StageUnknown is the default stage for uncategorized errors.
	StageUnknown Stage = iota
	// StageConfig is for job validation errors.
	StageConfig
	// StageScript is for Lua loading and hook execution errors.
	StageScript
	// StageSurface is for native library and surface errors.
	StageSurface
	// StageOutput is for errors writing the result file.
	StageOutput
)

// String returns a human-readable name for the stage.
func (s Stage) String() string {
	switch s {
	case StageConfig:
		return "config"
	case StageScript:
		return "script"
	case StageSurface:
		return "surface"
	case StageOutput:
		return "output"
	default:
		return "unknown"
	}
}

// JobError wraps an error with the stage it came from.
type JobError struct {
	// Stage classifies the failure.
	Stage Stage
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *JobError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("[%s] (no error)", e.Stage)
	}
	return fmt.Sprintf("[%s] %s", e.Stage, e.Err.Error())
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *JobError) Unwrap() error {
	return e.Err
}

// stageError wraps err in a JobError. A nil err stays nil.
func stageError(stage Stage, err error) error {
	if err == nil {
		return nil
	}
	var je *JobError
	if errors.As(err, &je) {
		return err
	}
	return &JobError{Stage: stage, Err: err}
}

// StageOf returns the stage recorded in err, or StageUnknown.
func StageOf(err error) Stage {
	var je *JobError
	if errors.As(err, &je) {
		return je.Stage
	}
	return StageUnknown
}
