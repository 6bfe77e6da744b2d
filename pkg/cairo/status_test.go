package cairo

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestStatusErr(t *testing.T) {
	if err := StatusSuccess.Err(); err != nil {
		t.Fatalf("StatusSuccess.Err() = %v, want nil", err)
	}

	err := StatusNoMemory.errorFor("image_surface_create")
	if err == nil {
		t.Fatal("expected error for StatusNoMemory")
	}
	if !errors.Is(err, StatusNoMemory.Err()) {
		t.Error("errors.Is(err, StatusNoMemory.Err()) = false")
	}
	if errors.Is(err, StatusInvalidMatrix.Err()) {
		t.Error("errors.Is(err, StatusInvalidMatrix.Err()) = true")
	}
	if !strings.HasPrefix(err.Error(), "cairo: image_surface_create: ") {
		t.Errorf("unexpected message %q", err.Error())
	}

	var ce *Error
	if !errors.As(err, &ce) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if ce.Op != "image_surface_create" || ce.Status != StatusNoMemory {
		t.Errorf("Error = %+v", ce)
	}
}

func TestErrorIsError(t *testing.T) {
	a := StatusWriteError.errorFor("a")
	b := StatusWriteError.errorFor("b")
	if !errors.Is(a, b) {
		t.Error("errors with the same status should match")
	}
	if errors.Is(a, StatusReadError.errorFor("a")) {
		t.Error("errors with different statuses should not match")
	}
}

func TestStatusStrings(t *testing.T) {
	if got := StatusInvalidDash.String(); got != "INVALID_DASH" {
		t.Errorf("String() = %q", got)
	}
	if got := Status(1000).String(); got != "status(1000)" {
		t.Errorf("String() = %q", got)
	}
	if got := fmt.Sprintf("%v", StatusNoMemory); got != "NO_MEMORY" {
		t.Errorf("%%v = %q, want the enum name", got)
	}
	if StatusSuccess.Message() == "" {
		t.Error("Message() is empty")
	}
}
