package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrCodeInvalidGrid, "grid %dx%d too small", 0, 4)
	want := "INVALID_GRID: grid 0x4 too small"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(ErrCodeStore, cause, "save solution %s", "abc")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error must match its cause with errors.Is")
	}
	if got := err.Error(); got != "STORE_ERROR: save solution abc: connection refused" {
		t.Errorf("Error() = %q", got)
	}
}

func TestIsMatchesCode(t *testing.T) {
	err := New(ErrCodeInvalidPoint, "start out of bounds")

	if !Is(err, ErrCodeInvalidPoint) {
		t.Error("Is must match the error's own code")
	}
	if Is(err, ErrCodeInternal) {
		t.Error("Is must not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeInternal) {
		t.Error("Is must not match non-structured errors")
	}

	// Match through wrapping layers.
	wrapped := fmt.Errorf("handler: %w", err)
	if !Is(wrapped, ErrCodeInvalidPoint) {
		t.Error("Is must unwrap to find the code")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeCache, "x")); got != ErrCodeCache {
		t.Errorf("GetCode = %q, want %q", got, ErrCodeCache)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidInput, "budget must be positive")); got != "budget must be positive" {
		t.Errorf("UserMessage = %q", got)
	}
	if got := UserMessage(stderrors.New("plain failure")); got != "plain failure" {
		t.Errorf("UserMessage = %q", got)
	}
}
