package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidConfig, "cols must be >= 1, got %d", 0)
	if err.Code != ErrCodeInvalidConfig {
		t.Errorf("Code = %s, want %s", err.Code, ErrCodeInvalidConfig)
	}
	if err.Message != "cols must be >= 1, got 0" {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Cause != nil {
		t.Error("New should not set Cause")
	}
	want := "INVALID_CONFIG: cols must be >= 1, got 0"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(ErrCodeStore, cause, "load session %s", "abc")

	if err.Cause != cause {
		t.Error("Wrap should preserve cause")
	}
	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match cause via errors.Is")
	}
	want := "STORE_ERROR: load session abc: connection refused"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeItemNotFound, "item a")

	if !Is(err, ErrCodeItemNotFound) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeInternal) {
		t.Error("Is should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeInternal) {
		t.Error("Is should not match plain errors")
	}

	// Matching through a wrapping chain.
	wrapped := fmt.Errorf("outer: %w", err)
	if !Is(wrapped, ErrCodeItemNotFound) {
		t.Error("Is should unwrap to find the coded error")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeTimeout, "slow")); got != ErrCodeTimeout {
		t.Errorf("GetCode = %s, want %s", got, ErrCodeTimeout)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode on plain error = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidLayout, "item a exceeds 12 columns")
	if got := UserMessage(err); got != "item a exceeds 12 columns" {
		t.Errorf("UserMessage = %q", got)
	}
	plain := stderrors.New("boom")
	if got := UserMessage(plain); got != "boom" {
		t.Errorf("UserMessage on plain error = %q", got)
	}
}
