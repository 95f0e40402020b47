package apperrors

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestValidationError(t *testing.T) {
	t.Parallel()

	err := NewValidationError("n", "must be non-negative, got %d", -3)

	if got, want := err.Error(), `validation error for "n": must be non-negative, got -3`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	var ve ValidationError
	if !errors.As(err, &ve) {
		t.Fatal("errors.As should extract the ValidationError")
	}
	if ve.Field != "n" {
		t.Errorf("Field = %q, want n", ve.Field)
	}
	if !errors.Is(err, ErrInvalidArgument) {
		t.Error("ValidationError should match ErrInvalidArgument")
	}
}

func TestIsInvalidArgument(t *testing.T) {
	t.Parallel()

	negative := NewValidationError("n", "must be non-negative")
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"sentinel", ErrInvalidArgument, true},
		{"validation error", negative, true},
		{"wrapped by strategy name", WrapError(negative, "strategy %s", "fast"), true},
		{"inside calculation error", CalculationError{Cause: negative}, true},
		{"fmt wrapped sentinel", fmt.Errorf("modulus: %w", ErrInvalidArgument), true},
		{"config error", NewConfigError("unknown algorithm %q", "quantum"), false},
		{"deadline", context.DeadlineExceeded, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsInvalidArgument(tt.err); got != tt.want {
				t.Errorf("IsInvalidArgument(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestCalculationError_PreservesCause(t *testing.T) {
	t.Parallel()

	err := CalculationError{Cause: context.Canceled}
	if err.Error() != context.Canceled.Error() {
		t.Errorf("Error() = %q", err.Error())
	}
	if !IsContextError(err) {
		t.Error("a canceled calculation should be a context error")
	}
}

func TestTimeoutError(t *testing.T) {
	t.Parallel()

	err := TimeoutError{Operation: "fibonacci", Limit: 5 * time.Minute}
	if got, want := err.Error(), `operation "fibonacci" timed out after 5m0s`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestWrapError_Nil(t *testing.T) {
	t.Parallel()

	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should be nil")
	}
}

func TestIsContextError(t *testing.T) {
	t.Parallel()

	if !IsContextError(WrapError(context.DeadlineExceeded, "iterative")) {
		t.Error("wrapped deadline should be a context error")
	}
	if IsContextError(ErrInvalidArgument) {
		t.Error("invalid argument is not a context error")
	}
}

func TestExitCodes(t *testing.T) {
	t.Parallel()

	codes := map[string]int{
		"success":          ExitSuccess,
		"generic":          ExitErrorGeneric,
		"timeout":          ExitErrorTimeout,
		"mismatch":         ExitErrorMismatch,
		"config":           ExitErrorConfig,
		"invalid argument": ExitErrorInvalidArgument,
		"canceled":         ExitErrorCanceled,
	}
	want := map[string]int{
		"success": 0, "generic": 1, "timeout": 2, "mismatch": 3,
		"config": 4, "invalid argument": 5, "canceled": 130,
	}

	seen := make(map[int]string)
	for name, code := range codes {
		if code != want[name] {
			t.Errorf("%s exit code = %d, want %d", name, code, want[name])
		}
		if other, dup := seen[code]; dup {
			t.Errorf("exit code %d shared by %s and %s", code, name, other)
		}
		seen[code] = name
	}
}
