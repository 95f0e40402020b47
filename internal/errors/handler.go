package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// ColorProvider supplies the escape sequences used when printing errors.
// The CLI passes its theme; tests pass an empty implementation.
type ColorProvider interface {
	Red() string
	Yellow() string
	Reset() string
}

// HandleCalculationError prints a user-facing message for err and maps it
// to a process exit code. A nil error yields ExitSuccess and prints nothing.
//
// Parameters:
//   - err: The error returned by a calculation.
//   - duration: How long the calculation ran before failing (0 if unknown).
//   - out: The writer for the message.
//   - colors: The color provider for highlighting.
//
// Returns:
//   - int: The exit code matching the error class.
func HandleCalculationError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}

	elapsed := ""
	if duration > 0 {
		elapsed = fmt.Sprintf(" after %s", duration)
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintf(out, "%sStatus: Failure (Timeout). The time limit was exceeded%s.%s\n",
			colors.Red(), elapsed, colors.Reset())
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(out, "%sStatus: Canceled%s.%s\n", colors.Yellow(), elapsed, colors.Reset())
		return ExitErrorCanceled
	case IsInvalidArgument(err):
		fmt.Fprintf(out, "%sStatus: Invalid argument. %v%s\n", colors.Red(), err, colors.Reset())
		return ExitErrorInvalidArgument
	default:
		fmt.Fprintf(out, "%sStatus: Failure. Unexpected error: %v%s\n", colors.Red(), err, colors.Reset())
		return ExitErrorGeneric
	}
}
