package tui

import (
	"time"

	"github.com/agbru/algodemo/internal/orchestration"
)

// ProgressMsg carries the progress of the running computation.
type ProgressMsg struct {
	Generation uint64
	Value      float64
	ETA        time.Duration
}

// FibResultMsg is sent when a computation finishes, successfully or not.
type FibResultMsg struct {
	Generation uint64
	N          int64
	Result     orchestration.CalculationResult
}

// ContextCancelledMsg is sent when the parent context is done.
type ContextCancelledMsg struct {
	Err error
}
