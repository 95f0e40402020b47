package orchestration

import (
	"time"

	"github.com/agbru/algodemo/internal/format"
	"github.com/agbru/algodemo/internal/progress"
)

// ProgressAggregator folds per-strategy updates into an average and an ETA.
type ProgressAggregator struct {
	state *format.ProgressWithETA
	count int
}

// Snapshot is the aggregated view after one update.
type Snapshot struct {
	CalculatorIndex int
	Value           float64
	Average         float64
	ETA             time.Duration
}

// NewProgressAggregator returns nil when there is nothing to track.
func NewProgressAggregator(numCalculators int) *ProgressAggregator {
	if numCalculators <= 0 {
		return nil
	}
	return &ProgressAggregator{state: format.NewProgressWithETA(numCalculators), count: numCalculators}
}

// Update records one progress value.
func (a *ProgressAggregator) Update(update progress.ProgressUpdate) Snapshot {
	avg, eta := a.state.UpdateWithETA(update.CalculatorIndex, update.Value)
	return Snapshot{CalculatorIndex: update.CalculatorIndex, Value: update.Value, Average: avg, ETA: eta}
}

// Average returns the current mean progress.
func (a *ProgressAggregator) Average() float64 { return a.state.CalculateAverage() }

// ETA returns the current remaining-time estimate.
func (a *ProgressAggregator) ETA() time.Duration { return a.state.GetETA() }

// NumCalculators returns the number of tracked strategies.
func (a *ProgressAggregator) NumCalculators() int { return a.count }

// DrainChannel discards every update until progressChan is closed.
func DrainChannel(progressChan <-chan progress.ProgressUpdate) {
	for range progressChan {
	}
}
