package format

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// maxETA caps estimates produced from very slow early progress rates.
const maxETA = 24 * time.Hour

// ProgressState tracks the progress of several concurrent calculations.
type ProgressState struct {
	progresses     []float64
	numCalculators int
}

// NewProgressState creates a state for numCalculators calculations.
func NewProgressState(numCalculators int) *ProgressState {
	if numCalculators < 0 {
		numCalculators = 0
	}
	return &ProgressState{
		progresses:     make([]float64, numCalculators),
		numCalculators: numCalculators,
	}
}

// Update records the progress of one calculation. Out of range indexes are
// ignored.
func (ps *ProgressState) Update(index int, value float64) {
	if index < 0 || index >= ps.numCalculators {
		return
	}
	ps.progresses[index] = value
}

// CalculateAverage returns the mean progress, each value clamped to [0, 1].
func (ps *ProgressState) CalculateAverage() float64 {
	if ps.numCalculators == 0 {
		return 0
	}
	var total float64
	for _, p := range ps.progresses {
		total += min(max(p, 0), 1)
	}
	return total / float64(ps.numCalculators)
}

// ProgressWithETA extends ProgressState with a remaining-time estimate
// derived from the average progress rate since creation.
type ProgressWithETA struct {
	*ProgressState

	mu           sync.Mutex
	startTime    time.Time
	progressRate float64 // fraction per second
}

// NewProgressWithETA creates a tracker for numCalculators calculations.
func NewProgressWithETA(numCalculators int) *ProgressWithETA {
	return &ProgressWithETA{
		ProgressState: NewProgressState(numCalculators),
		startTime:     time.Now(),
	}
}

// UpdateWithETA records a progress value and returns the new average and
// the current estimate.
func (p *ProgressWithETA) UpdateWithETA(index int, value float64) (float64, time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.Update(index, value)
	avg := p.CalculateAverage()
	if elapsed := time.Since(p.startTime).Seconds(); elapsed > 0 && avg > 0 {
		p.progressRate = avg / elapsed
	}
	return avg, p.etaLocked(avg)
}

// GetETA returns the estimate for the remaining work, or 0 while no rate is
// known yet.
func (p *ProgressWithETA) GetETA() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.etaLocked(p.CalculateAverage())
}

func (p *ProgressWithETA) etaLocked(avg float64) time.Duration {
	if p.progressRate <= 0 || avg >= 1 {
		return 0
	}
	eta := time.Duration((1 - avg) / p.progressRate * float64(time.Second))
	return min(eta, maxETA)
}

// ProgressBar renders progress as a bar of length cells.
func ProgressBar(progress float64, length int) string {
	progress = min(max(progress, 0), 1)
	filled := int(progress * float64(length))
	return strings.Repeat("█", filled) + strings.Repeat("░", length-filled)
}

// FormatProgressBarWithETA renders a bracketed bar, the percentage and the
// estimate on one line.
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	return fmt.Sprintf("[%s] %5.1f%% ETA: %s", ProgressBar(progress, width), min(max(progress, 0), 1)*100, FormatETA(eta))
}
