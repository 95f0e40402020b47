package orchestration

import (
	"testing"

	"github.com/agbru/algodemo/internal/progress"
)

func TestNewProgressAggregator(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, -1} {
		if agg := NewProgressAggregator(n); agg != nil {
			t.Errorf("NewProgressAggregator(%d) = %v, want nil", n, agg)
		}
	}

	agg := NewProgressAggregator(3)
	if agg == nil {
		t.Fatal("NewProgressAggregator(3) returned nil")
	}
	if agg.NumCalculators() != 3 {
		t.Errorf("NumCalculators() = %d, want 3", agg.NumCalculators())
	}
	if agg.ETA() != 0 {
		t.Errorf("initial ETA = %v, want 0", agg.ETA())
	}
}

func TestProgressAggregator_Update(t *testing.T) {
	t.Parallel()

	agg := NewProgressAggregator(2)

	snap := agg.Update(progress.ProgressUpdate{CalculatorIndex: 0, Value: 0.5})
	if snap.CalculatorIndex != 0 || snap.Value != 0.5 {
		t.Errorf("snapshot = %+v, want index 0 value 0.5", snap)
	}
	if snap.Average != 0.25 {
		t.Errorf("Average = %f, want 0.25", snap.Average)
	}

	snap = agg.Update(progress.ProgressUpdate{CalculatorIndex: 1, Value: 1.0})
	if snap.Average != 0.75 {
		t.Errorf("Average = %f, want 0.75", snap.Average)
	}
	if agg.Average() != 0.75 {
		t.Errorf("Average() = %f, want 0.75", agg.Average())
	}
}

func TestDrainChannel(t *testing.T) {
	t.Parallel()

	ch := make(chan progress.ProgressUpdate, 3)
	for i := range 3 {
		ch <- progress.ProgressUpdate{Value: float64(i) / 3}
	}
	close(ch)
	DrainChannel(ch)

	if _, open := <-ch; open {
		t.Error("channel should be drained and closed")
	}
}
