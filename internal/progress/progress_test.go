package progress

import (
	"math"
	"testing"
)

func TestCalcTotalWork(t *testing.T) {
	t.Parallel()
	tests := []struct {
		bits int
		want float64
	}{
		{0, 0},
		{1, 1},
		{2, 5},
		{3, 21},
	}
	for _, tt := range tests {
		if got := CalcTotalWork(tt.bits); got != tt.want {
			t.Errorf("CalcTotalWork(%d) = %v, want %v", tt.bits, got, tt.want)
		}
	}
}

func TestReportStepProgress_MonotonicAndComplete(t *testing.T) {
	t.Parallel()

	const numBits = 20
	var reports []float64
	reporter := func(p float64) { reports = append(reports, p) }

	total := CalcTotalWork(numBits)
	var last, work float64
	for i := numBits - 1; i >= 0; i-- {
		work = ReportStepProgress(reporter, &last, total, work, i, numBits)
	}

	if len(reports) == 0 {
		t.Fatal("expected at least one report")
	}
	for i := 1; i < len(reports); i++ {
		if reports[i] < reports[i-1] {
			t.Errorf("progress decreased: %v -> %v", reports[i-1], reports[i])
		}
	}
	if final := reports[len(reports)-1]; math.Abs(final-1) > 1e-9 {
		t.Errorf("final progress = %v, want 1", final)
	}
	if work != total {
		t.Errorf("accumulated work = %v, want %v", work, total)
	}
}

func TestReportStepProgress_NilReporter(t *testing.T) {
	t.Parallel()
	var last float64
	if got := ReportStepProgress(nil, &last, CalcTotalWork(4), 0, 3, 4); got != 1 {
		t.Errorf("work after first step = %v, want 1", got)
	}
}
