// Package progress defines the progress update types shared by the
// Fibonacci strategies, the orchestration layer and the presenters.
package progress

import "math"

// ProgressUpdate is a single progress notification from one calculator.
type ProgressUpdate struct {
	// CalculatorIndex identifies the calculator in a comparison run.
	CalculatorIndex int
	// Value is the normalized progress, 0.0 to 1.0.
	Value float64
}

// ProgressCallback receives normalized progress values from a running core.
type ProgressCallback func(progress float64)

// ReportThreshold is the minimum progress delta between two reports.
// Smaller increments are coalesced to keep channel traffic low.
const ReportThreshold = 0.01

// CalcTotalWork returns the modeled cost of a doubling loop over numBits
// bits. Each step works on operands twice as long as the previous one, and
// multiplication is roughly quadratic, so step k weighs 4^k.
func CalcTotalWork(numBits int) float64 {
	if numBits <= 0 {
		return 0
	}
	return (math.Pow(4, float64(numBits)) - 1) / 3
}

// ReportStepProgress accumulates the work of the step that just processed
// bit index i (counting down from numBits-1) and reports through reporter
// when the accumulated progress moved by at least ReportThreshold, or when
// the loop is complete. It returns the updated work counter.
func ReportStepProgress(reporter ProgressCallback, lastReported *float64, totalWork, workDone float64, i, numBits int) float64 {
	stepIndex := numBits - 1 - i
	workDone += math.Pow(4, float64(stepIndex))
	if reporter == nil || totalWork <= 0 {
		return workDone
	}
	current := workDone / totalWork
	if current > 1 {
		current = 1
	}
	if current-*lastReported >= ReportThreshold || i == 0 {
		reporter(current)
		*lastReported = current
	}
	return workDone
}
