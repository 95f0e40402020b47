// Package orchestration runs Fibonacci strategies concurrently, traces each
// run, and cross-checks their results. Presentation is delegated through the
// ProgressReporter and ResultPresenter interfaces.
package orchestration
