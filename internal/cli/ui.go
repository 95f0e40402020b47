package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/algodemo/internal/format"
	"github.com/agbru/algodemo/internal/orchestration"
	"github.com/agbru/algodemo/internal/progress"
)

const (
	// TruncationLimit is the digit count above which results are shortened
	// on the terminal unless -v is given.
	TruncationLimit = 100
	// DisplayEdges is the number of leading and trailing digits kept when a
	// result is truncated.
	DisplayEdges = 25
	// ProgressRefreshRate is the spinner redraw interval.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth is the width of the progress bar in cells.
	ProgressBarWidth = 40
)

// Spinner abstracts the terminal spinner so DisplayProgress can be tested.
type Spinner interface {
	Start()
	Stop()
	UpdateSuffix(suffix string)
}

type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start()                     { rs.s.Start() }
func (rs *realSpinner) Stop()                      { rs.s.Stop() }
func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// DisplayProgress shows a spinner with an aggregated progress bar and ETA
// until progressChan is closed. It calls wg.Done on return.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numCalculators int, out io.Writer) {
	defer wg.Done()

	agg := orchestration.NewProgressAggregator(numCalculators)
	if agg == nil {
		orchestration.DrainChannel(progressChan)
		return
	}

	s := newSpinner(spinner.WithWriter(out))
	s.UpdateSuffix(" " + format.FormatProgressBarWithETA(0, 0, ProgressBarWidth))
	s.Start()
	defer s.Stop()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	label := "F(n)"
	if numCalculators > 1 {
		label = fmt.Sprintf("%d strategies", numCalculators)
	}

	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				s.UpdateSuffix(fmt.Sprintf(" %s %s", label, format.FormatProgressBarWithETA(agg.Average(), 0, ProgressBarWidth)))
				return
			}
			snap := agg.Update(update)
			s.UpdateSuffix(fmt.Sprintf(" %s %s", label, format.FormatProgressBarWithETA(snap.Average, snap.ETA, ProgressBarWidth)))
		case <-ticker.C:
			s.UpdateSuffix(fmt.Sprintf(" %s %s", label, format.FormatProgressBarWithETA(agg.Average(), agg.ETA(), ProgressBarWidth)))
		}
	}
}
