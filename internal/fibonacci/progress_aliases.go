package fibonacci

import "github.com/agbru/algodemo/internal/progress"

// Aliases so callers of this package need not import internal/progress.
type (
	ProgressUpdate   = progress.ProgressUpdate
	ProgressCallback = progress.ProgressCallback
)
