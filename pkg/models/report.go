package models

import (
	"time"
)

// CompareReport wraps a ComparisonResult with run metadata for display
// and logging. The JSON result sink serializes only the embedded result;
// the report itself never reaches the output file.
type CompareReport struct {
	// RunID uniquely identifies this comparison run
	RunID string

	// LeftRoot and RightRoot are the resolved tree root paths
	LeftRoot  string
	RightRoot string

	// Options are the attribute selections used for the run
	Options CompareOptions

	// Timing
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration

	// LeftFiles and RightFiles count regular files discovered per tree
	LeftFiles  int
	RightFiles int

	// Result is the three-way classification
	Result *ComparisonResult
}

// Finish records the end of the run and derives the duration.
func (r *CompareReport) Finish() {
	r.EndTime = time.Now()
	r.Duration = r.EndTime.Sub(r.StartTime)
}
