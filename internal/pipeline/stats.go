package pipeline

import "time"

// RunStats summarizes a completed run.
type RunStats struct {
	Read        int // Non-blank input lines.
	Written     int // Sorted names written (or printed, for a dry run).
	Duplicates  int // Distinct full names that occur more than once.
	InputBytes  int64
	OutputBytes int64
	Elapsed     time.Duration
}
