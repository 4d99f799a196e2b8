package domain

import "time"

// ResourceUsage summarizes what a finished foreground command consumed.
type ResourceUsage struct {
	// WallClock is the elapsed real time between launch and completion.
	WallClock time.Duration
	// CPUTime is user plus system CPU time.
	CPUTime time.Duration

	VoluntarySwitches   int64
	InvoluntarySwitches int64

	// MajorFaults are page faults that required I/O.
	MajorFaults int64
	// MinorFaults are page faults satisfied from the page cache.
	MinorFaults int64
}

// Completion is the result of a foreground command that ran to completion.
type Completion struct {
	PID      int
	ExitCode int
	Usage    ResourceUsage
}
