package domain

// Task is a command launched in the background and tracked by the registry.
type Task struct {
	// PID is the operating system process identifier of the launched command.
	PID int
	// Name is the command name shown in listings (argv[0], not the full command line).
	Name string
}

// TaskEntry is an occupied registry slot as reported by a listing.
type TaskEntry struct {
	Slot int
	Task Task
}

// ProbeState is the outcome of a non-blocking liveness probe.
type ProbeState int

const (
	// ProbeRunning means the process has not changed state since it was launched.
	ProbeRunning ProbeState = iota
	// ProbeExited means the process terminated and has been reaped.
	ProbeExited
)

// String returns a lowercase name for the state.
func (s ProbeState) String() string {
	switch s {
	case ProbeRunning:
		return "running"
	case ProbeExited:
		return "exited"
	default:
		return "unknown"
	}
}

// ProbeResult is reported by a liveness probe.
type ProbeResult struct {
	State ProbeState
	// ExitCode is the exit status when State is ProbeExited.
	// A process killed by a signal reports 128 plus the signal number.
	// It is -1 when the status is unknown because the process was reaped elsewhere.
	ExitCode int
}

// Exited reports whether the probed process has terminated.
func (r ProbeResult) Exited() bool {
	return r.State == ProbeExited
}
