package domain

import "go.trai.ch/zerr"

var (
	// ErrEmptyCommand is returned when a line holds nothing to run, such as a lone "&".
	ErrEmptyCommand = zerr.New("no command given")

	// ErrCommandNotFound is returned when the program cannot be found or is not executable.
	ErrCommandNotFound = zerr.New("command not found, did you type it correctly")

	// ErrSpawnFailed is returned when the operating system refuses to create the process.
	ErrSpawnFailed = zerr.New("couldn't start the process, please retry")

	// ErrWaitFailed is returned when a foreground command cannot be waited on.
	// A non-zero exit status is not an error.
	ErrWaitFailed = zerr.New("failed to wait for the command")

	// ErrProbeFailed is returned when a liveness probe cannot determine a task's state.
	ErrProbeFailed = zerr.New("failed to probe background task")

	// ErrUsageUnavailable is returned when resource accounting is not available for a process.
	ErrUsageUnavailable = zerr.New("resource usage unavailable")

	// ErrRegistryFull is reported when every background slot is occupied.
	ErrRegistryFull = zerr.New("background task table is full, task is not tracked")

	// ErrCdMissingArgument is returned when cd is called without a directory.
	ErrCdMissingArgument = zerr.New("Please specify a directory parameter when using cd")

	// ErrNoSuchDirectory is returned when a path component does not exist.
	ErrNoSuchDirectory = zerr.New("A component of the path does not name an existing directory")

	// ErrPermissionDenied is returned when search permission is denied on a path component.
	ErrPermissionDenied = zerr.New("Search permission are denied for any component of the pathname.")

	// ErrNotADirectory is returned when a path component is not a directory.
	ErrNotADirectory = zerr.New("A component of the path is not a directory.")

	// ErrCdUnhandled is returned for any other directory change failure.
	ErrCdUnhandled = zerr.New("Unhandled error.")

	// ErrInputClosed is returned when input ends while background tasks are still running.
	ErrInputClosed = zerr.New("input closed with background tasks still running")

	// ErrReadFailed is returned when a line cannot be read from the terminal.
	ErrReadFailed = zerr.New("failed to read input")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when the config file holds out-of-range values.
	ErrConfigInvalid = zerr.New("invalid config")
)

// ErrInterrupted is returned by a line reader when the user cancels the current line.
var ErrInterrupted = zerr.New("interrupted")
