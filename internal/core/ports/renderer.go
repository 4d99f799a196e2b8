package ports

import "go.trai.ch/bsh/internal/core/domain"

// Renderer writes the interpreter's user-facing reports.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Assigned announces the slot a background task was registered in.
	Assigned(slot, pid int)
	// Untracked announces a background task that runs without a slot.
	Untracked(pid int, name string)
	// Tasks lists the occupied slots.
	Tasks(entries []domain.TaskEntry)
	// Stats prints the resource usage block of a finished foreground command.
	Stats(usage domain.ResourceUsage)
	// ShutdownRefused reports how many background tasks block exit.
	ShutdownRefused(remaining int)
}
