// Package registry tracks background tasks in a fixed number of slots.
package registry

import (
	"go.trai.ch/bsh/internal/core/domain"
	"go.trai.ch/bsh/internal/core/ports"
	"go.trai.ch/zerr"
)

// slot is either free or holds exactly one task.
type slot struct {
	occupied bool
	task     domain.Task
}

// Registry is a bounded table of background tasks indexed by slot number.
// Slot numbers stay stable for a task's lifetime and are reused, lowest
// first, once the task has been reaped. The registry is not safe for
// concurrent use; the interpreter touches it only from its control loop.
type Registry struct {
	prober ports.LivenessProber
	logger ports.Logger
	slots  []slot
	// strays are pids started while every slot was taken. They are reaped
	// alongside tracked tasks but never block shutdown.
	strays []int
}

// New creates a registry with a fixed number of slots.
// A non-positive capacity falls back to domain.DefaultCapacity.
func New(capacity int, prober ports.LivenessProber, logger ports.Logger) *Registry {
	if capacity < 1 {
		capacity = domain.DefaultCapacity
	}
	return &Registry{
		prober: prober,
		logger: logger,
		slots:  make([]slot, capacity),
	}
}

// Capacity returns the number of slots.
func (r *Registry) Capacity() int {
	return len(r.slots)
}

// Len returns the number of occupied slots as of the last probe.
func (r *Registry) Len() int {
	count := 0
	for i := range r.slots {
		if r.slots[i].occupied {
			count++
		}
	}
	return count
}

// Add reaps finished tasks and then stores the task in the lowest free slot.
// It returns false when every slot is occupied; the task is then not listed
// and does not hold up shutdown.
func (r *Registry) Add(task domain.Task) (int, bool) {
	r.Reap()

	for i := range r.slots {
		if r.slots[i].occupied {
			continue
		}
		r.slots[i] = slot{occupied: true, task: task}
		return i, true
	}

	r.strays = append(r.strays, task.PID)
	return -1, false
}

// Reap probes every occupied slot and frees those whose process has exited.
// A slot whose probe fails stays occupied. It returns the number of slots
// still occupied after the sweep.
func (r *Registry) Reap() int {
	remaining := 0
	for i := range r.slots {
		s := &r.slots[i]
		if !s.occupied {
			continue
		}

		result, err := r.prober.Probe(s.task.PID)
		if err != nil {
			r.logger.Error(zerr.With(zerr.With(zerr.Wrap(err, domain.ErrProbeFailed.Error()),
				"pid", s.task.PID), "slot", i))
			remaining++
			continue
		}

		if result.Exited() {
			r.logger.TaskExited(domain.TaskEntry{Slot: i, Task: s.task}, result.ExitCode)
			*s = slot{}
			continue
		}
		remaining++
	}

	r.reapStrays()
	return remaining
}

// reapStrays collects untracked children so they do not linger as zombies.
func (r *Registry) reapStrays() {
	alive := r.strays[:0]
	for _, pid := range r.strays {
		result, err := r.prober.Probe(pid)
		if err == nil && result.Exited() {
			continue
		}
		alive = append(alive, pid)
	}
	r.strays = alive
}

// List reaps finished tasks and returns the occupied slots in slot order.
func (r *Registry) List() []domain.TaskEntry {
	r.Reap()

	entries := make([]domain.TaskEntry, 0, len(r.slots))
	for i, s := range r.slots {
		if s.occupied {
			entries = append(entries, domain.TaskEntry{Slot: i, Task: s.task})
		}
	}
	return entries
}

// Shutdown lists the outstanding tasks and probes once more. The caller may
// terminate only when remaining is zero.
func (r *Registry) Shutdown() (outstanding []domain.TaskEntry, remaining int) {
	outstanding = r.List()
	return outstanding, r.Reap()
}
