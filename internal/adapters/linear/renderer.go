// Package linear provides a synchronous, line-oriented renderer for the
// interpreter's reports.
package linear

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/bsh/internal/core/domain"
	"go.trai.ch/bsh/internal/ui/output"
	"go.trai.ch/bsh/internal/ui/style"
)

// Renderer implements ports.Renderer.
// Reports go to stdout; warnings about untracked tasks go to stderr.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer
	out    *termenv.Output
	errOut *termenv.Output

	mu sync.Mutex
}

// NewRenderer creates a new Renderer. Nil writers default to the process streams.
func NewRenderer(stdout, stderr io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Renderer{
		stdout: stdout,
		stderr: stderr,
		out:    output.New(stdout),
		errOut: output.New(stderr),
	}
}

// Assigned reports the slot a background task was stored in.
func (r *Renderer) Assigned(slot, pid int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintf(r.stdout, "%s %d\n", r.slotLabel(slot), pid)
}

// Untracked warns that a background task was started without a free slot.
func (r *Renderer) Untracked(pid int, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	msg := fmt.Sprintf("%s %s: %d %s", style.Warning, domain.ErrRegistryFull.Error(), pid, name)
	_, _ = fmt.Fprintln(r.stderr, r.errOut.String(msg).Foreground(termenv.RGBColor(string(style.Yellow))).String())
}

// Tasks lists tracked background tasks, one "[slot] pid<TAB>name" line each.
func (r *Renderer) Tasks(entries []domain.TaskEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s %d\t%s\n", r.slotLabel(e.Slot), e.Task.PID, e.Task.Name)
	}
	_, _ = io.WriteString(r.stdout, b.String())
}

// Stats prints the resource usage block for a finished foreground command.
func (r *Renderer) Stats(usage domain.ResourceUsage) {
	r.mu.Lock()
	defer r.mu.Unlock()

	heading := r.out.String("Statistics").Bold().String()

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n%s\n", style.Rule, heading, style.Rule)
	fmt.Fprintf(&b, "\tWall-clock time: %d µs\n", usage.WallClock.Microseconds())
	fmt.Fprintf(&b, "\tCPU time used (user and kernel): %d µs\n", usage.CPUTime.Microseconds())
	fmt.Fprintf(&b, "\tVoluntary context switches: %d\n", usage.VoluntarySwitches)
	fmt.Fprintf(&b, "\tInvoluntary context switches: %d\n", usage.InvoluntarySwitches)
	fmt.Fprintf(&b, "\tPage faults: %d\n", usage.MajorFaults)
	fmt.Fprintf(&b, "\tPage faults satisfied by cache read: %d\n", usage.MinorFaults)
	_, _ = io.WriteString(r.stdout, b.String())
}

// ShutdownRefused reports that exit was refused because tasks are alive.
func (r *Renderer) ShutdownRefused(remaining int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintf(r.stdout, "There's still %d background(s) process(es) running\n", remaining)
}

func (r *Renderer) slotLabel(slot int) string {
	return r.out.String(fmt.Sprintf("[%d]", slot)).Foreground(termenv.RGBColor(string(style.Iris))).String()
}
