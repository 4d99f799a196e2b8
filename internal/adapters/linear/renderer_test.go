package linear_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/bsh/internal/adapters/linear"
	"go.trai.ch/bsh/internal/core/domain"
)

func newTestRenderer(t *testing.T) (*linear.Renderer, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	var stdout, stderr bytes.Buffer
	return linear.NewRenderer(&stdout, &stderr), &stdout, &stderr
}

func TestRenderer_Stats(t *testing.T) {
	r, stdout, stderr := newTestRenderer(t)

	r.Stats(domain.ResourceUsage{
		WallClock:           1503 * time.Microsecond,
		CPUTime:             1200*time.Microsecond + 999*time.Nanosecond,
		VoluntarySwitches:   1,
		InvoluntarySwitches: 2,
		MajorFaults:         0,
		MinorFaults:         87,
	})

	assert.Empty(t, stderr.String())
	g := goldie.New(t)
	g.Assert(t, "stats", stdout.Bytes())
}

func TestRenderer_Tasks(t *testing.T) {
	r, stdout, _ := newTestRenderer(t)

	r.Tasks([]domain.TaskEntry{
		{Slot: 0, Task: domain.Task{PID: 4242, Name: "sleep"}},
		{Slot: 3, Task: domain.Task{PID: 4250, Name: "yes"}},
	})

	g := goldie.New(t)
	g.Assert(t, "tasks", stdout.Bytes())
}

func TestRenderer_Tasks_Empty(t *testing.T) {
	r, stdout, _ := newTestRenderer(t)

	r.Tasks(nil)
	assert.Empty(t, stdout.String())
}

func TestRenderer_Assigned(t *testing.T) {
	r, stdout, _ := newTestRenderer(t)

	r.Assigned(2, 31337)
	assert.Equal(t, "[2] 31337\n", stdout.String())
}

func TestRenderer_ShutdownRefused(t *testing.T) {
	r, stdout, _ := newTestRenderer(t)

	r.ShutdownRefused(2)
	assert.Equal(t, "There's still 2 background(s) process(es) running\n", stdout.String())
}

func TestRenderer_Untracked(t *testing.T) {
	r, stdout, stderr := newTestRenderer(t)

	r.Untracked(77, "sleep")
	assert.Empty(t, stdout.String())

	g := goldie.New(t)
	g.Assert(t, "untracked", stderr.Bytes())
}
