package logger_test

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bsh/internal/adapters/logger"
	"go.trai.ch/bsh/internal/core/domain"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger with an injected bytes.Buffer for isolated testing.
// It also sets NO_COLOR=1 to ensure deterministic output without ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name       string
		log        func(*logger.Logger)
		goldenName string
	}{
		{
			name:       "info",
			log:        func(lg *logger.Logger) { lg.Info("some message") },
			goldenName: "info_basic",
		},
		{
			name:       "warn",
			log:        func(lg *logger.Logger) { lg.Warn("sleep exited with status 1") },
			goldenName: "warn_basic",
		},
		{
			name:       "multiline info",
			log:        func(lg *logger.Logger) { lg.Info("line1\nline2") },
			goldenName: "info_multiline",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			tt.log(lg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_SetLevel(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Debug("hidden")
	assert.Empty(t, buf.String())

	require.NoError(t, lg.SetLevel("debug"))
	lg.TaskExited(domain.TaskEntry{Slot: 0, Task: domain.Task{PID: 42, Name: "sleep"}}, 0)

	g := goldie.New(t)
	g.Assert(t, "debug_enabled", buf.Bytes())

	buf.Reset()
	require.NoError(t, lg.SetLevel("error"))
	lg.Warn("suppressed")
	assert.Empty(t, buf.String())

	assert.Error(t, lg.SetLevel("verbose"))
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "simple error",
			err:        os.ErrPermission,
			goldenName: "error_simple",
		},
		{
			name: "zerr chain",
			err: zerr.Wrap(
				zerr.Wrap(
					errors.New("database connection failed"),
					"failed to load user data",
				),
				"failed to process request",
			),
			goldenName: "error_chain_zerr",
		},
		{
			name: "metadata on main error",
			err: zerr.With(
				zerr.Wrap(errors.New("no such file or directory"), "A component of the path does not name an existing directory"),
				"path", "/nope",
			),
			goldenName: "error_metadata_main",
		},
		{
			name:       "metadata on standard error",
			err:        zerr.With(errors.New("exec: \"nope\": executable file not found in $PATH"), "command", "nope"),
			goldenName: "error_metadata_stdlib",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)

	assert.Empty(t, buf.String(), "Expected no output for nil error")
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.Error(zerr.With(zerr.Wrap(errors.New("connection refused"), "probe failed"), "pid", 42))

	out := buf.String()
	assert.Contains(t, out, `"level":"ERROR"`)
	assert.Contains(t, out, `"error":"probe failed: connection refused"`)
	assert.Contains(t, out, `"pid":42`)
	assert.NotContains(t, out, "✗")

	buf.Reset()
	lg.SetJSON(false)
	lg.Info("back to pretty")
	assert.Equal(t, "back to pretty\n", buf.String())
}

func TestLogger_TaskExited(t *testing.T) {
	entry := domain.TaskEntry{Slot: 3, Task: domain.Task{PID: 77, Name: "yes"}}

	t.Run("pretty renders a listing line", func(t *testing.T) {
		lg, buf := newTestLogger(t)
		require.NoError(t, lg.SetLevel("debug"))

		lg.TaskExited(entry, 143)
		assert.Equal(t, "● [3] 77 yes exited with status 143\n", buf.String())
	})

	t.Run("json keeps task fields", func(t *testing.T) {
		lg, buf := newTestLogger(t)
		require.NoError(t, lg.SetLevel("debug"))
		lg.SetJSON(true)

		lg.TaskExited(entry, 143)
		out := buf.String()
		assert.Contains(t, out, `"msg":"exited"`)
		assert.Contains(t, out, `"slot":3`)
		assert.Contains(t, out, `"pid":77`)
		assert.Contains(t, out, `"task":"yes"`)
		assert.Contains(t, out, `"status":143`)
	})

	t.Run("hidden above debug", func(t *testing.T) {
		lg, buf := newTestLogger(t)

		lg.TaskExited(entry, 0)
		assert.Empty(t, buf.String())
	})
}

func TestLogger_SetOutput_Nil(t *testing.T) {
	lg, _ := newTestLogger(t)
	assert.NotPanics(t, func() { lg.SetOutput(nil) })
}
