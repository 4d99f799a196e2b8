package app_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bsh/internal/app"
	"go.trai.ch/bsh/internal/core/domain"
	"go.trai.ch/bsh/internal/core/ports/mocks"
	"go.trai.ch/bsh/internal/engine/registry"
	"go.uber.org/mock/gomock"
)

var (
	running = domain.ProbeResult{State: domain.ProbeRunning}
	exited  = domain.ProbeResult{State: domain.ProbeExited}
)

type fixture struct {
	app      *app.App
	reader   *mocks.MockLineReader
	launcher *mocks.MockLauncher
	renderer *mocks.MockRenderer
	logger   *mocks.MockLogger
	prober   *mocks.MockLivenessProber
}

func newFixture(t *testing.T, capacity int) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		reader:   mocks.NewMockLineReader(ctrl),
		launcher: mocks.NewMockLauncher(ctrl),
		renderer: mocks.NewMockRenderer(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
		prober:   mocks.NewMockLivenessProber(ctrl),
	}
	f.logger.EXPECT().TaskExited(gomock.Any(), gomock.Any()).AnyTimes()

	reg := registry.New(capacity, f.prober, f.logger)
	f.app = app.New(f.reader, f.launcher, reg, f.renderer, f.logger, "$> ")
	return f
}

// errorIs matches an error argument wrapping target.
func errorIs(target error) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		err, ok := x.(error)
		return ok && errors.Is(err, target)
	})
}

func TestDispatch_EmptyLine(t *testing.T) {
	f := newFixture(t, 2)
	assert.False(t, f.app.Dispatch(context.Background(), domain.Tokenize("   \n")))
}

func TestDispatch_Foreground(t *testing.T) {
	f := newFixture(t, 2)
	usage := domain.ResourceUsage{WallClock: time.Millisecond, MinorFaults: 3}

	gomock.InOrder(
		f.launcher.EXPECT().
			Foreground(gomock.Any(), domain.CommandLine{"ls", "-la", "/tmp"}).
			Return(&domain.Completion{PID: 10, Usage: usage}, nil),
		f.renderer.EXPECT().Stats(usage),
	)

	assert.False(t, f.app.Dispatch(context.Background(), domain.Tokenize("ls -la /tmp")))
}

func TestDispatch_ForegroundNonZeroExit(t *testing.T) {
	f := newFixture(t, 2)

	f.launcher.EXPECT().
		Foreground(gomock.Any(), domain.CommandLine{"false"}).
		Return(&domain.Completion{PID: 10, ExitCode: 1}, nil)
	f.logger.EXPECT().Warn("false exited with status 1")
	f.renderer.EXPECT().Stats(domain.ResourceUsage{})

	f.app.Dispatch(context.Background(), domain.Tokenize("false"))
}

func TestDispatch_ForegroundLaunchFailure(t *testing.T) {
	f := newFixture(t, 2)
	launchErr := errors.New(domain.ErrCommandNotFound.Error())

	f.launcher.EXPECT().Foreground(gomock.Any(), gomock.Any()).Return(nil, launchErr)
	f.logger.EXPECT().Error(launchErr)

	assert.False(t, f.app.Dispatch(context.Background(), domain.Tokenize("nope")))
}

func TestDispatch_ForegroundUsageUnavailable(t *testing.T) {
	f := newFixture(t, 2)

	f.launcher.EXPECT().
		Foreground(gomock.Any(), gomock.Any()).
		Return(&domain.Completion{PID: 10}, domain.ErrUsageUnavailable)
	f.logger.EXPECT().Error(domain.ErrUsageUnavailable)
	f.renderer.EXPECT().Stats(domain.ResourceUsage{})

	f.app.Dispatch(context.Background(), domain.Tokenize("true"))
}

func TestDispatch_Background(t *testing.T) {
	f := newFixture(t, 2)

	f.launcher.EXPECT().Background(gomock.Any(), domain.CommandLine{"sleep", "10"}).Return(42, nil)
	f.renderer.EXPECT().Assigned(0, 42)

	assert.False(t, f.app.Dispatch(context.Background(), domain.Tokenize("sleep 10 &")))

	f.prober.EXPECT().Probe(42).Return(running, nil)
	f.renderer.EXPECT().Tasks([]domain.TaskEntry{{Slot: 0, Task: domain.Task{PID: 42, Name: "sleep"}}})

	f.app.Dispatch(context.Background(), domain.Tokenize("btasks"))
}

func TestDispatch_BackgroundLoneAmpersand(t *testing.T) {
	f := newFixture(t, 2)

	f.logger.EXPECT().Error(errorIs(domain.ErrEmptyCommand))

	assert.False(t, f.app.Dispatch(context.Background(), domain.Tokenize("&")))
}

func TestDispatch_BackgroundLaunchFailure(t *testing.T) {
	f := newFixture(t, 2)
	launchErr := errors.New("no such program")

	f.launcher.EXPECT().Background(gomock.Any(), gomock.Any()).Return(0, launchErr)
	f.logger.EXPECT().Error(launchErr)

	f.app.Dispatch(context.Background(), domain.Tokenize("nope &"))

	f.renderer.EXPECT().Tasks(gomock.Len(0))
	f.app.Dispatch(context.Background(), domain.Tokenize("ap"))
}

func TestDispatch_BackgroundRegistryFull(t *testing.T) {
	f := newFixture(t, 1)
	f.prober.EXPECT().Probe(gomock.Any()).Return(running, nil).AnyTimes()

	f.launcher.EXPECT().Background(gomock.Any(), domain.CommandLine{"sleep", "10"}).Return(42, nil)
	f.renderer.EXPECT().Assigned(0, 42)
	f.app.Dispatch(context.Background(), domain.Tokenize("sleep 10 &"))

	f.launcher.EXPECT().Background(gomock.Any(), domain.CommandLine{"yes"}).Return(43, nil)
	f.renderer.EXPECT().Untracked(43, "yes")
	f.app.Dispatch(context.Background(), domain.Tokenize("yes &"))
}

func TestDispatch_TasksAlias(t *testing.T) {
	for _, name := range []string{app.BuiltinTasks, app.BuiltinTasksAlias} {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t, 2)
			f.renderer.EXPECT().Tasks(gomock.Len(0))
			assert.False(t, f.app.Dispatch(context.Background(), domain.CommandLine{name}))
		})
	}
}

func TestDispatch_Exit(t *testing.T) {
	t.Run("no tasks", func(t *testing.T) {
		f := newFixture(t, 2)
		f.renderer.EXPECT().Tasks(gomock.Len(0))

		assert.True(t, f.app.Dispatch(context.Background(), domain.Tokenize("exit")))
	})

	t.Run("refused while a task runs", func(t *testing.T) {
		f := newFixture(t, 2)
		f.launcher.EXPECT().Background(gomock.Any(), gomock.Any()).Return(42, nil)
		f.renderer.EXPECT().Assigned(0, 42)
		f.app.Dispatch(context.Background(), domain.Tokenize("sleep 10 &"))

		f.prober.EXPECT().Probe(42).Return(running, nil).Times(2)
		gomock.InOrder(
			f.renderer.EXPECT().Tasks(gomock.Len(1)),
			f.renderer.EXPECT().ShutdownRefused(1),
		)

		assert.False(t, f.app.Dispatch(context.Background(), domain.Tokenize("exit")))
	})

	t.Run("allowed once the task exited", func(t *testing.T) {
		f := newFixture(t, 2)
		f.launcher.EXPECT().Background(gomock.Any(), gomock.Any()).Return(42, nil)
		f.renderer.EXPECT().Assigned(0, 42)
		f.app.Dispatch(context.Background(), domain.Tokenize("sleep 10 &"))

		f.prober.EXPECT().Probe(42).Return(exited, nil)
		f.renderer.EXPECT().Tasks(gomock.Len(0))

		assert.True(t, f.app.Dispatch(context.Background(), domain.Tokenize("exit")))
	})
}

func TestRun_ExitAfterLines(t *testing.T) {
	f := newFixture(t, 2)

	gomock.InOrder(
		f.reader.EXPECT().ReadLine("$> ").Return("", nil),
		f.reader.EXPECT().ReadLine("$> ").Return("", domain.ErrInterrupted),
		f.reader.EXPECT().ReadLine("$> ").Return("exit", nil),
	)
	f.renderer.EXPECT().Tasks(gomock.Len(0))

	require.NoError(t, f.app.Run(context.Background()))
}

func TestRun_EOF(t *testing.T) {
	t.Run("clean when no tasks remain", func(t *testing.T) {
		f := newFixture(t, 2)
		f.reader.EXPECT().ReadLine(gomock.Any()).Return("", io.EOF)
		f.renderer.EXPECT().Tasks(gomock.Len(0))

		require.NoError(t, f.app.Run(context.Background()))
	})

	t.Run("input closed with tasks running", func(t *testing.T) {
		f := newFixture(t, 2)
		gomock.InOrder(
			f.reader.EXPECT().ReadLine(gomock.Any()).Return("sleep 10 &", nil),
			f.reader.EXPECT().ReadLine(gomock.Any()).Return("", io.EOF),
		)
		f.launcher.EXPECT().Background(gomock.Any(), gomock.Any()).Return(42, nil)
		f.renderer.EXPECT().Assigned(0, 42)
		f.prober.EXPECT().Probe(42).Return(running, nil).AnyTimes()
		f.renderer.EXPECT().Tasks(gomock.Len(1))
		f.renderer.EXPECT().ShutdownRefused(1)

		err := f.app.Run(context.Background())
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrInputClosed.Error())
	})
}

func TestRun_ReadFailure(t *testing.T) {
	f := newFixture(t, 2)
	readErr := errors.New(domain.ErrReadFailed.Error())
	f.reader.EXPECT().ReadLine(gomock.Any()).Return("", readErr)

	require.ErrorIs(t, f.app.Run(context.Background()), readErr)
}

func TestRun_ContextCancelled(t *testing.T) {
	f := newFixture(t, 2)
	ctx, cancel := context.WithCancel(context.Background())

	blocked := make(chan struct{})
	f.reader.EXPECT().ReadLine(gomock.Any()).DoAndReturn(func(string) (string, error) {
		close(blocked)
		<-ctx.Done()
		return "", io.EOF
	})
	f.reader.EXPECT().Close().Return(nil).AnyTimes()

	go func() {
		<-blocked
		cancel()
	}()

	require.ErrorIs(t, f.app.Run(ctx), context.Canceled)
}

func TestRun_ContextCancelledWhileReadIgnoresClose(t *testing.T) {
	f := newFixture(t, 2)
	ctx, cancel := context.WithCancel(context.Background())

	blocked := make(chan struct{})
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	// The read stays blocked after Close, like a read on a blocking pipe.
	f.reader.EXPECT().ReadLine(gomock.Any()).DoAndReturn(func(string) (string, error) {
		close(blocked)
		<-release
		return "", io.EOF
	})
	f.reader.EXPECT().Close().Return(nil)

	go func() {
		<-blocked
		cancel()
	}()

	errs := make(chan error, 1)
	go func() { errs <- f.app.Run(ctx) }()

	select {
	case err := <-errs:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after the context was cancelled")
	}
}

func TestPromptFor(t *testing.T) {
	assert.Equal(t, "$> ", app.PromptFor("$>"))
	assert.Empty(t, app.PromptFor(""))
}

func TestApplyLogSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	log.EXPECT().SetJSON(true)
	log.EXPECT().SetLevel("debug").Return(nil)

	cfg := domain.DefaultConfig()
	cfg.LogFormat = domain.LogFormatJSON
	cfg.LogLevel = "debug"
	require.NoError(t, app.ApplyLogSettings(log, cfg))
}
