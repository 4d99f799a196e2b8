// Package terminal provides the line readers behind the interactive prompt.
package terminal

import (
	"errors"
	"io"
	"os"

	"github.com/abiosoft/readline"
	"go.trai.ch/bsh/internal/core/domain"
	"go.trai.ch/bsh/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// historyLimit caps the number of remembered lines.
const historyLimit = 1000

// New returns a line-editing reader when stdin is a terminal and a plain
// reader otherwise.
func New(stdin *os.File, stdout, stderr io.Writer, historyFile string) (ports.LineReader, error) {
	if term.IsTerminal(int(stdin.Fd())) {
		return NewReadlineReader(stdin, stdout, stderr, historyFile)
	}
	return NewPlainReader(stdin, stdout), nil
}

// ReadlineReader implements ports.LineReader with line editing and history.
type ReadlineReader struct {
	rl *readline.Instance
}

// NewReadlineReader creates a reader on an interactive terminal.
// The terminal is in raw mode only while a line is being read.
func NewReadlineReader(stdin io.Reader, stdout, stderr io.Writer, historyFile string) (*ReadlineReader, error) {
	cfg := &readline.Config{
		Stdin:           readline.NewCancelableStdin(stdin),
		Stdout:          stdout,
		Stderr:          stderr,
		HistoryFile:     historyFile,
		HistoryLimit:    historyLimit,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	}

	if err := cfg.Init(); err != nil {
		return nil, zerr.Wrap(err, "failed to configure line editor")
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to start line editor")
	}

	return &ReadlineReader{rl: rl}, nil
}

// ReadLine prints the prompt and reads one edited line.
func (r *ReadlineReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	return line, translateErr(err)
}

// Close restores the terminal and stops the editor.
func (r *ReadlineReader) Close() error {
	return r.rl.Close()
}

// translateErr maps line editor errors onto the reader contract.
func translateErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, readline.ErrInterrupt):
		return domain.ErrInterrupted
	case errors.Is(err, io.EOF):
		return io.EOF
	default:
		return zerr.Wrap(err, domain.ErrReadFailed.Error())
	}
}
