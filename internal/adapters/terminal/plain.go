package terminal

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go.trai.ch/bsh/internal/core/domain"
	"go.trai.ch/zerr"
)

// PlainReader implements ports.LineReader for piped or redirected input.
// Input is consumed one byte at a time so that whatever follows the newline
// is still there for the next foreground command.
type PlainReader struct {
	in  io.Reader
	out io.Writer
	buf [1]byte
}

// NewPlainReader creates a reader that writes prompts to out.
func NewPlainReader(in io.Reader, out io.Writer) *PlainReader {
	return &PlainReader{in: in, out: out}
}

// ReadLine prints the prompt and reads up to the next newline. A final line
// without a newline is returned as is; io.EOF follows on the next call.
func (r *PlainReader) ReadLine(prompt string) (string, error) {
	if _, err := fmt.Fprint(r.out, prompt); err != nil {
		return "", zerr.Wrap(err, domain.ErrReadFailed.Error())
	}

	var line strings.Builder
	for {
		n, err := r.in.Read(r.buf[:])
		if n == 1 {
			if r.buf[0] == '\n' {
				return line.String(), nil
			}
			line.WriteByte(r.buf[0])
		}

		switch {
		case err == nil:
			continue
		case errors.Is(err, io.EOF):
			if line.Len() > 0 {
				return line.String(), nil
			}
			return "", io.EOF
		default:
			return "", zerr.Wrap(err, domain.ErrReadFailed.Error())
		}
	}
}

// Close closes the input when it is closable, which unblocks a pending read.
func (r *PlainReader) Close() error {
	if c, ok := r.in.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
