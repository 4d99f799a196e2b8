package ports

// LineReader reads one line of interactive input at a time.
//
//go:generate mockgen -source=reader.go -destination=mocks/mock_reader.go -package=mocks
type LineReader interface {
	// ReadLine prints the prompt and blocks until a full line is available.
	// It returns io.EOF when input is closed and an interrupt error when the
	// user cancels the current line (domain.ErrInterrupted).
	ReadLine(prompt string) (string, error)

	// Close releases the terminal.
	Close() error
}
