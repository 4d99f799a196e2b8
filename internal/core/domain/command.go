package domain

import "strings"

// BackgroundMarker is the trailing token that sends a command to the background.
const BackgroundMarker = "&"

// CommandLine is one tokenized line of input.
type CommandLine []string

// Tokenize splits a line into tokens on runs of whitespace.
// No quoting, escaping or glob expansion is performed.
func Tokenize(line string) CommandLine {
	fields := strings.Fields(strings.TrimSuffix(line, "\n"))
	if len(fields) == 0 {
		return nil
	}
	return CommandLine(fields)
}

// Empty reports whether the line holds no tokens.
func (c CommandLine) Empty() bool {
	return len(c) == 0
}

// Name returns the first token, or "" for an empty line.
func (c CommandLine) Name() string {
	if c.Empty() {
		return ""
	}
	return c[0]
}

// Args returns the tokens after the command name.
func (c CommandLine) Args() []string {
	if len(c) < 2 {
		return nil
	}
	return c[1:]
}

// Background reports whether the last token is the background marker.
func (c CommandLine) Background() bool {
	return !c.Empty() && c[len(c)-1] == BackgroundMarker
}

// StripBackground returns the line without a trailing background marker.
func (c CommandLine) StripBackground() CommandLine {
	if !c.Background() {
		return c
	}
	return c[:len(c)-1]
}

// String joins the tokens with single spaces.
func (c CommandLine) String() string {
	return strings.Join(c, " ")
}
