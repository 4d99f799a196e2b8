package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/bsh/internal/ui/output"
	"go.trai.ch/bsh/internal/ui/style"
)

// Attribute keys of background task events.
const (
	attrSlot   = "slot"
	attrPID    = "pid"
	attrTask   = "task"
	attrStatus = "status"
)

// PrettyHandler is a custom slog.Handler that produces human-readable,
// colored output using the shared UI components.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	attrs []slog.Attr
	group string
}

// NewPrettyHandler creates a new PrettyHandler writing to the provided writer.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and outputs the log record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	body, isTask := taskLine(r)
	if !isTask {
		body = r.Message
	}

	var msg string
	var color termenv.Color

	switch {
	case r.Level >= slog.LevelError:
		msg = style.Cross + " " + body
		color = termenv.RGBColor(string(style.Red))
	case r.Level >= slog.LevelWarn:
		msg = style.Warning + " " + body
		color = termenv.RGBColor(string(style.Yellow))
	case r.Level < slog.LevelInfo:
		msg = style.Dot + " " + body
		color = termenv.RGBColor(string(style.Iris))
	default:
		msg = body
		color = termenv.RGBColor(string(style.Slate))
	}

	attrParts := make([]string, 0, len(h.attrs)+r.NumAttrs())
	for _, attr := range h.attrs {
		attrParts = append(attrParts, formatAttr(h.group, attr))
	}
	if !isTask {
		r.Attrs(func(attr slog.Attr) bool {
			attrParts = append(attrParts, formatAttr(h.group, attr))
			return true
		})
	}

	if len(attrParts) > 0 {
		msg += " " + strings.Join(attrParts, " ")
	}

	styled := h.out.String(msg).Foreground(color)
	_, err := h.out.WriteString(styled.String() + "\n")

	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	copy(newAttrs[len(h.attrs):], attrs)

	return &PrettyHandler{
		out:   h.out,
		level: h.level,
		attrs: newAttrs,
		group: h.group,
	}
}

// WithGroup returns a new Handler with the given group name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &PrettyHandler{
		out:   h.out,
		level: h.level,
		attrs: h.attrs,
		group: name,
	}
}

// taskLine renders a task event as "[slot] pid task message with status N",
// the same shape as a task listing. Records without slot, pid and task
// attributes are not task events.
//
//nolint:gocritic // slog.Record is passed by value throughout slog
func taskLine(r slog.Record) (string, bool) {
	var slot, pid, task, status string
	r.Attrs(func(attr slog.Attr) bool {
		switch attr.Key {
		case attrSlot:
			slot = attr.Value.String()
		case attrPID:
			pid = attr.Value.String()
		case attrTask:
			task = attr.Value.String()
		case attrStatus:
			status = attr.Value.String()
		}
		return true
	})
	if slot == "" || pid == "" || task == "" {
		return "", false
	}

	line := fmt.Sprintf("[%s] %s %s %s", slot, pid, task, r.Message)
	if status != "" {
		line += " with status " + status
	}
	return line, true
}

// formatAttr formats a single attribute for output.
// If a group is set, the key is prefixed with the group name.
func formatAttr(group string, attr slog.Attr) string {
	key := attr.Key
	if group != "" {
		key = group + "." + key
	}
	return key + "=" + attr.Value.String()
}
