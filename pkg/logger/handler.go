package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

type textHandler struct {
	writer      io.Writer
	attrs       []slog.Attr
	groups      []string
	isColored   bool
	replaceAttr func(groups []string, a slog.Attr) slog.Attr
	level       slog.Level
}

func newTextHandler(
	writer io.Writer,
	isColored bool,
	replaceAttr func(groups []string, a slog.Attr) slog.Attr,
	level slog.Level,
) slog.Handler {
	return &textHandler{
		writer:      writer,
		isColored:   isColored,
		replaceAttr: replaceAttr,
		level:       level,
	}
}

func (h *textHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *textHandler) Handle(_ context.Context, r slog.Record) error {
	levelStr := getLevelName(r.Level)

	if h.replaceAttr != nil {
		levelAttr := h.replaceAttr(h.groups, slog.String(slog.LevelKey, levelStr))
		levelStr = levelAttr.Value.String()
	}

	l := levelStr
	if h.isColored {
		l = colorize(levelStr, r.Level)
	}

	_, _ = fmt.Fprintf(h.writer, "%s %s", l, r.Message)

	for _, a := range h.attrs {
		h.writeAttr(a)
	}

	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(a)
		return true
	})

	_, _ = fmt.Fprintln(h.writer)
	return nil
}

func (h *textHandler) writeAttr(a slog.Attr) {
	if h.replaceAttr != nil {
		a = h.replaceAttr(h.groups, a)
	}
	if a.Key == "" || a.Equal(slog.Attr{}) {
		return
	}
	_, _ = fmt.Fprintf(h.writer, " %s=%q", a.Key, a.Value)
}

func (h *textHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	cp := *h
	cp.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	cp.attrs = append(cp.attrs, h.attrs...)
	cp.attrs = append(cp.attrs, attrs...)
	return &cp
}

func (h *textHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	cp := *h
	cp.groups = make([]string, 0, len(h.groups)+1)
	cp.groups = append(cp.groups, h.groups...)
	cp.groups = append(cp.groups, name)
	return &cp
}

func colorize(levelStr string, level slog.Level) string {
	const (
		reset  = "\033[0m"
		blue   = "\033[34m"
		cyan   = "\033[36m"
		green  = "\033[32m"
		yellow = "\033[33m"
		red    = "\033[31m"
		white  = "\033[37m"
		redBg  = "\033[41m"
	)

	switch {
	case level >= levelCritical:
		return redBg + white + levelStr + reset
	case level >= slog.LevelError:
		return red + levelStr + reset
	case level >= slog.LevelWarn:
		return yellow + levelStr + reset
	case level >= slog.LevelInfo:
		return green + levelStr + reset
	case level >= slog.LevelDebug:
		return blue + levelStr + reset
	default:
		return cyan + levelStr + reset
	}
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
