// Package logging provides the console slog handler used by the CLI.
//
// Records are printed as "LEVEL message key=value ...". The level label is
// styled with lipgloss; styling is dropped automatically when the writer
// is not a terminal.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

type Handler struct {
	mu     *sync.Mutex
	w      io.Writer
	level  slog.Leveler
	styles map[slog.Level]lipgloss.Style
	attrs  string
	group  string
}

// New returns a logger writing to w at the given level.
func New(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(NewHandler(w, level))
}

func NewHandler(w io.Writer, level slog.Leveler) *Handler {
	if level == nil {
		level = slog.LevelInfo
	}
	r := lipgloss.NewRenderer(w)
	return &Handler{
		mu:    &sync.Mutex{},
		w:     w,
		level: level,
		styles: map[slog.Level]lipgloss.Style{
			slog.LevelDebug: r.NewStyle().Faint(true),
			slog.LevelInfo:  r.NewStyle().Foreground(lipgloss.Color("12")),
			slog.LevelWarn:  r.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
			slog.LevelError: r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		},
	}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(h.label(r.Level))
	b.WriteByte(' ')
	b.WriteString(r.Message)
	b.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, h.group, a)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	var b strings.Builder
	b.WriteString(h.attrs)
	for _, a := range attrs {
		appendAttr(&b, h.group, a)
	}
	next := *h
	next.attrs = b.String()
	return &next
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.group = h.group + name + "."
	return &next
}

func (h *Handler) label(level slog.Level) string {
	text := level.String()
	var style lipgloss.Style
	switch {
	case level >= slog.LevelError:
		style = h.styles[slog.LevelError]
	case level >= slog.LevelWarn:
		style = h.styles[slog.LevelWarn]
	case level >= slog.LevelInfo:
		style = h.styles[slog.LevelInfo]
	default:
		style = h.styles[slog.LevelDebug]
	}
	return style.Render(text)
}

func appendAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		group := a.Value.Group()
		if len(group) == 0 {
			return
		}
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range group {
			appendAttr(b, prefix, ga)
		}
		return
	}

	b.WriteByte(' ')
	b.WriteString(prefix)
	b.WriteString(a.Key)
	b.WriteByte('=')
	b.WriteString(formatValue(a.Value.String()))
}

func formatValue(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}
