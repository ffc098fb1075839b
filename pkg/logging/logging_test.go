package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestHandlerFormatsPlainText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo)

	logger.Info("current name", "name", "a-name", "dir", "/tmp/my project")

	want := "INFO current name name=a-name dir=\"/tmp/my project\"\n"
	if got := buf.String(); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestHandlerFiltersByLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	level := new(slog.LevelVar)
	logger := New(&buf, level)

	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug should be filtered at info level, got %q", buf.String())
	}

	level.Set(slog.LevelDebug)
	logger.Debug("shown")
	if !strings.Contains(buf.String(), "DEBUG shown") {
		t.Fatalf("debug should be logged after lowering level, got %q", buf.String())
	}
}

func TestHandlerAttrsAndGroups(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(&buf, nil).With("command", "rename").WithGroup("file")

	logger.Warn("skipped", "path", "pyproject.toml", slog.Group("size", "bytes", 12))

	want := "WARN skipped command=rename file.path=pyproject.toml file.size.bytes=12\n"
	if got := buf.String(); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestHandlerWritesNoEscapeCodesToBuffers(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	New(&buf, slog.LevelDebug).Error("failed")

	if strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("non-terminal output should not be styled, got %q", buf.String())
	}
}
