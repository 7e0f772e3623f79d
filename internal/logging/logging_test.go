package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWithoutPathIsNop(t *testing.T) {
	logger, err := New("", "debug")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if logger.Core().Enabled(-1) {
		t.Fatal("expected a disabled no-op logger")
	}
}

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tt.log")
	logger, err := New(path, "debug")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	logger.Debug("hello")
	_ = logger.Sync()

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(raw)
	if !strings.Contains(out, `"msg":"hello"`) || !strings.Contains(out, `"logger":"tasktracker"`) {
		t.Fatalf("unexpected log output: %q", out)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "x.log"), "loud"); err == nil {
		t.Fatal("expected invalid level error")
	}
}
