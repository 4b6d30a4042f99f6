package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	var buf bytes.Buffer

	New(&buf, false).Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug line written at info level: %q", buf.String())
	}

	New(&buf, true).Debug("shown", "round", 3)
	out := buf.String()
	if !strings.Contains(out, "shown") || !strings.Contains(out, "round=3") {
		t.Errorf("debug output = %q", out)
	}
	if !strings.Contains(out, Prefix) {
		t.Errorf("output %q is missing the prefix", out)
	}
}

func TestOpenAppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "duosnake.log")

	logger, closer, err := Open(path, false)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	logger.Info("round finished", "winner", "P1")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "winner=P1") {
		t.Errorf("log file = %q", data)
	}
}

func TestOpenEmptyPathDiscards(t *testing.T) {
	logger, closer, err := Open("", true)
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("nowhere")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}
}
