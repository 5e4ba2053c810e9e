package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpenAndClose(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "analysis_results.log")

	sink, err := Open(path, Options{Level: LevelInfo, Format: FormatText})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	sink.Result("word frequency analysis", "unique_words", 42)
	sink.Notable("verse value is a multiple of 19", "surah", "1", "ayah", "1")
	if err := sink.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "class="+ClassResult) {
		t.Errorf("log output missing result class: %s", out)
	}
	if !strings.Contains(out, "class="+ClassNotable) {
		t.Errorf("log output missing notable-pattern class: %s", out)
	}
	if !strings.Contains(out, "run_id="+sink.RunID()) {
		t.Errorf("log output missing run ID %s: %s", sink.RunID(), out)
	}
}

func TestOpenAppends(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "results.log")

	first, err := Open(path, Options{})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	first.Result("first run")
	first.Close()

	second, err := Open(path, Options{})
	if err != nil {
		t.Fatalf("Open() second error = %v", err)
	}
	second.Result("second run")
	second.Close()

	data, _ := os.ReadFile(path)
	out := string(data)
	if !strings.Contains(out, "first run") || !strings.Contains(out, "second run") {
		t.Errorf("append-only sink lost records: %s", out)
	}
	if first.RunID() == second.RunID() {
		t.Error("each run should get a distinct run ID")
	}
}

func TestMessageClasses(t *testing.T) {
	var buf bytes.Buffer
	sink := NewWriter(&buf, Options{Level: LevelDebug, Format: FormatJSON})

	sink.Result("result message")
	sink.Notable("notable message")
	sink.Warn("warning message")

	out := buf.String()
	for _, want := range []string{
		`"class":"result"`,
		`"class":"notable-pattern"`,
		`"notable":true`,
		"warning message",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %s", want, out)
		}
	}
}

func TestDiscardSink(t *testing.T) {
	sink := NewDiscard()
	// Must be safe with no file behind it.
	sink.Result("dropped")
	sink.Notable("dropped")
	if err := sink.Close(); err != nil {
		t.Errorf("Close() on discard sink error = %v", err)
	}
	if sink.RunID() == "" {
		t.Error("discard sink should still carry a run ID")
	}
}
