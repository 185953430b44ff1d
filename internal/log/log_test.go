package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type testLogger struct {
	entries []string
}

func (l *testLogger) Info(_ map[string]any, msg string)  { l.entries = append(l.entries, "INFO:"+msg) }
func (l *testLogger) Error(_ map[string]any, msg string) { l.entries = append(l.entries, "ERROR:"+msg) }
func (l *testLogger) Debug(_ map[string]any, msg string) { l.entries = append(l.entries, "DEBUG:"+msg) }
func (l *testLogger) Warn(_ map[string]any, msg string)  { l.entries = append(l.entries, "WARN:"+msg) }
func (l *testLogger) Sync() error                        { return nil }

func TestSetLoggerAndGlobalLogging(t *testing.T) {
	orig := GetLogger()
	defer SetLogger(orig)

	tlog := &testLogger{}
	SetLogger(tlog)

	Info(nil, "info msg")
	Error(nil, "error msg")
	Debug(nil, "debug msg")
	Warn(nil, "warn msg")

	expected := []string{
		"INFO:info msg",
		"ERROR:error msg",
		"DEBUG:debug msg",
		"WARN:warn msg",
	}
	if len(tlog.entries) != len(expected) {
		t.Fatalf("expected %d entries, got %d", len(expected), len(tlog.entries))
	}
	for i, want := range expected {
		if tlog.entries[i] != want {
			t.Errorf("entry %d = %q, want %q", i, tlog.entries[i], want)
		}
	}
}

func TestConfigure_WritesToFile(t *testing.T) {
	orig := GetLogger()
	defer SetLogger(orig)

	path := filepath.Join(t.TempDir(), "roamstats.log")
	if err := Configure("prod", "debug", path); err != nil {
		t.Fatalf("Configure() error: %v", err)
	}
	Info(map[string]any{"metric": "pages"}, "loaded")
	_ = Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `"metric":"pages"`) {
		t.Errorf("log output missing field: %s", data)
	}
}

func TestConfigure_InvalidLevel(t *testing.T) {
	orig := GetLogger()
	defer SetLogger(orig)

	if err := Configure("prod", "loud", ""); err == nil {
		t.Error("expected error for invalid level")
	}
}

func TestNoopLogger(t *testing.T) {
	l := NewNoopLogger()
	l.Info(map[string]any{"a": 1}, "ignored")
	if err := l.Sync(); err != nil {
		t.Errorf("Sync() = %v", err)
	}
}
