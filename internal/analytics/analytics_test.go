// ABOUTME: Tests for the analytics event sink.
// ABOUTME: Verifies the opt-out no-op, appended lines, and swallowed failures.
package analytics

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestLogAppendsEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.jsonl")
	logger := NewLogger(path, true)

	logger.Log(EventCalculationCompleted, map[string]string{"zone": "aerobic"})
	logger.Log(EventHistoryViewed, nil)

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("events file not written: %v", err)
	}
	defer f.Close()

	var events []Event
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e Event
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			t.Fatalf("line does not parse: %v", err)
		}
		events = append(events, e)
	}

	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Name != EventCalculationCompleted {
		t.Errorf("first event = %s, want %s", events[0].Name, EventCalculationCompleted)
	}
	if events[0].Params["zone"] != "aerobic" {
		t.Errorf("params not recorded: %v", events[0].Params)
	}
	if events[0].ID == events[1].ID {
		t.Error("events share an id")
	}
}

func TestLogDisabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.jsonl")
	logger := NewLogger(path, false)

	logger.Log(EventCalculationCompleted, nil)

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("disabled logger should not create the events file")
	}
}

func TestLogSwallowsWriteFailures(t *testing.T) {
	// Missing parent directory: Log must not panic or surface the error.
	logger := NewLogger(filepath.Join(t.TempDir(), "missing", "events.jsonl"), true)
	logger.Log(EventCalculationError, nil)
}

func TestNilLogger(t *testing.T) {
	var logger *Logger
	logger.Log(EventCalculationCompleted, nil)
}
