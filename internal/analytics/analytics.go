// ABOUTME: Local analytics event sink writing JSON lines.
// ABOUTME: Fail-open: event logging must never break a user command.
package analytics

import (
	"encoding/json"
	"os"
	"time"

	"github.com/google/uuid"
)

// Event names emitted by the application.
const (
	EventCalculationCompleted = "calculation_completed"
	EventCalculationError     = "calculation_error"
	EventCalculationDeleted   = "calculation_deleted"
	EventHistoryViewed        = "history_viewed"
)

// Event is one analytics record.
type Event struct {
	ID     uuid.UUID         `json:"id"`
	Name   string            `json:"name"`
	At     time.Time         `json:"at"`
	Params map[string]string `json:"params,omitempty"`
}

// Logger appends events to a JSONL file when enabled.
// A nil Logger is a valid no-op sink.
type Logger struct {
	path    string
	enabled bool
}

// NewLogger creates a Logger writing to path. When enabled is false every
// Log call is a no-op, which is how the analytics opt-out works.
func NewLogger(path string, enabled bool) *Logger {
	return &Logger{path: path, enabled: enabled}
}

// Log appends one event. Failures are swallowed: analytics is best-effort
// and a full disk or missing directory must not surface into user commands.
func (l *Logger) Log(name string, params map[string]string) {
	if l == nil || !l.enabled {
		return
	}

	e := Event{
		ID:     uuid.New(),
		Name:   name,
		At:     time.Now(),
		Params: params,
	}

	data, err := json.Marshal(e)
	if err != nil {
		return
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	_, _ = f.Write(append(data, '\n'))
}
