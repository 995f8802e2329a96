package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
)

// NopLogger returns a logger that discards all output
func NopLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// LogBuffer collects JSON log lines written at debug level and above
type LogBuffer struct {
	buf bytes.Buffer
}

// CaptureLogger returns a debug-level logger writing into a LogBuffer
func CaptureLogger() (*slog.Logger, *LogBuffer) {
	lb := &LogBuffer{}
	logger := slog.New(slog.NewJSONHandler(&lb.buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, lb
}

// Records decodes every line logged so far. Lines that are not JSON are skipped.
func (lb *LogBuffer) Records() []map[string]any {
	var records []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(lb.buf.String()), "\n") {
		var rec map[string]any
		if err := json.Unmarshal([]byte(line), &rec); err == nil {
			records = append(records, rec)
		}
	}
	return records
}

// Find returns the first record with the given message
func (lb *LogBuffer) Find(msg string) (map[string]any, bool) {
	for _, rec := range lb.Records() {
		if rec[slog.MessageKey] == msg {
			return rec, true
		}
	}
	return nil, false
}
