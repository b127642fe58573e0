package logging

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestNewLoggerWithServiceStampsEveryEntry(t *testing.T) {
	logger := NewLoggerWithService("yeoman")
	var buf bytes.Buffer
	logger.SetOutput(&buf)

	logger.Info("plain entry")
	logger.WithField("request_id", "r1").Warn("entry with fields")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d", len(lines))
	}
	for _, line := range lines {
		var entry map[string]interface{}
		if err := json.Unmarshal(line, &entry); err != nil {
			t.Fatalf("log line is not JSON: %v", err)
		}
		if entry["service"] != "yeoman" {
			t.Fatalf("service field missing: %s", line)
		}
	}
}
