package actionlog

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestInfo(t *testing.T) {
	entry := Info("work_on", "Issue #42 handled with 4 tasks")

	if entry.Action != "WORK_ON" {
		t.Errorf("action = %q, want %q", entry.Action, "WORK_ON")
	}
	if entry.Detail != "Issue #42 handled with 4 tasks" {
		t.Errorf("detail = %q", entry.Detail)
	}
	if _, err := time.Parse(time.RFC3339, entry.Timestamp); err != nil {
		t.Errorf("timestamp %q is not RFC 3339: %v", entry.Timestamp, err)
	}
}

func TestAppend(t *testing.T) {
	logsDir := filepath.Join(t.TempDir(), "logs")

	if err := Append(logsDir, Info("init", "Initialized project")); err != nil {
		t.Fatalf("first Append returned error: %v", err)
	}
	if err := Append(logsDir, Info("work_on", "handled")); err != nil {
		t.Fatalf("second Append returned error: %v", err)
	}

	file, err := os.Open(filepath.Join(logsDir, FileName))
	if err != nil {
		t.Fatalf("open log file: %v", err)
	}
	defer file.Close()

	var entries []Action
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var entry Action
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Fatalf("log line is not valid JSON: %v", err)
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		t.Fatal(err)
	}

	if len(entries) != 2 {
		t.Fatalf("log entry count = %d, want 2", len(entries))
	}
	if entries[0].Action != "INIT" {
		t.Errorf("first action = %q, want INIT", entries[0].Action)
	}
	if entries[1].Action != "WORK_ON" {
		t.Errorf("second action = %q, want WORK_ON", entries[1].Action)
	}
}
