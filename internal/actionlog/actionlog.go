// Package actionlog appends CLI actions to a JSON-lines log file under
// the workspace logs directory. The orchestration core never writes
// here; the log is a side-channel sink for the command layer.
package actionlog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileName is the log file name inside the logs directory.
const FileName = "actions.log"

// Action is one logged CLI action.
type Action struct {
	// Timestamp is when the action happened, RFC 3339.
	Timestamp string `json:"timestamp"`
	// Action is the uppercased action name, e.g. INIT or WORK_ON.
	Action string `json:"action"`
	// Detail is an optional human-readable description.
	Detail string `json:"detail,omitempty"`
}

// Info builds an action entry stamped with the current time.
func Info(action, detail string) Action {
	return Action{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Action:    strings.ToUpper(action),
		Detail:    detail,
	}
}

// Append writes one entry to the action log, creating the logs directory
// and file as needed.
func Append(logsDir string, entry Action) error {
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("creating logs directory: %w", err)
	}

	path := filepath.Join(logsDir, FileName)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening log file %s: %w", path, err)
	}
	defer file.Close()

	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encoding log entry: %w", err)
	}
	if _, err := file.Write(append(payload, '\n')); err != nil {
		return fmt.Errorf("writing log entry: %w", err)
	}
	return nil
}
