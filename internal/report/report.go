// Package report writes orchestration reports into the workspace
// reports directory.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/miyabi-dev/miyabi/pkg/models"
)

// Document is the serialized form of one orchestration run.
type Document struct {
	// GeneratedAt is when the report was written.
	GeneratedAt time.Time `json:"generated_at"`
	// WorkItem is the item that was orchestrated.
	WorkItem models.WorkItem `json:"work_item"`
	// Reports holds one entry per executed task, in dispatch order.
	Reports []models.ExecutionReport `json:"reports"`
	// Succeeded is how many outcomes reported success.
	Succeeded int `json:"succeeded"`
}

// Write serializes an orchestration run to a timestamped JSON file in
// reportsDir and returns the file path.
func Write(reportsDir string, item models.WorkItem, reports []models.ExecutionReport) (string, error) {
	if err := os.MkdirAll(reportsDir, 0755); err != nil {
		return "", fmt.Errorf("creating reports directory: %w", err)
	}

	now := time.Now().UTC()
	doc := Document{
		GeneratedAt: now,
		WorkItem:    item,
		Reports:     reports,
	}
	for _, r := range reports {
		if r.Outcome.Success {
			doc.Succeeded++
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding report: %w", err)
	}

	path := filepath.Join(reportsDir, fmt.Sprintf("report-%s.json", now.Format("20060102-150405")))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing report %s: %w", path, err)
	}
	return path, nil
}

// Read loads a report document from disk.
func Read(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report %s: %w", path, err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding report %s: %w", path, err)
	}
	return &doc, nil
}
