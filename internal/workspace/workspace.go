// Package workspace handles the .miyabi directory layout and workspace
// detection.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// Dir is the marker directory that identifies a miyabi workspace root.
const Dir = ".miyabi"

// ProjectPaths holds the filesystem layout of one workspace.
type ProjectPaths struct {
	// Root is the workspace root directory.
	Root string
	// Config is the .miyabi directory under the root.
	Config string
	// Logs is where action logs are written.
	Logs string
	// Reports is where orchestration reports are written.
	Reports string
}

// NewProjectPaths builds the standard layout for a workspace root.
func NewProjectPaths(root string) ProjectPaths {
	config := filepath.Join(root, Dir)
	return ProjectPaths{
		Root:    root,
		Config:  config,
		Logs:    filepath.Join(config, "logs"),
		Reports: filepath.Join(config, "reports"),
	}
}

// Detect walks upward from start looking for a directory containing
// .miyabi. It returns the workspace root and true when found.
func Detect(start string) (string, bool) {
	dir := start
	for {
		if info, err := os.Stat(filepath.Join(dir, Dir)); err == nil && info.IsDir() {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// DetectOr returns the detected workspace root, or fallback when no
// workspace is found above start.
func DetectOr(start, fallback string) string {
	if root, ok := Detect(start); ok {
		return root
	}
	return fallback
}

// EnsureStructure creates the workspace directory layout.
func EnsureStructure(paths ProjectPaths) error {
	for _, dir := range []string{paths.Config, paths.Logs, paths.Reports} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	return nil
}

// ListRecentReports returns report file paths sorted newest first by
// modification time. A missing reports directory yields an empty list.
func ListRecentReports(reportsDir string) ([]string, error) {
	entries, err := os.ReadDir(reportsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", reportsDir, err)
	}

	type reportFile struct {
		path    string
		modTime time.Time
	}

	files := make([]reportFile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, reportFile{
			path:    filepath.Join(reportsDir, entry.Name()),
			modTime: info.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].modTime.After(files[j].modTime)
	})

	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.path
	}
	return paths, nil
}
