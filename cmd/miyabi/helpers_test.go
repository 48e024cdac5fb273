package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/miyabi-dev/miyabi/internal/config"
	"github.com/miyabi-dev/miyabi/pkg/models"
)

func resetWorkOnFlags(t *testing.T) {
	t.Helper()
	prevTitle, prevDesc, prevFile := workOnTitle, workOnDescription, workOnFile
	t.Cleanup(func() {
		workOnTitle, workOnDescription, workOnFile = prevTitle, prevDesc, prevFile
	})
	workOnTitle, workOnDescription, workOnFile = "", "", ""
}

func TestBuildWorkItem_RequiresTitle(t *testing.T) {
	resetWorkOnFlags(t)

	_, err := buildWorkItem(workOnCmd)
	if !errors.Is(err, errNoTitle) {
		t.Errorf("buildWorkItem error = %v, want errNoTitle", err)
	}
}

func TestBuildWorkItem_FromFlags(t *testing.T) {
	resetWorkOnFlags(t)
	workOnTitle = "Fix login"
	workOnDescription = "Session expires early"

	item, err := buildWorkItem(workOnCmd)
	if err != nil {
		t.Fatalf("buildWorkItem returned error: %v", err)
	}
	if item.Title != "Fix login" {
		t.Errorf("title = %q, want %q", item.Title, "Fix login")
	}
	if item.Status != models.StatusPending {
		t.Errorf("status = %q, want %q", item.Status, models.StatusPending)
	}
}

func TestLoadWorkItemFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "item.yaml")
	content := "issue: 42\ntitle: Add export command\ndescription: CSV export for reports\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	item, err := loadWorkItemFile(path)
	if err != nil {
		t.Fatalf("loadWorkItemFile returned error: %v", err)
	}
	if item.IssueNumber == nil || *item.IssueNumber != 42 {
		t.Errorf("issue number = %v, want 42", item.IssueNumber)
	}
	if item.Title != "Add export command" {
		t.Errorf("title = %q", item.Title)
	}
}

func TestLoadWorkItemFile_BadStatus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "item.yaml")
	if err := os.WriteFile(path, []byte("title: t\nstatus: done\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := loadWorkItemFile(path); err == nil {
		t.Error("loadWorkItemFile should reject an unknown status")
	}
}

func TestLoadWorkItemFile_Missing(t *testing.T) {
	if _, err := loadWorkItemFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("loadWorkItemFile should fail on a missing file")
	}
}

func TestFinalStatus(t *testing.T) {
	success := models.ExecutionReport{Outcome: models.AgentOutcome{Success: true}}
	failure := models.ExecutionReport{Outcome: models.AgentOutcome{Success: false}}

	tests := []struct {
		name    string
		runErr  error
		reports []models.ExecutionReport
		want    models.WorkItemStatus
	}{
		{"all success completes", nil, []models.ExecutionReport{success, success}, models.StatusCompleted},
		{"any failure fails", nil, []models.ExecutionReport{success, failure}, models.StatusFailed},
		{"run error fails", errors.New("boom"), nil, models.StatusFailed},
		{"empty reports complete", nil, nil, models.StatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := finalStatus(tt.runErr, tt.reports); got != tt.want {
				t.Errorf("finalStatus = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestContextFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Project.Name = "demo"
	cfg.Project.DeviceIdentifier = "workstation-1"

	ctx := contextFromConfig(cfg)
	if got := ctx.Get("project"); got != "demo" {
		t.Errorf("project = %q, want %q", got, "demo")
	}
	if got := ctx.Get("device"); got != "workstation-1" {
		t.Errorf("device = %q, want %q", got, "workstation-1")
	}
}
