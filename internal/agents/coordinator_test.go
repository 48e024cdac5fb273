package agents

import (
	"strings"
	"testing"

	"github.com/miyabi-dev/miyabi/pkg/models"
)

func testWorkItem() models.WorkItem {
	issue := int64(42)
	return models.WorkItem{
		IssueNumber: &issue,
		Title:       "Test feature",
		Description: "Implement test feature",
		Status:      models.StatusPending,
	}
}

func TestCoordinator_BuildPlan(t *testing.T) {
	coordinator := NewCoordinator()
	plan := coordinator.BuildPlan(testWorkItem())

	if len(plan) != 4 {
		t.Fatalf("plan length = %d, want 4", len(plan))
	}

	wantKinds := []models.AgentKind{
		models.AgentIssue,
		models.AgentCodeGen,
		models.AgentTest,
		models.AgentReview,
	}
	wantPriorities := []models.TaskPriority{
		models.PriorityHigh,
		models.PriorityHigh,
		models.PriorityMedium,
		models.PriorityMedium,
	}
	wantTitles := []string{
		"Analyze issue context",
		"Implement solution",
		"Run verification suite",
		"Review code changes",
	}

	for i, task := range plan {
		if task.Agent != wantKinds[i] {
			t.Errorf("plan[%d].Agent = %q, want %q", i, task.Agent, wantKinds[i])
		}
		if task.Priority != wantPriorities[i] {
			t.Errorf("plan[%d].Priority = %q, want %q", i, task.Priority, wantPriorities[i])
		}
		if task.Title != wantTitles[i] {
			t.Errorf("plan[%d].Title = %q, want %q", i, task.Title, wantTitles[i])
		}
	}
}

func TestCoordinator_BuildPlanInterpolatesTitle(t *testing.T) {
	coordinator := NewCoordinator()
	item := testWorkItem()
	plan := coordinator.BuildPlan(item)

	if !strings.Contains(plan[0].Description, item.Title) {
		t.Errorf("analysis task description %q should contain work item title %q",
			plan[0].Description, item.Title)
	}
}

func TestCoordinator_BuildPlanUniqueTaskIDs(t *testing.T) {
	coordinator := NewCoordinator()
	plan := coordinator.BuildPlan(testWorkItem())

	seen := make(map[string]bool)
	for _, task := range plan {
		if task.ID == "" {
			t.Error("plan task has empty ID")
		}
		if seen[task.ID] {
			t.Errorf("duplicate task ID in plan: %s", task.ID)
		}
		seen[task.ID] = true
	}
}

func TestCoordinator_Run(t *testing.T) {
	coordinator := NewCoordinator()
	task := models.NewTask("Implement solution", "Generate code changes", models.AgentCodeGen)

	outcome, err := coordinator.Run(task, NewContext())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !outcome.Success {
		t.Error("Run outcome should report success")
	}
	if outcome.TaskID != task.ID {
		t.Errorf("outcome task ID = %q, want %q", outcome.TaskID, task.ID)
	}
	if !strings.Contains(outcome.Summary, "queued for specialist agents") {
		t.Errorf("outcome summary = %q, want intake acceptance message", outcome.Summary)
	}
}

func TestCoordinator_Orchestrate(t *testing.T) {
	coordinator := NewCoordinator()
	item := testWorkItem()

	reports, err := coordinator.Orchestrate(item, NewContext())
	if err != nil {
		t.Fatalf("Orchestrate returned error: %v", err)
	}

	if len(reports) != 4 {
		t.Fatalf("report count = %d, want 4", len(reports))
	}

	wantTitles := []string{
		"Analyze issue context",
		"Implement solution",
		"Run verification suite",
		"Review code changes",
	}
	for i, report := range reports {
		if report.Task.Title != wantTitles[i] {
			t.Errorf("reports[%d].Task.Title = %q, want %q", i, report.Task.Title, wantTitles[i])
		}
		if !report.Outcome.Success {
			t.Errorf("reports[%d] outcome should report success", i)
		}
		if report.Outcome.TaskID != report.Task.ID {
			t.Errorf("reports[%d] outcome task ID = %q, want %q",
				i, report.Outcome.TaskID, report.Task.ID)
		}
	}
}

func TestCoordinator_OrchestrateIndependentCalls(t *testing.T) {
	coordinator := NewCoordinator()
	item := testWorkItem()
	ctx := NewContext()

	first, err := coordinator.Orchestrate(item, ctx)
	if err != nil {
		t.Fatalf("first Orchestrate returned error: %v", err)
	}
	second, err := coordinator.Orchestrate(item, ctx)
	if err != nil {
		t.Fatalf("second Orchestrate returned error: %v", err)
	}

	// Each call builds a fresh plan, so task IDs must not repeat.
	for i := range first {
		if first[i].Task.ID == second[i].Task.ID {
			t.Errorf("task ID %s reused across orchestration calls", first[i].Task.ID)
		}
	}
}
