package agents

import (
	"testing"

	"github.com/miyabi-dev/miyabi/pkg/models"
)

func TestSuccessOutcome(t *testing.T) {
	task := models.NewTask("Implement solution", "Generate code changes", models.AgentCodeGen)
	outcome := SuccessOutcome(task, "all changes applied")

	if outcome.TaskID != task.ID {
		t.Errorf("outcome task ID = %q, want %q", outcome.TaskID, task.ID)
	}
	if !outcome.Success {
		t.Error("SuccessOutcome should report success")
	}
	if outcome.Summary != "all changes applied" {
		t.Errorf("outcome summary = %q, want %q", outcome.Summary, "all changes applied")
	}
	if len(outcome.Artifacts) != 0 {
		t.Errorf("outcome artifacts = %d, want none", len(outcome.Artifacts))
	}
	if outcome.CreatedAt.IsZero() {
		t.Error("outcome CreatedAt should be set")
	}
}

func TestFailureOutcome(t *testing.T) {
	task := models.NewTask("Run verification suite", "Execute tests", models.AgentTest)
	outcome := FailureOutcome(task, "3 tests failing")

	if outcome.TaskID != task.ID {
		t.Errorf("outcome task ID = %q, want %q", outcome.TaskID, task.ID)
	}
	if outcome.Success {
		t.Error("FailureOutcome should not report success")
	}
	if outcome.Summary != "3 tests failing" {
		t.Errorf("outcome summary = %q, want %q", outcome.Summary, "3 tests failing")
	}
}

func TestContext_Get(t *testing.T) {
	ctx := NewContext()
	ctx.Environment["project"] = "miyabi"

	if got := ctx.Get("project"); got != "miyabi" {
		t.Errorf("Get(project) = %q, want %q", got, "miyabi")
	}
	if got := ctx.Get("missing"); got != "" {
		t.Errorf("Get(missing) = %q, want empty string", got)
	}

	var nilCtx *Context
	if got := nilCtx.Get("project"); got != "" {
		t.Errorf("nil context Get = %q, want empty string", got)
	}
}
