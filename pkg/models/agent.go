// Package models defines the shared data types that flow through the
// miyabi orchestration pipeline.
package models

import "time"

// AgentKind identifies which specialist executor handles a task.
// It is also the registry lookup key, so it must be unique per registry.
type AgentKind string

const (
	// AgentCoordinator decomposes work items and drives plan execution.
	AgentCoordinator AgentKind = "coordinator"
	// AgentCodeGen generates code changes.
	AgentCodeGen AgentKind = "codegen"
	// AgentReview reviews generated changes.
	AgentReview AgentKind = "review"
	// AgentTest runs the verification suite.
	AgentTest AgentKind = "test"
	// AgentDeploy handles deployment steps.
	AgentDeploy AgentKind = "deploy"
	// AgentIssue analyzes issue context.
	AgentIssue AgentKind = "issue"
)

// Valid returns true if the kind is a known value.
func (k AgentKind) Valid() bool {
	switch k {
	case AgentCoordinator, AgentCodeGen, AgentReview, AgentTest, AgentDeploy, AgentIssue:
		return true
	default:
		return false
	}
}

// Artifact is a named byproduct of task execution, e.g. a generated file
// or diff. Current agent implementations produce none; the type is carried
// so future executors can attach real output.
type Artifact struct {
	// Name is the artifact's display name.
	Name string `json:"name"`
	// Path is where the artifact is stored, if anywhere.
	Path string `json:"path,omitempty"`
	// Description explains what the artifact contains.
	Description string `json:"description,omitempty"`
}

// AgentOutcome is the result of executing one AgentTask.
// It is created exactly once per execution and never modified afterward.
type AgentOutcome struct {
	// TaskID references the task this outcome was produced from.
	// It must equal the ID of the originating AgentTask.
	TaskID string `json:"task_id"`
	// Success reports whether the task completed successfully.
	Success bool `json:"success"`
	// Summary is a human-readable description of what happened.
	Summary string `json:"summary"`
	// Artifacts lists byproducts produced during execution.
	Artifacts []Artifact `json:"artifacts,omitempty"`
	// CreatedAt is when the outcome was produced.
	CreatedAt time.Time `json:"created_at"`
}

// ExecutionReport pairs a task with the outcome it produced. A slice of
// reports preserves dispatch order, not priority order.
type ExecutionReport struct {
	Task    AgentTask    `json:"task"`
	Outcome AgentOutcome `json:"outcome"`
}
