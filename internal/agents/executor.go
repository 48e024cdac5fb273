// Package agents implements the task orchestration core: the executor
// contract every agent satisfies, the registry that resolves an agent
// kind to a concrete executor, and the coordinator that decomposes a
// work item into a plan and drives its execution.
package agents

import (
	"time"

	"github.com/miyabi-dev/miyabi/pkg/models"
)

// Context is the ambient environment passed into every execution, e.g.
// project name and device identifier. Executors treat it as read-only;
// the caller owns it for the duration of one orchestration call.
type Context struct {
	Environment map[string]string
}

// NewContext creates an empty context.
func NewContext() *Context {
	return &Context{Environment: make(map[string]string)}
}

// Get returns the value for a key, or "" if the key is absent.
func (c *Context) Get(key string) string {
	if c == nil || c.Environment == nil {
		return ""
	}
	return c.Environment[key]
}

// Executor is the capability every agent implements. Run must produce
// exactly one outcome whose TaskID equals the task's ID, or return an
// error. Failures are returned, never panicked, so the caller can decide
// whether to continue dispatching remaining tasks.
type Executor interface {
	// Kind identifies which registry slot this executor fills.
	Kind() models.AgentKind
	// Name is a stable display label for logs and UI.
	Name() string
	// Run executes one task against the given context.
	Run(task models.AgentTask, ctx *Context) (models.AgentOutcome, error)
}

// SuccessOutcome builds a successful outcome for the given task.
func SuccessOutcome(task models.AgentTask, summary string) models.AgentOutcome {
	return models.AgentOutcome{
		TaskID:    task.ID,
		Success:   true,
		Summary:   summary,
		CreatedAt: time.Now().UTC(),
	}
}

// FailureOutcome builds a failed outcome for the given task.
func FailureOutcome(task models.AgentTask, summary string) models.AgentOutcome {
	return models.AgentOutcome{
		TaskID:    task.ID,
		Success:   false,
		Summary:   summary,
		CreatedAt: time.Now().UTC(),
	}
}
