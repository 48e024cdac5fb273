package models

import "github.com/google/uuid"

// TaskPriority is an ordered importance hint for a task.
// It is advisory: no scheduler reorders by priority yet.
type TaskPriority string

const (
	// PriorityCritical is the highest priority.
	PriorityCritical TaskPriority = "critical"
	// PriorityHigh indicates important work.
	PriorityHigh TaskPriority = "high"
	// PriorityMedium is the default priority.
	PriorityMedium TaskPriority = "medium"
	// PriorityLow is the lowest priority.
	PriorityLow TaskPriority = "low"
)

// Valid returns true if the priority is a known value.
func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// Rank returns a numeric weight for ordering, higher is more urgent.
// Unknown priorities rank below PriorityLow.
func (p TaskPriority) Rank() int {
	switch p {
	case PriorityCritical:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// AgentTask is a unit of dispatchable work. Tasks are immutable once
// created and consumed by exactly one execution attempt per dispatch.
type AgentTask struct {
	// ID is the process-unique identifier, generated at creation.
	ID string `json:"id"`
	// Title is the short description of the task.
	Title string `json:"title"`
	// Description provides detailed information about the task.
	Description string `json:"description,omitempty"`
	// Agent is the specialist kind assigned to execute this task.
	Agent AgentKind `json:"agent"`
	// Priority is the importance hint for this task.
	Priority TaskPriority `json:"priority"`
}

// NewTask creates a task with a fresh unique ID and the default priority.
func NewTask(title, description string, agent AgentKind) AgentTask {
	return AgentTask{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Agent:       agent,
		Priority:    PriorityMedium,
	}
}
