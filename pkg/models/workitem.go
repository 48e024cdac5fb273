package models

// WorkItemStatus represents the lifecycle state of a work item.
type WorkItemStatus string

const (
	// StatusPending indicates the work item has not started.
	StatusPending WorkItemStatus = "pending"
	// StatusInProgress indicates the work item is being worked on.
	StatusInProgress WorkItemStatus = "in_progress"
	// StatusCompleted indicates all tasks finished successfully.
	StatusCompleted WorkItemStatus = "completed"
	// StatusFailed indicates the work item could not be completed.
	StatusFailed WorkItemStatus = "failed"
)

// Valid returns true if the status is a known value.
func (s WorkItemStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusFailed:
		return true
	default:
		return false
	}
}

// CanTransition checks whether a status transition is allowed:
// pending -> in_progress -> {completed, failed}.
func (s WorkItemStatus) CanTransition(to WorkItemStatus) bool {
	switch s {
	case StatusPending:
		return to == StatusInProgress
	case StatusInProgress:
		return to == StatusCompleted || to == StatusFailed
	default:
		return false
	}
}

// WorkItem is the top-level unit of intake: one issue or feature request
// to resolve. Status transitions are driven by the caller, not by the
// orchestration core.
type WorkItem struct {
	// IssueNumber is the external issue reference, if any.
	IssueNumber *int64 `json:"issue_number,omitempty" yaml:"issue"`
	// Title is the short description of the work item.
	Title string `json:"title" yaml:"title"`
	// Description provides detailed information about the work item.
	Description string `json:"description,omitempty" yaml:"description"`
	// Status is the current lifecycle state.
	Status WorkItemStatus `json:"status" yaml:"status"`
	// Tasks holds pre-existing tasks attached to the item, if any.
	// The coordinator builds its own plan and does not consume these.
	Tasks []AgentTask `json:"tasks,omitempty" yaml:"-"`
}
