package models

import "testing"

func TestTaskPriority_Valid(t *testing.T) {
	tests := []struct {
		name     string
		priority TaskPriority
		want     bool
	}{
		{"critical is valid", PriorityCritical, true},
		{"high is valid", PriorityHigh, true},
		{"medium is valid", PriorityMedium, true},
		{"low is valid", PriorityLow, true},
		{"empty string is invalid", TaskPriority(""), false},
		{"unknown priority is invalid", TaskPriority("urgent"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.priority.Valid(); got != tt.want {
				t.Errorf("TaskPriority(%q).Valid() = %v, want %v", tt.priority, got, tt.want)
			}
		})
	}
}

func TestTaskPriority_RankOrdering(t *testing.T) {
	ordered := []TaskPriority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}
	for i := 1; i < len(ordered); i++ {
		lower, higher := ordered[i-1], ordered[i]
		if lower.Rank() >= higher.Rank() {
			t.Errorf("%s.Rank() = %d should be below %s.Rank() = %d",
				lower, lower.Rank(), higher, higher.Rank())
		}
	}

	if unknown := TaskPriority("unknown").Rank(); unknown >= PriorityLow.Rank() {
		t.Errorf("unknown priority rank = %d, want below %d", unknown, PriorityLow.Rank())
	}
}

func TestNewTask(t *testing.T) {
	task := NewTask("Analyze issue context", "Review the problem statement", AgentIssue)

	if task.ID == "" {
		t.Error("NewTask should generate a non-empty ID")
	}
	if task.Title != "Analyze issue context" {
		t.Errorf("task title = %q, want %q", task.Title, "Analyze issue context")
	}
	if task.Agent != AgentIssue {
		t.Errorf("task agent = %q, want %q", task.Agent, AgentIssue)
	}
	if task.Priority != PriorityMedium {
		t.Errorf("default priority = %q, want %q", task.Priority, PriorityMedium)
	}
}

func TestNewTask_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		task := NewTask("task", "desc", AgentCodeGen)
		if seen[task.ID] {
			t.Fatalf("duplicate task ID generated: %s", task.ID)
		}
		seen[task.ID] = true
	}
}
