package agents

import (
	"fmt"

	"github.com/miyabi-dev/miyabi/pkg/models"
)

// Coordinator is the planning agent. As a plain executor it only accepts
// intake; as an orchestrator it decomposes a work item into an ordered
// plan of specialist tasks and drives their execution.
type Coordinator struct{}

// NewCoordinator creates a coordinator agent.
func NewCoordinator() *Coordinator {
	return &Coordinator{}
}

// Kind returns the coordinator's registry slot.
func (c *Coordinator) Kind() models.AgentKind {
	return models.AgentCoordinator
}

// Name returns the coordinator's display label.
func (c *Coordinator) Name() string {
	return "CoordinatorAgent"
}

// Run accepts a task for intake. The coordinator performs no real work
// per task; specialist agents are simulated for now.
func (c *Coordinator) Run(task models.AgentTask, _ *Context) (models.AgentOutcome, error) {
	return SuccessOutcome(task, "Task queued for specialist agents (simulated)"), nil
}

// BuildPlan decomposes a work item into an ordered list of specialist
// tasks. The plan shape is a fixed policy: it does not branch on work
// item content beyond interpolating the title into the analysis step.
func (c *Coordinator) BuildPlan(item models.WorkItem) []models.AgentTask {
	analyze := models.NewTask(
		"Analyze issue context",
		fmt.Sprintf("Review the problem statement for '%s'", item.Title),
		models.AgentIssue,
	)
	analyze.Priority = models.PriorityHigh

	implement := models.NewTask(
		"Implement solution",
		"Generate code changes to satisfy the requirements",
		models.AgentCodeGen,
	)
	implement.Priority = models.PriorityHigh

	verify := models.NewTask(
		"Run verification suite",
		"Execute unit and integration tests",
		models.AgentTest,
	)

	review := models.NewTask(
		"Review code changes",
		"Perform automated review of generated code",
		models.AgentReview,
	)

	return []models.AgentTask{analyze, implement, verify, review}
}

// Orchestrate builds the plan for a work item and executes each task in
// plan order, collecting one report per task. Execution is fail-fast: the
// first task error aborts the run and no partial reports are returned.
//
// All tasks currently run through the coordinator itself. Once real
// specialist executors exist, dispatch should route by task.Agent through
// the registry instead.
func (c *Coordinator) Orchestrate(item models.WorkItem, ctx *Context) ([]models.ExecutionReport, error) {
	plan := c.BuildPlan(item)
	reports := make([]models.ExecutionReport, 0, len(plan))
	for _, task := range plan {
		outcome, err := c.Run(task, ctx)
		if err != nil {
			return nil, fmt.Errorf("executing task %q (%s): %w", task.Title, task.Agent, err)
		}
		reports = append(reports, models.ExecutionReport{Task: task, Outcome: outcome})
	}
	return reports, nil
}
