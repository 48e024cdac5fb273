package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/miyabi-dev/miyabi/internal/actionlog"
	"github.com/miyabi-dev/miyabi/internal/agents"
	"github.com/miyabi-dev/miyabi/internal/config"
	"github.com/miyabi-dev/miyabi/internal/report"
	"github.com/miyabi-dev/miyabi/internal/state"
	"github.com/miyabi-dev/miyabi/internal/workspace"
	"github.com/miyabi-dev/miyabi/pkg/models"
)

var (
	workOnIssue       int64
	workOnTitle       string
	workOnDescription string
	workOnFile        string
)

var workOnCmd = &cobra.Command{
	Use:   "work-on",
	Short: "Orchestrate agents on an issue or feature request",
	Long: `Stage a work item into a plan of specialist agent tasks and
execute it through the coordinator.

The work item can be given via flags or loaded from a YAML file:

  miyabi work-on --title "Fix login" --description "Session expires early"
  miyabi work-on --issue 42 --title "Fix login" --description "..."
  miyabi work-on --file item.yaml

Each run writes a JSON report into .miyabi/reports and records the run
in the workspace state database.`,
	RunE: runWorkOn,
}

func init() {
	workOnCmd.Flags().Int64Var(&workOnIssue, "issue", 0, "Issue number")
	workOnCmd.Flags().StringVar(&workOnTitle, "title", "", "Work item title")
	workOnCmd.Flags().StringVar(&workOnDescription, "description", "", "Work item description")
	workOnCmd.Flags().StringVar(&workOnFile, "file", "", "Load the work item from a YAML file")
}

func runWorkOn(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}
	root := workspace.DetectOr(cwd, cwd)

	manager := config.NewManager(root)
	cfg, err := manager.LoadOrInit()
	if err != nil {
		return err
	}

	item, err := buildWorkItem(cmd)
	if err != nil {
		return err
	}
	item.Status = models.StatusInProgress

	bold := color.New(color.Bold)
	color.Green("Starting agent orchestration")
	fmt.Printf("%s %s\n", bold.Sprint("Target:"), item.Title)
	if item.IssueNumber != nil {
		fmt.Printf("%s #%d\n", bold.Sprint("Issue:"), *item.IssueNumber)
	}
	fmt.Println()

	registry := agents.NewRegistry()
	ctx := contextFromConfig(cfg)

	startedAt := time.Now().UTC()
	var reports []models.ExecutionReport
	runErr := runWithSpinner("CoordinatorAgent running...", func() error {
		var err error
		reports, err = registry.RunCoordinator(ctx, item)
		return err
	})

	finishedAt := time.Now().UTC()
	item.Status = finalStatus(runErr, reports)

	if runErr == nil {
		color.Cyan("Execution results")
		printReports(reports)
	}

	if err := recordRun(root, item, reports, startedAt, finishedAt); err != nil {
		return err
	}

	if runErr == nil {
		reportsDir, err := manager.ReportsDir()
		if err != nil {
			return err
		}
		path, err := report.Write(reportsDir, item, reports)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Printf("%s %s\n", bold.Sprint("Report:"), path)
	}

	logsDir, err := manager.LogsDir()
	if err != nil {
		return err
	}
	detail := fmt.Sprintf("Work item %q handled with %d tasks", item.Title, len(reports))
	if item.IssueNumber != nil {
		detail = fmt.Sprintf("Issue #%d handled with %d tasks", *item.IssueNumber, len(reports))
	}
	if err := actionlog.Append(logsDir, actionlog.Info("work_on", detail)); err != nil {
		return err
	}

	return runErr
}

// finalStatus closes the work item lifecycle from the run outcome: all
// tasks succeeded means completed, anything else means failed.
func finalStatus(runErr error, reports []models.ExecutionReport) models.WorkItemStatus {
	if runErr != nil {
		return models.StatusFailed
	}
	for _, r := range reports {
		if !r.Outcome.Success {
			return models.StatusFailed
		}
	}
	return models.StatusCompleted
}

func printReports(reports []models.ExecutionReport) {
	for _, r := range reports {
		fmt.Printf(" - [%s] %s\n", color.YellowString(string(r.Task.Agent)), r.Task.Title)
		fmt.Printf("   %s\n", r.Outcome.Summary)
	}
}

func recordRun(root string, item models.WorkItem, reports []models.ExecutionReport, startedAt, finishedAt time.Time) error {
	db, err := state.OpenProject(root)
	if err != nil {
		return fmt.Errorf("open state database: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		return fmt.Errorf("migrate state database: %w", err)
	}

	succeeded := 0
	for _, r := range reports {
		if r.Outcome.Success {
			succeeded++
		}
	}

	return db.RecordRun(state.Run{
		ID:             uuid.NewString(),
		IssueNumber:    item.IssueNumber,
		Title:          item.Title,
		Status:         item.Status,
		TaskCount:      len(reports),
		SucceededCount: succeeded,
		StartedAt:      startedAt,
		FinishedAt:     &finishedAt,
	})
}
