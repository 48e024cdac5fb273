package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/miyabi-dev/miyabi/internal/agents"
	"github.com/miyabi-dev/miyabi/internal/config"
	"github.com/miyabi-dev/miyabi/internal/workspace"
	"github.com/miyabi-dev/miyabi/pkg/models"
)

var (
	agentRunTitle       string
	agentRunDescription string
)

var agentCmd = &cobra.Command{
	Use:   "agent",
	Short: "Run individual agents",
}

var agentRunCmd = &cobra.Command{
	Use:   "run <kind>",
	Short: "Run a single agent by kind",
	Long: `Run one agent directly, outside of full work item orchestration.

The kind argument selects which registered agent executes. Running the
coordinator orchestrates a full plan for the given title/description:

  miyabi agent run coordinator --title "Fix login" --description "..."`,
	Args: cobra.ExactArgs(1),
	RunE: runAgentRun,
}

func init() {
	agentRunCmd.Flags().StringVar(&agentRunTitle, "title", "", "Task title")
	agentRunCmd.Flags().StringVar(&agentRunDescription, "description", "", "Task description")
	agentRunCmd.MarkFlagRequired("title")
	agentRunCmd.MarkFlagRequired("description")
	agentCmd.AddCommand(agentRunCmd)
}

func runAgentRun(cmd *cobra.Command, args []string) error {
	kind := models.AgentKind(args[0])
	if !kind.Valid() {
		return fmt.Errorf("unknown agent kind %q", args[0])
	}

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

	registry := agents.NewRegistry()
	ctx := contextFromConfig(cfg)

	if kind == models.AgentCoordinator {
		item := models.WorkItem{
			Title:       agentRunTitle,
			Description: agentRunDescription,
			Status:      models.StatusInProgress,
		}
		reports, err := registry.RunCoordinator(ctx, item)
		if err != nil {
			return err
		}
		color.Cyan("CoordinatorAgent results")
		printReports(reports)
		return nil
	}

	task := models.NewTask(agentRunTitle, agentRunDescription, kind)
	outcome, err := registry.Dispatch(task, ctx)
	if err != nil {
		return err
	}
	fmt.Printf(" - [%s] %s\n", color.YellowString(string(kind)), task.Title)
	fmt.Printf("   %s\n", outcome.Summary)
	return nil
}
