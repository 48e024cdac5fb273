package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/miyabi-dev/miyabi/internal/config"
	"github.com/miyabi-dev/miyabi/internal/state"
	"github.com/miyabi-dev/miyabi/internal/workspace"
)

const recentLimit = 5

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show workspace status",
	Long: `Display the state of the current miyabi workspace.

Shows:
  - Project metadata from the workspace configuration
  - The .miyabi directory layout
  - The most recent orchestration reports and runs`,
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
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
	paths := workspace.NewProjectPaths(root)

	bold := color.New(color.Bold)
	color.Cyan("Miyabi status")
	fmt.Printf("%s %s\n", bold.Sprint("Project:"), cfg.Project.Name)
	if cfg.Project.Repository != "" {
		fmt.Printf("%s %s\n", bold.Sprint("Repository:"), cfg.Project.Repository)
	}
	fmt.Printf("%s %s\n", bold.Sprint("Created:"), cfg.Project.CreatedAt.Format(time.RFC3339))
	fmt.Printf("%s %s\n", bold.Sprint("Device:"), cfg.Project.DeviceIdentifier)
	fmt.Println()

	fmt.Println(bold.Sprint("Directories"))
	fmt.Printf(" - %s\n", paths.Config)
	fmt.Printf(" - %s\n", paths.Logs)
	fmt.Printf(" - %s\n", paths.Reports)
	fmt.Println()

	reports, err := workspace.ListRecentReports(paths.Reports)
	if err != nil {
		return err
	}
	if len(reports) == 0 {
		color.Yellow("Reports: none")
	} else {
		fmt.Println(bold.Sprint("Recent reports:"))
		for i, path := range reports {
			if i >= recentLimit {
				break
			}
			fmt.Printf(" - %s\n", path)
		}
	}

	return displayRecentRuns(root)
}

func displayRecentRuns(root string) error {
	if _, err := os.Stat(state.Path(root)); os.IsNotExist(err) {
		return nil
	}

	db, err := state.OpenProject(root)
	if err != nil {
		return fmt.Errorf("open state database: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		return fmt.Errorf("migrate state database: %w", err)
	}

	runs, err := db.RecentRuns(recentLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println(color.New(color.Bold).Sprint("Recent runs:"))
	for _, run := range runs {
		issue := "-"
		if run.IssueNumber != nil {
			issue = fmt.Sprintf("#%d", *run.IssueNumber)
		}
		fmt.Printf(" - [%s] %s %s (%d/%d tasks succeeded, %s)\n",
			run.Status, issue, run.Title,
			run.SucceededCount, run.TaskCount,
			run.StartedAt.Format(time.RFC3339))
	}
	return nil
}
