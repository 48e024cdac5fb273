package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/miyabi-dev/miyabi/internal/actionlog"
	"github.com/miyabi-dev/miyabi/internal/config"
	"github.com/miyabi-dev/miyabi/internal/workspace"
)

var (
	initName       string
	initRepository string
	initDevice     string
)

var initCmd = &cobra.Command{
	Use:   "init [directory]",
	Short: "Initialize a miyabi workspace",
	Long: `Initialize a directory for use with miyabi.

Creates the .miyabi directory structure (logs, reports), writes the
project configuration, and records the initialization in the action log.

The directory argument is optional and defaults to the current directory.

Examples:
  miyabi init --name my-project
  miyabi init ./svc --name svc --repository owner/svc
  miyabi init --name my-project --device build-host-2`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVar(&initName, "name", "", "Project name")
	initCmd.Flags().StringVar(&initRepository, "repository", "", "GitHub repository (owner/repo)")
	initCmd.Flags().StringVar(&initDevice, "device", "", "Device identifier (defaults to hostname)")
	initCmd.MarkFlagRequired("name")
}

func runInit(cmd *cobra.Command, args []string) error {
	targetDir := "."
	if len(args) > 0 {
		targetDir = args[0]
	}

	root, err := filepath.Abs(targetDir)
	if err != nil {
		return fmt.Errorf("resolving absolute path: %w", err)
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", root, err)
	}

	paths := workspace.NewProjectPaths(root)
	if err := workspace.EnsureStructure(paths); err != nil {
		return err
	}
	printStatus("✓", "Created .miyabi directory structure", color.FgGreen)

	manager := config.NewManager(root)
	cfg := config.Default()
	cfg.Project.Name = initName
	cfg.Project.Repository = initRepository
	if initDevice != "" {
		cfg.Project.DeviceIdentifier = initDevice
	}
	if err := manager.Save(cfg); err != nil {
		return err
	}
	printStatus("✓", "Wrote project configuration", color.FgGreen)

	logsDir, err := manager.LogsDir()
	if err != nil {
		return err
	}
	entry := actionlog.Info("init", fmt.Sprintf("Initialized project at %s", root))
	if err := actionlog.Append(logsDir, entry); err != nil {
		return err
	}

	fmt.Println()
	color.Green("Workspace initialized.")
	fmt.Printf("%s %s\n", color.New(color.Bold).Sprint("Project root:"), root)
	fmt.Printf("%s %s\n", color.New(color.Bold).Sprint("Config file:"), manager.ConfigFile())
	return nil
}
