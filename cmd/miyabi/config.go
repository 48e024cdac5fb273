package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/miyabi-dev/miyabi/internal/config"
	"github.com/miyabi-dev/miyabi/internal/workspace"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show workspace configuration",
	Long: `Display the configuration of the current miyabi workspace.

Configuration is stored at .miyabi/config.yaml under the workspace root.`,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
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

	token := "(not set)"
	if cfg.GitHubToken != "" {
		token = "****"
	}

	fmt.Printf("config file: %s\n", manager.ConfigFile())
	fmt.Printf("project.name: %s\n", cfg.Project.Name)
	fmt.Printf("project.repository: %s\n", cfg.Project.Repository)
	fmt.Printf("project.created_at: %s\n", cfg.Project.CreatedAt.Format(time.RFC3339))
	fmt.Printf("project.device_identifier: %s\n", cfg.Project.DeviceIdentifier)
	fmt.Printf("github_token: %s\n", token)
	return nil
}
