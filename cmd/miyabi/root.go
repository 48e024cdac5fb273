package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "miyabi",
	Short: "Autonomous development CLI",
	Long: `Miyabi stages an issue or feature request into a sequence of
specialist agent tasks and dispatches them through a coordinator.

A work item is decomposed into an ordered plan (analyze, implement,
verify, review) and each task is executed in turn, producing a report
per task. Agent execution is simulated for now; the orchestration
pipeline and its extension points are real.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(workOnCmd)
	rootCmd.AddCommand(agentCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// printStatus prints a colored status symbol followed by a message.
func printStatus(symbol, message string, colorAttr color.Attribute) {
	c := color.New(colorAttr)
	fmt.Printf("%s %s\n", c.Sprint(symbol), message)
}
