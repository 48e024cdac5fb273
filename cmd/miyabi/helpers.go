package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/miyabi-dev/miyabi/internal/agents"
	"github.com/miyabi-dev/miyabi/internal/config"
	"github.com/miyabi-dev/miyabi/pkg/models"
)

var errNoTitle = errors.New("a work item needs a title: pass --title or --file")

// buildWorkItem assembles the work item from the work-on flags, or loads
// it from the YAML file given with --file. Flags override file values.
func buildWorkItem(cmd *cobra.Command) (models.WorkItem, error) {
	var item models.WorkItem

	if workOnFile != "" {
		loaded, err := loadWorkItemFile(workOnFile)
		if err != nil {
			return models.WorkItem{}, err
		}
		item = loaded
	}

	if workOnTitle != "" {
		item.Title = workOnTitle
	}
	if workOnDescription != "" {
		item.Description = workOnDescription
	}
	if cmd.Flags().Changed("issue") {
		issue := workOnIssue
		item.IssueNumber = &issue
	}

	if item.Title == "" {
		return models.WorkItem{}, errNoTitle
	}
	if item.Status == "" {
		item.Status = models.StatusPending
	}
	return item, nil
}

// loadWorkItemFile reads a work item definition from a YAML file.
func loadWorkItemFile(path string) (models.WorkItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.WorkItem{}, fmt.Errorf("reading work item file %s: %w", path, err)
	}

	var item models.WorkItem
	if err := yaml.Unmarshal(data, &item); err != nil {
		return models.WorkItem{}, fmt.Errorf("parsing work item file %s: %w", path, err)
	}
	if item.Status != "" && !item.Status.Valid() {
		return models.WorkItem{}, fmt.Errorf("work item file %s: unknown status %q", path, item.Status)
	}
	return item, nil
}

// contextFromConfig builds the execution context every agent receives.
func contextFromConfig(cfg *config.Config) *agents.Context {
	ctx := agents.NewContext()
	ctx.Environment["project"] = cfg.Project.Name
	ctx.Environment["device"] = cfg.Project.DeviceIdentifier
	return ctx
}
