// Package config handles loading and saving project configuration for a
// miyabi workspace. Configuration lives at .miyabi/config.yaml under the
// workspace root.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/miyabi-dev/miyabi/pkg/models"
)

// DefaultProjectName is used when no name has been configured.
const DefaultProjectName = "miyabi-project"

// Config holds the persisted configuration of one workspace.
type Config struct {
	// Project describes the project this workspace belongs to.
	Project models.ProjectMetadata
	// GitHubToken is the token used for GitHub integrations, if set.
	GitHubToken string
}

// Default returns a fresh configuration for a new workspace. The device
// identifier defaults to the machine hostname.
func Default() *Config {
	device, err := os.Hostname()
	if err != nil || device == "" {
		device = "unknown-device"
	}
	return &Config{
		Project: models.ProjectMetadata{
			Name:             DefaultProjectName,
			CreatedAt:        time.Now().UTC(),
			DeviceIdentifier: device,
		},
	}
}

// Manager loads and saves the configuration file of one workspace.
type Manager struct {
	configDir  string
	configFile string
}

// NewManager creates a manager rooted at the given workspace directory.
func NewManager(root string) *Manager {
	configDir := filepath.Join(root, ".miyabi")
	return &Manager{
		configDir:  configDir,
		configFile: filepath.Join(configDir, "config.yaml"),
	}
}

// ConfigDir returns the .miyabi directory path.
func (m *Manager) ConfigDir() string {
	return m.configDir
}

// ConfigFile returns the configuration file path.
func (m *Manager) ConfigFile() string {
	return m.configFile
}

// LogsDir returns the logs directory, creating it if needed.
func (m *Manager) LogsDir() (string, error) {
	dir := filepath.Join(m.configDir, "logs")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating logs directory: %w", err)
	}
	return dir, nil
}

// ReportsDir returns the reports directory, creating it if needed.
func (m *Manager) ReportsDir() (string, error) {
	dir := filepath.Join(m.configDir, "reports")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating reports directory: %w", err)
	}
	return dir, nil
}

// LoadOrInit loads the configuration file, writing defaults first if the
// workspace has no configuration yet.
func (m *Manager) LoadOrInit() (*Config, error) {
	if _, err := os.Stat(m.configFile); os.IsNotExist(err) {
		return m.InitWithDefaults()
	}
	return m.Load()
}

// Load reads the configuration file.
func (m *Manager) Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(m.configFile)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", m.configFile, err)
	}

	cfg := &Config{
		Project: models.ProjectMetadata{
			Name:             v.GetString("project.name"),
			Repository:       v.GetString("project.repository"),
			DeviceIdentifier: v.GetString("project.device_identifier"),
		},
		GitHubToken: v.GetString("github_token"),
	}
	if cfg.Project.Name == "" {
		cfg.Project.Name = DefaultProjectName
	}

	if raw := v.GetString("project.created_at"); raw != "" {
		createdAt, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, fmt.Errorf("parsing project.created_at: %w", err)
		}
		cfg.Project.CreatedAt = createdAt
	}

	return cfg, nil
}

// InitWithDefaults writes a default configuration and returns it.
func (m *Manager) InitWithDefaults() (*Config, error) {
	cfg := Default()
	if err := m.Save(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the workspace config file.
func (m *Manager) Save(cfg *Config) error {
	if err := os.MkdirAll(m.configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	v := viper.New()
	v.Set("project.name", cfg.Project.Name)
	v.Set("project.repository", cfg.Project.Repository)
	v.Set("project.created_at", cfg.Project.CreatedAt.Format(time.RFC3339))
	v.Set("project.device_identifier", cfg.Project.DeviceIdentifier)
	v.Set("github_token", cfg.GitHubToken)

	if err := v.WriteConfigAs(m.configFile); err != nil {
		return fmt.Errorf("writing config %s: %w", m.configFile, err)
	}
	return nil
}
