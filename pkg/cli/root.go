// Package cli implements the crewcanvas command line interface, a
// developer tool for inspecting and replaying layout decisions of the
// crew builder's canvas engine outside the browser.
package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	// Version is the current version of crewcanvas
	Version = "1.0.0"
)

// Config holds the global configuration for the crewcanvas CLI
type Config struct {
	ConfigDir string
	Debug     bool
}

// GlobalConfig is the shared configuration instance
var GlobalConfig = &Config{}

// NewRootCommand creates the root cobra command for crewcanvas
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crewcanvas",
		Short: "CrewCanvas - layout engine tooling for the crew builder",
		Long: `CrewCanvas computes node placement for the visual crew builder's canvas:
available-area calculation under UI chrome, single-node placement for agents,
tasks, and flow steps, bulk crew layout planning, and auto-fit zoom.

This CLI replays those decisions offline against exported canvas snapshots
and saved chrome presets.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(); err != nil {
				return fmt.Errorf("failed to initialize configuration: %w", err)
			}

			// Setup logging
			if GlobalConfig.Debug {
				log.SetOutput(os.Stderr)
				log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
			} else {
				log.SetOutput(io.Discard)
			}

			return nil
		},
	}

	// Persistent flags (available to all subcommands)
	cmd.PersistentFlags().BoolVar(&GlobalConfig.Debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&GlobalConfig.ConfigDir, "config-dir", "", "Configuration directory (default: ~/.crewcanvas)")

	// Add subcommands
	cmd.AddCommand(NewAreaCommand())
	cmd.AddCommand(NewPlaceCommand())
	cmd.AddCommand(NewPlanCommand())
	cmd.AddCommand(NewValidateCommand())
	cmd.AddCommand(NewPresetCommand())

	return cmd
}

// initConfig initializes the crewcanvas configuration directory and files
func initConfig() error {
	// Environment variable always takes priority (for testing)
	if envDir := os.Getenv("CREWCANVAS_CONFIG_DIR"); envDir != "" {
		GlobalConfig.ConfigDir = envDir
	} else if GlobalConfig.ConfigDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}
		GlobalConfig.ConfigDir = filepath.Join(homeDir, ".crewcanvas")
	}

	if err := os.MkdirAll(GlobalConfig.ConfigDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Load or create config file
	configFile := filepath.Join(GlobalConfig.ConfigDir, "config.yaml")
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		defaultConfig := map[string]interface{}{
			"margin":       20,
			"node_spacing": 50,
		}
		data, err := yaml.Marshal(defaultConfig)
		if err != nil {
			return fmt.Errorf("failed to marshal default config: %w", err)
		}
		if err := os.WriteFile(configFile, data, 0644); err != nil {
			return fmt.Errorf("failed to write default config: %w", err)
		}
	}

	return nil
}

// GetConfigDir returns the configuration directory path.
// Priority order: 1) CREWCANVAS_CONFIG_DIR env var (for testing),
// 2) GlobalConfig.ConfigDir, 3) ~/.crewcanvas
func GetConfigDir() string {
	if envDir := os.Getenv("CREWCANVAS_CONFIG_DIR"); envDir != "" {
		return envDir
	}
	if GlobalConfig.ConfigDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".crewcanvas"
		}
		return filepath.Join(homeDir, ".crewcanvas")
	}
	return GlobalConfig.ConfigDir
}

// GetConfigPath returns the path to the engine config file
func GetConfigPath() string {
	return filepath.Join(GetConfigDir(), "config.yaml")
}

// GetDatabasePath returns the path to the preset database
func GetDatabasePath() string {
	return filepath.Join(GetConfigDir(), "crewcanvas.db")
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().Execute()
}
