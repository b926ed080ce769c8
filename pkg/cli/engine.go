package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/crewstudio/crewcanvas/pkg/canvas"
	"github.com/crewstudio/crewcanvas/pkg/config"
	operrors "github.com/crewstudio/crewcanvas/pkg/errors"
	"github.com/crewstudio/crewcanvas/pkg/storage"
)

// chromeSource bundles the flags every engine-backed command shares:
// an optional chrome YAML file and an optional saved preset. The file
// wins when both are given.
type chromeSource struct {
	chromePath string
	presetName string
}

// loadConfig reads the engine config from the config directory,
// falling back to defaults when no file exists yet.
func loadConfig() (*config.Config, error) {
	path := GetConfigPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.Default(), nil
	}
	return config.Load(path)
}

// loadChromeFile parses a chrome state YAML file.
func loadChromeFile(path string) (*canvas.ChromeState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read chrome file: %w", err)
	}
	var chrome canvas.ChromeState
	if err := yaml.Unmarshal(data, &chrome); err != nil {
		return nil, fmt.Errorf("failed to parse chrome YAML: %w", err)
	}
	return &chrome, nil
}

// resolveChrome picks the chrome snapshot for a command: explicit
// file, then saved preset, then nil (engine default).
func (s chromeSource) resolveChrome() (*canvas.ChromeState, error) {
	if s.chromePath != "" {
		chrome, err := loadChromeFile(s.chromePath)
		if err != nil {
			return nil, operrors.NewOperationalError("loading chrome file", "", "", err)
		}
		return chrome, nil
	}
	if s.presetName != "" {
		repo, err := storage.NewSQLitePresetRepositoryWithPath(GetDatabasePath())
		if err != nil {
			return nil, err
		}
		defer func() { _ = repo.Close() }()

		preset, err := repo.Get(s.presetName)
		if err != nil {
			return nil, operrors.NewOperationalError("loading chrome preset", "", "", err)
		}
		return &preset.Chrome, nil
	}
	return nil, nil
}

// buildEngine constructs an engine from config plus the command's
// chrome source.
func (s chromeSource) buildEngine() (*canvas.Engine, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	opts := cfg.EngineOptions()
	chrome, err := s.resolveChrome()
	if err != nil {
		return nil, err
	}
	if chrome != nil {
		opts.Chrome = chrome
	}
	return canvas.NewEngineWithOptions(opts), nil
}

// parseCanvasID validates a canvas identity flag.
func parseCanvasID(value string) (canvas.CanvasID, error) {
	switch canvas.CanvasID(value) {
	case canvas.CanvasPrimary, canvas.CanvasSecondary, canvas.CanvasSingle:
		return canvas.CanvasID(value), nil
	}
	return "", fmt.Errorf("invalid canvas %q: must be primary, secondary, or single", value)
}
