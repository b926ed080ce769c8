// Package config loads engine configuration from YAML files.
//
// Configuration is entirely optional: every field has a compiled-in
// default matching the builder's production values, and a config file
// only overrides what it names.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/crewstudio/crewcanvas/pkg/canvas"
)

// Dimension is a configurable node footprint.
type Dimension struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Config holds the tunable layout parameters.
type Config struct {
	// Margin is the gap between chrome edges and the placeable area
	Margin float64 `yaml:"margin"`
	// NodeSpacing is the minimum gap between nodes of the same kind
	NodeSpacing float64 `yaml:"node_spacing"`
	// NarrowThreshold is the area width below which compact layout applies
	NarrowThreshold float64 `yaml:"narrow_threshold"`
	// Dimensions overrides node footprints by kind name
	Dimensions map[string]Dimension `yaml:"dimensions"`
	// Chrome overrides the initial chrome snapshot
	Chrome *canvas.ChromeState `yaml:"chrome"`
}

// validKinds are the node kinds a config file may size.
var validKinds = map[string]canvas.NodeKind{
	"agent":     canvas.KindAgent,
	"task":      canvas.KindTask,
	"flow-step": canvas.KindFlowStep,
	"composite": canvas.KindComposite,
}

// Default returns the compiled-in configuration.
func Default() *Config {
	return &Config{
		Margin:          20,
		NodeSpacing:     50,
		NarrowThreshold: 600,
	}
}

// Load reads a YAML config file and merges it over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return parse(data)
}

// parse unmarshals YAML over the defaults and validates kind names.
func parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	for kind := range cfg.Dimensions {
		if _, ok := validKinds[kind]; !ok {
			return nil, fmt.Errorf("unknown node kind in dimensions: %q", kind)
		}
	}
	if cfg.Margin < 0 {
		return nil, fmt.Errorf("margin must be non-negative, got %v", cfg.Margin)
	}
	if cfg.NodeSpacing < 0 {
		return nil, fmt.Errorf("node_spacing must be non-negative, got %v", cfg.NodeSpacing)
	}

	return cfg, nil
}

// EngineOptions converts the config into engine construction options.
func (c *Config) EngineOptions() canvas.Options {
	opts := canvas.Options{
		Margin:          c.Margin,
		NodeSpacing:     c.NodeSpacing,
		NarrowThreshold: c.NarrowThreshold,
		Chrome:          c.Chrome,
	}
	if len(c.Dimensions) > 0 {
		opts.Dimensions = make(map[canvas.NodeKind]canvas.Size, len(c.Dimensions))
		for name, dim := range c.Dimensions {
			opts.Dimensions[validKinds[name]] = canvas.Size{Width: dim.Width, Height: dim.Height}
		}
	}
	return opts
}
