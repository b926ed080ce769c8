package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewstudio/crewcanvas/pkg/canvas"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 20.0, cfg.Margin)
	assert.Equal(t, 50.0, cfg.NodeSpacing)
	assert.Equal(t, 600.0, cfg.NarrowThreshold)
	assert.Nil(t, cfg.Chrome)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
margin: 30
dimensions:
  agent:
    width: 220
    height: 160
chrome:
  screen_width: 1920
  screen_height: 1080
  top_bar_height: 64
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30.0, cfg.Margin)
	// Unset fields keep defaults
	assert.Equal(t, 50.0, cfg.NodeSpacing)
	assert.Equal(t, 600.0, cfg.NarrowThreshold)

	require.NotNil(t, cfg.Chrome)
	assert.Equal(t, 1920.0, cfg.Chrome.ScreenWidth)
	assert.Equal(t, 64.0, cfg.Chrome.TopBarHeight)

	require.Contains(t, cfg.Dimensions, "agent")
	assert.Equal(t, 220.0, cfg.Dimensions["agent"].Width)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParseRejectsUnknownKind(t *testing.T) {
	_, err := parse([]byte("dimensions:\n  widget:\n    width: 10\n    height: 10\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown node kind")
}

func TestParseRejectsNegativeValues(t *testing.T) {
	_, err := parse([]byte("margin: -5\n"))
	assert.Error(t, err)

	_, err = parse([]byte("node_spacing: -1\n"))
	assert.Error(t, err)
}

func TestEngineOptions(t *testing.T) {
	cfg := Default()
	cfg.Dimensions = map[string]Dimension{
		"task": {Width: 180, Height: 110},
	}

	opts := cfg.EngineOptions()
	assert.Equal(t, 20.0, opts.Margin)
	require.Contains(t, opts.Dimensions, canvas.KindTask)
	assert.Equal(t, canvas.Size{Width: 180, Height: 110}, opts.Dimensions[canvas.KindTask])

	// Options round-trip into a working engine
	e := canvas.NewEngineWithOptions(opts)
	assert.Equal(t, canvas.Size{Width: 180, Height: 110}, e.DimensionsFor(canvas.KindTask))
}
