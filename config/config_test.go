package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsaulue/gustave/config"
	"github.com/vsaulue/gustave/solver/force1"
)

const fixtureYAML = `
blockSize:
  x: 1
  y: 1
  z: 1
gravity:
  x: 0
  y: -10
  z: 0
targetMaxError: 0.001
maxIterations: 5000
`

func TestLoadDecodesFixture(t *testing.T) {
	cfg, err := config.Load([]byte(fixtureYAML))
	require.NoError(t, err)

	assert.Equal(t, 1.0, float64(cfg.BlockSize.X))
	assert.Equal(t, -10.0, float64(cfg.Solver.G().Y))
	assert.InDelta(t, 0.001, float64(cfg.Solver.TargetMaxError()), 1e-12)
	assert.Equal(t, uint64(5000), cfg.Solver.MaxIterations())
}

func TestLoadRejectsNonPositiveTargetMaxError(t *testing.T) {
	_, err := config.Load([]byte("targetMaxError: 0\n"))
	require.Error(t, err)
}

func TestLoadHonoursZeroMaxIterations(t *testing.T) {
	cfg, err := config.Load([]byte(`
gravity:
  y: -10
targetMaxError: 0.001
maxIterations: 0
`))
	require.NoError(t, err)
	assert.Equal(t, uint64(0), cfg.Solver.MaxIterations())
}

func TestLoadDefaultsAbsentMaxIterations(t *testing.T) {
	cfg, err := config.Load([]byte(`
gravity:
  y: -10
targetMaxError: 0.001
`))
	require.NoError(t, err)
	assert.Equal(t, force1.DefaultMaxIterations, cfg.Solver.MaxIterations())
}

func TestSaveLoadRoundTrips(t *testing.T) {
	cfg, err := config.Load([]byte(fixtureYAML))
	require.NoError(t, err)

	out, err := config.Save(cfg)
	require.NoError(t, err)

	reloaded, err := config.Load(out)
	require.NoError(t, err)

	assert.Equal(t, cfg.BlockSize, reloaded.BlockSize)
	assert.Equal(t, cfg.Solver.G(), reloaded.Solver.G())
	assert.InDelta(t, float64(cfg.Solver.TargetMaxError()), float64(reloaded.Solver.TargetMaxError()), 1e-12)
	assert.Equal(t, cfg.Solver.MaxIterations(), reloaded.Solver.MaxIterations())
}
