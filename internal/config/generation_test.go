package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/colorsort-server/internal/colorsort"
)

func TestNewGenerationDefaults(t *testing.T) {
	t.Setenv("COLORS_DIR", "static/objects")

	g, err := NewGeneration()
	require.NoError(t, err)
	assert.Equal(t, "static/objects", g.ColorsDir)
	assert.Equal(t, 40, g.LevelCount)
	assert.Equal(t, colorsort.StrategyUniform, g.Strategy)
	assert.Zero(t, g.Seed)
}

func TestNewGenerationParsesEnv(t *testing.T) {
	t.Setenv("COLORS_DIR", "static/objects")
	t.Setenv("LEVEL_COUNT", "12")
	t.Setenv("SCRAMBLE_STRATEGY", "per-source")
	t.Setenv("GENERATION_SEED", "42")

	g, err := NewGeneration()
	require.NoError(t, err)
	assert.Equal(t, 12, g.LevelCount)
	assert.Equal(t, colorsort.StrategyPerSource, g.Strategy)
	assert.Equal(t, uint64(42), g.Seed)
}

func TestNewGenerationRejectsUnknownStrategy(t *testing.T) {
	t.Setenv("COLORS_DIR", "static/objects")
	t.Setenv("SCRAMBLE_STRATEGY", "chaotic")

	_, err := NewGeneration()
	assert.Error(t, err)
}

func TestNewGenerationRequiresColorsDir(t *testing.T) {
	t.Setenv("COLORS_DIR", "")

	_, err := NewGeneration()
	assert.Error(t, err)
}
