package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/vancomm/colorsort-server/internal/colorsort"
)

// Generation carries the level-generation defaults the service uses
// when a request does not override them.
type Generation struct {
	ColorsDir  string
	LevelCount int
	Strategy   colorsort.Strategy
	Seed       uint64
}

func NewGeneration() (*Generation, error) {
	g := &Generation{
		ColorsDir:  os.Getenv("COLORS_DIR"),
		LevelCount: 40,
		Strategy:   colorsort.StrategyUniform,
	}
	if g.ColorsDir == "" {
		return nil, fmt.Errorf("no COLORS_DIR env variable set")
	}

	if countStr, ok := os.LookupEnv("LEVEL_COUNT"); ok {
		count, err := strconv.Atoi(countStr)
		if err != nil || count <= 0 {
			return nil, fmt.Errorf("invalid LEVEL_COUNT %q", countStr)
		}
		g.LevelCount = count
	}

	if name, ok := os.LookupEnv("SCRAMBLE_STRATEGY"); ok {
		strategy, err := colorsort.ParseStrategy(name)
		if err != nil {
			return nil, fmt.Errorf("invalid SCRAMBLE_STRATEGY: %w", err)
		}
		g.Strategy = strategy
	}

	if seedStr, ok := os.LookupEnv("GENERATION_SEED"); ok {
		seed, err := strconv.ParseUint(seedStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid GENERATION_SEED %q", seedStr)
		}
		g.Seed = seed
	}

	return g, nil
}
