package levels

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/vancomm/colorsort-server/internal/colorsort"
)

// ErrGenerationFailed is returned when no acceptable board was produced
// within the attempt budget. It usually indicates a pathological
// parameter set (too many colors for too few bases, or a scramble too
// light to leave the solved state).
var ErrGenerationFailed = errors.New("levels: failed to generate an acceptable board")

const (
	// DefaultMaxAttempts bounds scramble-and-verify retries per level.
	DefaultMaxAttempts = 100
	// DefaultMaxExplored caps the solver's generated states per
	// attempt so degenerate boards fail the attempt instead of
	// hanging the builder.
	DefaultMaxExplored = 500_000
)

// Builder generates levels by scrambling solved boards backwards and
// accepting only boards the solver proves solvable.
type Builder struct {
	Colors      []colorsort.Object
	Strategy    colorsort.Strategy
	MaxAttempts int
	MaxExplored int
	Rand        *rand.Rand
	Log         *slog.Logger
}

// NewBuilder returns a builder with default bounds. r drives every
// random choice, so a fixed-seed source makes generation reproducible.
func NewBuilder(colors []colorsort.Object, r *rand.Rand) *Builder {
	return &Builder{
		Colors:      colors,
		Strategy:    colorsort.StrategyUniform,
		MaxAttempts: DefaultMaxAttempts,
		MaxExplored: DefaultMaxExplored,
		Rand:        r,
		Log:         slog.Default(),
	}
}

// Build generates the level at index n under the given schedule.
func (g *Builder) Build(n int, schedule Schedule) (*Level, error) {
	settings := schedule.At(n)
	return g.BuildSettings(settings)
}

// BuildSettings scrambles a fresh solved board and re-rolls until the
// result is neither already solved nor unsolvable, up to MaxAttempts.
func (g *Builder) BuildSettings(settings Settings) (*Level, error) {
	if len(g.Colors) == 0 {
		return nil, fmt.Errorf("levels: no colors available")
	}
	for attempt := 1; attempt <= g.MaxAttempts; attempt++ {
		board, err := colorsort.NewSolved(
			g.Colors, settings.BasesCount, settings.BaseHeight,
		)
		if err != nil {
			return nil, err
		}
		board.Scramble(settings.Steps, g.Strategy, g.Rand)
		if board.Solved() {
			continue
		}
		solved, explored := colorsort.Solve(board, g.MaxExplored)
		if !solved {
			g.Log.Debug(
				"rejected unsolvable scramble",
				"attempt", attempt, "explored", explored,
			)
			continue
		}
		g.Log.Debug(
			"accepted board",
			"attempt", attempt, "explored", explored,
		)
		return FromBoard(board), nil
	}
	return nil, fmt.Errorf(
		"%w after %d attempts (bases=%d height=%d steps=%d)",
		ErrGenerationFailed, g.MaxAttempts,
		settings.BasesCount, settings.BaseHeight, settings.Steps,
	)
}

// BuildAll generates count levels following the schedule.
func (g *Builder) BuildAll(count int, schedule Schedule) ([]*Level, error) {
	out := make([]*Level, 0, count)
	for n := range count {
		lvl, err := g.Build(n, schedule)
		if err != nil {
			return nil, fmt.Errorf("level %d: %w", n, err)
		}
		out = append(out, lvl)
	}
	return out, nil
}
