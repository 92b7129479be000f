package levels

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/colorsort-server/internal/colorsort"
)

func testColors() []colorsort.Object {
	return []colorsort.Object{"red", "green", "blue", "yellow", "purple"}
}

func TestBuildAcceptsOnlySolvableBoards(t *testing.T) {
	g := NewBuilder(testColors(), rand.New(rand.NewPCG(1, 2)))

	for _, strategy := range []colorsort.Strategy{
		colorsort.StrategyUniform, colorsort.StrategyPerSource,
	} {
		g.Strategy = strategy
		for n := range 8 {
			lvl, err := g.Build(n, DefaultSchedule)
			require.NoError(t, err)

			board, err := lvl.Board()
			require.NoError(t, err)
			assert.False(t, board.Solved(), "level %d must not start solved", n)

			solved, _ := colorsort.Solve(board, 0)
			assert.True(t, solved, "level %d must verify as solvable", n)
		}
	}
}

func TestBuildRespectsSchedule(t *testing.T) {
	g := NewBuilder(testColors(), rand.New(rand.NewPCG(5, 6)))

	lvl, err := g.Build(10, DefaultSchedule)
	require.NoError(t, err)

	board, err := lvl.Board()
	require.NoError(t, err)
	assert.Equal(t, 4, board.BaseCount())
	for i := range board.BaseCount() {
		assert.Equal(t, 5, board.Height(i))
	}
}

func TestBuildDeterministicUnderSeed(t *testing.T) {
	build := func() *Level {
		g := NewBuilder(testColors(), rand.New(rand.NewPCG(42, 42)))
		lvl, err := g.Build(3, DefaultSchedule)
		require.NoError(t, err)
		return lvl
	}
	assert.Equal(t, build(), build())
}

func TestBuildFailsWithoutColors(t *testing.T) {
	g := NewBuilder(nil, rand.New(rand.NewPCG(1, 2)))
	_, err := g.Build(0, DefaultSchedule)
	assert.Error(t, err)
}

func TestBuildGenerationBudget(t *testing.T) {
	g := NewBuilder(testColors(), rand.New(rand.NewPCG(1, 2)))
	g.MaxAttempts = 5

	// zero scramble steps always leave the board solved, so every
	// attempt is rejected and the budget runs out
	_, err := g.BuildSettings(Settings{BasesCount: 3, BaseHeight: 4, Steps: 0})
	assert.ErrorIs(t, err, ErrGenerationFailed)
}

func TestBuildAll(t *testing.T) {
	g := NewBuilder(testColors(), rand.New(rand.NewPCG(9, 9)))
	all, err := g.BuildAll(6, DefaultSchedule)
	require.NoError(t, err)
	assert.Len(t, all, 6)
}
