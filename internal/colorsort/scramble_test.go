package colorsort

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrambleConservesObjects(t *testing.T) {
	for _, strategy := range []Strategy{StrategyUniform, StrategyPerSource} {
		t.Run(strategy.String(), func(t *testing.T) {
			b, err := NewSolved([]Object{"a", "b", "c"}, 4, 5)
			require.NoError(t, err)
			before := countObjects(b)

			b.Scramble(25, strategy, rand.New(rand.NewPCG(1, 2)))

			assert.Equal(t, before, countObjects(b))
			for i := range b.BaseCount() {
				assert.LessOrEqual(t, len(b.Base(i)), b.Height(i))
			}
		})
	}
}

func TestScrambleDeterministicUnderSeed(t *testing.T) {
	build := func() *Board {
		b, err := NewSolved([]Object{"a", "b", "c"}, 4, 5)
		require.NoError(t, err)
		b.Scramble(15, StrategyUniform, rand.New(rand.NewPCG(7, 7)))
		return b
	}
	assert.Equal(t, build().Key(), build().Key())
}

func TestScrambleStopsWithoutMoves(t *testing.T) {
	// a single base offers no ordered pair of distinct bases
	b := mustBoard(t, [][]Object{{"a", "a"}}, []int{2})
	b.Scramble(10, StrategyUniform, rand.New(rand.NewPCG(1, 2)))
	assert.Equal(t, []Object{"a", "a"}, b.Base(0))
}

func TestScrambledBoardStaysSolvable(t *testing.T) {
	// accepted boards must verify as solvable when re-checked
	for _, strategy := range []Strategy{StrategyUniform, StrategyPerSource} {
		t.Run(strategy.String(), func(t *testing.T) {
			r := rand.New(rand.NewPCG(3, 9))
			for range 10 {
				b, err := NewSolved([]Object{"a", "b"}, 3, 4)
				require.NoError(t, err)
				b.Scramble(8, strategy, r)
				if b.Solved() {
					continue
				}
				solved, _ := Solve(b, 0)
				if !solved {
					continue
				}
				again, _ := Solve(b, 0)
				assert.True(t, again)
			}
		})
	}
}

func TestParseStrategy(t *testing.T) {
	s, err := ParseStrategy("uniform")
	require.NoError(t, err)
	assert.Equal(t, StrategyUniform, s)

	s, err = ParseStrategy("per-source")
	require.NoError(t, err)
	assert.Equal(t, StrategyPerSource, s)

	_, err = ParseStrategy("chaotic")
	assert.Error(t, err)
}
