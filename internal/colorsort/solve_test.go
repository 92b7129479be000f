package colorsort

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveAlreadySolved(t *testing.T) {
	b := mustBoard(t, [][]Object{{"a", "a"}, {}}, []int{2, 2})
	solved, explored := Solve(b, 0)
	assert.True(t, solved)
	assert.Equal(t, 0, explored)
}

func TestSolveSplitColor(t *testing.T) {
	// a single color split across two bases merges into one
	b := mustBoard(t, [][]Object{{"a"}, {"a"}, {}}, []int{2, 2, 2})
	solved, explored := Solve(b, 0)
	assert.True(t, solved)
	assert.Greater(t, explored, 0)
}

func TestSolveUnsolvable(t *testing.T) {
	// both bases are full with mismatched tops, no move exists
	b := mustBoard(t, [][]Object{{"a", "b"}, {"b", "a"}}, []int{2, 2})
	solved, explored := Solve(b, 0)
	assert.False(t, solved)
	assert.Equal(t, 0, explored)
}

func TestSolveScrambledBoards(t *testing.T) {
	r := rand.New(rand.NewPCG(11, 13))
	for range 20 {
		b, err := NewSolved([]Object{"a", "b", "c"}, 4, 4)
		require.NoError(t, err)
		b.Scramble(12, StrategyUniform, r)

		solved, _ := Solve(b, 0)
		assert.True(t, solved, "scrambled board %q must stay solvable", b.Key())
	}
}

func TestSolveDoesNotMutateInput(t *testing.T) {
	b := mustBoard(t, [][]Object{{"a"}, {"a"}, {}}, []int{2, 2, 2})
	key := b.Key()
	Solve(b, 0)
	assert.Equal(t, key, b.Key())
}

func TestSolveExploredCap(t *testing.T) {
	b := mustBoard(t, [][]Object{{"a"}, {"a"}, {}}, []int{2, 2, 2})
	solved, explored := Solve(b, 1)
	assert.False(t, solved)
	assert.Equal(t, 1, explored)
}
