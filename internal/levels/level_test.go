package levels

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/colorsort-server/internal/colorsort"
)

func TestFromBoardRowGrouping(t *testing.T) {
	b, err := colorsort.New(
		[][]colorsort.Object{{"a", "a"}, {"b"}, {}, {"b"}},
		[]int{2, 2, 2, 2},
	)
	require.NoError(t, err)

	lvl := FromBoard(b)
	require.Len(t, lvl.Rows, 2)
	assert.Len(t, lvl.Rows[0], 3)
	assert.Len(t, lvl.Rows[1], 1)
	assert.Equal(t, 2, lvl.Rows[0][0].BaseHeight)
	assert.Equal(t, []colorsort.Object{"a", "a"}, lvl.Rows[0][0].Objects)
}

func TestLevelBoardRoundTrip(t *testing.T) {
	b, err := colorsort.New(
		[][]colorsort.Object{{"a", "a"}, {"b"}, {}, {"b"}},
		[]int{2, 2, 3, 2},
	)
	require.NoError(t, err)

	back, err := FromBoard(b).Board()
	require.NoError(t, err)
	assert.Equal(t, b.Key(), back.Key())
	assert.Equal(t, b.Heights(), back.Heights())
}

func TestLevelJSONShape(t *testing.T) {
	b, err := colorsort.New(
		[][]colorsort.Object{{"red"}, {}},
		[]int{2, 2},
	)
	require.NoError(t, err)

	payload, err := json.Marshal(FromBoard(b))
	require.NoError(t, err)
	assert.JSONEq(t, `{"rows":[[
		{"baseHeight":2,"objects":["red"]},
		{"baseHeight":2,"objects":[]}
	]]}`, string(payload))
}

func TestLevelGobRoundTrip(t *testing.T) {
	b, err := colorsort.New(
		[][]colorsort.Object{{"a", "a"}, {"b", "b"}, {"b"}},
		[]int{2, 2, 2},
	)
	require.NoError(t, err)
	lvl := FromBoard(b)

	buf, err := lvl.Bytes()
	require.NoError(t, err)
	decoded, err := Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, lvl, decoded)
}

func TestLevelBoardValidation(t *testing.T) {
	lvl := &Level{Rows: [][]Cell{{
		{BaseHeight: 1, Objects: []colorsort.Object{"a", "a"}},
	}}}
	_, err := lvl.Board()
	assert.Error(t, err)
}
