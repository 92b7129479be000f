package colors

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/colorsort-server/internal/colorsort"
)

func TestDir(t *testing.T) {
	fsys := fstest.MapFS{
		"img/object_red.png":   {},
		"img/object_blue.png":  {},
		"img/object_green.png": {},
		"img/background.png":   {},
		"img/notes.txt":        {},
	}

	got, err := Dir(fsys, "img")
	require.NoError(t, err)
	assert.Equal(t, []colorsort.Object{"blue", "green", "red"}, got)
}

func TestDirMissing(t *testing.T) {
	_, err := Dir(fstest.MapFS{}, "img")
	assert.Error(t, err)
}

func TestStatic(t *testing.T) {
	got := Static("red", "blue", "red", "green")
	assert.Equal(t, []colorsort.Object{"red", "blue", "green"}, got)
}
