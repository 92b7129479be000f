// Package colors supplies the ordered, duplicate-free list of color
// identifiers used when building solved boards. The game client names
// its sprites object_<color>.png, so the canonical source is a scan of
// the image directory; a static list covers configs and tests.
package colors

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/vancomm/colorsort-server/internal/colorsort"
)

const (
	spritePrefix = "object_"
	spriteSuffix = ".png"
)

// Dir extracts color names from object_*.png files under dir in fsys,
// sorted by file name and deduplicated.
func Dir(fsys fs.FS, dir string) ([]colorsort.Object, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("unable to scan color sprites: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := path.Base(e.Name())
		if !strings.HasPrefix(name, spritePrefix) ||
			!strings.HasSuffix(name, spriteSuffix) {
			continue
		}
		names = append(names, strings.TrimSuffix(
			strings.TrimPrefix(name, spritePrefix), spriteSuffix,
		))
	}
	sort.Strings(names)
	return Static(names...), nil
}

// Static returns the given names as colors, preserving order and
// dropping duplicates.
func Static(names ...string) []colorsort.Object {
	seen := make(map[string]struct{}, len(names))
	out := make([]colorsort.Object, 0, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, colorsort.Object(name))
	}
	return out
}
