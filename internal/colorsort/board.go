// Package colorsort implements the board model, move engine, scrambler
// and breadth-first solver for a color-sorting puzzle: fixed-capacity
// bases hold colored objects, and the board is solved when every
// non-empty base is filled to capacity with a single color.
package colorsort

import (
	"fmt"
	"log/slog"
	"strings"
)

var Log *slog.Logger = slog.Default()

// Object is an opaque color identifier occupying one slot in a base.
type Object string

// Board is an ordered collection of bases, each a stack of objects
// (last element on top) with a fixed capacity. Capacities may differ
// per base but never change once the board is constructed.
type Board struct {
	bases   [][]Object
	heights []int
}

// New validates bases against their declared capacities and returns the
// board. Construction fails on a length mismatch, a non-positive
// capacity, or a base holding more objects than its capacity.
func New(bases [][]Object, heights []int) (*Board, error) {
	if len(bases) != len(heights) {
		return nil, fmt.Errorf(
			"colorsort: %d bases but %d heights", len(bases), len(heights),
		)
	}
	b := &Board{
		bases:   make([][]Object, len(bases)),
		heights: make([]int, len(heights)),
	}
	for i, base := range bases {
		if heights[i] <= 0 {
			return nil, fmt.Errorf(
				"colorsort: base %d has non-positive capacity %d", i, heights[i],
			)
		}
		if len(base) > heights[i] {
			return nil, fmt.Errorf(
				"colorsort: base %d holds %d objects over capacity %d",
				i, len(base), heights[i],
			)
		}
		b.bases[i] = append([]Object(nil), base...)
		b.heights[i] = heights[i]
	}
	return b, nil
}

// NewSolved builds the canonical solved board for a level: one full
// base per color plus empty spares up to baseCount. At most
// baseCount-1 colors are used so at least one spare base remains.
func NewSolved(colors []Object, baseCount, height int) (*Board, error) {
	if baseCount < 2 {
		return nil, fmt.Errorf("colorsort: need at least 2 bases, got %d", baseCount)
	}
	if height <= 0 {
		return nil, fmt.Errorf("colorsort: non-positive base height %d", height)
	}
	colorCount := min(len(colors), baseCount-1)
	bases := make([][]Object, baseCount)
	heights := make([]int, baseCount)
	for i := range bases {
		heights[i] = height
		if i < colorCount {
			base := make([]Object, height)
			for k := range base {
				base[k] = colors[i]
			}
			bases[i] = base
		}
	}
	return &Board{bases: bases, heights: heights}, nil
}

// BaseCount returns the number of bases on the board.
func (b *Board) BaseCount() int { return len(b.bases) }

// Height returns the capacity of base i.
func (b *Board) Height(i int) int { return b.heights[i] }

// Base returns a copy of the objects in base i, bottom first. The
// result is never nil so an empty base serializes as an empty list.
func (b *Board) Base(i int) []Object {
	out := make([]Object, len(b.bases[i]))
	copy(out, b.bases[i])
	return out
}

// Bases returns a deep copy of all bases.
func (b *Board) Bases() [][]Object {
	out := make([][]Object, len(b.bases))
	for i := range b.bases {
		out[i] = append([]Object(nil), b.bases[i]...)
	}
	return out
}

// Heights returns a copy of all base capacities.
func (b *Board) Heights() []int {
	return append([]int(nil), b.heights...)
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	return &Board{bases: b.Bases(), heights: b.Heights()}
}

// Solved reports whether every base is either empty or filled to
// capacity with a single color.
func (b *Board) Solved() bool {
	for i, base := range b.bases {
		if len(base) == 0 {
			continue
		}
		if len(base) != b.heights[i] {
			return false
		}
		for _, o := range base {
			if o != base[0] {
				return false
			}
		}
	}
	return true
}

// Key returns a canonical encoding of the board contents, suitable as
// a visited-set key. Boards with equal bases in equal order share a key.
func (b *Board) Key() string {
	var sb strings.Builder
	for _, base := range b.bases {
		for _, o := range base {
			sb.WriteString(string(o))
			sb.WriteByte(0x1f) // unit separator
		}
		sb.WriteByte(0x1e) // record separator
	}
	return sb.String()
}

// free returns the remaining capacity of base i.
func (b *Board) free(i int) int {
	return b.heights[i] - len(b.bases[i])
}

// topRun returns the top color of base i and the length of the
// contiguous run of that color ending at the top. A run of 0 means the
// base is empty.
func (b *Board) topRun(i int) (Object, int) {
	base := b.bases[i]
	if len(base) == 0 {
		return "", 0
	}
	color := base[len(base)-1]
	run := 1
	for k := len(base) - 2; k >= 0 && base[k] == color; k-- {
		run++
	}
	return color, run
}
