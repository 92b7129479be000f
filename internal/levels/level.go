// Package levels turns the colorsort engine into shippable puzzle
// levels: a difficulty schedule maps level numbers to generation
// parameters, and a builder scrambles solved boards until the solver
// accepts the result.
package levels

import (
	"bytes"
	"encoding/gob"

	"github.com/vancomm/colorsort-server/internal/colorsort"
)

// cellsPerRow fixes how many bases are grouped into one row of the
// serialized level. The grouping is cosmetic layout data for the
// client and carries no gameplay meaning.
const cellsPerRow = 3

// Cell is one base of a serialized level.
type Cell struct {
	BaseHeight int                `json:"baseHeight"`
	Objects    []colorsort.Object `json:"objects"`
}

// Level is a frozen board snapshot. Levels are regenerated wholesale on
// retry, never patched in place.
type Level struct {
	Rows [][]Cell `json:"rows"`
}

// FromBoard freezes a board into a level, grouping its bases into rows.
func FromBoard(b *colorsort.Board) *Level {
	lvl := &Level{}
	var row []Cell
	for i := range b.BaseCount() {
		row = append(row, Cell{
			BaseHeight: b.Height(i),
			Objects:    b.Base(i),
		})
		if len(row) == cellsPerRow {
			lvl.Rows = append(lvl.Rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		lvl.Rows = append(lvl.Rows, row)
	}
	return lvl
}

// Board reconstructs the level's board by flattening all cells in
// row-major order. Fails if any cell violates its declared capacity.
func (l *Level) Board() (*colorsort.Board, error) {
	var (
		bases   [][]colorsort.Object
		heights []int
	)
	for _, row := range l.Rows {
		for _, cell := range row {
			bases = append(bases, cell.Objects)
			heights = append(heights, cell.BaseHeight)
		}
	}
	return colorsort.New(bases, heights)
}

// Bytes encodes the level as a gob blob for storage.
func (l Level) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(l)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode restores a level from its gob encoding.
func Decode(buf []byte) (*Level, error) {
	var lvl Level
	err := gob.NewDecoder(bytes.NewBuffer(buf)).Decode(&lvl)
	if err != nil {
		return nil, err
	}
	return &lvl, nil
}
