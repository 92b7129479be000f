package colorsort

import "errors"

// ErrNotSolved is returned by BackPropagate when its input board is not
// in a solved state. This is a caller-contract violation, not a
// recoverable runtime condition.
var ErrNotSolved = errors.New("colorsort: back propagation requires a solved board")

// BackPropagate enumerates every board U such that applying exactly one
// legal forward move to U yields b. The receiver must be solved.
//
// For each base the top uniform run is peeled off in every length r and
// placed onto every other base with room; the forward move from the
// candidate back to b is legal by construction. Candidates that are
// themselves solved are excluded: a solved predecessor of a solved
// state is not a meaningful scramble step.
func (b *Board) BackPropagate() ([]*Board, error) {
	if !b.Solved() {
		return nil, ErrNotSolved
	}
	var result []*Board
	for tgt := range b.bases {
		color, run := b.topRun(tgt)
		if run == 0 {
			continue
		}
		for r := 1; r <= run; r++ {
			for src := range b.bases {
				if src == tgt {
					continue
				}
				if len(b.bases[src])+r > b.heights[src] {
					continue
				}
				// After peeling r objects off tgt its new top must
				// still match the moved color, or tgt must be empty;
				// on a solved board every base is uniform so this
				// only guards against malformed state.
				rest := b.bases[tgt][:len(b.bases[tgt])-r]
				if len(rest) > 0 && rest[len(rest)-1] != color {
					continue
				}
				candidate := b.Clone()
				candidate.transfer(Move{Src: tgt, Dst: src, Count: r})
				if candidate.Solved() {
					continue
				}
				result = append(result, candidate)
			}
		}
	}
	return result, nil
}
