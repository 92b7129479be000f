package colorsort

import "fmt"

// Move transfers Count objects from the top of base Src to the top of
// base Dst, preserving their relative order.
type Move struct {
	Src, Dst, Count int
}

func (m Move) String() string {
	return fmt.Sprintf("%d->%d(%d)", m.Src, m.Dst, m.Count)
}

// InvalidMoveError reports a move rejected by Apply.
type InvalidMoveError struct {
	Move   Move
	Reason string
}

// [InvalidMoveError] implements [error]
func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("invalid move %s: %s", e.Move, e.Reason)
}

// LegalMoves enumerates every game-legal forward move: the moved
// objects must form a uniform run on top of the source, the destination
// top (if any) must match their color, and the destination must have
// room. Enumeration order is stable: source ascending, then destination
// ascending, then count ascending.
func (b *Board) LegalMoves() []Move {
	var moves []Move
	for i := range b.bases {
		color, run := b.topRun(i)
		if run == 0 {
			continue
		}
		for j := range b.bases {
			if i == j {
				continue
			}
			free := b.free(j)
			if free == 0 {
				continue
			}
			if tgt := b.bases[j]; len(tgt) > 0 && tgt[len(tgt)-1] != color {
				continue
			}
			for count := 1; count <= min(run, free); count++ {
				moves = append(moves, Move{Src: i, Dst: j, Count: count})
			}
		}
	}
	return moves
}

// Apply returns a new board with m applied. The receiver is never
// mutated. Returns *InvalidMoveError if m violates forward-move
// legality.
func (b *Board) Apply(m Move) (*Board, error) {
	if m.Src < 0 || m.Src >= len(b.bases) || m.Dst < 0 || m.Dst >= len(b.bases) {
		return nil, &InvalidMoveError{m, "base index out of range"}
	}
	if m.Src == m.Dst {
		return nil, &InvalidMoveError{m, "source and destination are the same base"}
	}
	if m.Count <= 0 {
		return nil, &InvalidMoveError{m, "non-positive count"}
	}
	color, run := b.topRun(m.Src)
	if run == 0 {
		return nil, &InvalidMoveError{m, "source base is empty"}
	}
	if m.Count > run {
		return nil, &InvalidMoveError{m, "moved objects are not a uniform run"}
	}
	if m.Count > b.free(m.Dst) {
		return nil, &InvalidMoveError{m, "destination capacity exceeded"}
	}
	if tgt := b.bases[m.Dst]; len(tgt) > 0 && tgt[len(tgt)-1] != color {
		return nil, &InvalidMoveError{m, "destination top color mismatch"}
	}
	next := b.Clone()
	next.transfer(m)
	return next, nil
}

// ReverseCandidates enumerates every move usable while scrambling: for
// each ordered pair of distinct bases with a non-empty source and a
// destination with free capacity, one move per transferable count. No
// color restriction applies.
func (b *Board) ReverseCandidates() []Move {
	var moves []Move
	for i := range b.bases {
		if len(b.bases[i]) == 0 {
			continue
		}
		for j := range b.bases {
			if i == j {
				continue
			}
			for count := 1; count <= min(len(b.bases[i]), b.free(j)); count++ {
				moves = append(moves, Move{Src: i, Dst: j, Count: count})
			}
		}
	}
	return moves
}

// transfer moves the top m.Count objects from m.Src onto m.Dst in
// place, without any legality check. Callers guarantee the counts fit.
func (b *Board) transfer(m Move) {
	src := b.bases[m.Src]
	cut := len(src) - m.Count
	b.bases[m.Dst] = append(b.bases[m.Dst], src[cut:]...)
	b.bases[m.Src] = src[:cut]
}
