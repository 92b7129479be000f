package colorsort

import (
	"fmt"
	"math/rand/v2"
)

// Strategy selects how Scramble picks its next reverse move.
type Strategy int

const (
	// StrategyUniform draws uniformly from every reverse candidate
	// move on the board.
	StrategyUniform Strategy = iota
	// StrategyPerSource picks a random non-empty source base, limits
	// the transfer to its top uniform run, then picks a random
	// destination with room and a random count.
	StrategyPerSource
)

func (s Strategy) String() string {
	switch s {
	case StrategyUniform:
		return "uniform"
	case StrategyPerSource:
		return "per-source"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy maps a strategy name to its value.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "uniform":
		return StrategyUniform, nil
	case "per-source":
		return StrategyPerSource, nil
	default:
		return 0, fmt.Errorf("unknown scramble strategy %q", name)
	}
}

// Scramble mixes the board in place by applying steps random reverse
// moves. Transfers are unconditional top-to-top and deliberately ignore
// forward-move color legality; capacity is still respected, so the
// move sequence stays reversible and a solution is guaranteed to
// exist. Stops early when no reverse move is available. The result is
// not checked for being solved; callers decide whether to retry.
func (b *Board) Scramble(steps int, strategy Strategy, r *rand.Rand) {
	for range steps {
		var ok bool
		switch strategy {
		case StrategyPerSource:
			ok = b.scramblePerSource(r)
		default:
			ok = b.scrambleUniform(r)
		}
		if !ok {
			return
		}
	}
}

func (b *Board) scrambleUniform(r *rand.Rand) bool {
	moves := b.ReverseCandidates()
	if len(moves) == 0 {
		return false
	}
	b.transfer(moves[r.IntN(len(moves))])
	return true
}

func (b *Board) scramblePerSource(r *rand.Rand) bool {
	var sources []int
	for i, base := range b.bases {
		if len(base) > 0 {
			sources = append(sources, i)
		}
	}
	if len(sources) == 0 {
		return false
	}
	src := sources[r.IntN(len(sources))]
	_, run := b.topRun(src)

	var dsts []int
	for j := range b.bases {
		if j != src && b.free(j) > 0 {
			dsts = append(dsts, j)
		}
	}
	if len(dsts) == 0 {
		return false
	}
	dst := dsts[r.IntN(len(dsts))]

	count := 1 + r.IntN(min(run, b.free(dst)))
	b.transfer(Move{Src: src, Dst: dst, Count: count})
	return true
}
