package main

import (
	"hash/maphash"
	"math/rand/v2"
)

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// newRand builds a generator private to one generation task. rand.Rand
// is not safe for concurrent use, so handlers never share one. When
// GENERATION_SEED is set the stream is keyed by level number, which
// makes repeated runs rebuild identical levels.
func (app *application) newRand(number int) *rand.Rand {
	if app.gen.Seed != 0 {
		return rand.New(rand.NewPCG(app.gen.Seed, uint64(number)))
	}
	return createRand()
}
