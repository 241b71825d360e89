package game

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"time"
)

// RandomSource is the randomness a State draws prices from.
// *rand.Rand satisfies it.
type RandomSource interface {
	IntN(n int) int
}

// NewSeededRandom returns a deterministic source for seed, or a time-seeded
// one when seed is 0.
func NewSeededRandom(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return seededRNG(seed)
}

func seededRNG(seed int64) *rand.Rand {
	// Non-cryptographic PRNG is intentional for deterministic simulation behavior.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}
