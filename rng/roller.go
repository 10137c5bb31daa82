// Package rng provides the single seeded source of randomness the engine
// consults for every stochastic decision (the opening deck shuffle,
// ranged damage rolls, random target selection, discover sampling, Brawl
// survivor). Every effect that samples must go through a Roller so that
// (seed, commands) -> events stays reproducible across runs.
//
// The implementation is backed by a seeded math/rand/v2
// source rather than crypto/rand: the engine's determinism requirement
// (byte-identical event streams from a given seed) is incompatible with a
// non-seedable CSPRNG.
package rng

import (
	"fmt"
	"math/rand/v2"
)

// Roller is the interface for random number generation in the engine.
//
//go:generate mockgen -destination=rngmock/mock_roller.go -package=rngmock github.com/bjorn-karlsson/hearthstone-sub000/rng Roller
type Roller interface {
	// Roll returns a random integer in [1, size]. Returns an error if
	// size <= 0. Used by ranged-damage effects rolling within [min, max].
	Roll(size int) (int, error)

	// Intn returns a random integer in [0, n). Returns an error if n <= 0.
	// Used for uniform index selection (Brawl survivor, discover sampling,
	// random target pool selection).
	Intn(n int) (int, error)

	// Shuffle permutes a slice of indices [0, n) using Fisher-Yates, driven
	// by this roller's source. Used for the opening deck shuffle.
	Shuffle(n int, swap func(i, j int))
}

// SeededRoller is the deterministic Roller implementation: a single
// math/rand/v2.Rand seeded once at game creation and consulted for every
// subsequent stochastic decision in the game's lifetime.
type SeededRoller struct {
	r *rand.Rand
}

// New creates a SeededRoller from a 64-bit seed. The same seed always
// produces the same sequence of results.
func New(seed uint64) *SeededRoller {
	return &SeededRoller{r: rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))}
}

// Roll returns a random integer in [1, size].
func (s *SeededRoller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("rng: invalid die size %d", size)
	}
	return s.r.IntN(size) + 1, nil
}

// Intn returns a random integer in [0, n).
func (s *SeededRoller) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("rng: invalid bound %d", n)
	}
	return s.r.IntN(n), nil
}

// Shuffle permutes indices [0, n) via the Fisher-Yates algorithm driven by
// this roller, calling swap(i, j) for each transposition.
func (s *SeededRoller) Shuffle(n int, swap func(i, j int)) {
	s.r.Shuffle(n, swap)
}
