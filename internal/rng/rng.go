// Package rng provides the random draws used by both games on top of a
// dice.Roller, so tests can force specific outcomes.
package rng

//go:generate mockgen -destination=mock/mock_roller.go -package=rngmock github.com/KirkDiggler/rpg-toolkit/dice Roller

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// SeededRoller is a reproducible dice.Roller backed by math/rand.
type SeededRoller struct {
	seed int64
	r    *rand.Rand
}

// NewSeededRoller creates a roller. A seed of 0 picks one from the clock.
func NewSeededRoller(seed int64) *SeededRoller {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &SeededRoller{
		seed: seed,
		r:    rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the effective seed.
func (s *SeededRoller) Seed() int64 { return s.seed }

// Roll returns a value in [1, size].
func (s *SeededRoller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("die size must be positive, got %d", size)
	}
	return s.r.Intn(size) + 1, nil
}

// RollN rolls count dice of the given size.
func (s *SeededRoller) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, fmt.Errorf("dice count must not be negative, got %d", count)
	}
	results := make([]int, count)
	for i := range results {
		v, err := s.Roll(size)
		if err != nil {
			return nil, err
		}
		results[i] = v
	}
	return results, nil
}

var _ dice.Roller = (*SeededRoller)(nil)

// Source turns die rolls into the ranges and chances the games need.
//
// Draws never fail. If the roller returns an error or a face outside
// [1, size], the face is taken as 1 (the low end of every range, and a
// success for Chance) and the fault is counted; see Faults.
type Source struct {
	roller dice.Roller
	faults int
}

// New wraps a roller.
func New(roller dice.Roller) *Source {
	return &Source{roller: roller}
}

// NewSeeded returns a Source over a SeededRoller.
func NewSeeded(seed int64) *Source {
	return New(NewSeededRoller(seed))
}

// roll returns a value in [1, size]. A failing roller yields 1.
func (s *Source) roll(size int) int {
	v, err := s.roller.Roll(size)
	if err != nil || v < 1 || v > size {
		s.faults++
		return 1
	}
	return v
}

// Faults returns how many draws fell back to 1 because the roller failed.
func (s *Source) Faults() int { return s.faults }

// Between returns a uniform integer in [lo, hi].
func (s *Source) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.roll(hi-lo+1) - 1
}

// Intn returns a uniform integer in [0, n).
func (s *Source) Intn(n int) int {
	if n <= 1 {
		return 0
	}
	return s.roll(n) - 1
}

// Percent rolls a d100.
func (s *Source) Percent() int {
	return s.roll(100)
}

// Chance succeeds on a d100 roll of pct or lower, i.e. with probability pct/100.
func (s *Source) Chance(pct int) bool {
	return s.Percent() <= pct
}

// Shuffle permutes n elements with Fisher-Yates.
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := s.Intn(i + 1)
		swap(i, j)
	}
}
