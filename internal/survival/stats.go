// Package survival provides the Boredom Quest day loop: three stats to keep
// above zero for thirty days.
package survival

import (
	"fmt"

	"github.com/samdwyer/terminalquests/internal/gamedata"
)

const (
	// TotalDays is how long the player must last.
	TotalDays = 30

	StartEnergy   = 6
	StartMorale   = 6
	StartSupplies = 6

	statMin = 0
	statMax = 12
)

// Stats are the three resources of a run.
type Stats struct {
	Energy   int
	Morale   int
	Supplies int
}

// NewStats returns the starting stats.
func NewStats() Stats {
	return Stats{Energy: StartEnergy, Morale: StartMorale, Supplies: StartSupplies}
}

// Clamp bounds every stat to [0, 12].
func (s *Stats) Clamp() {
	s.Energy = clamp(s.Energy)
	s.Morale = clamp(s.Morale)
	s.Supplies = clamp(s.Supplies)
}

// Apply adds the effects, then clamps.
func (s *Stats) Apply(e gamedata.Effects) {
	s.Energy += e.Energy
	s.Morale += e.Morale
	s.Supplies += e.Supplies
	s.Clamp()
}

// Depleted reports whether any stat has run out.
func (s Stats) Depleted() bool {
	return s.Energy <= statMin || s.Morale <= statMin || s.Supplies <= statMin
}

// String renders the stats line shown each day.
func (s Stats) String() string {
	return fmt.Sprintf("Stats -> Energy: %2d | Morale: %2d | Supplies: %2d", s.Energy, s.Morale, s.Supplies)
}

func clamp(v int) int {
	return max(statMin, min(statMax, v))
}

// Decay applies the pressure of time at the end of a day: supplies always
// drop, morale every fifth day and energy every sixth.
func Decay(day int, s *Stats) {
	s.Supplies--
	if day%5 == 0 {
		s.Morale--
	}
	if day%6 == 0 {
		s.Energy--
	}
	s.Clamp()
}
