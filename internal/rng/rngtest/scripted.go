// Package rngtest provides deterministic rollers for tests.
package rngtest

import (
	"fmt"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// ScriptedRoller returns queued die faces in order. Once the script runs out
// it keeps returning Fallback, clamped to the die size.
type ScriptedRoller struct {
	mu       sync.Mutex
	faces    []int
	Fallback int
	calls    []int // sizes requested, in order
}

// NewScriptedRoller queues the given faces.
func NewScriptedRoller(faces ...int) *ScriptedRoller {
	return &ScriptedRoller{faces: faces, Fallback: 1}
}

// Push appends faces to the script.
func (s *ScriptedRoller) Push(faces ...int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faces = append(s.faces, faces...)
}

// Roll pops the next face.
func (s *ScriptedRoller) Roll(size int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if size <= 0 {
		return 0, fmt.Errorf("die size must be positive, got %d", size)
	}
	s.calls = append(s.calls, size)

	face := s.Fallback
	if len(s.faces) > 0 {
		face = s.faces[0]
		s.faces = s.faces[1:]
	}
	if face > size {
		face = size
	}
	if face < 1 {
		face = 1
	}
	return face, nil
}

// RollN pops count faces.
func (s *ScriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, 0, count)
	for i := 0; i < count; i++ {
		v, err := s.Roll(size)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Remaining returns how many scripted faces have not been used.
func (s *ScriptedRoller) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.faces)
}

// Calls returns the die sizes requested so far.
func (s *ScriptedRoller) Calls() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int, len(s.calls))
	copy(out, s.calls)
	return out
}

var _ dice.Roller = (*ScriptedRoller)(nil)
