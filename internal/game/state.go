// Package game provides the Relic Runner game loop and state management.
package game

// State represents the current game state.
type State int

const (
	// StateExplore is the default mode: the player issues movement and utility commands.
	StateExplore State = iota
	// StateCombat is active while the player fights the enemy on the current tile.
	StateCombat
	// StateDefeat is terminal: the player fell in battle or to a trap.
	StateDefeat
	// StateVictory is terminal: every floor was cleared.
	StateVictory
	// StateQuit is terminal: the player left, or input ran out.
	StateQuit
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateCombat:
		return "combat"
	case StateDefeat:
		return "defeat"
	case StateVictory:
		return "victory"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Done reports whether the state ends the run.
func (s State) Done() bool {
	return s == StateDefeat || s == StateVictory || s == StateQuit
}
