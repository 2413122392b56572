package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/terminalquests/internal/gamedata"
)

// Enemy represents a hostile creature guarding a tile.
// It has no identity beyond the tile it occupies.
type Enemy struct {
	Kind   *gamedata.EnemyKind // cosmetic; nil for plain enemies
	HP     int                 // only ever decreases
	Attack int                 // fixed for the enemy's lifetime
}

// NewEnemy creates an enemy with the given stats.
func NewEnemy(kind *gamedata.EnemyKind, hp, attack int) *Enemy {
	return &Enemy{
		Kind:   kind,
		HP:     hp,
		Attack: attack,
	}
}

// GetName returns the enemy's display name.
func (e *Enemy) GetName() string {
	if e.Kind != nil && e.Kind.Name != "" {
		return e.Kind.Name
	}
	return "Enemy"
}

// Color returns the colour the enemy is announced in.
func (e *Enemy) Color() tcell.Color {
	if e.Kind != nil {
		return e.Kind.TCellColor()
	}
	return tcell.ColorRed
}

// IsAlive returns true if the enemy has HP remaining.
func (e *Enemy) IsAlive() bool { return e.HP > 0 }

// GetHP returns current HP.
func (e *Enemy) GetHP() int { return e.HP }

// GetAttack returns attack stat.
func (e *Enemy) GetAttack() int { return e.Attack }

// TakeDamage reduces HP and returns the damage dealt. HP may go negative.
func (e *Enemy) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	e.HP -= amount
	return amount
}
