// Package entity provides the player and the monsters of Relic Runner.
package entity

const (
	StartHealth  = 20
	StartAttack  = 4
	StartPotions = 3
)

// HealthCap returns the maximum health allowed on the given floor.
func HealthCap(floor int) int {
	return StartHealth + 2*floor
}

// Player represents the relic runner.
type Player struct {
	Name    string
	Health  int
	Attack  int // only ever grows, via shard events
	Potions int
	Relics  int // cumulative across floors
	X, Y    int // position on the current floor
}

// NewPlayer creates a player with starting stats at the origin.
func NewPlayer() *Player {
	return &Player{
		Name:    "You",
		Health:  StartHealth,
		Attack:  StartAttack,
		Potions: StartPotions,
	}
}

// Position returns the current x, y coordinates.
func (p *Player) Position() (int, int) {
	return p.X, p.Y
}

// MoveTo places the player at the given coordinates.
func (p *Player) MoveTo(x, y int) {
	p.X = x
	p.Y = y
}

// IsAlive returns true if the player has health remaining.
func (p *Player) IsAlive() bool { return p.Health > 0 }

// GetName returns the player's display name.
func (p *Player) GetName() string { return p.Name }

// GetHP returns current health.
func (p *Player) GetHP() int { return p.Health }

// GetAttack returns attack stat.
func (p *Player) GetAttack() int { return p.Attack }

// TakeDamage reduces health and returns the damage dealt.
// Health may go below zero; callers treat anything <= 0 as dead.
func (p *Player) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	p.Health -= amount
	return amount
}

// Heal restores up to amount health without exceeding limit and returns the
// health actually gained.
func (p *Player) Heal(amount, limit int) int {
	if amount <= 0 || p.Health >= limit {
		return 0
	}
	before := p.Health
	p.Health += amount
	if p.Health > limit {
		p.Health = limit
	}
	return p.Health - before
}

// UsePotion consumes a potion, returning false when none are left.
func (p *Player) UsePotion() bool {
	if p.Potions <= 0 {
		return false
	}
	p.Potions--
	return true
}

// SharpenAttack raises attack; negative gains are ignored.
func (p *Player) SharpenAttack(gain int) {
	if gain > 0 {
		p.Attack += gain
	}
}
