// Package combat provides the one-on-one turn-based combat of Relic Runner.
package combat

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/terminalquests/internal/entity"
	"github.com/samdwyer/terminalquests/internal/rng"
	"github.com/samdwyer/terminalquests/internal/telemetry"
)

const (
	fleePercent       = 45 // chance that "run" succeeds
	potionDropPercent = 35 // chance a defeated enemy drops a potion

	potionHealMin = 4
	potionHealMax = 8
)

// Outcome is the state of an encounter.
type Outcome int

const (
	// Ongoing - waiting for the player's next action
	Ongoing Outcome = iota
	// PlayerWon - the enemy is down
	PlayerWon
	// PlayerLost - the player is down; the run is over
	PlayerLost
	// PlayerFled - the player escaped; the enemy stays on its tile
	PlayerFled
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case Ongoing:
		return "ongoing"
	case PlayerWon:
		return "player_won"
	case PlayerLost:
		return "player_lost"
	case PlayerFled:
		return "player_fled"
	default:
		return "unknown"
	}
}

// Action is a fight command.
type Action string

const (
	ActionAttack  Action = "attack"
	ActionHeal    Action = "heal"
	ActionRun     Action = "run"
	ActionUnknown Action = ""
)

// ParseAction normalizes raw input into an Action.
func ParseAction(input string) Action {
	switch a := Action(strings.ToLower(strings.TrimSpace(input))); a {
	case ActionAttack, ActionHeal, ActionRun:
		return a
	default:
		return ActionUnknown
	}
}

// TurnResult describes what one action did.
type TurnResult struct {
	Action       Action
	Messages     []string
	Outcome      Outcome
	EnemyDamage  int // dealt by the player
	PlayerDamage int // dealt by the enemy
	Healing      int
	Retaliated   bool
}

// AttackDamage rolls the player's hit: [max(1, atk-1), atk+2].
func AttackDamage(src *rng.Source, attack int) int {
	return src.Between(max(1, attack-1), attack+2)
}

// RetaliationDamage rolls the enemy's hit: [max(1, atk-1), atk+1].
func RetaliationDamage(src *rng.Source, attack int) int {
	return src.Between(max(1, attack-1), attack+1)
}

// Encounter resolves a fight between the player and one enemy.
type Encounter struct {
	player  *entity.Player
	enemy   *entity.Enemy
	floor   int
	src     *rng.Source
	outcome Outcome
	turns   int
}

// Begin starts an encounter on the given floor.
func Begin(ctx context.Context, player *entity.Player, enemy *entity.Enemy, floor int, src *rng.Source) *Encounter {
	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "combat.start")
	span.SetAttributes(
		attribute.String("enemy", enemy.GetName()),
		attribute.Int("enemy.hp", enemy.GetHP()),
		attribute.Int("enemy.attack", enemy.GetAttack()),
		attribute.Int("player.health", player.GetHP()),
		attribute.Int("floor", floor),
	)
	span.End()

	return &Encounter{
		player:  player,
		enemy:   enemy,
		floor:   floor,
		src:     src,
		outcome: Ongoing,
	}
}

// Opening returns the line announcing the enemy.
func (e *Encounter) Opening() string {
	return fmt.Sprintf("%s blocks your way! (HP %d, ATK %d)",
		article(e.enemy.GetName()), e.enemy.GetHP(), e.enemy.GetAttack())
}

// Outcome returns the current state.
func (e *Encounter) Outcome() Outcome { return e.outcome }

// Turns returns how many actions have been taken, including no-ops.
func (e *Encounter) Turns() int { return e.turns }

// Step applies one raw action. Once the encounter has ended it does nothing.
func (e *Encounter) Step(ctx context.Context, input string) TurnResult {
	action := ParseAction(input)
	result := TurnResult{Action: action, Outcome: e.outcome}
	if e.outcome != Ongoing {
		return result
	}

	tracer := telemetry.Tracer("combat")
	ctx, span := tracer.Start(ctx, "combat.turn")
	defer span.End()

	e.turns++
	retaliate := e.act(action, &result)

	if retaliate && e.enemy.IsAlive() {
		incoming := RetaliationDamage(e.src, e.enemy.GetAttack())
		e.player.TakeDamage(incoming)
		result.PlayerDamage = incoming
		result.Retaliated = true
		result.Messages = append(result.Messages, fmt.Sprintf("%s hits you for %d. Your HP: %d",
			e.enemy.GetName(), incoming, max(0, e.player.GetHP())))
	}

	e.settle(&result)
	result.Outcome = e.outcome

	span.SetAttributes(
		attribute.String("action", string(action)),
		attribute.Int("turn", e.turns),
		attribute.Int("damage.dealt", result.EnemyDamage),
		attribute.Int("damage.taken", result.PlayerDamage),
		attribute.Int("healing", result.Healing),
		attribute.String("outcome", e.outcome.String()),
	)

	if e.outcome != Ongoing {
		e.end(ctx)
	}
	return result
}

// act applies the player's action and reports whether the enemy gets to
// strike back.
func (e *Encounter) act(action Action, result *TurnResult) bool {
	switch action {
	case ActionAttack:
		damage := AttackDamage(e.src, e.player.GetAttack())
		e.enemy.TakeDamage(damage)
		result.EnemyDamage = damage
		result.Messages = append(result.Messages, fmt.Sprintf("You hit for %d. %s HP is now %d.",
			damage, e.enemy.GetName(), max(0, e.enemy.GetHP())))
		return true

	case ActionHeal:
		if !e.player.UsePotion() {
			result.Messages = append(result.Messages, "No potions left.")
			return false
		}
		recovered := e.src.Between(potionHealMin, potionHealMax)
		result.Healing = e.player.Heal(recovered, entity.HealthCap(e.floor))
		result.Messages = append(result.Messages, fmt.Sprintf("You use a potion and recover %d HP.", recovered))
		return true

	case ActionRun:
		if e.src.Chance(fleePercent) {
			e.outcome = PlayerFled
			result.Messages = append(result.Messages, "You escaped!")
			return false
		}
		result.Messages = append(result.Messages, "Escape failed!")
		return true

	default:
		result.Messages = append(result.Messages, "Unknown action.")
		return false
	}
}

// settle moves the encounter to a terminal state once someone is down.
func (e *Encounter) settle(result *TurnResult) {
	if e.outcome != Ongoing {
		return
	}

	if !e.player.IsAlive() {
		e.outcome = PlayerLost
		result.Messages = append(result.Messages, "You fall in battle...")
		return
	}

	if !e.enemy.IsAlive() {
		e.outcome = PlayerWon
		result.Messages = append(result.Messages, e.enemy.GetName()+" defeated!")
		if e.src.Chance(potionDropPercent) {
			e.player.Potions++
			result.Messages = append(result.Messages, "The enemy dropped a healing potion.")
		}
	}
}

// end records the closing span.
func (e *Encounter) end(ctx context.Context) {
	_, span := telemetry.Tracer("combat").Start(ctx, "combat.end",
		trace.WithAttributes(
			attribute.String("outcome", e.outcome.String()),
			attribute.Int("turns_taken", e.turns),
			attribute.Int("player.health_remaining", max(0, e.player.GetHP())),
			attribute.Int("player.potions", e.player.Potions),
		))
	span.End()
}

// article prefixes a name with "A" or "An".
func article(name string) string {
	if name == "" {
		return "An enemy"
	}
	switch strings.ToLower(name[:1]) {
	case "a", "e", "i", "o", "u":
		return "An " + name
	default:
		return "A " + name
	}
}
