package game

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/terminalquests/internal/combat"
	"github.com/samdwyer/terminalquests/internal/telemetry"
)

// tileOutcome tells the floor loop what entering a tile led to.
type tileOutcome int

const (
	tileContinue tileOutcome = iota
	tileFloorClear
	tileDead
)

// String returns a human-readable outcome name.
func (o tileOutcome) String() string {
	switch o {
	case tileContinue:
		return "continue"
	case tileFloorClear:
		return "floor_clear"
	case tileDead:
		return "dead"
	default:
		return "unknown"
	}
}

const (
	shardPercent   = 12 // d100 at or below: sharpened shard
	trapPercent    = 90 // d100 above: trap
	eventMinAmount = 1
	eventMaxAmount = 3
)

// enterTile resolves everything that happens on the player's cell: combat,
// relic pickup, the exit check and the random event roll. It runs on every
// entry, including re-entries and the origin at floor start.
func (g *Game) enterTile(ctx context.Context) (outcome tileOutcome, err error) {
	pos := g.playerPos()

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "tile.enter")
	span.SetAttributes(
		attribute.Int("floor", g.floor.Number),
		attribute.Int("x", pos.X),
		attribute.Int("y", pos.Y),
	)
	defer func() {
		span.SetAttributes(attribute.String("outcome", outcome.String()))
		span.End()
	}()

	g.floor.Visit(pos)

	if enemy := g.floor.EnemyAt(pos); enemy != nil {
		result, err := g.fight(ctx, enemy)
		if err != nil {
			return tileContinue, err
		}
		switch result {
		case combat.PlayerLost:
			return tileDead, nil
		case combat.PlayerWon:
			g.floor.RemoveEnemy(pos)
		}
	}

	if g.floor.CollectRelic(pos) {
		g.player.Relics++
		g.console.Say("You found a relic!")
	}

	if pos == g.floor.Exit {
		if g.floor.ExitOpen() {
			g.console.Println("The exit is active. You can proceed to the next floor.")
			return tileFloorClear, nil
		}
		g.console.Say(fmt.Sprintf("Exit sealed. You still need %d relic(s).", g.floor.RelicsRemaining()))
	}

	return g.rollEvent(), nil
}

// rollEvent draws the flavour event for a tile: a shard that may sharpen the
// player's attack, a trap, or nothing.
func (g *Game) rollEvent() tileOutcome {
	roll := g.src.Percent()

	switch {
	case roll <= shardPercent:
		gain := g.src.Between(eventMinAmount, eventMaxAmount) / 2
		g.player.SharpenAttack(gain)
		g.console.Say(fmt.Sprintf("You discover a sharpened shard. Attack +%d.", gain))

	case roll > trapPercent:
		trap := g.src.Between(eventMinAmount, eventMaxAmount)
		g.player.TakeDamage(trap)
		g.console.Say(fmt.Sprintf("A trap scratches you for %d damage.", trap))
		if !g.player.IsAlive() {
			g.console.Println("You succumb to your wounds.")
			return tileDead
		}
	}

	return tileContinue
}
