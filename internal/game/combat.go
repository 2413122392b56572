package game

import (
	"context"

	"github.com/samdwyer/terminalquests/internal/combat"
	"github.com/samdwyer/terminalquests/internal/entity"
)

const fightPrompt = "Fight action (attack/heal/run): "

// fight runs an encounter with the enemy on the player's tile, reading one
// action per turn until it ends.
func (g *Game) fight(ctx context.Context, enemy *entity.Enemy) (combat.Outcome, error) {
	g.state = StateCombat
	defer func() {
		if g.state == StateCombat {
			g.state = StateExplore
		}
	}()

	enc := combat.Begin(ctx, g.player, enemy, g.floor.Number, g.src)
	g.console.Say(g.console.Styled(enc.Opening(), enemy.Color(), true))

	for enc.Outcome() == combat.Ongoing {
		line, err := g.console.Prompt(fightPrompt)
		if err != nil {
			return enc.Outcome(), err
		}

		result := enc.Step(ctx, line)
		for _, msg := range result.Messages {
			g.console.Println(msg)
		}
	}

	g.logger.Debug("combat ended",
		"floor", g.floor.Number,
		"enemy", enemy.GetName(),
		"outcome", enc.Outcome().String(),
		"turns", enc.Turns(),
		"health", g.player.Health,
	)
	return enc.Outcome(), nil
}
