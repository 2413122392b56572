package game

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/terminalquests/internal/entity"
	"github.com/samdwyer/terminalquests/internal/gamedata"
	"github.com/samdwyer/terminalquests/internal/logging"
	"github.com/samdwyer/terminalquests/internal/rng"
	"github.com/samdwyer/terminalquests/internal/telemetry"
	"github.com/samdwyer/terminalquests/internal/ui"
	"github.com/samdwyer/terminalquests/internal/world"
)

const (
	outOfCombatHealMin = 4
	outOfCombatHealMax = 7
	descendHeal        = 3
)

const intro = `Welcome to RELIC RUNNER.

Your goal: clear 5 dungeon floors. On each floor, collect 3 relics, then reach the exit.

This is intentionally paced to run around 30 minutes for most players.`

// floorGenerator builds floor n.
type floorGenerator func(ctx context.Context, n int) *world.Floor

// Game holds the entire game state.
type Game struct {
	console  *ui.Console
	renderer *ui.Renderer
	src      *rng.Source
	kinds    *gamedata.EnemyRegistry
	logger   *slog.Logger
	generate floorGenerator

	runID  string
	player *entity.Player
	floor  *world.Floor
	state  State
}

// New creates a new game instance.
func New(cfg Config) (*Game, error) {
	if cfg.In == nil || cfg.Out == nil {
		return nil, errors.New("game needs both input and output")
	}
	if cfg.Source == nil {
		return nil, errors.New("game needs a random source")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	console := ui.NewConsole(cfg.In, cfg.Out, cfg.Color)
	g := &Game{
		console:  console,
		renderer: ui.NewRenderer(console),
		src:      cfg.Source,
		kinds:    cfg.Kinds,
		logger:   logger,
		runID:    uuid.NewString(),
		player:   entity.NewPlayer(),
		state:    StateExplore,
	}
	g.generate = func(ctx context.Context, n int) *world.Floor {
		return world.Generate(ctx, n, g.src, g.kinds)
	}
	return g, nil
}

// State returns the current game state.
func (g *Game) State() State { return g.state }

// Player returns the player.
func (g *Game) Player() *entity.Player { return g.player }

// Run plays floors until the player wins, dies or quits. Game outcomes are
// not errors; only infrastructure failures are returned.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.run")
	defer func() {
		span.SetAttributes(
			attribute.String("outcome", g.state.String()),
			attribute.Int("player.relics", g.player.Relics),
			attribute.Int("player.attack", g.player.Attack),
			attribute.Int("dice.faults", g.src.Faults()),
		)
		span.End()
		if n := g.src.Faults(); n > 0 {
			g.logger.Warn("dice roller failed, draws fell back to 1", "run_id", g.runID, "faults", n)
		}
	}()
	span.SetAttributes(attribute.String("run_id", g.runID))

	g.console.Println()
	g.console.Say(intro)
	g.console.Println(helpText)

	for n := 1; n <= world.Floors; n++ {
		err := g.playFloor(ctx, n)
		if errors.Is(err, ui.ErrInputClosed) {
			g.console.Println()
			g.console.Println("Thanks for playing.")
			g.state = StateQuit
			return nil
		}
		if err != nil {
			return err
		}
		if g.state.Done() {
			g.logger.Debug("run ended", "run_id", g.runID, "state", g.state.String(), "floor", n)
			return nil
		}
	}

	g.state = StateVictory
	g.console.Println()
	g.console.Println("You escaped with all relics. Victory!")
	g.logger.Debug("run won", "run_id", g.runID, "relics", g.player.Relics)
	return nil
}

// playFloor runs one floor. It returns with g.state still StateExplore when
// the floor was cleared.
func (g *Game) playFloor(ctx context.Context, n int) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "floor.start")
	span.SetAttributes(attribute.Int("floor", n))
	defer span.End()

	g.floor = g.generate(ctx, n)
	g.player.MoveTo(world.Origin.X, world.Origin.Y)
	g.logger.Debug("floor generated",
		"floor", n, "relics", g.floor.RelicsRemaining(), "enemies", len(g.floor.Enemies))

	g.console.Printf("\n=== FLOOR %d/%d ===\n", n, world.Floors)

	outcome, err := g.enterTile(ctx)
	for {
		if err != nil {
			return err
		}
		switch outcome {
		case tileDead:
			g.state = StateDefeat
			return nil
		case tileFloorClear:
			g.descend()
			return nil
		}
		if !g.player.IsAlive() {
			g.console.Println("Game over.")
			g.state = StateDefeat
			return nil
		}

		var line string
		line, err = g.console.Prompt("\nCommand: ")
		if err != nil {
			return err
		}
		outcome, err = g.handleCommand(ctx, ParseCommand(line))
		if g.state == StateQuit {
			return err
		}
	}
}

// handleCommand applies one exploration command.
func (g *Game) handleCommand(ctx context.Context, cmd Command) (tileOutcome, error) {
	switch cmd {
	case CmdQuit:
		g.console.Println("Thanks for playing.")
		g.state = StateQuit
	case CmdHelp:
		g.console.Println(helpText)
	case CmdLook:
		g.renderer.MiniMap(g.floor, g.playerPos())
	case CmdStats:
		g.console.Printf("HP: %d | ATK: %d | Potions: %d | Relics this floor: %d/%d\n",
			g.player.Health, g.player.Attack, g.player.Potions,
			g.floor.RelicsCollected(), world.TargetRelics)
	case CmdHeal:
		g.drinkPotion()
	case CmdNorth, CmdSouth, CmdEast, CmdWest:
		if !g.move(cmd) {
			return tileContinue, nil
		}
		return g.enterTile(ctx)
	default:
		g.console.Println("Unknown command. Type 'help'.")
	}
	return tileContinue, nil
}

// move steps the player one cell, reporting false when a wall is in the way.
func (g *Game) move(cmd Command) bool {
	delta, ok := cmd.Delta()
	if !ok {
		return false
	}
	next := g.playerPos().Add(delta.X, delta.Y)
	if !g.floor.InBounds(next) {
		g.console.Println("You hit a stone wall.")
		return false
	}
	g.player.MoveTo(next.X, next.Y)
	g.console.Printf("You move to (%d, %d).\n", next.X+1, next.Y+1)
	return true
}

// drinkPotion heals outside of combat.
func (g *Game) drinkPotion() {
	if !g.player.UsePotion() {
		g.console.Println("No potions left.")
		return
	}
	restored := g.src.Between(outOfCombatHealMin, outOfCombatHealMax)
	g.player.Heal(restored, entity.HealthCap(g.floor.Number))
	g.console.Printf("You healed for %d. HP is now %d.\n", restored, g.player.Health)
}

// descend rewards clearing a floor.
func (g *Game) descend() {
	g.console.Println("You descend to the next floor...")
	g.player.Potions++
	g.player.Heal(descendHeal, entity.HealthCap(g.floor.Number))
}

// playerPos returns the player's cell.
func (g *Game) playerPos() world.Pos {
	x, y := g.player.Position()
	return world.Pos{X: x, Y: y}
}
