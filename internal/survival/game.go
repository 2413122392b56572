package survival

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/terminalquests/internal/gamedata"
	"github.com/samdwyer/terminalquests/internal/logging"
	"github.com/samdwyer/terminalquests/internal/rng"
	"github.com/samdwyer/terminalquests/internal/telemetry"
	"github.com/samdwyer/terminalquests/internal/ui"
)

const intro = "You are trapped in a tiny outpost with one mission: make it through " +
	"30 days without running out of Energy, Morale, or Supplies. " +
	"Each day you choose one action. Survive all 30 days to win."

const choicePrompt = "Choose your action [1-3]: "

var (
	titleColor = tcell.ColorAqua
	statsColor = tcell.ColorLightGreen
)

// Outcome is where a run stands.
type Outcome int

const (
	Surviving Outcome = iota
	Won
	Lost
	Quit
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case Surviving:
		return "surviving"
	case Won:
		return "won"
	case Lost:
		return "lost"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// Config configures a Boredom Quest run.
type Config struct {
	In     io.Reader
	Out    io.Writer
	Color  bool
	Source *rng.Source
	Days   *gamedata.DaysFile
	Logger *slog.Logger
}

// Game holds one run.
type Game struct {
	console *ui.Console
	src     *rng.Source
	days    *gamedata.DaysFile
	logger  *slog.Logger
	runID   string

	stats   Stats
	day     int
	outcome Outcome
}

// New creates a run with starting stats.
func New(cfg Config) (*Game, error) {
	if cfg.In == nil || cfg.Out == nil {
		return nil, errors.New("game needs both input and output")
	}
	if cfg.Source == nil {
		return nil, errors.New("game needs a random source")
	}
	if cfg.Days == nil || len(cfg.Days.Prompts) == 0 || len(cfg.Days.Options) != 3 {
		return nil, errors.New("game needs a day table with prompts and 3 options")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	return &Game{
		console: ui.NewConsole(cfg.In, cfg.Out, cfg.Color),
		src:     cfg.Source,
		days:    cfg.Days,
		logger:  logger,
		runID:   uuid.NewString(),
		stats:   NewStats(),
	}, nil
}

// Stats returns the current stats.
func (g *Game) Stats() Stats { return g.stats }

// Day returns the last day started.
func (g *Game) Day() int { return g.day }

// Outcome returns how the run ended, or Surviving while it is still going.
func (g *Game) Outcome() Outcome { return g.outcome }

// Run plays up to TotalDays days. Losing and quitting are outcomes, not errors.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("survival")
	ctx, span := tracer.Start(ctx, "survival.run")
	span.SetAttributes(attribute.String("run_id", g.runID))
	defer func() {
		span.SetAttributes(
			attribute.String("outcome", g.outcome.String()),
			attribute.Int("days", g.day),
			attribute.Int("dice.faults", g.src.Faults()),
		)
		span.End()
		if n := g.src.Faults(); n > 0 {
			g.logger.Warn("dice roller failed, draws fell back to 1", "run_id", g.runID, "faults", n)
		}
	}()

	g.printIntro()

	for g.day = 1; g.day <= TotalDays; g.day++ {
		err := g.playDay(ctx, g.day)
		if errors.Is(err, ui.ErrInputClosed) {
			g.console.Println()
			g.console.Println("Thanks for playing.")
			g.outcome = Quit
			return nil
		}
		if err != nil {
			return err
		}

		if g.stats.Depleted() {
			g.outcome = Lost
			g.console.Println()
			g.console.Println("You could not keep the routine together.")
			g.console.Println(g.styledStats())
			g.console.Printf("Game Over. You lasted %d days.\n", g.day)
			g.logger.Debug("run lost", "run_id", g.runID, "day", g.day)
			return nil
		}
	}
	g.day = TotalDays

	g.outcome = Won
	g.console.Println()
	g.console.Rule("=")
	g.console.Println("You made it through all 30 days. Boredom defeated.")
	g.console.Println(g.styledStats())
	g.console.Println("Victory!")
	g.logger.Debug("run won", "run_id", g.runID)
	return nil
}

func (g *Game) printIntro() {
	g.console.Rule("=")
	g.console.Println(g.console.Styled("BOREDOM QUEST: 30 Days to Stay Busy", titleColor, true))
	g.console.Rule("=")
	g.console.Say(intro)
	g.console.Println()
	g.console.Println("How to play: type 1, 2, or 3 each day.")
	g.console.Println("Goal: finish Day 30 with all stats above 0.")
	g.console.Println()
}

// playDay shows one day, reads a valid choice and applies it with decay.
func (g *Game) playDay(ctx context.Context, day int) error {
	tracer := telemetry.Tracer("survival")
	_, span := tracer.Start(ctx, "day.resolve")
	span.SetAttributes(attribute.Int("day", day))
	defer span.End()

	g.console.Println()
	g.console.Rule("-")
	g.console.Printf("Day %d/%d\n", day, TotalDays)
	g.console.Println(g.styledStats())

	prompt, options := DayEvent(day, g.src, g.days)
	g.console.Say(prompt)
	for i, opt := range options {
		g.console.Printf("  %d) %s\n", i+1, opt.Label)
	}

	choice, err := g.readChoice(len(options))
	if err != nil {
		return err
	}

	selected := options[choice-1]
	g.stats.Apply(selected.Effects)
	g.console.Say(selected.Result)
	Decay(day, &g.stats)

	span.SetAttributes(
		attribute.String("choice", selected.Label),
		attribute.Int("energy", g.stats.Energy),
		attribute.Int("morale", g.stats.Morale),
		attribute.Int("supplies", g.stats.Supplies),
	)
	g.logger.Debug("day resolved",
		"day", day, "choice", choice,
		"energy", g.stats.Energy, "morale", g.stats.Morale, "supplies", g.stats.Supplies)
	return nil
}

// readChoice prompts until the input is exactly one of "1".."n".
func (g *Game) readChoice(n int) (int, error) {
	for {
		line, err := g.console.Prompt(choicePrompt)
		if err != nil {
			return 0, fmt.Errorf("reading choice: %w", err)
		}
		if choice, ok := parseChoice(line, n); ok {
			return choice, nil
		}
	}
}

// parseChoice accepts only a bare digit in [1, n].
func parseChoice(input string, n int) (int, bool) {
	input = strings.TrimSpace(input)
	if len(input) != 1 {
		return 0, false
	}
	v, err := strconv.Atoi(input)
	if err != nil || v < 1 || v > n {
		return 0, false
	}
	return v, true
}

func (g *Game) styledStats() string {
	return g.console.Styled(g.stats.String(), statsColor, false)
}
