// Package main is the entry point for Boredom Quest.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/samdwyer/terminalquests/internal/config"
	"github.com/samdwyer/terminalquests/internal/gamedata"
	"github.com/samdwyer/terminalquests/internal/logging"
	"github.com/samdwyer/terminalquests/internal/rng"
	"github.com/samdwyer/terminalquests/internal/survival"
	"github.com/samdwyer/terminalquests/internal/telemetry"
	"github.com/samdwyer/terminalquests/internal/ui"
)

const serviceName = "boredomquest"

var rootCmd = &cobra.Command{
	Use:           "boredomquest",
	Short:         "Boredom Quest, 30 days to stay busy",
	Long:          `Boredom Quest is a terminal survival game. Pick one action a day and keep Energy, Morale and Supplies above zero for 30 days.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGame,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runGame(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(serviceName)
	if err != nil {
		return err
	}
	logger := logging.New(os.Stderr, cfg.LogLevel, serviceName)

	shutdown, err := telemetry.Setup(ctx, telemetry.Options{
		ServiceName: serviceName,
		APIKey:      cfg.HoneycombAPIKey,
		Dataset:     cfg.HoneycombDataset,
	})
	if err != nil {
		logger.Warn("telemetry setup failed, running without tracing", "error", err)
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				logger.Warn("telemetry shutdown failed", "error", err)
			}
		}()
	}

	days, err := gamedata.LoadDays()
	if err != nil {
		return fmt.Errorf("failed to load day table: %w", err)
	}

	roller := rng.NewSeededRoller(cfg.Seed)
	logger.Debug("starting run", "seed", roller.Seed())

	g, err := survival.New(survival.Config{
		In:     cmd.InOrStdin(),
		Out:    cmd.OutOrStdout(),
		Color:  !cfg.NoColor && ui.IsTerminal(cmd.OutOrStdout()),
		Source: rng.New(roller),
		Days:   days,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize game: %w", err)
	}

	if err := g.Run(ctx); err != nil {
		return fmt.Errorf("game error: %w", err)
	}
	return nil
}
