package game

import (
	"io"
	"log/slog"

	"github.com/samdwyer/terminalquests/internal/gamedata"
	"github.com/samdwyer/terminalquests/internal/rng"
)

// Config holds what a game needs from its caller.
type Config struct {
	In    io.Reader
	Out   io.Writer
	Color bool

	// Source drives every random draw. Required.
	Source *rng.Source
	// Kinds names spawned enemies; nil spawns plain enemies.
	Kinds  *gamedata.EnemyRegistry
	Logger *slog.Logger
}
