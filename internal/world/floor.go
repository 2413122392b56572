package world

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/terminalquests/internal/entity"
	"github.com/samdwyer/terminalquests/internal/gamedata"
	"github.com/samdwyer/terminalquests/internal/rng"
	"github.com/samdwyer/terminalquests/internal/telemetry"
)

const (
	// MapSize is the side length of every floor.
	MapSize = 6
	// Floors is how many floors make up a run.
	Floors = 5
	// TargetRelics is how many relics each floor holds.
	TargetRelics = 3

	baseEnemyCount = 7
)

// EnemyCount returns how many enemies a floor spawns.
func EnemyCount(floor int) int {
	return baseEnemyCount + floor
}

// Floor is one dungeon level. Relics and enemies only ever shrink.
type Floor struct {
	Number  int
	Size    int
	Exit    Pos
	Relics  map[Pos]struct{}
	Enemies map[Pos]*entity.Enemy
	Visited map[Pos]struct{}
}

// NewFloor creates an empty floor with the origin visited.
func NewFloor(number, size int) *Floor {
	return &Floor{
		Number:  number,
		Size:    size,
		Exit:    Pos{X: size - 1, Y: size - 1},
		Relics:  make(map[Pos]struct{}),
		Enemies: make(map[Pos]*entity.Enemy),
		Visited: map[Pos]struct{}{Origin: {}},
	}
}

// Generate creates floor number n. Relics are placed first, avoiding the
// origin and exit; enemies then avoid relics, the origin and the exit.
// Each placement redraws until it lands on a free cell.
func Generate(ctx context.Context, number int, src *rng.Source, kinds *gamedata.EnemyRegistry) *Floor {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "world.generate")
	defer span.End()

	startTime := time.Now()
	f := NewFloor(number, MapSize)

	for len(f.Relics) < TargetRelics {
		pos := f.randomPos(src)
		if f.reserved(pos) {
			continue
		}
		f.Relics[pos] = struct{}{}
	}

	for len(f.Enemies) < EnemyCount(number) {
		pos := f.randomPos(src)
		if f.reserved(pos) || f.HasRelic(pos) || f.Enemies[pos] != nil {
			continue
		}
		hp := src.Between(5+number, 8+number)
		atk := src.Between(2, 3+number/2)
		f.Enemies[pos] = entity.NewEnemy(kinds.SpawnRandom(src), hp, atk)
	}

	span.SetAttributes(
		attribute.Int("floor.number", number),
		attribute.Int("floor.size", f.Size),
		attribute.Int("floor.relics", len(f.Relics)),
		attribute.Int("floor.enemies", len(f.Enemies)),
		attribute.Int64("floor.generation_us", time.Since(startTime).Microseconds()),
	)

	return f
}

// randomPos draws a uniform cell on the grid.
func (f *Floor) randomPos(src *rng.Source) Pos {
	return Pos{X: src.Intn(f.Size), Y: src.Intn(f.Size)}
}

// reserved reports whether nothing may be placed at pos.
func (f *Floor) reserved(pos Pos) bool {
	return pos == Origin || pos == f.Exit
}

// InBounds returns true if pos lies on the grid.
func (f *Floor) InBounds(pos Pos) bool {
	return pos.X >= 0 && pos.X < f.Size && pos.Y >= 0 && pos.Y < f.Size
}

// Visit marks pos as visited.
func (f *Floor) Visit(pos Pos) {
	f.Visited[pos] = struct{}{}
}

// IsVisited reports whether the player has entered pos.
func (f *Floor) IsVisited(pos Pos) bool {
	_, ok := f.Visited[pos]
	return ok
}

// HasRelic reports whether a relic lies at pos.
func (f *Floor) HasRelic(pos Pos) bool {
	_, ok := f.Relics[pos]
	return ok
}

// CollectRelic removes the relic at pos, returning false if there was none.
func (f *Floor) CollectRelic(pos Pos) bool {
	if !f.HasRelic(pos) {
		return false
	}
	delete(f.Relics, pos)
	return true
}

// RelicsRemaining returns how many relics are still on the floor.
func (f *Floor) RelicsRemaining() int {
	return len(f.Relics)
}

// RelicsCollected returns how many of this floor's relics have been taken.
func (f *Floor) RelicsCollected() int {
	return TargetRelics - len(f.Relics)
}

// EnemyAt returns the live enemy at pos, or nil.
func (f *Floor) EnemyAt(pos Pos) *entity.Enemy {
	e := f.Enemies[pos]
	if e == nil || !e.IsAlive() {
		return nil
	}
	return e
}

// RemoveEnemy drops the enemy at pos.
func (f *Floor) RemoveEnemy(pos Pos) {
	delete(f.Enemies, pos)
}

// ExitOpen reports whether the exit lets the player through.
func (f *Floor) ExitOpen() bool {
	return len(f.Relics) == 0
}

// TileAt returns what the mini-map shows at pos.
func (f *Floor) TileAt(pos, player Pos) Tile {
	switch {
	case pos == player:
		return TilePlayer
	case f.IsVisited(pos):
		return TileVisited
	default:
		return TileUnknown
	}
}
