// Package world provides floor generation and the floor grid.
package world

// Tile represents what the mini-map shows for a cell.
type Tile rune

const (
	// TileUnknown is a cell the player has not entered.
	TileUnknown Tile = '.'
	// TileVisited is a cell the player has entered at least once.
	TileVisited Tile = 'V'
	// TilePlayer marks the player's cell.
	TilePlayer Tile = 'P'
)

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}

// Pos is a cell coordinate. It is comparable and used as a map key.
type Pos struct {
	X, Y int
}

// Add returns p shifted by the given delta.
func (p Pos) Add(dx, dy int) Pos {
	return Pos{X: p.X + dx, Y: p.Y + dy}
}

// Origin is where the player starts every floor.
var Origin = Pos{}
