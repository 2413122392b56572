package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/terminalquests/internal/world"
)

// Renderer draws the Relic Runner mini-map to a console.
type Renderer struct {
	console *Console
}

// NewRenderer creates a new renderer for the given console.
func NewRenderer(console *Console) *Renderer {
	return &Renderer{console: console}
}

// MiniMap draws the floor grid: P for the player, V for visited, . for unknown.
func (r *Renderer) MiniMap(floor *world.Floor, player world.Pos) {
	r.console.Println()
	r.console.Println("Mini-map (V=visited, .=unknown, P=you)")

	for y := 0; y < floor.Size; y++ {
		cells := make([]string, 0, floor.Size)
		for x := 0; x < floor.Size; x++ {
			tile := floor.TileAt(world.Pos{X: x, Y: y}, player)
			color, bold := tileStyle(tile)
			cells = append(cells, r.console.Styled(string(tile.Rune()), color, bold))
		}
		r.console.Println(strings.Join(cells, " "))
	}
}

// tileStyle returns the colour for a mini-map tile.
func tileStyle(tile world.Tile) (tcell.Color, bool) {
	switch tile {
	case world.TilePlayer:
		return tcell.ColorYellow, true
	case world.TileVisited:
		return tcell.ColorGray, false
	default:
		return tcell.ColorDarkGray, false
	}
}
