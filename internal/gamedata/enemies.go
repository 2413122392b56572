package gamedata

import "github.com/gdamore/tcell/v2"

// EnemyKind is the cosmetic identity of an enemy: a display name and colour.
// Stats come from the floor number, not from the kind.
type EnemyKind struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "goblin")
	Name        string `json:"name"`        // Display name (e.g., "Goblin")
	Color       string `json:"color"`       // Hex color code (e.g., "#00FF00")
	SpawnWeight int    `json:"spawnWeight"` // Relative spawn frequency (higher = more common)
}

// TCellColor returns the color as a tcell.Color.
func (e *EnemyKind) TCellColor() tcell.Color {
	color, err := ParseHexColor(e.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// EnemiesFile represents the structure of enemies.json.
type EnemiesFile struct {
	Enemies []EnemyKind `json:"enemies"`
}

// LoadEnemyKinds loads enemy kinds from the embedded enemies.json file.
func LoadEnemyKinds() ([]EnemyKind, error) {
	file, err := Load[EnemiesFile]("enemies.json")
	if err != nil {
		return nil, err
	}
	return file.Enemies, nil
}
