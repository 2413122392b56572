package gamedata

import "errors"

// Picker draws a uniform integer in [0, n).
type Picker interface {
	Intn(n int) int
}

// EnemyRegistry holds loaded enemy kinds and provides spawning utilities.
type EnemyRegistry struct {
	kinds       []EnemyKind
	totalWeight int
}

// NewEnemyRegistry creates a registry from loaded enemy kinds.
func NewEnemyRegistry(kinds []EnemyKind) *EnemyRegistry {
	totalWeight := 0
	for _, k := range kinds {
		totalWeight += k.SpawnWeight
	}
	return &EnemyRegistry{
		kinds:       kinds,
		totalWeight: totalWeight,
	}
}

// LoadEnemyRegistry loads and creates a registry from the embedded enemies.json.
func LoadEnemyRegistry() (*EnemyRegistry, error) {
	kinds, err := LoadEnemyKinds()
	if err != nil {
		return nil, err
	}
	if len(kinds) == 0 {
		return nil, errors.New("no enemies loaded from enemies.json")
	}
	return NewEnemyRegistry(kinds), nil
}

// SpawnRandom selects a random enemy kind using weighted probability.
// Kinds with higher spawnWeight are more likely to be selected.
func (r *EnemyRegistry) SpawnRandom(p Picker) *EnemyKind {
	if r == nil || r.totalWeight <= 0 || len(r.kinds) == 0 {
		return nil
	}

	roll := p.Intn(r.totalWeight)

	cumulative := 0
	for i := range r.kinds {
		cumulative += r.kinds[i].SpawnWeight
		if roll < cumulative {
			return &r.kinds[i]
		}
	}

	return &r.kinds[0]
}
