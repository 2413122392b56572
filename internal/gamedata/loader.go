// Package gamedata holds the embedded JSON tables both games are built from.
package gamedata

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed *.json
var tables embed.FS

// Load decodes one embedded table. Unknown fields are rejected so a typo in
// a data file fails loudly instead of zeroing a value.
func Load[T any](name string) (T, error) {
	var out T

	raw, err := tables.ReadFile(name)
	if err != nil {
		return out, fmt.Errorf("failed to read embedded table %s: %w", name, err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		return out, fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return out, nil
}
