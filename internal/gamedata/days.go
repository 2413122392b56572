package gamedata

import "errors"

// Effects are the stat deltas of a Boredom Quest action.
type Effects struct {
	Energy   int `json:"energy"`
	Morale   int `json:"morale"`
	Supplies int `json:"supplies"`
}

// OptionDef is one daily action the player can pick.
type OptionDef struct {
	Label   string  `json:"label"`
	Effects Effects `json:"effects"`
	Result  string  `json:"result"`
}

// DaysFile represents the structure of days.json.
type DaysFile struct {
	Prompts           []string    `json:"prompts"`
	StormPrompt       string      `json:"stormPrompt"`
	CarePackagePrompt string      `json:"carePackagePrompt"`
	Options           []OptionDef `json:"options"`
}

// LoadDays loads the Boredom Quest day table from the embedded days.json file.
func LoadDays() (*DaysFile, error) {
	file, err := Load[DaysFile]("days.json")
	if err != nil {
		return nil, err
	}
	if len(file.Prompts) == 0 {
		return nil, errors.New("no prompts loaded from days.json")
	}
	if len(file.Options) != 3 {
		return nil, errors.New("days.json must define exactly 3 options")
	}
	return &file, nil
}
