package survival

import (
	"github.com/samdwyer/terminalquests/internal/gamedata"
	"github.com/samdwyer/terminalquests/internal/rng"
)

const (
	stormEvery       = 7
	carePackageEvery = 10
)

// DayEvent draws the day's flavour prompt and its shuffled options. The
// options are copies; data is never modified.
func DayEvent(day int, src *rng.Source, data *gamedata.DaysFile) (string, []gamedata.OptionDef) {
	prompts := append([]string(nil), data.Prompts...)
	options := append([]gamedata.OptionDef(nil), data.Options...)

	src.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	if day%stormEvery == 0 {
		prompts = append(prompts, data.StormPrompt)
		for i := range options {
			options[i].Effects.Energy--
		}
	}

	if day%carePackageEvery == 0 {
		prompts = append(prompts, data.CarePackagePrompt)
		for i := range options {
			options[i].Effects.Supplies++
		}
	}

	return prompts[src.Intn(len(prompts))], options
}
