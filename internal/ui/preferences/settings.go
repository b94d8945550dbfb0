// Package preferences renders the settings screen.
package preferences

import (
	"fmt"

	"workrest/internal/core/model"
)

// Tip is the hint shown at the bottom of the settings screen.
const Tip = "Tip: 20-20-20. Every 20 minutes look at something 20 feet away for 20 seconds."

// field binds one configuration integer to a slider.
type field struct {
	label string
	bound model.Range
	get   func(model.Configuration) int
	set   func(*model.Configuration, int)
}

var fields = []field{
	{
		label: "Work (min)",
		bound: model.Bounds.Work,
		get:   func(config model.Configuration) int { return config.WorkMinutes },
		set:   func(config *model.Configuration, value int) { config.WorkMinutes = value },
	},
	{
		label: "Break (min)",
		bound: model.Bounds.Break,
		get:   func(config model.Configuration) int { return config.BreakMinutes },
		set:   func(config *model.Configuration, value int) { config.BreakMinutes = value },
	},
	{
		label: "Long break (min)",
		bound: model.Bounds.LongBreak,
		get:   func(config model.Configuration) int { return config.LongBreakMinutes },
		set:   func(config *model.Configuration, value int) { config.LongBreakMinutes = value },
	},
	{
		label: "Cycles until long break",
		bound: model.Bounds.Cycles,
		get:   func(config model.Configuration) int { return config.CyclesToLong },
		set:   func(config *model.Configuration, value int) { config.CyclesToLong = value },
	},
}

func (field field) caption(value int) string {
	return fmt.Sprintf("%s: %d", field.label, value)
}
