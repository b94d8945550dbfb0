package model

import "time"

// Mode is the active interval of the cycle.
type Mode string

const (
	ModeWork      Mode = "work"
	ModeBreak     Mode = "break"
	ModeLongBreak Mode = "long_break"
)

// Modes lists every mode in display order.
var Modes = []Mode{ModeWork, ModeBreak, ModeLongBreak}

// Label returns the user-facing mode name.
func (mode Mode) Label() string {
	switch mode {
	case ModeBreak:
		return "Break"
	case ModeLongBreak:
		return "Long break"
	default:
		return "Work"
	}
}

// ParseMode maps a label or identifier back to a Mode.
func ParseMode(value string) (Mode, bool) {
	for _, mode := range Modes {
		if value == string(mode) || value == mode.Label() {
			return mode, true
		}
	}
	return ModeWork, false
}

const (
	DefaultWorkMinutes      = 50
	DefaultBreakMinutes     = 10
	DefaultLongBreakMinutes = 20
	DefaultCyclesToLong     = 3
)

// Configuration holds the user-editable timer settings.
type Configuration struct {
	WorkMinutes      int
	BreakMinutes     int
	LongBreakMinutes int
	CyclesToLong     int
	AutoStart        bool
	VibrateOnEnd     bool
}

// DefaultConfiguration returns the built-in settings.
func DefaultConfiguration() Configuration {
	return Configuration{
		WorkMinutes:      DefaultWorkMinutes,
		BreakMinutes:     DefaultBreakMinutes,
		LongBreakMinutes: DefaultLongBreakMinutes,
		CyclesToLong:     DefaultCyclesToLong,
		AutoStart:        true,
		VibrateOnEnd:     true,
	}
}

// Sanitize replaces out-of-range fields with their defaults.
func (config Configuration) Sanitize() Configuration {
	if config.WorkMinutes <= 0 {
		config.WorkMinutes = DefaultWorkMinutes
	}
	if config.BreakMinutes <= 0 {
		config.BreakMinutes = DefaultBreakMinutes
	}
	if config.LongBreakMinutes <= 0 {
		config.LongBreakMinutes = DefaultLongBreakMinutes
	}
	if config.CyclesToLong < 1 {
		config.CyclesToLong = DefaultCyclesToLong
	}
	return config
}

// Minutes returns the configured length of mode in minutes.
func (config Configuration) Minutes(mode Mode) int {
	switch mode {
	case ModeBreak:
		return config.BreakMinutes
	case ModeLongBreak:
		return config.LongBreakMinutes
	default:
		return config.WorkMinutes
	}
}

// Duration returns the configured length of mode.
func (config Configuration) Duration(mode Mode) time.Duration {
	return MinutesToDuration(config.Minutes(mode))
}

// MinutesToDuration converts whole minutes to a duration.
func MinutesToDuration(minutes int) time.Duration {
	return time.Duration(minutes) * time.Minute
}

// Range is an inclusive integer interval offered by the settings screen.
type Range struct {
	Min int
	Max int
}

// Clamp limits value to the range.
func (value Range) Clamp(n int) int {
	if n < value.Min {
		return value.Min
	}
	if n > value.Max {
		return value.Max
	}
	return n
}

// Bounds are the slider ranges offered to the user. Persisted values are not
// forced into them.
var Bounds = struct {
	Work      Range
	Break     Range
	LongBreak Range
	Cycles    Range
}{
	Work:      Range{Min: 10, Max: 120},
	Break:     Range{Min: 1, Max: 60},
	LongBreak: Range{Min: 5, Max: 60},
	Cycles:    Range{Min: 1, Max: 8},
}
