package timekeeper

import (
	"time"

	"workrest/internal/core/model"
)

// VibrationPulse is the length of the vibration requested at period end.
const VibrationPulse = 300 * time.Millisecond

// CycleState is the part of the timer state that survives period boundaries.
type CycleState struct {
	Mode            model.Mode
	CyclesSinceLong int
	CompletedCycles int
}

// EffectType identifies a side effect requested by a transition.
type EffectType string

const (
	EffectVibrate   EffectType = "vibrate"
	EffectNotify    EffectType = "notify"
	EffectAutoStart EffectType = "auto_start"
)

// Effect is a side effect the owner of the state machine performs after a
// transition. The state machine itself never performs them.
type Effect struct {
	Type     EffectType
	Title    string
	Body     string
	Duration time.Duration
}

// Transition is the outcome of completing a period.
type Transition struct {
	From    model.Mode
	To      model.Mode
	State   CycleState
	Effects []Effect
}

// Advance computes the state after the current period completes.
func Advance(state CycleState, config model.Configuration) Transition {
	from := state.Mode
	next := state

	switch from {
	case model.ModeWork:
		next.CompletedCycles++
		next.CyclesSinceLong++
		if next.CyclesSinceLong >= config.CyclesToLong {
			next.CyclesSinceLong = 0
			next.Mode = model.ModeLongBreak
		} else {
			next.Mode = model.ModeBreak
		}
	default:
		next.Mode = model.ModeWork
	}

	var effects []Effect
	if config.VibrateOnEnd {
		effects = append(effects, Effect{Type: EffectVibrate, Duration: VibrationPulse})
	}
	title, body := CompletionMessage(from)
	effects = append(effects, Effect{Type: EffectNotify, Title: title, Body: body})
	if config.AutoStart {
		effects = append(effects, Effect{Type: EffectAutoStart})
	}

	return Transition{
		From:    from,
		To:      next.Mode,
		State:   next,
		Effects: effects,
	}
}

// CompletionMessage returns the notification text for a finished period.
func CompletionMessage(completed model.Mode) (string, string) {
	if completed == model.ModeWork {
		return "Time for a break", "Take a rest"
	}
	return "Back to work", "A new cycle begins"
}

// CyclesUntilLong returns how many work periods remain before a long break.
func CyclesUntilLong(state CycleState, config model.Configuration) int {
	return config.CyclesToLong - state.CyclesSinceLong
}
