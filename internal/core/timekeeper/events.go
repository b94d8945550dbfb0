package timekeeper

import (
	"time"

	"workrest/internal/core/model"
)

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	EventTick         EventType = "tick"
	EventCompleted    EventType = "completed"
	EventTransitioned EventType = "transitioned"
	EventStateChange  EventType = "state_change"
	EventConfigChange EventType = "config_change"
)

// Event represents a TimeKeeper update for observers.
type Event struct {
	Type     EventType
	Snapshot Snapshot
	// Previous is the mode that just completed, set on completed and
	// transitioned events.
	Previous model.Mode
	At       time.Time
}

// Snapshot is a copy of the timer state.
type Snapshot struct {
	Mode            model.Mode
	Remaining       time.Duration
	Total           time.Duration
	Progress        float64
	Running         bool
	CyclesSinceLong int
	CompletedCycles int
	Config          model.Configuration
}

// CyclesUntilLong returns how many work periods remain before a long break.
func (snapshot Snapshot) CyclesUntilLong() int {
	return CyclesUntilLong(CycleState{
		Mode:            snapshot.Mode,
		CyclesSinceLong: snapshot.CyclesSinceLong,
		CompletedCycles: snapshot.CompletedCycles,
	}, snapshot.Config)
}
