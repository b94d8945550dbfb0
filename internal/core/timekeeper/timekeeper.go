package timekeeper

import (
	"log/slog"
	"sync"
	"time"

	"workrest/internal/core/countdown"
	"workrest/internal/core/model"
)

// Config contains runtime options for TimeKeeper.
//
// Collaborators are called with the TimeKeeper lock held and must not call
// back into it. Their errors are logged and otherwise ignored.
type Config struct {
	TickInterval time.Duration
	Clock        countdown.Clock
	Notifier     Notifier
	Vibrator     Vibrator
	Store        Store
	Logger       *slog.Logger
}

// TimeKeeper drives the work/break cycle: it owns the cycle state, the
// countdown engine and the observers.
type TimeKeeper struct {
	mu      sync.Mutex
	config  model.Configuration
	options Config
	cycle   CycleState
	engine  *countdown.Engine
	events  []chan Event
	closed  bool
}

// New creates a paused TimeKeeper in work mode with the full work duration loaded.
func New(config model.Configuration, options Config) *TimeKeeper {
	if options.TickInterval <= 0 {
		options.TickInterval = countdown.DefaultTickInterval
	}
	if options.Clock == nil {
		options.Clock = countdown.SystemClock
	}
	if options.Notifier == nil {
		options.Notifier = nopNotifier{}
	}
	if options.Vibrator == nil {
		options.Vibrator = nopVibrator{}
	}
	if options.Store == nil {
		options.Store = nopStore{}
	}
	if options.Logger == nil {
		options.Logger = slog.New(slog.DiscardHandler)
	}

	keeper := &TimeKeeper{
		config:  config.Sanitize(),
		options: options,
		cycle:   CycleState{Mode: model.ModeWork},
	}
	keeper.engine = countdown.New(countdown.Config{
		TickInterval: options.TickInterval,
		Clock:        options.Clock,
		Locker:       &keeper.mu,
		OnTick:       keeper.handleTickLocked,
		OnComplete:   keeper.handleCompleteLocked,
	})
	keeper.engine.Reset(keeper.config.Duration(model.ModeWork))
	return keeper
}

// Subscribe registers a new observer channel.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		close(ch)
		return ch
	}
	keeper.events = append(keeper.events, ch)
	return ch
}

// Start resumes the countdown from the remaining time.
func (keeper *TimeKeeper) Start() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.startLocked()
}

// Pause freezes the countdown.
func (keeper *TimeKeeper) Pause() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.pauseLocked()
}

// Toggle pauses a running countdown and starts a paused one.
func (keeper *TimeKeeper) Toggle() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.engine.Running() {
		keeper.pauseLocked()
		return
	}
	keeper.startLocked()
}

// Reset stops the countdown and restores the full duration of the current mode.
func (keeper *TimeKeeper) Reset() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		return
	}
	keeper.engine.Reset(keeper.config.Duration(keeper.cycle.Mode))
	keeper.emitLocked(EventStateChange, "")
}

// SetMode switches to mode, stopping the countdown and loading its full duration.
// Cycle counters are left untouched.
func (keeper *TimeKeeper) SetMode(mode model.Mode) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		return
	}
	keeper.cycle.Mode = mode
	keeper.engine.Reset(keeper.config.Duration(mode))
	keeper.emitLocked(EventStateChange, "")
}

// SetConfiguration applies and persists new settings. A changed duration of
// the active mode stops the countdown and loads the new duration; other
// changes leave the countdown alone.
func (keeper *TimeKeeper) SetConfiguration(config model.Configuration) {
	config = config.Sanitize()

	keeper.mu.Lock()
	if keeper.closed {
		keeper.mu.Unlock()
		return
	}
	previous := keeper.config
	keeper.config = config
	mode := keeper.cycle.Mode
	if previous.Minutes(mode) != config.Minutes(mode) {
		keeper.engine.Reset(config.Duration(mode))
	}
	if keeper.cycle.CyclesSinceLong >= config.CyclesToLong {
		keeper.cycle.CyclesSinceLong = config.CyclesToLong - 1
	}
	keeper.emitLocked(EventConfigChange, "")
	store := keeper.options.Store
	keeper.mu.Unlock()

	if err := store.Save(config); err != nil {
		keeper.options.Logger.Warn("save configuration", "error", err)
	}
}

// Configuration returns the active settings.
func (keeper *TimeKeeper) Configuration() model.Configuration {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.config
}

// Snapshot returns a copy of the current state.
func (keeper *TimeKeeper) Snapshot() Snapshot {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.snapshotLocked()
}

// Close stops the countdown and closes observers.
func (keeper *TimeKeeper) Close() {
	keeper.mu.Lock()
	if keeper.closed {
		keeper.mu.Unlock()
		return
	}
	keeper.closed = true
	keeper.engine.Pause()
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (keeper *TimeKeeper) startLocked() {
	if keeper.closed || !keeper.engine.Start() {
		return
	}
	keeper.options.Logger.Debug("countdown started", "mode", keeper.cycle.Mode, "remaining", keeper.engine.Remaining())
	keeper.emitLocked(EventStateChange, "")
}

func (keeper *TimeKeeper) pauseLocked() {
	if keeper.closed || !keeper.engine.Pause() {
		return
	}
	keeper.options.Logger.Debug("countdown paused", "mode", keeper.cycle.Mode, "remaining", keeper.engine.Remaining())
	keeper.emitLocked(EventStateChange, "")
}

func (keeper *TimeKeeper) handleTickLocked(countdown.Tick) {
	keeper.emitLocked(EventTick, "")
}

func (keeper *TimeKeeper) handleCompleteLocked(countdown.Tick) {
	completed := keeper.cycle.Mode
	keeper.emitLocked(EventCompleted, completed)

	transition := Advance(keeper.cycle, keeper.config)
	keeper.cycle = transition.State
	keeper.engine.Reset(keeper.config.Duration(transition.To))
	keeper.options.Logger.Info("period complete",
		"from", transition.From,
		"to", transition.To,
		"completed_cycles", transition.State.CompletedCycles,
		"cycles_since_long", transition.State.CyclesSinceLong,
	)

	for _, effect := range transition.Effects {
		keeper.applyEffectLocked(effect)
	}

	keeper.emitLocked(EventTransitioned, completed)
}

func (keeper *TimeKeeper) applyEffectLocked(effect Effect) {
	switch effect.Type {
	case EffectVibrate:
		if err := keeper.options.Vibrator.Vibrate(effect.Duration); err != nil {
			keeper.options.Logger.Debug("vibrate", "error", err)
		}
	case EffectNotify:
		if err := keeper.options.Notifier.Notify(effect.Title, effect.Body); err != nil {
			keeper.options.Logger.Warn("notify", "error", err)
		}
	case EffectAutoStart:
		keeper.engine.Start()
	}
}

func (keeper *TimeKeeper) snapshotLocked() Snapshot {
	return Snapshot{
		Mode:            keeper.cycle.Mode,
		Remaining:       keeper.engine.Remaining(),
		Total:           keeper.engine.Total(),
		Progress:        keeper.engine.Progress(),
		Running:         keeper.engine.Running(),
		CyclesSinceLong: keeper.cycle.CyclesSinceLong,
		CompletedCycles: keeper.cycle.CompletedCycles,
		Config:          keeper.config,
	}
}

func (keeper *TimeKeeper) emitLocked(eventType EventType, previous model.Mode) {
	event := Event{
		Type:     eventType,
		Snapshot: keeper.snapshotLocked(),
		Previous: previous,
		At:       keeper.options.Clock.Now(),
	}
	for _, ch := range keeper.events {
		select {
		case ch <- event:
		default:
		}
	}
}
