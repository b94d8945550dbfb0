package countdown

import (
	"fmt"
	"sync"
	"time"
)

// DefaultTickInterval is the countdown cadence.
const DefaultTickInterval = time.Second

// Tick reports the countdown position after a decrement.
type Tick struct {
	Remaining time.Duration
	Total     time.Duration
	Progress  float64
	At        time.Time
}

// Config contains runtime options for Engine.
type Config struct {
	TickInterval time.Duration
	Clock        Clock

	// Locker serializes scheduled ticks with the owner's calls. The owner
	// must hold it while calling Engine methods from more than one goroutine.
	Locker sync.Locker

	// OnTick and OnComplete run with Locker held.
	OnTick     func(Tick)
	OnComplete func(Tick)
}

// Engine counts a remaining duration down to zero, one tick at a time.
// At most one run is active; starting, pausing or resetting cancels the
// pending tick before touching state.
type Engine struct {
	options   Config
	total     time.Duration
	remaining time.Duration
	running   bool
	slot      slot
}

// New creates an idle Engine with nothing loaded.
func New(options Config) *Engine {
	if options.TickInterval <= 0 {
		options.TickInterval = DefaultTickInterval
	}
	if options.Clock == nil {
		options.Clock = SystemClock
	}
	if options.Locker == nil {
		options.Locker = &sync.Mutex{}
	}
	return &Engine{options: options}
}

// Reset stops any run and loads total as both the full and remaining duration.
func (engine *Engine) Reset(total time.Duration) {
	engine.slot.cancel()
	engine.running = false
	if total < 0 {
		total = 0
	}
	engine.total = total
	engine.remaining = total
}

// Run resets to total and starts ticking from it.
func (engine *Engine) Run(total time.Duration) bool {
	engine.Reset(total)
	return engine.Start()
}

// Start resumes ticking from the current remaining duration. It reports false
// when already running or when nothing is left to count.
func (engine *Engine) Start() bool {
	if engine.running || engine.remaining <= 0 {
		return false
	}
	engine.running = true
	engine.schedule(engine.slot.acquire())
	return true
}

// Pause cancels the pending tick and freezes the remaining duration.
func (engine *Engine) Pause() bool {
	if !engine.running {
		return false
	}
	engine.slot.cancel()
	engine.running = false
	return true
}

// Running reports whether a run is active.
func (engine *Engine) Running() bool {
	return engine.running
}

// Remaining returns the time left in the current run.
func (engine *Engine) Remaining() time.Duration {
	return engine.remaining
}

// Total returns the full duration of the current run.
func (engine *Engine) Total() time.Duration {
	return engine.total
}

// Progress returns the completed fraction of the current run.
func (engine *Engine) Progress() float64 {
	return Progress(engine.remaining, engine.total)
}

func (engine *Engine) schedule(generation uint64) {
	engine.slot.hold(engine.options.Clock.AfterFunc(engine.options.TickInterval, func() {
		engine.options.Locker.Lock()
		defer engine.options.Locker.Unlock()
		engine.fire(generation)
	}))
}

func (engine *Engine) fire(generation uint64) {
	if !engine.running || !engine.slot.current(generation) {
		return
	}

	engine.remaining -= engine.options.TickInterval
	if engine.remaining < 0 {
		engine.remaining = 0
	}

	tick := Tick{
		Remaining: engine.remaining,
		Total:     engine.total,
		Progress:  engine.Progress(),
		At:        engine.options.Clock.Now(),
	}

	if engine.remaining > 0 {
		engine.schedule(generation)
		if engine.options.OnTick != nil {
			engine.options.OnTick(tick)
		}
		return
	}

	engine.slot.cancel()
	engine.running = false
	if engine.options.OnTick != nil {
		engine.options.OnTick(tick)
	}
	if engine.options.OnComplete != nil {
		engine.options.OnComplete(tick)
	}
}

// Progress returns 1 - remaining/total clamped to [0, 1].
func Progress(remaining, total time.Duration) float64 {
	if total <= 0 {
		return 1
	}
	progress := 1 - float64(remaining)/float64(total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// FormatRemaining renders a duration as MM:SS, rounding down to whole seconds.
// The minute field widens past 99 instead of wrapping.
func FormatRemaining(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	seconds := int64(remaining / time.Second)
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
