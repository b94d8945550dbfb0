// Package animation eases the displayed progress toward the countdown value.
// Smoothing is cosmetic: nothing it produces flows back into the timer.
package animation

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
)

// Config contains animation timing values.
type Config struct {
	Duration time.Duration
	Curve    fyne.AnimationCurve
}

// Smoother animates a displayed fraction toward the latest target.
type Smoother struct {
	mu      sync.Mutex
	config  Config
	update  func(float64)
	current float64
	anim    *fyne.Animation
}

// New creates a smoother that reports displayed values through update.
func New(config Config, update func(float64)) *Smoother {
	if config.Curve == nil {
		config.Curve = fyne.AnimationEaseOut
	}
	return &Smoother{config: config, update: update}
}

// SetTarget eases toward target. Moving backwards (a new run or a reset)
// jumps instead of sweeping the indicator in reverse.
func (smoother *Smoother) SetTarget(target float64) {
	target = clamp(target)

	smoother.mu.Lock()
	smoother.stopLocked()
	from := smoother.current
	if smoother.config.Duration <= 0 || target <= from {
		smoother.current = target
		smoother.mu.Unlock()
		smoother.emit(target)
		return
	}

	anim := fyne.NewAnimation(smoother.config.Duration, func(fraction float32) {
		value := Lerp(from, target, fraction)
		smoother.mu.Lock()
		smoother.current = value
		smoother.mu.Unlock()
		smoother.emit(value)
	})
	anim.Curve = smoother.config.Curve
	smoother.anim = anim
	smoother.mu.Unlock()

	anim.Start()
}

// Jump shows value immediately.
func (smoother *Smoother) Jump(value float64) {
	value = clamp(value)
	smoother.mu.Lock()
	smoother.stopLocked()
	smoother.current = value
	smoother.mu.Unlock()
	smoother.emit(value)
}

// Current returns the displayed value.
func (smoother *Smoother) Current() float64 {
	smoother.mu.Lock()
	defer smoother.mu.Unlock()
	return smoother.current
}

// Stop terminates any active animation.
func (smoother *Smoother) Stop() {
	smoother.mu.Lock()
	defer smoother.mu.Unlock()
	smoother.stopLocked()
}

func (smoother *Smoother) stopLocked() {
	if smoother.anim != nil {
		smoother.anim.Stop()
		smoother.anim = nil
	}
}

func (smoother *Smoother) emit(value float64) {
	if smoother.update != nil {
		smoother.update(value)
	}
}

// Lerp interpolates between from and to.
func Lerp(from, to float64, fraction float32) float64 {
	return from + (to-from)*float64(fraction)
}

func clamp(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
