package animation

import (
	"time"

	"fyne.io/fyne/v2"
)

// DefaultConfig returns the easing used for the progress indicator.
func DefaultConfig() Config {
	return Config{
		Duration: 400 * time.Millisecond,
		Curve:    fyne.AnimationEaseOut,
	}
}
