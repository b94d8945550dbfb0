package platform

import (
	"errors"
	"time"
)

// ErrVibrationUnsupported indicates the device offers no vibration API to Go.
var ErrVibrationUnsupported = errors.New("vibration unsupported")

// Vibrator requests a haptic pulse.
type Vibrator interface {
	Vibrate(duration time.Duration) error
}

// NewVibrator returns the vibrator for the current platform. fyne exposes no
// haptics API, so every build reports unsupported and the pulse is skipped.
func NewVibrator() Vibrator {
	return unsupportedVibrator{}
}

type unsupportedVibrator struct{}

func (unsupportedVibrator) Vibrate(time.Duration) error {
	return ErrVibrationUnsupported
}
