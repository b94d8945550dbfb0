package timekeeper

import (
	"time"

	"workrest/internal/core/model"
)

// Notifier posts a user-visible notification. Delivery is best-effort.
type Notifier interface {
	Notify(title, body string) error
}

// Vibrator requests a haptic pulse. Delivery is best-effort.
type Vibrator interface {
	Vibrate(duration time.Duration) error
}

// Store persists the user configuration.
type Store interface {
	Load() (model.Configuration, error)
	Save(config model.Configuration) error
}

type nopNotifier struct{}

func (nopNotifier) Notify(string, string) error { return nil }

type nopVibrator struct{}

func (nopVibrator) Vibrate(time.Duration) error { return nil }

type nopStore struct{}

func (nopStore) Load() (model.Configuration, error) { return model.DefaultConfiguration(), nil }

func (nopStore) Save(model.Configuration) error { return nil }
