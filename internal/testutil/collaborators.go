package testutil

import (
	"sync"
	"time"

	"workrest/internal/core/model"
)

// Notification is a recorded notifier call.
type Notification struct {
	Title string
	Body  string
}

// RecordingNotifier records notifications and optionally fails.
type RecordingNotifier struct {
	mu            sync.Mutex
	Notifications []Notification
	Err           error
}

// Notify records the call.
func (notifier *RecordingNotifier) Notify(title, body string) error {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	notifier.Notifications = append(notifier.Notifications, Notification{Title: title, Body: body})
	return notifier.Err
}

// Calls returns a copy of the recorded notifications.
func (notifier *RecordingNotifier) Calls() []Notification {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	return append([]Notification(nil), notifier.Notifications...)
}

// RecordingVibrator records pulse requests and optionally fails.
type RecordingVibrator struct {
	mu     sync.Mutex
	Pulses []time.Duration
	Err    error
}

// Vibrate records the call.
func (vibrator *RecordingVibrator) Vibrate(duration time.Duration) error {
	vibrator.mu.Lock()
	defer vibrator.mu.Unlock()
	vibrator.Pulses = append(vibrator.Pulses, duration)
	return vibrator.Err
}

// Calls returns a copy of the recorded pulses.
func (vibrator *RecordingVibrator) Calls() []time.Duration {
	vibrator.mu.Lock()
	defer vibrator.mu.Unlock()
	return append([]time.Duration(nil), vibrator.Pulses...)
}

// MemoryStore keeps the configuration in memory.
type MemoryStore struct {
	mu      sync.Mutex
	Config  model.Configuration
	Saves   int
	SaveErr error
	LoadErr error
}

// Load returns the stored configuration.
func (store *MemoryStore) Load() (model.Configuration, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.Config, store.LoadErr
}

// Save stores config unless SaveErr is set.
func (store *MemoryStore) Save(config model.Configuration) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.Saves++
	if store.SaveErr != nil {
		return store.SaveErr
	}
	store.Config = config
	return nil
}
