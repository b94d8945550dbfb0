package storage

import (
	"workrest/internal/core/model"

	"fyne.io/fyne/v2"
)

// Preference keys shared by every backend.
const (
	KeyWork         = "work"
	KeyBreak        = "break"
	KeyLongBreak    = "longbreak"
	KeyCyclesToLong = "cyclesToLong"
	KeyAutoStart    = "autoStart"
	KeyVibrate      = "vibrate"
)

// PreferencesStore keeps the configuration in the fyne app preferences, the
// platform key-value store on mobile.
type PreferencesStore struct {
	prefs fyne.Preferences
}

// NewPreferencesStore wraps prefs.
func NewPreferencesStore(prefs fyne.Preferences) *PreferencesStore {
	return &PreferencesStore{prefs: prefs}
}

// Load reads the configuration, substituting defaults for absent or
// out-of-range values.
func (store *PreferencesStore) Load() (model.Configuration, error) {
	defaults := model.DefaultConfiguration()
	config := model.Configuration{
		WorkMinutes:      store.prefs.IntWithFallback(KeyWork, defaults.WorkMinutes),
		BreakMinutes:     store.prefs.IntWithFallback(KeyBreak, defaults.BreakMinutes),
		LongBreakMinutes: store.prefs.IntWithFallback(KeyLongBreak, defaults.LongBreakMinutes),
		CyclesToLong:     store.prefs.IntWithFallback(KeyCyclesToLong, defaults.CyclesToLong),
		AutoStart:        store.prefs.BoolWithFallback(KeyAutoStart, defaults.AutoStart),
		VibrateOnEnd:     store.prefs.BoolWithFallback(KeyVibrate, defaults.VibrateOnEnd),
	}
	return config.Sanitize(), nil
}

// Save writes every key.
func (store *PreferencesStore) Save(config model.Configuration) error {
	store.prefs.SetInt(KeyWork, config.WorkMinutes)
	store.prefs.SetInt(KeyBreak, config.BreakMinutes)
	store.prefs.SetInt(KeyLongBreak, config.LongBreakMinutes)
	store.prefs.SetInt(KeyCyclesToLong, config.CyclesToLong)
	store.prefs.SetBool(KeyAutoStart, config.AutoStart)
	store.prefs.SetBool(KeyVibrate, config.VibrateOnEnd)
	return nil
}
