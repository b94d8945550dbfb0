// Package storage persists the user configuration.
package storage

import (
	"errors"
	"fmt"

	"workrest/internal/core/model"

	"fyne.io/fyne/v2"
)

// ErrUnknownBackend is returned by Open for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown settings backend")

// Backend names accepted by Open.
const (
	BackendAuto        = "auto"
	BackendPreferences = "preferences"
	BackendYAML        = "yaml"
)

// Store loads and saves the configuration.
type Store interface {
	Load() (model.Configuration, error)
	Save(config model.Configuration) error
}

// Target describes where settings may live.
type Target struct {
	Preferences fyne.Preferences
	Mobile      bool
	YAMLPath    string
}

// Open returns the store for backend. BackendAuto picks preferences on mobile
// devices and the YAML file elsewhere.
func Open(backend string, target Target) (Store, error) {
	if backend == "" || backend == BackendAuto {
		backend = BackendYAML
		if target.Mobile {
			backend = BackendPreferences
		}
	}

	switch backend {
	case BackendPreferences:
		if target.Preferences == nil {
			return nil, fmt.Errorf("open %s store: no preferences available", backend)
		}
		return NewPreferencesStore(target.Preferences), nil
	case BackendYAML:
		if target.YAMLPath == "" {
			return nil, fmt.Errorf("open %s store: empty path", backend)
		}
		return NewYAMLStore(target.YAMLPath), nil
	default:
		return nil, fmt.Errorf("open %q: %w", backend, ErrUnknownBackend)
	}
}
