package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"workrest/internal/core/model"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	Work         *int  `yaml:"work,omitempty"`
	Break        *int  `yaml:"break,omitempty"`
	LongBreak    *int  `yaml:"longbreak,omitempty"`
	CyclesToLong *int  `yaml:"cyclesToLong,omitempty"`
	AutoStart    *bool `yaml:"autoStart,omitempty"`
	Vibrate      *bool `yaml:"vibrate,omitempty"`
}

// YAMLStore keeps the configuration in a YAML file guarded by a lock file.
type YAMLStore struct {
	path string
	lock *flock.Flock
}

// NewYAMLStore returns a store for the file at path.
func NewYAMLStore(path string) *YAMLStore {
	return &YAMLStore{
		path: path,
		lock: flock.New(path + ".lock"),
	}
}

// DefaultYAMLPath returns the settings file under the user config directory.
func DefaultYAMLPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// Path returns the settings file location.
func (store *YAMLStore) Path() string {
	return store.path
}

// Load reads the configuration. A missing file yields the defaults; missing
// or out-of-range fields fall back to their defaults individually.
func (store *YAMLStore) Load() (model.Configuration, error) {
	config := model.DefaultConfiguration()

	rawData, err := os.ReadFile(store.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return config, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return config, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&config, fileData)
	return config.Sanitize(), nil
}

// Save writes the configuration.
func (store *YAMLStore) Save(config model.Configuration) error {
	if err := os.MkdirAll(filepath.Dir(store.path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	if err := store.lock.Lock(); err != nil {
		return fmt.Errorf("lock settings file: %w", err)
	}
	defer func() {
		_ = store.lock.Unlock()
	}()

	fileData := yamlSettings{
		Work:         &config.WorkMinutes,
		Break:        &config.BreakMinutes,
		LongBreak:    &config.LongBreakMinutes,
		CyclesToLong: &config.CyclesToLong,
		AutoStart:    &config.AutoStart,
		Vibrate:      &config.VibrateOnEnd,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(store.path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func applyYamlSettings(config *model.Configuration, fileData yamlSettings) {
	if fileData.Work != nil {
		config.WorkMinutes = *fileData.Work
	}
	if fileData.Break != nil {
		config.BreakMinutes = *fileData.Break
	}
	if fileData.LongBreak != nil {
		config.LongBreakMinutes = *fileData.LongBreak
	}
	if fileData.CyclesToLong != nil {
		config.CyclesToLong = *fileData.CyclesToLong
	}
	if fileData.AutoStart != nil {
		config.AutoStart = *fileData.AutoStart
	}
	if fileData.Vibrate != nil {
		config.VibrateOnEnd = *fileData.Vibrate
	}
}
