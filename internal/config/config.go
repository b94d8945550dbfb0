// Package config provides the process runtime options for workrest.
// User timer settings live in internal/storage instead.
package config

import "time"

// Options holds runtime options.
type Options struct {
	Timer    TimerOptions    `yaml:"timer" mapstructure:"timer"`
	Settings SettingsOptions `yaml:"settings" mapstructure:"settings"`
	Log      LogOptions      `yaml:"log" mapstructure:"log"`
}

// TimerOptions holds countdown settings.
type TimerOptions struct {
	TickInterval time.Duration `yaml:"tick_interval" mapstructure:"tick_interval"`
}

// SettingsOptions selects the settings store.
type SettingsOptions struct {
	Backend string `yaml:"backend" mapstructure:"backend"` // auto, preferences or yaml
	Path    string `yaml:"path" mapstructure:"path"`       // yaml file override
}

// LogOptions holds logging settings.
type LogOptions struct {
	Level    string            `yaml:"level" mapstructure:"level"`
	File     string            `yaml:"file" mapstructure:"file"` // empty: under the app storage root
	Rotation LogRotationConfig `yaml:"rotation" mapstructure:"rotation"`
}

// LogRotationConfig holds settings for log file rotation.
type LogRotationConfig struct {
	MaxSizeMB  int  `yaml:"max_size_mb" mapstructure:"max_size_mb"`
	MaxBackups int  `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAgeDays int  `yaml:"max_age_days" mapstructure:"max_age_days"`
	Compress   bool `yaml:"compress" mapstructure:"compress"`
}

// Default returns the built-in options.
func Default() *Options {
	return &Options{
		Timer: TimerOptions{
			TickInterval: time.Second,
		},
		Settings: SettingsOptions{
			Backend: "auto",
		},
		Log: LogOptions{
			Level: "info",
			Rotation: LogRotationConfig{
				MaxSizeMB:  5,
				MaxBackups: 3,
				MaxAgeDays: 14,
			},
		},
	}
}

// normalize restores defaults for values that cannot be used.
func (options *Options) normalize() {
	defaults := Default()
	if options.Timer.TickInterval <= 0 {
		options.Timer.TickInterval = defaults.Timer.TickInterval
	}
	if options.Settings.Backend == "" {
		options.Settings.Backend = defaults.Settings.Backend
	}
	if options.Log.Level == "" {
		options.Log.Level = defaults.Log.Level
	}
	if options.Log.Rotation.MaxSizeMB <= 0 {
		options.Log.Rotation.MaxSizeMB = defaults.Log.Rotation.MaxSizeMB
	}
}
