package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const (
	// ConfigDir is the directory name under the user config directory.
	ConfigDir = "workrest"
	// ConfigFile is the options file name.
	ConfigFile = "options.yaml"
	// EnvPrefix prefixes environment overrides, e.g. WORKREST_LOG_LEVEL.
	EnvPrefix = "WORKREST"
)

// Load reads options.
// Precedence (later overrides earlier):
//  1. Default() values
//  2. <user config dir>/workrest/options.yaml
//  3. Environment variables (WORKREST_*)
//
// A missing options file is silently ignored.
func Load(v *viper.Viper) (*Options, error) {
	return LoadFile(v, defaultConfigPath())
}

// LoadFile is Load with an explicit options file; an empty path skips the file.
func LoadFile(v *viper.Viper, path string) (*Options, error) {
	options := Default()

	defaultMap, err := structToMap(options)
	if err != nil {
		return nil, err
	}
	if err := v.MergeConfigMap(defaultMap); err != nil {
		return nil, err
	}

	if path != "" {
		if err := loadConfigFile(v, path); err != nil {
			return nil, err
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.Unmarshal(options, viperDecodeHook()); err != nil {
		return nil, err
	}

	options.normalize()
	return options, nil
}

func defaultConfigPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(configDir, ConfigDir, ConfigFile)
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

// loadConfigFile merges a YAML file into v. Returns nil if the file doesn't exist.
func loadConfigFile(v *viper.Viper, path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	fileViper := viper.New()
	fileViper.SetConfigType("yaml")
	if err := fileViper.ReadConfig(file); err != nil {
		return err
	}

	return v.MergeConfigMap(fileViper.AllSettings())
}

func viperDecodeHook() viper.DecoderConfigOption {
	return viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
	))
}

// structToMap converts options to a map for viper.MergeConfigMap.
func structToMap(options *Options) (map[string]interface{}, error) {
	result := make(map[string]interface{})

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:    "mapstructure",
		Result:     &result,
		DecodeHook: durationToStringHook(),
	})
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(options); err != nil {
		return nil, err
	}

	return result, nil
}

// durationToStringHook converts time.Duration to string for YAML compatibility.
func durationToStringHook() mapstructure.DecodeHookFunc {
	return func(from, to reflect.Type, data interface{}) (interface{}, error) {
		if from != reflect.TypeOf(time.Duration(0)) {
			return data, nil
		}
		return data.(time.Duration).String(), nil
	}
}
