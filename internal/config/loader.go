package config

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/leighmacdonald/playground/internal/overlay"
	"github.com/spf13/viper"
)

// Loader handles setting up viper, loading configuration from files, and broadcasting configuration changes.
type Loader struct {
	*viper.Viper
	changes chan<- Config
}

// NewLoader sets up the defaults and search paths. When configFile is not empty it is used instead
// of searching the config directories.
func NewLoader(changes chan<- Config, configFile string, searchPaths ...string) *Loader {
	loader := Loader{changes: changes, Viper: viper.New()}
	loader.SetDefault("debug", false)
	loader.SetDefault("log_level", "info")
	loader.SetDefault("fps", overlay.DefaultTuning.FPS)
	loader.SetDefault("animation.panel_spring.frequency", overlay.DefaultTuning.PanelSpring.Frequency)
	loader.SetDefault("animation.panel_spring.damping", overlay.DefaultTuning.PanelSpring.Damping)
	loader.SetDefault("animation.image_spring.frequency", overlay.DefaultTuning.ImageSpring.Frequency)
	loader.SetDefault("animation.image_spring.damping", overlay.DefaultTuning.ImageSpring.Damping)
	loader.SetDefault("animation.reveal_threshold", overlay.DefaultTuning.RevealThreshold)
	loader.SetDefault("animation.content_fade_start", overlay.DefaultTuning.ContentFadeStart)
	loader.SetConfigType("yaml")
	loader.SetEnvPrefix(EnvPrefix)
	loader.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	loader.AutomaticEnv()

	if configFile != "" {
		loader.SetConfigFile(configFile)
	} else {
		loader.SetConfigName(DefaultConfigName)
		for _, searchPath := range searchPaths {
			loader.AddConfigPath(searchPath)
		}
	}

	return &loader
}

// Watch starts watching the config file, pushing every successful reload onto the changes channel.
func (cl *Loader) Watch() {
	cl.OnConfigChange(cl.onConfigChange)
	cl.WatchConfig()
}

func (cl *Loader) Path() string {
	return cl.ConfigFileUsed()
}

func (cl *Loader) onConfigChange(in fsnotify.Event) {
	if !in.Has(fsnotify.Write) && !in.Has(fsnotify.Rename) && !in.Has(fsnotify.Create) {
		return
	}

	slog.Debug("External config reload triggered", slog.String("path", in.Name))
	config, err := cl.Read()
	if err != nil {
		slog.Error("Error reading config", slog.String("error", err.Error()))

		return
	}

	if cl.changes != nil {
		cl.changes <- config
	}
}

// Read loads the config file if one exists, a missing file leaves the defaults in place.
func (cl *Loader) Read() (Config, error) {
	if err := cl.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return Config{}, errors.Join(err, errConfigRead)
		}
	}

	var config Config
	if err := cl.Unmarshal(&config); err != nil {
		return Config{}, errors.Join(err, errConfigRead)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}
