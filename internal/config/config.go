package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"strings"

	"github.com/adrg/xdg"
	"github.com/leighmacdonald/playground/internal/anim"
	"github.com/leighmacdonald/playground/internal/overlay"
)

var (
	errConfigRead    = errors.New("failed to read config file")
	errConfigInvalid = errors.New("invalid config")
	errLoggerInit    = errors.New("failed to initialize logger")
)

const (
	ConfigDirName     = "playground"
	DefaultConfigName = "playground"
	DefaultLogName    = "playground.log"
	EnvPrefix         = "playground"
)

type Config struct {
	Debug     bool      `mapstructure:"debug" yaml:"debug"`
	LogLevel  string    `mapstructure:"log_level" yaml:"log_level"`
	FPS       int       `mapstructure:"fps" yaml:"fps"`
	Animation Animation `mapstructure:"animation" yaml:"animation"`
}

// Animation holds the spring and staging constants of the product screen. The springs are given
// as angular frequency and damping ratio.
type Animation struct {
	PanelSpring      anim.Spring `mapstructure:"panel_spring" yaml:"panel_spring"`
	ImageSpring      anim.Spring `mapstructure:"image_spring" yaml:"image_spring"`
	RevealThreshold  float64     `mapstructure:"reveal_threshold" yaml:"reveal_threshold"`
	ContentFadeStart float64     `mapstructure:"content_fade_start" yaml:"content_fade_start"`
}

// Tuning converts the animation settings into the overlay's tuning.
func (c Config) Tuning() overlay.Tuning {
	return overlay.Tuning{
		PanelSpring:      c.Animation.PanelSpring,
		ImageSpring:      c.Animation.ImageSpring,
		RevealThreshold:  c.Animation.RevealThreshold,
		ContentFadeStart: c.Animation.ContentFadeStart,
		FPS:              c.FPS,
	}
}

func (c Config) Validate() error {
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return errors.Join(err, errConfigInvalid)
	}

	if err := c.Tuning().Validate(); err != nil {
		return errors.Join(err, errConfigInvalid)
	}

	return nil
}

// ParseLevel maps the config log level name onto a slog level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}

// Path generates a path pointing to the filename under this apps defined $XDG_CONFIG_HOME.
func Path(name string) string {
	fullPath, errFullPath := xdg.ConfigFile(path.Join(ConfigDirName, name))
	if errFullPath != nil {
		panic(errFullPath)
	}

	return fullPath
}

// LoggerInit sets up the slog global handler to use a log file as we cant print to the console.
func LoggerInit(logPath string, level slog.Level) (io.Closer, error) {
	logFile, errLogFile := os.Create(Path(logPath))
	if errLogFile != nil {
		return nil, errors.Join(errLogFile, errLoggerInit)
	}

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	}))

	slog.SetDefault(logger)

	return logFile, nil
}
