package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/leighmacdonald/playground/internal/anim"
	"github.com/leighmacdonald/playground/internal/config"
	"github.com/leighmacdonald/playground/internal/overlay"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultConfigName+".yaml"), []byte(body), 0o600))

	return dir
}

func TestReadDefaults(t *testing.T) {
	loader := config.NewLoader(nil, "", t.TempDir())
	conf, err := loader.Read()
	require.NoError(t, err)

	require.False(t, conf.Debug)
	require.Equal(t, "info", conf.LogLevel)
	require.Equal(t, overlay.DefaultTuning, conf.Tuning())
}

func TestReadFile(t *testing.T) {
	dir := writeConfig(t, `
log_level: debug
fps: 30
animation:
  panel_spring:
    frequency: 12
    damping: 1
  reveal_threshold: 0.3
`)

	loader := config.NewLoader(nil, "", dir)
	conf, err := loader.Read()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "playground.yaml"), loader.Path())

	tuning := conf.Tuning()
	require.Equal(t, 30, tuning.FPS)
	require.Equal(t, anim.Spring{Frequency: 12, Damping: 1}, tuning.PanelSpring)
	require.Equal(t, overlay.DefaultTuning.ImageSpring, tuning.ImageSpring)
	require.InDelta(t, 0.3, tuning.RevealThreshold, 1e-9)
	require.InDelta(t, overlay.DefaultTuning.ContentFadeStart, tuning.ContentFadeStart, 1e-9)
}

func TestReadExplicitFile(t *testing.T) {
	dir := writeConfig(t, "fps: 24\n")

	conf, err := config.NewLoader(nil, filepath.Join(dir, "playground.yaml")).Read()
	require.NoError(t, err)
	require.Equal(t, 24, conf.FPS)

	_, errMissing := config.NewLoader(nil, filepath.Join(dir, "missing.yaml")).Read()
	require.Error(t, errMissing)
}

func TestReadEnvOverride(t *testing.T) {
	t.Setenv("PLAYGROUND_FPS", "45")
	t.Setenv("PLAYGROUND_ANIMATION_REVEAL_THRESHOLD", "0.25")

	conf, err := config.NewLoader(nil, "", t.TempDir()).Read()
	require.NoError(t, err)
	require.Equal(t, 45, conf.FPS)
	require.InDelta(t, 0.25, conf.Animation.RevealThreshold, 1e-9)
}

func TestReadInvalid(t *testing.T) {
	dir := writeConfig(t, `
animation:
  image_spring:
    frequency: 20
    damping: 0.3
`)

	_, err := config.NewLoader(nil, "", dir).Read()
	require.ErrorIs(t, err, overlay.ErrInvalidTuning)
	require.ErrorIs(t, err, anim.ErrInvalidSpring)

	_, errLevel := config.NewLoader(nil, "", writeConfig(t, "log_level: loud\n")).Read()
	require.Error(t, errLevel)
}

func TestParseLevel(t *testing.T) {
	for name, expected := range map[string]slog.Level{
		"":      slog.LevelInfo,
		"DEBUG": slog.LevelDebug,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		level, err := config.ParseLevel(name)
		require.NoError(t, err)
		require.Equal(t, expected, level)
	}

	_, err := config.ParseLevel("verbose")
	require.Error(t, err)
}
