package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"VorkathHelper/encounter"
)

func defaultsFS(t *testing.T) fstest.MapFS {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", DefaultsPath))
	require.NoError(t, err)
	return fstest.MapFS{DefaultsPath: {Data: data}}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvFeed, "")

	cfg, err := Load(defaultsFS(t), filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.Alert.Enabled)
	assert.InDelta(t, 0.2, cfg.Alert.Volume, 1e-9)
	assert.Equal(t, float32(96), cfg.Overlay.Width)

	icons, err := cfg.IconFiles()
	require.NoError(t, err)
	assert.Equal(t, "assets/icon_ice_barrage.png", icons[encounter.SpecialIceBarrage])
	assert.Len(t, icons, 3)
}

func TestLoadOverride(t *testing.T) {
	t.Setenv(EnvFeed, "")
	path := filepath.Join(t.TempDir(), "override.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log_level: debug
alert:
  enabled: false
overlay:
  text_size: 40
icons:
  poison_pool: assets/custom.png
`), 0o644))

	cfg, err := Load(defaultsFS(t), path)
	require.NoError(t, err)

	assert.False(t, cfg.Alert.Enabled)
	assert.InDelta(t, 0.2, cfg.Alert.Volume, 1e-9, "untouched keys keep defaults")
	assert.Equal(t, float32(40), cfg.Overlay.TextSize)
	assert.Equal(t, float32(96), cfg.Overlay.Height)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)

	icons, err := cfg.IconFiles()
	require.NoError(t, err)
	assert.Equal(t, "assets/custom.png", icons[encounter.SpecialPoisonPool])
	assert.Equal(t, "assets/icon_unknown.png", icons[encounter.SpecialUnknown])
}

func TestLoadFeedFromEnv(t *testing.T) {
	t.Setenv(EnvFeed, "/tmp/events.jsonl")

	cfg, err := Load(defaultsFS(t), "")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/events.jsonl", cfg.FeedPath)
}

func TestLoadErrors(t *testing.T) {
	t.Setenv(EnvFeed, "")

	_, err := Load(fstest.MapFS{}, "")
	assert.Error(t, err, "defaults are required")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("alert: [1, 2"), 0o644))
	_, err = Load(defaultsFS(t), bad)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{
		LogLevel: "warn",
		Icons:    map[string]string{"unknown": "a.png"},
		Alert:    Alert{Volume: 0.5},
		Overlay:  Overlay{Width: 10, Height: 10, TextSize: 12},
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown icon key", func(c *Config) { c.Icons = map[string]string{"fireball": "x.png"} }},
		{"volume too high", func(c *Config) { c.Alert.Volume = 1.5 }},
		{"negative volume", func(c *Config) { c.Alert.Volume = -0.1 }},
		{"zero width", func(c *Config) { c.Overlay.Width = 0 }},
		{"zero text size", func(c *Config) { c.Overlay.TextSize = 0 }},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			cfg.Icons = map[string]string{"unknown": "a.png"}
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestPath(t *testing.T) {
	t.Setenv(EnvConfig, "")
	assert.Equal(t, DefaultFile, Path())

	t.Setenv(EnvConfig, "/etc/vh.yaml")
	assert.Equal(t, "/etc/vh.yaml", Path())
}
