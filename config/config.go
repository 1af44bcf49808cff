// Package config loads the helper configuration. Defaults ship embedded in
// assets/config.yaml; a YAML file on disk may override any of them.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"VorkathHelper/encounter"
)

// DefaultsPath is the location of the default config in the embedded assets.
const DefaultsPath = "assets/config.yaml"

// Environment variables read at startup.
const (
	EnvConfig = "VORKATHHELPER_CONFIG"
	EnvFeed   = "VORKATHHELPER_FEED"
)

// DefaultFile is the override file used when EnvConfig is not set.
const DefaultFile = "vorkathhelper.yaml"

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// AppContentReader defines the interface for reading content from the embedded file system.
type AppContentReader interface {
	ReadFile(name string) ([]byte, error)
}

// Config holds all helper settings.
type Config struct {
	LogLevel string            `yaml:"log_level"`
	FeedPath string            `yaml:"feed_path"`
	Icons    map[string]string `yaml:"icons"` // special name -> asset file
	Alert    Alert             `yaml:"alert"`
	Overlay  Overlay           `yaml:"overlay"`
}

// Alert controls the sound played when a special attack is due.
type Alert struct {
	Enabled   bool    `yaml:"enabled"`
	SoundFile string  `yaml:"sound_file"` // optional .ogg on disk
	Volume    float64 `yaml:"volume"`
}

// Overlay controls the indicator window.
type Overlay struct {
	Width    float32 `yaml:"width"`
	Height   float32 `yaml:"height"`
	TextSize float32 `yaml:"text_size"`
}

// Load reads the embedded defaults and applies the override file at path.
// A missing override file is not an error.
func Load(reader AppContentReader, path string) (Config, error) {
	var cfg Config

	data, err := reader.ReadFile(DefaultsPath)
	if err != nil {
		return cfg, fmt.Errorf("reading default config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing default config: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			slog.Debug("no config override", "path", path)
		case err != nil:
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing config %s: %w", path, err)
			}
			slog.Info("config override applied", "path", path)
		}
	}

	if feed := strings.TrimSpace(os.Getenv(EnvFeed)); feed != "" {
		cfg.FeedPath = feed
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Path returns the override file named by EnvConfig, or DefaultFile.
func Path() string {
	if p := strings.TrimSpace(os.Getenv(EnvConfig)); p != "" {
		return p
	}
	return DefaultFile
}

// Validate checks value ranges and icon keys.
func (c Config) Validate() error {
	if _, err := c.IconFiles(); err != nil {
		return err
	}
	if c.Alert.Volume < 0 || c.Alert.Volume > 1 {
		return fmt.Errorf("%w: alert.volume %v outside [0,1]", ErrInvalid, c.Alert.Volume)
	}
	if c.Overlay.Width <= 0 || c.Overlay.Height <= 0 {
		return fmt.Errorf("%w: overlay size %vx%v", ErrInvalid, c.Overlay.Width, c.Overlay.Height)
	}
	if c.Overlay.TextSize <= 0 {
		return fmt.Errorf("%w: overlay.text_size %v", ErrInvalid, c.Overlay.TextSize)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// IconFiles returns the icon file per special.
func (c Config) IconFiles() (map[encounter.Special]string, error) {
	files := make(map[encounter.Special]string, len(c.Icons))
	for key, file := range c.Icons {
		var s encounter.Special
		if err := s.UnmarshalText([]byte(key)); err != nil {
			return nil, fmt.Errorf("%w: icons: %v", ErrInvalid, err)
		}
		files[s] = file
	}
	return files, nil
}

// Level parses LogLevel. An empty level means info.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	return lvl, nil
}
