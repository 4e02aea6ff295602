package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/milk9111/rscedit/model"
	"gopkg.in/yaml.v3"
)

const (
	EnvConfigPath = "RSCEDIT_CONFIG"
	EnvTileSize   = "RSCEDIT_TILE_SIZE"

	DefaultPath     = "rscedit.yaml"
	DefaultTileSize = 20
)

type SectorConfig struct {
	X     int `yaml:"x"`
	Y     int `yaml:"y"`
	Plane int `yaml:"plane"`
}

// Config is the editor settings file.
type Config struct {
	Display   model.DisplayConfiguration `yaml:"display"`
	Sector    SectorConfig               `yaml:"sector"`
	TileSize  int                        `yaml:"tile_size"`
	Zoom      float64                    `yaml:"zoom"`
	Locations string                     `yaml:"locations,omitempty"`
}

func Default() Config {
	return Config{
		Display:  model.DefaultDisplayConfiguration(),
		Sector:   SectorConfig{X: 2, Y: 13},
		TileSize: DefaultTileSize,
		Zoom:     1,
	}
}

// Path returns the settings file to use: explicit wins, then the
// RSCEDIT_CONFIG environment variable, then DefaultPath.
func Path(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return DefaultPath
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, applyEnv(&cfg)
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if cfg.TileSize <= 0 {
		cfg.TileSize = DefaultTileSize
	}
	if cfg.Zoom <= 0 {
		cfg.Zoom = 1
	}
	return cfg, applyEnv(&cfg)
}

func applyEnv(cfg *Config) error {
	v := os.Getenv(EnvTileSize)
	if v == "" {
		return nil
	}
	size, err := strconv.Atoi(v)
	if err != nil || size <= 0 {
		return fmt.Errorf("config: %s must be a positive integer, got %q", EnvTileSize, v)
	}
	cfg.TileSize = size
	return nil
}

// Diff returns the display properties whose value differs between old and
// next, with next's values.
func Diff(old, next model.DisplayConfiguration) map[model.DisplayProperty]bool {
	changed := make(map[model.DisplayProperty]bool)
	for _, p := range model.DisplayProperties {
		if old.Get(p) != next.Get(p) {
			changed[p] = next.Get(p)
		}
	}
	return changed
}

// Reload reads path and reports which display properties differ from
// current. On error the returned config is the defaults and nothing changed.
// An empty file is a save still in progress: it keeps current and reports
// nothing changed.
func Reload(path string, current model.DisplayConfiguration) (Config, map[model.DisplayProperty]bool, error) {
	if data, err := os.ReadFile(path); err == nil && len(bytes.TrimSpace(data)) == 0 {
		cfg := Default()
		cfg.Display = current
		return cfg, nil, nil
	}

	cfg, err := Load(path)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, Diff(current, cfg.Display), nil
}
