// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/wordtyper/internal/model"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Test  TestConfig  `toml:"test"`
	UI    UIConfig    `toml:"ui"`
	Theme ThemeConfig `toml:"theme"`
}

// TestConfig maps typing test settings.
type TestConfig struct {
	Lang     *string  `toml:"lang"`
	Words    *int     `toml:"words"`
	PunctPct *float64 `toml:"punct"`
	PunctSet *string  `toml:"punct-set"`
}

// UIConfig maps interface settings.
type UIConfig struct {
	ShowClock *bool `toml:"show-clock"`
	Hour24    *bool `toml:"hour-24"`
}

// ThemeConfig maps color overrides.
type ThemeConfig struct {
	Fg        *string `toml:"fg"`
	Bg        *string `toml:"bg"`
	Accent    *string `toml:"accent"`
	Untyped   *string `toml:"untyped"`
	Typed     *string `toml:"typed"`
	Incorrect *string `toml:"incorrect"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}

// Apply overlays the set colors onto base.
func (c ThemeConfig) Apply(base model.Theme) model.Theme {
	set := func(target *string, value *string) {
		if value != nil && *value != "" {
			*target = *value
		}
	}
	set(&base.Fg, c.Fg)
	set(&base.Bg, c.Bg)
	set(&base.Accent, c.Accent)
	set(&base.Untyped, c.Untyped)
	set(&base.Typed, c.Typed)
	set(&base.Incorrect, c.Incorrect)
	return base
}
