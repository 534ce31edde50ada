package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verte-zerg/wordtyper/internal/model"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Test.Words != nil || cfg.UI.ShowClock != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigDecodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[test]
lang = "quotes"
words = 30

[ui]
hour-24 = false

[theme]
accent = "#00FF00"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Test.Lang == nil || *cfg.Test.Lang != "quotes" {
		t.Fatalf("unexpected lang: %v", cfg.Test.Lang)
	}
	if cfg.Test.Words == nil || *cfg.Test.Words != 30 {
		t.Fatalf("unexpected words: %v", cfg.Test.Words)
	}
	if cfg.UI.Hour24 == nil || *cfg.UI.Hour24 {
		t.Fatalf("unexpected hour-24: %v", cfg.UI.Hour24)
	}
	if cfg.UI.ShowClock != nil {
		t.Fatalf("expected show-clock unset")
	}

	theme := cfg.Theme.Apply(model.DefaultTheme())
	if theme.Accent != "#00FF00" {
		t.Fatalf("expected accent override, got %s", theme.Accent)
	}
	if theme.Fg != model.DefaultTheme().Fg {
		t.Fatalf("expected default fg, got %s", theme.Fg)
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[test]\nwrods = 3\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "test.wrods") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestXDGPathsHonorEnv(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_DATA_HOME", "/data")
	if got := DefaultConfigPath(); got != filepath.Join("/cfg", "wordtyper", "config.toml") {
		t.Fatalf("unexpected config path %s", got)
	}
	if got := DefaultLangDir(); got != filepath.Join("/data", "wordtyper", "langs") {
		t.Fatalf("unexpected lang dir %s", got)
	}
	if got := DefaultDBPath(); got != filepath.Join("/data", "wordtyper", "wordtyper.db") {
		t.Fatalf("unexpected db path %s", got)
	}
}
