package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/wordtyper/internal/config"
	"github.com/verte-zerg/wordtyper/internal/model"
)

func TestValidateConfig(t *testing.T) {
	base := model.Config{Lang: "english", Words: 10, PunctPct: 0.5, PunctSet: "."}
	if err := validateConfig(base); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	bad := []model.Config{
		{Lang: "", Words: 10},
		{Lang: "english", Words: 0},
		{Lang: "english", Words: 10, PunctPct: 1.5, PunctSet: "."},
		{Lang: "english", Words: 10, PunctPct: 0.5},
	}
	for _, cfg := range bad {
		if err := validateConfig(cfg); err == nil {
			t.Fatalf("expected error for %+v", cfg)
		}
	}
}

func TestConfigFlagOverride(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.Flags().Set("words", "12"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	fromFile := 30
	applyIntConfig(cmd, "words", &testWords, &fromFile)
	if testWords != 12 {
		t.Fatalf("expected flag to win, got %d", testWords)
	}

	lang := "quotes"
	applyStringConfig(cmd, "lang", &testLang, &lang)
	if testLang != "quotes" {
		t.Fatalf("expected config value for unset flag, got %q", testLang)
	}
}

func TestDefaultConfigTemplateDecodes(t *testing.T) {
	var uncommented strings.Builder
	for _, line := range strings.Split(defaultConfigTemplate(), "\n") {
		line = strings.TrimPrefix(line, "# ")
		if strings.Contains(line, "=") || strings.HasPrefix(line, "[") {
			uncommented.WriteString(line + "\n")
		}
	}
	var cfg config.FileConfig
	if _, err := toml.Decode(uncommented.String(), &cfg); err != nil {
		t.Fatalf("template does not decode: %v\n%s", err, uncommented.String())
	}
	if cfg.Test.Words == nil || *cfg.Test.Words != defaultWords {
		t.Fatalf("unexpected words in template: %v", cfg.Test.Words)
	}
	if cfg.Theme.Accent == nil || *cfg.Theme.Accent != model.DefaultTheme().Accent {
		t.Fatalf("unexpected accent in template: %v", cfg.Theme.Accent)
	}
}

func TestLangsCmdListsBuiltinAndFiles(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)
	dir := config.DefaultLangDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "quotes"), []byte("x\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cmd := newLangsCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	if err := runLangsCmd(cmd, nil); err != nil {
		t.Fatalf("langs: %v", err)
	}
	if out.String() != "english\nquotes\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}
