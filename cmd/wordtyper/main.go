// Package main provides the CLI entrypoint for wordtyper.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/wordtyper/internal/config"
	"github.com/verte-zerg/wordtyper/internal/generator"
	"github.com/verte-zerg/wordtyper/internal/lang"
	"github.com/verte-zerg/wordtyper/internal/model"
	"github.com/verte-zerg/wordtyper/internal/palette"
	"github.com/verte-zerg/wordtyper/internal/store"
	"github.com/verte-zerg/wordtyper/internal/tui"
)

const (
	defaultLang      = "english"
	defaultWords     = 50
	defaultPunct     = 0.0
	defaultPunctSet  = ".,!?;:"
	defaultShowClock = true
	defaultHour24    = true
)

var (
	testLang      string
	testWords     int
	testPunct     float64
	testPunctSet  string
	testShowClock bool
	testHour24    bool
	logPath       string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wordtyper",
		Short:         "Terminal typing test",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runTestCmd,
	}

	rootCmd.Flags().StringVar(&testLang, "lang", defaultLang, "language name (see: wordtyper langs)")
	rootCmd.Flags().IntVar(&testWords, "words", defaultWords, "words per test")
	rootCmd.Flags().Float64Var(&testPunct, "punct", defaultPunct, "punctuation probability per word (0-1)")
	rootCmd.Flags().StringVar(&testPunctSet, "punct-set", defaultPunctSet, "punctuation set")
	rootCmd.Flags().BoolVar(&testShowClock, "show-clock", defaultShowClock, "show a clock in the modeline")
	rootCmd.Flags().BoolVar(&testHour24, "hour-24", defaultHour24, "use a 24-hour clock")
	rootCmd.Flags().StringVar(&logPath, "log", "", "write debug log to this file")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLangsCmd())
	rootCmd.AddCommand(newColorsCmd())

	return rootCmd
}

func runTestCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "lang", &testLang, fileCfg.Test.Lang)
	applyIntConfig(cmd, "words", &testWords, fileCfg.Test.Words)
	applyFloatConfig(cmd, "punct", &testPunct, fileCfg.Test.PunctPct)
	applyStringConfig(cmd, "punct-set", &testPunctSet, fileCfg.Test.PunctSet)
	applyBoolConfig(cmd, "show-clock", &testShowClock, fileCfg.UI.ShowClock)
	applyBoolConfig(cmd, "hour-24", &testHour24, fileCfg.UI.Hour24)

	cfg := model.Config{
		Lang:      testLang,
		Words:     testWords,
		PunctPct:  testPunct,
		PunctSet:  testPunctSet,
		ShowClock: testShowClock,
		Hour24:    testHour24,
		Theme:     fileCfg.Theme.Apply(model.DefaultTheme()),
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}
	if err := requireTerminal(); err != nil {
		return err
	}

	closeLog, err := setupLog(logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	langDir := config.DefaultLangDir()
	l, err := lang.Open(langDir, cfg.Lang)
	if err != nil {
		return langLoadError(cfg.Lang, langDir, err)
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	src := lang.NewSource(l, generator.New(), lang.Options{
		PunctPct: cfg.PunctPct,
		PunctSet: []rune(cfg.PunctSet),
	})
	if l.Inorder {
		pos, err := st.Position(context.Background(), l.Name)
		if err != nil {
			logErrf("failed to load saved position: %v\n", err)
		}
		src.SetPosition(pos)
	}

	m, err := tui.NewModel(cfg, src, st)
	if err != nil {
		return err
	}
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newLangsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "List available languages",
		Args:  cobra.NoArgs,
		RunE:  runLangsCmd,
	}
}

func runLangsCmd(cmd *cobra.Command, _ []string) error {
	names, err := lang.List(config.DefaultLangDir())
	if err != nil {
		return err
	}
	for _, name := range names {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newColorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "colors",
		Short: "Preview terminal colors for theming",
		Args:  cobra.NoArgs,
		RunE:  runColorsCmd,
	}
}

func runColorsCmd(_ *cobra.Command, _ []string) error {
	if err := requireTerminal(); err != nil {
		return err
	}
	program := tea.NewProgram(palette.NewModel(), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run color preview: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	th := model.DefaultTheme()
	return fmt.Sprintf(`# wordtyper configuration
# Uncomment a value to enable it. CLI flags override config values.

[test]
# lang = %q         # Language name (see: wordtyper langs)
# words = %d               # Words per test
# punct = %.2f             # Punctuation probability per word (0-1)
# punct-set = %q      # Punctuation set

[ui]
# show-clock = %t        # Show a clock in the modeline
# hour-24 = %t           # Use a 24-hour clock

[theme]
# Colors accept hex values or ANSI numbers (see: wordtyper colors).
# fg = %q
# bg = %q
# accent = %q
# untyped = %q
# typed = %q
# incorrect = %q
`,
		defaultLang,
		defaultWords,
		defaultPunct,
		defaultPunctSet,
		defaultShowClock,
		defaultHour24,
		th.Fg,
		th.Bg,
		th.Accent,
		th.Untyped,
		th.Typed,
		th.Incorrect,
	)
}

func validateConfig(cfg model.Config) error {
	if strings.TrimSpace(cfg.Lang) == "" {
		return fmt.Errorf("--lang must not be empty")
	}
	if cfg.Words <= 0 {
		return fmt.Errorf("--words must be > 0")
	}
	if cfg.PunctPct < 0 || cfg.PunctPct > 1 {
		return fmt.Errorf("--punct must be between 0 and 1")
	}
	if cfg.PunctPct > 0 && cfg.PunctSet == "" {
		return fmt.Errorf("--punct-set must not be empty")
	}
	return nil
}

func requireTerminal() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("wordtyper needs an interactive terminal")
	}
	return nil
}

// setupLog routes the std logger to path, or discards it when path is empty.
func setupLog(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "wordtyper")
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return func() {
		_ = f.Close()
	}, nil
}

func langLoadError(name, dir string, err error) error {
	lines := []string{fmt.Sprintf("failed to load language: %v", err)}
	if errors.Is(err, lang.ErrNotFound) {
		lines = append(lines,
			fmt.Sprintf("expected language file at: %s", filepath.Join(dir, name)),
			"Run: wordtyper langs",
		)
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
