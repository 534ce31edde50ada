// Package lang loads language files and turns them into word sources.
//
// A language file starts with flag lines, followed by a delimiter line and one
// entry per line:
//
//	inorder
//	-----BEGIN WORDLIST-----
//	word1
//	word2
package lang

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Delimiter separates the flag header from the word list.
const Delimiter = "-----BEGIN WORDLIST-----"

var (
	// ErrConflictingFlags is returned when select_one and select_all are both set.
	ErrConflictingFlags = errors.New("select_one and select_all are mutually exclusive")
	// ErrEmpty is returned for a language without entries.
	ErrEmpty = errors.New("language has no words")
	// ErrNotFound is returned when no file or builtin language matches a name.
	ErrNotFound = errors.New("language not found")
)

//go:embed builtin
var builtin embed.FS

// Lang is a parsed language file.
type Lang struct {
	Name string

	// Inorder tests entries in file order, continuing from a saved position.
	Inorder bool
	// Punctuated entries carry their own punctuation.
	Punctuated bool
	// SelectOne tests a single entry, split into words.
	SelectOne bool
	// SelectAll tests every entry once.
	SelectAll bool

	Words []string
}

// Parse reads a language from r.
func Parse(name string, r io.Reader) (*Lang, error) {
	l := &Lang{Name: name, Words: make([]string, 0, 250)}
	header := true
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if header {
			if line == Delimiter {
				header = false
				continue
			}
			switch line {
			case "inorder":
				l.Inorder = true
			case "punctuated":
				l.Punctuated = true
			case "select_one":
				l.SelectOne = true
			case "select_all":
				l.SelectAll = true
			}
			continue
		}
		if line == "" {
			continue
		}
		l.Words = append(l.Words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read language %s: %w", name, err)
	}
	if l.SelectOne && l.SelectAll {
		return nil, fmt.Errorf("language %s: %w", name, ErrConflictingFlags)
	}
	if len(l.Words) == 0 {
		return nil, fmt.Errorf("language %s: %w", name, ErrEmpty)
	}
	return l, nil
}

// Load reads the language file at path. The language is named after the file.
func Load(path string) (*Lang, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()
	return Parse(filepath.Base(path), file)
}

// Open loads name from dir, falling back to the builtin languages.
func Open(dir, name string) (*Lang, error) {
	l, err := Load(filepath.Join(dir, name))
	if err == nil {
		return l, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	file, err := builtin.Open("builtin/" + name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	defer func() {
		_ = file.Close()
	}()
	return Parse(name, file)
}

// List returns the names of languages in dir plus the builtin ones, sorted.
func List(dir string) ([]string, error) {
	seen := map[string]struct{}{}
	entries, err := os.ReadDir(dir)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read language directory: %w", err)
	}
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			seen[entry.Name()] = struct{}{}
		}
	}
	builtins, err := fs.ReadDir(builtin, "builtin")
	if err != nil {
		return nil, err
	}
	for _, entry := range builtins {
		seen[entry.Name()] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
