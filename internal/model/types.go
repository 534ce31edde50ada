// Package model defines shared data structures.
package model

// Config defines test and interface settings.
type Config struct {
	Lang      string
	Words     int
	PunctPct  float64
	PunctSet  string
	ShowClock bool
	Hour24    bool
	Theme     Theme
}

// Theme holds the interface colors as lipgloss color strings.
type Theme struct {
	Fg        string
	Bg        string
	Accent    string
	Untyped   string
	Typed     string
	Incorrect string
}

// DefaultTheme returns the built-in palette.
func DefaultTheme() Theme {
	return Theme{
		Fg:        "#F0F0F0",
		Bg:        "#1C1C1C",
		Accent:    "#C89A3A",
		Untyped:   "#8C8C8C",
		Typed:     "#F0F0F0",
		Incorrect: "#FF4D4F",
	}
}
