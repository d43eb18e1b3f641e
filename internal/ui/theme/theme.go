package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette. Warm and calm, dark background.
var (
	Primary   = lipgloss.Color("#10B981") // Emerald
	Secondary = lipgloss.Color("#F59E0B") // Amber
	Accent    = lipgloss.Color("#FBBF24") // Gold
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// surahAccents maps the color names used by the surah dataset to
// terminal colors.
var surahAccents = map[string]color.Color{
	"indigo":  lipgloss.Color("#818CF8"),
	"orange":  lipgloss.Color("#FB923C"),
	"emerald": lipgloss.Color("#34D399"),
	"rose":    lipgloss.Color("#FB7185"),
	"blue":    lipgloss.Color("#60A5FA"),
	"slate":   lipgloss.Color("#94A3B8"),
}

// SurahAccent returns the accent color for a surah's color name,
// falling back to the primary color for unknown names.
func SurahAccent(name string) color.Color {
	if c, ok := surahAccents[name]; ok {
		return c
	}
	return Primary
}

// tileColors is the rotating palette for quiz word tiles, indexed by
// each tile's stable color index.
var tileColors = []color.Color{
	lipgloss.Color("#34D399"), // emerald
	lipgloss.Color("#60A5FA"), // blue
	lipgloss.Color("#FBBF24"), // gold
	lipgloss.Color("#FB7185"), // rose
	lipgloss.Color("#818CF8"), // indigo
	lipgloss.Color("#2DD4BF"), // teal
}

// TileColor returns the color for a quiz tile's color index.
func TileColor(index int) color.Color {
	if index < 0 {
		index = -index
	}
	return tileColors[index%len(tileColors)]
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Arabic = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)
