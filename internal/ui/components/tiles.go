package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/hamid/juzjourney/internal/quiz"
	"github.com/hamid/juzjourney/internal/ui/theme"
)

// TileRow renders quiz word tiles side by side. The tile at cursor gets
// a highlighted border; placed tiles in the bank are dimmed out.
func TileRow(tiles []*quiz.Tile, cursor int, width int) string {
	if len(tiles) == 0 {
		return theme.Hint.Render("(empty)")
	}

	rendered := make([]string, 0, len(tiles))
	for i, tile := range tiles {
		rendered = append(rendered, renderTile(tile, i == cursor))
	}

	return wrapRow(rendered, width)
}

func renderTile(tile *quiz.Tile, focused bool) string {
	color := theme.TileColor(tile.ColorIndex)

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	switch {
	case tile.Placed:
		style = style.
			BorderForeground(theme.Border).
			Foreground(theme.TextDim)
	case focused:
		style = style.
			BorderForeground(color).
			Foreground(color).
			Bold(true)
	default:
		style = style.
			BorderForeground(theme.Border).
			Foreground(color)
	}

	label := tile.Arabic
	if tile.Transliteration != "" {
		label += "\n" + theme.Hint.Render(tile.Transliteration)
	}
	return style.Render(label)
}

// wrapRow joins tile boxes horizontally, wrapping onto new rows when
// the running width exceeds the available width.
func wrapRow(tiles []string, width int) string {
	var rows []string
	var row []string
	rowWidth := 0

	for _, t := range tiles {
		w := lipgloss.Width(t)
		if rowWidth > 0 && rowWidth+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
			rowWidth = 0
		}
		row = append(row, t)
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return strings.Join(rows, "\n")
}
