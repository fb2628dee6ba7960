package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// GridLine is one rendered slot row.
type GridLine struct {
	Label       string // hour label, only on full-hour rows
	Marker      string // single cell between label and content
	Text        string
	LabelStyle  lipgloss.Style
	MarkerStyle lipgloss.Style
	CellStyle   lipgloss.Style
}

// GridViewState holds the visible slot rows.
type GridViewState struct {
	Width      int
	Height     int
	LabelWidth int
	Lines      []GridLine
	Bg         lipgloss.Color
}

// RenderGrid renders one terminal line per slot: a right-aligned hour label,
// a marker cell, then the slot content filling the rest of the width.
func RenderGrid(s GridViewState) string {
	if s.Width <= 0 || s.Height <= 0 {
		return ""
	}
	cellW := max(s.Width-s.LabelWidth-1, 0)

	rows := make([]string, 0, len(s.Lines))
	for _, line := range s.Lines {
		label := line.Label
		if w := lipgloss.Width(label); w < s.LabelWidth {
			label = strings.Repeat(" ", s.LabelWidth-w) + label
		}
		marker := line.Marker
		if marker == "" {
			marker = " "
		}
		text := ""
		if line.Text != "" {
			text = " " + line.Text
		}
		rows = append(rows,
			line.LabelStyle.Render(Truncate(label, s.LabelWidth))+
				line.MarkerStyle.Render(marker)+
				line.CellStyle.Render(PadRight(text, cellW)))
	}
	return PlaceBox(s.Width, s.Height, lipgloss.Top, strings.Join(rows, "\n"), s.Bg)
}
