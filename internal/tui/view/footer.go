package view

import "github.com/charmbracelet/lipgloss"

// FooterViewState holds the strings needed to render the footer section.
type FooterViewState struct {
	InnerW      int
	StatusLine  string
	HelpLine    string
	StatusStyle lipgloss.Style
	HelpStyle   lipgloss.Style
	Bg          lipgloss.Color
}

// FooterHeight is the number of lines the footer occupies.
const FooterHeight = 2

// RenderFooter renders the status and help lines.
func RenderFooter(state FooterViewState) string {
	if state.InnerW <= 0 {
		return ""
	}
	status := state.StatusStyle.Render(Truncate(state.StatusLine, state.InnerW))
	help := state.HelpStyle.Render(Truncate(state.HelpLine, state.InnerW))
	return PlaceBox(state.InnerW, FooterHeight, lipgloss.Bottom, status+"\n"+help, state.Bg)
}
