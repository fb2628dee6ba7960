package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ModalStyles groups the styles a Modal is drawn with.
type ModalStyles struct {
	Frame        lipgloss.Style
	Header       lipgloss.Style
	Title        lipgloss.Style
	Meta         lipgloss.Style
	Body         lipgloss.Style
	Warn         lipgloss.Style
	Footer       lipgloss.Style
	Button       lipgloss.Style
	ButtonActive lipgloss.Style
}

// Modal is a dialog box: a title, an optional meta line, a pre-rendered
// body, an optional warning and a row of key hints. The first button is
// drawn as the default action.
type Modal struct {
	Title   string
	Meta    string
	Body    string
	Warn    string
	Buttons []string
}

// Render draws the modal. Empty sections are skipped along with the blank
// line that would separate them.
func (m Modal) Render(s ModalStyles) string {
	sections := []string{s.Header.Render(s.Title.Render(m.Title))}
	if m.Meta != "" {
		sections = append(sections, s.Meta.Render(m.Meta))
	}
	if m.Body != "" {
		sections = append(sections, m.Body)
	}
	if m.Warn != "" {
		sections = append(sections, s.Warn.Render(m.Warn))
	}
	if len(m.Buttons) > 0 {
		sections = append(sections, s.Footer.Render(RenderButtons(s, m.Buttons...)))
	}
	return s.Frame.Render(strings.Join(sections, "\n\n"))
}

// RenderButtons renders a row of key hints with the first one active. The
// separator carries the body background so the row has no gaps.
func RenderButtons(s ModalStyles, labels ...string) string {
	parts := make([]string, len(labels))
	for i, label := range labels {
		style := s.Button
		if i == 0 {
			style = s.ButtonActive
		}
		parts[i] = style.Render(label)
	}
	return strings.Join(parts, s.Body.Render(" "))
}
