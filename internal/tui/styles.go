// Package tui provides the terminal user interface for daygrid.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/daygrid/internal/tui/theme"
	"github.com/javiermolinar/daygrid/internal/tui/view"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorCurrent     lipgloss.Color
	colorWarning     lipgloss.Color

	// Header
	TitleStyle      lipgloss.Style
	HeaderDateStyle lipgloss.Style
	HeaderMetaStyle lipgloss.Style
	HeaderWarnStyle lipgloss.Style

	// Hour labels and the marker column
	LabelStyle        lipgloss.Style
	LabelNowStyle     lipgloss.Style
	MarkerStyle       lipgloss.Style
	MarkerNowStyle    lipgloss.Style
	MarkerCursorStyle lipgloss.Style

	// Slot cells
	EmptyCellStyle    lipgloss.Style
	HalfHourCellStyle lipgloss.Style // empty :30 rows, slightly set apart
	CursorCellStyle   lipgloss.Style
	SelectionStyle    lipgloss.Style
	BlockStyle        lipgloss.Style
	BlockAltStyle     lipgloss.Style // alternate shade for adjacent blocks
	BlockPastStyle    lipgloss.Style
	BlockPastAltStyle lipgloss.Style
	BlockCursorStyle  lipgloss.Style
	BlockTimeStyle    lipgloss.Style

	// Goals panel
	GoalsTitleStyle        lipgloss.Style
	GoalsTitleFocusedStyle lipgloss.Style
	GoalStyle              lipgloss.Style
	GoalDoneStyle          lipgloss.Style
	GoalSelectedStyle      lipgloss.Style
	GoalsMutedStyle        lipgloss.Style

	// Footer
	StatusStyle lipgloss.Style
	ErrorStyle  lipgloss.Style
	HelpStyle   lipgloss.Style

	// Modal styles
	ModalStyle             lipgloss.Style
	ModalBgColor           lipgloss.Color
	ModalHeaderStyle       lipgloss.Style
	ModalFooterStyle       lipgloss.Style
	ModalTitleStyle        lipgloss.Style
	ModalBodyStyle         lipgloss.Style
	ModalMetaStyle         lipgloss.Style
	ModalWarnStyle         lipgloss.Style
	ModalInputStyle        lipgloss.Style
	ModalInputTextStyle    lipgloss.Style
	ModalInputCursorStyle  lipgloss.Style
	ModalPlaceholderStyle  lipgloss.Style
	ModalButtonStyle       lipgloss.Style
	ModalButtonActiveStyle lipgloss.Style
	ModalHintStyle         lipgloss.Style

	// App container
	AppStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)

	s.colorBg = palette.Bg
	s.colorBgHighlight = palette.BgHighlight
	s.colorBgSelection = palette.BgSelection
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorAccent = palette.Accent
	s.colorCurrent = palette.Current
	s.colorWarning = palette.Warning

	base := lipgloss.NewStyle().Background(s.colorBg)

	s.TitleStyle = base.Bold(true).Foreground(s.colorAccent)
	s.HeaderDateStyle = base.Foreground(s.colorFg)
	s.HeaderMetaStyle = base.Foreground(s.colorFgMuted)
	s.HeaderWarnStyle = base.Foreground(s.colorWarning).Bold(true)

	s.LabelStyle = base.Foreground(s.colorFgMuted)
	s.LabelNowStyle = base.Foreground(s.colorCurrent).Bold(true)
	s.MarkerStyle = base
	s.MarkerNowStyle = base.Foreground(s.colorCurrent).Bold(true)
	s.MarkerCursorStyle = base.Foreground(s.colorAccent).Bold(true)

	s.EmptyCellStyle = base.Foreground(s.colorFgMuted)
	s.HalfHourCellStyle = lipgloss.NewStyle().
		Background(s.colorBgHighlight).
		Foreground(s.colorFgMuted)
	s.CursorCellStyle = lipgloss.NewStyle().
		Background(s.colorBgSelection).
		Foreground(s.colorAccent)

	// Drag selection stands out from blocks and the cursor.
	s.SelectionStyle = lipgloss.NewStyle().
		Background(s.colorAccent).
		Foreground(palette.TextOnAccent).
		Bold(true)

	s.BlockStyle = lipgloss.NewStyle().
		Background(palette.BlockBg).
		Foreground(s.colorFg).
		Bold(true)
	s.BlockAltStyle = s.BlockStyle.Background(palette.BlockBgAlt)
	s.BlockPastStyle = lipgloss.NewStyle().
		Background(palette.BlockPastBg).
		Foreground(s.colorFg)
	s.BlockPastAltStyle = s.BlockPastStyle.Background(palette.BlockPastBgAlt)
	s.BlockCursorStyle = lipgloss.NewStyle().
		Background(s.colorWarning).
		Foreground(palette.TextOnWarning).
		Bold(true)
	s.BlockTimeStyle = lipgloss.NewStyle().
		Background(palette.BlockBg).
		Foreground(s.colorFgMuted)

	s.GoalsTitleStyle = base.Foreground(s.colorFg).Bold(true)
	s.GoalsTitleFocusedStyle = base.Foreground(s.colorAccent).Bold(true).Underline(true)
	s.GoalStyle = base.Foreground(s.colorFg)
	s.GoalDoneStyle = base.Foreground(palette.Goal).Strikethrough(true)
	s.GoalSelectedStyle = lipgloss.NewStyle().
		Background(s.colorBgSelection).
		Foreground(s.colorFg).
		Bold(true)
	s.GoalsMutedStyle = base.Foreground(s.colorFgMuted).Italic(true)

	s.StatusStyle = base.Foreground(s.colorAccent).Bold(true)
	s.ErrorStyle = base.Foreground(s.colorWarning).Bold(true)
	s.HelpStyle = base.Foreground(s.colorFgMuted)

	modal := palette.Modal
	modalBg := modal.Bg
	s.ModalBgColor = modalBg

	s.ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(modal.Border).
		Background(modalBg).
		Foreground(modal.Text).
		Padding(1, 1).
		Width(modalWidth).
		Align(lipgloss.Left)

	s.ModalHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.Text).
		Background(modalBg).
		Padding(0, 1)

	s.ModalFooterStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(modalBg)

	s.ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.Text).
		Background(modalBg)

	s.ModalBodyStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Background(modalBg)

	s.ModalMetaStyle = lipgloss.NewStyle().
		Foreground(modal.Muted).
		Background(modalBg)

	s.ModalWarnStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Background(modalBg).
		Bold(true)

	s.ModalInputStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(modal.Highlight).
		Background(modalBg).
		Foreground(modal.Text).
		Padding(0, 1).
		Width(modalWidth - 6)

	s.ModalInputTextStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Background(modalBg)

	s.ModalInputCursorStyle = lipgloss.NewStyle().
		Foreground(modal.ReverseText).
		Background(modal.Highlight)

	s.ModalPlaceholderStyle = lipgloss.NewStyle().
		Foreground(modal.Muted).
		Background(modalBg)

	s.ModalButtonStyle = lipgloss.NewStyle().
		Background(s.colorBgSelection).
		Foreground(modal.Text).
		Padding(0, 2)

	s.ModalButtonActiveStyle = lipgloss.NewStyle().
		Background(modal.Highlight).
		Foreground(modal.ReverseText).
		Padding(0, 2).
		Underline(true)

	s.ModalHintStyle = lipgloss.NewStyle().
		Foreground(modal.Muted).
		Background(modalBg)

	s.AppStyle = lipgloss.NewStyle().
		Background(s.colorBg).
		PaddingLeft(1).
		PaddingRight(1)

	return s
}

// modalStyles returns the subset a view.Modal is drawn with.
func (s *Styles) modalStyles() view.ModalStyles {
	return view.ModalStyles{
		Frame:        s.ModalStyle,
		Header:       s.ModalHeaderStyle,
		Title:        s.ModalTitleStyle,
		Meta:         s.ModalMetaStyle,
		Body:         s.ModalBodyStyle,
		Warn:         s.ModalWarnStyle,
		Footer:       s.ModalFooterStyle,
		Button:       s.ModalButtonStyle,
		ButtonActive: s.ModalButtonActiveStyle,
	}
}
