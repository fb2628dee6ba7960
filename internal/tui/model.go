package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/daygrid/internal/config"
	"github.com/javiermolinar/daygrid/internal/day"
	"github.com/javiermolinar/daygrid/internal/logger"
	"github.com/javiermolinar/daygrid/internal/planner"
	"github.com/javiermolinar/daygrid/internal/summary"
	"github.com/javiermolinar/daygrid/internal/tui/commands"
	"github.com/javiermolinar/daygrid/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota // grid has focus
	ModeGoals              // goals panel has focus
	ModeModal
)

// ModalType identifies the type of modal.
type ModalType int

const (
	ModalNone        ModalType = iota
	ModalBlockTitle            // Title for a committed selection
	ModalGoalInput             // New goal text
	ModalConfirmDelete
	ModalHistory
)

// deleteTarget is what a ModalConfirmDelete will remove.
type deleteTarget struct {
	blockID day.ID
	goalID  day.ID
	label   string
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	ctrl   *planner.Controller
	config *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// State
	mode       Mode
	modalType  ModalType
	returnMode Mode // focus restored when a modal closes
	cursor     int  // grid slot under the keyboard cursor
	goalCursor int
	dragging   bool // a mouse drag owns the selection

	// Modal state
	input        textinput.Model
	titlePrompt  *planner.TitlePrompt
	pending      deleteTarget
	history      []summary.Day
	historyIndex int
	historyReady bool

	// Terminal dimensions and layout
	width        int
	height       int
	scrollOffset int

	// Messages
	statusMsg   string
	statusIsErr bool
	statusTime  time.Time

	copyText func(string) error
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write func(string) error) ModelOption {
	return func(m *Model) {
		m.copyText = write
	}
}

// WithTheme overrides the theme named in the config.
func WithTheme(t *theme.Theme) ModelOption {
	return func(m *Model) {
		m.theme = t
		m.styles = NewStyles(t)
	}
}

// New creates a new TUI model.
func New(ctrl *planner.Controller, cfg *config.Config, opts ...ModelOption) *Model {
	t, err := theme.LoadFrom(config.ThemesDir(), cfg.UI.Theme)
	if err != nil {
		logger.Warn("loading theme, using default", "theme", cfg.UI.Theme, "err", err)
		t, _ = theme.Load(theme.DefaultName)
	}

	m := &Model{
		ctrl:     ctrl,
		config:   cfg,
		theme:    t,
		styles:   NewStyles(t),
		mode:     ModeNormal,
		copyText: clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.input = m.newInput()
	if slot, ok := ctrl.View().NowSlot(); ok {
		m.cursor = slot
	}
	return m
}

func (m *Model) newInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 200
	ti.Width = modalWidth - 10
	ti.PlaceholderStyle = m.styles.ModalPlaceholderStyle
	ti.TextStyle = m.styles.ModalInputTextStyle
	ti.PromptStyle = m.styles.ModalInputTextStyle
	ti.Cursor.Style = m.styles.ModalInputCursorStyle
	ti.Cursor.TextStyle = m.styles.ModalInputTextStyle
	return ti
}

// Init starts the day-check ticker.
func (m Model) Init() tea.Cmd {
	return commands.Tick(m.config.TickInterval())
}

// Run starts the TUI and blocks until the user quits. The final state is
// saved on exit.
func Run(ctrl *planner.Controller, cfg *config.Config, opts ...ModelOption) error {
	model := New(ctrl, cfg, opts...)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	ctrl.Save(context.Background())
	return err
}
