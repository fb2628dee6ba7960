package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/daygrid/internal/dateutil"
	"github.com/javiermolinar/daygrid/internal/logger"
	"github.com/javiermolinar/daygrid/internal/tui/commands"
)

const statusTimeout = 3 * time.Second

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorVisible()
		return m, nil

	case commands.TickMsg:
		return m.handleTick(msg.Time)

	case commands.HistoryLoadedMsg:
		// A load started before a rollover is stale.
		if !msg.For.Equal(m.ctrl.Date()) {
			return m, nil
		}
		m.history = msg.Days
		m.historyReady = true
		m.historyIndex = min(m.historyIndex, max(len(m.history)-1, 0))
		return m, nil

	case commands.ErrMsg:
		logger.Error("tui command failed", "err", msg.Err)
		cmd := m.setStatus(msg.Err.Error(), true)
		return m, cmd

	case commands.StatusMsgCmd:
		cmd := m.setStatus(msg.Msg, false)
		return m, cmd

	case commands.ClearStatusMsg:
		if time.Since(m.statusTime) >= statusTimeout {
			m.statusMsg = ""
			m.statusIsErr = false
		}
		return m, nil
	}

	if m.mode == ModeModal && m.isInputModal() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleTick advances the controller clock and handles a date change.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	next := commands.Tick(m.config.TickInterval())
	if !m.ctrl.Tick(context.Background(), now) {
		return m, next
	}

	// Rollover dropped any selection and pending title prompt.
	m.dragging = false
	m.titlePrompt = nil
	m.goalCursor = 0
	if m.mode == ModeModal && m.modalType != ModalHistory {
		m.closeModal()
	}
	if slot, ok := m.ctrl.View().NowSlot(); ok {
		m.setCursor(slot)
	}

	cmds := []tea.Cmd{next, m.setStatus("New day: "+dateutil.FormatDate(m.ctrl.Date()), false)}
	if m.modalType == ModalHistory {
		m.historyReady = false
		m.historyIndex = 0
		cmds = append(cmds, commands.LoadHistory(m.ctrl.Snapshots(), m.ctrl.Date(), summaryDays))
	}
	return m, tea.Batch(cmds...)
}

// setStatus shows msg in the footer and schedules it to clear.
func (m *Model) setStatus(msg string, isErr bool) tea.Cmd {
	m.statusMsg = msg
	m.statusIsErr = isErr
	m.statusTime = time.Now()
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return commands.ClearStatusMsg{}
	})
}

func (m Model) isInputModal() bool {
	return m.modalType == ModalBlockTitle || m.modalType == ModalGoalInput
}
