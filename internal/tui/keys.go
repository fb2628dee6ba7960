package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/daygrid/internal/planner"
	"github.com/javiermolinar/daygrid/internal/scheduler"
	"github.com/javiermolinar/daygrid/internal/summary"
	"github.com/javiermolinar/daygrid/internal/tui/commands"
)

const summaryDays = summary.DefaultHistoryDays

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	logKeyPress(msg, m.mode)

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.mode {
	case ModeModal:
		return m.handleModalKeys(msg)
	case ModeGoals:
		return m.handleGoalsKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys while the grid has focus.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Navigation
	case "j", "down":
		m.moveCursor(m.cursor + 1)
	case "k", "up":
		m.moveCursor(m.cursor - 1)
	case "g", "home":
		m.moveCursor(0)
	case "G", "end":
		m.moveCursor(m.totalSlots() - 1)
	case "t":
		if slot, ok := m.ctrl.View().NowSlot(); ok {
			m.moveCursor(slot)
		}
	case "n":
		gap, ok := scheduler.New(m.ctrl.Grid()).NextAvailable(m.ctrl.Blocks(), m.ctrl.Now())
		if !ok {
			cmd := m.setStatus("No free time left today", false)
			return m, cmd
		}
		m.moveCursor(gap.StartSlot)
		cmd := m.setStatus(fmt.Sprintf("Next free: %s - %s", gap.Start, gap.End), false)
		return m, cmd

	// Selection
	case " ":
		if m.ctrl.Selecting() {
			m.ctrl.ExtendSelection(m.cursor)
		} else {
			m.ctrl.BeginSelection(m.cursor)
		}
	case "enter":
		if !m.ctrl.Selecting() {
			m.ctrl.BeginSelection(m.cursor)
		}
		return m.openTitleModal(m.ctrl.CommitSelection())
	case "esc":
		m.ctrl.CancelSelection()
		m.dragging = false

	// Blocks
	case "x", "d", "delete":
		blocks := m.ctrl.View().BlocksAt(m.cursor)
		if len(blocks) == 0 {
			return m, nil
		}
		b := blocks[0]
		m.pending = deleteTarget{
			blockID: b.ID,
			label:   fmt.Sprintf("%s  %s - %s", b.Title, b.StartTime, b.EndTime),
		}
		m.openModal(ModalConfirmDelete)

	// Goals
	case "tab":
		m.ctrl.CancelSelection()
		m.dragging = false
		m.setMode(ModeGoals, "tab")
	case "a":
		m.ctrl.CancelSelection()
		return m.openGoalModal()

	// Views
	case "H":
		return m.openHistoryModal()
	case "y":
		return m, commands.CopyToClipboard(m.copyText, m.ctrl.Summary(), "day summary")
	case "ctrl+s":
		if m.ctrl.Save(ctx) {
			cmd := m.setStatus("Saved", false)
			return m, cmd
		}
		cmd := m.setStatus("Save failed, see log", true)
		return m, cmd
	}
	return m, nil
}

// moveCursor moves the grid cursor, dragging an active selection with it.
func (m *Model) moveCursor(slot int) {
	m.setCursor(slot)
	if m.ctrl.Selecting() {
		m.ctrl.ExtendSelection(m.cursor)
	}
}

// handleGoalsKeys handles keys while the goals panel has focus.
func (m Model) handleGoalsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()
	goals := m.ctrl.Goals()

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "j", "down":
		if m.goalCursor < len(goals)-1 {
			m.goalCursor++
		}
	case "k", "up":
		if m.goalCursor > 0 {
			m.goalCursor--
		}
	case " ", "enter":
		if m.goalCursor < len(goals) {
			m.ctrl.ToggleGoal(ctx, goals[m.goalCursor].ID)
		}
	case "d", "x", "delete":
		if m.goalCursor < len(goals) {
			g := goals[m.goalCursor]
			m.pending = deleteTarget{goalID: g.ID, label: g.Text}
			m.openModal(ModalConfirmDelete)
		}
	case "a":
		return m.openGoalModal()
	case "tab", "esc":
		m.setMode(ModeNormal, msg.String())
	case "H":
		return m.openHistoryModal()
	case "y":
		return m, commands.CopyToClipboard(m.copyText, m.ctrl.Summary(), "day summary")
	}
	return m, nil
}

// handleModalKeys routes keys to the open modal.
func (m Model) handleModalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modalType {
	case ModalBlockTitle:
		return m.handleBlockTitleKeys(msg)
	case ModalGoalInput:
		return m.handleGoalInputKeys(msg)
	case ModalConfirmDelete:
		return m.handleConfirmDeleteKeys(msg)
	case ModalHistory:
		return m.handleHistoryKeys(msg)
	}
	m.closeModal()
	return m, nil
}

func (m Model) handleBlockTitleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		p := m.titlePrompt
		title := m.input.Value()
		m.titlePrompt = nil // resolved below rather than cancelled on close
		m.closeModal()
		if p == nil {
			return m, nil
		}
		b, ok := p.Confirm(context.Background(), title)
		if !ok {
			return m, nil
		}
		if start, _, visible := m.ctrl.Grid().Span(b.StartTime, b.EndTime); visible {
			m.setCursor(start)
		}
		cmd := m.saveStatus(fmt.Sprintf("Added %s %s - %s", b.Title, b.StartTime, b.EndTime))
		return m, cmd
	case "esc":
		m.closeModal()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleGoalInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		text := m.input.Value()
		m.closeModal()
		g, err := m.ctrl.AddGoal(context.Background(), text)
		if err != nil {
			return m, nil
		}
		m.goalCursor = len(m.ctrl.Goals()) - 1
		cmd := m.saveStatus("Added goal " + g.Text)
		return m, cmd
	case "esc":
		m.closeModal()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleConfirmDeleteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		target := m.pending
		m.closeModal()
		ctx := context.Background()
		if target.blockID != "" {
			if m.ctrl.RemoveBlock(ctx, target.blockID) {
				cmd := m.saveStatus("Deleted " + target.label)
				return m, cmd
			}
			return m, nil
		}
		if m.ctrl.DeleteGoal(ctx, target.goalID) {
			m.goalCursor = min(m.goalCursor, max(len(m.ctrl.Goals())-1, 0))
			cmd := m.saveStatus("Deleted goal " + target.label)
			return m, cmd
		}
	case "n", "esc", "q":
		m.closeModal()
	}
	return m, nil
}

func (m Model) handleHistoryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "h", "left", "j", "down":
		if m.historyIndex < len(m.history)-1 {
			m.historyIndex++
		}
	case "l", "right", "k", "up":
		if m.historyIndex > 0 {
			m.historyIndex--
		}
	case "y":
		if m.historyIndex < len(m.history) {
			d := m.history[m.historyIndex]
			return m, commands.CopyToClipboard(m.copyText, summary.Text(d), "summary for "+d.Date.Format("Jan 2"))
		}
	case "esc", "q", "H":
		m.closeModal()
	}
	return m, nil
}

// saveStatus reports msg, or a warning when the last write failed.
func (m *Model) saveStatus(msg string) tea.Cmd {
	if !m.ctrl.LastSaveOK() {
		return m.setStatus(msg+" (not saved, see log)", true)
	}
	return m.setStatus(msg, false)
}

func (m *Model) setMode(mode Mode, reason string) {
	logModeChange(m.mode, mode, reason)
	m.mode = mode
}

func (m *Model) openModal(t ModalType) {
	if m.mode != ModeModal {
		m.returnMode = m.mode
	}
	m.setMode(ModeModal, "open modal")
	m.modalType = t
}

// closeModal closes the open modal. A title prompt still pending is cancelled.
func (m *Model) closeModal() {
	if m.titlePrompt != nil && !m.titlePrompt.Done() {
		m.titlePrompt.Cancel()
	}
	m.titlePrompt = nil
	m.pending = deleteTarget{}
	m.modalType = ModalNone
	m.input.Reset()
	m.input.Blur()
	m.setMode(m.returnMode, "close modal")
}

// openTitleModal asks for the title of a committed selection.
func (m Model) openTitleModal(p *planner.TitlePrompt) (tea.Model, tea.Cmd) {
	m.dragging = false
	if p == nil {
		return m, nil
	}
	m.openModal(ModalBlockTitle)
	m.titlePrompt = p
	m.input.Reset()
	m.input.Placeholder = "What are you doing?"
	m.input.Focus()
	return m, textinput.Blink
}

func (m Model) openGoalModal() (tea.Model, tea.Cmd) {
	m.openModal(ModalGoalInput)
	m.input.Reset()
	m.input.Placeholder = "Goal for today"
	m.input.Focus()
	return m, textinput.Blink
}

func (m Model) openHistoryModal() (tea.Model, tea.Cmd) {
	m.ctrl.CancelSelection()
	m.dragging = false
	m.openModal(ModalHistory)
	m.history = nil
	m.historyIndex = 0
	m.historyReady = false
	return m, commands.LoadHistory(m.ctrl.Snapshots(), m.ctrl.Date(), summaryDays)
}
