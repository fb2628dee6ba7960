package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/daygrid/internal/logger"
)

// logKeyPress logs a key press at debug level.
func logKeyPress(msg tea.KeyMsg, mode Mode) {
	logger.Debug("key press", "key", msg.String(), "mode", modeString(mode))
}

// logModeChange logs a mode transition at debug level.
func logModeChange(from, to Mode, reason string) {
	if from == to {
		return
	}
	logger.Debug("mode change", "from", modeString(from), "to", modeString(to), "reason", reason)
}

func modeString(m Mode) string {
	switch m {
	case ModeNormal:
		return "Normal"
	case ModeGoals:
		return "Goals"
	case ModeModal:
		return "Modal"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}
