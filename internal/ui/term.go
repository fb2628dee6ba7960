package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the CLI.
var (
	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Blocks: bold cyan
	colorBlock = color.New(color.FgCyan, color.Bold)

	// Completed goals and totals: green
	colorDone = color.New(color.FgGreen)

	// Warnings: yellow
	colorWarn = color.New(color.FgYellow)

	// Muted: ids and secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

func formatBlock(s string) string {
	return colorBlock.Sprint(s)
}

func formatDone(s string) string {
	return colorDone.Sprint(s)
}

func formatWarn(s string) string {
	return colorWarn.Sprint(s)
}

func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
