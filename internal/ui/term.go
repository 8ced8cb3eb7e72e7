package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Current segment: bold cyan
	colorCurrent = color.New(color.FgCyan, color.Bold)

	// Errors: red
	colorError = color.New(color.FgRed)

	// Warnings: yellow
	colorWarn = color.New(color.FgYellow)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Positive results: green
	colorGood = color.New(color.FgGreen)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

func formatCurrent(s string) string {
	return colorCurrent.Sprint(s)
}

func formatError(s string) string {
	return colorError.Sprint(s)
}

func formatWarn(s string) string {
	return colorWarn.Sprint(s)
}

func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

func formatGood(s string) string {
	return colorGood.Sprint(s)
}

func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
