package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Values: bold white so numbers stand out
	colorValue = color.New(color.FgHiWhite, color.Bold)

	// Macro colors follow the chart: fat, carbs, protein
	colorMacros = [3]*color.Color{
		color.New(color.FgYellow),
		color.New(color.FgCyan),
		color.New(color.FgMagenta),
	}

	// Discrepancy: red when macros exceed the label, green otherwise
	colorOver  = color.New(color.FgRed, color.Bold)
	colorUnder = color.New(color.FgGreen, color.Bold)

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

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatValue formats a report value.
func formatValue(s string) string {
	return colorValue.Sprint(s)
}

// formatMacro formats a breakdown line in its macro's color.
func formatMacro(i int, s string) string {
	if i < 0 || i >= len(colorMacros) {
		return s
	}
	return colorMacros[i].Sprint(s)
}

// formatDelta formats the discrepancy line.
func formatDelta(s string, over bool) string {
	if over {
		return colorOver.Sprint(s)
	}
	return colorUnder.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
