package view

import "github.com/charmbracelet/lipgloss"

// FooterViewState holds the strings needed to render the footer section.
type FooterViewState struct {
	Width      int
	Height     int
	StatusLine string
	HelpLine   string
	Bg         lipgloss.Color
}

// RenderFooter renders the status line above the help line, bottom aligned.
func RenderFooter(state FooterViewState) string {
	if state.Height <= 0 {
		return ""
	}
	s := state.HelpLine
	if state.StatusLine != "" {
		s = state.StatusLine + "\n" + s
	}
	return PlaceBox(state.Width, state.Height, lipgloss.Bottom, s, state.Bg)
}
