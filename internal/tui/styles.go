// Package tui provides the terminal user interface for caloriecalc.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/caloriecalc/internal/tui/theme"
)

// Form geometry in cells.
const (
	labelWidth = 20
	inputWidth = 12
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	// Theme colors as lipgloss colors
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorWarning     lipgloss.Color
	colorOver        lipgloss.Color
	colorUnder       lipgloss.Color

	colorTextOnAccent    lipgloss.Color
	colorTextOnSelection lipgloss.Color

	TitleStyle   lipgloss.Style
	SectionStyle lipgloss.Style

	// Form
	LabelStyle        lipgloss.Style
	LabelFocusedStyle lipgloss.Style
	InputStyle        lipgloss.Style
	InputFocusedStyle lipgloss.Style
	InputTextStyle    lipgloss.Style
	PlaceholderStyle  lipgloss.Style
	CursorStyle       lipgloss.Style

	// Preset row
	PresetStyle         lipgloss.Style
	PresetActiveStyle   lipgloss.Style
	PresetSelectedStyle lipgloss.Style

	// Report
	ReportLabelStyle lipgloss.Style
	ReportValueStyle lipgloss.Style
	TableBorderStyle lipgloss.Style
	MutedStyle       lipgloss.Style
	OverStyle        lipgloss.Style
	UnderStyle       lipgloss.Style

	// Status message
	StatusStyle lipgloss.Style
	ErrorStyle  lipgloss.Style

	// Help text
	HelpKeyStyle  lipgloss.Style
	HelpDescStyle lipgloss.Style
	HelpSepStyle  lipgloss.Style

	// Modal styles
	ModalStyle             lipgloss.Style
	ModalBgColor           lipgloss.Color
	ModalTitleStyle        lipgloss.Style
	ModalBodyStyle         lipgloss.Style
	ModalFooterStyle       lipgloss.Style
	ModalButtonStyle       lipgloss.Style
	ModalButtonActiveStyle lipgloss.Style

	// Preview panel frame
	PanelStyle lipgloss.Style

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
	s.colorWarning = palette.Warning
	s.colorOver = palette.Over
	s.colorUnder = palette.Under
	s.colorTextOnAccent = palette.TextOnAccent
	s.colorTextOnSelection = palette.TextOnSelection

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.SectionStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorFg).
		Background(s.colorBg)

	s.LabelStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg).
		Width(labelWidth)

	s.LabelFocusedStyle = s.LabelStyle.
		Foreground(s.colorAccent).
		Bold(true)

	s.InputStyle = lipgloss.NewStyle().
		Background(s.colorBgHighlight).
		Foreground(s.colorFg).
		Padding(0, 1).
		Width(inputWidth + 3) // value, cursor cell and padding

	s.InputFocusedStyle = s.InputStyle.
		Background(s.colorBgSelection).
		Foreground(s.colorTextOnSelection)

	s.InputTextStyle = lipgloss.NewStyle().
		Foreground(s.colorFg)

	s.PlaceholderStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	s.CursorStyle = lipgloss.NewStyle().
		Foreground(s.colorTextOnAccent).
		Background(s.colorAccent)

	s.PresetStyle = lipgloss.NewStyle().
		Background(s.colorBgHighlight).
		Foreground(s.colorFgMuted).
		Padding(0, 1)

	// Preset under the cursor while the row is focused
	s.PresetActiveStyle = lipgloss.NewStyle().
		Background(s.colorAccent).
		Foreground(s.colorTextOnAccent).
		Bold(true).
		Padding(0, 1)

	s.PresetSelectedStyle = s.PresetStyle.
		Foreground(s.colorAccent).
		Underline(true)

	s.ReportLabelStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Padding(0, 1)

	s.ReportValueStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Bold(true).
		Align(lipgloss.Right).
		Padding(0, 1)

	s.TableBorderStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.MutedStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.OverStyle = lipgloss.NewStyle().
		Foreground(s.colorOver).
		Background(s.colorBg).
		Bold(true)

	s.UnderStyle = lipgloss.NewStyle().
		Foreground(s.colorUnder).
		Background(s.colorBg).
		Bold(true)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Background(s.colorBg).
		Bold(true)

	s.ErrorStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Background(s.colorBg).
		Bold(true)

	s.HelpKeyStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg).
		Bold(true)

	s.HelpDescStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.HelpSepStyle = lipgloss.NewStyle().
		Foreground(s.colorBgSelection).
		Background(s.colorBg)

	// Modal styles - use high-contrast theme colors
	modal := palette.Modal
	s.ModalBgColor = modal.Bg

	s.ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(modal.Border).
		Background(modal.Bg).
		Foreground(modal.Text).
		Padding(1, 2).
		Width(56).
		Align(lipgloss.Left)

	s.ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.Text).
		Background(modal.Bg)

	s.ModalBodyStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Background(modal.Bg)

	s.ModalFooterStyle = lipgloss.NewStyle().
		Background(modal.Bg)

	s.ModalButtonStyle = lipgloss.NewStyle().
		Background(modal.Bg).
		Foreground(modal.Muted).
		Padding(0, 2)

	s.ModalButtonActiveStyle = lipgloss.NewStyle().
		Background(modal.Highlight).
		Foreground(modal.Bg).
		Padding(0, 2).
		Underline(true)

	s.PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorBgSelection).
		BorderBackground(s.colorBg).
		Background(s.colorBg)

	// App container - padding provides consistent indentation for all content
	s.AppStyle = lipgloss.NewStyle().
		Background(s.colorBg).
		PaddingTop(1).
		PaddingLeft(2).
		PaddingRight(2)

	return s
}

// DeltaStyle returns the style for the calorie discrepancy line.
func (s *Styles) DeltaStyle(over bool) lipgloss.Style {
	if over {
		return s.OverStyle
	}
	return s.UnderStyle
}
