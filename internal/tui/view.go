package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/caloriecalc/internal/nutrition"
	"github.com/javiermolinar/caloriecalc/internal/tui/view"
)

// Layout constants in cells.
const (
	footerHeight   = 6
	leftWidth      = 44
	panelGap       = 2
	minPreviewCols = 24
	minPreviewRows = 8
)

// View renders the TUI using a boxed, parent-controlled layout.
func (m Model) View() string {
	return view.Render(m.viewState())
}

func (m Model) viewState() view.ViewState {
	showModal := m.mode == ModeModal && m.modalType != ModalNone
	modal := ""
	if showModal {
		modal = m.renderModal()
	}
	return view.ViewState{
		Width:        m.width,
		Height:       m.height,
		BaseContent:  m.renderAppContent(),
		ModalContent: modal,
		ShowModal:    showModal,
		ModalBg:      m.styles.ModalBgColor,
	}
}

// bodySize returns the area above the footer, inside the app padding.
func (m Model) bodySize() (w, h int) {
	return m.width - 4, m.height - 1 - footerHeight
}

// previewSize returns the preview cells, or zero when the panel does not fit.
func (m Model) previewSize() (cols, rows int) {
	w, h := m.bodySize()
	cols = w - leftWidth - panelGap - 2
	rows = h - 2
	if cols < minPreviewCols || rows < minPreviewRows {
		return 0, 0
	}
	return cols, rows
}

func (m Model) resizePreview() {
	cols, rows := m.previewSize()
	m.preview.Resize(cols, rows)
}

func (m Model) renderAppContent() string {
	w, h := m.bodySize()
	if w <= 0 || h <= 0 {
		return "Terminal too small"
	}

	body := m.renderForm()
	if cols, rows := m.previewSize(); cols > 0 && m.preview.cells != "" {
		left := view.PlaceBox(leftWidth, h, lipgloss.Top, body, m.styles.colorBg)
		panel := m.styles.PanelStyle.Render(view.PadLines(m.preview.cells, cols, rows, m.styles.colorBg))
		gap := view.PlaceBox(panelGap, h, lipgloss.Top, "", m.styles.colorBg)
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, gap, panel)
	}
	bodyBox := view.PlaceBox(w, h, lipgloss.Top, body, m.styles.colorBg)
	footerBox := view.RenderFooter(m.footerViewState(w))

	content := lipgloss.JoinVertical(lipgloss.Left, bodyBox, footerBox)
	app := m.styles.AppStyle.Render(content)
	return view.PadLines(app, m.width, m.height, m.styles.colorBg)
}

// renderForm renders the inputs, the preset row and the text report.
func (m Model) renderForm() string {
	var b strings.Builder
	b.WriteString(m.styles.TitleStyle.Render("Calorie Calculator"))
	b.WriteString("\n\n")

	for i, id := range nutrition.AllFields {
		label, box := m.styles.LabelStyle, m.styles.InputStyle
		if m.focus == i {
			label, box = m.styles.LabelFocusedStyle, m.styles.InputFocusedStyle
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, label.Render(id.Label()), box.Render(m.inputs[i].View())))
		b.WriteString("\n")
	}

	b.WriteString(m.renderPresets())
	b.WriteString("\n\n")
	b.WriteString(m.renderReport())
	return b.String()
}

func (m Model) renderPresets() string {
	label := m.styles.LabelStyle
	if m.focus == focusPresets {
		label = m.styles.LabelFocusedStyle
	}
	chips := make([]string, 0, len(m.presets))
	for i, p := range m.presets {
		style := m.styles.PresetStyle
		switch {
		case i == m.preset && m.focus == focusPresets:
			style = m.styles.PresetActiveStyle
		case i == m.preset:
			style = m.styles.PresetSelectedStyle
		}
		chips = append(chips, style.Render(p.Name))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, label.Render("Preset"), wrapChips(chips, leftWidth-labelWidth))
}

// wrapChips joins chips into lines no wider than width. A chip is never split.
func wrapChips(chips []string, width int) string {
	var lines []string
	line, lineW := "", 0
	for _, c := range chips {
		w := lipgloss.Width(c)
		if lineW > 0 && lineW+1+w > width {
			lines = append(lines, line)
			line, lineW = "", 0
		}
		if lineW > 0 {
			line += " "
			lineW++
		}
		line += c
		lineW += w
	}
	if lineW > 0 {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderReport() string {
	l := m.report().Labels()

	rows := make([][]string, 0, len(l.Rows))
	for _, r := range l.Rows {
		rows = append(rows, []string{r.Label, r.Value})
	}
	table := view.RenderFactsTable(view.FactsTable{
		Rows:        rows,
		LabelStyle:  m.styles.ReportLabelStyle,
		ValueStyle:  m.styles.ReportValueStyle,
		BorderStyle: m.styles.TableBorderStyle,
	})

	lines := []string{
		m.styles.SectionStyle.Render(l.Title) + m.styles.MutedStyle.Render("  "+l.Weight),
		table,
		m.styles.SectionStyle.Render(l.BreakdownTitle),
	}
	for _, s := range l.Breakdown {
		lines = append(lines, m.styles.MutedStyle.Render(s))
	}
	lines = append(lines,
		m.styles.SectionStyle.Render(l.MacroTotal),
		m.styles.DeltaStyle(l.DeltaOver).Render(l.Delta),
	)
	return strings.Join(lines, "\n")
}

func (m Model) footerViewState(width int) view.FooterViewState {
	status := ""
	if m.statusMsg != "" {
		style := m.styles.StatusStyle
		if m.statusErr {
			style = m.styles.ErrorStyle
		}
		status = style.Render(m.statusMsg)
	}
	return view.FooterViewState{
		Width:      width,
		Height:     footerHeight,
		StatusLine: status,
		HelpLine:   m.help.View(m.keys),
		Bg:         m.styles.colorBg,
	}
}
