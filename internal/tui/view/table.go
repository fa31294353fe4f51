package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// FactsTable holds the label/value rows of the report.
type FactsTable struct {
	Rows        [][]string
	LabelStyle  lipgloss.Style
	ValueStyle  lipgloss.Style
	BorderStyle lipgloss.Style
}

// RenderFactsTable renders the rows as a two-column bordered table.
func RenderFactsTable(ft FactsTable) string {
	if len(ft.Rows) == 0 {
		return ""
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderColumn(false).
		BorderRow(false).
		BorderHeader(false).
		BorderStyle(ft.BorderStyle).
		Rows(ft.Rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return ft.LabelStyle
			}
			return ft.ValueStyle
		})
	return t.Render()
}
