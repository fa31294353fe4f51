package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PlaceBox renders content in a w×h box filled with bg.
func PlaceBox(w, h int, vAlign lipgloss.Position, content string, bg lipgloss.Color) string {
	placed := lipgloss.Place(w, h, lipgloss.Left, vAlign, content, lipgloss.WithWhitespaceBackground(bg))
	return PadLines(placed, w, h, bg)
}

// PadLines pads or cuts content to exactly width×height cells.
func PadLines(content string, width, height int, bg lipgloss.Color) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := strings.Split(content, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	pad := lipgloss.NewStyle().Background(bg)
	for i, line := range lines {
		w := lipgloss.Width(line)
		switch {
		case w > width:
			lines[i] = ansi.Truncate(line, width, "")
		case w < width:
			lines[i] = line + pad.Render(strings.Repeat(" ", width-w))
		}
	}
	return strings.Join(lines, "\n")
}

// RenderModalOverlay centers modal over base, which is padded to width×height.
func RenderModalOverlay(base, modal string, width, height int, modalBg lipgloss.Color) string {
	modalLines := strings.Split(modal, "\n")
	modalW := 0
	for _, line := range modalLines {
		modalW = max(modalW, lipgloss.Width(line))
	}
	if modalW == 0 {
		return base
	}
	modalW = min(modalW, width)
	modalH := min(len(modalLines), height)

	top := max(0, (height-modalH)/2)
	left := max(0, (width-modalW)/2)

	baseLines := strings.Split(PadLines(base, width, height, ""), "\n")
	bgSeq := backgroundSeq(modalBg)
	for i := 0; i < modalH; i++ {
		line := modalLines[i]
		if w := lipgloss.Width(line); w > modalW {
			line = ansi.Cut(line, 0, modalW)
		} else if w < modalW {
			line += lipgloss.NewStyle().Background(modalBg).Render(strings.Repeat(" ", modalW-w))
		}
		if bgSeq != "" {
			line = strings.ReplaceAll(line, ansi.ResetStyle, ansi.ResetStyle+bgSeq)
		}
		row := top + i
		baseLine := baseLines[row]
		baseLines[row] = ansi.Cut(baseLine, 0, left) + line + ansi.ResetStyle + ansi.Cut(baseLine, left+modalW, width)
	}
	return strings.Join(baseLines, "\n")
}

func backgroundSeq(c lipgloss.Color) string {
	if c == "" {
		return ""
	}
	return ansi.Style{}.BackgroundColor(ansi.HexColor(string(c))).String()
}
