package view

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestFlatten(t *testing.T) {
	mocha := color.RGBA{R: 30, G: 30, B: 46, A: 255}
	black := color.RGBA{A: 255}
	tests := []struct {
		name  string
		in    color.RGBA
		under color.RGBA
		want  color.RGBA
	}{
		{"transparent shows background", color.RGBA{}, mocha, mocha},
		{"opaque pixel is unchanged", color.RGBA{R: 255, G: 159, B: 28, A: 255}, mocha, color.RGBA{R: 255, G: 159, B: 28, A: 255}},
		{"half white over black", color.RGBA{R: 128, G: 128, B: 128, A: 128}, black, color.RGBA{R: 128, G: 128, B: 128, A: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Flatten(tt.in, tt.under); got != tt.want {
				t.Errorf("Flatten(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHalfBlocks(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 3))
	out := HalfBlocks(img, color.RGBA{A: 255}, termenv.Ascii)

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2 for 3 pixel rows", len(lines))
	}
	for i, line := range lines {
		if got := strings.Count(line, upperHalf); got != 3 {
			t.Errorf("line %d has %d cells, want 3", i, got)
		}
	}

	if HalfBlocks(nil, color.RGBA{}, termenv.Ascii) != "" {
		t.Error("nil image should render nothing")
	}
}

func TestPadLines(t *testing.T) {
	out := PadLines("ab\ncdefgh\n1\n2\n3", 4, 3, "")
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 4 {
			t.Errorf("line %d width = %d, want 4", i, w)
		}
	}
}

func TestRender(t *testing.T) {
	if got := Render(ViewState{}); got != "Loading..." {
		t.Errorf("Render(empty) = %q", got)
	}

	state := ViewState{Width: 10, Height: 3, BaseContent: "base"}
	if got := Render(state); got != "base" {
		t.Errorf("Render() = %q, want base content", got)
	}

	state.ShowModal = true
	state.ModalContent = "XX"
	got := Render(state)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("overlay has %d lines, want 3", len(lines))
	}
	if !strings.Contains(lines[1], "XX") {
		t.Errorf("modal not centered: %q", got)
	}
}

func TestRenderFactsTable(t *testing.T) {
	out := RenderFactsTable(FactsTable{Rows: [][]string{{"Calories", "247.5 kcal"}, {"Fat", "5.4 g"}}})
	if !strings.Contains(out, "247.5 kcal") || !strings.Contains(out, "Fat") {
		t.Errorf("table missing cells:\n%s", out)
	}
	if RenderFactsTable(FactsTable{}) != "" {
		t.Error("empty table should render nothing")
	}
}
