package render

import (
	"fmt"
	"math"

	"github.com/javiermolinar/caloriecalc/internal/nutrition"
)

// Row is one label/value line of the facts table.
type Row struct {
	Label string
	Value string
}

// BarLabel describes one macro bar.
type BarLabel struct {
	Label string
	Grams float64
	Value string
}

// Labels holds every string shown on the report card.
type Labels struct {
	Title          string
	Weight         string
	Rows           [4]Row
	BreakdownTitle string
	Breakdown      [3]string
	MacroTotal     string
	Delta          string
	DeltaOver      bool // macro-derived calories exceed the declared ones
	DonutTotal     string
	DonutSplit     string
	Bars           [3]BarLabel
}

// fixed rounds v to the given number of decimals with halves rounded away
// from zero. fmt alone rounds exact halves to even.
func fixed(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(v*p) / p
}

// BuildLabels formats the card text for the given inputs and metrics.
func BuildLabels(f nutrition.Fields, m nutrition.Metrics) Labels {
	return Labels{
		Title:  "Nutrition Facts",
		Weight: fmt.Sprintf("Weight: %.0f g", fixed(f.Weight, 0)),
		Rows: [4]Row{
			{Label: "Calories", Value: fmt.Sprintf("%.1f kcal", fixed(m.DeclaredCalories, 1))},
			{Label: "Fat", Value: fmt.Sprintf("%.1f g", fixed(m.FatGrams, 1))},
			{Label: "Carbs", Value: fmt.Sprintf("%.1f g", fixed(m.CarbGrams, 1))},
			{Label: "Protein", Value: fmt.Sprintf("%.1f g", fixed(m.ProteinGrams, 1))},
		},
		BreakdownTitle: "Calories from macros",
		Breakdown: [3]string{
			fmt.Sprintf("Fat: %.1f kcal (%.1f%%)", fixed(m.FatCalories, 1), fixed(m.FatPct, 1)),
			fmt.Sprintf("Carbs: %.1f kcal (%.1f%%)", fixed(m.CarbCalories, 1), fixed(m.CarbPct, 1)),
			fmt.Sprintf("Protein: %.1f kcal (%.1f%%)", fixed(m.ProteinCalories, 1), fixed(m.ProteinPct, 1)),
		},
		MacroTotal: fmt.Sprintf("Macro total: %.1f kcal", fixed(m.MacroCalories, 1)),
		Delta:      fmt.Sprintf("Δ: %+.1f kcal (%+.1f%%)", fixed(m.Discrepancy, 1), fixed(m.DiscrepancyPct, 1)),
		DeltaOver:  m.MacrosExceedDeclared(),
		DonutTotal: fmt.Sprintf("%.0f kcal", fixed(m.MacroCalories, 0)),
		DonutSplit: fmt.Sprintf("%.0f%% / %.0f%% / %.0f%%", fixed(m.FatPct, 0), fixed(m.CarbPct, 0), fixed(m.ProteinPct, 0)),
		Bars: [3]BarLabel{
			{Label: "Fat", Grams: m.FatGrams, Value: fmt.Sprintf("%.1fg", fixed(m.FatGrams, 1))},
			{Label: "Carbs", Grams: m.CarbGrams, Value: fmt.Sprintf("%.1fg", fixed(m.CarbGrams, 1))},
			{Label: "Protein", Grams: m.ProteinGrams, Value: fmt.Sprintf("%.1fg", fixed(m.ProteinGrams, 1))},
		},
	}
}

// Lines renders the labels as plain text, one line per entry.
func (l Labels) Lines() []string {
	lines := []string{l.Title, l.Weight, ""}
	for _, r := range l.Rows {
		lines = append(lines, fmt.Sprintf("%-10s %s", r.Label, r.Value))
	}
	lines = append(lines, "", l.BreakdownTitle)
	lines = append(lines, l.Breakdown[:]...)
	lines = append(lines, "", l.MacroTotal, l.Delta)
	return lines
}
