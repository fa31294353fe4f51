package render

import "github.com/javiermolinar/caloriecalc/internal/nutrition"

// Report is everything the card displays.
type Report struct {
	Fields  nutrition.Fields
	Metrics nutrition.Metrics
}

// NewReport derives the metrics for f.
func NewReport(f nutrition.Fields) Report {
	return Report{Fields: f, Metrics: nutrition.Derive(f)}
}

// Labels returns the formatted card text.
func (r Report) Labels() Labels {
	return BuildLabels(r.Fields, r.Metrics)
}

// Draw paints the full report onto c at the given animation progress.
// w and h are the canvas size in CSS pixels. A nil canvas draws nothing.
func Draw(c Canvas, w, h float64, r Report, progress float64) {
	if c == nil {
		return
	}
	progress = min(1, max(0, progress))
	l := ComputeLayout(w, h)
	labels := r.Labels()
	m := r.Metrics

	c.Clear()
	gradientRoundRect(c, Rect{W: w, H: h}, outerRadius, "#071431", "#04263b")
	roundRect(c, l.Card, cardRadius, "#ffffff05")

	c.Text(labels.Title, l.TextX, l.TitleY, Font{Size: 18, Bold: true}, "#e6f6fb", AlignLeft)
	c.Text(labels.Weight, l.TextX, l.SummaryY, Font{Size: 13}, "#e6f6fbf2", AlignLeft)

	for i, row := range labels.Rows {
		tableRow(c, l.TextX, l.TableY+float64(i)*rowHeight, row)
	}

	c.Text(labels.BreakdownTitle, l.TextX, l.BreakdownY, Font{Size: 12, Bold: true}, "#a9f0ff", AlignLeft)
	for i, line := range labels.Breakdown {
		c.Text(line, l.TextX, l.BreakdownY+float64(i+1)*20, Font{Size: 12}, "#d7fbff", AlignLeft)
	}

	deltaColor := Color("#d2ffd6")
	if labels.DeltaOver {
		deltaColor = "#ffbaba"
	}
	c.Text(labels.MacroTotal, l.TextX, l.BreakdownY+92, Font{Size: 12, Bold: true}, deltaColor, AlignLeft)
	c.Text(labels.Delta, l.TextX+180, l.BreakdownY+92, Font{Size: 12, Bold: true}, deltaColor, AlignLeft)

	pcts := [3]float64{m.FatPct, m.CarbPct, m.ProteinPct}
	drawDonut(c, l.DonutX, l.VisualsY, l.DonutSize, l.DonutThickness, pcts, m.MacroCalories, progress)

	centerX := l.VisualsX + l.RightWidth/2
	centerY := l.VisualsY + l.DonutSize/2
	c.Text(labels.DonutTotal, centerX, centerY-8, Font{Size: 14, Bold: true}, "#e6fbff", AlignCenter)
	c.Text(labels.DonutSplit, centerX, centerY+12, Font{Size: 11}, "#9feeff", AlignCenter)

	maxGrams := m.MaxGrams()
	for i, bar := range labels.Bars {
		drawBar(c, l.BarX, l.BarY+float64(i)*barSpacing, l.BarW, bar, maxGrams, progress, macroColors[i])
	}
}
