package render

import "math"

// DefaultRadius is the corner radius used when none is given.
const DefaultRadius = 5

// Donut and bar geometry.
const (
	arcGap        = 0.02 // radians trimmed from both ends of each slice
	ringInset     = 6
	barHeight     = 16
	barLabelWidth = 50
	barValueWidth = 50
	barInset      = 2
	barMinFill    = 2
)

// Macro colors, in slice order.
var macroColors = [3]Color{"#ff9f1c", "#06b6d4", "#7c3aed"}

// cornerRadius resolves the radius for a rounded rectangle.
// Zero means DefaultRadius; the result never exceeds half the shorter side.
func cornerRadius(r Rect, radius float64) float64 {
	if radius <= 0 {
		radius = DefaultRadius
	}
	return min(radius, r.W/2, r.H/2)
}

func roundRect(c Canvas, r Rect, radius float64, col Color) {
	if r.Empty() {
		return
	}
	c.FillRoundRect(r, cornerRadius(r, radius), col)
}

func gradientRoundRect(c Canvas, r Rect, radius float64, from, to Color) {
	if r.Empty() {
		return
	}
	c.FillRoundRectGradient(r, cornerRadius(r, radius), from, to)
}

func tableRow(c Canvas, x, y float64, row Row) {
	c.Text(row.Label, x, y+6, Font{Size: 13, Bold: true}, "#d7fbfff2", AlignLeft)
	c.Text(row.Value, x+120, y+6, Font{Size: 13}, "#aae6f5fa", AlignLeft)
}

// Arc is one donut slice, angles in radians.
type Arc struct {
	Start, End float64
	Color      Color
}

// DonutArcs returns the slices to stroke for the given percentages.
// Every slice starts where the previous one would end at full progress,
// so all slices grow together. Slices with no visible sweep are omitted.
func DonutArcs(pcts [3]float64, total, progress float64) []Arc {
	if total <= 0 {
		return nil
	}
	arcs := make([]Arc, 0, len(pcts))
	start := -math.Pi / 2
	for i, pct := range pcts {
		share := max(0, pct/100)
		end := start + share*2*math.Pi*progress
		a := Arc{Start: start + arcGap, End: end - arcGap, Color: macroColors[i]}
		if a.End > a.Start {
			arcs = append(arcs, a)
		}
		start += share * 2 * math.Pi
	}
	return arcs
}

func drawDonut(c Canvas, x, y, size, thickness float64, pcts [3]float64, total, progress float64) {
	cx := x + size/2
	cy := y + size/2
	radius := size/2 - ringInset

	c.StrokeArc(cx, cy, radius, 0, 2*math.Pi, Stroke{Color: "#ffffff0f", Width: thickness})

	for _, a := range DonutArcs(pcts, total, progress) {
		c.StrokeArc(cx, cy, radius, a.Start, a.End, Stroke{
			Color:    a.Color,
			Width:    thickness - ringInset,
			RoundCap: true,
		})
	}
}

// BarTrackWidth returns the width of a bar's track for a bar of total width w.
func BarTrackWidth(w float64) float64 {
	return max(0, w-barLabelWidth-barValueWidth)
}

// BarFill returns the drawn fill length inside a track of width trackW.
// The raw length value/maxValue*trackW*progress is reduced by the inset on
// both sides, clamped to the inner track and floored at barMinFill.
func BarFill(value, maxValue, trackW, progress float64) float64 {
	inner := trackW - 2*barInset
	if inner <= 0 {
		return 0
	}
	raw := 0.0
	if maxValue > 0 {
		raw = value / maxValue * trackW * progress
	}
	return min(max(raw-2*barInset, barMinFill), inner)
}

func drawBar(c Canvas, x, y, w float64, bar BarLabel, maxValue, progress float64, col Color) {
	c.Text(bar.Label, x, y+1, Font{Size: 12, Bold: true}, "#c7f7ff", AlignLeft)

	trackX := x + barLabelWidth
	trackW := BarTrackWidth(w)
	roundRect(c, Rect{X: trackX, Y: y + 2, W: trackW, H: barHeight}, 8, "#ffffff0a")

	fill := BarFill(bar.Grams, maxValue, trackW, progress)
	roundRect(c, Rect{X: trackX + barInset, Y: y + 2 + barInset, W: fill, H: barHeight - 2*barInset}, 6, col)

	c.Text(bar.Value, trackX+trackW+4, y+2, Font{Size: 11}, "#ffffffe6", AlignLeft)
}
