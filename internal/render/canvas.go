// Package render draws the nutrition report onto a 2D pixel surface and
// drives its entrance animation.
//
// Drawing code works in CSS pixels. A Surface owns the backing pixels and
// scales every call by its device pixel ratio.
package render

// Color is a hex color, "#rrggbb" or "#rrggbbaa".
type Color string

// Align controls horizontal text placement relative to x.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Font selects a face. Bold covers the semibold weights of the card.
type Font struct {
	Size float64
	Bold bool
}

// Rect is an axis-aligned rectangle in CSS pixels.
type Rect struct {
	X, Y, W, H float64
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Stroke describes how an arc is stroked.
type Stroke struct {
	Color    Color
	Width    float64
	RoundCap bool
}

// Canvas is the immediate-mode drawing API used by the report.
// Text is positioned by the top edge of its line box.
type Canvas interface {
	Clear()
	FillRoundRect(r Rect, radius float64, c Color)
	FillRoundRectGradient(r Rect, radius float64, from, to Color)
	StrokeArc(cx, cy, radius, startAngle, endAngle float64, s Stroke)
	Text(s string, x, y float64, f Font, c Color, align Align)
}
