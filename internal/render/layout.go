package render

// Card geometry, in CSS pixels.
const (
	outerRadius   = 14
	cardPadding   = 18
	cardRadius    = 18
	contentInset  = 20
	rowHeight     = 28
	barSpacing    = 28
	maxLeftWidth  = 420
	minLeftWidth  = 180
	leftShare     = 0.58
	minRightWidth = 140
	columnGap     = 36
	minDonut      = 80
	maxDonut      = 160
	minThickness  = 28
	maxThickness  = 48
	thicknessRate = 0.28
)

// Layout is the resolved geometry of the report for a given surface size.
type Layout struct {
	Width, Height float64
	Card          Rect

	LeftWidth  float64
	RightWidth float64

	TextX      float64
	TitleY     float64
	SummaryY   float64
	TableY     float64
	BreakdownY float64

	VisualsX       float64
	VisualsY       float64
	DonutX         float64
	DonutSize      float64
	DonutThickness float64

	BarX float64
	BarY float64
	BarW float64
}

// ComputeLayout places the card, the text column and the visuals column.
func ComputeLayout(w, h float64) Layout {
	l := Layout{Width: w, Height: h}
	l.Card = Rect{X: cardPadding, Y: cardPadding, W: w - 2*cardPadding, H: h - 2*cardPadding}

	l.LeftWidth = min(maxLeftWidth, max(minLeftWidth, l.Card.W*leftShare))
	l.RightWidth = max(minRightWidth, l.Card.W-l.LeftWidth-columnGap)

	l.TextX = l.Card.X + contentInset
	l.TitleY = l.Card.Y + contentInset
	l.SummaryY = l.Card.Y + 48
	l.TableY = l.SummaryY + 26
	l.BreakdownY = l.TableY + 4*rowHeight + 10

	l.VisualsX = l.Card.X + l.LeftWidth + contentInset
	l.VisualsY = l.Card.Y + 60
	l.DonutSize = min(maxDonut, max(minDonut, l.RightWidth-12))
	l.DonutThickness = max(minThickness, min(maxThickness, l.DonutSize*thicknessRate))
	l.DonutX = l.VisualsX + (l.RightWidth-l.DonutSize)/2

	l.BarX = l.VisualsX + 6
	l.BarY = l.VisualsY + l.DonutSize + 12
	l.BarW = l.RightWidth - 12
	return l
}
