package render

import "github.com/gogpu/gg"

// minTextPx is the smallest scaled font size that is still drawn.
const minTextPx = 4

// ggCanvas adapts a gg.Context to Canvas. Coordinates are multiplied by
// scale here instead of through the context matrix, because gg transforms
// neither arc radii nor text.
type ggCanvas struct {
	ctx   *gg.Context
	fonts *Fonts
	scale float64
	err   error
}

func (g *ggCanvas) keep(err error) {
	if g.err == nil && err != nil {
		g.err = err
	}
}

func (g *ggCanvas) Clear() {
	g.ctx.Clear()
}

func (g *ggCanvas) FillRoundRect(r Rect, radius float64, c Color) {
	s := g.scale
	g.ctx.ClearPath()
	g.ctx.SetFillBrush(gg.Solid(gg.Hex(string(c))))
	g.ctx.DrawRoundedRectangle(r.X*s, r.Y*s, r.W*s, r.H*s, radius*s)
	g.keep(g.ctx.Fill())
}

func (g *ggCanvas) FillRoundRectGradient(r Rect, radius float64, from, to Color) {
	s := g.scale
	x0, y0 := r.X*s, r.Y*s
	x1, y1 := (r.X+r.W)*s, (r.Y+r.H)*s
	g.ctx.ClearPath()
	g.ctx.SetFillBrush(gg.LinearGradient(gg.Hex(string(from)), gg.Hex(string(to)), x0, y0, x1, y1))
	g.ctx.DrawRoundedRectangle(x0, y0, r.W*s, r.H*s, radius*s)
	g.keep(g.ctx.Fill())
}

func (g *ggCanvas) StrokeArc(cx, cy, radius, startAngle, endAngle float64, st Stroke) {
	// gg wraps a reversed arc into a full turn.
	if endAngle <= startAngle || radius <= 0 || st.Width <= 0 {
		return
	}
	s := g.scale
	g.ctx.ClearPath()
	g.ctx.SetStrokeBrush(gg.Solid(gg.Hex(string(st.Color))))
	g.ctx.SetLineWidth(st.Width * s)
	if st.RoundCap {
		g.ctx.SetLineCap(gg.LineCapRound)
	} else {
		g.ctx.SetLineCap(gg.LineCapButt)
	}
	g.ctx.DrawArc(cx*s, cy*s, radius*s, startAngle, endAngle)
	g.keep(g.ctx.Stroke())
}

func (g *ggCanvas) Text(str string, x, y float64, f Font, c Color, align Align) {
	size := f.Size * g.scale
	if str == "" || size < minTextPx || g.fonts == nil {
		return
	}
	face := g.fonts.Face(f.Bold, size)
	px := x * g.scale
	if align == AlignCenter {
		px -= face.Advance(str) / 2
	}
	g.ctx.SetFillBrush(gg.Solid(gg.Hex(string(c))))
	g.ctx.SetFont(face)
	g.ctx.DrawString(str, px, y*g.scale+face.Metrics().Ascent)
}
