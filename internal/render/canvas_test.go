package render

// op is one recorded Canvas call.
type op struct {
	kind   string
	rect   Rect
	radius float64
	color  Color
	to     Color
	cx, cy float64
	start  float64
	end    float64
	stroke Stroke
	text   string
	x, y   float64
	font   Font
	align  Align
}

// recordingCanvas records every call for inspection.
type recordingCanvas struct {
	ops []op
}

func (r *recordingCanvas) Clear() {
	r.ops = append(r.ops, op{kind: "clear"})
}

func (r *recordingCanvas) FillRoundRect(rect Rect, radius float64, c Color) {
	r.ops = append(r.ops, op{kind: "rect", rect: rect, radius: radius, color: c})
}

func (r *recordingCanvas) FillRoundRectGradient(rect Rect, radius float64, from, to Color) {
	r.ops = append(r.ops, op{kind: "gradient", rect: rect, radius: radius, color: from, to: to})
}

func (r *recordingCanvas) StrokeArc(cx, cy, radius, start, end float64, s Stroke) {
	r.ops = append(r.ops, op{kind: "arc", cx: cx, cy: cy, radius: radius, start: start, end: end, stroke: s, color: s.Color})
}

func (r *recordingCanvas) Text(s string, x, y float64, f Font, c Color, align Align) {
	r.ops = append(r.ops, op{kind: "text", text: s, x: x, y: y, font: f, color: c, align: align})
}

func (r *recordingCanvas) filter(kind string) []op {
	var out []op
	for _, o := range r.ops {
		if o.kind == kind {
			out = append(out, o)
		}
	}
	return out
}

func (r *recordingCanvas) findText(s string) (op, bool) {
	for _, o := range r.ops {
		if o.kind == "text" && o.text == s {
			return o, true
		}
	}
	return op{}, false
}
