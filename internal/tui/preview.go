package tui

import (
	"image/color"
	"time"

	"github.com/muesli/termenv"

	"github.com/javiermolinar/caloriecalc/internal/render"
	"github.com/javiermolinar/caloriecalc/internal/tui/view"
)

// preview draws the report into a small surface sized to the terminal panel
// and keeps the half-block rendering of the latest frame.
type preview struct {
	surface *render.Surface
	sched   *frameScheduler
	anim    *render.Animator
	report  render.Report

	scale   float64
	bg      color.RGBA
	profile termenv.Profile

	cols, rows int
	cells      string
	err        error
}

func newPreview(scale float64, frame, duration time.Duration, bg [3]uint8, profile termenv.Profile) *preview {
	p := &preview{
		sched:   newFrameScheduler(frame),
		scale:   scale,
		bg:      color.RGBA{R: bg[0], G: bg[1], B: bg[2], A: 255},
		profile: profile,
	}
	p.surface, p.err = render.NewSurface(nil)
	p.anim = render.NewAnimator(p.sched, duration, p.draw)
	p.anim.OnFinish(func() { LogAnimation("finish", p.anim.Progress()) })
	return p
}

// dpr fits the report into cols×rows cells, each cell holding two pixels.
func (p *preview) dpr(cols, rows int) float64 {
	return min(p.scale, float64(cols)/render.MinWidth, float64(2*rows)/render.MinHeight)
}

// Resize matches the surface to the panel and restarts the animation.
func (p *preview) Resize(cols, rows int) {
	p.cols, p.rows = cols, rows
	if p.surface == nil || cols <= 0 || rows <= 0 {
		p.anim.Stop()
		p.cells = ""
		return
	}
	dpr := p.dpr(cols, rows)
	if err := p.surface.Resize(float64(cols)/dpr, float64(2*rows)/dpr, dpr); err != nil {
		p.err = err
		LogError("resize preview", err)
		return
	}
	LogResize(cols, rows, dpr)
	p.Restart()
}

// SetReport replaces the drawn report and restarts the animation.
func (p *preview) SetReport(r render.Report) {
	p.report = r
	p.Restart()
}

// Restart starts a new animation run when the panel is visible.
func (p *preview) Restart() {
	if p.cols <= 0 || p.rows <= 0 || p.surface == nil {
		return
	}
	LogAnimation("start", 0)
	p.anim.Start()
}

// Animating reports whether frames are still pending.
func (p *preview) Animating() bool {
	return p.anim.State() == render.StateAnimating
}

func (p *preview) draw(progress float64) {
	if err := p.surface.Render(p.report, progress); err != nil {
		p.err = err
		LogError("render preview", err)
	}
	p.cells = view.HalfBlocks(p.surface.Image(), p.bg, p.profile)
}

// Close releases the surface.
func (p *preview) Close() error {
	p.anim.Stop()
	if p.surface == nil {
		return nil
	}
	return p.surface.Close()
}
