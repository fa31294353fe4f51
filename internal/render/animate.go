package render

import (
	"math"
	"time"
)

// DefaultDuration is the length of the entrance animation.
const DefaultDuration = 600 * time.Millisecond

// State is the animator state.
type State int

const (
	StateIdle State = iota
	StateAnimating
)

func (s State) String() string {
	if s == StateAnimating {
		return "animating"
	}
	return "idle"
}

// Ease is the cubic ease-out curve 1-(1-p)^3.
func Ease(p float64) float64 {
	p = min(1, max(0, p))
	return 1 - math.Pow(1-p, 3)
}

// Progress returns linear progress in [0, 1] after elapsed of d.
func Progress(elapsed, d time.Duration) float64 {
	if d <= 0 {
		return 1
	}
	return min(1, max(0, float64(elapsed)/float64(d)))
}

// Animator drives progress from 0 to 1 over a duration, calling draw with
// the eased progress once per frame. Only one run is active at a time.
type Animator struct {
	sched    Scheduler
	duration time.Duration
	draw     func(progress float64)
	onFinish func()

	state    State
	run      uint64
	frame    FrameID
	hasFrame bool
	started  bool
	start    time.Time
	progress float64
}

// NewAnimator returns an idle animator. A non-positive duration finishes on
// the first frame.
func NewAnimator(s Scheduler, d time.Duration, draw func(progress float64)) *Animator {
	return &Animator{sched: s, duration: d, draw: draw}
}

// OnFinish registers fn to run when a run reaches full progress.
func (a *Animator) OnFinish(fn func()) {
	a.onFinish = fn
}

// Start cancels the pending frame, if any, and begins a new run from 0.
func (a *Animator) Start() {
	a.cancel()
	a.run++
	a.state = StateAnimating
	a.started = false
	a.progress = 0
	a.schedule(a.run)
}

// Stop cancels the pending frame and leaves the last drawn progress in place.
func (a *Animator) Stop() {
	a.cancel()
	a.run++
	a.state = StateIdle
}

// State returns the current state.
func (a *Animator) State() State {
	return a.state
}

// Progress returns the eased progress of the last drawn frame.
func (a *Animator) Progress() float64 {
	return a.progress
}

// Duration returns the run length.
func (a *Animator) Duration() time.Duration {
	return a.duration
}

func (a *Animator) cancel() {
	if a.hasFrame {
		a.sched.CancelFrame(a.frame)
		a.hasFrame = false
	}
}

func (a *Animator) schedule(run uint64) {
	a.frame = a.sched.RequestFrame(func(now time.Time) { a.tick(run, now) })
	a.hasFrame = true
}

func (a *Animator) tick(run uint64, now time.Time) {
	if run != a.run {
		return
	}
	a.hasFrame = false
	if !a.started {
		a.start = now
		a.started = true
	}
	p := Progress(now.Sub(a.start), a.duration)
	a.progress = Ease(p)
	if a.draw != nil {
		a.draw(a.progress)
	}
	if p < 1 {
		a.schedule(run)
		return
	}
	a.state = StateIdle
	if a.onFinish != nil {
		a.onFinish()
	}
}
