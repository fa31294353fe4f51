package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEase(t *testing.T) {
	assert.Equal(t, 0.0, Ease(0))
	assert.Equal(t, 1.0, Ease(1))
	assert.InDelta(t, 0.875, Ease(0.5), 1e-12)
	assert.Equal(t, 1.0, Ease(3))
	assert.Equal(t, 0.0, Ease(-1))

	prev := 0.0
	for i := 1; i <= 100; i++ {
		e := Ease(float64(i) / 100)
		assert.Greater(t, e, prev)
		prev = e
	}
}

func TestProgress(t *testing.T) {
	d := 600 * time.Millisecond
	assert.Equal(t, 0.0, Progress(0, d))
	assert.InDelta(t, 0.5, Progress(300*time.Millisecond, d), 1e-12)
	assert.Equal(t, 1.0, Progress(time.Second, d))
	assert.Equal(t, 1.0, Progress(0, 0))
}

func TestAnimator_RunsToCompletion(t *testing.T) {
	sched := NewStepScheduler(time.Unix(0, 0))
	var drawn []float64
	finished := 0
	a := NewAnimator(sched, DefaultDuration, func(p float64) { drawn = append(drawn, p) })
	a.OnFinish(func() { finished++ })

	assert.Equal(t, StateIdle, a.State())
	a.Start()
	assert.Equal(t, StateAnimating, a.State())
	assert.Empty(t, drawn, "nothing is drawn before the first frame")

	sched.Advance(16 * time.Millisecond)
	require.Len(t, drawn, 1)
	assert.Equal(t, 0.0, drawn[0], "elapsed time starts at the first frame")

	sched.RunUntilIdle(100*time.Millisecond, 100)
	assert.Equal(t, StateIdle, a.State())
	assert.Equal(t, 1.0, a.Progress())
	assert.Equal(t, 1.0, drawn[len(drawn)-1])
	assert.Len(t, drawn, 7)
	assert.Equal(t, 1, finished)
	assert.Zero(t, sched.Pending(), "no frame is scheduled after completion")

	for i := 1; i < len(drawn); i++ {
		assert.Greater(t, drawn[i], drawn[i-1])
	}
}

func TestAnimator_RestartCancelsPendingFrame(t *testing.T) {
	sched := NewStepScheduler(time.Unix(0, 0))
	var drawn []float64
	a := NewAnimator(sched, DefaultDuration, func(p float64) { drawn = append(drawn, p) })

	a.Start()
	sched.Advance(0)
	sched.Advance(300 * time.Millisecond)
	require.Len(t, drawn, 2)
	require.Equal(t, 1, sched.Pending())

	a.Start()
	assert.Equal(t, 1, sched.Pending(), "only the new run has a frame queued")
	assert.Equal(t, 0.0, a.Progress())

	sched.Advance(10 * time.Millisecond)
	require.Len(t, drawn, 3)
	assert.Equal(t, 0.0, drawn[2], "the new run starts from zero")
}

func TestAnimator_StaleCallbackIsIgnored(t *testing.T) {
	sched := &manualScheduler{}
	calls := 0
	a := NewAnimator(sched, DefaultDuration, func(float64) { calls++ })

	a.Start()
	stale := sched.frames[0]
	a.Start()
	require.Len(t, sched.canceled, 1)

	stale(time.Unix(0, 0))
	assert.Zero(t, calls)

	sched.frames[1](time.Unix(0, 0))
	assert.Equal(t, 1, calls)
}

func TestAnimator_Stop(t *testing.T) {
	sched := NewStepScheduler(time.Unix(0, 0))
	a := NewAnimator(sched, DefaultDuration, nil)

	a.Start()
	sched.Advance(0)
	sched.Advance(300 * time.Millisecond)
	p := a.Progress()

	a.Stop()
	assert.Equal(t, StateIdle, a.State())
	assert.Zero(t, sched.Pending())
	assert.Equal(t, p, a.Progress(), "last progress stays visible")

	a.Stop()
	assert.Equal(t, StateIdle, a.State())
}

func TestAnimator_ZeroDuration(t *testing.T) {
	sched := NewStepScheduler(time.Unix(0, 0))
	var drawn []float64
	a := NewAnimator(sched, 0, func(p float64) { drawn = append(drawn, p) })

	a.Start()
	sched.Advance(0)
	assert.Equal(t, []float64{1}, drawn)
	assert.Equal(t, StateIdle, a.State())
}

func TestTimeline(t *testing.T) {
	frames := Timeline(DefaultDuration, 30)
	require.Len(t, frames, 20)
	assert.Equal(t, 0.0, frames[0])
	assert.Equal(t, 1.0, frames[len(frames)-1])

	assert.Equal(t, []float64{1}, Timeline(0, 30))
}

func TestTimeline_ClampsFPS(t *testing.T) {
	want := Timeline(DefaultDuration, MaxFPS)
	got := Timeline(DefaultDuration, 2_000_000_000)
	assert.Equal(t, want, got)
	assert.Equal(t, 1.0, got[len(got)-1])
}

// manualScheduler hands out callbacks without running them.
type manualScheduler struct {
	frames   []func(time.Time)
	canceled []FrameID
}

func (m *manualScheduler) RequestFrame(fn func(now time.Time)) FrameID {
	m.frames = append(m.frames, fn)
	return FrameID(len(m.frames))
}

func (m *manualScheduler) CancelFrame(id FrameID) {
	m.canceled = append(m.canceled, id)
}
