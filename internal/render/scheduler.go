package render

import (
	"slices"
	"time"
)

// FrameID identifies a requested frame callback.
type FrameID uint64

// Scheduler delivers frame callbacks, one per request.
type Scheduler interface {
	RequestFrame(fn func(now time.Time)) FrameID
	CancelFrame(id FrameID)
}

type pendingFrame struct {
	id FrameID
	fn func(now time.Time)
}

// StepScheduler is a Scheduler driven by a virtual clock.
// Frames run only when the clock is advanced.
type StepScheduler struct {
	now      time.Time
	lastID   FrameID
	pending  []pendingFrame
	running  bool
	canceled map[FrameID]bool
}

// NewStepScheduler returns a scheduler whose clock starts at start.
func NewStepScheduler(start time.Time) *StepScheduler {
	return &StepScheduler{now: start, canceled: make(map[FrameID]bool)}
}

// Now returns the virtual time.
func (s *StepScheduler) Now() time.Time {
	return s.now
}

// RequestFrame queues fn for the next Advance.
func (s *StepScheduler) RequestFrame(fn func(now time.Time)) FrameID {
	s.lastID++
	s.pending = append(s.pending, pendingFrame{id: s.lastID, fn: fn})
	return s.lastID
}

// CancelFrame drops a queued frame. Unknown ids are ignored.
func (s *StepScheduler) CancelFrame(id FrameID) {
	i := slices.IndexFunc(s.pending, func(p pendingFrame) bool { return p.id == id })
	if i >= 0 {
		s.pending = slices.Delete(s.pending, i, i+1)
		return
	}
	if s.running {
		s.canceled[id] = true
	}
}

// Pending returns the number of queued frames.
func (s *StepScheduler) Pending() int {
	return len(s.pending)
}

// Advance moves the clock by d and runs the frames queued before the call.
// Frames requested by those callbacks wait for the next Advance.
// It returns the number of callbacks run.
func (s *StepScheduler) Advance(d time.Duration) int {
	s.now = s.now.Add(d)
	batch := s.pending
	s.pending = nil
	ran := 0
	s.running = true
	for _, p := range batch {
		if s.canceled[p.id] {
			continue
		}
		p.fn(s.now)
		ran++
	}
	s.running = false
	clear(s.canceled)
	return ran
}

// RunUntilIdle advances by step until no frames are queued or limit frames
// have run. It returns the number of callbacks run.
func (s *StepScheduler) RunUntilIdle(step time.Duration, limit int) int {
	total := 0
	for len(s.pending) > 0 && total < limit {
		total += s.Advance(step)
	}
	return total
}
