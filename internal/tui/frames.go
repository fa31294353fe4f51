package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/caloriecalc/internal/render"
)

// frameMsg delivers one requested animation frame.
type frameMsg struct {
	id render.FrameID
	at time.Time
}

// frameScheduler turns frame requests into tea.Tick commands. Requests made
// during Update are collected and flushed by Cmd.
type frameScheduler struct {
	interval time.Duration
	lastID   render.FrameID
	pending  map[render.FrameID]func(time.Time)
	queued   []render.FrameID
}

func newFrameScheduler(interval time.Duration) *frameScheduler {
	return &frameScheduler{
		interval: interval,
		pending:  make(map[render.FrameID]func(time.Time)),
	}
}

func (s *frameScheduler) RequestFrame(fn func(now time.Time)) render.FrameID {
	s.lastID++
	s.pending[s.lastID] = fn
	s.queued = append(s.queued, s.lastID)
	return s.lastID
}

func (s *frameScheduler) CancelFrame(id render.FrameID) {
	delete(s.pending, id)
}

// Cmd returns the ticks for frames requested since the last call.
func (s *frameScheduler) Cmd() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(s.queued))
	for _, id := range s.queued {
		if _, ok := s.pending[id]; !ok {
			continue
		}
		cmds = append(cmds, tea.Tick(s.interval, func(t time.Time) tea.Msg {
			return frameMsg{id: id, at: t}
		}))
	}
	s.queued = s.queued[:0]
	return tea.Batch(cmds...)
}

// Fire runs the callback for msg. Canceled frames are dropped.
func (s *frameScheduler) Fire(msg frameMsg) bool {
	fn, ok := s.pending[msg.id]
	if !ok {
		return false
	}
	delete(s.pending, msg.id)
	fn(msg.at)
	return true
}
