package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/caloriecalc/internal/nutrition"
	"github.com/javiermolinar/caloriecalc/internal/tui/commands"
	"github.com/javiermolinar/caloriecalc/internal/update"
)

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	return next, cmd
}

// drainFrames fires pending frames until the animation stops.
func drainFrames(t *testing.T, m Model, interval time.Duration) (Model, int) {
	t.Helper()
	now := time.Now()
	frames := 0
	for m.preview.Animating() {
		if frames > 1000 {
			t.Fatal("animation did not finish")
		}
		fired := false
		for id := range m.preview.sched.pending {
			m, _ = step(t, m, frameMsg{id: id, at: now})
			fired = true
			break
		}
		if !fired {
			t.Fatal("animating with no pending frame")
		}
		now = now.Add(interval)
		frames++
	}
	return m, frames
}

func TestSnapshotLoaded(t *testing.T) {
	m, _ := newTestModel(t)
	loaded := nutrition.Fields{Weight: 200, Cal100: 400, Fat100: 1.8, Carb100: 64, Prot100: 7.4}

	m, cmd := step(t, m, commands.SnapshotLoadedMsg{Fields: loaded})
	if cmd != nil {
		t.Errorf("unexpected command after load")
	}
	if !m.loaded {
		t.Fatal("loaded = false")
	}
	if m.fields != loaded {
		t.Fatalf("fields = %+v, want %+v", m.fields, loaded)
	}
	want := []string{"200", "400", "1.8", "64", "7.4"}
	for i, w := range want {
		if got := m.inputs[i].Value(); got != w {
			t.Errorf("input %d = %q, want %q", i, got, w)
		}
	}
	if m.preview.report.Fields != loaded {
		t.Errorf("preview report not updated: %+v", m.preview.report.Fields)
	}
}

func TestSnapshotLoadError(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := step(t, m, commands.SnapshotLoadedMsg{Fields: nutrition.Defaults(), Err: errors.New("disk I/O error")})
	if cmd == nil {
		t.Fatal("expected status clear tick")
	}
	if !m.loaded {
		t.Error("store failure should still enable saving")
	}
	if !m.statusErr || !strings.Contains(m.statusMsg, "disk I/O error") {
		t.Errorf("status = %q (err %v)", m.statusMsg, m.statusErr)
	}
	if m.fields != nutrition.Defaults() {
		t.Errorf("fields = %+v, want defaults", m.fields)
	}
}

func TestStatusMessages(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := step(t, m, commands.StatusMsgCmd{Msg: "Saved out.png"})
	if cmd == nil || m.statusMsg != "Saved out.png" || m.statusErr {
		t.Fatalf("status = %q, err = %v", m.statusMsg, m.statusErr)
	}

	m, _ = step(t, m, commands.ClearStatusMsg{})
	if m.statusMsg == "" {
		t.Fatal("status cleared before its deadline")
	}

	m.statusTime = time.Now().Add(-time.Second)
	m, _ = step(t, m, commands.ClearStatusMsg{})
	if m.statusMsg != "" {
		t.Errorf("status = %q, want cleared", m.statusMsg)
	}
}

func TestUpdateAvailableOpensModal(t *testing.T) {
	m, _ := newTestModel(t)
	n := update.Notice{Path: "/tmp/caloriecalc", ModTime: time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)}

	m, _ = step(t, m, commands.UpdateAvailableMsg{Notice: n})
	if m.mode != ModeModal || m.modalType != ModalUpdate {
		t.Fatalf("mode = %v, modal = %v", m.mode, m.modalType)
	}
	if m.notice != n {
		t.Errorf("notice = %+v", m.notice)
	}
}

func TestWindowSizeStartsPreview(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := step(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if cmd == nil {
		t.Fatal("resize did not schedule a frame")
	}
	if !m.preview.Animating() {
		t.Fatal("preview not animating after resize")
	}
	if m.preview.cols != 68 || m.preview.rows != 31 {
		t.Fatalf("preview = %dx%d, want 68x31", m.preview.cols, m.preview.rows)
	}
	if w, h := m.preview.surface.PixelSize(); w != 68 || h != 62 {
		t.Errorf("surface pixels = %dx%d, want 68x62", w, h)
	}

	m, frames := drainFrames(t, m, m.preview.sched.interval)
	if frames < 2 {
		t.Errorf("frames = %d, want several", frames)
	}
	if m.preview.anim.Progress() != 1 {
		t.Errorf("final progress = %v, want 1", m.preview.anim.Progress())
	}
	if got := strings.Count(m.preview.cells, "\n") + 1; got != 31 {
		t.Errorf("preview lines = %d, want 31", got)
	}
	if m.preview.err != nil {
		t.Errorf("preview error: %v", m.preview.err)
	}
}

func TestWindowTooSmallHidesPreview(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = step(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	if m.preview.Animating() {
		t.Error("preview animating in a small window")
	}
	if m.preview.cells != "" {
		t.Error("preview cells rendered in a small window")
	}
}

func TestEditRestartsAnimation(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m, _ = drainFrames(t, m, 50*time.Millisecond)

	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	if cmd == nil {
		t.Fatal("edit returned nil command")
	}
	if !m.preview.Animating() {
		t.Fatal("edit did not restart the animation")
	}
	if m.preview.report.Fields.Weight != 15 {
		t.Errorf("preview weight = %v, want 15", m.preview.report.Fields.Weight)
	}
}

func TestStaleFrameIgnored(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	var first frameMsg
	for id := range m.preview.sched.pending {
		first = frameMsg{id: id, at: time.Now()}
	}
	m.preview.SetReport(m.report())

	if m.preview.sched.Fire(first) {
		t.Fatal("canceled frame fired")
	}
	if len(m.preview.sched.pending) != 1 {
		t.Errorf("pending = %d, want 1", len(m.preview.sched.pending))
	}
}
