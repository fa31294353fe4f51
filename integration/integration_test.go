package integration

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/caloriecalc/internal/config"
	"github.com/javiermolinar/caloriecalc/internal/db"
	"github.com/javiermolinar/caloriecalc/internal/nutrition"
	"github.com/javiermolinar/caloriecalc/internal/render"
	"github.com/javiermolinar/caloriecalc/internal/tui"
	"github.com/javiermolinar/caloriecalc/internal/tui/commands"
)

// openStore creates a fresh database for each test with automatic cleanup.
func openStore(t *testing.T, path string) *db.SQLite {
	t.Helper()
	store, err := db.Open(path)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// exec runs cmd and its batched children. Loaded snapshots are fed back into
// m; store errors fail the test. Other messages (cursor blinks, status) are
// dropped.
func exec(t *testing.T, m tea.Model, cmd tea.Cmd) tea.Model {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case commands.ErrMsg:
			t.Fatalf("command failed: %v", msg.Err)
		case commands.SnapshotLoadedMsg:
			var next tea.Cmd
			m, next = m.Update(msg)
			queue = append(queue, next)
		}
	}
	return m
}

func TestSnapshotSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "caloriecalc.db")

	want := nutrition.Fields{Weight: 200, Cal100: 400, Fat100: 1.8, Carb100: 64, Prot100: 7.4}
	first, err := db.Open(path)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	if err := nutrition.SaveSnapshot(ctx, first, want); err != nil {
		t.Fatalf("failed to save snapshot: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("failed to close store: %v", err)
	}

	second := openStore(t, path)
	got, err := nutrition.LoadSnapshot(ctx, second)
	if err != nil {
		t.Fatalf("failed to load snapshot: %v", err)
	}
	if got != want {
		t.Errorf("snapshot: got %+v, want %+v", got, want)
	}
}

func TestMalformedSnapshotFallsBackToDefaults(t *testing.T) {
	ctx := context.Background()
	store := openStore(t, filepath.Join(t.TempDir(), "test.db"))

	if err := store.Set(ctx, nutrition.SnapshotKey, []byte(`{"weight":`)); err != nil {
		t.Fatalf("failed to write blob: %v", err)
	}
	got, err := nutrition.LoadSnapshot(ctx, store)
	if err != nil {
		t.Fatalf("malformed snapshot returned error: %v", err)
	}
	if got != nutrition.Defaults() {
		t.Errorf("fields: got %+v, want defaults", got)
	}
}

func TestPartialSnapshotKeepsDefaults(t *testing.T) {
	ctx := context.Background()
	store := openStore(t, filepath.Join(t.TempDir(), "test.db"))

	if err := store.Set(ctx, nutrition.SnapshotKey, []byte(`{"weight":80,"fat100":10}`)); err != nil {
		t.Fatalf("failed to write blob: %v", err)
	}
	got, err := nutrition.LoadSnapshot(ctx, store)
	if err != nil {
		t.Fatalf("failed to load snapshot: %v", err)
	}
	want := nutrition.Defaults()
	want.Weight = 80
	want.Fat100 = 10
	if got != want {
		t.Errorf("fields: got %+v, want %+v", got, want)
	}
}

func TestModelPersistsEdits(t *testing.T) {
	ctx := context.Background()
	store := openStore(t, filepath.Join(t.TempDir(), "test.db"))
	if err := nutrition.SaveSnapshot(ctx, store, nutrition.Fields{Weight: 100, Cal100: 89, Fat100: 0.3, Carb100: 23, Prot100: 1.1}); err != nil {
		t.Fatalf("failed to seed snapshot: %v", err)
	}

	var m tea.Model = *tui.New(store, config.Default())
	m = exec(t, m, commands.LoadSnapshot(store))
	if got := m.(tui.Model).Fields().Weight; got != 100 {
		t.Fatalf("loaded weight: got %v, want 100", got)
	}

	// Type a trailing zero into the focused weight field
	var cmd tea.Cmd
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'0'}})
	m = exec(t, m, cmd)

	got, err := nutrition.LoadSnapshot(ctx, store)
	if err != nil {
		t.Fatalf("failed to load snapshot: %v", err)
	}
	if got.Weight != 1000 {
		t.Errorf("persisted weight: got %v, want 1000", got.Weight)
	}
	if got.Cal100 != 89 {
		t.Errorf("persisted kcal: got %v, want 89", got.Cal100)
	}
}

func TestRenderPersistedReport(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := openStore(t, filepath.Join(dir, "test.db"))
	if err := nutrition.SaveSnapshot(ctx, store, nutrition.Fields{Weight: 50, Cal100: 160, Fat100: 15, Carb100: 9, Prot100: 2}); err != nil {
		t.Fatalf("failed to seed snapshot: %v", err)
	}

	f, err := nutrition.LoadSnapshot(ctx, store)
	if err != nil {
		t.Fatalf("failed to load snapshot: %v", err)
	}
	out := filepath.Join(dir, "report.png")
	if err := render.RenderFile(out, render.NewReport(f), 640, 420, 1, 1); err != nil {
		t.Fatalf("failed to render: %v", err)
	}

	file, err := os.Open(out)
	if err != nil {
		t.Fatalf("failed to open png: %v", err)
	}
	defer file.Close()
	cfg, err := png.DecodeConfig(file)
	if err != nil {
		t.Fatalf("failed to decode png: %v", err)
	}
	if cfg.Width != 640 || cfg.Height != 420 {
		t.Errorf("png size: got %dx%d, want 640x420", cfg.Width, cfg.Height)
	}
}
