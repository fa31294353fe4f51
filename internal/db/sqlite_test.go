package db

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/javiermolinar/caloriecalc/internal/nutrition"
)

func TestGet_Absent(t *testing.T) {
	repo := newTestRepo(t)

	got, err := repo.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for absent key, got %q", got)
	}
}

func TestSetGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Set(ctx, "k", []byte("v1")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, err := repo.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !bytes.Equal(got, []byte("v1")) {
		t.Errorf("expected v1, got %q", got)
	}
}

func TestSet_Overwrites(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, v := range []string{"first", "second", "third"} {
		if err := repo.Set(ctx, "k", []byte(v)); err != nil {
			t.Fatalf("Set(%s) failed: %v", v, err)
		}
	}

	got, err := repo.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != "third" {
		t.Errorf("expected last write to win, got %q", got)
	}

	var count int
	if err := repo.db.QueryRow(`SELECT COUNT(*) FROM kv`).Scan(&count); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 row, got %d", count)
	}
}

func TestDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Set(ctx, "k", []byte("v")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := repo.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := repo.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete of absent key failed: %v", err)
	}
	got, _ := repo.Get(ctx, "k")
	if got != nil {
		t.Errorf("expected key to be gone, got %q", got)
	}
}

func TestSnapshot_SurvivesRestart(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "calc.db")

	first, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	want := nutrition.Fields{Weight: 42, Cal100: 400, Fat100: 1.8, Carb100: 64, Prot100: 7.4}
	if err := nutrition.SaveSnapshot(ctx, first, want); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	second, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	t.Cleanup(func() { _ = second.Close() })

	got, err := nutrition.LoadSnapshot(ctx, second)
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if got != want {
		t.Errorf("expected %+v after restart, got %+v", want, got)
	}
}

func TestSnapshot_MalformedFallsBackToDefaults(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Set(ctx, nutrition.SnapshotKey, []byte("not json")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, err := nutrition.LoadSnapshot(ctx, repo)
	if err != nil {
		t.Fatalf("expected malformed snapshot to be ignored, got %v", err)
	}
	if got != nutrition.Defaults() {
		t.Errorf("expected defaults, got %+v", got)
	}
}

func TestOpen_EmptyPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Error("expected error for empty path")
	}
}

func newTestRepo(t *testing.T) *SQLite {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	repo, err := New(dbPath)
	if err != nil {
		t.Fatalf("failed to create test repo: %v", err)
	}

	t.Cleanup(func() {
		_ = repo.Close()
	})

	return repo
}
