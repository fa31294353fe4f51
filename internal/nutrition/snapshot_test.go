package nutrition

import (
	"context"
	"errors"
	"testing"
)

func TestSnapshot_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	want := Fields{Weight: 80, Cal100: 89, Fat100: 0.3, Carb100: 23, Prot100: 1.1}
	if err := SaveSnapshot(ctx, store, want); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}

	got, err := LoadSnapshot(ctx, store)
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestSnapshot_ZeroValuesSurvive(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	want := Fields{}
	if err := SaveSnapshot(ctx, store, want); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}
	got, _ := LoadSnapshot(ctx, store)
	if got != want {
		t.Errorf("expected zero fields to round-trip, got %+v", got)
	}
}

func TestLoadSnapshot_Absent(t *testing.T) {
	got, err := LoadSnapshot(context.Background(), NewMemoryStore())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != Defaults() {
		t.Errorf("expected defaults, got %+v", got)
	}
}

func TestDecodeSnapshot(t *testing.T) {
	tests := []struct {
		name string
		data string
		want Fields
	}{
		{"empty", "", Defaults()},
		{"malformed", "{weight:", Defaults()},
		{"wrong type", `{"weight":"heavy"}`, Defaults()},
		{"not an object", `[1,2,3]`, Defaults()},
		{"partial", `{"weight":200,"fat100":10}`, Fields{Weight: 200, Cal100: 165, Fat100: 10, Carb100: 0, Prot100: 31}},
		{"full", `{"weight":1,"cal100":2,"fat100":3,"carb100":4,"prot100":5}`, Fields{1, 2, 3, 4, 5}},
		{"unknown keys ignored", `{"weight":99,"sugar":12}`, Fields{Weight: 99, Cal100: 165, Fat100: 3.6, Carb100: 0, Prot100: 31}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeSnapshot([]byte(tt.data)); got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

type failingStore struct{ err error }

func (f failingStore) Get(context.Context, string) ([]byte, error) { return nil, f.err }
func (f failingStore) Set(context.Context, string, []byte) error  { return f.err }
func (f failingStore) Close() error                               { return nil }

func TestLoadSnapshot_StoreFailure(t *testing.T) {
	boom := errors.New("disk on fire")
	got, err := LoadSnapshot(context.Background(), failingStore{err: boom})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
	if got != Defaults() {
		t.Errorf("expected defaults on failure, got %+v", got)
	}

	if err := SaveSnapshot(context.Background(), failingStore{err: boom}, Defaults()); !errors.Is(err, boom) {
		t.Errorf("expected wrapped store error on save, got %v", err)
	}
}

func TestSnapshot_UsesFixedKey(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := SaveSnapshot(ctx, store, Defaults()); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}
	data, _ := store.Get(ctx, "calorieCanvas.last")
	if len(data) == 0 {
		t.Fatal("expected snapshot under calorieCanvas.last")
	}
}

func TestSnapshotWriter_NewestWins(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	w := NewSnapshotWriter(store)

	first := w.Queue(Fields{Weight: 1501})
	second := w.Queue(Fields{Weight: 15012})

	if err := w.Write(ctx, second); err != nil {
		t.Fatalf("Write(second) failed: %v", err)
	}
	if err := w.Write(ctx, first); err != nil {
		t.Fatalf("Write(first) failed: %v", err)
	}

	got, _ := LoadSnapshot(ctx, store)
	if got.Weight != 15012 {
		t.Errorf("expected weight 15012, got %v", got.Weight)
	}
}

func TestSnapshotWriter_Flush(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	w := NewSnapshotWriter(store)

	if err := w.Flush(ctx); err != nil {
		t.Fatalf("Flush with nothing queued failed: %v", err)
	}
	if data, _ := store.Get(ctx, SnapshotKey); data != nil {
		t.Fatalf("expected no write, got %s", data)
	}

	w.Queue(Fields{Weight: 42})
	if err := w.Flush(ctx); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	got, _ := LoadSnapshot(ctx, store)
	if got.Weight != 42 {
		t.Errorf("expected flushed weight 42, got %v", got.Weight)
	}
}

func TestSnapshotWriter_RetriesAfterFailure(t *testing.T) {
	boom := errors.New("boom")
	w := NewSnapshotWriter(failingStore{err: boom})

	seq := w.Queue(Defaults())
	if err := w.Write(context.Background(), seq); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	store := NewMemoryStore()
	w.store = store
	if err := w.Flush(context.Background()); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if got, _ := LoadSnapshot(context.Background(), store); got != Defaults() {
		t.Errorf("expected defaults after retry, got %+v", got)
	}
}
