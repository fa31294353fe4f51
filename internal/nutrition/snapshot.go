package nutrition

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// SnapshotKey is the store key holding the last-entered fields.
const SnapshotKey = "calorieCanvas.last"

// Store is a small durable key-value store.
type Store interface {
	// Get returns the value for key, or nil if the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Close releases any resources held by the store.
	Close() error
}

// snapshot is the persisted form of Fields. Every field is optional.
type snapshot struct {
	Weight  *float64 `json:"weight,omitempty"`
	Cal100  *float64 `json:"cal100,omitempty"`
	Fat100  *float64 `json:"fat100,omitempty"`
	Carb100 *float64 `json:"carb100,omitempty"`
	Prot100 *float64 `json:"prot100,omitempty"`
}

// EncodeSnapshot serializes fields to the snapshot format.
func EncodeSnapshot(f Fields) ([]byte, error) {
	s := snapshot{
		Weight:  &f.Weight,
		Cal100:  &f.Cal100,
		Fat100:  &f.Fat100,
		Carb100: &f.Carb100,
		Prot100: &f.Prot100,
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a snapshot. Missing fields take their defaults;
// empty or malformed data yields Defaults().
func DecodeSnapshot(data []byte) Fields {
	f := Defaults()
	if len(data) == 0 {
		return f
	}
	var s snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return f
	}
	if s.Weight != nil {
		f.Weight = *s.Weight
	}
	if s.Cal100 != nil {
		f.Cal100 = *s.Cal100
	}
	if s.Fat100 != nil {
		f.Fat100 = *s.Fat100
	}
	if s.Carb100 != nil {
		f.Carb100 = *s.Carb100
	}
	if s.Prot100 != nil {
		f.Prot100 = *s.Prot100
	}
	return f
}

// LoadSnapshot reads the last saved fields from the store.
// Absent or malformed snapshots silently yield Defaults(); only a store
// failure is returned, together with the defaults.
func LoadSnapshot(ctx context.Context, s Store) (Fields, error) {
	if s == nil {
		return Defaults(), nil
	}
	data, err := s.Get(ctx, SnapshotKey)
	if err != nil {
		return Defaults(), fmt.Errorf("reading snapshot: %w", err)
	}
	return DecodeSnapshot(data), nil
}

// SaveSnapshot writes fields to the store under SnapshotKey.
func SaveSnapshot(ctx context.Context, s Store, f Fields) error {
	if s == nil {
		return nil
	}
	data, err := EncodeSnapshot(f)
	if err != nil {
		return err
	}
	if err := s.Set(ctx, SnapshotKey, data); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

// SnapshotWriter orders snapshot writes. Each change is queued with a
// sequence number and a write only ever persists the newest queued fields,
// so writes that run out of order never leave a stale snapshot behind.
type SnapshotWriter struct {
	store Store

	mu      sync.Mutex
	queued  uint64
	written uint64
	latest  Fields
}

// NewSnapshotWriter creates a writer for s.
func NewSnapshotWriter(s Store) *SnapshotWriter {
	return &SnapshotWriter{store: s}
}

// Queue records f as the newest snapshot and returns its sequence number.
func (w *SnapshotWriter) Queue(f Fields) uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.queued++
	w.latest = f
	return w.queued
}

// Write persists the newest queued fields unless a write covering seq has
// already happened.
func (w *SnapshotWriter) Write(ctx context.Context, seq uint64) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if seq <= w.written {
		return nil
	}
	return w.writeLocked(ctx)
}

// Flush persists any queued fields that have not been written yet. It waits
// for a write already in progress.
func (w *SnapshotWriter) Flush(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.queued <= w.written {
		return nil
	}
	return w.writeLocked(ctx)
}

func (w *SnapshotWriter) writeLocked(ctx context.Context) error {
	seq := w.queued
	if err := SaveSnapshot(ctx, w.store, w.latest); err != nil {
		return err
	}
	w.written = seq
	return nil
}

// MemoryStore is an in-process Store. It is used when persistence is disabled.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Get returns a copy of the value for key, or nil.
func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

// Set stores a copy of value under key.
func (m *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}

// Close is a no-op.
func (m *MemoryStore) Close() error { return nil }
