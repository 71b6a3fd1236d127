package storage

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"aws-recommender/core/types"
	apperrors "aws-recommender/internal/errors"
)

func newStores(t *testing.T) map[string]Store {
	t.Helper()

	fileStore, err := NewFileStore(filepath.Join(t.TempDir(), "data"))
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}

	badgerStore, err := NewBadgerStore(BadgerOptions{InMemory: true})
	if err != nil {
		t.Fatalf("NewBadgerStore() error = %v", err)
	}

	stores := map[string]Store{
		"file":   fileStore,
		"memory": NewMemoryStore(),
		"badger": badgerStore,
	}
	t.Cleanup(func() {
		for _, s := range stores {
			_ = s.Close()
		}
	})
	return stores
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()

	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := store.Get(ctx, "darkMode"); !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound on empty slot, got %v", err)
			}

			if err := store.Set(ctx, "darkMode", []byte("true")); err != nil {
				t.Fatalf("Set() error = %v", err)
			}
			got, err := store.Get(ctx, "darkMode")
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if !bytes.Equal(got, []byte("true")) {
				t.Errorf("expected true, got %s", got)
			}

			// single slot: a second write replaces the first
			if err := store.Set(ctx, "darkMode", []byte("false")); err != nil {
				t.Fatalf("Set() error = %v", err)
			}
			got, _ = store.Get(ctx, "darkMode")
			if !bytes.Equal(got, []byte("false")) {
				t.Errorf("expected false, got %s", got)
			}

			if err := store.Delete(ctx, "darkMode"); err != nil {
				t.Fatalf("Delete() error = %v", err)
			}
			if err := store.Delete(ctx, "darkMode"); err != nil {
				t.Errorf("deleting an empty slot should not fail, got %v", err)
			}
			if _, err := store.Get(ctx, "darkMode"); !errors.Is(err, ErrNotFound) {
				t.Errorf("expected ErrNotFound after delete, got %v", err)
			}
		})
	}
}

func TestStoreRejectsInvalidKeys(t *testing.T) {
	ctx := context.Background()

	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Set(ctx, "../escape", []byte("x")); err == nil {
				t.Error("expected error for path-like key")
			}
		})
	}
}

func TestFileStoreLayout(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}

	if err := store.Set(context.Background(), KeyLastRecommendation, []byte(`{}`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 || entries[0].Name() != "lastRecommendation.json" {
		t.Errorf("expected a single lastRecommendation.json, got %v", entries)
	}
}

func TestStoreFactory(t *testing.T) {
	tests := []struct {
		backend Backend
		wantErr bool
	}{
		{BackendFile, false},
		{BackendMemory, false},
		{BackendBadger, false},
		{Backend("postgres"), true},
	}

	for _, tt := range tests {
		t.Run(string(tt.backend), func(t *testing.T) {
			store, err := StoreFactory(tt.backend, map[string]string{
				"path":      t.TempDir(),
				"in_memory": "true",
			})
			if (err != nil) != tt.wantErr {
				t.Fatalf("StoreFactory() error = %v, wantErr %v", err, tt.wantErr)
			}
			if store != nil {
				_ = store.Close()
			}
		})
	}
}

func TestSlotsLastRecommendation(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 9, 14, 30, 0, 123456789, time.UTC)

	inputs := types.PreferenceVector{
		WorkloadType:   types.WorkloadAPI,
		Scale:          types.ScaleMedium,
		Budget:         types.BudgetLow,
		TrafficPattern: types.TrafficVariable,
		Customization:  types.CustomizationLow,
		Performance:    types.PerformanceStandard,
		OpsPreference:  types.OpsFullyManaged,
	}
	recs := []types.Recommendation{{
		Service:      "Lambda",
		Category:     "Compute",
		Score:        91,
		Tradeoffs:    types.NoTradeoffs,
		Alternatives: []string{"EC2", "ECS", "Elastic Beanstalk"},
	}}

	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			slots := NewSlots(store)

			empty, err := slots.LoadLast(ctx)
			if err != nil || empty != nil {
				t.Fatalf("expected nil, nil on empty slot, got %v, %v", empty, err)
			}

			saved, err := slots.SaveLast(ctx, inputs, recs, now)
			if err != nil {
				t.Fatalf("SaveLast() error = %v", err)
			}
			if !saved.Timestamp.Equal(now.Truncate(time.Millisecond)) {
				t.Errorf("unexpected timestamp %v", saved.Timestamp)
			}

			loaded, err := slots.LoadLast(ctx)
			if err != nil {
				t.Fatalf("LoadLast() error = %v", err)
			}
			if !loaded.Timestamp.Equal(saved.Timestamp) {
				t.Errorf("timestamp = %v, want %v", loaded.Timestamp, saved.Timestamp)
			}
			if loaded.Data.Inputs != inputs {
				t.Errorf("inputs = %+v, want %+v", loaded.Data.Inputs, inputs)
			}
			if len(loaded.Data.Recommendations) != 1 || loaded.Data.Recommendations[0].Score != 91 {
				t.Errorf("unexpected recommendations %+v", loaded.Data.Recommendations)
			}

			if err := slots.ClearLast(ctx); err != nil {
				t.Fatalf("ClearLast() error = %v", err)
			}
			if cleared, _ := slots.LoadLast(ctx); cleared != nil {
				t.Error("expected empty slot after clear")
			}
		})
	}
}

func TestSlotsCorruptRecord(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	_ = store.Set(ctx, KeyLastRecommendation, []byte("{not json"))

	_, err := NewSlots(store).LoadLast(ctx)
	if !apperrors.IsType(err, apperrors.TypeStorage) {
		t.Errorf("expected storage error, got %v", err)
	}
}

func TestSlotsDarkMode(t *testing.T) {
	ctx := context.Background()
	slots := NewSlots(NewMemoryStore())

	dark, err := slots.DarkMode(ctx)
	if err != nil || dark {
		t.Fatalf("expected false, nil when unset, got %v, %v", dark, err)
	}

	if err := slots.SetDarkMode(ctx, true); err != nil {
		t.Fatalf("SetDarkMode() error = %v", err)
	}
	if dark, _ := slots.DarkMode(ctx); !dark {
		t.Error("expected dark mode enabled")
	}
}

func TestIsFresh(t *testing.T) {
	now := time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		age      time.Duration
		expected bool
	}{
		{"just saved", 0, true},
		{"six days", 6 * 24 * time.Hour, true},
		{"just under seven days", 7*24*time.Hour - time.Second, true},
		{"seven days", 7 * 24 * time.Hour, false},
		{"a month", 30 * 24 * time.Hour, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := &types.StoredRecommendation{Timestamp: now.Add(-tt.age)}
			if got := IsFresh(record, now, DefaultRestoreWindow); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}

	if IsFresh(nil, now, DefaultRestoreWindow) {
		t.Error("nil record is never fresh")
	}
}
