package storage

import (
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"

	"aws-recommender/core/types"
	apperrors "aws-recommender/internal/errors"
)

// Slot names
const (
	KeyLastRecommendation = "lastRecommendation"
	KeyDarkMode           = "darkMode"
)

// DefaultRestoreWindow is how long a saved recommendation is offered for restore
const DefaultRestoreWindow = 7 * 24 * time.Hour

// Slots reads and writes the application's named slots on a Store
type Slots struct {
	store Store
}

// NewSlots wraps a store
func NewSlots(store Store) *Slots {
	return &Slots{store: store}
}

// SaveLast replaces the last recommendation with a record timestamped now
func (s *Slots) SaveLast(ctx context.Context, inputs types.PreferenceVector, recs []types.Recommendation, now time.Time) (*types.StoredRecommendation, error) {
	record := &types.StoredRecommendation{
		Timestamp: now.UTC().Truncate(time.Millisecond),
		Data: types.RecommendationSet{
			Inputs:          inputs,
			Recommendations: recs,
		},
	}

	data, err := json.Marshal(record)
	if err != nil {
		return nil, apperrors.Storage("encode last recommendation", err)
	}
	if err := s.store.Set(ctx, KeyLastRecommendation, data); err != nil {
		return nil, apperrors.Storage("save last recommendation", err)
	}
	return record, nil
}

// LoadLast returns the last recommendation, or nil when none was saved
func (s *Slots) LoadLast(ctx context.Context) (*types.StoredRecommendation, error) {
	data, err := s.store.Get(ctx, KeyLastRecommendation)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Storage("load last recommendation", err)
	}

	var record types.StoredRecommendation
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, apperrors.Storage("decode last recommendation", err)
	}
	return &record, nil
}

// ClearLast empties the last recommendation slot
func (s *Slots) ClearLast(ctx context.Context) error {
	if err := s.store.Delete(ctx, KeyLastRecommendation); err != nil {
		return apperrors.Storage("clear last recommendation", err)
	}
	return nil
}

// DarkMode returns the stored theme preference, false when unset
func (s *Slots) DarkMode(ctx context.Context) (bool, error) {
	data, err := s.store.Get(ctx, KeyDarkMode)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, apperrors.Storage("load dark mode preference", err)
	}

	var dark bool
	if err := json.Unmarshal(data, &dark); err != nil {
		return false, apperrors.Storage("decode dark mode preference", err)
	}
	return dark, nil
}

// SetDarkMode stores the theme preference
func (s *Slots) SetDarkMode(ctx context.Context, dark bool) error {
	data, _ := json.Marshal(dark)
	if err := s.store.Set(ctx, KeyDarkMode, data); err != nil {
		return apperrors.Storage("save dark mode preference", err)
	}
	return nil
}

// IsFresh reports whether a record is younger than window
func IsFresh(record *types.StoredRecommendation, now time.Time, window time.Duration) bool {
	if record == nil || record.Timestamp.IsZero() {
		return false
	}
	return record.Age(now) < window
}
