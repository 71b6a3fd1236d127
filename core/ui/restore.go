package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"aws-recommender/core/types"
	apperrors "aws-recommender/internal/errors"
)

// RestorePrompt is the question asked when a fresh saved recommendation exists
func RestorePrompt(record *types.StoredRecommendation) string {
	return fmt.Sprintf("You have a saved recommendation from %s. Would you like to view it?",
		record.Timestamp.Local().Format("2006-01-02"))
}

// ConfirmRestore asks whether to show the saved recommendation
func ConfirmRestore(ctx context.Context, record *types.StoredRecommendation, dark bool) (bool, error) {
	restore := false
	confirm := huh.NewConfirm().
		Title(RestorePrompt(record)).
		Affirmative("Yes, show me").
		Negative("No, start new").
		Value(&restore)

	err := huh.NewForm(huh.NewGroup(confirm)).
		WithTheme(createTheme(PaletteFor(dark))).
		RunWithContext(ctx)
	if errors.Is(err, huh.ErrUserAborted) {
		return false, ErrCancelled
	}
	if err != nil {
		return false, apperrors.Internal("restore prompt failed", err)
	}
	return restore, nil
}
