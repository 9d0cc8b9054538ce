// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"
	"sort"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-loadout/internal/orchestrators/selection"
	selectionmock "github.com/KirkDiggler/rpg-loadout/internal/orchestrators/selection/mock"
	selectionrepo "github.com/KirkDiggler/rpg-loadout/internal/repositories/selection"
	selectionrepomock "github.com/KirkDiggler/rpg-loadout/internal/repositories/selection/mock"
)

// StoredAt is the timestamp ExpectSelectionUpdate stamps on saved selections
var StoredAt = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// ExpectSelectionGet sets up a mock expectation for reading a profile's selection
func ExpectSelectionGet(
	ctx context.Context, mockRepo *selectionrepomock.MockRepository,
	profileID string, stored *selectionrepo.Selection, err error,
) *gomock.Call {
	out := &selectionrepo.GetOutput{Selection: stored}
	if err != nil {
		out = nil
	}
	return mockRepo.EXPECT().
		Get(ctx, selectionrepo.GetInput{ProfileID: profileID}).
		Return(out, err)
}

// ExpectSelectionUpdate sets up a mock expectation for saving a selection
func ExpectSelectionUpdate(ctx context.Context, mockRepo *selectionrepomock.MockRepository) *gomock.Call {
	return mockRepo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input selectionrepo.UpdateInput) (*selectionrepo.UpdateOutput, error) {
			// Simulate repository behavior - it sorts the set and stamps the update time
			disabled := append([]string(nil), input.Disabled...)
			sort.Strings(disabled)
			return &selectionrepo.UpdateOutput{Selection: &selectionrepo.Selection{
				ProfileID: input.ProfileID,
				Disabled:  disabled,
				UpdatedAt: StoredAt,
			}}, nil
		})
}

// ExpectSelectionDelete sets up a mock expectation for resetting a profile
func ExpectSelectionDelete(
	ctx context.Context, mockRepo *selectionrepomock.MockRepository,
	profileID string, err error,
) *gomock.Call {
	var out *selectionrepo.DeleteOutput
	if err == nil {
		out = &selectionrepo.DeleteOutput{Existed: true}
	}
	return mockRepo.EXPECT().
		Delete(ctx, selectionrepo.DeleteInput{ProfileID: profileID}).
		Return(out, err)
}

// ExpectActiveSelection sets up the selection service to report the given
// characters as active
func ExpectActiveSelection(
	ctx context.Context, mockSvc *selectionmock.MockService,
	profileID string, view *selection.View, err error,
) *gomock.Call {
	var out *selection.GetSelectionOutput
	if err == nil {
		out = &selection.GetSelectionOutput{Selection: view}
	}
	return mockSvc.EXPECT().
		GetSelection(ctx, &selection.GetSelectionInput{ProfileID: profileID}).
		Return(out, err)
}
