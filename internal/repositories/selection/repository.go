// Package selection stores which characters a profile has switched off
package selection

import (
	"context"
	"sort"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=selectionmock github.com/KirkDiggler/rpg-loadout/internal/repositories/selection Repository

// Selection is the saved state for one profile. Characters not listed in
// Disabled are active, so a new catalog character starts out selected.
type Selection struct {
	ProfileID string

	// Disabled holds character keys in sorted order
	Disabled []string

	UpdatedAt time.Time
}

// IsActive reports whether the character is selected
func (s *Selection) IsActive(characterKey string) bool {
	i := sort.SearchStrings(s.Disabled, characterKey)
	return i >= len(s.Disabled) || s.Disabled[i] != characterKey
}

// GetInput contains parameters for retrieving a selection
type GetInput struct {
	ProfileID string
}

// GetOutput contains the stored selection
type GetOutput struct {
	Selection *Selection
}

// UpdateInput replaces the disabled set of a profile
type UpdateInput struct {
	ProfileID string
	Disabled  []string
}

// UpdateOutput contains the selection as stored
type UpdateOutput struct {
	Selection *Selection
}

// DeleteInput contains parameters for deleting a selection
type DeleteInput struct {
	ProfileID string
}

// DeleteOutput reports whether anything was removed
type DeleteOutput struct {
	Existed bool
}

// Repository defines selection storage operations
type Repository interface {
	// Get returns NotFound when the profile never saved a selection
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces the profile's disabled set
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// normalize sorts and de-duplicates keys, dropping empty ones
func normalize(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
