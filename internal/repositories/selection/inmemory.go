package selection

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-loadout/internal/errors"
	"github.com/KirkDiggler/rpg-loadout/internal/pkg/clock"
)

// InMemoryRepository implements Repository for a single process
type InMemoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	store map[string]*Selection
}

// NewInMemory creates a new in-memory repository. A nil clock uses the
// system time.
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		clock: c,
		store: make(map[string]*Selection),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Get returns a copy of the stored selection
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ProfileID == "" {
		return nil, errors.InvalidArgument(errProfileIDNone)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	sel, ok := r.store[input.ProfileID]
	if !ok {
		return nil, errors.NotFoundf("no selection saved for profile %s", input.ProfileID)
	}
	return &GetOutput{Selection: copySelection(sel)}, nil
}

// Update replaces the disabled set
func (r *InMemoryRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.ProfileID == "" {
		return nil, errors.InvalidArgument(errProfileIDNone)
	}

	sel := &Selection{
		ProfileID: input.ProfileID,
		Disabled:  normalize(input.Disabled),
		UpdatedAt: r.clock.Now(),
	}

	r.mu.Lock()
	r.store[input.ProfileID] = sel
	r.mu.Unlock()

	return &UpdateOutput{Selection: copySelection(sel)}, nil
}

// Delete drops the profile's selection
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ProfileID == "" {
		return nil, errors.InvalidArgument(errProfileIDNone)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, existed := r.store[input.ProfileID]
	delete(r.store, input.ProfileID)
	return &DeleteOutput{Existed: existed}, nil
}

func copySelection(s *Selection) *Selection {
	return &Selection{
		ProfileID: s.ProfileID,
		Disabled:  append([]string(nil), s.Disabled...),
		UpdatedAt: s.UpdatedAt,
	}
}
