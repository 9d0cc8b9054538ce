// Package selection manages which characters a profile may roll
package selection

//go:generate mockgen -destination=mock/mock_service.go -package=selectionmock github.com/KirkDiggler/rpg-loadout/internal/orchestrators/selection Service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-loadout/internal/entities"
	"github.com/KirkDiggler/rpg-loadout/internal/errors"
	selectionrepo "github.com/KirkDiggler/rpg-loadout/internal/repositories/selection"
)

// Service defines the selection operations
type Service interface {
	GetSelection(ctx context.Context, input *GetSelectionInput) (*GetSelectionOutput, error)
	ToggleCharacter(ctx context.Context, input *ToggleCharacterInput) (*ToggleOutput, error)
	ToggleAttribute(ctx context.Context, input *ToggleAttributeInput) (*ToggleOutput, error)
	ToggleRole(ctx context.Context, input *ToggleRoleInput) (*ToggleOutput, error)

	// ToggleAll deselects everyone when the first catalog character is
	// active, otherwise selects everyone
	ToggleAll(ctx context.Context, input *ToggleAllInput) (*ToggleOutput, error)

	Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error)
}

// Catalog is the roster view the orchestrator needs
type Catalog interface {
	Characters() []entities.Character
	Character(key string) (entities.Character, bool)
}

// Config holds the dependencies for the selection orchestrator
type Config struct {
	Catalog       Catalog
	SelectionRepo selectionrepo.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.SelectionRepo == nil {
		vb.RequiredField("SelectionRepo")
	}

	return vb.Build()
}

type orchestrator struct {
	catalog Catalog
	repo    selectionrepo.Repository
}

// NewOrchestrator creates a new selection orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		catalog: cfg.Catalog,
		repo:    cfg.SelectionRepo,
	}, nil
}

// GetSelection resolves the stored selection against the catalog. A profile
// that never saved anything has every character active.
func (o *orchestrator) GetSelection(ctx context.Context, input *GetSelectionInput) (*GetSelectionOutput, error) {
	if input == nil || input.ProfileID == "" {
		return nil, errors.InvalidArgument("profile ID is required")
	}

	stored, err := o.load(ctx, input.ProfileID)
	if err != nil {
		return nil, err
	}

	return &GetSelectionOutput{Selection: o.view(stored)}, nil
}

// ToggleCharacter flips a single character
func (o *orchestrator) ToggleCharacter(ctx context.Context, input *ToggleCharacterInput) (*ToggleOutput, error) {
	if input == nil || input.ProfileID == "" {
		return nil, errors.InvalidArgument("profile ID is required")
	}
	if input.CharacterKey == "" {
		return nil, errors.InvalidArgument("character key is required")
	}
	if _, ok := o.catalog.Character(input.CharacterKey); !ok {
		return nil, errors.NotFoundf("character %s not found", input.CharacterKey)
	}

	return o.flip(ctx, input.ProfileID, []string{input.CharacterKey})
}

// ToggleAttribute flips each character of the attribute on its own, so a
// mixed group stays mixed
func (o *orchestrator) ToggleAttribute(ctx context.Context, input *ToggleAttributeInput) (*ToggleOutput, error) {
	if input == nil || input.ProfileID == "" {
		return nil, errors.InvalidArgument("profile ID is required")
	}
	attr, ok := entities.ParseAttribute(string(input.Attribute))
	if !ok {
		return nil, errors.InvalidArgumentf("unknown attribute %q", input.Attribute)
	}

	var keys []string
	for _, c := range o.catalog.Characters() {
		if c.Attribute == attr {
			keys = append(keys, c.Key)
		}
	}
	if len(keys) == 0 {
		return nil, errors.NotFoundf("no character has primary attribute %s", attr)
	}

	return o.flip(ctx, input.ProfileID, keys)
}

// ToggleRole flips each character that carries the role
func (o *orchestrator) ToggleRole(ctx context.Context, input *ToggleRoleInput) (*ToggleOutput, error) {
	if input == nil || input.ProfileID == "" {
		return nil, errors.InvalidArgument("profile ID is required")
	}
	role := strings.TrimSpace(input.Role)
	if role == "" {
		return nil, errors.InvalidArgument("role is required")
	}

	var keys []string
	for _, c := range o.catalog.Characters() {
		if c.HasRole(role) {
			keys = append(keys, c.Key)
		}
	}
	if len(keys) == 0 {
		return nil, errors.NotFoundf("no character has role %s", role)
	}

	return o.flip(ctx, input.ProfileID, keys)
}

func (o *orchestrator) ToggleAll(ctx context.Context, input *ToggleAllInput) (*ToggleOutput, error) {
	if input == nil || input.ProfileID == "" {
		return nil, errors.InvalidArgument("profile ID is required")
	}

	characters := o.catalog.Characters()
	if len(characters) == 0 {
		return nil, errors.FailedPrecondition("catalog has no characters")
	}

	stored, err := o.load(ctx, input.ProfileID)
	if err != nil {
		return nil, err
	}

	var disabled, toggled []string
	if stored.IsActive(characters[0].Key) {
		for _, c := range characters {
			disabled = append(disabled, c.Key)
			if stored.IsActive(c.Key) {
				toggled = append(toggled, c.Key)
			}
		}
	} else {
		for _, c := range characters {
			if !stored.IsActive(c.Key) {
				toggled = append(toggled, c.Key)
			}
		}
	}

	out, err := o.save(ctx, input.ProfileID, disabled)
	if err != nil {
		return nil, err
	}

	slog.Info("Selection toggled for all characters",
		"profile_id", input.ProfileID,
		"active", len(disabled) == 0,
		"changed", len(toggled))

	return &ToggleOutput{Selection: o.view(out), Toggled: toggled}, nil
}

// Reset forgets the profile's selection, which makes everyone active
func (o *orchestrator) Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error) {
	if input == nil || input.ProfileID == "" {
		return nil, errors.InvalidArgument("profile ID is required")
	}

	out, err := o.repo.Delete(ctx, selectionrepo.DeleteInput{ProfileID: input.ProfileID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to reset selection for profile %s", input.ProfileID)
	}

	slog.Info("Selection reset",
		"profile_id", input.ProfileID,
		"existed", out.Existed)

	return &ResetOutput{
		Selection: o.view(&selectionrepo.Selection{ProfileID: input.ProfileID}),
	}, nil
}

// flip toggles each key and persists the result
func (o *orchestrator) flip(ctx context.Context, profileID string, keys []string) (*ToggleOutput, error) {
	stored, err := o.load(ctx, profileID)
	if err != nil {
		return nil, err
	}

	disabled := make(map[string]bool, len(stored.Disabled)+len(keys))
	for _, k := range stored.Disabled {
		disabled[k] = true
	}
	for _, k := range keys {
		disabled[k] = !disabled[k]
	}

	next := make([]string, 0, len(disabled))
	for k, off := range disabled {
		if off {
			next = append(next, k)
		}
	}

	out, err := o.save(ctx, profileID, next)
	if err != nil {
		return nil, err
	}

	slog.Info("Selection toggled",
		"profile_id", profileID,
		"characters", keys,
		"disabled", len(out.Disabled))

	return &ToggleOutput{Selection: o.view(out), Toggled: keys}, nil
}

func (o *orchestrator) load(ctx context.Context, profileID string) (*selectionrepo.Selection, error) {
	out, err := o.repo.Get(ctx, selectionrepo.GetInput{ProfileID: profileID})
	if err != nil {
		if errors.IsNotFound(err) {
			return &selectionrepo.Selection{ProfileID: profileID}, nil
		}
		return nil, errors.Wrapf(err, "failed to load selection for profile %s", profileID)
	}
	return out.Selection, nil
}

func (o *orchestrator) save(ctx context.Context, profileID string, disabled []string) (*selectionrepo.Selection, error) {
	out, err := o.repo.Update(ctx, selectionrepo.UpdateInput{
		ProfileID: profileID,
		Disabled:  disabled,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save selection for profile %s", profileID)
	}
	return out.Selection, nil
}

func (o *orchestrator) view(stored *selectionrepo.Selection) *View {
	characters := o.catalog.Characters()
	v := &View{
		ProfileID:  stored.ProfileID,
		Characters: make([]CharacterState, len(characters)),
		UpdatedAt:  stored.UpdatedAt,
	}
	for i, c := range characters {
		v.Characters[i] = CharacterState{Character: c, Active: stored.IsActive(c.Key)}
	}
	return v
}
