package selection

import (
	"time"

	"github.com/KirkDiggler/rpg-loadout/internal/entities"
)

// CharacterState pairs a catalog character with its selection flag
type CharacterState struct {
	Character entities.Character
	Active    bool
}

// View is the selection of one profile resolved against the catalog
type View struct {
	ProfileID string

	// Characters follows catalog order
	Characters []CharacterState

	UpdatedAt time.Time
}

// ActiveKeys returns the keys of the active characters in catalog order
func (v *View) ActiveKeys() []string {
	var keys []string
	for _, c := range v.Characters {
		if c.Active {
			keys = append(keys, c.Character.Key)
		}
	}
	return keys
}

// GetSelectionInput identifies the profile to read
type GetSelectionInput struct {
	ProfileID string
}

// GetSelectionOutput contains the resolved selection
type GetSelectionOutput struct {
	Selection *View
}

// ToggleCharacterInput flips one character
type ToggleCharacterInput struct {
	ProfileID    string
	CharacterKey string
}

// ToggleAttributeInput flips every character of a primary attribute
type ToggleAttributeInput struct {
	ProfileID string
	Attribute entities.Attribute
}

// ToggleRoleInput flips every character carrying a role tag
type ToggleRoleInput struct {
	ProfileID string
	Role      string
}

// ToggleAllInput switches the whole roster on or off
type ToggleAllInput struct {
	ProfileID string
}

// ToggleOutput contains the selection after a toggle and the keys that changed
type ToggleOutput struct {
	Selection *View
	Toggled   []string
}

// ResetInput identifies the profile to reset
type ResetInput struct {
	ProfileID string
}

// ResetOutput contains the selection after the reset, with everyone active
type ResetOutput struct {
	Selection *View
}
