package generator

import "github.com/KirkDiggler/rpg-loadout/internal/errors"

// Reasons attached to generation failures
const (
	ReasonNoActiveCharacter = "no_active_character"
	ReasonNoMovementItem    = "no_movement_item"
)

func errNoActiveCharacter() error {
	return errors.FailedPrecondition("no character is selected").
		WithReason(ReasonNoActiveCharacter)
}

func errNoMovementItem() error {
	return errors.FailedPrecondition("catalog has no movement item").
		WithReason(ReasonNoMovementItem)
}

// IsNoActiveCharacter reports whether generation failed because the
// selection was empty
func IsNoActiveCharacter(err error) bool {
	return errors.IsFailedPrecondition(err) && errors.HasReason(err, ReasonNoActiveCharacter)
}

// IsNoMovementItem reports whether generation failed because no catalog item
// resolves to a movement item
func IsNoMovementItem(err error) bool {
	return errors.IsFailedPrecondition(err) && errors.HasReason(err, ReasonNoMovementItem)
}
