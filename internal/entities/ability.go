package entities

import "github.com/KirkDiggler/rpg-toolkit/core"

// Synthetic talent slot keys shared by every character
const (
	TalentLeft  = "talent_left"
	TalentRight = "talent_right"
)

// Ability is a skill owned by a character. Owner is the owning character key.
type Ability struct {
	Key    string
	Name   string
	Owner  string
	Talent bool
}

// GetID returns the ability key
func (a *Ability) GetID() string {
	return a.Key
}

// GetType returns the entity type
func (a *Ability) GetType() string {
	if a.Talent {
		return "talent"
	}
	return "ability"
}

// TalentSlots returns the two placeholder talent abilities for a character
func TalentSlots(owner string) []Ability {
	return []Ability{
		{Key: TalentLeft, Name: "Talent Left", Owner: owner, Talent: true},
		{Key: TalentRight, Name: "Talent Right", Owner: owner, Talent: true},
	}
}

var _ core.Entity = (*Ability)(nil)
