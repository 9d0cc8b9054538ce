package generator

import "github.com/KirkDiggler/rpg-loadout/internal/entities"

// NoUpgrade marks a level at which nothing could be learned
const NoUpgrade = -1

// Build is one generated loadout. It is never modified after generation and
// its accessors hand out copies.
type Build struct {
	character entities.Character
	items     []entities.Item
	abilities []entities.Ability
	skills    []int
}

// Character returns the drawn character
func (b *Build) Character() entities.Character {
	c := b.character
	c.Roles = append([]string(nil), b.character.Roles...)
	return c
}

// Items returns the movement item followed by the highlight items
func (b *Build) Items() []entities.Item {
	out := make([]entities.Item, len(b.items))
	for i, it := range b.items {
		it.Components = append([]string(nil), it.Components...)
		out[i] = it
	}
	return out
}

// MovementItem returns the first item of the build
func (b *Build) MovementItem() entities.Item {
	return b.Items()[0]
}

// HighlightItems returns every item after the movement item
func (b *Build) HighlightItems() []entities.Item {
	return b.Items()[1:]
}

// Skills returns one entry per level. Each entry is a position in
// Abilities(), or NoUpgrade.
func (b *Build) Skills() []int {
	return append([]int(nil), b.skills...)
}

// Abilities returns the character's ability list the skill entries index into
func (b *Build) Abilities() []entities.Ability {
	return append([]entities.Ability(nil), b.abilities...)
}

// SkillAt returns the ability upgraded at the given 1-based level
func (b *Build) SkillAt(level int) (entities.Ability, bool) {
	if level < 1 || level > len(b.skills) {
		return entities.Ability{}, false
	}
	pos := b.skills[level-1]
	if pos == NoUpgrade || pos >= len(b.abilities) {
		return entities.Ability{}, false
	}
	return b.abilities[pos], true
}
