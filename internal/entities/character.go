// Package entities holds the read-only catalog records the build engine works with
package entities

import (
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Attribute is a character's primary attribute category
type Attribute string

// Primary attributes
const (
	AttributeStrength     Attribute = "strength"
	AttributeAgility      Attribute = "agility"
	AttributeIntelligence Attribute = "intelligence"
)

// Attributes lists the primary attributes in display order
var Attributes = []Attribute{AttributeStrength, AttributeAgility, AttributeIntelligence}

// ParseAttribute accepts the long names, the feed abbreviations ("str", "agi",
// "int") and the datafeed ordinals ("0", "1", "2").
func ParseAttribute(s string) (Attribute, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strength", "str", "0":
		return AttributeStrength, true
	case "agility", "agi", "1":
		return AttributeAgility, true
	case "intelligence", "int", "2":
		return AttributeIntelligence, true
	}
	return "", false
}

// Character is a playable roster entry. Selection state lives outside of it.
type Character struct {
	Key       string
	Name      string
	Attribute Attribute
	Roles     []string
}

// GetID returns the character key
func (c *Character) GetID() string {
	return c.Key
}

// GetType returns the entity type
func (c *Character) GetType() string {
	return "character"
}

// HasRole reports whether the character carries the role tag
func (c *Character) HasRole(role string) bool {
	for _, r := range c.Roles {
		if strings.EqualFold(r, role) {
			return true
		}
	}
	return false
}

var _ core.Entity = (*Character)(nil)
