package entities

import (
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Quality is the catalog tier of an item
type Quality string

// Item qualities
const (
	QualityConsumable Quality = "consumable"
	QualityComponent  Quality = "component"
	QualitySecretShop Quality = "secret_shop"
	QualityCommon     Quality = "common"
	QualityRare       Quality = "rare"
	QualityEpic       Quality = "epic"
	QualityArtifact   Quality = "artifact"
)

var qualities = []Quality{
	QualityConsumable,
	QualityComponent,
	QualitySecretShop,
	QualityCommon,
	QualityRare,
	QualityEpic,
	QualityArtifact,
}

// ParseQuality accepts a tier name; the datafeed's numeric tiers are the
// index into the list above.
func ParseQuality(s string) (Quality, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, q := range qualities {
		if s == string(q) || (len(s) == 1 && s[0] == byte('0'+i)) {
			return q, true
		}
	}
	return "", false
}

// Item is a purchasable catalog entry. Components are other item keys.
type Item struct {
	Key        string
	Name       string
	Cost       int
	Quality    Quality
	Components []string
}

// GetID returns the item key
func (i *Item) GetID() string {
	return i.Key
}

// GetType returns the entity type
func (i *Item) GetType() string {
	return "item"
}

var _ core.Entity = (*Item)(nil)
