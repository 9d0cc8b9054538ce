// Package items decides which catalog items qualify as the movement item or
// as highlight items of a build.
package items

import (
	"github.com/KirkDiggler/rpg-loadout/internal/entities"
	"github.com/KirkDiggler/rpg-loadout/internal/errors"
)

// Defaults for Config
const (
	DefaultMovementTag      = "boots"
	DefaultMinHighlightCost = 2000
)

// DefaultHighlightQualities are the tiers a highlight item may have
var DefaultHighlightQualities = []entities.Quality{
	entities.QualityRare,
	entities.QualityEpic,
	entities.QualityArtifact,
}

// Index is the catalog view the filter needs
type Index interface {
	Item(key string) (entities.Item, bool)
	IsComponent(itemKey string) bool
}

// Config holds the eligibility thresholds
type Config struct {
	// MovementTag is the component key that marks a movement-speed item
	MovementTag        string
	MinHighlightCost   int
	HighlightQualities []entities.Quality
}

// DefaultConfig returns the standard thresholds
func DefaultConfig() *Config {
	return &Config{
		MovementTag:        DefaultMovementTag,
		MinHighlightCost:   DefaultMinHighlightCost,
		HighlightQualities: append([]entities.Quality(nil), DefaultHighlightQualities...),
	}
}

// Validate ensures the thresholds are usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("MovementTag", c.MovementTag, vb)
	if c.MinHighlightCost < 0 {
		vb.Field("MinHighlightCost", "cannot be negative")
	}
	if len(c.HighlightQualities) == 0 {
		vb.RequiredField("HighlightQualities")
	}

	return vb.Build()
}

// Filter evaluates item eligibility. It holds no mutable state.
type Filter struct {
	cfg       *Config
	index     Index
	qualities map[entities.Quality]bool
}

// NewFilter creates a filter over the catalog index
func NewFilter(cfg *Config, index Index) (*Filter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("items config cannot be nil")
	}
	if index == nil {
		return nil, errors.InvalidArgument("item index cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid items config")
	}

	qualities := make(map[entities.Quality]bool, len(cfg.HighlightQualities))
	for _, q := range cfg.HighlightQualities {
		qualities[q] = true
	}

	return &Filter{
		cfg:       cfg,
		index:     index,
		qualities: qualities,
	}, nil
}

// IsMovementItem reports whether the item's components, followed
// transitively, include the movement tag. The tag item itself has no
// components and so is not a movement item.
func (f *Filter) IsMovementItem(item entities.Item) bool {
	visited := map[string]bool{item.Key: true}
	for _, component := range item.Components {
		if f.containsTag(component, visited) {
			return true
		}
	}
	return false
}

// containsTag descends the component graph. A node already visited counts as
// not found, which keeps cyclic catalogs from recursing forever.
func (f *Filter) containsTag(key string, visited map[string]bool) bool {
	if key == f.cfg.MovementTag {
		return true
	}
	if visited[key] {
		return false
	}
	visited[key] = true

	item, ok := f.index.Item(key)
	if !ok {
		return false
	}
	for _, component := range item.Components {
		if f.containsTag(component, visited) {
			return true
		}
	}
	return false
}

// IsHighlightEligible reports whether the item is a fully assembled purchase
// above the cost threshold in one of the highlight tiers.
func (f *Filter) IsHighlightEligible(item entities.Item) bool {
	return item.Cost >= f.cfg.MinHighlightCost &&
		f.qualities[item.Quality] &&
		!f.index.IsComponent(item.Key)
}

// MovementItems returns the movement items among candidates, order kept
func (f *Filter) MovementItems(candidates []entities.Item) []entities.Item {
	var out []entities.Item
	for _, it := range candidates {
		if f.IsMovementItem(it) {
			out = append(out, it)
		}
	}
	return out
}

// HighlightPool returns candidates that are highlight eligible and not
// movement items, order kept
func (f *Filter) HighlightPool(candidates []entities.Item) []entities.Item {
	var out []entities.Item
	for _, it := range candidates {
		if !f.IsMovementItem(it) && f.IsHighlightEligible(it) {
			out = append(out, it)
		}
	}
	return out
}
