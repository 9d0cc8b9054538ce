// Package generator draws random builds: a character, a movement item, a
// handful of highlight items and a level-by-level skill order.
package generator

import (
	"github.com/KirkDiggler/rpg-loadout/internal/entities"
	"github.com/KirkDiggler/rpg-loadout/internal/errors"
	"github.com/KirkDiggler/rpg-loadout/internal/random"
)

// Defaults for Config
const (
	DefaultLevels         = 25
	DefaultHighlightSlots = 5
)

// Catalog is the read-only character and item view the generator draws from
type Catalog interface {
	Characters() []entities.Character
	Items() []entities.Item
}

// SkillRules answers the progression questions for a character's abilities
type SkillRules interface {
	CharacterAbilities(characterKey string) []entities.Ability
	IsTalent(ability entities.Ability) bool
	CanLearnNow(ability entities.Ability, currentLevel, timesLearned int) bool
}

// ItemFilter classifies items
type ItemFilter interface {
	MovementItems(candidates []entities.Item) []entities.Item
	HighlightPool(candidates []entities.Item) []entities.Item
}

// Config holds the generator dependencies
type Config struct {
	Catalog Catalog
	Rules   SkillRules
	Items   ItemFilter

	// Levels is the length of the skill order, DefaultLevels when zero
	Levels int
	// HighlightSlots caps the highlight items, DefaultHighlightSlots when zero
	HighlightSlots int
}

// Validate ensures all dependencies are present
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Rules == nil {
		vb.RequiredField("Rules")
	}
	if c.Items == nil {
		vb.RequiredField("Items")
	}
	if c.Levels < 0 {
		vb.Field("Levels", "cannot be negative")
	}
	if c.HighlightSlots < 0 {
		vb.Field("HighlightSlots", "cannot be negative")
	}

	return vb.Build()
}

// Generator produces builds. It keeps no state between calls; concurrent
// callers only need their own random.Source.
type Generator struct {
	catalog        Catalog
	rules          SkillRules
	items          ItemFilter
	levels         int
	highlightSlots int
}

// New creates a generator
func New(cfg *Config) (*Generator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("generator config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid generator config")
	}

	g := &Generator{
		catalog:        cfg.Catalog,
		rules:          cfg.Rules,
		items:          cfg.Items,
		levels:         cfg.Levels,
		highlightSlots: cfg.HighlightSlots,
	}
	if g.levels == 0 {
		g.levels = DefaultLevels
	}
	if g.highlightSlots == 0 {
		g.highlightSlots = DefaultHighlightSlots
	}
	return g, nil
}

// GenerateBuild draws a build for one of the active characters. Active keys
// unknown to the catalog are ignored and the draw follows catalog order, so a
// fixed source always yields the same build.
func (g *Generator) GenerateBuild(active []string, src random.Source) (*Build, error) {
	if src == nil {
		return nil, errors.InvalidArgument("random source cannot be nil")
	}

	candidates := g.activeCharacters(active)
	if len(candidates) == 0 {
		return nil, errNoActiveCharacter()
	}

	idx, err := src.IntN(len(candidates))
	if err != nil {
		return nil, drawError(err, "character")
	}
	character := candidates[idx]

	catalogItems := g.catalog.Items()

	movement := g.items.MovementItems(catalogItems)
	if len(movement) == 0 {
		return nil, errNoMovementItem()
	}
	idx, err = src.IntN(len(movement))
	if err != nil {
		return nil, drawError(err, "movement item")
	}

	pool := g.items.HighlightPool(catalogItems)
	err = random.Shuffle(src, len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if err != nil {
		return nil, drawError(err, "highlight items")
	}
	if len(pool) > g.highlightSlots {
		pool = pool[:g.highlightSlots]
	}

	abilities := g.rules.CharacterAbilities(character.Key)
	skills, err := g.skillOrder(abilities, src)
	if err != nil {
		return nil, err
	}

	picked := make([]entities.Item, 0, len(pool)+1)
	picked = append(picked, movement[idx])
	picked = append(picked, pool...)

	return &Build{
		character: character,
		items:     picked,
		abilities: abilities,
		skills:    skills,
	}, nil
}

// GenerateSkillBuild returns the skill order for a character: one entry per
// level holding a position in the character's ability list, or NoUpgrade.
// An unknown character has no abilities and yields NoUpgrade throughout.
func (g *Generator) GenerateSkillBuild(characterKey string, src random.Source) ([]int, error) {
	if src == nil {
		return nil, errors.InvalidArgument("random source cannot be nil")
	}
	return g.skillOrder(g.rules.CharacterAbilities(characterKey), src)
}

// skillOrder walks the levels. Both talent slots share one eligibility
// counter while each slot still tracks its own upgrades.
func (g *Generator) skillOrder(abilities []entities.Ability, src random.Source) ([]int, error) {
	counts := make([]int, len(abilities))
	talents := 0
	isTalent := make([]bool, len(abilities))
	for i, a := range abilities {
		isTalent[i] = g.rules.IsTalent(a)
	}

	skills := make([]int, 0, g.levels)
	eligible := make([]int, 0, len(abilities))

	for level := 1; level <= g.levels; level++ {
		eligible = eligible[:0]
		for i, a := range abilities {
			times := counts[i]
			if isTalent[i] {
				times = talents
			}
			if g.rules.CanLearnNow(a, level, times) {
				eligible = append(eligible, i)
			}
		}

		if len(eligible) == 0 {
			skills = append(skills, NoUpgrade)
			continue
		}

		idx, err := src.IntN(len(eligible))
		if err != nil {
			return nil, drawError(err, "skill")
		}
		pos := eligible[idx]
		counts[pos]++
		if isTalent[pos] {
			talents++
		}
		skills = append(skills, pos)
	}

	return skills, nil
}

func (g *Generator) activeCharacters(active []string) []entities.Character {
	if len(active) == 0 {
		return nil
	}

	selected := make(map[string]bool, len(active))
	for _, key := range active {
		selected[key] = true
	}

	var out []entities.Character
	for _, c := range g.catalog.Characters() {
		if selected[c.Key] {
			out = append(out, c)
		}
	}
	return out
}

func drawError(err error, what string) error {
	return errors.WrapWithCode(err, errors.CodeInternal, "failed to draw "+what)
}
