// Package rules answers the skill progression questions of a build: which
// ability is a finisher move, which is a talent, and whether an ability may
// be upgraded at a given level.
package rules

import (
	"strings"
	"sync"

	"github.com/KirkDiggler/rpg-loadout/internal/entities"
	"github.com/KirkDiggler/rpg-loadout/internal/errors"
)

//go:generate mockgen -destination=mock/mock_index.go -package=rulesmock github.com/KirkDiggler/rpg-loadout/internal/rules AbilityIndex

// AbilityIndex is the catalog view the rules need
type AbilityIndex interface {
	Ability(key string) (entities.Ability, bool)
	CharacterAbilities(characterKey string) []entities.Ability
}

// Class is the progression class of an ability
type Class int

// Ability classes
const (
	ClassOrdinary Class = iota
	ClassTalent
	ClassFinisher
)

// String returns the class name
func (c Class) String() string {
	switch c {
	case ClassTalent:
		return "talent"
	case ClassFinisher:
		return "finisher"
	default:
		return "ordinary"
	}
}

// Engine evaluates the skill rules. All methods are pure and safe for
// concurrent use; unknown abilities or characters answer false.
type Engine struct {
	cfg     *Config
	index   AbilityIndex
	ignored map[string]bool

	// finishers caches owner key -> finisher ability key, "" for none. The
	// index is immutable, so entries never go stale.
	finishers sync.Map
}

// New creates a rules engine over the catalog index
func New(cfg *Config, index AbilityIndex) (*Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("rules config cannot be nil")
	}
	if index == nil {
		return nil, errors.InvalidArgument("ability index cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid rules config")
	}

	ignored := make(map[string]bool, len(cfg.IgnoredAbilities))
	for _, key := range cfg.IgnoredAbilities {
		ignored[key] = true
	}

	return &Engine{
		cfg:     cfg,
		index:   index,
		ignored: ignored,
	}, nil
}

// IsTalent reports whether the ability is one of the talent slots
func (e *Engine) IsTalent(ability entities.Ability) bool {
	return strings.HasPrefix(ability.Key, e.cfg.TalentPrefix)
}

// IsIgnored reports whether the ability is excluded from every build
func (e *Engine) IsIgnored(ability entities.Ability) bool {
	return e.ignored[ability.Key]
}

// IsFinisherMove reports whether the ability is its owner's finisher. A
// configured override decides first; otherwise the finisher is the last entry
// of the owner's ability list, provided that list is long enough to be trusted.
func (e *Engine) IsFinisherMove(ability entities.Ability) bool {
	stored, ok := e.index.Ability(ability.Key)
	if !ok || stored.Owner == "" {
		return false
	}

	finisher := e.finisherOf(stored.Owner)
	return finisher != "" && stored.Key == finisher
}

func (e *Engine) finisherOf(owner string) string {
	if cached, ok := e.finishers.Load(owner); ok {
		return cached.(string)
	}

	finisher, ok := e.cfg.FinisherOverrides[owner]
	if !ok {
		list := e.index.CharacterAbilities(owner)
		if len(list) > e.cfg.FinisherMinAbilities {
			finisher = list[len(list)-1].Key
		}
	}

	e.finishers.Store(owner, finisher)
	return finisher
}

// ClassOf returns the progression class of the ability
func (e *Engine) ClassOf(ability entities.Ability) Class {
	switch {
	case e.IsFinisherMove(ability):
		return ClassFinisher
	case e.IsTalent(ability):
		return ClassTalent
	default:
		return ClassOrdinary
	}
}

// MaxCount returns how many times the ability may be upgraded in total
func (e *Engine) MaxCount(ability entities.Ability) int {
	switch e.ClassOf(ability) {
	case ClassFinisher:
		return e.cfg.FinisherMax
	case ClassTalent:
		return e.cfg.TalentMax
	default:
		limit, best := e.cfg.AbilityMax, ""
		for prefix, extended := range e.cfg.ExtendedMax {
			if len(prefix) > len(best) && e.hasPrefix(ability, prefix) {
				limit, best = extended, prefix
			}
		}
		return limit
	}
}

// RequiredLevel returns the level at which the ability's next upgrade opens
// after timesLearned upgrades. ok is false when no further milestone exists.
func (e *Engine) RequiredLevel(ability entities.Ability, timesLearned int) (int, bool) {
	if timesLearned < 0 {
		return 0, false
	}

	switch e.ClassOf(ability) {
	case ClassFinisher:
		levels := e.finisherLevels(ability)
		if timesLearned >= len(levels) {
			return 0, false
		}
		return levels[timesLearned], true
	case ClassTalent:
		return e.cfg.TalentFirstLevel + timesLearned*e.cfg.TalentInterval, true
	default:
		return e.cfg.AbilityFirstLevel + timesLearned*e.cfg.AbilityInterval, true
	}
}

// CanLearnNow reports whether the ability may take its next upgrade at
// currentLevel having been upgraded timesLearned times already. Abilities that
// are neither talent slots nor catalog entries are never learnable.
func (e *Engine) CanLearnNow(ability entities.Ability, currentLevel, timesLearned int) bool {
	if e.IsIgnored(ability) {
		return false
	}
	if !e.IsTalent(ability) {
		if _, ok := e.index.Ability(ability.Key); !ok {
			return false
		}
	}

	required, ok := e.RequiredLevel(ability, timesLearned)
	if !ok {
		return false
	}
	return currentLevel >= required && timesLearned < e.MaxCount(ability)
}

// CharacterAbilities exposes the ordered ability list the rules reason about
func (e *Engine) CharacterAbilities(characterKey string) []entities.Ability {
	return e.index.CharacterAbilities(characterKey)
}

func (e *Engine) finisherLevels(ability entities.Ability) []int {
	for _, prefix := range e.cfg.EarlyFinisherPrefixes {
		if e.hasPrefix(ability, prefix) {
			return e.cfg.EarlyFinisherLevels
		}
	}
	return e.cfg.FinisherLevels
}

// hasPrefix matches the prefix against the owning character key, falling back
// to the ability key for abilities the catalog could not attribute.
func (e *Engine) hasPrefix(ability entities.Ability, prefix string) bool {
	owner := ability.Owner
	if stored, ok := e.index.Ability(ability.Key); ok && stored.Owner != "" {
		owner = stored.Owner
	}
	return strings.HasPrefix(owner, prefix) || strings.HasPrefix(ability.Key, prefix)
}
