// Package catalog provides the immutable lookup structure over characters,
// items and abilities that the build engine reads from.
package catalog

import (
	"strings"

	"github.com/KirkDiggler/rpg-loadout/internal/entities"
	"github.com/KirkDiggler/rpg-loadout/internal/errors"
)

// Data is what a catalog provider supplies. Order is significant: it is the
// order characters are drawn from and the order abilities are listed in.
type Data struct {
	Characters []entities.Character
	Items      []entities.Item
	Abilities  []entities.Ability
}

// Store is an immutable, indexed view over catalog Data. It is safe for
// concurrent readers.
type Store struct {
	characters []entities.Character
	items      []entities.Item
	abilities  []entities.Ability

	characterIndex map[string]int
	itemIndex      map[string]int
	abilityIndex   map[string]int

	// character key -> ability positions in catalog order
	owned map[string][]int
	// item keys used as a component by any other item
	componentOf map[string]bool
	orphans     []string
}

// New validates data and builds the indexes. Ability owners are resolved here
// once; later lookups never scan keys.
func New(data *Data) (*Store, error) {
	if data == nil {
		return nil, errors.InvalidArgument("catalog data cannot be nil")
	}

	s := &Store{
		characters:     make([]entities.Character, len(data.Characters)),
		items:          make([]entities.Item, len(data.Items)),
		abilities:      make([]entities.Ability, 0, len(data.Abilities)),
		characterIndex: make(map[string]int, len(data.Characters)),
		itemIndex:      make(map[string]int, len(data.Items)),
		abilityIndex:   make(map[string]int, len(data.Abilities)),
		owned:          make(map[string][]int, len(data.Characters)),
		componentOf:    make(map[string]bool),
	}

	vb := errors.NewValidationBuilder()

	for i, c := range data.Characters {
		if c.Key == "" {
			vb.Fieldf("Characters", "entry %d has an empty key", i)
			continue
		}
		if _, dup := s.characterIndex[c.Key]; dup {
			vb.Fieldf("Characters", "duplicate key %q", c.Key)
			continue
		}
		s.characters[i] = cloneCharacter(c)
		s.characterIndex[c.Key] = i
	}

	for i, it := range data.Items {
		if it.Key == "" {
			vb.Fieldf("Items", "entry %d has an empty key", i)
			continue
		}
		if _, dup := s.itemIndex[it.Key]; dup {
			vb.Fieldf("Items", "duplicate key %q", it.Key)
			continue
		}
		s.items[i] = cloneItem(it)
		s.itemIndex[it.Key] = i
		for _, component := range it.Components {
			if component != it.Key {
				s.componentOf[component] = true
			}
		}
	}

	if err := vb.Build(); err != nil {
		return nil, errors.Wrap(err, "invalid catalog")
	}

	resolver := newOwnerResolver(data.Characters)

	for i, a := range data.Abilities {
		if a.Key == "" {
			vb.Fieldf("Abilities", "entry %d has an empty key", i)
			continue
		}
		// Talent slots are synthesized per character, catalog copies are ignored.
		if a.Talent || a.Key == entities.TalentLeft || a.Key == entities.TalentRight {
			continue
		}
		if _, dup := s.abilityIndex[a.Key]; dup {
			vb.Fieldf("Abilities", "duplicate key %q", a.Key)
			continue
		}

		a.Owner = resolver.resolve(a)
		pos := len(s.abilities)
		s.abilities = append(s.abilities, a)
		s.abilityIndex[a.Key] = pos

		if a.Owner == "" {
			s.orphans = append(s.orphans, a.Key)
			continue
		}
		s.owned[a.Owner] = append(s.owned[a.Owner], pos)
	}

	if err := vb.Build(); err != nil {
		return nil, errors.Wrap(err, "invalid catalog")
	}

	return s, nil
}

// Characters returns every character in catalog order
func (s *Store) Characters() []entities.Character {
	out := make([]entities.Character, len(s.characters))
	for i, c := range s.characters {
		out[i] = cloneCharacter(c)
	}
	return out
}

// Items returns every item in catalog order
func (s *Store) Items() []entities.Item {
	out := make([]entities.Item, len(s.items))
	for i, it := range s.items {
		out[i] = cloneItem(it)
	}
	return out
}

// Abilities returns every non-talent ability in catalog order, owners resolved
func (s *Store) Abilities() []entities.Ability {
	out := make([]entities.Ability, len(s.abilities))
	copy(out, s.abilities)
	return out
}

// Character looks up a character by key
func (s *Store) Character(key string) (entities.Character, bool) {
	i, ok := s.characterIndex[key]
	if !ok {
		return entities.Character{}, false
	}
	return cloneCharacter(s.characters[i]), true
}

// Item looks up an item by key
func (s *Store) Item(key string) (entities.Item, bool) {
	i, ok := s.itemIndex[key]
	if !ok {
		return entities.Item{}, false
	}
	return cloneItem(s.items[i]), true
}

// Ability looks up a catalog ability by key. Talent slots are not catalog
// abilities and are never found here.
func (s *Store) Ability(key string) (entities.Ability, bool) {
	i, ok := s.abilityIndex[key]
	if !ok {
		return entities.Ability{}, false
	}
	return s.abilities[i], true
}

// CharacterAbilities returns the character's ability list: the two talent
// slots followed by its owned abilities in catalog order. Unknown characters
// yield nil.
func (s *Store) CharacterAbilities(characterKey string) []entities.Ability {
	if _, ok := s.characterIndex[characterKey]; !ok {
		return nil
	}

	positions := s.owned[characterKey]
	out := make([]entities.Ability, 0, len(positions)+2)
	out = append(out, entities.TalentSlots(characterKey)...)
	for _, pos := range positions {
		out = append(out, s.abilities[pos])
	}
	return out
}

// IsComponent reports whether the item key is a component of any other item
func (s *Store) IsComponent(itemKey string) bool {
	return s.componentOf[itemKey]
}

// Orphans lists ability keys whose owner could not be resolved
func (s *Store) Orphans() []string {
	out := make([]string, len(s.orphans))
	copy(out, s.orphans)
	return out
}

func cloneCharacter(c entities.Character) entities.Character {
	if c.Roles != nil {
		c.Roles = append([]string(nil), c.Roles...)
	}
	return c
}

func cloneItem(it entities.Item) entities.Item {
	if it.Components != nil {
		it.Components = append([]string(nil), it.Components...)
	}
	return it
}

// ownerResolver maps an ability to its owning character key. Catalog keys are
// not always consistent about underscores, so comparisons also run on an
// underscore-free form.
type ownerResolver struct {
	exact      map[string]string
	normalized map[string]string
	keys       []string
}

func newOwnerResolver(characters []entities.Character) *ownerResolver {
	r := &ownerResolver{
		exact:      make(map[string]string, len(characters)),
		normalized: make(map[string]string, len(characters)),
	}
	for _, c := range characters {
		if c.Key == "" {
			continue
		}
		r.exact[c.Key] = c.Key
		if _, taken := r.normalized[normalizeKey(c.Key)]; !taken {
			r.normalized[normalizeKey(c.Key)] = c.Key
		}
		r.keys = append(r.keys, c.Key)
	}
	return r
}

func (r *ownerResolver) resolve(a entities.Ability) string {
	if a.Owner != "" {
		if key, ok := r.exact[a.Owner]; ok {
			return key
		}
		return r.normalized[normalizeKey(a.Owner)]
	}

	// No explicit owner: the longest character key prefixing the ability key wins.
	best := ""
	for _, key := range r.keys {
		if len(key) <= len(best) {
			continue
		}
		if strings.HasPrefix(a.Key, key) || strings.HasPrefix(a.Key, strings.Replace(key, "_", "", 1)) {
			best = key
		}
	}
	return best
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.ReplaceAll(key, "_", ""))
}
