package catalogfeed

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/KirkDiggler/rpg-loadout/internal/catalog"
	"github.com/KirkDiggler/rpg-loadout/internal/entities"
	"github.com/KirkDiggler/rpg-loadout/internal/errors"
)

// datafeedRoles maps positions of a hero's role_levels array to role tags
var datafeedRoles = []string{
	"Carry", "Support", "Nuker", "Disabler", "Jungler",
	"Durable", "Escape", "Pusher", "Initiator",
}

// ParseDatafeed reads the list layout nested under result.data:
//
//	heroes[]        name (npc_dota_hero_<key>), name_english_loc, primary_attr (0-2),
//	                role_levels, and optionally abilities[] owned by the hero
//	itemabilities[] name (item_<key>), name_english_loc, item_cost, item_quality, components
//	abilities[]     name, name_english_loc, hero
func ParseDatafeed(raw []byte) (*catalog.Data, error) {
	if !gjson.ValidBytes(raw) {
		return nil, errors.InvalidArgument("datafeed is not valid JSON")
	}
	feed := gjson.GetBytes(raw, "result.data")
	if !feed.Exists() {
		return nil, errors.InvalidArgument("datafeed has no result.data section")
	}

	data := &catalog.Data{}

	for _, h := range feed.Get("heroes").Array() {
		key := heroKey(h.Get("name").String())
		attr, _ := entities.ParseAttribute(h.Get("primary_attr").String())
		data.Characters = append(data.Characters, entities.Character{
			Key:       key,
			Name:      firstString(h.Get("name_english_loc"), h.Get("name_loc"), h.Get("name")),
			Attribute: attr,
			Roles:     datafeedRoleTags(h.Get("role_levels")),
		})

		for _, a := range h.Get("abilities").Array() {
			data.Abilities = append(data.Abilities, datafeedAbility(a, key))
		}
	}

	for _, it := range feed.Get("itemabilities").Array() {
		name := it.Get("name").String()
		data.Items = append(data.Items, entities.Item{
			Key:        itemKey(name),
			Name:       firstString(it.Get("name_english_loc"), it.Get("name_loc"), it.Get("name")),
			Cost:       int(it.Get("item_cost").Int()),
			Quality:    datafeedQuality(it.Get("item_quality")),
			Components: itemKeys(stringList(it.Get("components"))),
		})
	}

	for _, a := range feed.Get("abilities").Array() {
		data.Abilities = append(data.Abilities, datafeedAbility(a, heroKey(a.Get("hero").String())))
	}

	return data, nil
}

func datafeedAbility(a gjson.Result, owner string) entities.Ability {
	key := a.Get("name").String()
	return entities.Ability{
		Key:    key,
		Name:   firstString(a.Get("name_english_loc"), a.Get("name_loc"), a.Get("name")),
		Owner:  owner,
		Talent: strings.HasPrefix(key, talentKeyPrefix),
	}
}

func datafeedRoleTags(levels gjson.Result) []string {
	var roles []string
	for i, level := range levels.Array() {
		if i < len(datafeedRoles) && level.Int() > 0 {
			roles = append(roles, datafeedRoles[i])
		}
	}
	return roles
}

// datafeedQuality accepts either a tier index or a tier name
func datafeedQuality(r gjson.Result) entities.Quality {
	s := r.String()
	if r.Type == gjson.Number {
		s = strconv.FormatInt(r.Int(), 10)
	}
	q, _ := entities.ParseQuality(s)
	return q
}
