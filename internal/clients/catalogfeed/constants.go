package catalogfeed

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/KirkDiggler/rpg-loadout/internal/catalog"
	"github.com/KirkDiggler/rpg-loadout/internal/entities"
	"github.com/KirkDiggler/rpg-loadout/internal/errors"
)

const (
	heroNamePrefix  = "npc_dota_hero_"
	itemNamePrefix  = "item_"
	talentKeyPrefix = "special_bonus"
)

// ParseConstants reads the keyed-object layout:
//
//	{"heroes": {"axe": {"dname": "Axe", "primary_attr": "str", "roles": [...]}},
//	 "items": {"blink": {"dname": "Blink Dagger", "qual": "common", "cost": 2250, "components": [...]}},
//	 "abilities": {"axe_berserkers_call": {"dname": "Berserker's Call", "hero": "axe"}}}
//
// Object order is catalog order.
func ParseConstants(raw []byte) (*catalog.Data, error) {
	if !gjson.ValidBytes(raw) {
		return nil, errors.InvalidArgument("constants feed is not valid JSON")
	}
	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return nil, errors.InvalidArgument("constants feed must be a JSON object")
	}

	data := &catalog.Data{}

	root.Get("heroes").ForEach(func(k, v gjson.Result) bool {
		key := heroKey(firstString(v.Get("name"), k))
		attr, _ := entities.ParseAttribute(v.Get("primary_attr").String())
		data.Characters = append(data.Characters, entities.Character{
			Key:       key,
			Name:      firstString(v.Get("dname"), v.Get("localized_name"), k),
			Attribute: attr,
			Roles:     stringList(v.Get("roles")),
		})
		return true
	})

	root.Get("items").ForEach(func(k, v gjson.Result) bool {
		quality, _ := entities.ParseQuality(v.Get("qual").String())
		data.Items = append(data.Items, entities.Item{
			Key:        itemKey(k.String()),
			Name:       firstString(v.Get("dname"), k),
			Cost:       int(v.Get("cost").Int()),
			Quality:    quality,
			Components: itemKeys(stringList(v.Get("components"))),
		})
		return true
	})

	root.Get("abilities").ForEach(func(k, v gjson.Result) bool {
		key := k.String()
		data.Abilities = append(data.Abilities, entities.Ability{
			Key:    key,
			Name:   firstString(v.Get("dname"), k),
			Owner:  heroKey(firstString(v.Get("hurl"), v.Get("hero"))),
			Talent: strings.HasPrefix(key, talentKeyPrefix),
		})
		return true
	})

	return data, nil
}

func heroKey(name string) string {
	return strings.TrimPrefix(name, heroNamePrefix)
}

func itemKey(name string) string {
	return strings.TrimPrefix(name, itemNamePrefix)
}

func itemKeys(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = itemKey(n)
	}
	return out
}

// firstString returns the first non-empty string among the results
func firstString(results ...gjson.Result) string {
	for _, r := range results {
		if s := r.String(); s != "" {
			return s
		}
	}
	return ""
}

func stringList(r gjson.Result) []string {
	var out []string
	for _, v := range r.Array() {
		if s := v.String(); s != "" {
			out = append(out, s)
		}
	}
	return out
}
