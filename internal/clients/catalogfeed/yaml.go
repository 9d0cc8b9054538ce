package catalogfeed

import (
	"bytes"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-loadout/internal/catalog"
	"github.com/KirkDiggler/rpg-loadout/internal/entities"
	"github.com/KirkDiggler/rpg-loadout/internal/errors"
)

type yamlCatalog struct {
	Characters []yamlCharacter `yaml:"characters"`
	Items      []yamlItem      `yaml:"items"`
	Abilities  []yamlAbility   `yaml:"abilities"`
}

type yamlCharacter struct {
	Key       string   `yaml:"key"`
	Name      string   `yaml:"name"`
	Attribute string   `yaml:"attribute"`
	Roles     []string `yaml:"roles"`
}

type yamlItem struct {
	Key        string   `yaml:"key"`
	Name       string   `yaml:"name"`
	Cost       int      `yaml:"cost"`
	Quality    string   `yaml:"quality"`
	Components []string `yaml:"components"`
}

type yamlAbility struct {
	Key   string `yaml:"key"`
	Name  string `yaml:"name"`
	Owner string `yaml:"owner"`
}

// ParseYAML reads a hand-written catalog. Unknown fields, attributes and
// qualities are rejected so typos surface early.
func ParseYAML(raw []byte) (*catalog.Data, error) {
	var doc yamlCatalog

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid YAML catalog")
	}

	vb := errors.NewValidationBuilder()
	data := &catalog.Data{
		Characters: make([]entities.Character, 0, len(doc.Characters)),
		Items:      make([]entities.Item, 0, len(doc.Items)),
		Abilities:  make([]entities.Ability, 0, len(doc.Abilities)),
	}

	for _, c := range doc.Characters {
		attr, ok := entities.ParseAttribute(c.Attribute)
		if !ok && c.Attribute != "" {
			vb.Fieldf("characters", "%s has unknown attribute %q", c.Key, c.Attribute)
		}
		data.Characters = append(data.Characters, entities.Character{
			Key:       c.Key,
			Name:      c.Name,
			Attribute: attr,
			Roles:     c.Roles,
		})
	}

	for _, it := range doc.Items {
		quality, ok := entities.ParseQuality(it.Quality)
		if !ok && it.Quality != "" {
			vb.Fieldf("items", "%s has unknown quality %q", it.Key, it.Quality)
		}
		data.Items = append(data.Items, entities.Item{
			Key:        it.Key,
			Name:       it.Name,
			Cost:       it.Cost,
			Quality:    quality,
			Components: it.Components,
		})
	}

	for _, a := range doc.Abilities {
		data.Abilities = append(data.Abilities, entities.Ability{
			Key:   a.Key,
			Name:  a.Name,
			Owner: a.Owner,
		})
	}

	if err := vb.Build(); err != nil {
		return nil, errors.Wrap(err, "invalid YAML catalog")
	}
	return data, nil
}
