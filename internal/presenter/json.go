package presenter

import (
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-loadout/internal/generator"
	"github.com/KirkDiggler/rpg-loadout/internal/orchestrators/roll"
	"github.com/KirkDiggler/rpg-loadout/internal/orchestrators/selection"
)

type jsonPresenter struct {
	imageBaseURL string
}

type buildJSON struct {
	ID        string      `json:"id"`
	ProfileID string      `json:"profile_id"`
	RolledAt  time.Time   `json:"rolled_at"`
	Seed      *uint64     `json:"seed,omitempty"`
	Character entryJSON   `json:"character"`
	Items     []itemJSON  `json:"items"`
	Skills    []skillJSON `json:"skills"`
}

type entryJSON struct {
	Key   string `json:"key"`
	Kind  string `json:"kind"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// imageDirs maps entity types to CDN folders; talents have no artwork
var imageDirs = map[string]string{
	"character": "heroes",
	"item":      "items",
	"ability":   "abilities",
}

type itemJSON struct {
	entryJSON
	Cost     int  `json:"cost"`
	Movement bool `json:"movement,omitempty"`
}

type skillJSON struct {
	Level int `json:"level"`
	// Index is the position in the character's ability list, -1 for none
	Index int        `json:"index"`
	Skill *entryJSON `json:"skill,omitempty"`
}

type selectionJSON struct {
	ProfileID string   `json:"profile_id"`
	Active    []string `json:"active"`
	Inactive  []string `json:"inactive"`
}

func (p *jsonPresenter) Builds(w io.Writer, builds []*roll.RolledBuild) error {
	out := make([]buildJSON, 0, len(builds))
	for _, b := range builds {
		out = append(out, p.build(b))
	}
	return encode(w, out)
}

func (p *jsonPresenter) build(rolled *roll.RolledBuild) buildJSON {
	b := rolled.Build
	character := b.Character()

	out := buildJSON{
		ID:        rolled.ID,
		ProfileID: rolled.ProfileID,
		RolledAt:  rolled.RolledAt,
		Seed:      rolled.Seed,
		Character: p.entry(&character, character.Name),
	}

	for i, it := range b.Items() {
		out.Items = append(out.Items, itemJSON{
			entryJSON: p.entry(&it, it.Name),
			Cost:      it.Cost,
			Movement:  i == 0,
		})
	}

	for i, idx := range b.Skills() {
		s := skillJSON{Level: i + 1, Index: idx}
		if idx != generator.NoUpgrade {
			if a, ok := b.SkillAt(i + 1); ok {
				entry := p.entry(&a, a.Name)
				s.Skill = &entry
			}
		}
		out.Skills = append(out.Skills, s)
	}

	return out
}

func (p *jsonPresenter) entry(e core.Entity, name string) entryJSON {
	out := entryJSON{Key: e.GetID(), Kind: e.GetType(), Name: name}
	if dir, ok := imageDirs[e.GetType()]; ok && p.imageBaseURL != "" {
		out.Image = strings.TrimSuffix(p.imageBaseURL, "/") + "/" + dir + "/" + e.GetID() + ".png"
	}
	return out
}

func (p *jsonPresenter) Selection(w io.Writer, view *selection.View) error {
	out := selectionJSON{
		ProfileID: view.ProfileID,
		Active:    []string{},
		Inactive:  []string{},
	}
	for _, c := range view.Characters {
		if c.Active {
			out.Active = append(out.Active, c.Character.Key)
		} else {
			out.Inactive = append(out.Inactive, c.Character.Key)
		}
	}
	return encode(w, out)
}

func (p *jsonPresenter) Catalog(w io.Writer, summary *CatalogSummary) error {
	return encode(w, summary)
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
