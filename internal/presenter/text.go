package presenter

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/KirkDiggler/rpg-loadout/internal/generator"
	"github.com/KirkDiggler/rpg-loadout/internal/orchestrators/roll"
	"github.com/KirkDiggler/rpg-loadout/internal/orchestrators/selection"
)

// skillColumns is how many levels share a row of the skill grid
const skillColumns = 5

type textPresenter struct{}

func (p *textPresenter) Builds(w io.Writer, builds []*roll.RolledBuild) error {
	for i, b := range builds {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, p.build(b)); err != nil {
			return err
		}
	}
	return nil
}

func (p *textPresenter) build(rolled *roll.RolledBuild) string {
	b := rolled.Build
	character := b.Character()

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(character.Name))
	if character.Attribute != "" {
		sb.WriteString(" " + mutedStyle.Render(string(character.Attribute)))
	}
	sb.WriteString("\n")
	sb.WriteString(mutedStyle.Render(rolled.ID))
	if rolled.Seed != nil {
		sb.WriteString(mutedStyle.Render(fmt.Sprintf("  seed %d", *rolled.Seed)))
	}
	sb.WriteString("\n\n")

	sb.WriteString(headerStyle.Render("Items") + "\n")
	for i, it := range b.Items() {
		marker := "  "
		if i == 0 {
			marker = goldStyle.Render("» ")
		}
		sb.WriteString(fmt.Sprintf("%s%s %s\n", marker, it.Name, mutedStyle.Render(fmt.Sprintf("(%d)", it.Cost))))
	}
	sb.WriteString("\n")

	sb.WriteString(headerStyle.Render("Skills") + "\n")
	sb.WriteString(p.skillGrid(b))

	return panelStyle.Render(sb.String())
}

// skillGrid lays levels out in rows of skillColumns, "-" marking no upgrade
func (p *textPresenter) skillGrid(b *generator.Build) string {
	skills := b.Skills()

	cells := make([]string, len(skills))
	width := 0
	for i := range skills {
		name := "-"
		if a, ok := b.SkillAt(i + 1); ok {
			name = a.Name
		}
		cells[i] = fmt.Sprintf("%2d %s", i+1, name)
		width = max(width, lipgloss.Width(cells[i]))
	}

	cell := lipgloss.NewStyle().Width(width + 2)
	var rows []string
	for start := 0; start < len(cells); start += skillColumns {
		end := min(start+skillColumns, len(cells))
		row := make([]string, 0, end-start)
		for _, c := range cells[start:end] {
			row = append(row, cell.Render(c))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (p *textPresenter) Selection(w io.Writer, view *selection.View) error {
	active := 0
	var sb strings.Builder
	for _, c := range view.Characters {
		mark := mutedStyle.Render("[ ]")
		if c.Active {
			mark = goodStyle.Render("[x]")
			active++
		}
		sb.WriteString(fmt.Sprintf("%s %-24s %s\n", mark, c.Character.Key, mutedStyle.Render(string(c.Character.Attribute))))
	}

	header := labelValue("Profile", view.ProfileID) + "  " +
		labelValue("Active", fmt.Sprintf("%d/%d", active, len(view.Characters)))

	_, err := fmt.Fprintln(w, header+"\n"+sb.String())
	return err
}

func (p *textPresenter) Catalog(w io.Writer, summary *CatalogSummary) error {
	lines := []string{
		titleStyle.Render("Catalog"),
		labelValue("Characters", summary.Characters),
		labelValue("Items", summary.Items),
		labelValue("Abilities", summary.Abilities),
		labelValue("Movement items", strings.Join(summary.MovementItems, ", ")),
		labelValue("Highlight pool", summary.HighlightPool),
	}
	if len(summary.Orphans) > 0 {
		lines = append(lines, labelValue("Unowned abilities", strings.Join(summary.Orphans, ", ")))
	}

	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}
