package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-recipe-book/models"
	"github.com/charmbracelet/lipgloss"
)

const (
	cardColumns  = 3
	cardMaxTags  = 3
	cardTextSize = cardWidth - 4
)

func renderCard(r models.Recipe, active bool) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fitText(r.Name, cardTextSize)))
	b.WriteString("\n")
	b.WriteString(fitText(fmt.Sprintf("%s · %s", r.Cuisine, r.Difficulty), cardTextSize))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Prep: %d min  Cook: %d min\n", r.PrepTimeMinutes, r.CookTimeMinutes)
	fmt.Fprintf(&b, "%d servings  %d cal", r.Servings, r.CaloriesPerServing)

	if tags := cardTags(r.Tags); tags != "" {
		b.WriteString("\n")
		b.WriteString(tagStyle.Render(fitText(tags, cardTextSize)))
	}

	if active {
		return activeCardStyle.Render(b.String())
	}
	return cardStyle.Render(b.String())
}

func cardTags(tags []string) string {
	shown := tags[:min(len(tags), cardMaxTags)]
	out := make([]string, 0, len(shown))
	for _, t := range shown {
		out = append(out, "#"+t)
	}
	return strings.Join(out, " ")
}

// renderCardGrid lays recipes out in rows of [cardColumns]. cursor < 0 means
// no card is highlighted.
func renderCardGrid(recipes []models.Recipe, cursor int) string {
	rows := make([]string, 0, len(recipes)/cardColumns+1)
	for start := 0; start < len(recipes); start += cardColumns {
		end := min(start+cardColumns, len(recipes))
		cards := make([]string, 0, cardColumns)
		for i := start; i < end; i++ {
			cards = append(cards, renderCard(recipes[i], i == cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
