package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-recipe-book/internal/service"
	"github.com/MKhiriev/go-recipe-book/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// DetailModel shows one recipe in full.
type DetailModel struct {
	ctx     context.Context
	recipes service.ClientRecipeService

	recipe  *models.Recipe
	loading bool
	seq     int
	errMsg  string
	status  string
}

func NewDetailModel(ctx context.Context, recipes service.ClientRecipeService) *DetailModel {
	return &DetailModel{ctx: ctx, recipes: recipes}
}

func (m *DetailModel) Init() tea.Cmd {
	return nil
}

func (m *DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openRecipeMsg:
		m.recipe = nil
		m.errMsg = ""
		m.status = ""
		m.loading = true
		m.seq++
		return m, loadRecipe(m.ctx, m.recipes, m.seq, msg.id)
	case recipeLoadedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		recipe := msg.recipe
		m.recipe = &recipe
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.status = "Copy failed: " + msg.err.Error()
		} else {
			m.status = "Ingredients copied to clipboard"
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigateBack
		case key.Matches(msg, keys.copy):
			if m.recipe == nil || len(m.recipe.Ingredients) == 0 {
				return m, nil
			}
			return m, copyLines(m.recipe.Ingredients)
		}
	}

	return m, nil
}

func (m *DetailModel) View() string {
	const hotKeys = "c: copy ingredients │ esc: back"

	switch {
	case m.loading:
		return renderPage("RECIPE", "Loading...", hotKeys)
	case m.recipe == nil:
		return renderPage("RECIPE", errorStyle.Render("Error: "+m.errMsg), "esc: back")
	}

	r := m.recipe
	var b strings.Builder
	b.WriteString(titleStyle.Render(r.Name))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s · %s\n", r.Cuisine, r.Difficulty)
	if r.Rating > 0 {
		fmt.Fprintf(&b, "Rating: %.1f (%d reviews)\n", r.Rating, r.ReviewCount)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Prep:     %d min\n", r.PrepTimeMinutes)
	fmt.Fprintf(&b, "Cook:     %d min\n", r.CookTimeMinutes)
	fmt.Fprintf(&b, "Total:    %d min\n", r.TotalTimeMinutes())
	fmt.Fprintf(&b, "Servings: %d\n", r.Servings)
	fmt.Fprintf(&b, "Calories: %d per serving\n", r.CaloriesPerServing)
	if len(r.Tags) > 0 {
		b.WriteString("Tags:     ")
		b.WriteString(tagStyle.Render(strings.Join(r.Tags, ", ")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Ingredients"))
	b.WriteString("\n")
	for _, ing := range r.Ingredients {
		b.WriteString("• ")
		b.WriteString(ing)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Instructions"))
	b.WriteString("\n")
	for i, step := range r.Instructions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
	}

	return renderPage("RECIPE", strings.TrimRight(b.String(), "\n"), hotKeys)
}
