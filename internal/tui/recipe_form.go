package tui

import (
	"strings"

	"github.com/MKhiriev/go-recipe-book/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formField int

const (
	fieldName formField = iota
	fieldCuisine
	fieldDifficulty
	fieldServings
	fieldPrepTime
	fieldCookTime
	fieldCalories
	fieldImage
	fieldTags
	fieldIngredients
	fieldInstructions
	fieldCount
)

type formAction int

const (
	formContinue formAction = iota
	formSubmit
	formCancel
)

var inputFields = []struct {
	field       formField
	label       string
	placeholder string
}{
	{fieldName, "Recipe Name *", ""},
	{fieldCuisine, "Cuisine *", ""},
	{fieldServings, "Servings *", ""},
	{fieldPrepTime, "Prep Time (minutes) *", ""},
	{fieldCookTime, "Cook Time (minutes) *", ""},
	{fieldCalories, "Calories per Serving *", ""},
	{fieldImage, "Image URL", "https://example.com/image.jpg"},
	{fieldTags, "Tags (comma-separated)", "e.g., vegetarian, quick, healthy"},
}

// recipeFormModel edits a [models.RecipeDraft]. Numbers stay raw text until
// the draft is submitted.
type recipeFormModel struct {
	editing    bool
	inputs     map[formField]*textinput.Model
	difficulty models.Difficulty

	ingredients  textarea.Model
	instructions textarea.Model
	focus        formField
}

func newRecipeForm(draft models.RecipeDraft, editing bool) *recipeFormModel {
	values := map[formField]string{
		fieldName:     draft.Name,
		fieldCuisine:  draft.Cuisine,
		fieldServings: draft.Servings,
		fieldPrepTime: draft.PrepTimeMinutes,
		fieldCookTime: draft.CookTimeMinutes,
		fieldCalories: draft.CaloriesPerServing,
		fieldImage:    draft.Image,
		fieldTags:     draft.Tags,
	}

	m := &recipeFormModel{
		editing:    editing,
		inputs:     make(map[formField]*textinput.Model, len(inputFields)),
		difficulty: draft.Difficulty,
	}
	if !m.difficulty.IsValid() {
		m.difficulty = models.DifficultyEasy
	}

	for _, f := range inputFields {
		in := textinput.New()
		in.Width = 48
		in.Placeholder = f.placeholder
		in.SetValue(values[f.field])
		m.inputs[f.field] = &in
	}

	m.ingredients = newFormTextarea("2 cups flour\n1 cup sugar\n3 eggs", draft.Ingredients)
	m.instructions = newFormTextarea("Preheat oven to 350°F\nMix dry ingredients\nAdd wet ingredients", draft.Instructions)

	m.setFocus(fieldName)
	return m
}

func newFormTextarea(placeholder, value string) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.SetWidth(50)
	ta.SetHeight(4)
	ta.SetValue(value)
	return ta
}

func (m *recipeFormModel) draft() models.RecipeDraft {
	return models.RecipeDraft{
		Name:               m.inputs[fieldName].Value(),
		Cuisine:            m.inputs[fieldCuisine].Value(),
		Difficulty:         m.difficulty,
		PrepTimeMinutes:    m.inputs[fieldPrepTime].Value(),
		CookTimeMinutes:    m.inputs[fieldCookTime].Value(),
		Servings:           m.inputs[fieldServings].Value(),
		CaloriesPerServing: m.inputs[fieldCalories].Value(),
		Image:              m.inputs[fieldImage].Value(),
		Tags:               m.inputs[fieldTags].Value(),
		Ingredients:        m.ingredients.Value(),
		Instructions:       m.instructions.Value(),
	}
}

func (m *recipeFormModel) update(msg tea.Msg) (tea.Cmd, formAction) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return nil, formCancel
		case key.Matches(keyMsg, keys.save):
			return nil, formSubmit
		case key.Matches(keyMsg, keys.tab):
			return m.setFocus(m.focus + 1), formContinue
		case key.Matches(keyMsg, keys.backtab):
			return m.setFocus(m.focus - 1), formContinue
		}

		if m.focus == fieldDifficulty {
			switch keyMsg.String() {
			case "left", "h":
				m.difficulty = cycleDifficulty(m.difficulty, -1)
			case "right", "l", " ":
				m.difficulty = cycleDifficulty(m.difficulty, 1)
			case "enter":
				return m.setFocus(m.focus + 1), formContinue
			}
			return nil, formContinue
		}

		if _, ok := m.inputs[m.focus]; ok && key.Matches(keyMsg, keys.enter) {
			return m.setFocus(m.focus + 1), formContinue
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldIngredients:
		m.ingredients, cmd = m.ingredients.Update(msg)
	case fieldInstructions:
		m.instructions, cmd = m.instructions.Update(msg)
	default:
		if in, ok := m.inputs[m.focus]; ok {
			*in, cmd = in.Update(msg)
		}
	}
	return cmd, formContinue
}

func (m *recipeFormModel) setFocus(f formField) tea.Cmd {
	if in, ok := m.inputs[m.focus]; ok {
		in.Blur()
	}
	m.ingredients.Blur()
	m.instructions.Blur()

	m.focus = (f + fieldCount) % fieldCount

	switch m.focus {
	case fieldIngredients:
		return m.ingredients.Focus()
	case fieldInstructions:
		return m.instructions.Focus()
	case fieldDifficulty:
		return nil
	default:
		return m.inputs[m.focus].Focus()
	}
}

func (m *recipeFormModel) View() string {
	var b strings.Builder

	title := "Create New Recipe"
	submit := "Create Recipe"
	if m.editing {
		title = "Edit Recipe"
		submit = "Update Recipe"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	for _, f := range inputFields[:2] {
		m.writeInput(&b, f.field, f.label)
	}

	b.WriteString(m.marker(fieldDifficulty))
	b.WriteString("Difficulty *: ")
	for _, d := range models.Difficulties {
		if d == m.difficulty {
			b.WriteString("(" + string(d) + ") ")
		} else {
			b.WriteString(" " + string(d) + "  ")
		}
	}
	b.WriteString("\n")

	for _, f := range inputFields[2:] {
		m.writeInput(&b, f.field, f.label)
	}

	b.WriteString("\n")
	b.WriteString(m.marker(fieldIngredients))
	b.WriteString("Ingredients (one per line) *\n")
	b.WriteString(m.ingredients.View())
	b.WriteString("\n")
	b.WriteString(m.marker(fieldInstructions))
	b.WriteString("Instructions (one per line) *\n")
	b.WriteString(m.instructions.View())
	b.WriteString("\n\n")
	b.WriteString("[esc] Cancel   [ctrl+s] " + submit)

	return b.String()
}

func (m *recipeFormModel) writeInput(b *strings.Builder, f formField, label string) {
	b.WriteString(m.marker(f))
	b.WriteString(label)
	b.WriteString(": [")
	b.WriteString(m.inputs[f].View())
	b.WriteString("]\n")
}

func (m *recipeFormModel) marker(f formField) string {
	if m.focus == f {
		return "> "
	}
	return "  "
}

func cycleDifficulty(d models.Difficulty, delta int) models.Difficulty {
	n := len(models.Difficulties)
	for i, known := range models.Difficulties {
		if known == d {
			return models.Difficulties[(i+delta+n)%n]
		}
	}
	return models.DifficultyEasy
}
