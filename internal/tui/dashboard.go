// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

const (
	msgRecipeCreated      = "Recipe created successfully!"
	msgRecipeUpdated      = "Recipe updated successfully!"
	msgRecipeDeleted      = "Recipe deleted successfully!"
	msgCreateRecipeFailed = "Failed to create recipe"
	msgUpdateRecipeFailed = "Failed to update recipe"
	msgDeleteRecipeFailed = "Failed to delete recipe"
)

type dashboardMode int

const (
	modeList dashboardMode = iota
	modeForm
	modeConfirm
)

// DashboardModel is the protected view where the signed-in user manages
// recipes. After a confirmed create, update or delete only the local copy of
// the page is changed; nothing is refetched.
type DashboardModel struct {
	ctx     context.Context
	recipes service.ClientRecipeService
	session models.Session

	query   models.RecipeQuery
	page    models.RecipesPage
	cursor  int
	loaded  bool
	loading bool
	seq     int
	errMsg  string

	mode      dashboardMode
	form      *recipeFormModel
	editingID int64
	pending   *models.Recipe
	saving    bool

	notice    notice
	noticeSeq int
}

func NewDashboardModel(ctx context.Context, recipes service.ClientRecipeService, pageSize int) *DashboardModel {
	return &DashboardModel{
		ctx:     ctx,
		recipes: recipes,
		query:   models.RecipeQuery{Page: 1, Limit: pageSize}.Normalized(),
	}
}

func (m *DashboardModel) Init() tea.Cmd {
	return nil
}

// activate is called by the router each time the guard lets the dashboard
// render.
func (m *DashboardModel) activate() tea.Cmd {
	if m.loaded || m.loading {
		return nil
	}
	return m.fetch()
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case recipesLoadedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		m.loaded = true
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.page = msg.page
		m.cursor = moveCursor(m.cursor, 0, len(m.page.Recipes))
		return m, nil
	case recipeSavedMsg:
		return m.onSaved(msg)
	case recipeDeletedMsg:
		return m.onDeleted(msg)
	case clearNoticeMsg:
		if msg.seq == m.noticeSeq {
			m.notice = notice{}
		}
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeForm:
			return m.updateForm(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		default:
			return m.updateList(msg)
		}
	}

	if m.mode == modeForm && m.form != nil {
		cmd, _ := m.form.update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *DashboardModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		m.cursor = moveCursor(m.cursor, -1, len(m.page.Recipes))
	case key.Matches(msg, keys.down):
		m.cursor = moveCursor(m.cursor, 1, len(m.page.Recipes))
	case key.Matches(msg, keys.prevPage):
		if m.query.Page > 1 {
			m.query.Page--
			m.cursor = 0
			return m, m.fetch()
		}
	case key.Matches(msg, keys.nextPage):
		if m.query.Page < m.totalPages() {
			m.query.Page++
			m.cursor = 0
			return m, m.fetch()
		}
	case key.Matches(msg, keys.reload):
		return m, m.fetch()
	case key.Matches(msg, keys.newItem):
		m.form = newRecipeForm(models.NewRecipeDraft(), false)
		m.editingID = 0
		m.mode = modeForm
		return m, m.form.setFocus(fieldName)
	case key.Matches(msg, keys.edit):
		r, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.form = newRecipeForm(models.DraftFromRecipe(r), true)
		m.editingID = r.ID
		m.mode = modeForm
		return m, m.form.setFocus(fieldName)
	case key.Matches(msg, keys.delete):
		r, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.pending = &r
		m.mode = modeConfirm
	case key.Matches(msg, keys.enter):
		r, ok := m.selected()
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg {
			return NavigateTo{Page: PageDetail, Payload: openRecipeMsg{id: r.ID}}
		}
	case key.Matches(msg, keys.esc):
		return m, navigateBack
	}

	return m, nil
}

func (m *DashboardModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.saving {
		return m, nil
	}

	cmd, action := m.form.update(msg)
	switch action {
	case formCancel:
		m.closeForm()
		return m, nil
	case formSubmit:
		m.saving = true
		draft := m.form.draft()
		if m.editingID == 0 {
			return m, createRecipe(m.ctx, m.recipes, draft)
		}
		return m, updateRecipe(m.ctx, m.recipes, m.editingID, draft)
	}
	return m, cmd
}

func (m *DashboardModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		if m.pending == nil || m.saving {
			return m, nil
		}
		m.saving = true
		return m, deleteRecipe(m.ctx, m.recipes, m.pending.ID)
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		if !m.saving {
			m.pending = nil
			m.mode = modeList
		}
	}
	return m, nil
}

func (m *DashboardModel) onSaved(msg recipeSavedMsg) (tea.Model, tea.Cmd) {
	m.saving = false
	if msg.err != nil {
		failed := msgUpdateRecipeFailed
		if msg.created {
			failed = msgCreateRecipeFailed
		}
		return m, m.setNotice(failed+": "+humanizeError(msg.err), true)
	}

	text := msgRecipeUpdated
	if msg.created {
		m.page.Prepend(msg.recipe)
		m.cursor = 0
		text = msgRecipeCreated
	} else {
		m.page.Replace(msg.recipe)
	}
	m.closeForm()
	return m, m.setNotice(text, false)
}

func (m *DashboardModel) onDeleted(msg recipeDeletedMsg) (tea.Model, tea.Cmd) {
	m.saving = false
	m.pending = nil
	m.mode = modeList
	if msg.err != nil {
		return m, m.setNotice(msgDeleteRecipeFailed+": "+humanizeError(msg.err), true)
	}

	m.page.Remove(msg.id)
	m.cursor = moveCursor(m.cursor, 0, len(m.page.Recipes))
	return m, m.setNotice(msgRecipeDeleted, false)
}

func (m *DashboardModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Recipe Dashboard"))
	b.WriteString("\n")
	if p := m.session.Profile; p != nil {
		fmt.Fprintf(&b, "Welcome back, %s! (%s)\n", p.FullName(), p.Email)
	}
	b.WriteString("\n")

	if n := m.notice.View(); n != "" {
		b.WriteString(n)
		b.WriteString("\n\n")
	}

	switch m.mode {
	case modeForm:
		b.WriteString(m.form.View())
		if m.saving {
			b.WriteString("\n\nSaving...")
		}
		return renderPage("DASHBOARD", b.String(), "tab: next field │ ctrl+s: save │ esc: cancel")
	case modeConfirm:
		b.WriteString(confirmModel{name: m.pending.Name}.View())
		return renderPage("DASHBOARD", b.String(), "y: delete │ n: keep")
	}

	switch {
	case m.loading:
		b.WriteString(msgLoadingRecipes)
	case m.loaded && len(m.page.Recipes) == 0 && m.errMsg == "":
		b.WriteString("No recipes yet.")
	default:
		b.WriteString(renderCardGrid(m.page.Recipes, m.cursor))
		if p := renderPagination(m.query.Page, m.totalPages()); p != "" {
			b.WriteString("\n\n")
			b.WriteString(p)
		}
	}

	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}

	return renderPage("DASHBOARD", b.String(), "n: + create recipe │ e: edit │ d: delete │ enter: open │ ←/→: page")
}

// setSession drops everything tied to the previous user when the session
// ends, so the next sign-in starts from a fresh page.
func (m *DashboardModel) setSession(s models.Session) {
	m.session = s
	if s.IsAuthenticated() {
		return
	}
	m.page = models.RecipesPage{}
	m.query.Page = 1
	m.cursor = 0
	m.loaded = false
	m.loading = false
	m.seq++
	m.errMsg = ""
	m.saving = false
	m.pending = nil
	m.notice = notice{}
	m.closeForm()
}

func (m *DashboardModel) capturesInput() bool {
	return m.mode != modeList
}

func (m *DashboardModel) selected() (models.Recipe, bool) {
	if m.cursor < 0 || m.cursor >= len(m.page.Recipes) {
		return models.Recipe{}, false
	}
	return m.page.Recipes[m.cursor], true
}

func (m *DashboardModel) closeForm() {
	m.form = nil
	m.editingID = 0
	m.mode = modeList
}

func (m *DashboardModel) setNotice(text string, isError bool) tea.Cmd {
	m.noticeSeq++
	m.notice = notice{text: text, isError: isError}
	return clearNoticeAfter(PageDashboard, m.noticeSeq)
}

func (m *DashboardModel) totalPages() int {
	return pageCount(m.page.Total, m.query.Limit)
}

func (m *DashboardModel) fetch() tea.Cmd {
	m.loading = true
	m.seq++
	return loadRecipes(m.ctx, m.recipes, PageDashboard, m.seq, m.query)
}
