// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-recipe-book/internal/service"
	"github.com/MKhiriev/go-recipe-book/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	msgNoRecipes      = "No recipes found. Try a different search term."
	msgLoadingRecipes = "Loading recipes..."
)

// CatalogModel is the public landing view: hero, search and sort controls and
// a paged grid of recipe cards.
type CatalogModel struct {
	ctx     context.Context
	recipes service.ClientRecipeService
	session models.Session

	query     models.RecipeQuery
	search    textinput.Model
	searching bool

	page    models.RecipesPage
	cursor  int
	loaded  bool
	loading bool
	seq     int
	errMsg  string
}

// NewCatalogModel creates the catalog on page 1 with the default ordering.
func NewCatalogModel(ctx context.Context, recipes service.ClientRecipeService, pageSize int) *CatalogModel {
	search := textinput.New()
	search.Placeholder = "Search recipes..."
	search.CharLimit = 64
	search.Width = 30

	return &CatalogModel{
		ctx:     ctx,
		recipes: recipes,
		search:  search,
		query: models.RecipeQuery{
			Page:   1,
			Limit:  pageSize,
			SortBy: models.DefaultSortKey,
			Order:  models.DefaultSortOrder,
		}.Normalized(),
	}
}

// Init fetches the first page the first time the catalog is opened.
func (m *CatalogModel) Init() tea.Cmd {
	if m.loaded || m.loading {
		return nil
	}
	return m.fetch()
}

func (m *CatalogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *CatalogModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.enter):
		m.stopSearching()
		m.query.Search = strings.TrimSpace(m.search.Value())
		m.query.Page = 1
		m.cursor = 0
		return m, m.fetch()
	case key.Matches(msg, keys.esc):
		m.stopSearching()
		m.search.SetValue(m.query.Search)
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m *CatalogModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.search):
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(msg, keys.clear):
		if m.query.Search == "" {
			return m, nil
		}
		m.search.SetValue("")
		m.query.Search = ""
		m.query.Page = 1
		m.cursor = 0
		return m, m.fetch()
	case key.Matches(msg, keys.sortKey):
		m.query.SortBy = nextSortKey(m.query.SortBy)
		return m, m.fetch()
	case key.Matches(msg, keys.sortOrder):
		m.query.Order = m.query.Order.Toggle()
		return m, m.fetch()
	case key.Matches(msg, keys.prevPage):
		if m.query.Page <= 1 {
			return m, nil
		}
		m.query.Page--
		m.cursor = 0
		return m, m.fetch()
	case key.Matches(msg, keys.nextPage):
		if m.query.Page >= m.totalPages() {
			return m, nil
		}
		m.query.Page++
		m.cursor = 0
		return m, m.fetch()
	case key.Matches(msg, keys.up):
		m.cursor = moveCursor(m.cursor, -1, len(m.page.Recipes))
	case key.Matches(msg, keys.down):
		m.cursor = moveCursor(m.cursor, 1, len(m.page.Recipes))
	case key.Matches(msg, keys.reload):
		return m, m.fetch()
	case key.Matches(msg, keys.hero):
		if m.session.IsAuthenticated() {
			return m, navigate(PageDashboard)
		}
		return m, navigate(PageLogin)
	case key.Matches(msg, keys.enter):
		if len(m.page.Recipes) == 0 {
			return m, nil
		}
		id := m.page.Recipes[m.cursor].ID
		return m, func() tea.Msg {
			return NavigateTo{Page: PageDetail, Payload: openRecipeMsg{id: id}}
		}
	}

	return m, nil
}

func (m *CatalogModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Welcome to Recipe World"))
	b.WriteString("\n")
	b.WriteString("Discover delicious recipes from around the world. Search, sort, and explore\n")
	b.WriteString("thousands of amazing dishes.\n\n")
	if m.session.IsAuthenticated() {
		b.WriteString("[g] Go to Dashboard")
	} else {
		b.WriteString("[g] Get Started")
	}
	b.WriteString("   [/] Explore Recipes\n\n")

	b.WriteString(titleStyle.Render("Discover Amazing Recipes"))
	b.WriteString("\n")
	b.WriteString("Search: ")
	b.WriteString(m.search.View())
	b.WriteString("   Sort: ")
	b.WriteString(m.query.SortBy.Label())
	b.WriteString("   Order: ")
	b.WriteString(orderLabel(m.query.Order))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(msgLoadingRecipes)
	case m.loaded && len(m.page.Recipes) == 0 && m.errMsg == "":
		b.WriteString(msgNoRecipes)
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

	hotKeys := "/: search │ x: clear │ s: sort │ o: order │ ←/→: page │ enter: open │ v: about"
	if m.searching {
		hotKeys = "enter: search │ esc: cancel"
	}
	return renderPage("RECIPES", b.String(), hotKeys)
}

func (m *CatalogModel) setSession(s models.Session) {
	m.session = s
}

func (m *CatalogModel) capturesInput() bool {
	return m.searching
}

func (m *CatalogModel) totalPages() int {
	return pageCount(m.page.Total, m.query.Limit)
}

func (m *CatalogModel) stopSearching() {
	m.searching = false
	m.search.Blur()
}

func (m *CatalogModel) fetch() tea.Cmd {
	m.loading = true
	m.seq++
	return loadRecipes(m.ctx, m.recipes, PageCatalog, m.seq, m.query)
}

func nextSortKey(current models.SortKey) models.SortKey {
	for i, k := range models.SortKeys {
		if k == current {
			return models.SortKeys[(i+1)%len(models.SortKeys)]
		}
	}
	return models.DefaultSortKey
}

func orderLabel(o models.SortOrder) string {
	if o == models.OrderDesc {
		return "Descending"
	}
	return "Ascending"
}
