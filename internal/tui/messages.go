package tui

import (
	"github.com/MKhiriev/go-recipe-book/internal/service"
	"github.com/MKhiriev/go-recipe-book/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Page names a view registered in the router.
type Page string

const (
	PageCatalog   Page = "catalog"
	PageDetail    Page = "detail"
	PageLogin     Page = "login"
	PageDashboard Page = "dashboard"
)

// protectedPages render only for an authenticated session.
var protectedPages = map[Page]bool{
	PageDashboard: true,
}

// NavigateTo asks the router to open Page. Replace swaps the current history
// entry instead of pushing a new one. Payload, when set, is delivered to the
// page right after it is opened.
type NavigateTo struct {
	Page    Page
	Replace bool
	Payload tea.Msg
}

type navigateBackMsg struct{}

// addressedMsg is a result that belongs to one page no matter which page is
// active when it arrives.
type addressedMsg interface {
	target() Page
}

type sessionChangedMsg struct {
	session models.Session
}

type hydratedMsg struct {
	session models.Session
}

type loggedOutMsg struct {
	session models.Session
}

type loginDoneMsg struct {
	result  service.LoginResult
	session models.Session
}

func (loginDoneMsg) target() Page { return PageLogin }

type recipesLoadedMsg struct {
	owner Page
	seq   int
	page  models.RecipesPage
	err   error
}

func (m recipesLoadedMsg) target() Page { return m.owner }

type openRecipeMsg struct {
	id int64
}

func (openRecipeMsg) target() Page { return PageDetail }

type recipeLoadedMsg struct {
	seq    int
	recipe models.Recipe
	err    error
}

func (recipeLoadedMsg) target() Page { return PageDetail }

type copiedMsg struct {
	err error
}

func (copiedMsg) target() Page { return PageDetail }

type recipeSavedMsg struct {
	created bool
	recipe  models.Recipe
	err     error
}

func (recipeSavedMsg) target() Page { return PageDashboard }

type recipeDeletedMsg struct {
	id     int64
	result models.DeleteResult
	err    error
}

func (recipeDeletedMsg) target() Page { return PageDashboard }

type clearNoticeMsg struct {
	owner Page
	seq   int
}

func (m clearNoticeMsg) target() Page { return m.owner }
