package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-recipe-book/internal/service"
	"github.com/MKhiriev/go-recipe-book/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRoot(t *testing.T, auth *stubAuthService, recipes *stubRecipeService) RootModel {
	t.Helper()

	ctx := context.Background()
	pages := map[Page]tea.Model{
		PageCatalog:   NewCatalogModel(ctx, recipes, models.DefaultPageSize),
		PageDetail:    NewDetailModel(ctx, recipes),
		PageLogin:     NewLoginModel(ctx, auth),
		PageDashboard: NewDashboardModel(ctx, recipes, models.DefaultPageSize),
	}
	return NewRootModel(ctx, auth, pages, nil, models.NewAppBuildInfo("v1.0.0", "2026-10-01", "abc123"))
}

func rootOf(t *testing.T, m tea.Model) RootModel {
	t.Helper()
	r, ok := m.(RootModel)
	require.True(t, ok)
	return r
}

func listAll(recipes []models.Recipe) func(models.RecipeQuery) (models.RecipesPage, error) {
	return func(models.RecipeQuery) (models.RecipesPage, error) {
		return pageFixture(len(recipes), recipes...), nil
	}
}

func TestRootModel_InitHydratesAndLoadsCatalog(t *testing.T) {
	auth := &stubAuthService{
		session:      models.Session{Status: models.SessionInitializing},
		afterHydrate: authenticated(),
	}
	recipes := &stubRecipeService{listFn: listAll(recipesFixture(2))}
	root := newTestRoot(t, auth, recipes)

	m := pump(root, root.Init())
	r := rootOf(t, m)

	assert.Equal(t, 1, auth.hydrateCalls)
	assert.Equal(t, models.SessionAuthenticated, r.session.Status)
	assert.Equal(t, PageCatalog, r.top())
	assert.Contains(t, r.View(), "Recipe A")
	assert.Contains(t, r.View(), "Hello, Emily!")
	assert.Contains(t, r.View(), "[g] Go to Dashboard")
}

func TestRootModel_GuardShowsLoadingWhileInitializing(t *testing.T) {
	auth := &stubAuthService{session: models.Session{Status: models.SessionInitializing}}
	recipes := &stubRecipeService{listFn: listAll(recipesFixture(1))}
	root := newTestRoot(t, auth, recipes)

	m := send(root, NavigateTo{Page: PageDashboard})
	r := rootOf(t, m)

	assert.Equal(t, PageDashboard, r.top())
	assert.Contains(t, r.View(), "Loading...")
	assert.Zero(t, recipes.queryCount())

	m = send(r, hydratedMsg{session: authenticated()})
	r = rootOf(t, m)

	assert.Equal(t, PageDashboard, r.top())
	assert.Equal(t, 1, recipes.queryCount())
	view := r.View()
	assert.Contains(t, view, "Welcome back, Emily Johnson! (emily.johnson@x.dummyjson.com)")
	assert.Contains(t, view, "Recipe A")
}

func TestRootModel_GuardRedirectReplacesHistoryEntry(t *testing.T) {
	auth := &stubAuthService{session: anonymous()}
	root := newTestRoot(t, auth, &stubRecipeService{})

	m := send(root, NavigateTo{Page: PageDashboard})
	r := rootOf(t, m)

	assert.Equal(t, []Page{PageCatalog, PageLogin}, r.history)

	m = send(r, navigateBackMsg{})
	r = rootOf(t, m)
	assert.Equal(t, []Page{PageCatalog}, r.history)
}

func TestRootModel_HydrationFailureRedirectsGuardedView(t *testing.T) {
	auth := &stubAuthService{session: models.Session{Status: models.SessionInitializing}}
	root := newTestRoot(t, auth, &stubRecipeService{})

	m := send(root, NavigateTo{Page: PageDashboard}, hydratedMsg{session: anonymous()})
	r := rootOf(t, m)

	assert.Equal(t, []Page{PageCatalog, PageLogin}, r.history)
}

func TestRootModel_HydrationSuccessLeavesLoginForm(t *testing.T) {
	auth := &stubAuthService{session: models.Session{Status: models.SessionInitializing}}
	recipes := &stubRecipeService{listFn: listAll(recipesFixture(2))}
	root := newTestRoot(t, auth, recipes)

	m := send(root, NavigateTo{Page: PageLogin})
	require.Equal(t, PageLogin, rootOf(t, m).top())

	m = send(m, hydratedMsg{session: authenticated()})
	r := rootOf(t, m)

	assert.Equal(t, []Page{PageCatalog, PageDashboard}, r.history)
	assert.Equal(t, 1, recipes.queryCount())
	assert.Contains(t, r.View(), "Welcome back, Emily Johnson!")

	send(r, press("enter"))
	assert.Empty(t, auth.loginCalls)
}

func TestRootModel_DashboardHotkeyWhileInitializing(t *testing.T) {
	auth := &stubAuthService{session: models.Session{Status: models.SessionInitializing}}
	recipes := &stubRecipeService{listFn: listAll(recipesFixture(1))}
	root := newTestRoot(t, auth, recipes)

	m := send(root, press("D"))
	r := rootOf(t, m)

	assert.Equal(t, PageDashboard, r.top())
	assert.Contains(t, r.View(), "Loading...")
	assert.Zero(t, recipes.queryCount())
}

func TestRootModel_LoginNavigatesToDashboard(t *testing.T) {
	auth := &stubAuthService{
		session:     anonymous(),
		loginResult: service.LoginResult{Outcome: service.LoginSucceeded},
	}
	recipes := &stubRecipeService{listFn: listAll(recipesFixture(3))}
	root := newTestRoot(t, auth, recipes)

	m := send(root, NavigateTo{Page: PageLogin})
	m = send(m, press("emilys"), press("tab"), press("emilyspass"), press("enter"))
	r := rootOf(t, m)

	require.Len(t, auth.loginCalls, 1)
	assert.Equal(t, [2]string{"emilys", "emilyspass"}, auth.loginCalls[0])
	assert.Equal(t, []Page{PageCatalog, PageDashboard}, r.history)
	assert.Contains(t, r.View(), "Welcome back, Emily Johnson!")
	assert.Contains(t, r.View(), "[L] Logout")
}

func TestRootModel_LoginFailureStaysOnLogin(t *testing.T) {
	auth := &stubAuthService{
		session: anonymous(),
		loginResult: service.LoginResult{
			Outcome: service.LoginInvalidCredentials,
			Message: service.MsgInvalidCredentials,
		},
	}
	root := newTestRoot(t, auth, &stubRecipeService{})

	m := send(root, NavigateTo{Page: PageLogin})
	m = send(m, press("emilys"), press("tab"), press("nope"), press("enter"))
	r := rootOf(t, m)

	assert.Equal(t, PageLogin, r.top())
	assert.Contains(t, r.View(), "Invalid credentials")
	assert.Equal(t, models.SessionAnonymous, r.session.Status)
}

func TestRootModel_LogoutReturnsToCatalog(t *testing.T) {
	auth := &stubAuthService{session: authenticated()}
	recipes := &stubRecipeService{listFn: listAll(recipesFixture(1))}
	root := newTestRoot(t, auth, recipes)

	m := send(root, NavigateTo{Page: PageDashboard})
	require.Equal(t, PageDashboard, rootOf(t, m).top())

	m = send(m, press("L"))
	r := rootOf(t, m)

	assert.Equal(t, 1, auth.logoutCalls)
	assert.Equal(t, []Page{PageCatalog}, r.history)
	assert.Contains(t, r.View(), "[L] Login")
	assert.NotContains(t, r.View(), "[D] Dashboard")
}

func TestRootModel_SessionLossRedirectsProtectedPage(t *testing.T) {
	auth := &stubAuthService{session: authenticated()}
	root := newTestRoot(t, auth, &stubRecipeService{listFn: listAll(nil)})

	m := send(root, NavigateTo{Page: PageDashboard}, sessionChangedMsg{session: anonymous()})
	r := rootOf(t, m)

	assert.Equal(t, PageLogin, r.top())
}

func TestRootModel_NavbarHotkeys(t *testing.T) {
	auth := &stubAuthService{session: anonymous()}
	root := newTestRoot(t, auth, &stubRecipeService{})

	m := send(root, press("D"))
	assert.Equal(t, PageCatalog, rootOf(t, m).top(), "dashboard is hidden for anonymous users")

	m = send(m, press("L"))
	assert.Equal(t, PageLogin, rootOf(t, m).top())

	m = send(m, press("esc"))
	assert.Equal(t, PageCatalog, rootOf(t, m).top())
}

func TestRootModel_BuildInfoOverlay(t *testing.T) {
	root := newTestRoot(t, &stubAuthService{session: anonymous()}, &stubRecipeService{})

	m := send(root, press("v"))
	view := m.View()
	assert.Contains(t, view, "Version: v1.0.0")
	assert.Contains(t, view, "Commit: abc123")

	m = send(m, press("esc"))
	assert.NotContains(t, m.View(), "Version: v1.0.0")
}

func TestRootModel_BuildInfoOnlyOnCatalog(t *testing.T) {
	root := newTestRoot(t, &stubAuthService{session: anonymous()}, &stubRecipeService{})

	m := send(root, NavigateTo{Page: PageLogin}, press("v"))

	assert.False(t, rootOf(t, m).showBuildInfo)
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	root := newTestRoot(t, &stubAuthService{session: anonymous()}, &stubRecipeService{})

	m, cmd := root.Update(press("ctrl+c"))

	require.NotNil(t, cmd)
	_, isQuit := cmd().(tea.QuitMsg)
	assert.True(t, isQuit)
	assert.True(t, rootOf(t, m).QuitByUser())
}

func TestRootModel_ResultsReachOwnerPage(t *testing.T) {
	recipes := &stubRecipeService{listFn: listAll(recipesFixture(2))}
	root := newTestRoot(t, &stubAuthService{session: anonymous()}, recipes)

	m := pump(root, root.Init())
	m = send(m, NavigateTo{Page: PageLogin})

	catalog := rootOf(t, m).pages[PageCatalog].(*CatalogModel)
	m = send(m, recipesLoadedMsg{owner: PageCatalog, seq: catalog.seq, page: pageFixture(1, recipesFixture(1)...)})

	assert.Equal(t, PageLogin, rootOf(t, m).top())
	assert.Len(t, catalog.page.Recipes, 1)
}
