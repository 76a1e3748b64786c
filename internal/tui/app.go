package tui

import (
	"context"

	"github.com/MKhiriev/go-recipe-book/internal/service"
	"github.com/MKhiriev/go-recipe-book/internal/session"
	"github.com/MKhiriev/go-recipe-book/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// inputCapturer is implemented by pages that own the keyboard while a text
// field is focused; global hotkeys are suspended for them.
type inputCapturer interface {
	capturesInput() bool
}

type sessionAware interface {
	setSession(models.Session)
}

// activator is implemented by protected pages that load data once the guard
// lets them render.
type activator interface {
	activate() tea.Cmd
}

// RootModel is a TUI router:
//  1. keeps the navigation history, the last entry is the active page
//  2. mirrors the session and re-runs the route guard on every change
//  3. handles global hotkeys (quit, navbar, build info)
//  4. routes page results to their owner and everything else to the
//     active page
type RootModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	pages   map[Page]tea.Model
	history []Page

	session   models.Session
	sessionCh <-chan models.Session

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
	quitByUser    bool
}

// NewRootModel registers all pages and opens the catalog. sessionCh is the
// subscription the router listens on for session changes.
func NewRootModel(
	ctx context.Context,
	auth service.ClientAuthService,
	pages map[Page]tea.Model,
	sessionCh <-chan models.Session,
	buildInfo models.AppBuildInfo,
) RootModel {
	r := RootModel{
		ctx:       ctx,
		auth:      auth,
		pages:     pages,
		history:   []Page{PageCatalog},
		sessionCh: sessionCh,
		buildInfo: buildInfo,
	}
	r.applySession(auth.Session())
	return r
}

// Init starts hydration, the session subscription and the catalog fetch in
// parallel. A protected page shows its loading placeholder until hydration
// settles the session.
func (r RootModel) Init() tea.Cmd {
	return tea.Batch(
		waitForSession(r.sessionCh),
		hydrate(r.ctx, r.auth),
		r.pages[r.top()].Init(),
	)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			r.quitByUser = true
			return r, tea.Quit
		}
		if r.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
				r.showBuildInfo = false
			}
			return r, nil
		}
		if !r.capturesInput() {
			if next, cmd, handled := r.handleGlobalKey(msg); handled {
				return next, cmd
			}
		}
	case NavigateTo:
		return r.navigate(msg)
	case navigateBackMsg:
		return r.back()
	case sessionChangedMsg:
		r.applySession(msg.session)
		next, cmd := r.enforceGuard()
		return next, tea.Batch(waitForSession(r.sessionCh), cmd)
	case hydratedMsg:
		r.applySession(msg.session)
		return r.enforceGuard()
	case loggedOutMsg:
		r.applySession(msg.session)
		r.history = []Page{PageCatalog}
		r.showBuildInfo = false
		return r, nil
	case loginDoneMsg:
		r.applySession(msg.session)
	}

	target := r.top()
	if addressed, ok := msg.(addressedMsg); ok {
		target = addressed.target()
	}

	page, ok := r.pages[target]
	if !ok {
		return r, nil
	}
	updated, cmd := page.Update(msg)
	r.pages[target] = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo))
	}

	top := r.top()
	page, ok := r.pages[top]
	if !ok {
		return renderPage("RECIPE BOOK", "", "")
	}

	body := page.View()
	if protectedPages[top] && session.Guard(r.session.Status) != session.DecisionRender {
		body = renderPage("LOADING", "Loading...", "")
	}

	return appStyle.Render(renderNavbar(r.session) + "\n" + body)
}

// QuitByUser reports whether the program ended on ctrl+c or q.
func (r RootModel) QuitByUser() bool {
	return r.quitByUser
}

func (r RootModel) handleGlobalKey(msg tea.KeyMsg) (RootModel, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.quit):
		r.quitByUser = true
		return r, tea.Quit, true
	case key.Matches(msg, keys.buildInfo) && r.top() == PageCatalog:
		r.showBuildInfo = true
		return r, nil, true
	case key.Matches(msg, keys.home):
		next, cmd := r.navigate(NavigateTo{Page: PageCatalog})
		return next, cmd, true
	case key.Matches(msg, keys.dashboard) && r.session.Status != models.SessionAnonymous:
		next, cmd := r.navigate(NavigateTo{Page: PageDashboard})
		return next, cmd, true
	case key.Matches(msg, keys.account):
		if r.session.IsAuthenticated() {
			return r, logout(r.ctx, r.auth), true
		}
		next, cmd := r.navigate(NavigateTo{Page: PageLogin})
		return next, cmd, true
	}
	return r, nil, false
}

func (r RootModel) navigate(nav NavigateTo) (RootModel, tea.Cmd) {
	next, ok := r.pages[nav.Page]
	if !ok {
		return r, nil
	}

	r.showBuildInfo = false
	switch {
	case nav.Replace:
		r.history[len(r.history)-1] = nav.Page
	case r.top() != nav.Page:
		r.history = append(r.history, nav.Page)
	}

	cmds := []tea.Cmd{next.Init()}
	if nav.Payload != nil {
		payload := nav.Payload
		cmds = append(cmds, func() tea.Msg { return payload })
	}

	r, guardCmd := r.enforceGuard()
	return r, tea.Batch(append(cmds, guardCmd)...)
}

func (r RootModel) back() (RootModel, tea.Cmd) {
	if len(r.history) <= 1 {
		return r, nil
	}
	r.history = r.history[:len(r.history)-1]
	return r.enforceGuard()
}

// enforceGuard applies the route guard to the active page. A redirect swaps
// the current history entry for the login page, so going back never returns
// to the protected page. An authenticated session never stays on the login
// form: its entry is swapped for the dashboard.
func (r RootModel) enforceGuard() (RootModel, tea.Cmd) {
	top := r.top()
	if top == PageLogin && r.session.IsAuthenticated() {
		r.history[len(r.history)-1] = PageDashboard
		top = PageDashboard
	}
	if !protectedPages[top] {
		return r, nil
	}

	switch session.Guard(r.session.Status) {
	case session.DecisionRedirect:
		r.history[len(r.history)-1] = PageLogin
		return r, r.pages[PageLogin].Init()
	case session.DecisionRender:
		if a, ok := r.pages[top].(activator); ok {
			return r, a.activate()
		}
	}
	return r, nil
}

func (r *RootModel) applySession(s models.Session) {
	r.session = s
	for _, page := range r.pages {
		if aware, ok := page.(sessionAware); ok {
			aware.setSession(s)
		}
	}
}

func (r RootModel) capturesInput() bool {
	c, ok := r.pages[r.top()].(inputCapturer)
	return ok && c.capturesInput()
}

func (r RootModel) top() Page {
	return r.history[len(r.history)-1]
}
