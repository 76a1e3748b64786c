package tui

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-recipe-book/internal/service"
	"github.com/MKhiriev/go-recipe-book/models"
	tea "github.com/charmbracelet/bubbletea"
)

var testProfile = models.User{
	ID:        1,
	Username:  "emilys",
	Email:     "emily.johnson@x.dummyjson.com",
	FirstName: "Emily",
	LastName:  "Johnson",
}

func authenticated() models.Session {
	p := testProfile
	return models.Session{Token: "token", Profile: &p, Status: models.SessionAuthenticated}
}

func anonymous() models.Session {
	return models.Session{Status: models.SessionAnonymous}
}

type stubAuthService struct {
	mu sync.Mutex

	session      models.Session
	afterHydrate models.Session
	loginResult  service.LoginResult
	loginCalls   [][2]string
	logoutCalls  int
	hydrateCalls int
}

func (s *stubAuthService) Hydrate(context.Context) models.SessionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrateCalls++
	s.session = s.afterHydrate
	return s.session.Status
}

func (s *stubAuthService) Login(_ context.Context, username, password string) service.LoginResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loginCalls = append(s.loginCalls, [2]string{username, password})
	if s.loginResult.OK() {
		s.session = authenticated()
	}
	return s.loginResult
}

func (s *stubAuthService) Logout(context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logoutCalls++
	s.session = anonymous()
}

func (s *stubAuthService) Session() models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

func (s *stubAuthService) Subscribe() (<-chan models.Session, func()) {
	return nil, func() {}
}

type stubRecipeService struct {
	mu sync.Mutex

	listFn   func(models.RecipeQuery) (models.RecipesPage, error)
	getFn    func(int64) (models.Recipe, error)
	createFn func(models.RecipeDraft) (models.Recipe, error)
	updateFn func(int64, models.RecipeDraft) (models.Recipe, error)
	deleteFn func(int64) (models.DeleteResult, error)

	queries []models.RecipeQuery
	creates []models.RecipeDraft
	updates []int64
	deletes []int64
}

func (s *stubRecipeService) List(_ context.Context, query models.RecipeQuery) (models.RecipesPage, error) {
	s.mu.Lock()
	s.queries = append(s.queries, query)
	s.mu.Unlock()
	if s.listFn == nil {
		return models.RecipesPage{}, nil
	}
	return s.listFn(query)
}

func (s *stubRecipeService) Get(_ context.Context, id int64) (models.Recipe, error) {
	if s.getFn == nil {
		return models.Recipe{ID: id}, nil
	}
	return s.getFn(id)
}

func (s *stubRecipeService) Create(_ context.Context, draft models.RecipeDraft) (models.Recipe, error) {
	s.mu.Lock()
	s.creates = append(s.creates, draft)
	s.mu.Unlock()
	return s.createFn(draft)
}

func (s *stubRecipeService) Update(_ context.Context, id int64, draft models.RecipeDraft) (models.Recipe, error) {
	s.mu.Lock()
	s.updates = append(s.updates, id)
	s.mu.Unlock()
	return s.updateFn(id, draft)
}

func (s *stubRecipeService) Delete(_ context.Context, id int64) (models.DeleteResult, error) {
	s.mu.Lock()
	s.deletes = append(s.deletes, id)
	s.mu.Unlock()
	return s.deleteFn(id)
}

func (s *stubRecipeService) lastQuery() models.RecipeQuery {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queries) == 0 {
		return models.RecipeQuery{}
	}
	return s.queries[len(s.queries)-1]
}

func (s *stubRecipeService) queryCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queries)
}

func recipesFixture(n int) []models.Recipe {
	out := make([]models.Recipe, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, models.Recipe{
			ID:          int64(i),
			Name:        "Recipe " + string(rune('A'+i-1)),
			Cuisine:     "Italian",
			Difficulty:  models.DifficultyEasy,
			Servings:    2,
			Tags:        []string{"one", "two", "three", "four"},
			Ingredients: []string{"flour", "water"},
		})
	}
	return out
}

func pageFixture(total int, recipes ...models.Recipe) models.RecipesPage {
	return models.RecipesPage{Recipes: recipes, Total: total, Limit: len(recipes)}
}

func press(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// runCmd executes cmd and flattens batches. Commands that do not return
// quickly (blink and notice timers) are dropped.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	select {
	case msg := <-done:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, runCmd(c)...)
			}
			return out
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(50 * time.Millisecond):
		return nil
	}
}

// pump feeds the messages produced by cmd back into m until it settles.
func pump(m tea.Model, cmd tea.Cmd) tea.Model {
	queue := runCmd(cmd)
	for i := 0; len(queue) > 0 && i < 100; i++ {
		msg := queue[0]
		queue = queue[1:]

		var next tea.Cmd
		m, next = m.Update(msg)
		queue = append(queue, runCmd(next)...)
	}
	return m
}

// send delivers msg to m and pumps whatever follows.
func send(m tea.Model, msgs ...tea.Msg) tea.Model {
	for _, msg := range msgs {
		var cmd tea.Cmd
		m, cmd = m.Update(msg)
		m = pump(m, cmd)
	}
	return m
}

func findMsg[T tea.Msg](msgs []tea.Msg) (T, bool) {
	for _, msg := range msgs {
		if typed, ok := msg.(T); ok {
			return typed, true
		}
	}
	var zero T
	return zero, false
}
