package tui

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-recipe-book/internal/service"
	"github.com/MKhiriev/go-recipe-book/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

const noticeTTL = 3 * time.Second

var writeClipboard = clipboard.WriteAll

func navigate(page Page) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page} }
}

func navigateBack() tea.Msg {
	return navigateBackMsg{}
}

func waitForSession(ch <-chan models.Session) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return nil
		}
		return sessionChangedMsg{session: s}
	}
}

func hydrate(ctx context.Context, auth service.ClientAuthService) tea.Cmd {
	return func() tea.Msg {
		auth.Hydrate(ctx)
		return hydratedMsg{session: auth.Session()}
	}
}

func logout(ctx context.Context, auth service.ClientAuthService) tea.Cmd {
	return func() tea.Msg {
		auth.Logout(ctx)
		return loggedOutMsg{session: auth.Session()}
	}
}

func login(ctx context.Context, auth service.ClientAuthService, username, password string) tea.Cmd {
	return func() tea.Msg {
		result := auth.Login(ctx, username, password)
		return loginDoneMsg{result: result, session: auth.Session()}
	}
}

func loadRecipes(ctx context.Context, recipes service.ClientRecipeService, owner Page, seq int, query models.RecipeQuery) tea.Cmd {
	return func() tea.Msg {
		page, err := recipes.List(ctx, query)
		return recipesLoadedMsg{owner: owner, seq: seq, page: page, err: err}
	}
}

func loadRecipe(ctx context.Context, recipes service.ClientRecipeService, seq int, id int64) tea.Cmd {
	return func() tea.Msg {
		recipe, err := recipes.Get(ctx, id)
		return recipeLoadedMsg{seq: seq, recipe: recipe, err: err}
	}
}

func createRecipe(ctx context.Context, recipes service.ClientRecipeService, draft models.RecipeDraft) tea.Cmd {
	return func() tea.Msg {
		recipe, err := recipes.Create(ctx, draft)
		return recipeSavedMsg{created: true, recipe: recipe, err: err}
	}
}

func updateRecipe(ctx context.Context, recipes service.ClientRecipeService, id int64, draft models.RecipeDraft) tea.Cmd {
	return func() tea.Msg {
		recipe, err := recipes.Update(ctx, id, draft)
		return recipeSavedMsg{recipe: recipe, err: err}
	}
}

func deleteRecipe(ctx context.Context, recipes service.ClientRecipeService, id int64) tea.Cmd {
	return func() tea.Msg {
		result, err := recipes.Delete(ctx, id)
		return recipeDeletedMsg{id: id, result: result, err: err}
	}
}

func copyLines(lines []string) tea.Cmd {
	text := strings.Join(lines, "\n")
	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(text)}
	}
}

func clearNoticeAfter(owner Page, seq int) tea.Cmd {
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return clearNoticeMsg{owner: owner, seq: seq}
	})
}
