package service

import (
	"context"

	"github.com/MKhiriev/go-recipe-book/models"
)

// LoginOutcome classifies a login attempt.
type LoginOutcome int

const (
	// LoginSucceeded means the session is now authenticated.
	LoginSucceeded LoginOutcome = iota
	// LoginInvalidCredentials means the service rejected the credentials
	// or the form was incomplete.
	LoginInvalidCredentials
	// LoginFailed means the service could not be reached.
	LoginFailed
)

// LoginResult is what the login view shows. Message is empty on success.
type LoginResult struct {
	Outcome LoginOutcome
	Message string
}

// OK reports whether the login succeeded.
func (r LoginResult) OK() bool {
	return r.Outcome == LoginSucceeded
}

// ClientAuthService drives the session lifecycle on the client: start-up
// hydration from the persisted token, login and logout.
type ClientAuthService interface {
	// Hydrate restores the session from the persisted token. Without a
	// stored token the session becomes anonymous and nothing is sent over
	// the network. With one, the token is verified against the profile
	// endpoint; any failure clears it (memory and disk) and the session
	// becomes anonymous. It returns the resulting status.
	Hydrate(ctx context.Context) models.SessionStatus

	// Login authenticates with username and password. On success token and
	// profile are stored in one update. On failure the session is left
	// untouched and the result carries the message to show.
	Login(ctx context.Context, username, password string) LoginResult

	// Logout clears the session locally. No request is made.
	Logout(ctx context.Context)

	// Session returns the current session snapshot.
	Session() models.Session

	// Subscribe returns a channel of session changes and its cancel func.
	Subscribe() (<-chan models.Session, func())
}

// ClientRecipeService performs catalog reads and authenticated recipe
// mutations. Results are returned as received from the catalog service.
type ClientRecipeService interface {
	// List returns one page of the catalog. A non-empty search term routes
	// the query to the search endpoint; paging and ordering apply either
	// way.
	List(ctx context.Context, query models.RecipeQuery) (models.RecipesPage, error)

	// Get returns a single recipe.
	Get(ctx context.Context, id int64) (models.Recipe, error)

	// Create validates draft and submits it. Requires a session token.
	Create(ctx context.Context, draft models.RecipeDraft) (models.Recipe, error)

	// Update validates draft and submits every form field as a partial
	// update of recipe id. Requires a session token.
	Update(ctx context.Context, id int64, draft models.RecipeDraft) (models.Recipe, error)

	// Delete removes recipe id. Requires a session token.
	Delete(ctx context.Context, id int64) (models.DeleteResult, error)
}
