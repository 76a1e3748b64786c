package session

import "github.com/MKhiriev/go-recipe-book/models"

// Decision is what a protected view does for the current session status.
type Decision int

const (
	// DecisionLoading shows a loading placeholder while the session is
	// being verified.
	DecisionLoading Decision = iota
	// DecisionRender renders the protected view.
	DecisionRender
	// DecisionRedirect sends the user to the login view, replacing the
	// current history entry.
	DecisionRedirect
)

func (d Decision) String() string {
	switch d {
	case DecisionLoading:
		return "loading"
	case DecisionRender:
		return "render"
	default:
		return "redirect"
	}
}

// Guard maps a session status to a [Decision]. It is pure and cheap, so the
// router calls it again on every session change.
func Guard(status models.SessionStatus) Decision {
	switch status {
	case models.SessionInitializing:
		return DecisionLoading
	case models.SessionAuthenticated:
		return DecisionRender
	default:
		return DecisionRedirect
	}
}
