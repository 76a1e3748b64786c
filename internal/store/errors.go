package store

import "errors"

// Sentinel errors returned by repositories. Match them with [errors.Is].
var (
	// ErrSlotNotFound is returned when no value is stored under a slot key.
	ErrSlotNotFound = errors.New("session slot not found")

	// ErrRecipeNotFound is returned when no catalog recipe has the given id.
	ErrRecipeNotFound = errors.New("recipe not found")

	// ErrUserNotFound is returned when no catalog user has the given
	// username or id.
	ErrUserNotFound = errors.New("user not found")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")
)
