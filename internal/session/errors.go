package session

import "errors"

var (
	// ErrEmptyToken is returned when an empty token is stored.
	ErrEmptyToken = errors.New("session token is empty")

	// ErrNoToken is returned when a profile is stored without a token.
	ErrNoToken = errors.New("session has no token")
)
