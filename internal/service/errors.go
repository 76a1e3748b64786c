package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// ErrNotAuthenticated is returned by mutations attempted without a
	// session token. No request is sent in that case.
	ErrNotAuthenticated = errors.New("not authenticated")

	ErrAccessDenied = errors.New("access denied")

	// ErrCatalogUnavailable is returned when the catalog service could not
	// be reached or answered with a server error.
	ErrCatalogUnavailable = errors.New("catalog service unavailable")

	ErrValidation = errors.New("validation failed")
)

// Login messages shown by the login view.
const (
	MsgInvalidCredentials  = "Invalid credentials"
	MsgLoginFailed         = "Login failed. Please try again."
	MsgCredentialsRequired = "Username and password are required"
)
