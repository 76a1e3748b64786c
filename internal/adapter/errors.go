package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected response status")

	// ErrServerUnavailable wraps failures where no response was received:
	// connection refused, DNS errors, timeouts, cancelled contexts.
	ErrServerUnavailable = errors.New("catalog service unavailable")

	ErrDecodingResponse = errors.New("error decoding response")
)
