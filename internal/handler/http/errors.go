// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("Access Token is required")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the "Bearer <token>" form.
	ErrInvalidAuthorizationHeader = errors.New("Invalid/Expired Token!")
)

// Request decoding errors.
var (
	errInvalidJSON = errors.New("Invalid JSON was passed")
	errInvalidID   = errors.New("Invalid recipe id")
	errInvalidPage = errors.New("Invalid paging parameters")
)
