// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SessionStatus is the lifecycle state of the client session.
type SessionStatus int

const (
	// SessionInitializing means a stored token is being verified.
	SessionInitializing SessionStatus = iota
	// SessionAuthenticated means a token and a profile are both present.
	SessionAuthenticated
	// SessionAnonymous means there is no usable session.
	SessionAnonymous
)

func (s SessionStatus) String() string {
	switch s {
	case SessionInitializing:
		return "initializing"
	case SessionAuthenticated:
		return "authenticated"
	case SessionAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// Session is a point-in-time snapshot of the client session.
type Session struct {
	Token   string
	Profile *User
	Status  SessionStatus
}

// IsAuthenticated reports whether the snapshot carries a usable session.
func (s Session) IsAuthenticated() bool {
	return s.Status == SessionAuthenticated
}
