// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// User is the profile of an authenticated catalog user as returned by the
// remote catalog service.
type User struct {
	// ID is the remote identifier of the user.
	ID int64 `json:"id"`

	// Username is the login name used for authentication.
	Username string `json:"username"`

	// Email is shown on the dashboard greeting.
	Email string `json:"email"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Gender    string `json:"gender"`

	// Image is an optional avatar URL.
	Image string `json:"image,omitempty"`
}

// FullName joins first and last name, skipping the empty parts.
func (u User) FullName() string {
	return strings.TrimSpace(strings.Join([]string{u.FirstName, u.LastName}, " "))
}

// LoginRequest is the credentials payload sent to the login endpoint.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the payload returned by the login endpoint: the user
// profile flattened together with the issued tokens.
type LoginResponse struct {
	User
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Account is a catalog user together with the bcrypt hash of the password.
// It never leaves the serving side.
type Account struct {
	User
	PasswordHash string `json:"-"`
}
