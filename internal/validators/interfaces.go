// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the input rules shared by the client recipe
// service and the stand-in catalog server: recipe drafts, create bodies,
// partial updates and login requests.
//
// Validators are injected into services and handlers. Validate takes an
// optional list of field names to restrict the check to those fields.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
