// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-recipe-book/internal/service"
	"github.com/MKhiriev/go-recipe-book/internal/store"
)

const (
	msgNetworkUnavailable = "Network is unavailable or the catalog service is down"
	msgSessionExpired     = "Your session has expired. Please log in again."
	msgRecipeNotFound     = "Recipe not found"
)

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrCatalogUnavailable):
		return msgNetworkUnavailable
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid), errors.Is(err, service.ErrNotAuthenticated):
		return msgSessionExpired
	case errors.Is(err, store.ErrRecipeNotFound):
		return msgRecipeNotFound
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return msgNetworkUnavailable
	}

	return err.Error()
}
