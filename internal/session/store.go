// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-recipe-book/internal/logger"
	"github.com/MKhiriev/go-recipe-book/internal/store"
	"github.com/MKhiriev/go-recipe-book/models"
)

// Store is the session store. Create one per running client with NewStore
// and inject it wherever the session is read or changed.
//
// Invariants: a profile is present only together with a token, and the
// status is authenticated exactly when both are present.
type Store struct {
	mu      sync.Mutex
	token   string
	profile *models.User
	status  models.SessionStatus

	slots  store.SessionSlotRepository
	logger *logger.Logger

	subs    map[int]chan models.Session
	nextSub int
}

// NewStore returns an empty store in the initializing state.
func NewStore(slots store.SessionSlotRepository, logger *logger.Logger) *Store {
	return &Store{
		status: models.SessionInitializing,
		slots:  slots,
		logger: logger,
		subs:   make(map[int]chan models.Session),
	}
}

// GetToken returns the in-memory token.
func (s *Store) GetToken() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.token, s.token != ""
}

// Snapshot returns a copy of the current session.
func (s *Store) Snapshot() models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

// LoadPersistedToken reads the token left in the durable slot by a previous
// run. ok is false when nothing is stored.
func (s *Store) LoadPersistedToken(ctx context.Context) (string, bool, error) {
	token, err := s.slots.Get(ctx, store.TokenSlotKey)
	if err != nil {
		if errors.Is(err, store.ErrSlotNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("error reading persisted token: %w", err)
	}

	token = strings.TrimSpace(token)
	return token, token != "", nil
}

// SetToken stores the token in memory and in the durable slot. It does not
// change the status on its own. The in-memory token is updated even when
// the durable write fails; that error is returned.
func (s *Store) SetToken(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.recomputeLocked()
	s.publishLocked()

	return s.persistLocked(ctx, token)
}

// SetProfile stores the profile in memory. With a token already present the
// session becomes authenticated.
func (s *Store) SetProfile(user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == "" {
		return ErrNoToken
	}

	s.profile = &user
	s.recomputeLocked()
	s.publishLocked()

	return nil
}

// SetAuthenticated stores token and profile as one update; subscribers see
// a single transition to authenticated. The durable write error, if any, is
// returned after memory has been updated.
func (s *Store) SetAuthenticated(ctx context.Context, token string, user models.User) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.profile = &user
	s.status = models.SessionAuthenticated
	s.publishLocked()

	return s.persistLocked(ctx, token)
}

// Clear drops token and profile from memory and from the durable slot. A
// failing durable delete is logged; memory is cleared regardless.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.profile = nil
	s.status = models.SessionAnonymous
	s.publishLocked()

	if err := s.slots.Delete(ctx, store.TokenSlotKey); err != nil {
		s.logger.Err(err).Str("func", "session.Store.Clear").Msg("failed to delete persisted token")
	}
}

// MarkInitializing flags that a stored token is being verified. It has no
// effect on an authenticated session.
func (s *Store) MarkInitializing() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == models.SessionAuthenticated || s.status == models.SessionInitializing {
		return
	}
	s.status = models.SessionInitializing
	s.publishLocked()
}

// MarkAnonymous ends initialization without a session. Memory is cleared;
// the durable slot is left as is.
func (s *Store) MarkAnonymous() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == models.SessionAnonymous && s.token == "" {
		return
	}
	s.token = ""
	s.profile = nil
	s.status = models.SessionAnonymous
	s.publishLocked()
}

// Subscribe returns a channel receiving every session change and a function
// that cancels the subscription and closes the channel. The channel holds
// one value; a subscriber that falls behind only sees the newest snapshot.
func (s *Store) Subscribe() (<-chan models.Session, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++

	ch := make(chan models.Session, 1)
	s.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()

			delete(s.subs, id)
			close(ch)
		})
	}

	return ch, cancel
}

func (s *Store) recomputeLocked() {
	if s.token != "" && s.profile != nil {
		s.status = models.SessionAuthenticated
	}
}

func (s *Store) persistLocked(ctx context.Context, token string) error {
	if err := s.slots.Set(ctx, store.TokenSlotKey, token); err != nil {
		s.logger.Err(err).Str("func", "session.Store.persist").Msg("failed to persist token")
		return fmt.Errorf("error persisting token: %w", err)
	}
	return nil
}

func (s *Store) snapshotLocked() models.Session {
	snap := models.Session{Token: s.token, Status: s.status}
	if s.profile != nil {
		p := *s.profile
		snap.Profile = &p
	}
	return snap
}

func (s *Store) publishLocked() {
	snap := s.snapshotLocked()
	for _, ch := range s.subs {
		select {
		case ch <- snap:
			continue
		default:
		}

		// drop the stale value and retry once
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snap:
		default:
		}
	}
}
