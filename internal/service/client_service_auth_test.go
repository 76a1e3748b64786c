package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-recipe-book/internal/adapter"
	"github.com/MKhiriev/go-recipe-book/internal/logger"
	"github.com/MKhiriev/go-recipe-book/internal/mock"
	"github.com/MKhiriev/go-recipe-book/internal/session"
	"github.com/MKhiriev/go-recipe-book/internal/store"
	"github.com/MKhiriev/go-recipe-book/models"
)

var testUser = models.User{
	ID:        1,
	Username:  "emilys",
	Email:     "emily.johnson@x.dummyjson.com",
	FirstName: "Emily",
	LastName:  "Johnson",
}

// newTestAuthSvc builds clientAuthService over a real session
// store with mocked slot and adapter
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (
	*clientAuthService,
	*session.Store,
	*mock.MockSessionSlotRepository,
	*mock.MockCatalogAdapter,
) {
	t.Helper()
	slots := mock.NewMockSessionSlotRepository(ctrl)
	catalog := mock.NewMockCatalogAdapter(ctrl)
	sessionStore := session.NewStore(slots, logger.Nop())

	svc := NewClientAuthService(sessionStore, catalog, logger.Nop()).(*clientAuthService)
	return svc, sessionStore, slots, catalog
}

// ── Hydrate ──────────────────────────────────────────────────────────────────

func TestClientAuthService_Hydrate_NoStoredToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, slots, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	slots.EXPECT().Get(ctx, store.TokenSlotKey).Return("", store.ErrSlotNotFound)

	status := svc.Hydrate(ctx)

	assert.Equal(t, models.SessionAnonymous, status)
	assert.Equal(t, models.SessionAnonymous, svc.Session().Status)
}

func TestClientAuthService_Hydrate_ValidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, sessionStore, slots, catalog := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	updates, cancel := sessionStore.Subscribe()
	defer cancel()

	gomock.InOrder(
		slots.EXPECT().Get(ctx, store.TokenSlotKey).Return("stored-token", nil),
		catalog.EXPECT().Me(ctx, "stored-token").DoAndReturn(func(context.Context, string) (models.User, error) {
			// the guarded view is still waiting while the token is verified
			assert.Equal(t, models.SessionInitializing, sessionStore.Snapshot().Status)
			return testUser, nil
		}),
		slots.EXPECT().Set(ctx, store.TokenSlotKey, "stored-token").Return(nil),
	)

	status := svc.Hydrate(ctx)

	require.Equal(t, models.SessionAuthenticated, status)
	snap := svc.Session()
	assert.Equal(t, "stored-token", snap.Token)
	require.NotNil(t, snap.Profile)
	assert.Equal(t, "Emily", snap.Profile.FirstName)

	got := <-updates
	assert.Equal(t, models.SessionAuthenticated, got.Status)
}

func TestClientAuthService_Hydrate_FailsClosed(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "rejected token", err: fmt.Errorf("%w: Invalid/Expired Token!", adapter.ErrUnauthorized)},
		{name: "server error", err: fmt.Errorf("%w: boom", adapter.ErrInternalServerError)},
		{name: "network failure", err: fmt.Errorf("me request: %w: dial tcp", adapter.ErrServerUnavailable)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, slots, catalog := newTestAuthSvc(t, ctrl)
			ctx := context.Background()

			gomock.InOrder(
				slots.EXPECT().Get(ctx, store.TokenSlotKey).Return("stale-token", nil),
				catalog.EXPECT().Me(ctx, "stale-token").Return(models.User{}, tt.err),
				slots.EXPECT().Delete(ctx, store.TokenSlotKey).Return(nil),
			)

			status := svc.Hydrate(ctx)

			assert.Equal(t, models.SessionAnonymous, status)
			snap := svc.Session()
			assert.Empty(t, snap.Token)
			assert.Nil(t, snap.Profile)
		})
	}
}

func TestClientAuthService_Hydrate_SlotReadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, slots, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	slots.EXPECT().Get(ctx, store.TokenSlotKey).Return("", errors.New("database is locked"))
	slots.EXPECT().Delete(ctx, store.TokenSlotKey).Return(nil)

	assert.Equal(t, models.SessionAnonymous, svc.Hydrate(ctx))
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestClientAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, sessionStore, slots, catalog := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	sessionStore.MarkAnonymous()

	updates, cancel := sessionStore.Subscribe()
	defer cancel()

	catalog.EXPECT().
		Login(ctx, models.LoginRequest{Username: "emilys", Password: "emilyspass"}).
		Return(models.LoginResponse{User: testUser, AccessToken: "access", RefreshToken: "refresh"}, nil)
	slots.EXPECT().Set(ctx, store.TokenSlotKey, "access").Return(nil)

	result := svc.Login(ctx, "emilys", "emilyspass")

	require.True(t, result.OK())
	assert.Empty(t, result.Message)

	got := <-updates
	assert.Equal(t, models.SessionAuthenticated, got.Status)
	assert.Equal(t, "access", got.Token)
	require.NotNil(t, got.Profile)
	assert.Equal(t, testUser.Email, got.Profile.Email)
}

func TestClientAuthService_Login_PersistFailureKeepsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, slots, catalog := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	catalog.EXPECT().Login(ctx, gomock.Any()).Return(models.LoginResponse{User: testUser, AccessToken: "access"}, nil)
	slots.EXPECT().Set(ctx, store.TokenSlotKey, "access").Return(errors.New("read-only file system"))

	result := svc.Login(ctx, "emilys", "emilyspass")

	assert.True(t, result.OK())
	assert.True(t, svc.Session().IsAuthenticated())
}

func TestClientAuthService_Login_Failures(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		resp        models.LoginResponse
		wantOutcome LoginOutcome
		wantMessage string
	}{
		{
			name:        "invalid credentials",
			err:         fmt.Errorf("%w: Invalid credentials", adapter.ErrBadRequest),
			wantOutcome: LoginInvalidCredentials,
			wantMessage: MsgInvalidCredentials,
		},
		{
			name:        "unauthorized",
			err:         fmt.Errorf("%w: nope", adapter.ErrUnauthorized),
			wantOutcome: LoginInvalidCredentials,
			wantMessage: MsgInvalidCredentials,
		},
		{
			name:        "server error status",
			err:         fmt.Errorf("%w: boom", adapter.ErrInternalServerError),
			wantOutcome: LoginInvalidCredentials,
			wantMessage: MsgInvalidCredentials,
		},
		{
			name:        "network failure",
			err:         fmt.Errorf("login request: %w: connection refused", adapter.ErrServerUnavailable),
			wantOutcome: LoginFailed,
			wantMessage: MsgLoginFailed,
		},
		{
			name:        "missing token in response",
			resp:        models.LoginResponse{User: testUser},
			wantOutcome: LoginFailed,
			wantMessage: MsgLoginFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, sessionStore, _, catalog := newTestAuthSvc(t, ctrl)
			ctx := context.Background()
			sessionStore.MarkAnonymous()

			catalog.EXPECT().Login(ctx, gomock.Any()).Return(tt.resp, tt.err)

			result := svc.Login(ctx, "emilys", "wrong")

			assert.Equal(t, tt.wantOutcome, result.Outcome)
			assert.Equal(t, tt.wantMessage, result.Message)
			assert.Equal(t, models.SessionAnonymous, svc.Session().Status)
		})
	}
}

func TestClientAuthService_Login_RequiresBothFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	for _, creds := range [][2]string{{"", "pass"}, {"emilys", ""}, {"  ", ""}} {
		result := svc.Login(ctx, creds[0], creds[1])
		assert.Equal(t, LoginInvalidCredentials, result.Outcome)
		assert.Equal(t, MsgCredentialsRequired, result.Message)
	}
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestClientAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, sessionStore, slots, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	slots.EXPECT().Set(ctx, store.TokenSlotKey, "access").Return(nil)
	slots.EXPECT().Delete(ctx, store.TokenSlotKey).Return(nil)
	require.NoError(t, sessionStore.SetAuthenticated(ctx, "access", testUser))

	svc.Logout(ctx)

	snap := svc.Session()
	assert.Equal(t, models.SessionAnonymous, snap.Status)
	assert.Empty(t, snap.Token)
}
