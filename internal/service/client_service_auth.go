package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-recipe-book/internal/adapter"
	"github.com/MKhiriev/go-recipe-book/internal/logger"
	"github.com/MKhiriev/go-recipe-book/internal/session"
	"github.com/MKhiriev/go-recipe-book/internal/validators"
	"github.com/MKhiriev/go-recipe-book/models"
)

type clientAuthService struct {
	session   *session.Store
	adapter   adapter.CatalogAdapter
	validator validators.Validator
	logger    *logger.Logger
}

func NewClientAuthService(sessionStore *session.Store, catalogAdapter adapter.CatalogAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		session:   sessionStore,
		adapter:   catalogAdapter,
		validator: validators.NewRecipeValidator(),
		logger:    logger,
	}
}

func (a *clientAuthService) Hydrate(ctx context.Context) models.SessionStatus {
	token, ok, err := a.session.LoadPersistedToken(ctx)
	if err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.Hydrate").Msg("reading persisted token failed")
		a.session.Clear(ctx)
		return a.session.Snapshot().Status
	}
	if !ok {
		a.session.MarkAnonymous()
		return a.session.Snapshot().Status
	}

	a.session.MarkInitializing()

	user, err := a.adapter.Me(ctx, token)
	if err != nil {
		a.logger.Info().Err(err).Str("func", "*clientAuthService.Hydrate").Msg("stored token rejected, clearing session")
		a.session.Clear(ctx)
		return a.session.Snapshot().Status
	}

	if err = a.session.SetToken(ctx, token); err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.Hydrate").Msg("storing verified token failed")
	}
	if err = a.session.SetProfile(user); err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.Hydrate").Msg("storing profile failed")
		a.session.Clear(ctx)
	}

	return a.session.Snapshot().Status
}

func (a *clientAuthService) Login(ctx context.Context, username, password string) LoginResult {
	req := models.LoginRequest{Username: username, Password: password}
	if err := a.validator.Validate(ctx, req); err != nil {
		return LoginResult{Outcome: LoginInvalidCredentials, Message: MsgCredentialsRequired}
	}

	resp, err := a.adapter.Login(ctx, req)
	if err != nil {
		a.logger.Info().Err(err).Str("func", "*clientAuthService.Login").Str("username", username).Msg("login rejected")

		if errors.Is(err, adapter.ErrServerUnavailable) || errors.Is(err, adapter.ErrDecodingResponse) {
			return LoginResult{Outcome: LoginFailed, Message: MsgLoginFailed}
		}
		return LoginResult{Outcome: LoginInvalidCredentials, Message: MsgInvalidCredentials}
	}

	if resp.AccessToken == "" {
		a.logger.Error().Str("func", "*clientAuthService.Login").Msg("login response without access token")
		return LoginResult{Outcome: LoginFailed, Message: MsgLoginFailed}
	}

	if err = a.session.SetAuthenticated(ctx, resp.AccessToken, resp.User); err != nil {
		// the session is usable in memory; it just won't survive a restart
		a.logger.Err(err).Str("func", "*clientAuthService.Login").Msg("persisting session failed")
	}

	return LoginResult{Outcome: LoginSucceeded}
}

func (a *clientAuthService) Logout(ctx context.Context) {
	a.session.Clear(ctx)
}

func (a *clientAuthService) Session() models.Session {
	return a.session.Snapshot()
}

func (a *clientAuthService) Subscribe() (<-chan models.Session, func()) {
	return a.session.Subscribe()
}
