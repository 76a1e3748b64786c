package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-recipe-book/internal/config"
	"github.com/MKhiriev/go-recipe-book/internal/logger"
	"github.com/MKhiriev/go-recipe-book/internal/store"
	"github.com/MKhiriev/go-recipe-book/internal/utils"
	"github.com/MKhiriev/go-recipe-book/internal/validators"
	"github.com/MKhiriev/go-recipe-book/models"
)

// refreshTokenFactor is how much longer a refresh token lives than the
// access token issued with it.
const refreshTokenFactor = 24

// authService is the concrete implementation of AuthService.
// It checks demo account credentials against their bcrypt hashes and issues
// HS256 JWTs.
type authService struct {
	// userRepository looks up demo accounts.
	userRepository store.UserRepository

	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued access token remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.ServerApp, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validators.NewRecipeValidator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Login authenticates a demo account.
//
// Returns the profile together with an access and a refresh token or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - ErrWrongPassword if the account does not exist or the password does
//     not match; the two cases are indistinguishable to the caller.
//   - ErrTokenCreationFailed if signing fails.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Str("username", req.Username).Msg("invalid login data provided")
		return models.LoginResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	account, err := a.userRepository.FindByUsername(ctx, req.Username)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user search by username failed")
		if errors.Is(err, store.ErrUserNotFound) {
			return models.LoginResponse{}, ErrWrongPassword
		}
		return models.LoginResponse{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		log.Info().
			Int64("id", account.ID).
			Str("username", account.Username).
			Msg("wrong password")
		return models.LoginResponse{}, ErrWrongPassword
	}

	access, err := a.CreateToken(ctx, account.User)
	if err != nil {
		return models.LoginResponse{}, err
	}

	refresh, err := utils.GenerateJWTToken(a.tokenIssuer, account.ID, a.tokenDuration*refreshTokenFactor, a.tokenSignKey)
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.LoginResponse{
		User:         account.User,
		AccessToken:  access.SignedString,
		RefreshToken: refresh.SignedString,
	}, nil
}

// Me returns the profile of the user the verified token belongs to.
func (a *authService) Me(ctx context.Context, userID int64) (models.User, error) {
	user, err := a.userRepository.FindByID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("token owner not found")
		return models.User{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}
	return user, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string. Any validation failure
// (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
