package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/ndanilchenko/go-skill-market/internal/config"
	"github.com/ndanilchenko/go-skill-market/internal/logger"
	"github.com/ndanilchenko/go-skill-market/internal/store"
	"github.com/ndanilchenko/go-skill-market/internal/utils"
	"github.com/ndanilchenko/go-skill-market/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	// There is no revocation list: a leaked token stays valid until the
	// duration elapses.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// It validates that name, email, and password are all non-empty, hashes the
// password with bcrypt, and delegates persistence to the UserRepository.
// The plaintext password is never stored or logged.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if any field is empty.
//   - A wrapped storage error if the repository call fails (e.g. email
//     already registered — see store.ErrEmailAlreadyExists). Two concurrent
//     registrations with the same email race on the store's unique index;
//     exactly one succeeds.
func (a *authService) Register(ctx context.Context, name, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if name == "" || email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser.Public(), nil
}

// Login authenticates an existing user and issues a fresh token.
//
// A lookup miss and a failed password check are both reported as
// ErrInvalidCredentials with no distinguishing signal, so callers cannot
// enumerate registered emails.
//
// Returns the token and the public user projection or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrInvalidCredentials if the email is unknown or the password is wrong.
//   - A wrapped error if the repository or token generation fails.
func (a *authService) Login(ctx context.Context, email, password string) (models.Token, models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid login data provided")
		return models.Token{}, models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Str("email", email).Msg("login attempt for unknown email")
			return models.Token{}, models.User{}, ErrInvalidCredentials
		}

		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.Token{}, models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPasswordHash(foundUser.PasswordHash, password) {
		log.Debug().Int64("id", foundUser.UserID).Msg("login attempt with wrong password")
		return models.Token{}, models.User{}, ErrInvalidCredentials
	}

	token, err := a.CreateToken(ctx, foundUser)
	if err != nil {
		return models.Token{}, models.User{}, err
	}

	return token, foundUser.Public(), nil
}

// Me resolves an authenticated user id to the public projection of the
// account. The id is the subject of a token the auth middleware has already
// verified; the store lookup is what catches a deleted account holding a
// still-valid token.
//
// Returns ErrUnauthorized if the id no longer resolves to an existing user.
func (a *authService) Me(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Int64("id", userID).Msg("token subject no longer exists")
			return models.User{}, ErrUnauthorized
		}

		log.Err(err).Int64("id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser.Public(), nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. An expired token is reported as ErrTokenIsExpired; any
// other validation failure (wrong signature, wrong issuer, malformed) is
// normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
