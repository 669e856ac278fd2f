package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/ndanilchenko/go-skill-market/internal/logger"
	"github.com/ndanilchenko/go-skill-market/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// The users table carries a unique index on lower(email), so two concurrent
// registrations with the same email race on the database: exactly one INSERT
// succeeds and the other observes a unique_violation.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Name, user.Email, user.PasswordHash)

	if err := row.Scan(&user.UserID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: user insert failed")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return user, nil
}

// FindUserByEmail retrieves a user record whose email matches the given one
// case-insensitively.
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByEmail, email)

	if err := row.Scan(&foundUser.UserID, &foundUser.Name, &foundUser.Email, &foundUser.PasswordHash, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: user lookup failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}

// FindUserByID retrieves a user record by its primary key.
//
// Error handling mirrors [userRepository.FindUserByEmail]: a missing row is
// reported as [ErrNoUserWasFound].
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByID, userID)

	if err := row.Scan(&foundUser.UserID, &foundUser.Name, &foundUser.Email, &foundUser.PasswordHash, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: user lookup failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}
