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

// tutorialRepository is the PostgreSQL-backed implementation of
// [TutorialRepository]. Every read path joins the creator's display name
// from the users table; created_by itself is written exactly once, on
// INSERT, and never appears in an UPDATE statement.
type tutorialRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTutorialRepository constructs a [TutorialRepository] backed by the
// provided database connection and logger.
func NewTutorialRepository(db *DB, logger *logger.Logger) TutorialRepository {
	logger.Debug().Msg("creating tutorial repository")
	return &tutorialRepository{
		db:     db,
		logger: logger,
	}
}

// CreateTutorial persists a new tutorial owned by tutorial.CreatedBy and
// returns it with server-assigned fields plus the creator's display name
// (resolved in the same statement via a CTE join).
//
// Error handling:
//   - foreign_key_violation (owner row missing) → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *tutorialRepository) CreateTutorial(ctx context.Context, tutorial models.Tutorial) (models.Tutorial, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createTutorial,
		tutorial.Title, tutorial.Description, tutorial.Content, tutorial.VideoURL,
		tutorial.Duration, tutorial.Category, tutorial.Level, tutorial.Image, tutorial.CreatedBy)

	if err := scanTutorial(row, &tutorial); err != nil {
		log.Err(err).Str("func", "*tutorialRepository.CreateTutorial").Msg("error: tutorial insert failed")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Tutorial{}, ErrNoUserWasFound
		default:
			return models.Tutorial{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return tutorial, nil
}

// GetTutorial retrieves a tutorial by its primary key, including the
// creator's display name. A missing row is reported as [ErrTutorialNotFound].
func (r *tutorialRepository) GetTutorial(ctx context.Context, tutorialID int64) (models.Tutorial, error) {
	log := logger.FromContext(ctx)

	var tutorial models.Tutorial
	row := r.db.QueryRowContext(ctx, getTutorial, tutorialID)

	if err := scanTutorial(row, &tutorial); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Tutorial{}, ErrTutorialNotFound
		}

		log.Err(err).Str("func", "*tutorialRepository.GetTutorial").Msg("error: tutorial lookup failed")
		return models.Tutorial{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return tutorial, nil
}

// ListTutorials returns all tutorials sorted by creation time, newest first,
// each with its creator's display name.
func (r *tutorialRepository) ListTutorials(ctx context.Context) ([]models.Tutorial, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listTutorials)
	if err != nil {
		log.Err(err).Str("func", "*tutorialRepository.ListTutorials").Msg("error: tutorial listing failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tutorials := make([]models.Tutorial, 0)
	for rows.Next() {
		var tutorial models.Tutorial
		if err := scanTutorial(rows, &tutorial); err != nil {
			log.Err(err).Str("func", "*tutorialRepository.ListTutorials").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		tutorials = append(tutorials, tutorial)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return tutorials, nil
}

// UpdateTutorial applies a partial update built from the non-nil fields of
// update and returns the refreshed record with the creator name joined.
//
// Error handling:
//   - update carries no fields → [ErrEmptyUpdate].
//   - No row matched → [ErrTutorialNotFound].
func (r *tutorialRepository) UpdateTutorial(ctx context.Context, tutorialID int64, update models.TutorialUpdate) (models.Tutorial, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildTutorialUpdateQuery(tutorialID, update)
	if err != nil {
		if errors.Is(err, ErrEmptyUpdate) {
			return models.Tutorial{}, err
		}
		return models.Tutorial{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*tutorialRepository.UpdateTutorial").Msg("error: tutorial update failed")
		return models.Tutorial{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Tutorial{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return models.Tutorial{}, ErrTutorialNotFound
	}

	return r.GetTutorial(ctx, tutorialID)
}

// DeleteTutorial removes a tutorial by its primary key.
// A missing row is reported as [ErrTutorialNotFound].
func (r *tutorialRepository) DeleteTutorial(ctx context.Context, tutorialID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteTutorial, tutorialID)
	if err != nil {
		log.Err(err).Str("func", "*tutorialRepository.DeleteTutorial").Msg("error: tutorial delete failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrTutorialNotFound
	}

	return nil
}

func scanTutorial(row rowScanner, tutorial *models.Tutorial) error {
	return row.Scan(
		&tutorial.TutorialID,
		&tutorial.Title,
		&tutorial.Description,
		&tutorial.Content,
		&tutorial.VideoURL,
		&tutorial.Duration,
		&tutorial.Category,
		&tutorial.Level,
		&tutorial.Image,
		&tutorial.CreatedBy,
		&tutorial.CreatorName,
		&tutorial.CreatedAt,
		&tutorial.UpdatedAt,
	)
}
