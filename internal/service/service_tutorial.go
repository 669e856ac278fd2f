package service

import (
	"context"
	"fmt"

	"github.com/ndanilchenko/go-skill-market/internal/logger"
	"github.com/ndanilchenko/go-skill-market/internal/store"
	"github.com/ndanilchenko/go-skill-market/internal/validators"
	"github.com/ndanilchenko/go-skill-market/models"
)

// tutorialService is the concrete implementation of TutorialService.
//
// Mutating operations follow a fixed order: load the resource, run the
// ownership guard, and only then touch the store. A deny short-circuits
// before any write happens.
type tutorialService struct {
	tutorialRepository store.TutorialRepository
	validator          validators.Validator
	logger             *logger.Logger
}

// NewTutorialService constructs a TutorialService wired to the given repository.
func NewTutorialService(tutorialRepository store.TutorialRepository, logger *logger.Logger) TutorialService {
	return &tutorialService{
		tutorialRepository: tutorialRepository,
		validator:          validators.NewCatalogValidator(),
		logger:             logger,
	}
}

// CreateTutorial validates required fields, applies defaults, stamps the
// creator, and persists the tutorial.
//
// CreatedBy is always taken from creatorID (the authenticated identity),
// never from the incoming payload, and is immutable afterwards.
func (t *tutorialService) CreateTutorial(ctx context.Context, tutorial models.Tutorial, creatorID int64) (models.Tutorial, error) {
	log := logger.FromContext(ctx)

	if err := t.validator.Validate(ctx, tutorial); err != nil {
		log.Error().Err(err).Str("title", tutorial.Title).Msg("invalid tutorial data provided")
		return models.Tutorial{}, ErrInvalidDataProvided
	}

	if tutorial.Level == "" {
		tutorial.Level = models.LevelBeginner
	}
	if tutorial.Image == "" {
		tutorial.Image = models.DefaultTutorialImage
	}

	tutorial.CreatedBy = creatorID

	created, err := t.tutorialRepository.CreateTutorial(ctx, tutorial)
	if err != nil {
		log.Err(err).Msg("tutorial creation ended with error")
		return models.Tutorial{}, fmt.Errorf("tutorial creation ended with error: %w", err)
	}

	return created, nil
}

func (t *tutorialService) GetTutorial(ctx context.Context, tutorialID int64) (models.Tutorial, error) {
	return t.tutorialRepository.GetTutorial(ctx, tutorialID)
}

func (t *tutorialService) ListTutorials(ctx context.Context) ([]models.Tutorial, error) {
	return t.tutorialRepository.ListTutorials(ctx)
}

// UpdateTutorial applies a partial update after the ownership check.
//
// Returns:
//   - store.ErrTutorialNotFound if the tutorial does not exist.
//   - ErrNotOwner if the requester is not the creator; the store is not
//     touched in that case.
//   - ErrInvalidDataProvided for an empty update or an unknown level.
func (t *tutorialService) UpdateTutorial(ctx context.Context, tutorialID, requesterID int64, update models.TutorialUpdate) (models.Tutorial, error) {
	log := logger.FromContext(ctx)

	if err := t.validator.Validate(ctx, update); err != nil {
		log.Error().Err(err).Int64("id", tutorialID).Msg("invalid tutorial update provided")
		return models.Tutorial{}, ErrInvalidDataProvided
	}

	existing, err := t.tutorialRepository.GetTutorial(ctx, tutorialID)
	if err != nil {
		return models.Tutorial{}, err
	}

	if err := AuthorizeOwner(existing.CreatedBy, requesterID); err != nil {
		log.Debug().
			Int64("tutorial_id", tutorialID).
			Int64("owner", existing.CreatedBy).
			Int64("requester", requesterID).
			Msg("tutorial update denied: not owner")
		return models.Tutorial{}, err
	}

	updated, err := t.tutorialRepository.UpdateTutorial(ctx, tutorialID, update)
	if err != nil {
		log.Err(err).Int64("id", tutorialID).Msg("tutorial update ended with error")
		return models.Tutorial{}, fmt.Errorf("tutorial update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteTutorial removes a tutorial after the ownership check.
// Errors mirror [tutorialService.UpdateTutorial].
func (t *tutorialService) DeleteTutorial(ctx context.Context, tutorialID, requesterID int64) error {
	log := logger.FromContext(ctx)

	existing, err := t.tutorialRepository.GetTutorial(ctx, tutorialID)
	if err != nil {
		return err
	}

	if err := AuthorizeOwner(existing.CreatedBy, requesterID); err != nil {
		log.Debug().
			Int64("tutorial_id", tutorialID).
			Int64("owner", existing.CreatedBy).
			Int64("requester", requesterID).
			Msg("tutorial delete denied: not owner")
		return err
	}

	if err := t.tutorialRepository.DeleteTutorial(ctx, tutorialID); err != nil {
		log.Err(err).Int64("id", tutorialID).Msg("tutorial delete ended with error")
		return err
	}

	return nil
}
