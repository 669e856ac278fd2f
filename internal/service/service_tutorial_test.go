package service

import (
	"context"
	"testing"

	"github.com/ndanilchenko/go-skill-market/internal/logger"
	"github.com/ndanilchenko/go-skill-market/internal/mock"
	"github.com/ndanilchenko/go-skill-market/internal/store"
	"github.com/ndanilchenko/go-skill-market/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestTutorialSvc(t *testing.T, ctrl *gomock.Controller) (TutorialService, *mock.MockTutorialRepository) {
	t.Helper()
	mockRepo := mock.NewMockTutorialRepository(ctrl)
	return NewTutorialService(mockRepo, logger.Nop()), mockRepo
}

func validTutorial() models.Tutorial {
	return models.Tutorial{
		Title:       "Intro to Scales",
		Description: "Major and minor scales",
		Content:     "Lesson body",
		Duration:    45,
		Category:    "music",
	}
}

func TestTutorialService_CreateTutorial_StampsCreator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestTutorialSvc(t, ctrl)
	ctx := context.Background()

	// The payload claims an owner; the service must overwrite it with the
	// authenticated identity.
	payload := validTutorial()
	payload.CreatedBy = 999

	mockRepo.EXPECT().CreateTutorial(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, tut models.Tutorial) (models.Tutorial, error) {
			assert.Equal(t, int64(7), tut.CreatedBy)
			assert.Equal(t, models.LevelBeginner, tut.Level, "empty level defaults to beginner")
			assert.Equal(t, models.DefaultTutorialImage, tut.Image, "empty image gets the default")
			tut.TutorialID = 1
			return tut, nil
		},
	)

	created, err := svc.CreateTutorial(ctx, payload, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.CreatedBy)
}

func TestTutorialService_CreateTutorial_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestTutorialSvc(t, ctrl)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(tut *models.Tutorial)
	}{
		{name: "missing title", mutate: func(tut *models.Tutorial) { tut.Title = "" }},
		{name: "missing content", mutate: func(tut *models.Tutorial) { tut.Content = "" }},
		{name: "negative duration", mutate: func(tut *models.Tutorial) { tut.Duration = -1 }},
		{name: "unknown level", mutate: func(tut *models.Tutorial) { tut.Level = "Expert" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tut := validTutorial()
			tt.mutate(&tut)
			_, err := svc.CreateTutorial(ctx, tut, 7)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestTutorialService_UpdateTutorial_Owner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestTutorialSvc(t, ctrl)
	ctx := context.Background()

	newTitle := "Updated title"
	update := models.TutorialUpdate{Title: &newTitle}

	gomock.InOrder(
		mockRepo.EXPECT().GetTutorial(ctx, int64(1)).
			Return(models.Tutorial{TutorialID: 1, CreatedBy: 7}, nil),
		mockRepo.EXPECT().UpdateTutorial(ctx, int64(1), update).
			Return(models.Tutorial{TutorialID: 1, CreatedBy: 7, Title: newTitle}, nil),
	)

	updated, err := svc.UpdateTutorial(ctx, 1, 7, update)
	require.NoError(t, err)
	assert.Equal(t, newTitle, updated.Title)
}

// A non-owner update is denied before the store is touched: no
// UpdateTutorial expectation is registered, so any write would fail the test.
func TestTutorialService_UpdateTutorial_NotOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestTutorialSvc(t, ctrl)
	ctx := context.Background()

	newTitle := "Updated title"
	mockRepo.EXPECT().GetTutorial(ctx, int64(1)).
		Return(models.Tutorial{TutorialID: 1, CreatedBy: 7}, nil)

	_, err := svc.UpdateTutorial(ctx, 1, 8, models.TutorialUpdate{Title: &newTitle})
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestTutorialService_UpdateTutorial_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestTutorialSvc(t, ctrl)
	ctx := context.Background()

	newTitle := "Updated title"
	mockRepo.EXPECT().GetTutorial(ctx, int64(404)).
		Return(models.Tutorial{}, store.ErrTutorialNotFound)

	_, err := svc.UpdateTutorial(ctx, 404, 7, models.TutorialUpdate{Title: &newTitle})
	assert.ErrorIs(t, err, store.ErrTutorialNotFound)
}

func TestTutorialService_UpdateTutorial_EmptyUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestTutorialSvc(t, ctrl)

	_, err := svc.UpdateTutorial(context.Background(), 1, 7, models.TutorialUpdate{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestTutorialService_DeleteTutorial_Owner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestTutorialSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockRepo.EXPECT().GetTutorial(ctx, int64(1)).
			Return(models.Tutorial{TutorialID: 1, CreatedBy: 7}, nil),
		mockRepo.EXPECT().DeleteTutorial(ctx, int64(1)).Return(nil),
	)

	assert.NoError(t, svc.DeleteTutorial(ctx, 1, 7))
}

func TestTutorialService_DeleteTutorial_NotOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestTutorialSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().GetTutorial(ctx, int64(1)).
		Return(models.Tutorial{TutorialID: 1, CreatedBy: 7}, nil)

	err := svc.DeleteTutorial(ctx, 1, 8)
	assert.ErrorIs(t, err, ErrNotOwner)
}
