package service

import (
	"context"
	"testing"

	"github.com/ndanilchenko/go-skill-market/internal/logger"
	"github.com/ndanilchenko/go-skill-market/internal/mock"
	"github.com/ndanilchenko/go-skill-market/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestProductSvc(t *testing.T, ctrl *gomock.Controller) (ProductService, *mock.MockProductRepository) {
	t.Helper()
	mockRepo := mock.NewMockProductRepository(ctrl)
	return NewProductService(mockRepo, logger.Nop()), mockRepo
}

func TestProductService_CreateProduct_DefaultImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestProductSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().CreateProduct(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.Product) (models.Product, error) {
			assert.Equal(t, models.DefaultProductImage, p.Image)
			p.ProductID = 1
			return p, nil
		},
	)

	created, err := svc.CreateProduct(ctx, models.Product{
		Name:        "Strat Copy",
		Description: "Electric guitar",
		Price:       499.99,
		Category:    "instruments",
		Stock:       3,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ProductID)
}

func TestProductService_CreateProduct_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestProductSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, models.Product{Description: "no name", Category: "x"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.CreateProduct(ctx, models.Product{Name: "n", Description: "d", Category: "c", Price: -1})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestProductService_UpdateProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestProductSvc(t, ctrl)
	ctx := context.Background()

	price := 9.99
	update := models.ProductUpdate{Price: &price}
	mockRepo.EXPECT().UpdateProduct(ctx, int64(1), update).
		Return(models.Product{ProductID: 1, Price: price}, nil)

	updated, err := svc.UpdateProduct(ctx, 1, update)
	require.NoError(t, err)
	assert.Equal(t, price, updated.Price)
}

func TestProductService_UpdateProduct_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestProductSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.UpdateProduct(ctx, 1, models.ProductUpdate{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	negative := -5.0
	_, err = svc.UpdateProduct(ctx, 1, models.ProductUpdate{Price: &negative})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}
