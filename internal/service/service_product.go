package service

import (
	"context"
	"fmt"

	"github.com/ndanilchenko/go-skill-market/internal/logger"
	"github.com/ndanilchenko/go-skill-market/internal/store"
	"github.com/ndanilchenko/go-skill-market/internal/validators"
	"github.com/ndanilchenko/go-skill-market/models"
)

// productService is the concrete implementation of ProductService.
// Products have no owner, so beyond shape defaults it is a thin layer over
// the repository.
type productService struct {
	productRepository store.ProductRepository
	validator         validators.Validator
	logger            *logger.Logger
}

// NewProductService constructs a ProductService wired to the given repository.
func NewProductService(productRepository store.ProductRepository, logger *logger.Logger) ProductService {
	return &productService{
		productRepository: productRepository,
		validator:         validators.NewCatalogValidator(),
		logger:            logger,
	}
}

// CreateProduct validates required fields, applies the default image, and
// persists the product.
func (p *productService) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	log := logger.FromContext(ctx)

	if err := p.validator.Validate(ctx, product); err != nil {
		log.Error().Err(err).Str("name", product.Name).Msg("invalid product data provided")
		return models.Product{}, ErrInvalidDataProvided
	}
	if product.Image == "" {
		product.Image = models.DefaultProductImage
	}

	created, err := p.productRepository.CreateProduct(ctx, product)
	if err != nil {
		log.Err(err).Msg("product creation ended with error")
		return models.Product{}, fmt.Errorf("product creation ended with error: %w", err)
	}

	return created, nil
}

func (p *productService) GetProduct(ctx context.Context, productID int64) (models.Product, error) {
	return p.productRepository.GetProduct(ctx, productID)
}

func (p *productService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return p.productRepository.ListProducts(ctx)
}

// UpdateProduct applies a partial update. Any authenticated user may update
// any product: the e-commerce variant has no ownership concept.
func (p *productService) UpdateProduct(ctx context.Context, productID int64, update models.ProductUpdate) (models.Product, error) {
	log := logger.FromContext(ctx)

	if err := p.validator.Validate(ctx, update); err != nil {
		log.Error().Err(err).Int64("id", productID).Msg("invalid product update provided")
		return models.Product{}, ErrInvalidDataProvided
	}

	updated, err := p.productRepository.UpdateProduct(ctx, productID, update)
	if err != nil {
		log.Err(err).Int64("id", productID).Msg("product update ended with error")
		return models.Product{}, fmt.Errorf("product update ended with error: %w", err)
	}

	return updated, nil
}

func (p *productService) DeleteProduct(ctx context.Context, productID int64) error {
	return p.productRepository.DeleteProduct(ctx, productID)
}
