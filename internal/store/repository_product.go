package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ndanilchenko/go-skill-market/internal/logger"
	"github.com/ndanilchenko/go-skill-market/models"
)

// productRepository is the PostgreSQL-backed implementation of
// [ProductRepository]. Products have no owner column, so none of the queries
// here carry user constraints.
type productRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProductRepository constructs a [ProductRepository] backed by the
// provided database connection and logger.
func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating product repository")
	return &productRepository{
		db:     db,
		logger: logger,
	}
}

// CreateProduct persists a new product and returns it with server-assigned
// fields (ProductID, CreatedAt, UpdatedAt).
func (r *productRepository) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createProduct,
		product.Name, product.Description, product.Price, product.Category, product.Stock, product.Image)

	if err := scanProduct(row, &product); err != nil {
		log.Err(err).Str("func", "*productRepository.CreateProduct").Msg("error: product insert failed")
		return models.Product{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return product, nil
}

// GetProduct retrieves a product by its primary key.
// A missing row is reported as [ErrProductNotFound].
func (r *productRepository) GetProduct(ctx context.Context, productID int64) (models.Product, error) {
	log := logger.FromContext(ctx)

	var product models.Product
	row := r.db.QueryRowContext(ctx, getProduct, productID)

	if err := scanProduct(row, &product); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Product{}, ErrProductNotFound
		}

		log.Err(err).Str("func", "*productRepository.GetProduct").Msg("error: product lookup failed")
		return models.Product{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return product, nil
}

// ListProducts returns all products sorted by creation time, newest first.
func (r *productRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listProducts)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.ListProducts").Msg("error: product listing failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	products := make([]models.Product, 0)
	for rows.Next() {
		var product models.Product
		if err := scanProduct(rows, &product); err != nil {
			log.Err(err).Str("func", "*productRepository.ListProducts").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return products, nil
}

// UpdateProduct applies a partial update built from the non-nil fields of
// update and returns the refreshed record.
//
// Error handling:
//   - update carries no fields → [ErrEmptyUpdate].
//   - No row matched → [ErrProductNotFound].
func (r *productRepository) UpdateProduct(ctx context.Context, productID int64, update models.ProductUpdate) (models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildProductUpdateQuery(productID, update)
	if err != nil {
		if errors.Is(err, ErrEmptyUpdate) {
			return models.Product{}, err
		}
		return models.Product{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.UpdateProduct").Msg("error: product update failed")
		return models.Product{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Product{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return models.Product{}, ErrProductNotFound
	}

	return r.GetProduct(ctx, productID)
}

// DeleteProduct removes a product by its primary key.
// A missing row is reported as [ErrProductNotFound].
func (r *productRepository) DeleteProduct(ctx context.Context, productID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteProduct, productID)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.DeleteProduct").Msg("error: product delete failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scan helpers.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner, product *models.Product) error {
	return row.Scan(
		&product.ProductID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.Category,
		&product.Stock,
		&product.Image,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
}
