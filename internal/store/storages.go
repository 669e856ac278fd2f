package store

import (
	"context"

	"github.com/ndanilchenko/go-skill-market/internal/config"
	"github.com/ndanilchenko/go-skill-market/internal/logger"
)

// Storages aggregates all repositories backed by the shared database
// connection. It is the single persistence entry point handed to the
// service layer.
type Storages struct {
	UserRepository     UserRepository
	ProductRepository  ProductRepository
	TutorialRepository TutorialRepository
}

// NewStorages connects to PostgreSQL, applies pending migrations, and wires
// all repositories onto the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		ProductRepository:  NewProductRepository(db, log),
		TutorialRepository: NewTutorialRepository(db, log),
	}, nil
}
