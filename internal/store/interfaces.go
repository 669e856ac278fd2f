package store

import (
	"context"

	"github.com/ndanilchenko/go-skill-market/models"
)

// UserRepository is the credential store: it persists user accounts and
// resolves them by email (case-insensitive) or by ID.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// ProductRepository provides CRUD over the products table.
// Products carry no ownership information.
type ProductRepository interface {
	CreateProduct(ctx context.Context, product models.Product) (models.Product, error)
	GetProduct(ctx context.Context, productID int64) (models.Product, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	UpdateProduct(ctx context.Context, productID int64, update models.ProductUpdate) (models.Product, error)
	DeleteProduct(ctx context.Context, productID int64) error
}

// TutorialRepository provides CRUD over the tutorials table. Read paths
// join the creator's display name from the users table.
type TutorialRepository interface {
	CreateTutorial(ctx context.Context, tutorial models.Tutorial) (models.Tutorial, error)
	GetTutorial(ctx context.Context, tutorialID int64) (models.Tutorial, error)
	ListTutorials(ctx context.Context) ([]models.Tutorial, error)
	UpdateTutorial(ctx context.Context, tutorialID int64, update models.TutorialUpdate) (models.Tutorial, error)
	DeleteTutorial(ctx context.Context, tutorialID int64) error
}
