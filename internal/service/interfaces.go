package service

import (
	"context"

	"github.com/ndanilchenko/go-skill-market/models"
)

type AuthService interface {
	// Register creates a new account. It does not issue a token:
	// registration does not auto-login.
	Register(ctx context.Context, name, email, password string) (models.User, error)

	// Login authenticates by email and password and issues a fresh token.
	// Unknown email and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, email, password string) (models.Token, models.User, error)

	// Me resolves an authenticated user id to the public projection of the
	// account. The id comes from an already-verified token subject.
	Me(ctx context.Context, userID int64) (models.User, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ProductService exposes catalog operations of the e-commerce variant.
// Mutations require an authenticated caller but no ownership: any user may
// modify any product.
type ProductService interface {
	CreateProduct(ctx context.Context, product models.Product) (models.Product, error)
	GetProduct(ctx context.Context, productID int64) (models.Product, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	UpdateProduct(ctx context.Context, productID int64, update models.ProductUpdate) (models.Product, error)
	DeleteProduct(ctx context.Context, productID int64) error
}

// TutorialService exposes learning-content operations. Update and delete
// are gated on ownership: the requester must be the tutorial's creator.
type TutorialService interface {
	CreateTutorial(ctx context.Context, tutorial models.Tutorial, creatorID int64) (models.Tutorial, error)
	GetTutorial(ctx context.Context, tutorialID int64) (models.Tutorial, error)
	ListTutorials(ctx context.Context) ([]models.Tutorial, error)
	UpdateTutorial(ctx context.Context, tutorialID, requesterID int64, update models.TutorialUpdate) (models.Tutorial, error)
	DeleteTutorial(ctx context.Context, tutorialID, requesterID int64) error
}
