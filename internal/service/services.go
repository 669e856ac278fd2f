package service

import (
	"github.com/ndanilchenko/go-skill-market/internal/config"
	"github.com/ndanilchenko/go-skill-market/internal/logger"
	"github.com/ndanilchenko/go-skill-market/internal/store"
)

type Services struct {
	AuthService     AuthService
	ProductService  ProductService
	TutorialService TutorialService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg.Auth, logger),
		ProductService:  NewProductService(storages.ProductRepository, logger),
		TutorialService: NewTutorialService(storages.TutorialRepository, logger),
	}
}
