package http

import (
	"github.com/ndanilchenko/go-skill-market/internal/logger"
	"github.com/ndanilchenko/go-skill-market/internal/service"
)

type Handler struct {
	services *service.Services

	rateLimiter *RateLimiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, rateLimiter *RateLimiter, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		rateLimiter: rateLimiter,
		logger:      logger,
	}
}
