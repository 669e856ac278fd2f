package http

import (
	"time"

	"github.com/ndanilchenko/go-skill-market/internal/logger"
	"github.com/ndanilchenko/go-skill-market/internal/workers"
)

// rateLimiterJanitor periodically sweeps expired windows out of a
// [RateLimiter] so long-idle clients do not pin memory between requests.
type rateLimiterJanitor struct {
	rateLimiter *RateLimiter
	interval    time.Duration
	logger      *logger.Logger
}

// NewRateLimiterJanitor returns a background worker that prunes expired
// rate-limit windows every interval.
func NewRateLimiterJanitor(rateLimiter *RateLimiter, interval time.Duration, logger *logger.Logger) workers.Worker {
	return &rateLimiterJanitor{
		rateLimiter: rateLimiter,
		interval:    interval,
		logger:      logger,
	}
}

// Run starts the sweep loop in its own goroutine. The janitor lives for the
// whole process lifetime; it stops when the process does.
func (j *rateLimiterJanitor) Run() {
	j.logger.Debug().Dur("interval", j.interval).Msg("starting rate limiter janitor")

	go func() {
		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()

		for range ticker.C {
			j.rateLimiter.PruneExpired()
		}
	}()
}
