// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikita Danilchenko

package http

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ndanilchenko/go-skill-market/internal/logger"
	"github.com/ndanilchenko/go-skill-market/models"
)

// window holds the request counter for a single client within the current
// fixed window.
type window struct {
	count   int
	resetAt time.Time
}

// RateLimiter counts requests per client IP over fixed windows. Once a
// client exceeds the configured number of requests inside a window, further
// requests are rejected until the window rolls over.
type RateLimiter struct {
	mu       sync.Mutex
	clients  map[string]*window
	limit    int
	interval time.Duration
	now      func() time.Time
}

// NewRateLimiter returns a limiter allowing limit requests per interval for
// each distinct client IP.
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		clients:  make(map[string]*window),
		limit:    limit,
		interval: interval,
		now:      time.Now,
	}
}

// Allow records one request for the given client and reports whether it fits
// into the current window. When the request is rejected the second return
// value is the number of seconds until the window resets.
func (rl *RateLimiter) Allow(client string) (bool, int) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	w, ok := rl.clients[client]
	if !ok || now.After(w.resetAt) {
		rl.clients[client] = &window{count: 1, resetAt: now.Add(rl.interval)}
		rl.prune(now)
		return true, 0
	}

	if w.count >= rl.limit {
		retryAfter := int(w.resetAt.Sub(now).Seconds())
		if retryAfter < 1 {
			retryAfter = 1
		}
		return false, retryAfter
	}

	w.count++
	return true, 0
}

// prune drops expired windows so the map does not grow with one entry per
// client forever. Called with the mutex held.
func (rl *RateLimiter) prune(now time.Time) {
	if len(rl.clients) < 1024 {
		return
	}
	for client, w := range rl.clients {
		if now.After(w.resetAt) {
			delete(rl.clients, client)
		}
	}
}

// PruneExpired removes every expired window regardless of map size.
// It is called periodically by the janitor worker.
func (rl *RateLimiter) PruneExpired() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for client, w := range rl.clients {
		if now.After(w.resetAt) {
			delete(rl.clients, client)
		}
	}
}

// clientIP extracts the originating client address, preferring proxy headers
// over the raw connection address.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		if first, _, found := strings.Cut(forwarded, ","); found || first != "" {
			return strings.TrimSpace(first)
		}
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return strings.TrimSpace(realIP)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// withRateLimit rejects requests over the per-IP budget with 429 and a
// Retry-After hint before any other processing happens.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		client := clientIP(r)
		allowed, retryAfter := h.rateLimiter.Allow(client)
		if !allowed {
			logger.FromRequest(r).Warn().Str("client", client).Msg("rate limit exceeded")

			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			writeError(w, models.KindRateLimited, "too many requests, slow down", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
