package providers

import (
	"context"
	"time"
)

// RateLimiter defines the interface for request throttling
type RateLimiter interface {
	// Allow records a hit for key and reports whether it is within the limit
	Allow(ctx context.Context, key string) (*RateLimitResult, error)
}

// RateLimitResult describes the state of a key after a hit
type RateLimitResult struct {
	Allowed   bool
	Remaining int
	ResetIn   time.Duration
}
