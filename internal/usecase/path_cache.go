package usecase

import (
	"context"
	"time"
)

// PathCache is the subset of the cache the learning-path usecase needs.
// Implementations must degrade gracefully: a miss and an unavailable
// backend look the same to the caller.
type PathCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}
