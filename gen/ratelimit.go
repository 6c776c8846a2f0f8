package gen

import (
	"context"

	"github.com/zjregee/knowlix"
	"golang.org/x/time/rate"
)

var _ knowlix.RequestLimiter = (*Limiter)(nil)

// Limiter throttles generation requests using a token bucket with a burst
// of 1 (no bursting allowed).
type Limiter struct {
	limiter *rate.Limiter
}

// NewLimiter creates a new Limiter with the specified requests per second.
func NewLimiter(rps float64) *Limiter {
	return &Limiter{limiter: rate.NewLimiter(rate.Limit(rps), 1)}
}

// Wait blocks until the rate limit allows another request.
// Returns an error if the context is canceled before the wait completes.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
