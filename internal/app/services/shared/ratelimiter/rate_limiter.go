package ratelimiter

import (
	"context"
	"medicenter-service/internal/pkg/exceptions"

	"golang.org/x/time/rate"
)

// UpstreamLimiter throttles calls against the hospital API so a burst of
// dashboard fan-outs cannot trip the upstream's own limits.
type UpstreamLimiter struct {
	limiter *rate.Limiter
}

func NewUpstreamLimiter(requestsPerSecond, burst int) *UpstreamLimiter {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 1
	}
	if burst <= 0 {
		burst = requestsPerSecond
	}
	return &UpstreamLimiter{
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
	}
}

// Wait blocks until a slot is available or the context expires.
func (l *UpstreamLimiter) Wait(ctx context.Context) error {
	if err := l.limiter.Wait(ctx); err != nil {
		return exceptions.ErrUpstreamRateLimited(err)
	}
	return nil
}
