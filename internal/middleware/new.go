package middleware

import (
	"todo-list-service/pkg/log"
)

// RateLimitConfig controls the per-client limiter. RequestsPerMin <= 0 disables it.
type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, rl RateLimitConfig) Middleware {
	mw := Middleware{l: l}
	if rl.Enabled && rl.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(rl.RequestsPerMin)
	}
	return mw
}
