package middleware

import (
	"todolist-sync/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *clientLimiter
}

// New creates the middleware set. ratePerMin <= 0 disables rate limiting.
func New(l log.Logger, ratePerMin int) Middleware {
	return Middleware{
		l:       l,
		limiter: newClientLimiter(ratePerMin),
	}
}
