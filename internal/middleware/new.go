package middleware

import (
	"customer-care-assistant/config"
	"customer-care-assistant/pkg/log"
)

// Middleware bundles the cross-cutting gin handlers shared by all domains.
type Middleware struct {
	l   log.Logger
	cfg config.RateLimitConfig
}

func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	return Middleware{
		l:   l,
		cfg: cfg,
	}
}
