package middleware

import (
	"eisenhower-matrix/config"
	"eisenhower-matrix/internal/auth"
	pkgLog "eisenhower-matrix/pkg/log"
)

// Middleware bundles the cross-cutting gin middlewares.
type Middleware struct {
	l       pkgLog.Logger
	authSvc auth.Service
	rate    config.RateLimitConfig
}

func New(l pkgLog.Logger, authSvc auth.Service, rate config.RateLimitConfig) Middleware {
	return Middleware{
		l:       l,
		authSvc: authSvc,
		rate:    rate,
	}
}
