package middleware

import (
	"smart-todo-backend/config"
	"smart-todo-backend/pkg/log"
	"smart-todo-backend/pkg/scope"
)

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
	config     *config.Config
	limiter    *clientRateLimiter
}

func New(l log.Logger, jwtManager scope.Manager, cfg *config.Config) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		config:     cfg,
		limiter:    newClientRateLimiter(cfg.HTTPServer.RateLimitPerMin),
	}
}
