package middleware

import (
	"github.com/priyanka7rc/laya/config"
	"github.com/priyanka7rc/laya/pkg/log"
)

type Middleware struct {
	l   log.Logger
	cfg *config.Config

	limiter *rateLimiter
}

func New(l log.Logger, cfg *config.Config) Middleware {
	return Middleware{
		l:       l,
		cfg:     cfg,
		limiter: newRateLimiter(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst),
	}
}
