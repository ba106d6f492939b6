package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"chat-session-manager/pkg/log"
)

const DefaultRateLimitPerMin = 30

type Config struct {
	RateLimitPerMin int
}

type Middleware struct {
	l        log.Logger
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func New(l log.Logger, cfg Config) Middleware {
	perMin := cfg.RateLimitPerMin
	if perMin <= 0 {
		perMin = DefaultRateLimitPerMin
	}
	burst := perMin / 10
	if burst < 1 {
		burst = 1
	}
	return Middleware{
		l: l,
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // Max 1000 unique clients
			nil,           // No eviction callback
			time.Minute*5, // TTL: 5 minutes
		),
		rate:  rate.Limit(float64(perMin) / 60.0), // Per second
		burst: burst,
	}
}
