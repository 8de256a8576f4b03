// Package ratelimit throttles upstream fare requests per origin airport
// so a wide fan-out stays inside the fare source's tolerance.
package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

type KeyLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	defaults Config
}

type Config struct {
	RequestsPerSecond float64
	BurstSize         int
}

func DefaultConfig() Config {
	return Config{
		RequestsPerSecond: 5,
		BurstSize:         10,
	}
}

func NewKeyLimiter(cfg Config) *KeyLimiter {
	return &KeyLimiter{
		limiters: make(map[string]*rate.Limiter),
		defaults: cfg,
	}
}

func (l *KeyLimiter) limiter(key string) *rate.Limiter {
	l.mu.RLock()
	lim, ok := l.limiters[key]
	l.mu.RUnlock()

	if ok {
		return lim
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if lim, ok = l.limiters[key]; ok {
		return lim
	}

	lim = rate.NewLimiter(rate.Limit(l.defaults.RequestsPerSecond), l.defaults.BurstSize)
	l.limiters[key] = lim
	return lim
}

// SetLimit overrides the rate for one key.
func (l *KeyLimiter) SetLimit(key string, rps float64, burst int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.limiters[key] = rate.NewLimiter(rate.Limit(rps), burst)
}

// Wait blocks until the key's limiter admits one request or ctx ends.
func (l *KeyLimiter) Wait(ctx context.Context, key string) error {
	return l.limiter(key).Wait(ctx)
}
