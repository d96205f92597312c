package fleet

import (
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiterStore manages per-client rate limiters: client key -> rate limiter
type RateLimiterStore struct {
	limiters     map[string]*rate.Limiter
	mu           sync.Mutex
	defaultRate  rate.Limit
	defaultBurst int
}

func NewRateLimiterStore(defaultRate rate.Limit, defaultBurst int) *RateLimiterStore {
	return &RateLimiterStore{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  defaultRate,
		defaultBurst: defaultBurst,
	}
}

func (s *RateLimiterStore) GetLimiter(clientKey string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[clientKey]
	if !exists {
		limiter = rate.NewLimiter(s.defaultRate, s.defaultBurst)
		s.limiters[clientKey] = limiter
	}
	return limiter
}

func (s *RateLimiterStore) SetLimiter(clientKey string, clientRate rate.Limit, clientBurst int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limiters[clientKey] = rate.NewLimiter(clientRate, clientBurst)
}
