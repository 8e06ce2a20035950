package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryLimiter keeps counters in process. It is only correct for a single
// API instance; use RedisLimiter when running more than one.
type MemoryLimiter struct {
	rule Rule
	now  func() time.Time

	mu     sync.Mutex
	window time.Time
	counts map[string]int
}

func NewMemoryLimiter(rule Rule) *MemoryLimiter {
	return &MemoryLimiter{
		rule:   rule,
		now:    time.Now,
		counts: make(map[string]int),
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (Result, error) {
	start := l.rule.windowStart(l.now())

	l.mu.Lock()
	defer l.mu.Unlock()

	// all keys share the window, so a new window drops every counter
	if !start.Equal(l.window) {
		l.window = start
		l.counts = make(map[string]int)
	}
	l.counts[key]++
	return l.rule.result(l.counts[key], start), nil
}
