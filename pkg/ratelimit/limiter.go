// Package ratelimit implements a fixed-window request counter keyed by client.
//
// Windows are aligned to multiples of the window length, so every key shares
// the same boundaries and a window resets for everyone at once.
package ratelimit

import (
	"context"
	"time"
)

type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}

type Rule struct {
	Limit  int
	Window time.Duration
}

func (r Rule) windowStart(now time.Time) time.Time {
	return now.Truncate(r.Window)
}

func (r Rule) result(count int, start time.Time) Result {
	remaining := r.Limit - count
	if remaining < 0 {
		remaining = 0
	}
	return Result{
		Allowed:   count <= r.Limit,
		Limit:     r.Limit,
		Remaining: remaining,
		ResetAt:   start.Add(r.Window),
	}
}
