package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisLimiter struct {
	client *redis.Client
	rule   Rule
	prefix string
	now    func() time.Time
}

func NewRedisLimiter(client *redis.Client, rule Rule) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		rule:   rule,
		prefix: "ratelimit",
		now:    time.Now,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (Result, error) {
	start := l.rule.windowStart(l.now())
	redisKey := fmt.Sprintf("%s:%s:%d", l.prefix, key, start.Unix())

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, l.rule.Window)
	if _, err := pipe.Exec(ctx); err != nil {
		return Result{Allowed: true, Limit: l.rule.Limit, Remaining: l.rule.Limit, ResetAt: start.Add(l.rule.Window)}, err
	}
	return l.rule.result(int(incr.Val()), start), nil
}
