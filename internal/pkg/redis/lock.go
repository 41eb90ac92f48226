package redis

import (
	"context"
	"time"
)

// DistLocker 基于 Redis SetNX 的分布式锁，供 service 层按接口注入
type DistLocker struct{}

func NewDistLocker() *DistLocker {
	return &DistLocker{}
}

func (s *DistLocker) TryLock(ctx context.Context, key string, value string, expiration time.Duration, retryTimes int) (bool, error) {
	return TryLock(ctx, key, value, expiration, retryTimes)
}

func (s *DistLocker) Unlock(ctx context.Context, key string, value string) {
	UnLock(ctx, key, value)
}
