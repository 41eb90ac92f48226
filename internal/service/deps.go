package service

import (
	"Dresscode/internal/pkg/billing"
	"Dresscode/internal/pkg/llm"
	"context"
	"io"
	"time"
)

// StyleModel 视觉模型能力，生产实现见 pkg/llm
type StyleModel interface {
	ScoreOutfit(ctx context.Context, imageURL string) (int, error)
	AnalyzeOutfit(ctx context.Context, imageURL string) (*llm.StyleAnalysisResult, error)
}

// ObjectStorage 对象存储能力，生产实现见 pkg/minio
type ObjectStorage interface {
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, objectName string) error
	PublicURL(objectName string) string
}

// Locker 分布式锁能力，生产实现见 pkg/redis
type Locker interface {
	TryLock(ctx context.Context, key string, value string, expiration time.Duration, retryTimes int) (bool, error)
	Unlock(ctx context.Context, key string, value string)
}

// CacheStore 缓存能力，生产实现见 pkg/redis
type CacheStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
	HSet(ctx context.Context, key string, field string, value interface{}) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HDel(ctx context.Context, key string, field string) error
}

// BillingProvider 支付服务商能力，生产实现见 pkg/billing
type BillingProvider interface {
	CreatePaymentIntent(ctx context.Context, userID uint64, plan string, amount int64, currency string) (*billing.Intent, error)
}
