package redis

import (
	"context"
	"time"
)

// Store 以接口形式暴露给 service 层的缓存适配器
type Store struct{}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	return GetValue(ctx, key)
}

func (s *Store) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return SetWithExpiration(ctx, key, value, expiration)
}

func (s *Store) Delete(ctx context.Context, key string) error {
	return DeleteKey(ctx, key)
}

func (s *Store) HSet(ctx context.Context, key string, field string, value interface{}) error {
	return HSet(ctx, key, field, value)
}

func (s *Store) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	return HGetAll(ctx, key)
}

func (s *Store) HDel(ctx context.Context, key string, field string) error {
	return HDel(ctx, key, field)
}
