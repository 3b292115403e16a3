// Package cache implementa ports.ReportCache sobre Redis, con una variante noop
// cuando el caché está deshabilitado.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/estoque-analytics/internal/application/ports"
	"github.com/jhoicas/estoque-analytics/pkg/config"
)

const keyNamespace = "estoque:"

type redisReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopReportCache struct{}

// NewReportCache devuelve el caché Redis si está habilitado; si no, uno que nunca encuentra nada.
func NewReportCache(cfg config.CacheConfig) (ports.ReportCache, error) {
	if !cfg.Enabled {
		return NewNoopReportCache(), nil
	}
	client, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}
	ttl := cfg.TTL()
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &redisReportCache{client: client, ttl: ttl}, nil
}

// NewNoopReportCache caché deshabilitado.
func NewNoopReportCache() ports.ReportCache {
	return &noopReportCache{}
}

func (c *redisReportCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	payload, err := c.client.Get(ctx, keyNamespace+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get: %w", err)
	}
	if err := json.Unmarshal(payload, dst); err != nil {
		return false, fmt.Errorf("decodificar %s: %w", key, err)
	}
	return true, nil
}

func (c *redisReportCache) Set(ctx context.Context, key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("codificar %s: %w", key, err)
	}
	if err := c.client.Set(ctx, keyNamespace+key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (c *redisReportCache) InvalidatePrefix(ctx context.Context, prefix string) error {
	return deleteKeysWithPrefix(ctx, c.client, keyNamespace+prefix)
}

func (c *noopReportCache) Get(context.Context, string, any) (bool, error) { return false, nil }
func (c *noopReportCache) Set(context.Context, string, any) error         { return nil }
func (c *noopReportCache) InvalidatePrefix(context.Context, string) error { return nil }
