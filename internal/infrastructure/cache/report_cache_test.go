package cache_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-analytics/internal/infrastructure/cache"
	"github.com/jhoicas/estoque-analytics/pkg/config"
)

func TestNewReportCache_DeshabilitadoEsNoop(t *testing.T) {
	c, err := cache.NewReportCache(config.CacheConfig{Enabled: false})
	require.NoError(t, err, "sin Redis no debe intentar conectar")

	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "k", map[string]int{"a": 1}))

	var dst map[string]int
	hit, err := c.Get(ctx, "k", &dst)
	require.NoError(t, err)
	assert.False(t, hit, "el noop nunca devuelve valores")
	assert.Nil(t, dst)
	assert.NoError(t, c.InvalidatePrefix(ctx, "k"))
}

func TestNewReportCache_URLInvalida(t *testing.T) {
	_, err := cache.NewReportCache(config.CacheConfig{Enabled: true, RedisURL: "://sin-esquema"})
	assert.Error(t, err)
}
