package redis

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"scoringAPI/internal/ports"
)

var _ ports.ICache = (*Cache)(nil)

// Cache кэш скоринга поверх хранилища. Любая ошибка чтения считается промахом,
// ошибка записи логируется и пропускается. Значение хранится как float64 строкой.
type Cache struct {
	store ports.IStore
	log   *slog.Logger
}

// NewCache возвращает кэш, реализующий ports.ICache.
func NewCache(store ports.IStore, log *slog.Logger) *Cache {
	return &Cache{store: store, log: log}
}

// Get возвращает закэшированное значение. found == false при отсутствии ключа и при любом сбое.
func (c *Cache) Get(ctx context.Context, key string) (value float64, found bool) {
	raw, found, err := c.store.Get(ctx, key)
	if err != nil {
		c.log.Warn("cache get failed", "key", key, "error", err)
		scoreCacheLookupsTotal.WithLabelValues("error").Inc()
		return 0, false
	}
	if !found {
		scoreCacheLookupsTotal.WithLabelValues("miss").Inc()
		return 0, false
	}
	v, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		c.log.Warn("cache parse failed", "key", key, "error", err)
		scoreCacheLookupsTotal.WithLabelValues("error").Inc()
		return 0, false
	}
	scoreCacheLookupsTotal.WithLabelValues("hit").Inc()
	return v, true
}

// Set сохраняет значение на ttl. Сбой записи не возвращается вызывающему.
func (c *Cache) Set(ctx context.Context, key string, value float64, ttl time.Duration) {
	s := strconv.FormatFloat(value, 'g', -1, 64)
	if err := c.store.Set(ctx, key, []byte(s), ttl); err != nil {
		c.log.Warn("cache set failed", "key", key, "error", err)
	}
}
