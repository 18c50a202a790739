package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "smc"

	resultHit   = "hit"
	resultMiss  = "miss"
	resultError = "error"
)

// jsonCache общая логика чтения/записи JSON значений в redis
// Ошибки redis не прерывают запрос: вызывающий код идет в источник
type jsonCache struct {
	rdb     *redis.Client
	name    string
	ttl     time.Duration
	metrics Metrics
	logger  Logger
}

func (c *jsonCache) key(id string) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, c.name, id)
}

// get возвращает true, если значение найдено и декодировано в dst
func (c *jsonCache) get(ctx context.Context, id string, dst interface{}) bool {
	data, err := c.rdb.Get(ctx, c.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		c.metrics.IncCacheResult(c.name, resultMiss)
		return false
	}
	if err != nil {
		c.metrics.IncCacheResult(c.name, resultError)
		c.logger.Warn("cache %s: get %s failed: %v", c.name, id, err)
		return false
	}

	if err := json.Unmarshal(data, dst); err != nil {
		c.metrics.IncCacheResult(c.name, resultError)
		c.logger.Warn("cache %s: corrupted value for %s: %v", c.name, id, err)
		return false
	}

	c.metrics.IncCacheResult(c.name, resultHit)
	return true
}

func (c *jsonCache) set(ctx context.Context, id string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("cache %s: encode %s failed: %v", c.name, id, err)
		return
	}
	if err := c.rdb.Set(ctx, c.key(id), data, c.ttl).Err(); err != nil {
		c.logger.Warn("cache %s: set %s failed: %v", c.name, id, err)
	}
}

func (c *jsonCache) invalidate(ctx context.Context, id string) {
	if err := c.rdb.Del(ctx, c.key(id)).Err(); err != nil {
		c.logger.Warn("cache %s: invalidate %s failed: %v", c.name, id, err)
	}
}
