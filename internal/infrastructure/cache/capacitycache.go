package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"fieldops/internal/application/workshop/dto"
	"fieldops/internal/shared/logger"
)

const capacityKeyPrefix = "workshop:capacity:"

// RedisCapacityCache stores the workshop capacity snapshot with a short TTL.
// The snapshot is advisory dashboard data; cache errors degrade to a miss and
// never surface to callers.
type RedisCapacityCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

func NewRedisCapacityCache(client *redis.Client, ttl time.Duration, logger logger.Interface) *RedisCapacityCache {
	return &RedisCapacityCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *RedisCapacityCache) key(companyID uint) string {
	return fmt.Sprintf("%s%d", capacityKeyPrefix, companyID)
}

func (c *RedisCapacityCache) Get(ctx context.Context, companyID uint) (*dto.CapacitySnapshotDTO, bool) {
	raw, err := c.client.Get(ctx, c.key(companyID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warnw("capacity cache read failed", "error", err, "company_id", companyID)
		}
		return nil, false
	}

	var snapshot dto.CapacitySnapshotDTO
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		c.logger.Warnw("capacity cache entry corrupt", "error", err, "company_id", companyID)
		return nil, false
	}

	return &snapshot, true
}

func (c *RedisCapacityCache) Set(ctx context.Context, companyID uint, snapshot *dto.CapacitySnapshotDTO) {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		c.logger.Warnw("failed to marshal capacity snapshot", "error", err, "company_id", companyID)
		return
	}

	if err := c.client.Set(ctx, c.key(companyID), raw, c.ttl).Err(); err != nil {
		c.logger.Warnw("capacity cache write failed", "error", err, "company_id", companyID)
	}
}
