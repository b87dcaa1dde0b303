package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"gitee.com/flycash/school-notification/internal/domain"
	"gitee.com/flycash/school-notification/internal/repository/cache"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

var _ cache.TwilioConfigCache = (*Cache)(nil)

type Cache struct {
	rdb redis.Cmdable
}

func NewCache(rdb redis.Cmdable) *Cache {
	return &Cache{
		rdb: rdb,
	}
}

func (c *Cache) Del(ctx context.Context, schoolID int64) error {
	return c.rdb.Del(ctx, cache.TwilioConfigKey(schoolID)).Err()
}

func (c *Cache) Get(ctx context.Context, schoolID int64) (domain.TwilioConfig, error) {
	key := cache.TwilioConfigKey(schoolID)
	val, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.TwilioConfig{}, cache.ErrKeyNotFound
		}
		return domain.TwilioConfig{}, fmt.Errorf("failed to get twilio config from redis %w", err)
	}

	var cfg domain.TwilioConfig
	err = json.Unmarshal(val, &cfg)
	if err != nil {
		return domain.TwilioConfig{}, fmt.Errorf("failed to unmarshal twilio config %w", err)
	}
	return cfg, nil
}

func (c *Cache) Set(ctx context.Context, cfg domain.TwilioConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal twilio config %w", err)
	}
	err = c.rdb.Set(ctx, cache.TwilioConfigKey(cfg.SchoolID), data, cache.DefaultExpiredTime).Err()
	if err != nil {
		return fmt.Errorf("failed to set twilio config to redis %w", err)
	}
	return nil
}
