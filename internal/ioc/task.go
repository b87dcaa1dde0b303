package ioc

import (
	"context"

	"gitee.com/flycash/school-notification/internal/repository/cache/local"
	"github.com/redis/go-redis/v9"
)

func InitTasks(localCache *local.Cache, rdb *redis.Client) []Task {
	return []Task{
		&configCacheWatcher{c: localCache, rdb: rdb},
	}
}

// configCacheWatcher 其他实例修改了 Twilio 配置之后，失效本地缓存
type configCacheWatcher struct {
	c   *local.Cache
	rdb *redis.Client
}

func (w *configCacheWatcher) Start(ctx context.Context) {
	go w.c.Watch(ctx, w.rdb)
}
