package local

import (
	"context"
	"strings"
	"time"

	"gitee.com/flycash/school-notification/internal/domain"
	"gitee.com/flycash/school-notification/internal/repository/cache"
	"github.com/gotomicro/ego/core/elog"
	ca "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

const defaultExpiration = time.Minute

var _ cache.TwilioConfigCache = (*Cache)(nil)

// Cache 进程内缓存。多实例部署的时候通过 Watch 监听 redis 的键空间通知来失效
type Cache struct {
	c      *ca.Cache
	logger *elog.Component
}

func NewCache(c *ca.Cache) *Cache {
	return &Cache{
		c:      c,
		logger: elog.DefaultLogger,
	}
}

func (l *Cache) Get(_ context.Context, schoolID int64) (domain.TwilioConfig, error) {
	v, ok := l.c.Get(cache.TwilioConfigKey(schoolID))
	if !ok {
		return domain.TwilioConfig{}, cache.ErrKeyNotFound
	}
	return v.(domain.TwilioConfig), nil
}

func (l *Cache) Set(_ context.Context, cfg domain.TwilioConfig) error {
	l.c.Set(cache.TwilioConfigKey(cfg.SchoolID), cfg, defaultExpiration)
	return nil
}

func (l *Cache) Del(_ context.Context, schoolID int64) error {
	l.c.Delete(cache.TwilioConfigKey(schoolID))
	return nil
}

// Watch 需要 redis 打开 notify-keyspace-events，ctx 取消之后退出
func (l *Cache) Watch(ctx context.Context, rdb *redis.Client) {
	pubsub := rdb.PSubscribe(ctx, "__keyspace@*__:"+cache.TwilioConfigPrefix+":*")
	defer pubsub.Close()
	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			l.handleChange(msg.Channel, msg.Payload)
		}
	}
}

// handleChange channel 形如 __keyspace@0__:twilio_config:1，payload 是事件类型
func (l *Cache) handleChange(channel, event string) {
	idx := strings.Index(channel, ":")
	if idx < 0 {
		l.logger.Error("监听redis键不正确", elog.String("channel", channel))
		return
	}
	key := channel[idx+1:]
	switch event {
	case "set", "del", "expired":
		// 下一次读取的时候会从 redis 重新加载
		l.c.Delete(key)
	}
}
