package ioc

import (
	"time"

	"gitee.com/flycash/school-notification/internal/pkg/ratelimit"
	"github.com/gotomicro/ego/core/econf"
	"github.com/redis/go-redis/v9"
)

// InitLimiter 测试消息的限流，默认每个学校每分钟 5 条
func InitLimiter(cmd redis.Cmdable) ratelimit.Limiter {
	type Config struct {
		Interval time.Duration `yaml:"interval"`
		Rate     int           `yaml:"rate"`
	}
	cfg := Config{Interval: time.Minute, Rate: 5}
	if err := econf.UnmarshalKey("ratelimit", &cfg); err != nil {
		panic(err)
	}
	return ratelimit.NewRedisSlidingWindowLimiter(cmd, cfg.Interval, cfg.Rate)
}
