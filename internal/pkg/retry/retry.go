package retry

import (
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/retry"
)

// Config 重试策略配置，时间单位是毫秒
type Config struct {
	Type               string                    `yaml:"type"`
	FixedInterval      *FixedIntervalConfig      `yaml:"fixedInterval"`
	ExponentialBackoff *ExponentialBackoffConfig `yaml:"exponentialBackoff"`
}

type ExponentialBackoffConfig struct {
	InitialInterval int   `yaml:"initialInterval"`
	MaxInterval     int   `yaml:"maxInterval"`
	MaxRetries      int32 `yaml:"maxRetries"`
}

type FixedIntervalConfig struct {
	Interval   int   `yaml:"interval"`
	MaxRetries int32 `yaml:"maxRetries"`
}

// NewRetry 没有配置的时候使用指数退避，最多 10 次
func NewRetry(cfg Config) (retry.Strategy, error) {
	switch cfg.Type {
	case "fixed":
		if cfg.FixedInterval == nil {
			return nil, fmt.Errorf("缺少 fixedInterval 配置")
		}
		return retry.NewFixedIntervalRetryStrategy(msToDuration(cfg.FixedInterval.Interval), cfg.FixedInterval.MaxRetries)
	case "exponential":
		if cfg.ExponentialBackoff == nil {
			return nil, fmt.Errorf("缺少 exponentialBackoff 配置")
		}
		return retry.NewExponentialBackoffRetryStrategy(
			msToDuration(cfg.ExponentialBackoff.InitialInterval),
			msToDuration(cfg.ExponentialBackoff.MaxInterval),
			cfg.ExponentialBackoff.MaxRetries)
	case "":
		return retry.NewExponentialBackoffRetryStrategy(time.Second, 10*time.Second, 10)
	default:
		return nil, fmt.Errorf("未知的重试策略: %s", cfg.Type)
	}
}

func msToDuration(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
