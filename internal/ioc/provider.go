package ioc

import (
	"time"

	"gitee.com/flycash/school-notification/internal/service/provider"
	"gitee.com/flycash/school-notification/internal/service/provider/breaker"
	"gitee.com/flycash/school-notification/internal/service/provider/metrics"
	"gitee.com/flycash/school-notification/internal/service/provider/tracing"
	"gitee.com/flycash/school-notification/internal/service/provider/twilio"
	"github.com/go-kratos/aegis/circuitbreaker/sre"
	"github.com/gotomicro/ego/core/econf"
	"github.com/prometheus/client_golang/prometheus"
)

// InitProvider 装配顺序：指标 -> 链路 -> 熔断 -> twilio
func InitProvider(reg prometheus.Registerer) provider.Provider {
	type BreakerConfig struct {
		Success float64       `yaml:"success"`
		Request int64         `yaml:"request"`
		Window  time.Duration `yaml:"window"`
	}
	type Config struct {
		Cost    twilio.Cost   `yaml:"cost"`
		Breaker BreakerConfig `yaml:"breaker"`
	}
	cfg := Config{
		Cost: twilio.Cost{SMS: 0.0079, WhatsApp: 0.005},
		Breaker: BreakerConfig{
			Success: 0.6,
			Request: 20,
			Window:  10 * time.Second,
		},
	}
	if err := econf.UnmarshalKey("twilio", &cfg); err != nil {
		panic(err)
	}
	var p provider.Provider = twilio.NewProvider(twilio.NewRestClient, cfg.Cost)
	p = breaker.NewProvider(p,
		sre.WithSuccess(cfg.Breaker.Success),
		sre.WithRequest(cfg.Breaker.Request),
		sre.WithWindow(cfg.Breaker.Window))
	p = tracing.NewProvider(p)
	return metrics.NewProvider("twilio", p, reg)
}
