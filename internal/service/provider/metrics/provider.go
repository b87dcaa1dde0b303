// Provider 为供应商实现添加指标收集的装饰器
package metrics

import (
	"context"
	"time"

	"gitee.com/flycash/school-notification/internal/domain"
	"gitee.com/flycash/school-notification/internal/service/provider"
	"github.com/prometheus/client_golang/prometheus"
)

var _ provider.Provider = (*Provider)(nil)

// Provider 为供应商实现添加指标收集的装饰器
type Provider struct {
	provider            provider.Provider
	sendDurationSummary *prometheus.SummaryVec
	sendCounter         *prometheus.CounterVec
	sendStatusCounter   *prometheus.CounterVec
	sendCostCounter     *prometheus.CounterVec
	name                string
}

// NewProvider 创建一个新的带有指标收集的供应商，指标注册到 reg 上
func NewProvider(name string, p provider.Provider, reg prometheus.Registerer) *Provider {
	sendDurationSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "provider_send_duration_seconds",
			Help:       "供应商发送通知耗时统计（秒）",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.95: 0.005, 0.99: 0.001},
			MaxAge:     time.Minute * 5,
		},
		[]string{"provider", "channel", "status"},
	)

	sendCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "provider_send_total",
			Help: "供应商发送通知总数",
		},
		[]string{"provider", "channel"},
	)

	sendStatusCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "provider_send_status_total",
			Help: "供应商发送通知状态统计",
		},
		[]string{"provider", "channel", "status"},
	)

	sendCostCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "provider_send_cost_total",
			Help: "供应商发送通知的花费",
		},
		[]string{"provider", "channel"},
	)

	// 注册指标
	reg.MustRegister(sendDurationSummary, sendCounter, sendStatusCounter, sendCostCounter)

	return &Provider{
		provider:            p,
		sendDurationSummary: sendDurationSummary,
		sendCounter:         sendCounter,
		sendStatusCounter:   sendStatusCounter,
		sendCostCounter:     sendCostCounter,
		name:                name,
	}
}

// Send 发送通知并记录指标
func (p *Provider) Send(ctx context.Context, cfg domain.TwilioConfig, msg provider.Message) (domain.TransportResult, error) {
	startTime := time.Now()
	channel := msg.Channel.String()

	p.sendCounter.WithLabelValues(p.name, channel).Inc()

	res, err := p.provider.Send(ctx, cfg, msg)

	duration := time.Since(startTime).Seconds()
	status := "success"
	if err != nil {
		status = "failed"
	}
	p.sendStatusCounter.WithLabelValues(p.name, channel, status).Inc()
	p.sendDurationSummary.WithLabelValues(p.name, channel, status).Observe(duration)
	if err == nil {
		p.sendCostCounter.WithLabelValues(p.name, channel).Add(res.Cost)
	}
	return res, err
}

func (p *Provider) ValidateCredentials(ctx context.Context, cfg domain.TwilioConfig) (domain.CredentialCheck, error) {
	return p.provider.ValidateCredentials(ctx, cfg)
}
