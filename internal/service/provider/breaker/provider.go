package breaker

import (
	"context"
	"fmt"
	"sync"

	"gitee.com/flycash/school-notification/internal/domain"
	"gitee.com/flycash/school-notification/internal/errs"
	"gitee.com/flycash/school-notification/internal/service/provider"
	"github.com/go-kratos/aegis/circuitbreaker"
	"github.com/go-kratos/aegis/circuitbreaker/sre"
)

var _ provider.Provider = (*Provider)(nil)

// Provider 按 Twilio 账号熔断。一个学校的账号出问题不影响其他学校
type Provider struct {
	provider provider.Provider
	opts     []sre.Option

	mu       sync.Mutex
	breakers map[string]circuitbreaker.CircuitBreaker
}

func NewProvider(p provider.Provider, opts ...sre.Option) *Provider {
	return &Provider{
		provider: p,
		opts:     opts,
		breakers: make(map[string]circuitbreaker.CircuitBreaker),
	}
}

func (p *Provider) Send(ctx context.Context, cfg domain.TwilioConfig, msg provider.Message) (domain.TransportResult, error) {
	b := p.breaker(cfg.AccountSID)
	if err := b.Allow(); err != nil {
		return domain.TransportResult{ErrorMessage: "供应商熔断中"},
			fmt.Errorf("%w: 账号 %s 已熔断: %w", errs.ErrSendFailed, cfg.AccountSID, err)
	}
	res, err := p.provider.Send(ctx, cfg, msg)
	if err != nil {
		b.MarkFailed()
		return res, err
	}
	b.MarkSuccess()
	return res, nil
}

func (p *Provider) ValidateCredentials(ctx context.Context, cfg domain.TwilioConfig) (domain.CredentialCheck, error) {
	return p.provider.ValidateCredentials(ctx, cfg)
}

func (p *Provider) breaker(accountSID string) circuitbreaker.CircuitBreaker {
	p.mu.Lock()
	defer p.mu.Unlock()
	b, ok := p.breakers[accountSID]
	if !ok {
		b = sre.NewBreaker(p.opts...)
		p.breakers[accountSID] = b
	}
	return b
}
