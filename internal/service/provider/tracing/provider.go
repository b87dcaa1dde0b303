package tracing

import (
	"context"
	"strconv"

	"gitee.com/flycash/school-notification/internal/domain"
	"gitee.com/flycash/school-notification/internal/service/provider"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var _ provider.Provider = (*Provider)(nil)

// Provider 为供应商实现添加链路追踪的装饰器
type Provider struct {
	provider provider.Provider
	tracer   trace.Tracer
}

// NewProvider 创建一个新的带有链路追踪的供应商
func NewProvider(p provider.Provider) *Provider {
	return &Provider{
		provider: p,
		tracer:   otel.Tracer("school-notification/provider"),
	}
}

func (p *Provider) Send(ctx context.Context, cfg domain.TwilioConfig, msg provider.Message) (domain.TransportResult, error) {
	ctx, span := p.tracer.Start(ctx, "Provider.Send",
		trace.WithAttributes(
			attribute.String("school.id", strconv.FormatInt(cfg.SchoolID, 10)),
			attribute.String("message.channel", msg.Channel.String()),
		))
	defer span.End()

	res, err := p.provider.Send(ctx, cfg, msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetAttributes(
			attribute.String("message.sid", res.ProviderMessageID),
			attribute.Float64("message.cost", res.Cost),
		)
	}
	return res, err
}

func (p *Provider) ValidateCredentials(ctx context.Context, cfg domain.TwilioConfig) (domain.CredentialCheck, error) {
	ctx, span := p.tracer.Start(ctx, "Provider.ValidateCredentials",
		trace.WithAttributes(attribute.String("school.id", strconv.FormatInt(cfg.SchoolID, 10))))
	defer span.End()

	res, err := p.provider.ValidateCredentials(ctx, cfg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetAttributes(attribute.Bool("credential.valid", res.Valid))
	}
	return res, err
}
