package gateway

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gitee.com/flycash/school-notification/internal/domain"
	"gitee.com/flycash/school-notification/internal/errs"
	"gitee.com/flycash/school-notification/internal/pkg/ratelimit"
	"gitee.com/flycash/school-notification/internal/service/provider"
	"gitee.com/flycash/school-notification/internal/service/twilioconfig"
	"github.com/gotomicro/ego/core/elog"
)

const testRecipientName = "Test"

// LogRecorder 写通知记录
//
//go:generate mockgen -source=./gateway.go -destination=./mocks/recorder.mock.go -package=gatewaymocks -typed LogRecorder
type LogRecorder interface {
	Record(ctx context.Context, log domain.NotificationLog) (domain.NotificationLog, error)
}

// TestRequest 测试消息
type TestRequest struct {
	Phone   string         `json:"phone"`
	Message string         `json:"message"`
	Channel domain.Channel `json:"channel"`
}

// Service 渠道网关，决定实际使用的渠道，发送并记录结果
//
//go:generate mockgen -source=./gateway.go -destination=./mocks/gateway.mock.go -package=gatewaymocks -typed Service
type Service interface {
	// Send 学校没有启用或者没有可用渠道的时候直接返回 Suppressed，不写记录。
	// 只要真正尝试了发送，不论成功失败都会写一条记录
	Send(ctx context.Context, req domain.SendRequest) domain.SendResult
	// SendTest 跳过规则和偏好，但是仍然受学校总开关控制，按学校限流
	SendTest(ctx context.Context, schoolID int64, req TestRequest) (domain.SendResult, error)
	// Redeliver 重新发送 log 中的消息，不写新记录，结果放在返回的 Log 上由调用方保存
	Redeliver(ctx context.Context, log domain.NotificationLog) domain.SendResult
	ValidateCredentials(ctx context.Context, schoolID int64) (domain.CredentialCheck, error)
}

type gateway struct {
	configs  twilioconfig.Service
	provider provider.Provider
	recorder LogRecorder
	limiter  ratelimit.Limiter
	now      func() time.Time
	logger   *elog.Component
}

func NewService(configs twilioconfig.Service,
	p provider.Provider,
	recorder LogRecorder,
	limiter ratelimit.Limiter,
	now func() time.Time,
) Service {
	if now == nil {
		now = time.Now
	}
	return &gateway{
		configs:  configs,
		provider: p,
		recorder: recorder,
		limiter:  limiter,
		now:      now,
		logger:   elog.DefaultLogger,
	}
}

func (g *gateway) Send(ctx context.Context, req domain.SendRequest) domain.SendResult {
	cfg, ch, reason, ok := g.prepare(ctx, req.SchoolID, req.Channel)
	if !ok {
		return domain.Suppressed(reason)
	}

	log := domain.NotificationLog{
		SchoolID:         req.SchoolID,
		RecipientID:      req.RecipientID,
		RecipientName:    req.RecipientName,
		RecipientPhone:   req.Phone,
		RecipientType:    req.RecipientType,
		NotificationType: req.NotificationType,
		Channel:          ch,
		Message:          req.Message,
	}
	if req.Template != nil {
		log.TemplateID = req.Template.ID
		log.TemplateName = req.Template.Name
	}

	res, sendErr := g.deliver(ctx, cfg, provider.Message{
		Channel: ch,
		From:    cfg.FromNumber(ch),
		To:      req.Phone,
		Body:    req.Message,
	})
	g.apply(&log, res, sendErr)

	saved, err := g.recorder.Record(ctx, log)
	if err != nil {
		g.logger.Error("写通知记录失败",
			elog.Int64("schoolID", req.SchoolID),
			elog.String("channel", ch.String()),
			elog.FieldErr(err))
		saved = log
	}
	if sendErr != nil {
		return domain.Failed(saved, sendErr)
	}
	g.addSpend(ctx, req.SchoolID, res.Cost)
	// 消息已经发出去了，记录失败只通过 Err 带出去
	result := domain.Sent(saved)
	result.Err = err
	return result
}

func (g *gateway) SendTest(ctx context.Context, schoolID int64, req TestRequest) (domain.SendResult, error) {
	if req.Phone == "" || req.Message == "" {
		return domain.SendResult{}, fmt.Errorf("%w: 手机号和消息不能为空", errs.ErrInvalidParameter)
	}
	if req.Channel == "" {
		req.Channel = domain.ChannelSMS
	}
	if !req.Channel.IsValid() {
		return domain.SendResult{}, fmt.Errorf("%w: Channel = %q", errs.ErrInvalidParameter, req.Channel)
	}
	if g.limiter != nil {
		limited, err := g.limiter.Limit(ctx, "test_send:"+strconv.FormatInt(schoolID, 10))
		if err != nil {
			return domain.SendResult{}, err
		}
		if limited {
			return domain.SendResult{}, fmt.Errorf("%w: 学校 %d 测试消息发送太频繁", errs.ErrRateLimited, schoolID)
		}
	}
	return g.Send(ctx, domain.SendRequest{
		SchoolID:         schoolID,
		RecipientName:    testRecipientName,
		Phone:            req.Phone,
		Message:          req.Message,
		Channel:          req.Channel,
		NotificationType: domain.NotificationTypeTest,
	}), nil
}

func (g *gateway) Redeliver(ctx context.Context, log domain.NotificationLog) domain.SendResult {
	cfg, ch, reason, ok := g.prepare(ctx, log.SchoolID, log.Channel)
	if !ok {
		return domain.Suppressed(reason)
	}
	log.Channel = ch
	log.ProviderSID = ""
	log.ErrorMessage = ""
	log.DeliveredAt = 0
	log.ReadAt = 0
	res, err := g.deliver(ctx, cfg, provider.Message{
		Channel: ch,
		From:    cfg.FromNumber(ch),
		To:      log.RecipientPhone,
		Body:    log.Message,
	})
	g.apply(&log, res, err)
	if err != nil {
		return domain.Failed(log, err)
	}
	g.addSpend(ctx, log.SchoolID, res.Cost)
	return domain.Sent(log)
}

func (g *gateway) ValidateCredentials(ctx context.Context, schoolID int64) (domain.CredentialCheck, error) {
	cfg, err := g.configs.Get(ctx, schoolID)
	if errors.Is(err, errs.ErrTwilioConfigNotFound) {
		return domain.CredentialCheck{Valid: false, Details: "学校没有配置 Twilio"}, nil
	}
	if err != nil {
		return domain.CredentialCheck{}, err
	}
	return g.provider.ValidateCredentials(ctx, cfg)
}

// prepare 检查总开关并且决定实际使用的渠道
func (g *gateway) prepare(ctx context.Context, schoolID int64, requested domain.Channel) (domain.TwilioConfig, domain.Channel, domain.SuppressReason, bool) {
	cfg, err := g.configs.Get(ctx, schoolID)
	if err != nil {
		if !errors.Is(err, errs.ErrTwilioConfigNotFound) {
			g.logger.Error("获取 Twilio 配置失败", elog.Int64("schoolID", schoolID), elog.FieldErr(err))
		}
		return domain.TwilioConfig{}, "", domain.SuppressMasterToggleOff, false
	}
	if !cfg.IsActive {
		return domain.TwilioConfig{}, "", domain.SuppressMasterToggleOff, false
	}
	ch, ok := cfg.ResolveChannel(requested)
	if !ok {
		return domain.TwilioConfig{}, "", domain.SuppressNoChannelConfigured, false
	}
	if ch != requested {
		g.logger.Info("渠道没有配置，降级",
			elog.Int64("schoolID", schoolID),
			elog.String("requested", requested.String()),
			elog.String("actual", ch.String()))
	}
	return cfg, ch, "", true
}

// deliver 调用供应商，panic 也转换成发送失败
func (g *gateway) deliver(ctx context.Context, cfg domain.TwilioConfig, msg provider.Message) (res domain.TransportResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			g.logger.Error("发送消息 panic", elog.Int64("schoolID", cfg.SchoolID), elog.Any("panic", r))
			res = domain.TransportResult{}
			err = fmt.Errorf("%w: %v", errs.ErrSendFailed, r)
		}
	}()
	return g.provider.Send(ctx, cfg, msg)
}

func (g *gateway) apply(log *domain.NotificationLog, res domain.TransportResult, err error) {
	log.SentAt = g.now().UnixMilli()
	log.ProviderSID = res.ProviderMessageID
	if err != nil {
		log.Status = domain.LogStatusFailed
		log.ErrorMessage = res.ErrorMessage
		if log.ErrorMessage == "" {
			log.ErrorMessage = err.Error()
		}
		log.Cost = 0
		return
	}
	log.Status = domain.LogStatusSent
	log.Cost = res.Cost
}

func (g *gateway) addSpend(ctx context.Context, schoolID int64, cost float64) {
	if err := g.configs.AddSpend(ctx, schoolID, cost); err != nil {
		g.logger.Warn("累加花费失败",
			elog.Int64("schoolID", schoolID),
			elog.Any("cost", cost),
			elog.FieldErr(err))
	}
}
