package twilio

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gitee.com/flycash/school-notification/internal/domain"
	"gitee.com/flycash/school-notification/internal/errs"
	"gitee.com/flycash/school-notification/internal/service/provider"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

const whatsAppPrefix = "whatsapp:"

var _ provider.Provider = (*Provider)(nil)

// Cost 下单的时候 Twilio 一般还没有给出价格，先按渠道估算
type Cost struct {
	SMS      float64 `yaml:"sms"`
	WhatsApp float64 `yaml:"whatsapp"`
}

func (c Cost) For(ch domain.Channel) float64 {
	if ch == domain.ChannelWhatsApp {
		return c.WhatsApp
	}
	return c.SMS
}

// Provider Twilio 短信和 WhatsApp 的实现
type Provider struct {
	newClient ClientFactory
	cost      Cost
}

func NewProvider(newClient ClientFactory, cost Cost) *Provider {
	return &Provider{
		newClient: newClient,
		cost:      cost,
	}
}

func (p *Provider) Send(_ context.Context, cfg domain.TwilioConfig, msg provider.Message) (domain.TransportResult, error) {
	cli := p.newClient(cfg.AccountSID, cfg.AuthToken)
	params := &openapi.CreateMessageParams{}
	params.SetTo(address(msg.Channel, msg.To))
	params.SetFrom(address(msg.Channel, msg.From))
	params.SetBody(msg.Body)

	resp, err := cli.CreateMessage(params)
	if err != nil {
		return domain.TransportResult{ErrorMessage: err.Error()}, fmt.Errorf("%w: %w", errs.ErrSendFailed, err)
	}
	res := domain.TransportResult{
		Success: true,
		Cost:    p.cost.For(msg.Channel),
	}
	if resp.Sid != nil {
		res.ProviderMessageID = *resp.Sid
	}
	if resp.Price != nil {
		// Twilio 返回的价格是负数，表示扣费
		if price, er := strconv.ParseFloat(*resp.Price, 64); er == nil {
			res.Cost = math.Abs(price)
		}
	}
	if resp.Status != nil && (*resp.Status == "failed" || *resp.Status == "undelivered") {
		res.Success = false
		res.ErrorMessage = *resp.Status
		if resp.ErrorMessage != nil {
			res.ErrorMessage = *resp.ErrorMessage
		}
		return res, fmt.Errorf("%w: %s", errs.ErrSendFailed, res.ErrorMessage)
	}
	return res, nil
}

func (p *Provider) ValidateCredentials(_ context.Context, cfg domain.TwilioConfig) (domain.CredentialCheck, error) {
	if cfg.AccountSID == "" || cfg.AuthToken == "" {
		return domain.CredentialCheck{Valid: false, Details: "未配置 AccountSID 或者 AuthToken"}, nil
	}
	acc, err := p.newClient(cfg.AccountSID, cfg.AuthToken).FetchAccount(cfg.AccountSID)
	if err != nil {
		// 凭证错误也是从这里返回，按校验不通过处理
		return domain.CredentialCheck{Valid: false, Details: err.Error()}, nil
	}
	status := ""
	if acc.Status != nil {
		status = *acc.Status
	}
	name := ""
	if acc.FriendlyName != nil {
		name = *acc.FriendlyName
	}
	if status != "" && status != "active" {
		return domain.CredentialCheck{Valid: false, Details: fmt.Sprintf("账号 %s 状态为 %s", name, status)}, nil
	}
	return domain.CredentialCheck{Valid: true, Details: fmt.Sprintf("账号 %s 可用", name)}, nil
}

// address WhatsApp 号码需要加上 whatsapp: 前缀
func address(ch domain.Channel, phone string) string {
	if ch == domain.ChannelWhatsApp && !strings.HasPrefix(phone, whatsAppPrefix) {
		return whatsAppPrefix + phone
	}
	return phone
}
