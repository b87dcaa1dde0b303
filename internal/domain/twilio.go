package domain

import (
	"fmt"

	"gitee.com/flycash/school-notification/internal/errs"
)

// TwilioConfig 学校的 Twilio 账号配置，每个学校一条
type TwilioConfig struct {
	SchoolID            int64   `json:"schoolId"`
	AccountSID          string  `json:"accountSid"`
	AuthToken           string  `json:"authToken"`
	PhoneNumberSMS      string  `json:"phoneNumberSms"`
	PhoneNumberWhatsApp string  `json:"phoneNumberWhatsapp"`
	IsActive            bool    `json:"isActive"`
	MonthlyBudget       float64 `json:"monthlyBudget"`
	CurrentSpend        float64 `json:"currentSpend"`
	Ctime               int64   `json:"-"`
	Utime               int64   `json:"-"`
}

func (c TwilioConfig) Validate() error {
	if c.SchoolID <= 0 {
		return fmt.Errorf("%w: SchoolID = %d", errs.ErrInvalidParameter, c.SchoolID)
	}
	if c.AccountSID == "" || c.AuthToken == "" {
		return fmt.Errorf("%w: AccountSID 和 AuthToken 不能为空", errs.ErrInvalidParameter)
	}
	if c.MonthlyBudget < 0 {
		return fmt.Errorf("%w: MonthlyBudget = %f", errs.ErrInvalidParameter, c.MonthlyBudget)
	}
	return nil
}

// HasChannel 该渠道是否配置了发送号码
func (c TwilioConfig) HasChannel(ch Channel) bool {
	return c.FromNumber(ch) != ""
}

func (c TwilioConfig) FromNumber(ch Channel) string {
	switch ch {
	case ChannelSMS:
		return c.PhoneNumberSMS
	case ChannelWhatsApp:
		return c.PhoneNumberWhatsApp
	default:
		return ""
	}
}

// ResolveChannel 决定实际使用的渠道。请求的渠道没有配置号码的时候降级到另外一个渠道，
// 两个都没有配置返回 false
func (c TwilioConfig) ResolveChannel(requested Channel) (Channel, bool) {
	if c.HasChannel(requested) {
		return requested, true
	}
	if c.HasChannel(requested.Other()) {
		return requested.Other(), true
	}
	return "", false
}

// Masked 对外展示的时候隐藏 AuthToken
func (c TwilioConfig) Masked() TwilioConfig {
	if len(c.AuthToken) > 4 {
		c.AuthToken = "****" + c.AuthToken[len(c.AuthToken)-4:]
	} else if c.AuthToken != "" {
		c.AuthToken = "****"
	}
	return c
}

// CredentialCheck 校验 Twilio 凭证的结果
type CredentialCheck struct {
	Valid   bool   `json:"valid"`
	Details string `json:"details"`
}
