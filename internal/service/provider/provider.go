package provider

import (
	"context"

	"gitee.com/flycash/school-notification/internal/domain"
)

// Message 一条要发送的消息，From 和 To 都是 E.164 格式的号码
type Message struct {
	Channel domain.Channel
	From    string
	To      string
	Body    string
}

// Provider 供应商接口。凭证按学校区分，所以每次调用都带上学校的配置
//
//go:generate mockgen -source=./provider.go -destination=./mocks/provider.mock.go -package=providermocks -typed Provider
type Provider interface {
	// Send 发送消息，供应商拒绝或者网络错误都返回 error
	Send(ctx context.Context, cfg domain.TwilioConfig, msg Message) (domain.TransportResult, error)
	// ValidateCredentials 只读调用，检查凭证是否可用
	ValidateCredentials(ctx context.Context, cfg domain.TwilioConfig) (domain.CredentialCheck, error)
}
