//go:build unit

package twilio_test

import (
	"context"
	"errors"
	"testing"

	"gitee.com/flycash/school-notification/internal/domain"
	"gitee.com/flycash/school-notification/internal/errs"
	"gitee.com/flycash/school-notification/internal/service/provider"
	"gitee.com/flycash/school-notification/internal/service/provider/twilio"
	twiliomocks "gitee.com/flycash/school-notification/internal/service/provider/twilio/mocks"
	"github.com/ecodeclub/ekit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/mock/gomock"
)

func TestProvider_Send(t *testing.T) {
	t.Parallel()

	cfg := domain.TwilioConfig{
		SchoolID:            1,
		AccountSID:          "AC123",
		AuthToken:           "token",
		PhoneNumberSMS:      "+15550000001",
		PhoneNumberWhatsApp: "+15550000002",
	}
	cost := twilio.Cost{SMS: 0.0079, WhatsApp: 0.005}

	testCases := []struct {
		name    string
		msg     provider.Message
		mock    func(t *testing.T, cli *twiliomocks.MockClient)
		want    domain.TransportResult
		wantErr error
	}{
		{
			name: "短信发送成功，使用 Twilio 返回的价格",
			msg:  provider.Message{Channel: domain.ChannelSMS, From: "+15550000001", To: "+15551112222", Body: "hi"},
			mock: func(t *testing.T, cli *twiliomocks.MockClient) {
				cli.EXPECT().CreateMessage(gomock.Any()).
					DoAndReturn(func(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error) {
						assert.Equal(t, "+15551112222", *params.To)
						assert.Equal(t, "+15550000001", *params.From)
						assert.Equal(t, "hi", *params.Body)
						return &openapi.ApiV2010Message{
							Sid:    ekit.ToPtr("SM1"),
							Status: ekit.ToPtr("queued"),
							Price:  ekit.ToPtr("-0.0075"),
						}, nil
					})
			},
			want: domain.TransportResult{Success: true, Cost: 0.0075, ProviderMessageID: "SM1"},
		},
		{
			name: "WhatsApp 号码加上前缀，没有价格的时候估算",
			msg:  provider.Message{Channel: domain.ChannelWhatsApp, From: "+15550000002", To: "+15551112222", Body: "hi"},
			mock: func(t *testing.T, cli *twiliomocks.MockClient) {
				cli.EXPECT().CreateMessage(gomock.Any()).
					DoAndReturn(func(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error) {
						assert.Equal(t, "whatsapp:+15551112222", *params.To)
						assert.Equal(t, "whatsapp:+15550000002", *params.From)
						return &openapi.ApiV2010Message{Sid: ekit.ToPtr("SM2")}, nil
					})
			},
			want: domain.TransportResult{Success: true, Cost: 0.005, ProviderMessageID: "SM2"},
		},
		{
			name: "Twilio 返回错误",
			msg:  provider.Message{Channel: domain.ChannelSMS, To: "+1", Body: "hi"},
			mock: func(t *testing.T, cli *twiliomocks.MockClient) {
				cli.EXPECT().CreateMessage(gomock.Any()).Return(nil, errors.New("invalid To number"))
			},
			want:    domain.TransportResult{ErrorMessage: "invalid To number"},
			wantErr: errs.ErrSendFailed,
		},
		{
			name: "消息状态是 failed",
			msg:  provider.Message{Channel: domain.ChannelSMS, To: "+15551112222", Body: "hi"},
			mock: func(t *testing.T, cli *twiliomocks.MockClient) {
				cli.EXPECT().CreateMessage(gomock.Any()).Return(&openapi.ApiV2010Message{
					Sid:          ekit.ToPtr("SM3"),
					Status:       ekit.ToPtr("failed"),
					ErrorMessage: ekit.ToPtr("unreachable"),
				}, nil)
			},
			want:    domain.TransportResult{Cost: 0.0079, ProviderMessageID: "SM3", ErrorMessage: "unreachable"},
			wantErr: errs.ErrSendFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			cli := twiliomocks.NewMockClient(ctrl)
			tc.mock(t, cli)
			p := twilio.NewProvider(func(sid, token string) twilio.Client {
				assert.Equal(t, cfg.AccountSID, sid)
				assert.Equal(t, cfg.AuthToken, token)
				return cli
			}, cost)

			res, err := p.Send(context.Background(), cfg, tc.msg)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.want, res)
		})
	}
}

func TestProvider_ValidateCredentials(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		cfg       domain.TwilioConfig
		mock      func(cli *twiliomocks.MockClient)
		wantValid bool
	}{
		{
			name:      "没有配置凭证",
			cfg:       domain.TwilioConfig{SchoolID: 1},
			mock:      func(cli *twiliomocks.MockClient) {},
			wantValid: false,
		},
		{
			name: "账号可用",
			cfg:  domain.TwilioConfig{SchoolID: 1, AccountSID: "AC1", AuthToken: "t"},
			mock: func(cli *twiliomocks.MockClient) {
				cli.EXPECT().FetchAccount("AC1").Return(&openapi.ApiV2010Account{
					Status:       ekit.ToPtr("active"),
					FriendlyName: ekit.ToPtr("school"),
				}, nil)
			},
			wantValid: true,
		},
		{
			name: "账号被暂停",
			cfg:  domain.TwilioConfig{SchoolID: 1, AccountSID: "AC1", AuthToken: "t"},
			mock: func(cli *twiliomocks.MockClient) {
				cli.EXPECT().FetchAccount("AC1").Return(&openapi.ApiV2010Account{
					Status: ekit.ToPtr("suspended"),
				}, nil)
			},
			wantValid: false,
		},
		{
			name: "凭证错误",
			cfg:  domain.TwilioConfig{SchoolID: 1, AccountSID: "AC1", AuthToken: "wrong"},
			mock: func(cli *twiliomocks.MockClient) {
				cli.EXPECT().FetchAccount("AC1").Return(nil, errors.New("Authenticate"))
			},
			wantValid: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			cli := twiliomocks.NewMockClient(ctrl)
			tc.mock(cli)
			p := twilio.NewProvider(func(_, _ string) twilio.Client { return cli }, twilio.Cost{})

			res, err := p.ValidateCredentials(context.Background(), tc.cfg)
			require.NoError(t, err)
			assert.Equal(t, tc.wantValid, res.Valid)
			assert.NotEmpty(t, res.Details)
		})
	}
}
