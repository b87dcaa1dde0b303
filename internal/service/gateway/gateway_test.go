//go:build unit

package gateway_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gitee.com/flycash/school-notification/internal/domain"
	"gitee.com/flycash/school-notification/internal/errs"
	limitmocks "gitee.com/flycash/school-notification/internal/pkg/ratelimit/mocks"
	"gitee.com/flycash/school-notification/internal/service/gateway"
	gatewaymocks "gitee.com/flycash/school-notification/internal/service/gateway/mocks"
	"gitee.com/flycash/school-notification/internal/service/provider"
	providermocks "gitee.com/flycash/school-notification/internal/service/provider/mocks"
	twilioconfigmocks "gitee.com/flycash/school-notification/internal/service/twilioconfig/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GatewayTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	configs  *twilioconfigmocks.MockService
	provider *providermocks.MockProvider
	recorder *gatewaymocks.MockLogRecorder
	limiter  *limitmocks.MockLimiter
	now      time.Time
	svc      gateway.Service
}

func TestGatewayTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(GatewayTestSuite))
}

func (s *GatewayTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.configs = twilioconfigmocks.NewMockService(s.ctrl)
	s.provider = providermocks.NewMockProvider(s.ctrl)
	s.recorder = gatewaymocks.NewMockLogRecorder(s.ctrl)
	s.limiter = limitmocks.NewMockLimiter(s.ctrl)
	s.now = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	s.svc = gateway.NewService(s.configs, s.provider, s.recorder, s.limiter, func() time.Time { return s.now })
}

func (s *GatewayTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *GatewayTestSuite) activeConfig() domain.TwilioConfig {
	return domain.TwilioConfig{
		SchoolID:            1,
		AccountSID:          "AC1",
		AuthToken:           "token",
		PhoneNumberSMS:      "+15550000001",
		PhoneNumberWhatsApp: "+15550000002",
		IsActive:            true,
	}
}

func (s *GatewayTestSuite) request() domain.SendRequest {
	return domain.SendRequest{
		SchoolID:         1,
		RecipientID:      2,
		RecipientName:    "John",
		RecipientType:    domain.RecipientStudent,
		Phone:            "+15551112222",
		Message:          "Hi John",
		Channel:          domain.ChannelSMS,
		NotificationType: domain.NotificationTypeLessonReminder,
		Template:         &domain.NotificationTemplate{ID: 9, Name: "Lesson Reminder"},
	}
}

// recordWithID 模拟写记录，返回带 ID 的记录
func (s *GatewayTestSuite) recordWithID(check func(l domain.NotificationLog)) {
	s.recorder.EXPECT().Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, l domain.NotificationLog) (domain.NotificationLog, error) {
			check(l)
			l.ID = 100
			return l, nil
		})
}

func (s *GatewayTestSuite) TestSend_Suppressed() {
	t := s.T()

	testCases := []struct {
		name string
		cfg  domain.TwilioConfig
		err  error
		want domain.SuppressReason
	}{
		{
			name: "学校没有配置",
			err:  errs.ErrTwilioConfigNotFound,
			want: domain.SuppressMasterToggleOff,
		},
		{
			name: "读取配置失败",
			err:  errors.New("mock db error"),
			want: domain.SuppressMasterToggleOff,
		},
		{
			name: "总开关关闭",
			cfg: domain.TwilioConfig{
				SchoolID: 1, PhoneNumberSMS: "+15550000001", IsActive: false,
			},
			want: domain.SuppressMasterToggleOff,
		},
		{
			name: "没有配置任何号码",
			cfg:  domain.TwilioConfig{SchoolID: 1, IsActive: true},
			want: domain.SuppressNoChannelConfigured,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s.configs.EXPECT().Get(gomock.Any(), int64(1)).Return(tc.cfg, tc.err)
			// 不会调用 provider 和 recorder
			res := s.svc.Send(context.Background(), s.request())
			assert.Equal(t, domain.OutcomeSuppressed, res.Outcome)
			assert.Equal(t, tc.want, res.Reason)
		})
	}
}

func (s *GatewayTestSuite) TestSend_Success() {
	t := s.T()
	cfg := s.activeConfig()
	s.configs.EXPECT().Get(gomock.Any(), int64(1)).Return(cfg, nil)
	s.provider.EXPECT().Send(gomock.Any(), cfg, provider.Message{
		Channel: domain.ChannelSMS,
		From:    "+15550000001",
		To:      "+15551112222",
		Body:    "Hi John",
	}).Return(domain.TransportResult{Success: true, Cost: 0.0079, ProviderMessageID: "SM1"}, nil)
	s.recordWithID(func(l domain.NotificationLog) {
		assert.Equal(t, domain.LogStatusSent, l.Status)
		assert.Equal(t, domain.ChannelSMS, l.Channel)
		assert.Equal(t, "SM1", l.ProviderSID)
		assert.Equal(t, int64(9), l.TemplateID)
		assert.Equal(t, "Lesson Reminder", l.TemplateName)
		assert.Equal(t, s.now.UnixMilli(), l.SentAt)
	})
	s.configs.EXPECT().AddSpend(gomock.Any(), int64(1), 0.0079).Return(nil)

	res := s.svc.Send(context.Background(), s.request())
	require.True(t, res.IsSent())
	assert.Equal(t, uint64(100), res.Log.ID)
	assert.NoError(t, res.Err)
}

func (s *GatewayTestSuite) TestSend_ChannelFallback() {
	t := s.T()
	cfg := s.activeConfig()
	cfg.PhoneNumberSMS = ""
	s.configs.EXPECT().Get(gomock.Any(), int64(1)).Return(cfg, nil)
	s.provider.EXPECT().Send(gomock.Any(), cfg, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.TwilioConfig, msg provider.Message) (domain.TransportResult, error) {
			assert.Equal(t, domain.ChannelWhatsApp, msg.Channel)
			assert.Equal(t, "+15550000002", msg.From)
			return domain.TransportResult{Success: true, Cost: 0.005, ProviderMessageID: "SM2"}, nil
		})
	s.recordWithID(func(l domain.NotificationLog) {
		assert.Equal(t, domain.ChannelWhatsApp, l.Channel)
	})
	s.configs.EXPECT().AddSpend(gomock.Any(), int64(1), 0.005).Return(nil)

	res := s.svc.Send(context.Background(), s.request())
	require.True(t, res.IsSent())
	assert.Equal(t, domain.ChannelWhatsApp, res.Log.Channel)
}

func (s *GatewayTestSuite) TestSend_TransportFailed() {
	t := s.T()
	cfg := s.activeConfig()
	s.configs.EXPECT().Get(gomock.Any(), int64(1)).Return(cfg, nil)
	s.provider.EXPECT().Send(gomock.Any(), cfg, gomock.Any()).
		Return(domain.TransportResult{ErrorMessage: "invalid To number"}, errs.ErrSendFailed)
	s.recordWithID(func(l domain.NotificationLog) {
		assert.Equal(t, domain.LogStatusFailed, l.Status)
		assert.Equal(t, "invalid To number", l.ErrorMessage)
		assert.Zero(t, l.Cost)
	})

	res := s.svc.Send(context.Background(), s.request())
	assert.Equal(t, domain.OutcomeFailed, res.Outcome)
	assert.ErrorIs(t, res.Err, errs.ErrSendFailed)
	assert.Equal(t, uint64(100), res.Log.ID)
}

func (s *GatewayTestSuite) TestSend_ProviderPanic() {
	t := s.T()
	cfg := s.activeConfig()
	s.configs.EXPECT().Get(gomock.Any(), int64(1)).Return(cfg, nil)
	s.provider.EXPECT().Send(gomock.Any(), cfg, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.TwilioConfig, _ provider.Message) (domain.TransportResult, error) {
			panic("boom")
		})
	s.recordWithID(func(l domain.NotificationLog) {
		assert.Equal(t, domain.LogStatusFailed, l.Status)
		assert.Contains(t, l.ErrorMessage, "boom")
	})

	res := s.svc.Send(context.Background(), s.request())
	assert.Equal(t, domain.OutcomeFailed, res.Outcome)
}

func (s *GatewayTestSuite) TestSend_RecordFailed() {
	t := s.T()
	cfg := s.activeConfig()
	s.configs.EXPECT().Get(gomock.Any(), int64(1)).Return(cfg, nil)
	s.provider.EXPECT().Send(gomock.Any(), cfg, gomock.Any()).
		Return(domain.TransportResult{Success: true, Cost: 0.01}, nil)
	s.recorder.EXPECT().Record(gomock.Any(), gomock.Any()).
		Return(domain.NotificationLog{}, errors.New("mock db error"))
	s.configs.EXPECT().AddSpend(gomock.Any(), int64(1), 0.01).Return(nil)

	res := s.svc.Send(context.Background(), s.request())
	assert.True(t, res.IsSent())
	assert.EqualError(t, res.Err, "mock db error")
}

func (s *GatewayTestSuite) TestSendTest() {
	t := s.T()

	_, err := s.svc.SendTest(context.Background(), 1, gateway.TestRequest{Message: "hi"})
	assert.ErrorIs(t, err, errs.ErrInvalidParameter)

	s.limiter.EXPECT().Limit(gomock.Any(), "test_send:1").Return(true, nil)
	_, err = s.svc.SendTest(context.Background(), 1, gateway.TestRequest{Phone: "+1555", Message: "hi"})
	assert.ErrorIs(t, err, errs.ErrRateLimited)

	cfg := s.activeConfig()
	s.limiter.EXPECT().Limit(gomock.Any(), "test_send:1").Return(false, nil)
	s.configs.EXPECT().Get(gomock.Any(), int64(1)).Return(cfg, nil)
	s.provider.EXPECT().Send(gomock.Any(), cfg, gomock.Any()).
		Return(domain.TransportResult{Success: true, Cost: 0.0079, ProviderMessageID: "SM3"}, nil)
	s.recordWithID(func(l domain.NotificationLog) {
		assert.Equal(t, domain.NotificationTypeTest, l.NotificationType)
		assert.Equal(t, "+1555", l.RecipientPhone)
	})
	s.configs.EXPECT().AddSpend(gomock.Any(), int64(1), 0.0079).Return(nil)
	res, err := s.svc.SendTest(context.Background(), 1, gateway.TestRequest{Phone: "+1555", Message: "hi"})
	require.NoError(t, err)
	assert.True(t, res.IsSent())
}

func (s *GatewayTestSuite) TestRedeliver() {
	t := s.T()
	cfg := s.activeConfig()
	old := domain.NotificationLog{
		ID:             7,
		SchoolID:       1,
		RecipientPhone: "+15551112222",
		Channel:        domain.ChannelWhatsApp,
		Status:         domain.LogStatusFailed,
		Message:        "Hi John",
		ErrorMessage:   "timeout",
		SentAt:         1,
	}
	s.configs.EXPECT().Get(gomock.Any(), int64(1)).Return(cfg, nil)
	s.provider.EXPECT().Send(gomock.Any(), cfg, provider.Message{
		Channel: domain.ChannelWhatsApp,
		From:    "+15550000002",
		To:      "+15551112222",
		Body:    "Hi John",
	}).Return(domain.TransportResult{Success: true, Cost: 0.005, ProviderMessageID: "SM9"}, nil)
	s.configs.EXPECT().AddSpend(gomock.Any(), int64(1), 0.005).Return(nil)

	res := s.svc.Redeliver(context.Background(), old)
	require.True(t, res.IsSent())
	assert.Equal(t, uint64(7), res.Log.ID)
	assert.Equal(t, domain.LogStatusSent, res.Log.Status)
	assert.Equal(t, "SM9", res.Log.ProviderSID)
	assert.Empty(t, res.Log.ErrorMessage)
	assert.Equal(t, s.now.UnixMilli(), res.Log.SentAt)
}

func (s *GatewayTestSuite) TestValidateCredentials() {
	t := s.T()

	s.configs.EXPECT().Get(gomock.Any(), int64(2)).Return(domain.TwilioConfig{}, errs.ErrTwilioConfigNotFound)
	res, err := s.svc.ValidateCredentials(context.Background(), 2)
	require.NoError(t, err)
	assert.False(t, res.Valid)

	cfg := s.activeConfig()
	s.configs.EXPECT().Get(gomock.Any(), int64(1)).Return(cfg, nil)
	s.provider.EXPECT().ValidateCredentials(gomock.Any(), cfg).
		Return(domain.CredentialCheck{Valid: true, Details: "ok"}, nil)
	res, err = s.svc.ValidateCredentials(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, res.Valid)
}
