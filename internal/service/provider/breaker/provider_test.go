//go:build unit

package breaker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gitee.com/flycash/school-notification/internal/domain"
	"gitee.com/flycash/school-notification/internal/errs"
	"gitee.com/flycash/school-notification/internal/service/provider"
	"gitee.com/flycash/school-notification/internal/service/provider/breaker"
	providermocks "gitee.com/flycash/school-notification/internal/service/provider/mocks"
	"github.com/go-kratos/aegis/circuitbreaker"
	"github.com/go-kratos/aegis/circuitbreaker/sre"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestProvider_Send(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bad := domain.TwilioConfig{SchoolID: 1, AccountSID: "AC_BAD"}
	good := domain.TwilioConfig{SchoolID: 2, AccountSID: "AC_GOOD"}
	msg := provider.Message{Channel: domain.ChannelSMS, To: "+15551112222", Body: "hi"}

	mockProvider := providermocks.NewMockProvider(ctrl)
	mockProvider.EXPECT().Send(gomock.Any(), bad, msg).
		Return(domain.TransportResult{}, errs.ErrSendFailed).AnyTimes()
	mockProvider.EXPECT().Send(gomock.Any(), good, msg).
		Return(domain.TransportResult{Success: true}, nil).AnyTimes()

	p := breaker.NewProvider(mockProvider,
		sre.WithRequest(5),
		sre.WithSuccess(0.9),
		sre.WithWindow(time.Minute))

	var rejected int
	for i := 0; i < 50; i++ {
		_, err := p.Send(context.Background(), bad, msg)
		assert.ErrorIs(t, err, errs.ErrSendFailed)
		if errors.Is(err, circuitbreaker.ErrNotAllowed) {
			rejected++
		}
	}
	// 连续失败之后部分请求被熔断直接拒绝
	assert.Greater(t, rejected, 0)

	// 另外一个账号不受影响
	res, err := p.Send(context.Background(), good, msg)
	assert.NoError(t, err)
	assert.True(t, res.Success)
}
