//go:build unit

package twilioconfig_test

import (
	"errors"
	"testing"

	"gitee.com/flycash/school-notification/internal/service/twilioconfig"
	twilioconfigmocks "gitee.com/flycash/school-notification/internal/service/twilioconfig/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSpendResetCron_Do(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		mock    func(svc *twilioconfigmocks.MockService)
		wantErr bool
	}{
		{
			name: "全部重置",
			mock: func(svc *twilioconfigmocks.MockService) {
				svc.EXPECT().ListActiveSchools(gomock.Any()).Return([]int64{1, 2}, nil)
				svc.EXPECT().ResetSpend(gomock.Any(), int64(1)).Return(nil)
				svc.EXPECT().ResetSpend(gomock.Any(), int64(2)).Return(nil)
			},
		},
		{
			name: "单个学校失败继续处理其他学校",
			mock: func(svc *twilioconfigmocks.MockService) {
				svc.EXPECT().ListActiveSchools(gomock.Any()).Return([]int64{1, 2, 3}, nil)
				svc.EXPECT().ResetSpend(gomock.Any(), int64(1)).Return(nil)
				svc.EXPECT().ResetSpend(gomock.Any(), int64(2)).Return(errors.New("db error"))
				svc.EXPECT().ResetSpend(gomock.Any(), int64(3)).Return(nil)
			},
			wantErr: true,
		},
		{
			name: "查询学校失败",
			mock: func(svc *twilioconfigmocks.MockService) {
				svc.EXPECT().ListActiveSchools(gomock.Any()).Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := twilioconfigmocks.NewMockService(ctrl)
			tc.mock(svc)

			err := twilioconfig.NewSpendResetCron(svc).Do(t.Context())
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
