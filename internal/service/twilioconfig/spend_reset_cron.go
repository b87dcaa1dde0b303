package twilioconfig

import (
	"context"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/hashicorp/go-multierror"
)

// SpendResetCron 每个月初把所有启用学校的花费清零
type SpendResetCron struct {
	svc    Service
	logger *elog.Component
}

func NewSpendResetCron(svc Service) *SpendResetCron {
	return &SpendResetCron{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

// Do 单个学校失败不影响其他学校，错误汇总之后返回
func (t *SpendResetCron) Do(ctx context.Context) error {
	listCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	ids, err := t.svc.ListActiveSchools(listCtx)
	cancel()
	if err != nil {
		t.logger.Error("查找启用的学校失败", elog.FieldErr(err))
		return err
	}

	var merr *multierror.Error
	for _, id := range ids {
		resetCtx, cancel1 := context.WithTimeout(ctx, time.Second)
		err = t.svc.ResetSpend(resetCtx, id)
		cancel1()
		if err != nil {
			t.logger.Error("重置花费失败", elog.Int64("schoolID", id), elog.FieldErr(err))
			merr = multierror.Append(merr, err)
		}
	}
	t.logger.Info("重置花费完成", elog.Int("schools", len(ids)))
	return merr.ErrorOrNil()
}
