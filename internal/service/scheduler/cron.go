package scheduler

import (
	"context"

	"github.com/gotomicro/ego/core/elog"
)

// CronJob 定时任务入口，检查所有启用了 Twilio 的学校
type CronJob struct {
	svc    Service
	logger *elog.Component
}

func NewCronJob(svc Service) *CronJob {
	return &CronJob{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

// Do 单个学校的错误只记录日志，不影响下一次调度
func (j *CronJob) Do(ctx context.Context) error {
	reports, err := j.svc.RunAll(ctx)
	var sent, failed, skipped int
	for i := range reports {
		r := reports[i]
		if r.Skipped {
			skipped++
			continue
		}
		sent += r.Lessons.Sent + r.Payments.Sent
		failed += r.Lessons.Failed + r.Payments.Failed
		if r.Err != nil {
			j.logger.Error("学校定时检查出错", elog.Int64("schoolID", r.SchoolID), elog.FieldErr(r.Err))
		}
	}
	j.logger.Info("定时检查完成",
		elog.Int("schools", len(reports)),
		elog.Int("skipped", skipped),
		elog.Int("sent", sent),
		elog.Int("failed", failed))
	return err
}
