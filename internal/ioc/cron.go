package ioc

import (
	"gitee.com/flycash/school-notification/internal/service/scheduler"
	"gitee.com/flycash/school-notification/internal/service/twilioconfig"
	"github.com/gotomicro/ego/task/ecron"
)

// Crons 定时检查和月初的花费清零，调度表达式在 cron.schedule 和 cron.spendReset 里配置
func Crons(job *scheduler.CronJob, reset *twilioconfig.SpendResetCron) []ecron.Ecron {
	c1 := ecron.Load("cron.schedule").Build(ecron.WithJob(job.Do))
	c2 := ecron.Load("cron.spendReset").Build(ecron.WithJob(reset.Do))
	return []ecron.Ecron{c1, c2}
}
