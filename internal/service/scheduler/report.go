package scheduler

import (
	"gitee.com/flycash/school-notification/internal/domain"
)

// 整个学校被跳过的原因
const (
	SkipLocked          = "locked"
	SkipLockError       = "lock_error"
	SkipMasterToggleOff = "master_toggle_off"
)

// PassReport 课程提醒或者缴费提醒一轮的统计
type PassReport struct {
	// Skipped 规则不存在或者没有启用
	Skipped    bool `json:"skipped"`
	Entities   int  `json:"entities"`
	Due        int  `json:"due"`
	Duplicates int  `json:"duplicates"`
	Sent       int  `json:"sent"`
	Failed     int  `json:"failed"`
	Suppressed int  `json:"suppressed"`
}

func (r *PassReport) count(results []domain.SendResult) {
	for i := range results {
		switch results[i].Outcome {
		case domain.OutcomeSent:
			r.Sent++
		case domain.OutcomeFailed:
			r.Failed++
		case domain.OutcomeSuppressed:
			r.Suppressed++
		}
	}
}

// RunReport 一个学校一次定时检查的结果。单个实体的错误不会中断检查，都汇总在 Err 里
type RunReport struct {
	SchoolID   int64      `json:"schoolId"`
	Skipped    bool       `json:"skipped"`
	SkipReason string     `json:"skipReason,omitempty"`
	Lessons    PassReport `json:"lessons"`
	Payments   PassReport `json:"payments"`
	Err        error      `json:"-"`
}
