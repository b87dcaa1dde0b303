package domain

import (
	"fmt"
	"time"

	"gitee.com/flycash/school-notification/internal/errs"
)

// TimeUnit 提醒提前量的单位
type TimeUnit string

const (
	TimeUnitMinutes TimeUnit = "minutes"
	TimeUnitHours   TimeUnit = "hours"
	TimeUnitDays    TimeUnit = "days"
)

func (u TimeUnit) IsValid() bool {
	return u == TimeUnitMinutes || u == TimeUnitHours || u == TimeUnitDays
}

// Timing 提醒相对锚点时间的提前量
type Timing struct {
	Value int      `json:"value" yaml:"value"`
	Unit  TimeUnit `json:"unit" yaml:"unit"`
}

// Before 计算 anchor 往前推 Timing 之后的时间点。
// 天用日历减法，跨夏令时的时候不是固定的 24 小时
func (t Timing) Before(anchor time.Time) time.Time {
	switch t.Unit {
	case TimeUnitDays:
		return anchor.AddDate(0, 0, -t.Value)
	case TimeUnitHours:
		return anchor.Add(-time.Duration(t.Value) * time.Hour)
	case TimeUnitMinutes:
		return anchor.Add(-time.Duration(t.Value) * time.Minute)
	default:
		return anchor
	}
}

// Reminder 单个提醒配置，各个提醒之间相互独立
type Reminder struct {
	Timing  Timing           `json:"timing" yaml:"timing"`
	Channel ChannelSelection `json:"channel" yaml:"channel"`
}

// Key 幂等键 "{value}_{unit}_{channel}"
func (r Reminder) Key() string {
	return fmt.Sprintf("%d_%s_%s", r.Timing.Value, r.Timing.Unit, r.Channel)
}

// ReminderTime 提醒应该发出的时间
func (r Reminder) ReminderTime(anchor time.Time) time.Time {
	return r.Timing.Before(anchor)
}

// IsDue 提醒时间已过，但是锚点时间还没到。锚点之后不再补发
func (r Reminder) IsDue(anchor, now time.Time) bool {
	return now.After(r.ReminderTime(anchor)) && now.Before(anchor)
}

func (r Reminder) Validate() error {
	if r.Timing.Value <= 0 {
		return fmt.Errorf("%w: Timing.Value = %d", errs.ErrInvalidParameter, r.Timing.Value)
	}
	if !r.Timing.Unit.IsValid() {
		return fmt.Errorf("%w: Timing.Unit = %q", errs.ErrInvalidParameter, r.Timing.Unit)
	}
	if !r.Channel.IsValid() {
		return fmt.Errorf("%w: Channel = %q", errs.ErrInvalidParameter, r.Channel)
	}
	return nil
}

// Recipients 规则要通知的对象
type Recipients struct {
	Student bool `json:"student" yaml:"student"`
	Parent  bool `json:"parent" yaml:"parent"`
	Teacher bool `json:"teacher" yaml:"teacher"`
}

func (r Recipients) Any() bool {
	return r.Student || r.Parent || r.Teacher
}

// NotificationRule 学校针对某一种通知类型的规则，(SchoolID, Type) 唯一
type NotificationRule struct {
	ID         int64
	SchoolID   int64
	Type       NotificationType
	Enabled    bool
	Recipients Recipients
	Reminders  []Reminder
	Ctime      int64
	Utime      int64
}

func (r NotificationRule) Validate() error {
	if r.SchoolID <= 0 {
		return fmt.Errorf("%w: SchoolID = %d", errs.ErrInvalidParameter, r.SchoolID)
	}
	if !r.Type.IsValid() {
		return fmt.Errorf("%w: Type = %q", errs.ErrInvalidParameter, r.Type)
	}
	if !r.Recipients.Any() {
		return fmt.Errorf("%w: 至少需要一个接收方", errs.ErrInvalidParameter)
	}
	for i := range r.Reminders {
		if err := r.Reminders[i].Validate(); err != nil {
			return fmt.Errorf("reminders[%d]: %w", i, err)
		}
	}
	return nil
}
