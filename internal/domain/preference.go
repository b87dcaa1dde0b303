package domain

import (
	"fmt"
	"time"

	"gitee.com/flycash/school-notification/internal/errs"
)

// QuietHours 免打扰时段，格式 HH:MM，可以跨越午夜
type QuietHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (q QuietHours) Validate() error {
	if _, err := minuteOfDay(q.Start); err != nil {
		return err
	}
	if _, err := minuteOfDay(q.End); err != nil {
		return err
	}
	return nil
}

// Contains now 是否落在免打扰时段内，结束时间不包含在内。
// start < end 时是同一天的区间，否则是跨午夜的区间。
// 格式不合法的配置视为没有配置免打扰
func (q QuietHours) Contains(now time.Time) bool {
	start, err := minuteOfDay(q.Start)
	if err != nil {
		return false
	}
	end, err := minuteOfDay(q.End)
	if err != nil {
		return false
	}
	cur := now.Hour()*60 + now.Minute()
	if start < end {
		return start <= cur && cur < end
	}
	return cur >= start || cur < end
}

func minuteOfDay(hhmm string) (int, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0, fmt.Errorf("%w: 时间格式应该是 HH:MM, 实际是 %q", errs.ErrInvalidParameter, hhmm)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// StudentNotificationPrefs 学生的通知偏好，每个学生一条
type StudentNotificationPrefs struct {
	StudentID       int64       `json:"studentId"`
	SchoolID        int64       `json:"schoolId"`
	SMSEnabled      bool        `json:"smsEnabled"`
	WhatsAppEnabled bool        `json:"whatsappEnabled"`
	PhoneNumber     string      `json:"phoneNumber,omitempty"`
	WhatsAppNumber  string      `json:"whatsappNumber,omitempty"`
	QuietHours      *QuietHours `json:"quietHours,omitempty"`
	OptedOut        bool        `json:"optedOut"`
	Ctime           int64       `json:"-"`
	Utime           int64       `json:"-"`
}

// DefaultPrefs 学生没有配置偏好的时候使用
func DefaultPrefs(schoolID, studentID int64) StudentNotificationPrefs {
	return StudentNotificationPrefs{
		StudentID:       studentID,
		SchoolID:        schoolID,
		SMSEnabled:      true,
		WhatsAppEnabled: true,
	}
}

func (p StudentNotificationPrefs) ChannelEnabled(c Channel) bool {
	switch c {
	case ChannelSMS:
		return p.SMSEnabled
	case ChannelWhatsApp:
		return p.WhatsAppEnabled
	default:
		return false
	}
}

// EnabledChannels 学生允许的所有渠道
func (p StudentNotificationPrefs) EnabledChannels() []Channel {
	res := make([]Channel, 0, 2)
	if p.SMSEnabled {
		res = append(res, ChannelSMS)
	}
	if p.WhatsAppEnabled {
		res = append(res, ChannelWhatsApp)
	}
	return res
}

// PhoneFor 学生在偏好里为某个渠道单独配置的号码，没有返回空串
func (p StudentNotificationPrefs) PhoneFor(c Channel) string {
	if c == ChannelWhatsApp && p.WhatsAppNumber != "" {
		return p.WhatsAppNumber
	}
	return p.PhoneNumber
}

// PrefsPatch 局部更新，nil 字段保持原值。ClearQuietHours 为 true 的时候删除免打扰配置
type PrefsPatch struct {
	SMSEnabled      *bool       `json:"smsEnabled"`
	WhatsAppEnabled *bool       `json:"whatsappEnabled"`
	PhoneNumber     *string     `json:"phoneNumber"`
	WhatsAppNumber  *string     `json:"whatsappNumber"`
	QuietHours      *QuietHours `json:"quietHours"`
	ClearQuietHours bool        `json:"clearQuietHours"`
	OptedOut        *bool       `json:"optedOut"`
}

// Apply 把 patch 合并到 p 上
func (patch PrefsPatch) Apply(p StudentNotificationPrefs) (StudentNotificationPrefs, error) {
	if patch.SMSEnabled != nil {
		p.SMSEnabled = *patch.SMSEnabled
	}
	if patch.WhatsAppEnabled != nil {
		p.WhatsAppEnabled = *patch.WhatsAppEnabled
	}
	if patch.PhoneNumber != nil {
		p.PhoneNumber = *patch.PhoneNumber
	}
	if patch.WhatsAppNumber != nil {
		p.WhatsAppNumber = *patch.WhatsAppNumber
	}
	if patch.ClearQuietHours {
		p.QuietHours = nil
	} else if patch.QuietHours != nil {
		if err := patch.QuietHours.Validate(); err != nil {
			return p, err
		}
		qh := *patch.QuietHours
		p.QuietHours = &qh
	}
	if patch.OptedOut != nil {
		p.OptedOut = *patch.OptedOut
	}
	return p, nil
}

// Decision 偏好检查的结果
type Decision struct {
	Allowed bool
	Reason  SuppressReason
}

func Allow() Decision {
	return Decision{Allowed: true}
}

func Deny(reason SuppressReason) Decision {
	return Decision{Reason: reason}
}
