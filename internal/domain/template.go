package domain

import (
	"fmt"

	"gitee.com/flycash/school-notification/internal/errs"
)

// NotificationType 通知类型，规则和模板都按照类型来组织
type NotificationType string

const (
	NotificationTypeLessonReminder    NotificationType = "lesson_reminder"
	NotificationTypePaymentReminder   NotificationType = "payment_reminder"
	NotificationTypeLessonCancelled   NotificationType = "lesson_cancelled"
	NotificationTypeLessonRescheduled NotificationType = "lesson_rescheduled"
	NotificationTypePaymentReceived   NotificationType = "payment_received"
	NotificationTypeWelcome           NotificationType = "welcome"
	NotificationTypeCustom            NotificationType = "custom"
	// NotificationTypeTest 测试消息，不对应任何模板
	NotificationTypeTest NotificationType = "test"
)

func (t NotificationType) String() string {
	return string(t)
}

func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTypeLessonReminder,
		NotificationTypePaymentReminder,
		NotificationTypeLessonCancelled,
		NotificationTypeLessonRescheduled,
		NotificationTypePaymentReceived,
		NotificationTypeWelcome,
		NotificationTypeCustom:
		return true
	default:
		return false
	}
}

// DefaultLanguage 学校默认语言
const DefaultLanguage = "en"

// NotificationTemplate 消息模板，Body 中使用 {variable} 作为占位符
type NotificationTemplate struct {
	ID       int64
	SchoolID int64
	Type     NotificationType
	Language string
	Name     string
	Body     string
	Ctime    int64
	Utime    int64
}

// CheckKey 校验 (school, type, language) 这几个定位字段
func (t NotificationTemplate) CheckKey() error {
	if t.SchoolID <= 0 {
		return fmt.Errorf("%w: SchoolID = %d", errs.ErrInvalidParameter, t.SchoolID)
	}
	if !t.Type.IsValid() {
		return fmt.Errorf("%w: Type = %q", errs.ErrInvalidParameter, t.Type)
	}
	if t.Language == "" {
		return fmt.Errorf("%w: Language 不能为空", errs.ErrInvalidParameter)
	}
	return nil
}

// ValidationResult 模板校验结果，只是建议，不阻止保存
type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}
