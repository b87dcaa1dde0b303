package errs

import (
	"errors"
)

// 定义统一的错误类型
var (
	ErrInvalidParameter = errors.New("参数错误")

	ErrTemplateNotFound     = errors.New("模板不存在")
	ErrCreateTemplateFailed = errors.New("创建模板失败")
	ErrRuleNotFound         = errors.New("通知规则不存在或未启用")
	ErrLogNotFound          = errors.New("通知记录不存在")
	ErrPrefsNotFound        = errors.New("学生通知偏好不存在")

	ErrTwilioConfigNotFound = errors.New("Twilio 配置不存在")
	ErrSendFailed           = errors.New("发送通知失败")
	ErrRateLimited          = errors.New("已达到速率限制")

	ErrStudentNotFound = errors.New("学生不存在")
	ErrTeacherNotFound = errors.New("老师不存在")

	ErrAttemptDuplicate = errors.New("提醒已经发送过")
)
