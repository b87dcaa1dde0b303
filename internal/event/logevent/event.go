package logevent

import "gitee.com/flycash/school-notification/internal/domain"

const Topic = "notification_log_events"

type Kind string

const (
	KindCreated Kind = "created"
	KindUpdated Kind = "updated"
)

// Event 通知记录的变更事件，Log 是变更之后的完整记录
type Event struct {
	Kind Kind                   `json:"kind"`
	Log  domain.NotificationLog `json:"log"`
}
