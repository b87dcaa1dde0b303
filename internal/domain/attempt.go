package domain

// EntityKind 提醒针对的业务实体
type EntityKind string

const (
	EntitySession EntityKind = "session"
	EntityPayment EntityKind = "payment"
)

// ReminderAttempt 某个实体的某个提醒已经被领取，(Kind, EntityID, OffsetKey) 唯一
type ReminderAttempt struct {
	SchoolID  int64
	Kind      EntityKind
	EntityID  int64
	OffsetKey string
	Ctime     int64
}
