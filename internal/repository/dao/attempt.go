package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gitee.com/flycash/school-notification/internal/errs"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
)

// ReminderAttempt 提醒领取记录。唯一索引保证同一个提醒最多发送一次
type ReminderAttempt struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	SchoolID  int64  `gorm:"type:BIGINT;NOT NULL;comment:'学校ID'"`
	Kind      string `gorm:"type:VARCHAR(16);NOT NULL;uniqueIndex:uk_kind_entity_offset,priority:1;comment:'session/payment'"`
	EntityID  int64  `gorm:"type:BIGINT;NOT NULL;uniqueIndex:uk_kind_entity_offset,priority:2"`
	OffsetKey string `gorm:"type:VARCHAR(64);NOT NULL;uniqueIndex:uk_kind_entity_offset,priority:3;comment:'{value}_{unit}_{channel}'"`
	Ctime     int64
}

// TableName 重命名表
func (ReminderAttempt) TableName() string {
	return "reminder_attempts"
}

type ReminderAttemptDAO interface {
	// Claim 插入成功表示领取成功，已经存在返回 errs.ErrAttemptDuplicate
	Claim(ctx context.Context, a ReminderAttempt) error
	Release(ctx context.Context, kind string, entityID int64, offsetKey string) error
}

type reminderAttemptDAO struct {
	db *egorm.Component
}

func NewReminderAttemptDAO(db *egorm.Component) ReminderAttemptDAO {
	return &reminderAttemptDAO{db: db}
}

func (d *reminderAttemptDAO) Claim(ctx context.Context, a ReminderAttempt) error {
	a.Ctime = time.Now().UnixMilli()
	err := d.db.WithContext(ctx).Create(&a).Error
	if d.isUniqueConstraintError(err) {
		return fmt.Errorf("%w: %s %d %s", errs.ErrAttemptDuplicate, a.Kind, a.EntityID, a.OffsetKey)
	}
	return err
}

func (d *reminderAttemptDAO) Release(ctx context.Context, kind string, entityID int64, offsetKey string) error {
	return d.db.WithContext(ctx).
		Where("kind = ? AND entity_id = ? AND offset_key = ?", kind, entityID, offsetKey).
		Delete(&ReminderAttempt{}).Error
}

// isUniqueConstraintError 检查是否是唯一索引冲突错误
func (d *reminderAttemptDAO) isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	me := new(mysql.MySQLError)
	if ok := errors.As(err, &me); ok {
		const uniqueIndexErrNo uint16 = 1062
		return me.Number == uniqueIndexErrNo
	}
	return false
}
