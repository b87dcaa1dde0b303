package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gitee.com/flycash/school-notification/internal/errs"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NotificationRule 通知规则表，每个学校每种类型一条
type NotificationRule struct {
	ID       int64  `gorm:"primaryKey;autoIncrement;comment:'规则ID'"`
	SchoolID int64  `gorm:"type:BIGINT;NOT NULL;uniqueIndex:uk_school_type,priority:1;comment:'学校ID'"`
	Type     string `gorm:"type:VARCHAR(32);NOT NULL;uniqueIndex:uk_school_type,priority:2;comment:'通知类型'"`
	Enabled  bool   `gorm:"NOT NULL;DEFAULT:false;comment:'是否启用'"`
	// Recipients {"student":true,"parent":false,"teacher":false}
	Recipients string `gorm:"type:JSON;NOT NULL;comment:'接收方'"`
	// Reminders [{"timing":{"value":24,"unit":"hours"},"channel":"sms"}]
	Reminders string `gorm:"type:JSON;NOT NULL;comment:'提醒列表'"`
	Ctime     int64
	Utime     int64
}

// TableName 重命名表
func (NotificationRule) TableName() string {
	return "notification_rules"
}

type NotificationRuleDAO interface {
	// Upsert 按照 (school_id, type) 插入或者更新
	Upsert(ctx context.Context, r NotificationRule) error
	BatchInsertIgnore(ctx context.Context, rs []NotificationRule) error
	Get(ctx context.Context, schoolID int64, typ string) (NotificationRule, error)
	List(ctx context.Context, schoolID int64) ([]NotificationRule, error)
	Delete(ctx context.Context, schoolID int64, typ string) error
}

type notificationRuleDAO struct {
	db *egorm.Component
}

func NewNotificationRuleDAO(db *egorm.Component) NotificationRuleDAO {
	return &notificationRuleDAO{db: db}
}

func (d *notificationRuleDAO) Upsert(ctx context.Context, r NotificationRule) error {
	now := time.Now().UnixMilli()
	r.Ctime = now
	r.Utime = now
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "school_id"}, {Name: "type"}},
		DoUpdates: clause.AssignmentColumns([]string{"enabled", "recipients", "reminders", "utime"}),
	}).Create(&r).Error
}

// BatchInsertIgnore 已经存在的规则保持不变
func (d *notificationRuleDAO) BatchInsertIgnore(ctx context.Context, rs []NotificationRule) error {
	if len(rs) == 0 {
		return nil
	}
	now := time.Now().UnixMilli()
	for i := range rs {
		rs[i].Ctime = now
		rs[i].Utime = now
	}
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&rs).Error
}

func (d *notificationRuleDAO) Get(ctx context.Context, schoolID int64, typ string) (NotificationRule, error) {
	var r NotificationRule
	err := d.db.WithContext(ctx).Where("school_id = ? AND type = ?", schoolID, typ).First(&r).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotificationRule{}, fmt.Errorf("%w: school = %d, type = %s", errs.ErrRuleNotFound, schoolID, typ)
		}
		return NotificationRule{}, err
	}
	return r, nil
}

func (d *notificationRuleDAO) List(ctx context.Context, schoolID int64) ([]NotificationRule, error) {
	var rs []NotificationRule
	err := d.db.WithContext(ctx).Where("school_id = ?", schoolID).Order("type ASC").Find(&rs).Error
	return rs, err
}

func (d *notificationRuleDAO) Delete(ctx context.Context, schoolID int64, typ string) error {
	return d.db.WithContext(ctx).Where("school_id = ? AND type = ?", schoolID, typ).
		Delete(&NotificationRule{}).Error
}
