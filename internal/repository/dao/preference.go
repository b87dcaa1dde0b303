package dao

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gitee.com/flycash/school-notification/internal/errs"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StudentNotificationPrefs 学生通知偏好表
type StudentNotificationPrefs struct {
	StudentID       int64          `gorm:"primaryKey;autoIncrement:false;comment:'学生ID'"`
	SchoolID        int64          `gorm:"type:BIGINT;NOT NULL;index:idx_school_id;comment:'学校ID'"`
	SMSEnabled      bool           `gorm:"column:sms_enabled;NOT NULL;DEFAULT:true"`
	WhatsAppEnabled bool           `gorm:"column:whatsapp_enabled;NOT NULL;DEFAULT:true"`
	PhoneNumber     string         `gorm:"type:VARCHAR(32);comment:'短信号码，覆盖学生资料里的号码'"`
	WhatsAppNumber  string         `gorm:"column:whatsapp_number;type:VARCHAR(32);comment:'WhatsApp 号码'"`
	QuietHours      sql.NullString `gorm:"type:JSON;comment:'{\"start\":\"22:00\",\"end\":\"08:00\"}'"`
	OptedOut        bool           `gorm:"NOT NULL;DEFAULT:false;comment:'是否退订'"`
	Ctime           int64
	Utime           int64
}

// TableName 重命名表
func (StudentNotificationPrefs) TableName() string {
	return "student_notification_prefs"
}

type StudentPrefsDAO interface {
	Get(ctx context.Context, schoolID, studentID int64) (StudentNotificationPrefs, error)
	Upsert(ctx context.Context, p StudentNotificationPrefs) error
}

type studentPrefsDAO struct {
	db *egorm.Component
}

func NewStudentPrefsDAO(db *egorm.Component) StudentPrefsDAO {
	return &studentPrefsDAO{db: db}
}

func (d *studentPrefsDAO) Get(ctx context.Context, schoolID, studentID int64) (StudentNotificationPrefs, error) {
	var p StudentNotificationPrefs
	err := d.db.WithContext(ctx).Where("student_id = ? AND school_id = ?", studentID, schoolID).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return StudentNotificationPrefs{}, fmt.Errorf("%w: student = %d", errs.ErrPrefsNotFound, studentID)
		}
		return StudentNotificationPrefs{}, err
	}
	return p, nil
}

// Upsert 整行覆盖，合并逻辑在上层处理
func (d *studentPrefsDAO) Upsert(ctx context.Context, p StudentNotificationPrefs) error {
	now := time.Now().UnixMilli()
	p.Ctime = now
	p.Utime = now
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "student_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"sms_enabled", "whatsapp_enabled", "phone_number",
			"whatsapp_number", "quiet_hours", "opted_out", "utime",
		}),
	}).Create(&p).Error
}
