package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gitee.com/flycash/school-notification/internal/errs"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

// NotificationTemplate 消息模板表。(school_id, type, language) 只是约定唯一，表上不强制
type NotificationTemplate struct {
	ID       int64  `gorm:"primaryKey;autoIncrement;comment:'模板ID'"`
	SchoolID int64  `gorm:"type:BIGINT;NOT NULL;index:idx_school_type_lang,priority:1;comment:'学校ID'"`
	Type     string `gorm:"type:VARCHAR(32);NOT NULL;index:idx_school_type_lang,priority:2;comment:'通知类型'"`
	Language string `gorm:"type:VARCHAR(16);NOT NULL;DEFAULT:'en';index:idx_school_type_lang,priority:3;comment:'语言'"`
	Name     string `gorm:"type:VARCHAR(128);NOT NULL;comment:'模板名称'"`
	Body     string `gorm:"type:TEXT;NOT NULL;comment:'模板内容，使用 {variable} 占位'"`
	Ctime    int64
	Utime    int64
}

// TableName 重命名表
func (NotificationTemplate) TableName() string {
	return "notification_templates"
}

type NotificationTemplateDAO interface {
	Create(ctx context.Context, t NotificationTemplate) (NotificationTemplate, error)
	BatchCreate(ctx context.Context, ts []NotificationTemplate) error
	// Update 只更新名称、语言和内容
	Update(ctx context.Context, t NotificationTemplate) error
	Delete(ctx context.Context, schoolID, id int64) error
	GetByID(ctx context.Context, schoolID, id int64) (NotificationTemplate, error)
	ListBySchool(ctx context.Context, schoolID int64) ([]NotificationTemplate, error)
	// FindByType 某个类型下所有语言的模板，按 ID 升序
	FindByType(ctx context.Context, schoolID int64, typ string) ([]NotificationTemplate, error)
	CountBySchool(ctx context.Context, schoolID int64) (int64, error)
}

type notificationTemplateDAO struct {
	db *egorm.Component
}

func NewNotificationTemplateDAO(db *egorm.Component) NotificationTemplateDAO {
	return &notificationTemplateDAO{db: db}
}

func (d *notificationTemplateDAO) Create(ctx context.Context, t NotificationTemplate) (NotificationTemplate, error) {
	now := time.Now().UnixMilli()
	t.Ctime = now
	t.Utime = now
	err := d.db.WithContext(ctx).Create(&t).Error
	if err != nil {
		return NotificationTemplate{}, fmt.Errorf("%w: %w", errs.ErrCreateTemplateFailed, err)
	}
	return t, nil
}

func (d *notificationTemplateDAO) BatchCreate(ctx context.Context, ts []NotificationTemplate) error {
	if len(ts) == 0 {
		return nil
	}
	now := time.Now().UnixMilli()
	for i := range ts {
		ts[i].Ctime = now
		ts[i].Utime = now
	}
	return d.db.WithContext(ctx).Create(&ts).Error
}

func (d *notificationTemplateDAO) Update(ctx context.Context, t NotificationTemplate) error {
	res := d.db.WithContext(ctx).Model(&NotificationTemplate{}).
		Where("id = ? AND school_id = ?", t.ID, t.SchoolID).
		Updates(map[string]any{
			"name":     t.Name,
			"language": t.Language,
			"body":     t.Body,
			"utime":    time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: id = %d", errs.ErrTemplateNotFound, t.ID)
	}
	return nil
}

func (d *notificationTemplateDAO) Delete(ctx context.Context, schoolID, id int64) error {
	return d.db.WithContext(ctx).
		Where("id = ? AND school_id = ?", id, schoolID).
		Delete(&NotificationTemplate{}).Error
}

func (d *notificationTemplateDAO) GetByID(ctx context.Context, schoolID, id int64) (NotificationTemplate, error) {
	var t NotificationTemplate
	err := d.db.WithContext(ctx).Where("id = ? AND school_id = ?", id, schoolID).First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotificationTemplate{}, fmt.Errorf("%w: id = %d", errs.ErrTemplateNotFound, id)
		}
		return NotificationTemplate{}, err
	}
	return t, nil
}

func (d *notificationTemplateDAO) ListBySchool(ctx context.Context, schoolID int64) ([]NotificationTemplate, error) {
	var ts []NotificationTemplate
	err := d.db.WithContext(ctx).Where("school_id = ?", schoolID).
		Order("type ASC, id ASC").Find(&ts).Error
	return ts, err
}

func (d *notificationTemplateDAO) FindByType(ctx context.Context, schoolID int64, typ string) ([]NotificationTemplate, error) {
	var ts []NotificationTemplate
	err := d.db.WithContext(ctx).Where("school_id = ? AND type = ?", schoolID, typ).
		Order("id ASC").Find(&ts).Error
	return ts, err
}

func (d *notificationTemplateDAO) CountBySchool(ctx context.Context, schoolID int64) (int64, error) {
	var cnt int64
	err := d.db.WithContext(ctx).Model(&NotificationTemplate{}).
		Where("school_id = ?", schoolID).Count(&cnt).Error
	return cnt, err
}
