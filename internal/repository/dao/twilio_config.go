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

// TwilioConfig 学校的 Twilio 配置表
type TwilioConfig struct {
	SchoolID            int64   `gorm:"primaryKey;autoIncrement:false;comment:'学校ID'"`
	AccountSID          string  `gorm:"column:account_sid;type:VARCHAR(64);NOT NULL"`
	AuthToken           string  `gorm:"type:VARCHAR(128);NOT NULL"`
	PhoneNumberSMS      string  `gorm:"column:phone_number_sms;type:VARCHAR(32);comment:'短信发送号码'"`
	PhoneNumberWhatsApp string  `gorm:"column:phone_number_whatsapp;type:VARCHAR(32);comment:'WhatsApp 发送号码'"`
	IsActive            bool    `gorm:"NOT NULL;DEFAULT:false;index:idx_is_active;comment:'总开关'"`
	MonthlyBudget       float64 `gorm:"type:DECIMAL(12,4);NOT NULL;DEFAULT:0;comment:'月度预算，只做记录'"`
	CurrentSpend        float64 `gorm:"type:DECIMAL(12,4);NOT NULL;DEFAULT:0;comment:'当月已花费'"`
	Ctime               int64
	Utime               int64
}

// TableName 重命名表
func (TwilioConfig) TableName() string {
	return "twilio_configs"
}

type TwilioConfigDAO interface {
	Get(ctx context.Context, schoolID int64) (TwilioConfig, error)
	// Save 保存配置，不会修改 current_spend
	Save(ctx context.Context, c TwilioConfig) error
	// AddSpend 原子累加花费
	AddSpend(ctx context.Context, schoolID int64, cost float64) error
	// ResetSpend 新的计费月开始的时候清零
	ResetSpend(ctx context.Context, schoolID int64) error
	ListActiveSchoolIDs(ctx context.Context) ([]int64, error)
}

type twilioConfigDAO struct {
	db *egorm.Component
}

func NewTwilioConfigDAO(db *egorm.Component) TwilioConfigDAO {
	return &twilioConfigDAO{db: db}
}

func (d *twilioConfigDAO) Get(ctx context.Context, schoolID int64) (TwilioConfig, error) {
	var c TwilioConfig
	err := d.db.WithContext(ctx).Where("school_id = ?", schoolID).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TwilioConfig{}, fmt.Errorf("%w: school = %d", errs.ErrTwilioConfigNotFound, schoolID)
		}
		return TwilioConfig{}, err
	}
	return c, nil
}

func (d *twilioConfigDAO) Save(ctx context.Context, c TwilioConfig) error {
	now := time.Now().UnixMilli()
	c.Ctime = now
	c.Utime = now
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "school_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"account_sid", "auth_token", "phone_number_sms",
			"phone_number_whatsapp", "is_active", "monthly_budget", "utime",
		}),
	}).Create(&c).Error
}

func (d *twilioConfigDAO) AddSpend(ctx context.Context, schoolID int64, cost float64) error {
	return d.db.WithContext(ctx).Model(&TwilioConfig{}).
		Where("school_id = ?", schoolID).
		Updates(map[string]any{
			"current_spend": gorm.Expr("current_spend + ?", cost),
			"utime":         time.Now().UnixMilli(),
		}).Error
}

func (d *twilioConfigDAO) ResetSpend(ctx context.Context, schoolID int64) error {
	return d.db.WithContext(ctx).Model(&TwilioConfig{}).
		Where("school_id = ?", schoolID).
		Updates(map[string]any{
			"current_spend": 0,
			"utime":         time.Now().UnixMilli(),
		}).Error
}

func (d *twilioConfigDAO) ListActiveSchoolIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	err := d.db.WithContext(ctx).Model(&TwilioConfig{}).
		Where("is_active = ?", true).Order("school_id ASC").Pluck("school_id", &ids).Error
	return ids, err
}
