package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"gitee.com/flycash/school-notification/internal/domain"
	"gitee.com/flycash/school-notification/internal/repository/dao"
)

//go:generate mockgen -source=./preference.go -destination=./mocks/preference.mock.go -package=repomocks -typed StudentPrefsRepository
type StudentPrefsRepository interface {
	// Get 没有记录的时候返回 errs.ErrPrefsNotFound
	Get(ctx context.Context, schoolID, studentID int64) (domain.StudentNotificationPrefs, error)
	Save(ctx context.Context, p domain.StudentNotificationPrefs) error
}

type studentPrefsRepository struct {
	dao dao.StudentPrefsDAO
}

func NewStudentPrefsRepository(d dao.StudentPrefsDAO) StudentPrefsRepository {
	return &studentPrefsRepository{dao: d}
}

func (r *studentPrefsRepository) Get(ctx context.Context, schoolID, studentID int64) (domain.StudentNotificationPrefs, error) {
	e, err := r.dao.Get(ctx, schoolID, studentID)
	if err != nil {
		return domain.StudentNotificationPrefs{}, err
	}
	return r.toDomain(e)
}

func (r *studentPrefsRepository) Save(ctx context.Context, p domain.StudentNotificationPrefs) error {
	e, err := r.toEntity(p)
	if err != nil {
		return err
	}
	return r.dao.Upsert(ctx, e)
}

func (r *studentPrefsRepository) toEntity(p domain.StudentNotificationPrefs) (dao.StudentNotificationPrefs, error) {
	var qh sql.NullString
	if p.QuietHours != nil {
		val, err := json.Marshal(p.QuietHours)
		if err != nil {
			return dao.StudentNotificationPrefs{}, fmt.Errorf("序列化免打扰时段失败 %w", err)
		}
		qh = sql.NullString{String: string(val), Valid: true}
	}
	return dao.StudentNotificationPrefs{
		StudentID:       p.StudentID,
		SchoolID:        p.SchoolID,
		SMSEnabled:      p.SMSEnabled,
		WhatsAppEnabled: p.WhatsAppEnabled,
		PhoneNumber:     p.PhoneNumber,
		WhatsAppNumber:  p.WhatsAppNumber,
		QuietHours:      qh,
		OptedOut:        p.OptedOut,
		Ctime:           p.Ctime,
		Utime:           p.Utime,
	}, nil
}

func (r *studentPrefsRepository) toDomain(e dao.StudentNotificationPrefs) (domain.StudentNotificationPrefs, error) {
	res := domain.StudentNotificationPrefs{
		StudentID:       e.StudentID,
		SchoolID:        e.SchoolID,
		SMSEnabled:      e.SMSEnabled,
		WhatsAppEnabled: e.WhatsAppEnabled,
		PhoneNumber:     e.PhoneNumber,
		WhatsAppNumber:  e.WhatsAppNumber,
		OptedOut:        e.OptedOut,
		Ctime:           e.Ctime,
		Utime:           e.Utime,
	}
	if e.QuietHours.Valid && e.QuietHours.String != "" {
		var qh domain.QuietHours
		if err := json.Unmarshal([]byte(e.QuietHours.String), &qh); err != nil {
			return domain.StudentNotificationPrefs{}, fmt.Errorf("反序列化免打扰时段失败 %w", err)
		}
		res.QuietHours = &qh
	}
	return res, nil
}
