package repository

import (
	"context"

	"gitee.com/flycash/school-notification/internal/domain"
	"gitee.com/flycash/school-notification/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

// NotificationTemplateRepository 消息模板存储
//
//go:generate mockgen -source=./template.go -destination=./mocks/template.mock.go -package=repomocks -typed NotificationTemplateRepository
type NotificationTemplateRepository interface {
	Create(ctx context.Context, t domain.NotificationTemplate) (domain.NotificationTemplate, error)
	BatchCreate(ctx context.Context, ts []domain.NotificationTemplate) error
	Update(ctx context.Context, t domain.NotificationTemplate) error
	Delete(ctx context.Context, schoolID, id int64) error
	GetByID(ctx context.Context, schoolID, id int64) (domain.NotificationTemplate, error)
	ListBySchool(ctx context.Context, schoolID int64) ([]domain.NotificationTemplate, error)
	FindByType(ctx context.Context, schoolID int64, typ domain.NotificationType) ([]domain.NotificationTemplate, error)
	CountBySchool(ctx context.Context, schoolID int64) (int64, error)
}

type notificationTemplateRepository struct {
	dao dao.NotificationTemplateDAO
}

func NewNotificationTemplateRepository(d dao.NotificationTemplateDAO) NotificationTemplateRepository {
	return &notificationTemplateRepository{dao: d}
}

func (r *notificationTemplateRepository) Create(ctx context.Context, t domain.NotificationTemplate) (domain.NotificationTemplate, error) {
	created, err := r.dao.Create(ctx, r.toEntity(t))
	if err != nil {
		return domain.NotificationTemplate{}, err
	}
	return r.toDomain(created), nil
}

func (r *notificationTemplateRepository) BatchCreate(ctx context.Context, ts []domain.NotificationTemplate) error {
	return r.dao.BatchCreate(ctx, slice.Map(ts, func(_ int, src domain.NotificationTemplate) dao.NotificationTemplate {
		return r.toEntity(src)
	}))
}

func (r *notificationTemplateRepository) Update(ctx context.Context, t domain.NotificationTemplate) error {
	return r.dao.Update(ctx, r.toEntity(t))
}

func (r *notificationTemplateRepository) Delete(ctx context.Context, schoolID, id int64) error {
	return r.dao.Delete(ctx, schoolID, id)
}

func (r *notificationTemplateRepository) GetByID(ctx context.Context, schoolID, id int64) (domain.NotificationTemplate, error) {
	t, err := r.dao.GetByID(ctx, schoolID, id)
	if err != nil {
		return domain.NotificationTemplate{}, err
	}
	return r.toDomain(t), nil
}

func (r *notificationTemplateRepository) ListBySchool(ctx context.Context, schoolID int64) ([]domain.NotificationTemplate, error) {
	ts, err := r.dao.ListBySchool(ctx, schoolID)
	if err != nil {
		return nil, err
	}
	return slice.Map(ts, func(_ int, src dao.NotificationTemplate) domain.NotificationTemplate {
		return r.toDomain(src)
	}), nil
}

func (r *notificationTemplateRepository) FindByType(ctx context.Context, schoolID int64, typ domain.NotificationType) ([]domain.NotificationTemplate, error) {
	ts, err := r.dao.FindByType(ctx, schoolID, typ.String())
	if err != nil {
		return nil, err
	}
	return slice.Map(ts, func(_ int, src dao.NotificationTemplate) domain.NotificationTemplate {
		return r.toDomain(src)
	}), nil
}

func (r *notificationTemplateRepository) CountBySchool(ctx context.Context, schoolID int64) (int64, error) {
	return r.dao.CountBySchool(ctx, schoolID)
}

func (r *notificationTemplateRepository) toEntity(t domain.NotificationTemplate) dao.NotificationTemplate {
	return dao.NotificationTemplate{
		ID:       t.ID,
		SchoolID: t.SchoolID,
		Type:     t.Type.String(),
		Language: t.Language,
		Name:     t.Name,
		Body:     t.Body,
		Ctime:    t.Ctime,
		Utime:    t.Utime,
	}
}

func (r *notificationTemplateRepository) toDomain(t dao.NotificationTemplate) domain.NotificationTemplate {
	return domain.NotificationTemplate{
		ID:       t.ID,
		SchoolID: t.SchoolID,
		Type:     domain.NotificationType(t.Type),
		Language: t.Language,
		Name:     t.Name,
		Body:     t.Body,
		Ctime:    t.Ctime,
		Utime:    t.Utime,
	}
}
