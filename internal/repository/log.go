package repository

import (
	"context"
	"fmt"

	"gitee.com/flycash/school-notification/internal/domain"
	"gitee.com/flycash/school-notification/internal/errs"
	"gitee.com/flycash/school-notification/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./log.go -destination=./mocks/log.mock.go -package=repomocks -typed NotificationLogRepository
type NotificationLogRepository interface {
	Create(ctx context.Context, l domain.NotificationLog) error
	GetByID(ctx context.Context, schoolID int64, id uint64) (domain.NotificationLog, error)
	UpdateStatus(ctx context.Context, schoolID int64, id uint64, status domain.LogStatus, errMsg string) error
	UpdateResult(ctx context.Context, l domain.NotificationLog) error
	// List 分页查询，同时返回总数
	List(ctx context.Context, f domain.LogFilter, sort domain.LogSort, page domain.Page) (domain.LogPage, error)
	ListAfter(ctx context.Context, f domain.LogFilter, afterID uint64, limit int) ([]domain.NotificationLog, error)
	StatGroups(ctx context.Context, schoolID int64, start, end int64) ([]domain.LogGroup, error)
	// DailyStatusCounts 按 buckets 的自然日和状态计数
	DailyStatusCounts(ctx context.Context, schoolID int64, start, end int64, buckets domain.DayBuckets) ([]domain.DayStatusCount, error)
	// SentAtRange 最早和最晚的发送时间，没有记录的时候都是 0
	SentAtRange(ctx context.Context, schoolID int64, start, end int64) (int64, int64, error)
	DeleteBefore(ctx context.Context, schoolID int64, before int64, limit int) (int64, error)
}

type notificationLogRepository struct {
	dao dao.NotificationLogDAO
}

func NewNotificationLogRepository(d dao.NotificationLogDAO) NotificationLogRepository {
	return &notificationLogRepository{dao: d}
}

func (r *notificationLogRepository) Create(ctx context.Context, l domain.NotificationLog) error {
	return r.dao.Create(ctx, r.toEntity(l))
}

func (r *notificationLogRepository) GetByID(ctx context.Context, schoolID int64, id uint64) (domain.NotificationLog, error) {
	e, err := r.dao.GetByID(ctx, schoolID, id)
	if err != nil {
		return domain.NotificationLog{}, err
	}
	return r.toDomain(e), nil
}

func (r *notificationLogRepository) UpdateStatus(ctx context.Context, schoolID int64, id uint64, status domain.LogStatus, errMsg string) error {
	return r.dao.UpdateStatus(ctx, schoolID, id, status.String(), errMsg)
}

func (r *notificationLogRepository) UpdateResult(ctx context.Context, l domain.NotificationLog) error {
	return r.dao.UpdateResult(ctx, r.toEntity(l))
}

func (r *notificationLogRepository) List(ctx context.Context, f domain.LogFilter, sort domain.LogSort, page domain.Page) (domain.LogPage, error) {
	column, ok := domain.SortableLogFields[sort.Field]
	if !ok {
		return domain.LogPage{}, fmt.Errorf("%w: 不支持按 %q 排序", errs.ErrInvalidParameter, sort.Field)
	}
	page = page.Normalize()

	var (
		eg    errgroup.Group
		logs  []dao.NotificationLog
		total int64
	)
	eg.Go(func() error {
		var err error
		logs, err = r.dao.List(ctx, f, column, sort.Desc, page.Offset(), page.PageSize)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = r.dao.Count(ctx, f)
		return err
	})
	if err := eg.Wait(); err != nil {
		return domain.LogPage{}, err
	}
	return domain.LogPage{
		Logs: slice.Map(logs, func(_ int, src dao.NotificationLog) domain.NotificationLog {
			return r.toDomain(src)
		}),
		Total: total,
	}, nil
}

func (r *notificationLogRepository) ListAfter(ctx context.Context, f domain.LogFilter, afterID uint64, limit int) ([]domain.NotificationLog, error) {
	logs, err := r.dao.ListAfter(ctx, f, afterID, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(logs, func(_ int, src dao.NotificationLog) domain.NotificationLog {
		return r.toDomain(src)
	}), nil
}

func (r *notificationLogRepository) StatGroups(ctx context.Context, schoolID int64, start, end int64) ([]domain.LogGroup, error) {
	rows, err := r.dao.StatGroups(ctx, schoolID, start, end)
	if err != nil {
		return nil, err
	}
	return slice.Map(rows, func(_ int, src dao.LogGroupRow) domain.LogGroup {
		return domain.LogGroup{
			Status:           domain.LogStatus(src.Status),
			NotificationType: domain.NotificationType(src.NotificationType),
			Channel:          domain.Channel(src.Channel),
			Count:            src.Cnt,
			Cost:             src.Cost,
		}
	}), nil
}

func (r *notificationLogRepository) DailyStatusCounts(ctx context.Context, schoolID int64, start, end int64, buckets domain.DayBuckets) ([]domain.DayStatusCount, error) {
	rows, err := r.dao.DailyStatusCounts(ctx, schoolID, start, end, buckets.Bounds)
	if err != nil {
		return nil, err
	}
	res := make([]domain.DayStatusCount, 0, len(rows))
	for _, row := range rows {
		date, ok := buckets.Date(row.Bucket)
		if !ok {
			return nil, fmt.Errorf("统计结果的日期下标越界: %d", row.Bucket)
		}
		res = append(res, domain.DayStatusCount{
			Date:   date,
			Status: domain.LogStatus(row.Status),
			Count:  row.Cnt,
		})
	}
	return res, nil
}

func (r *notificationLogRepository) SentAtRange(ctx context.Context, schoolID int64, start, end int64) (int64, int64, error) {
	rg, err := r.dao.SentAtRange(ctx, schoolID, start, end)
	return rg.MinSentAt, rg.MaxSentAt, err
}

func (r *notificationLogRepository) DeleteBefore(ctx context.Context, schoolID int64, before int64, limit int) (int64, error) {
	return r.dao.DeleteBefore(ctx, schoolID, before, limit)
}

func (r *notificationLogRepository) toEntity(l domain.NotificationLog) dao.NotificationLog {
	return dao.NotificationLog{
		ID:               l.ID,
		SchoolID:         l.SchoolID,
		RecipientID:      l.RecipientID,
		RecipientName:    l.RecipientName,
		RecipientPhone:   l.RecipientPhone,
		RecipientType:    string(l.RecipientType),
		NotificationType: l.NotificationType.String(),
		Channel:          l.Channel.String(),
		Status:           l.Status.String(),
		Message:          l.Message,
		MessagePreview:   l.MessagePreview,
		TemplateID:       l.TemplateID,
		TemplateName:     l.TemplateName,
		Cost:             l.Cost,
		ProviderSID:      l.ProviderSID,
		ErrorMessage:     l.ErrorMessage,
		SentAt:           l.SentAt,
		DeliveredAt:      l.DeliveredAt,
		ReadAt:           l.ReadAt,
		Ctime:            l.Ctime,
		Utime:            l.Utime,
	}
}

func (r *notificationLogRepository) toDomain(e dao.NotificationLog) domain.NotificationLog {
	return domain.NotificationLog{
		ID:               e.ID,
		SchoolID:         e.SchoolID,
		RecipientID:      e.RecipientID,
		RecipientName:    e.RecipientName,
		RecipientPhone:   e.RecipientPhone,
		RecipientType:    domain.RecipientType(e.RecipientType),
		NotificationType: domain.NotificationType(e.NotificationType),
		Channel:          domain.Channel(e.Channel),
		Status:           domain.LogStatus(e.Status),
		Message:          e.Message,
		MessagePreview:   e.MessagePreview,
		TemplateID:       e.TemplateID,
		TemplateName:     e.TemplateName,
		Cost:             e.Cost,
		ProviderSID:      e.ProviderSID,
		ErrorMessage:     e.ErrorMessage,
		SentAt:           e.SentAt,
		DeliveredAt:      e.DeliveredAt,
		ReadAt:           e.ReadAt,
		Ctime:            e.Ctime,
		Utime:            e.Utime,
	}
}
