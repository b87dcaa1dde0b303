package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"gitee.com/flycash/school-notification/internal/domain"
	"gitee.com/flycash/school-notification/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./rule.go -destination=./mocks/rule.mock.go -package=repomocks -typed NotificationRuleRepository
type NotificationRuleRepository interface {
	Save(ctx context.Context, r domain.NotificationRule) error
	// SaveIfAbsent 已经存在的规则保持不变
	SaveIfAbsent(ctx context.Context, rs []domain.NotificationRule) error
	Get(ctx context.Context, schoolID int64, typ domain.NotificationType) (domain.NotificationRule, error)
	List(ctx context.Context, schoolID int64) ([]domain.NotificationRule, error)
	Delete(ctx context.Context, schoolID int64, typ domain.NotificationType) error
}

type notificationRuleRepository struct {
	dao    dao.NotificationRuleDAO
	logger *elog.Component
}

func NewNotificationRuleRepository(d dao.NotificationRuleDAO) NotificationRuleRepository {
	return &notificationRuleRepository{
		dao:    d,
		logger: elog.DefaultLogger,
	}
}

func (r *notificationRuleRepository) Save(ctx context.Context, rule domain.NotificationRule) error {
	entity, err := r.toEntity(rule)
	if err != nil {
		return err
	}
	return r.dao.Upsert(ctx, entity)
}

func (r *notificationRuleRepository) SaveIfAbsent(ctx context.Context, rs []domain.NotificationRule) error {
	entities := make([]dao.NotificationRule, 0, len(rs))
	for i := range rs {
		e, err := r.toEntity(rs[i])
		if err != nil {
			return err
		}
		entities = append(entities, e)
	}
	return r.dao.BatchInsertIgnore(ctx, entities)
}

func (r *notificationRuleRepository) Get(ctx context.Context, schoolID int64, typ domain.NotificationType) (domain.NotificationRule, error) {
	e, err := r.dao.Get(ctx, schoolID, typ.String())
	if err != nil {
		return domain.NotificationRule{}, err
	}
	return r.toDomain(e)
}

func (r *notificationRuleRepository) List(ctx context.Context, schoolID int64) ([]domain.NotificationRule, error) {
	es, err := r.dao.List(ctx, schoolID)
	if err != nil {
		return nil, err
	}
	res := make([]domain.NotificationRule, 0, len(es))
	for i := range es {
		rule, err1 := r.toDomain(es[i])
		if err1 != nil {
			// 单条数据损坏不影响其他规则的展示
			r.logger.Error("解析通知规则失败",
				elog.Int64("id", es[i].ID),
				elog.FieldErr(err1))
			continue
		}
		res = append(res, rule)
	}
	return res, nil
}

func (r *notificationRuleRepository) Delete(ctx context.Context, schoolID int64, typ domain.NotificationType) error {
	return r.dao.Delete(ctx, schoolID, typ.String())
}

func (r *notificationRuleRepository) toEntity(rule domain.NotificationRule) (dao.NotificationRule, error) {
	recipients, err := json.Marshal(rule.Recipients)
	if err != nil {
		return dao.NotificationRule{}, fmt.Errorf("序列化接收方失败 %w", err)
	}
	reminders := rule.Reminders
	if reminders == nil {
		reminders = []domain.Reminder{}
	}
	remindersVal, err := json.Marshal(reminders)
	if err != nil {
		return dao.NotificationRule{}, fmt.Errorf("序列化提醒列表失败 %w", err)
	}
	return dao.NotificationRule{
		ID:         rule.ID,
		SchoolID:   rule.SchoolID,
		Type:       rule.Type.String(),
		Enabled:    rule.Enabled,
		Recipients: string(recipients),
		Reminders:  string(remindersVal),
		Ctime:      rule.Ctime,
		Utime:      rule.Utime,
	}, nil
}

func (r *notificationRuleRepository) toDomain(e dao.NotificationRule) (domain.NotificationRule, error) {
	var recipients domain.Recipients
	if err := json.Unmarshal([]byte(e.Recipients), &recipients); err != nil {
		return domain.NotificationRule{}, fmt.Errorf("反序列化接收方失败 %w", err)
	}
	var reminders []domain.Reminder
	if err := json.Unmarshal([]byte(e.Reminders), &reminders); err != nil {
		return domain.NotificationRule{}, fmt.Errorf("反序列化提醒列表失败 %w", err)
	}
	return domain.NotificationRule{
		ID:         e.ID,
		SchoolID:   e.SchoolID,
		Type:       domain.NotificationType(e.Type),
		Enabled:    e.Enabled,
		Recipients: recipients,
		Reminders:  reminders,
		Ctime:      e.Ctime,
		Utime:      e.Utime,
	}, nil
}
