package repository

import (
	"context"

	"gitee.com/flycash/school-notification/internal/domain"
	"gitee.com/flycash/school-notification/internal/repository/dao"
)

//go:generate mockgen -source=./attempt.go -destination=./mocks/attempt.mock.go -package=repomocks -typed ReminderAttemptRepository
type ReminderAttemptRepository interface {
	// Claim 返回 errs.ErrAttemptDuplicate 说明已经领取过
	Claim(ctx context.Context, a domain.ReminderAttempt) error
	Release(ctx context.Context, a domain.ReminderAttempt) error
}

type reminderAttemptRepository struct {
	dao dao.ReminderAttemptDAO
}

func NewReminderAttemptRepository(d dao.ReminderAttemptDAO) ReminderAttemptRepository {
	return &reminderAttemptRepository{dao: d}
}

func (r *reminderAttemptRepository) Claim(ctx context.Context, a domain.ReminderAttempt) error {
	return r.dao.Claim(ctx, dao.ReminderAttempt{
		SchoolID:  a.SchoolID,
		Kind:      string(a.Kind),
		EntityID:  a.EntityID,
		OffsetKey: a.OffsetKey,
	})
}

func (r *reminderAttemptRepository) Release(ctx context.Context, a domain.ReminderAttempt) error {
	return r.dao.Release(ctx, string(a.Kind), a.EntityID, a.OffsetKey)
}
