package rule

import (
	"context"
	"errors"
	"fmt"

	"gitee.com/flycash/school-notification/internal/domain"
	"gitee.com/flycash/school-notification/internal/errs"
	"gitee.com/flycash/school-notification/internal/pkg/catalog"
	"gitee.com/flycash/school-notification/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

// Service 通知规则
//
//go:generate mockgen -source=./rule.go -destination=./mocks/rule.mock.go -package=rulemocks -typed Service
type Service interface {
	// Save 按照 (school, type) 插入或者覆盖
	Save(ctx context.Context, r domain.NotificationRule) error
	Get(ctx context.Context, schoolID int64, typ domain.NotificationType) (domain.NotificationRule, error)
	// GetEnabled 规则不存在或者没有启用都返回 errs.ErrRuleNotFound
	GetEnabled(ctx context.Context, schoolID int64, typ domain.NotificationType) (domain.NotificationRule, error)
	List(ctx context.Context, schoolID int64) ([]domain.NotificationRule, error)
	Delete(ctx context.Context, schoolID int64, typ domain.NotificationType) error
	// SeedDefaults 写入默认规则，已经存在的类型保持不变
	SeedDefaults(ctx context.Context, schoolID int64) error
}

type ruleService struct {
	repo    repository.NotificationRuleRepository
	catalog catalog.Catalog
	logger  *elog.Component
}

func NewService(repo repository.NotificationRuleRepository, c catalog.Catalog) Service {
	return &ruleService{
		repo:    repo,
		catalog: c,
		logger:  elog.DefaultLogger,
	}
}

func (s *ruleService) Save(ctx context.Context, r domain.NotificationRule) error {
	if err := r.Validate(); err != nil {
		return err
	}
	return s.repo.Save(ctx, r)
}

func (s *ruleService) Get(ctx context.Context, schoolID int64, typ domain.NotificationType) (domain.NotificationRule, error) {
	return s.repo.Get(ctx, schoolID, typ)
}

func (s *ruleService) GetEnabled(ctx context.Context, schoolID int64, typ domain.NotificationType) (domain.NotificationRule, error) {
	r, err := s.repo.Get(ctx, schoolID, typ)
	if err != nil {
		return domain.NotificationRule{}, err
	}
	if !r.Enabled {
		return domain.NotificationRule{}, fmt.Errorf("%w: school = %d, type = %s 未启用", errs.ErrRuleNotFound, schoolID, typ)
	}
	return r, nil
}

func (s *ruleService) List(ctx context.Context, schoolID int64) ([]domain.NotificationRule, error) {
	return s.repo.List(ctx, schoolID)
}

func (s *ruleService) Delete(ctx context.Context, schoolID int64, typ domain.NotificationType) error {
	return s.repo.Delete(ctx, schoolID, typ)
}

func (s *ruleService) SeedDefaults(ctx context.Context, schoolID int64) error {
	if schoolID <= 0 {
		return fmt.Errorf("%w: SchoolID = %d", errs.ErrInvalidParameter, schoolID)
	}
	rules := s.catalog.RulesFor(schoolID)
	for i := range rules {
		if err := rules[i].Validate(); err != nil {
			return errors.Join(fmt.Errorf("默认规则 %s 不合法", rules[i].Type), err)
		}
	}
	return s.repo.SaveIfAbsent(ctx, rules)
}
