package twilioconfig

import (
	"context"
	"errors"
	"strings"

	"gitee.com/flycash/school-notification/internal/domain"
	"gitee.com/flycash/school-notification/internal/errs"
	"gitee.com/flycash/school-notification/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

const maskPrefix = "****"

// Service 学校 Twilio 账号配置
//
//go:generate mockgen -source=./twilioconfig.go -destination=./mocks/twilioconfig.mock.go -package=twilioconfigmocks -typed Service
type Service interface {
	Get(ctx context.Context, schoolID int64) (domain.TwilioConfig, error)
	// Save 保存配置。AuthToken 是脱敏之后的值时保留原来的 AuthToken
	Save(ctx context.Context, cfg domain.TwilioConfig) error
	// AddSpend 累加本月花费，只做统计，不限制发送
	AddSpend(ctx context.Context, schoolID int64, cost float64) error
	ResetSpend(ctx context.Context, schoolID int64) error
	ListActiveSchools(ctx context.Context) ([]int64, error)
}

type service struct {
	repo   repository.TwilioConfigRepository
	logger *elog.Component
}

func NewService(repo repository.TwilioConfigRepository) Service {
	return &service{
		repo:   repo,
		logger: elog.DefaultLogger,
	}
}

func (s *service) Get(ctx context.Context, schoolID int64) (domain.TwilioConfig, error) {
	return s.repo.Get(ctx, schoolID)
}

func (s *service) Save(ctx context.Context, cfg domain.TwilioConfig) error {
	if strings.HasPrefix(cfg.AuthToken, maskPrefix) {
		old, err := s.repo.Get(ctx, cfg.SchoolID)
		if err != nil && !errors.Is(err, errs.ErrTwilioConfigNotFound) {
			return err
		}
		cfg.AuthToken = old.AuthToken
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	return s.repo.Save(ctx, cfg)
}

func (s *service) AddSpend(ctx context.Context, schoolID int64, cost float64) error {
	if cost <= 0 {
		return nil
	}
	return s.repo.AddSpend(ctx, schoolID, cost)
}

func (s *service) ResetSpend(ctx context.Context, schoolID int64) error {
	return s.repo.ResetSpend(ctx, schoolID)
}

func (s *service) ListActiveSchools(ctx context.Context) ([]int64, error) {
	return s.repo.ListActiveSchoolIDs(ctx)
}
