package repository

import (
	"context"

	"gitee.com/flycash/school-notification/internal/domain"
	"gitee.com/flycash/school-notification/internal/repository/cache"
	"gitee.com/flycash/school-notification/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./twilio_config.go -destination=./mocks/twilio_config.mock.go -package=repomocks -typed TwilioConfigRepository
type TwilioConfigRepository interface {
	// Get 依次查询本地缓存、redis、数据库
	Get(ctx context.Context, schoolID int64) (domain.TwilioConfig, error)
	Save(ctx context.Context, cfg domain.TwilioConfig) error
	AddSpend(ctx context.Context, schoolID int64, cost float64) error
	ResetSpend(ctx context.Context, schoolID int64) error
	ListActiveSchoolIDs(ctx context.Context) ([]int64, error)
}

type twilioConfigRepository struct {
	dao        dao.TwilioConfigDAO
	localCache cache.TwilioConfigCache
	redisCache cache.TwilioConfigCache
	logger     *elog.Component
}

func NewTwilioConfigRepository(d dao.TwilioConfigDAO, localCache, redisCache cache.TwilioConfigCache) TwilioConfigRepository {
	return &twilioConfigRepository{
		dao:        d,
		localCache: localCache,
		redisCache: redisCache,
		logger:     elog.DefaultLogger,
	}
}

func (r *twilioConfigRepository) Get(ctx context.Context, schoolID int64) (domain.TwilioConfig, error) {
	cfg, err := r.localCache.Get(ctx, schoolID)
	if err == nil {
		return cfg, nil
	}
	cfg, err = r.redisCache.Get(ctx, schoolID)
	if err == nil {
		_ = r.localCache.Set(ctx, cfg)
		return cfg, nil
	}

	e, err := r.dao.Get(ctx, schoolID)
	if err != nil {
		return domain.TwilioConfig{}, err
	}
	cfg = r.toDomain(e)
	// 缓存失败不影响结果
	if err1 := r.redisCache.Set(ctx, cfg); err1 != nil {
		r.logger.Error("回写redis缓存失败", elog.Int64("schoolID", schoolID), elog.FieldErr(err1))
	}
	_ = r.localCache.Set(ctx, cfg)
	return cfg, nil
}

func (r *twilioConfigRepository) Save(ctx context.Context, cfg domain.TwilioConfig) error {
	err := r.dao.Save(ctx, r.toEntity(cfg))
	if err != nil {
		return err
	}
	r.invalidate(ctx, cfg.SchoolID)
	return nil
}

func (r *twilioConfigRepository) AddSpend(ctx context.Context, schoolID int64, cost float64) error {
	err := r.dao.AddSpend(ctx, schoolID, cost)
	if err != nil {
		return err
	}
	r.invalidate(ctx, schoolID)
	return nil
}

func (r *twilioConfigRepository) ResetSpend(ctx context.Context, schoolID int64) error {
	err := r.dao.ResetSpend(ctx, schoolID)
	if err != nil {
		return err
	}
	r.invalidate(ctx, schoolID)
	return nil
}

func (r *twilioConfigRepository) ListActiveSchoolIDs(ctx context.Context) ([]int64, error) {
	return r.dao.ListActiveSchoolIDs(ctx)
}

func (r *twilioConfigRepository) invalidate(ctx context.Context, schoolID int64) {
	if err := r.redisCache.Del(ctx, schoolID); err != nil {
		r.logger.Error("删除redis缓存失败", elog.Int64("schoolID", schoolID), elog.FieldErr(err))
	}
	_ = r.localCache.Del(ctx, schoolID)
}

func (r *twilioConfigRepository) toEntity(cfg domain.TwilioConfig) dao.TwilioConfig {
	return dao.TwilioConfig{
		SchoolID:            cfg.SchoolID,
		AccountSID:          cfg.AccountSID,
		AuthToken:           cfg.AuthToken,
		PhoneNumberSMS:      cfg.PhoneNumberSMS,
		PhoneNumberWhatsApp: cfg.PhoneNumberWhatsApp,
		IsActive:            cfg.IsActive,
		MonthlyBudget:       cfg.MonthlyBudget,
		CurrentSpend:        cfg.CurrentSpend,
		Ctime:               cfg.Ctime,
		Utime:               cfg.Utime,
	}
}

func (r *twilioConfigRepository) toDomain(e dao.TwilioConfig) domain.TwilioConfig {
	return domain.TwilioConfig{
		SchoolID:            e.SchoolID,
		AccountSID:          e.AccountSID,
		AuthToken:           e.AuthToken,
		PhoneNumberSMS:      e.PhoneNumberSMS,
		PhoneNumberWhatsApp: e.PhoneNumberWhatsApp,
		IsActive:            e.IsActive,
		MonthlyBudget:       e.MonthlyBudget,
		CurrentSpend:        e.CurrentSpend,
		Ctime:               e.Ctime,
		Utime:               e.Utime,
	}
}
