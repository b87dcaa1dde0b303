package preference

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gitee.com/flycash/school-notification/internal/domain"
	"gitee.com/flycash/school-notification/internal/errs"
	"gitee.com/flycash/school-notification/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

// Service 学生通知偏好，同时负责解析接收人的联系方式
//
//go:generate mockgen -source=./preference.go -destination=./mocks/preference.mock.go -package=preferencemocks -typed Service
type Service interface {
	// Get 没有配置过的学生返回默认偏好
	Get(ctx context.Context, schoolID, studentID int64) (domain.StudentNotificationPrefs, error)
	// Upsert 合并更新，patch 中没有的字段保持原值
	Upsert(ctx context.Context, schoolID, studentID int64, patch domain.PrefsPatch) (domain.StudentNotificationPrefs, error)
	OptOut(ctx context.Context, schoolID, studentID int64) error
	OptIn(ctx context.Context, schoolID, studentID int64) error

	// Check 判断在 now 这个时刻能否通过 channel 发送
	Check(prefs domain.StudentNotificationPrefs, channel domain.Channel, now time.Time) domain.Decision
	// ResolveRecipients 按照 flags 解析学生、家长、老师的联系方式，没有号码的接收人直接跳过
	ResolveRecipients(ctx context.Context, schoolID, studentID, teacherID int64,
		flags domain.Recipients, prefs domain.StudentNotificationPrefs) ([]domain.Recipient, error)
}

type service struct {
	repo   repository.StudentPrefsRepository
	school repository.SchoolRepository
	loc    *time.Location
	logger *elog.Component
}

// NewService loc 是学校所在的时区，免打扰时段按照这个时区计算
func NewService(repo repository.StudentPrefsRepository, school repository.SchoolRepository, loc *time.Location) Service {
	if loc == nil {
		loc = time.UTC
	}
	return &service{
		repo:   repo,
		school: school,
		loc:    loc,
		logger: elog.DefaultLogger,
	}
}

func (s *service) Get(ctx context.Context, schoolID, studentID int64) (domain.StudentNotificationPrefs, error) {
	p, err := s.repo.Get(ctx, schoolID, studentID)
	if errors.Is(err, errs.ErrPrefsNotFound) {
		return domain.DefaultPrefs(schoolID, studentID), nil
	}
	return p, err
}

func (s *service) Upsert(ctx context.Context, schoolID, studentID int64, patch domain.PrefsPatch) (domain.StudentNotificationPrefs, error) {
	if schoolID <= 0 || studentID <= 0 {
		return domain.StudentNotificationPrefs{}, fmt.Errorf("%w: schoolID = %d, studentID = %d",
			errs.ErrInvalidParameter, schoolID, studentID)
	}
	old, err := s.Get(ctx, schoolID, studentID)
	if err != nil {
		return domain.StudentNotificationPrefs{}, err
	}
	p, err := patch.Apply(old)
	if err != nil {
		return domain.StudentNotificationPrefs{}, err
	}
	if err = s.repo.Save(ctx, p); err != nil {
		return domain.StudentNotificationPrefs{}, err
	}
	return p, nil
}

func (s *service) OptOut(ctx context.Context, schoolID, studentID int64) error {
	optedOut := true
	_, err := s.Upsert(ctx, schoolID, studentID, domain.PrefsPatch{OptedOut: &optedOut})
	return err
}

func (s *service) OptIn(ctx context.Context, schoolID, studentID int64) error {
	optedOut := false
	_, err := s.Upsert(ctx, schoolID, studentID, domain.PrefsPatch{OptedOut: &optedOut})
	return err
}

func (s *service) Check(prefs domain.StudentNotificationPrefs, channel domain.Channel, now time.Time) domain.Decision {
	if prefs.OptedOut {
		return domain.Deny(domain.SuppressOptedOut)
	}
	if prefs.QuietHours != nil && prefs.QuietHours.Contains(now.In(s.loc)) {
		return domain.Deny(domain.SuppressQuietHours)
	}
	if !prefs.ChannelEnabled(channel) {
		return domain.Deny(domain.SuppressChannelDisabled)
	}
	return domain.Allow()
}

func (s *service) ResolveRecipients(ctx context.Context, schoolID, studentID, teacherID int64,
	flags domain.Recipients, prefs domain.StudentNotificationPrefs,
) ([]domain.Recipient, error) {
	res := make([]domain.Recipient, 0, 3)
	if flags.Student || flags.Parent {
		stu, err := s.school.GetStudent(ctx, schoolID, studentID)
		if err != nil {
			return nil, err
		}
		if flags.Student {
			r := domain.Recipient{
				ID:            stu.ID,
				Name:          stu.Name,
				Phone:         stu.Phone,
				WhatsAppPhone: prefs.WhatsAppNumber,
				Type:          domain.RecipientStudent,
			}
			if prefs.PhoneNumber != "" {
				r.Phone = prefs.PhoneNumber
			}
			res = s.appendReachable(res, r)
		}
		if flags.Parent {
			res = s.appendReachable(res, domain.Recipient{
				ID:    stu.ID,
				Name:  stu.ParentName,
				Phone: stu.ParentPhone,
				Type:  domain.RecipientParent,
			})
		}
	}
	if flags.Teacher && teacherID > 0 {
		tea, err := s.school.GetTeacher(ctx, schoolID, teacherID)
		switch {
		case err == nil:
			res = s.appendReachable(res, domain.Recipient{
				ID:    tea.ID,
				Name:  tea.Name,
				Phone: tea.Phone,
				Type:  domain.RecipientTeacher,
			})
		case errors.Is(err, errs.ErrTeacherNotFound):
			s.logger.Warn("老师不存在，跳过", elog.Int64("schoolID", schoolID), elog.Int64("teacherID", teacherID))
		default:
			return nil, err
		}
	}
	return res, nil
}

func (s *service) appendReachable(res []domain.Recipient, r domain.Recipient) []domain.Recipient {
	if !r.Reachable() {
		s.logger.Debug("接收人没有手机号，跳过",
			elog.String("type", string(r.Type)), elog.Int64("id", r.ID))
		return res
	}
	return append(res, r)
}
