package scheduler

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"strconv"
	"time"

	"gitee.com/flycash/school-notification/internal/domain"
	"gitee.com/flycash/school-notification/internal/errs"
	"gitee.com/flycash/school-notification/internal/repository"
	"gitee.com/flycash/school-notification/internal/service/gateway"
	"gitee.com/flycash/school-notification/internal/service/preference"
	"gitee.com/flycash/school-notification/internal/service/rule"
	"gitee.com/flycash/school-notification/internal/service/template"
	"gitee.com/flycash/school-notification/internal/service/twilioconfig"
	"github.com/gotomicro/ego/core/elog"
	"github.com/hashicorp/go-multierror"
)

const lockKeyPrefix = "school_notification:schedule:"

// Service 定时提醒
//
//go:generate mockgen -source=./scheduler.go -destination=./mocks/scheduler.mock.go -package=schedulermocks -typed Service
type Service interface {
	// RunScheduledChecks 先处理课程提醒，再处理缴费提醒。错误都汇总在报告里，不会返回
	RunScheduledChecks(ctx context.Context, schoolID int64) RunReport
	// SendNotification 给单个学生发送通知，遵守学生的退订、免打扰和渠道设置。
	// vars 覆盖根据学生信息生成的变量
	SendNotification(ctx context.Context, schoolID, studentID int64,
		typ domain.NotificationType, vars map[string]string) ([]domain.SendResult, error)
	// RunAll 依次检查所有启用了 Twilio 的学校
	RunAll(ctx context.Context) ([]RunReport, error)
}

type Scheduler struct {
	rules     rule.Service
	templates template.Service
	prefs     preference.Service
	gateway   gateway.Service
	configs   twilioconfig.Service
	school    repository.SchoolRepository
	attempts  repository.ReminderAttemptRepository
	locker    Locker
	loc       *time.Location
	now       func() time.Time
	logger    *elog.Component
}

func NewScheduler(
	rules rule.Service,
	templates template.Service,
	prefs preference.Service,
	gw gateway.Service,
	configs twilioconfig.Service,
	school repository.SchoolRepository,
	attempts repository.ReminderAttemptRepository,
	locker Locker,
	loc *time.Location,
	now func() time.Time,
) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &Scheduler{
		rules:     rules,
		templates: templates,
		prefs:     prefs,
		gateway:   gw,
		configs:   configs,
		school:    school,
		attempts:  attempts,
		locker:    locker,
		loc:       loc,
		now:       now,
		logger:    elog.DefaultLogger,
	}
}

// candidate 需要检查提醒的课程或者账单
type candidate struct {
	kind      domain.EntityKind
	id        int64
	studentID int64
	teacherID int64
	anchor    time.Time
	vars      map[string]string
}

// audience 一个实体对应的学生信息，有提醒到期的时候才加载
type audience struct {
	student domain.Student
	prefs   domain.StudentNotificationPrefs
	vars    map[string]string
}

func (s *Scheduler) RunAll(ctx context.Context) ([]RunReport, error) {
	ids, err := s.configs.ListActiveSchools(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询启用的学校失败: %w", err)
	}
	reports := make([]RunReport, 0, len(ids))
	for _, id := range ids {
		if ctx.Err() != nil {
			return reports, ctx.Err()
		}
		reports = append(reports, s.RunScheduledChecks(ctx, id))
	}
	return reports, nil
}

func (s *Scheduler) RunScheduledChecks(ctx context.Context, schoolID int64) RunReport {
	report := RunReport{SchoolID: schoolID}
	logger := s.logger.With(elog.Int64("schoolID", schoolID))

	unlock, ok, err := s.locker.TryLock(ctx, lockKeyPrefix+strconv.FormatInt(schoolID, 10))
	if err != nil {
		logger.Error("初始化分布式锁失败", elog.FieldErr(err))
		report.Skipped, report.SkipReason, report.Err = true, SkipLockError, err
		return report
	}
	if !ok {
		logger.Info("其他实例正在检查，跳过")
		report.Skipped, report.SkipReason = true, SkipLocked
		return report
	}
	defer unlock()

	cfg, ok := s.activeConfig(ctx, schoolID)
	if !ok {
		report.Skipped, report.SkipReason = true, SkipMasterToggleOff
		return report
	}

	now := s.now()
	var merr *multierror.Error
	if err = s.runPass(ctx, cfg, domain.NotificationTypeLessonReminder, s.sessionCandidates, now, &report.Lessons); err != nil {
		merr = multierror.Append(merr, fmt.Errorf("课程提醒: %w", err))
	}
	if err = s.runPass(ctx, cfg, domain.NotificationTypePaymentReminder, s.paymentCandidates, now, &report.Payments); err != nil {
		merr = multierror.Append(merr, fmt.Errorf("缴费提醒: %w", err))
	}
	report.Err = merr.ErrorOrNil()
	if report.Err != nil {
		logger.Error("定时检查部分失败", elog.FieldErr(report.Err))
	}
	logger.Info("定时检查完成",
		elog.Any("lessons", report.Lessons),
		elog.Any("payments", report.Payments))
	return report
}

func (s *Scheduler) SendNotification(ctx context.Context, schoolID, studentID int64,
	typ domain.NotificationType, vars map[string]string,
) ([]domain.SendResult, error) {
	if !typ.IsValid() {
		return nil, fmt.Errorf("%w: Type = %q", errs.ErrInvalidParameter, typ)
	}
	cfg, ok := s.activeConfig(ctx, schoolID)
	if !ok {
		return []domain.SendResult{domain.Suppressed(domain.SuppressMasterToggleOff)}, nil
	}
	aud, err := s.loadAudience(ctx, schoolID, studentID, 0)
	if err != nil {
		return nil, err
	}
	if aud.prefs.OptedOut {
		return []domain.SendResult{domain.Suppressed(domain.SuppressOptedOut)}, nil
	}
	channels := aud.prefs.EnabledChannels()
	if len(channels) == 0 {
		return []domain.SendResult{domain.Suppressed(domain.SuppressChannelDisabled)}, nil
	}
	tpl, err := s.templates.GetForType(ctx, schoolID, typ, aud.student.Language)
	if err != nil {
		return nil, err
	}
	recipients, err := s.prefs.ResolveRecipients(ctx, schoolID, studentID, 0,
		domain.Recipients{Student: true}, aud.prefs)
	if err != nil {
		return nil, err
	}
	var results []domain.SendResult
	for _, r := range recipients {
		values := maps.Clone(aud.vars)
		values["recipientName"] = r.Name
		maps.Copy(values, vars)
		msg := s.templates.Parse(tpl.Body, values)
		results = append(results, s.deliver(ctx, cfg, r, channels, aud.prefs, msg, typ, &tpl, s.now())...)
	}
	return results, nil
}

// activeConfig 学校没有配置或者没有启用的时候返回 false
func (s *Scheduler) activeConfig(ctx context.Context, schoolID int64) (domain.TwilioConfig, bool) {
	cfg, err := s.configs.Get(ctx, schoolID)
	if err != nil {
		if !errors.Is(err, errs.ErrTwilioConfigNotFound) {
			s.logger.Error("获取 Twilio 配置失败", elog.Int64("schoolID", schoolID), elog.FieldErr(err))
		}
		return domain.TwilioConfig{}, false
	}
	return cfg, cfg.IsActive
}

type candidateLoader func(ctx context.Context, schoolID int64, now time.Time) ([]candidate, error)

func (s *Scheduler) runPass(ctx context.Context, cfg domain.TwilioConfig, typ domain.NotificationType,
	load candidateLoader, now time.Time, report *PassReport,
) error {
	r, err := s.rules.GetEnabled(ctx, cfg.SchoolID, typ)
	if errors.Is(err, errs.ErrRuleNotFound) {
		report.Skipped = true
		return nil
	}
	if err != nil {
		return err
	}
	candidates, err := load(ctx, cfg.SchoolID, now)
	var merr *multierror.Error
	if err != nil {
		// 部分实体解析失败，其余的照常处理
		merr = multierror.Append(merr, err)
	}
	for i := range candidates {
		report.Entities++
		if er := s.processEntity(ctx, cfg, r, candidates[i], now, report); er != nil {
			merr = multierror.Append(merr, fmt.Errorf("%s %d: %w", candidates[i].kind, candidates[i].id, er))
		}
	}
	return merr.ErrorOrNil()
}

func (s *Scheduler) processEntity(ctx context.Context, cfg domain.TwilioConfig, r domain.NotificationRule,
	c candidate, now time.Time, report *PassReport,
) error {
	var (
		merr *multierror.Error
		aud  *audience
	)
	for _, rem := range r.Reminders {
		if !rem.IsDue(c.anchor, now) {
			continue
		}
		report.Due++
		attempt := domain.ReminderAttempt{
			SchoolID:  cfg.SchoolID,
			Kind:      c.kind,
			EntityID:  c.id,
			OffsetKey: rem.Key(),
			Ctime:     now.UnixMilli(),
		}
		err := s.attempts.Claim(ctx, attempt)
		if errors.Is(err, errs.ErrAttemptDuplicate) {
			report.Duplicates++
			continue
		}
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("提醒 %s: %w", rem.Key(), err))
			continue
		}

		if aud == nil {
			a, er := s.loadAudience(ctx, cfg.SchoolID, c.studentID, c.teacherID)
			if er != nil {
				s.release(ctx, attempt)
				merr = multierror.Append(merr, fmt.Errorf("提醒 %s: %w", rem.Key(), er))
				continue
			}
			aud = &a
		}
		results, err := s.fire(ctx, cfg, r, c, rem, *aud, now)
		if err != nil {
			// 还没有发送任何消息，释放之后下一轮重试
			s.release(ctx, attempt)
			merr = multierror.Append(merr, fmt.Errorf("提醒 %s: %w", rem.Key(), err))
			continue
		}
		report.count(results)
	}
	return merr.ErrorOrNil()
}

// fire 渲染并发送一个提醒。返回 error 说明没有发出任何消息
func (s *Scheduler) fire(ctx context.Context, cfg domain.TwilioConfig, r domain.NotificationRule,
	c candidate, rem domain.Reminder, aud audience, now time.Time,
) ([]domain.SendResult, error) {
	tpl, err := s.templates.GetForType(ctx, cfg.SchoolID, r.Type, aud.student.Language)
	if err != nil {
		return nil, err
	}
	recipients, err := s.prefs.ResolveRecipients(ctx, cfg.SchoolID, c.studentID, c.teacherID, r.Recipients, aud.prefs)
	if err != nil {
		return nil, err
	}
	vars := maps.Clone(aud.vars)
	maps.Copy(vars, c.vars)
	var results []domain.SendResult
	for _, rc := range recipients {
		vars["recipientName"] = rc.Name
		msg := s.templates.Parse(tpl.Body, vars)
		results = append(results, s.deliver(ctx, cfg, rc, rem.Channel.Channels(), aud.prefs, msg, r.Type, &tpl, now)...)
	}
	return results, nil
}

// deliver 按渠道依次发送。降级之后和前面渠道相同的不再重复发送
func (s *Scheduler) deliver(ctx context.Context, cfg domain.TwilioConfig, r domain.Recipient,
	channels []domain.Channel, prefs domain.StudentNotificationPrefs, msg string,
	typ domain.NotificationType, tpl *domain.NotificationTemplate, now time.Time,
) []domain.SendResult {
	results := make([]domain.SendResult, 0, len(channels))
	used := make(map[domain.Channel]struct{}, len(channels))
	for _, ch := range channels {
		actual, ok := cfg.ResolveChannel(ch)
		if !ok {
			results = append(results, domain.Suppressed(domain.SuppressNoChannelConfigured))
			continue
		}
		if _, ok = used[actual]; ok {
			continue
		}
		used[actual] = struct{}{}
		// 学生的偏好同时作用于家长，老师不受影响
		if r.Type != domain.RecipientTeacher {
			if d := s.prefs.Check(prefs, actual, now); !d.Allowed {
				s.logger.Debug("根据偏好不发送",
					elog.Int64("schoolID", cfg.SchoolID),
					elog.Int64("recipientID", r.ID),
					elog.String("reason", string(d.Reason)))
				results = append(results, domain.Suppressed(d.Reason))
				continue
			}
		}
		phone := r.PhoneFor(actual)
		if phone == "" {
			continue
		}
		results = append(results, s.gateway.Send(ctx, domain.SendRequest{
			SchoolID:         cfg.SchoolID,
			RecipientID:      r.ID,
			RecipientName:    r.Name,
			RecipientType:    r.Type,
			Phone:            phone,
			Message:          msg,
			Channel:          actual,
			NotificationType: typ,
			Template:         tpl,
		}))
	}
	return results
}

func (s *Scheduler) loadAudience(ctx context.Context, schoolID, studentID, teacherID int64) (audience, error) {
	stu, err := s.school.GetStudent(ctx, schoolID, studentID)
	if err != nil {
		return audience{}, err
	}
	p, err := s.prefs.Get(ctx, schoolID, studentID)
	if err != nil {
		return audience{}, err
	}
	vars := map[string]string{
		"studentName": stu.Name,
		"parentName":  stu.ParentName,
	}
	if teacherID > 0 {
		tea, er := s.school.GetTeacher(ctx, schoolID, teacherID)
		if er == nil {
			vars["teacherName"] = tea.Name
		} else {
			s.logger.Warn("查询老师失败", elog.Int64("teacherID", teacherID), elog.FieldErr(er))
		}
	}
	return audience{student: stu, prefs: p, vars: vars}, nil
}

func (s *Scheduler) release(ctx context.Context, a domain.ReminderAttempt) {
	if err := s.attempts.Release(ctx, a); err != nil {
		s.logger.Error("释放提醒失败",
			elog.Int64("schoolID", a.SchoolID),
			elog.String("kind", string(a.Kind)),
			elog.Int64("entityID", a.EntityID),
			elog.String("offset", a.OffsetKey),
			elog.FieldErr(err))
	}
}

func (s *Scheduler) sessionCandidates(ctx context.Context, schoolID int64, now time.Time) ([]candidate, error) {
	today := now.In(s.loc).Format(time.DateOnly)
	sessions, err := s.school.UpcomingSessions(ctx, schoolID, today)
	if err != nil {
		return nil, err
	}
	var merr *multierror.Error
	res := make([]candidate, 0, len(sessions))
	for _, ss := range sessions {
		anchor, er := ss.StartAt(s.loc)
		if er != nil {
			merr = multierror.Append(merr, er)
			continue
		}
		res = append(res, candidate{
			kind:      domain.EntitySession,
			id:        ss.ID,
			studentID: ss.StudentID,
			teacherID: ss.TeacherID,
			anchor:    anchor,
			vars: map[string]string{
				"subject":     ss.Subject,
				"lessonDate":  ss.Date,
				"lessonTime":  ss.Time,
				"meetingLink": ss.MeetingLink,
			},
		})
	}
	return res, merr.ErrorOrNil()
}

func (s *Scheduler) paymentCandidates(ctx context.Context, schoolID int64, _ time.Time) ([]candidate, error) {
	payments, err := s.school.PendingPayments(ctx, schoolID)
	if err != nil {
		return nil, err
	}
	var merr *multierror.Error
	res := make([]candidate, 0, len(payments))
	for _, p := range payments {
		anchor, er := p.DueAt(s.loc)
		if er != nil {
			merr = multierror.Append(merr, er)
			continue
		}
		res = append(res, candidate{
			kind:      domain.EntityPayment,
			id:        p.ID,
			studentID: p.StudentID,
			anchor:    anchor,
			vars: map[string]string{
				"amount":      p.FormatAmount(),
				"dueDate":     p.DueDate,
				"description": p.Description,
			},
		})
	}
	return res, merr.ErrorOrNil()
}

var _ Service = (*Scheduler)(nil)
