package deliverylog

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"gitee.com/flycash/school-notification/internal/domain"
	"gitee.com/flycash/school-notification/internal/errs"
	"gitee.com/flycash/school-notification/internal/event/logevent"
	"gitee.com/flycash/school-notification/internal/repository"
	"gitee.com/flycash/school-notification/internal/service/gateway"
	"github.com/gotomicro/ego/core/elog"
)

var (
	_ Service             = (*LogService)(nil)
	_ gateway.LogRecorder = (*LogService)(nil)
)

const (
	// batchSize 导出和清理的时候每批处理的记录数
	batchSize = 500
	day       = 24 * time.Hour
)

var csvHeader = []string{
	"id", "sentAt", "recipientName", "recipientPhone", "recipientType", "notificationType",
	"channel", "status", "message", "templateName", "cost", "providerSid", "errorMessage",
	"deliveredAt", "readAt",
}

// IDGenerator 生成通知记录的 ID
type IDGenerator interface {
	NextID() (uint64, error)
}

// LogSubscriber 订阅通知记录的变更
type LogSubscriber interface {
	Subscribe(ctx context.Context, filter domain.LogFilter) (<-chan domain.NotificationLog, error)
}

// Service 通知记录
//
//go:generate mockgen -source=./deliverylog.go -destination=./mocks/deliverylog.mock.go -package=deliverylogmocks -typed Service
type Service interface {
	// Record 写入一条记录，并且推送给订阅方
	Record(ctx context.Context, log domain.NotificationLog) (domain.NotificationLog, error)
	// UpdateStatus 供应商回调更新投递状态
	UpdateStatus(ctx context.Context, schoolID int64, id uint64, status domain.LogStatus, errMsg string) error
	GetByID(ctx context.Context, schoolID int64, id uint64) (domain.NotificationLog, error)
	List(ctx context.Context, filter domain.LogFilter, sort domain.LogSort, page domain.Page) (domain.LogPage, error)
	Subscribe(ctx context.Context, filter domain.LogFilter) (<-chan domain.NotificationLog, error)
	// Stats [start, end) 毫秒时间戳
	Stats(ctx context.Context, schoolID int64, start, end int64) (domain.LogStats, error)
	// ExportCSV 导出满足条件的记录，没有记录的时候也会输出表头
	ExportCSV(ctx context.Context, filter domain.LogFilter, w io.Writer) error
	// Prune 删除 days 天之前发送的记录，返回删除的数量
	Prune(ctx context.Context, schoolID int64, days int) (int64, error)
	// Resend 重发并且把结果写回原来的记录
	Resend(ctx context.Context, schoolID int64, id uint64) (domain.SendResult, error)
}

// LogService 实现 Service，同时是网关的 LogRecorder
type LogService struct {
	repo       repository.NotificationLogRepository
	producer   logevent.Producer
	subscriber LogSubscriber
	gateway    gateway.Service
	idGen      IDGenerator
	loc        *time.Location
	now        func() time.Time
	logger     *elog.Component
}

// NewService 网关依赖本服务写记录，所以网关通过 SetGateway 注入
func NewService(repo repository.NotificationLogRepository,
	producer logevent.Producer,
	subscriber LogSubscriber,
	idGen IDGenerator,
	loc *time.Location,
	now func() time.Time,
) *LogService {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &LogService{
		repo:       repo,
		producer:   producer,
		subscriber: subscriber,
		idGen:      idGen,
		loc:        loc,
		now:        now,
		logger:     elog.DefaultLogger,
	}
}

func (s *LogService) SetGateway(g gateway.Service) {
	s.gateway = g
}

func (s *LogService) Record(ctx context.Context, log domain.NotificationLog) (domain.NotificationLog, error) {
	id, err := s.idGen.NextID()
	if err != nil {
		return domain.NotificationLog{}, fmt.Errorf("生成记录 ID 失败: %w", err)
	}
	log.ID = id
	log.MessagePreview = domain.Preview(log.Message)
	if log.SentAt == 0 {
		log.SentAt = s.now().UnixMilli()
	}
	if log.Status == "" {
		log.Status = domain.LogStatusPending
	}
	if err = s.repo.Create(ctx, log); err != nil {
		return domain.NotificationLog{}, err
	}
	s.publish(ctx, logevent.KindCreated, log)
	return log, nil
}

func (s *LogService) UpdateStatus(ctx context.Context, schoolID int64, id uint64, status domain.LogStatus, errMsg string) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: Status = %q", errs.ErrInvalidParameter, status)
	}
	if err := s.repo.UpdateStatus(ctx, schoolID, id, status, errMsg); err != nil {
		return err
	}
	s.publishLatest(ctx, schoolID, id)
	return nil
}

func (s *LogService) GetByID(ctx context.Context, schoolID int64, id uint64) (domain.NotificationLog, error) {
	return s.repo.GetByID(ctx, schoolID, id)
}

func (s *LogService) List(ctx context.Context, filter domain.LogFilter, sort domain.LogSort, page domain.Page) (domain.LogPage, error) {
	if sort.Field == "" {
		sort = domain.DefaultLogSort
	}
	return s.repo.List(ctx, filter, sort, page.Normalize())
}

func (s *LogService) Subscribe(ctx context.Context, filter domain.LogFilter) (<-chan domain.NotificationLog, error) {
	return s.subscriber.Subscribe(ctx, filter)
}

func (s *LogService) Stats(ctx context.Context, schoolID int64, start, end int64) (domain.LogStats, error) {
	if end != 0 && start > end {
		return domain.LogStats{}, fmt.Errorf("%w: start = %d, end = %d", errs.ErrInvalidParameter, start, end)
	}
	groups, err := s.repo.StatGroups(ctx, schoolID, start, end)
	if err != nil {
		return domain.LogStats{}, err
	}
	if len(groups) == 0 {
		return domain.NewLogStats(nil, nil), nil
	}
	// 没有指定边界的时候用实际的发送时间划分自然日
	if start == 0 || end == 0 {
		minSentAt, maxSentAt, er := s.repo.SentAtRange(ctx, schoolID, start, end)
		if er != nil {
			return domain.LogStats{}, er
		}
		if start == 0 {
			start = minSentAt
		}
		if end == 0 {
			end = maxSentAt + 1
		}
	}
	days, err := s.repo.DailyStatusCounts(ctx, schoolID, start, end, domain.NewDayBuckets(start, end, s.loc))
	if err != nil {
		return domain.LogStats{}, err
	}
	return domain.NewLogStats(groups, days), nil
}

func (s *LogService) ExportCSV(ctx context.Context, filter domain.LogFilter, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	var afterID uint64
	for {
		logs, err := s.repo.ListAfter(ctx, filter, afterID, batchSize)
		if err != nil {
			return err
		}
		for i := range logs {
			if err = cw.Write(s.csvRecord(logs[i])); err != nil {
				return err
			}
		}
		if len(logs) < batchSize {
			break
		}
		afterID = logs[len(logs)-1].ID
	}
	cw.Flush()
	return cw.Error()
}

func (s *LogService) csvRecord(l domain.NotificationLog) []string {
	return []string{
		strconv.FormatUint(l.ID, 10),
		s.formatTime(l.SentAt),
		l.RecipientName,
		l.RecipientPhone,
		string(l.RecipientType),
		l.NotificationType.String(),
		l.Channel.String(),
		l.Status.String(),
		l.Message,
		l.TemplateName,
		strconv.FormatFloat(l.Cost, 'f', 4, 64),
		l.ProviderSID,
		l.ErrorMessage,
		s.formatTime(l.DeliveredAt),
		s.formatTime(l.ReadAt),
	}
}

func (s *LogService) formatTime(ms int64) string {
	if ms == 0 {
		return ""
	}
	return time.UnixMilli(ms).In(s.loc).Format(time.RFC3339)
}

func (s *LogService) Prune(ctx context.Context, schoolID int64, days int) (int64, error) {
	if days <= 0 {
		return 0, fmt.Errorf("%w: days = %d", errs.ErrInvalidParameter, days)
	}
	before := s.now().Add(-time.Duration(days) * day).UnixMilli()
	var total int64
	for {
		n, err := s.repo.DeleteBefore(ctx, schoolID, before, batchSize)
		total += n
		if err != nil {
			return total, err
		}
		if n < batchSize {
			break
		}
	}
	s.logger.Info("清理通知记录",
		elog.Int64("schoolID", schoolID),
		elog.Int("days", days),
		elog.Int64("deleted", total))
	return total, nil
}

func (s *LogService) Resend(ctx context.Context, schoolID int64, id uint64) (domain.SendResult, error) {
	log, err := s.repo.GetByID(ctx, schoolID, id)
	if err != nil {
		return domain.SendResult{}, err
	}
	res := s.gateway.Redeliver(ctx, log)
	if res.Outcome == domain.OutcomeSuppressed {
		return res, nil
	}
	if err = s.repo.UpdateResult(ctx, res.Log); err != nil {
		return domain.SendResult{}, err
	}
	s.publish(ctx, logevent.KindUpdated, res.Log)
	return res, nil
}

func (s *LogService) publishLatest(ctx context.Context, schoolID int64, id uint64) {
	log, err := s.repo.GetByID(ctx, schoolID, id)
	if err != nil {
		s.logger.Warn("查询更新之后的记录失败",
			elog.Int64("schoolID", schoolID),
			elog.Any("id", id),
			elog.FieldErr(err))
		return
	}
	s.publish(ctx, logevent.KindUpdated, log)
}

// publish 推送失败不影响记录本身
func (s *LogService) publish(ctx context.Context, kind logevent.Kind, log domain.NotificationLog) {
	if s.producer == nil {
		return
	}
	if err := s.producer.Produce(ctx, logevent.Event{Kind: kind, Log: log}); err != nil {
		s.logger.Warn("推送通知记录变更失败",
			elog.String("kind", string(kind)),
			elog.Any("id", log.ID),
			elog.FieldErr(err))
	}
}
