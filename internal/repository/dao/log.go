package dao

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gitee.com/flycash/school-notification/internal/domain"
	"gitee.com/flycash/school-notification/internal/errs"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

// NotificationLog 通知记录表，ID 由 sonyflake 生成
type NotificationLog struct {
	ID               uint64  `gorm:"primaryKey;autoIncrement:false;comment:'记录ID'"`
	SchoolID         int64   `gorm:"type:BIGINT;NOT NULL;index:idx_school_sent_at,priority:1;comment:'学校ID'"`
	RecipientID      int64   `gorm:"type:BIGINT;NOT NULL;comment:'接收人ID'"`
	RecipientName    string  `gorm:"type:VARCHAR(128);NOT NULL;comment:'接收人姓名'"`
	RecipientPhone   string  `gorm:"type:VARCHAR(32);NOT NULL;comment:'接收人号码'"`
	RecipientType    string  `gorm:"type:VARCHAR(16);NOT NULL;comment:'student/parent/teacher'"`
	NotificationType string  `gorm:"type:VARCHAR(32);NOT NULL;comment:'通知类型'"`
	Channel          string  `gorm:"type:VARCHAR(16);NOT NULL;comment:'实际使用的渠道'"`
	Status           string  `gorm:"type:VARCHAR(16);NOT NULL;DEFAULT:'pending';comment:'pending/sent/delivered/read/failed'"`
	Message          string  `gorm:"type:TEXT;NOT NULL;comment:'发送的完整内容'"`
	MessagePreview   string  `gorm:"type:VARCHAR(512);NOT NULL;comment:'内容前100个字符'"`
	TemplateID       int64   `gorm:"type:BIGINT;NOT NULL;DEFAULT:0;index:idx_template_id;comment:'模板ID，0表示没有'"`
	TemplateName     string  `gorm:"type:VARCHAR(128);comment:'模板名称'"`
	Cost             float64 `gorm:"type:DECIMAL(10,4);NOT NULL;DEFAULT:0;comment:'费用'"`
	ProviderSID      string  `gorm:"column:provider_sid;type:VARCHAR(64);index:idx_provider_sid;comment:'Twilio 消息 SID'"`
	ErrorMessage     string  `gorm:"type:VARCHAR(1024);comment:'失败原因'"`
	SentAt           int64   `gorm:"NOT NULL;index:idx_school_sent_at,priority:2;comment:'发送时间'"`
	DeliveredAt      int64   `gorm:"NOT NULL;DEFAULT:0;comment:'送达时间'"`
	ReadAt           int64   `gorm:"NOT NULL;DEFAULT:0;comment:'已读时间'"`
	Ctime            int64
	Utime            int64
}

// TableName 重命名表
func (NotificationLog) TableName() string {
	return "notification_logs"
}

// LogGroupRow 按 (状态, 类型, 渠道) 聚合的结果
type LogGroupRow struct {
	Status           string
	NotificationType string
	Channel          string
	Cnt              int64
	Cost             float64
}

// LogDayRow Bucket 是自然日的下标
type LogDayRow struct {
	Bucket int
	Status string
	Cnt    int64
}

type SentAtRange struct {
	MinSentAt int64
	MaxSentAt int64
}

type NotificationLogDAO interface {
	Create(ctx context.Context, l NotificationLog) error
	GetByID(ctx context.Context, schoolID int64, id uint64) (NotificationLog, error)
	// UpdateStatus 更新状态，delivered 和 read 的时候同时记录对应的时间
	UpdateStatus(ctx context.Context, schoolID int64, id uint64, status, errMsg string) error
	// UpdateResult 重发之后覆盖发送结果
	UpdateResult(ctx context.Context, l NotificationLog) error
	List(ctx context.Context, f domain.LogFilter, sortColumn string, desc bool, offset, limit int) ([]NotificationLog, error)
	Count(ctx context.Context, f domain.LogFilter) (int64, error)
	// ListAfter 按 ID 升序游标遍历，导出的时候用
	ListAfter(ctx context.Context, f domain.LogFilter, afterID uint64, limit int) ([]NotificationLog, error)
	StatGroups(ctx context.Context, schoolID int64, start, end int64) ([]LogGroupRow, error)
	// DailyStatusCounts bounds 是升序的分界点，sent_at < bounds[0] 的下标是 0，
	// bounds[i-1] <= sent_at < bounds[i] 的下标是 i
	DailyStatusCounts(ctx context.Context, schoolID int64, start, end int64, bounds []int64) ([]LogDayRow, error)
	// SentAtRange 没有记录的时候返回零值
	SentAtRange(ctx context.Context, schoolID int64, start, end int64) (SentAtRange, error)
	// DeleteBefore 删除 sent_at < before 的一批记录，返回删除的数量
	DeleteBefore(ctx context.Context, schoolID int64, before int64, limit int) (int64, error)
}

type notificationLogDAO struct {
	db *egorm.Component
}

func NewNotificationLogDAO(db *egorm.Component) NotificationLogDAO {
	return &notificationLogDAO{db: db}
}

func (d *notificationLogDAO) Create(ctx context.Context, l NotificationLog) error {
	now := time.Now().UnixMilli()
	l.Ctime = now
	l.Utime = now
	return d.db.WithContext(ctx).Create(&l).Error
}

func (d *notificationLogDAO) GetByID(ctx context.Context, schoolID int64, id uint64) (NotificationLog, error) {
	var l NotificationLog
	err := d.db.WithContext(ctx).Where("id = ? AND school_id = ?", id, schoolID).First(&l).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotificationLog{}, fmt.Errorf("%w: id = %d", errs.ErrLogNotFound, id)
		}
		return NotificationLog{}, err
	}
	return l, nil
}

func (d *notificationLogDAO) UpdateStatus(ctx context.Context, schoolID int64, id uint64, status, errMsg string) error {
	now := time.Now().UnixMilli()
	updates := map[string]any{
		"status": status,
		"utime":  now,
	}
	switch domain.LogStatus(status) {
	case domain.LogStatusDelivered:
		updates["delivered_at"] = now
	case domain.LogStatusRead:
		updates["read_at"] = now
	case domain.LogStatusFailed:
		updates["error_message"] = errMsg
	}
	res := d.db.WithContext(ctx).Model(&NotificationLog{}).
		Where("id = ? AND school_id = ?", id, schoolID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: id = %d", errs.ErrLogNotFound, id)
	}
	return nil
}

func (d *notificationLogDAO) UpdateResult(ctx context.Context, l NotificationLog) error {
	res := d.db.WithContext(ctx).Model(&NotificationLog{}).
		Where("id = ? AND school_id = ?", l.ID, l.SchoolID).
		Updates(map[string]any{
			"channel":       l.Channel,
			"status":        l.Status,
			"provider_sid":  l.ProviderSID,
			"error_message": l.ErrorMessage,
			"cost":          l.Cost,
			"sent_at":       l.SentAt,
			"delivered_at":  0,
			"read_at":       0,
			"utime":         time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: id = %d", errs.ErrLogNotFound, l.ID)
	}
	return nil
}

// likeEscaper 搜索词按字面匹配
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (d *notificationLogDAO) filter(ctx context.Context, f domain.LogFilter) *gorm.DB {
	db := d.db.WithContext(ctx).Model(&NotificationLog{}).Where("school_id = ?", f.SchoolID)
	if f.Status != "" {
		db = db.Where("status = ?", f.Status.String())
	}
	if f.NotificationType != "" {
		db = db.Where("notification_type = ?", f.NotificationType.String())
	}
	if f.Channel != "" {
		db = db.Where("channel = ?", f.Channel.String())
	}
	if f.TemplateID != 0 {
		db = db.Where("template_id = ?", f.TemplateID)
	}
	if f.StartTime != 0 {
		db = db.Where("sent_at >= ?", f.StartTime)
	}
	if f.EndTime != 0 {
		db = db.Where("sent_at < ?", f.EndTime)
	}
	if f.Search != "" {
		like := "%" + likeEscaper.Replace(f.Search) + "%"
		db = db.Where(`(recipient_name LIKE ? ESCAPE '\\' OR recipient_phone LIKE ? ESCAPE '\\')`, like, like)
	}
	return db
}

func (d *notificationLogDAO) List(ctx context.Context, f domain.LogFilter, sortColumn string, desc bool, offset, limit int) ([]NotificationLog, error) {
	order := sortColumn + " ASC"
	if desc {
		order = sortColumn + " DESC"
	}
	var ls []NotificationLog
	// 加上 id 保证翻页稳定
	err := d.filter(ctx, f).Order(order).Order("id DESC").
		Offset(offset).Limit(limit).Find(&ls).Error
	return ls, err
}

func (d *notificationLogDAO) Count(ctx context.Context, f domain.LogFilter) (int64, error) {
	var cnt int64
	err := d.filter(ctx, f).Count(&cnt).Error
	return cnt, err
}

func (d *notificationLogDAO) ListAfter(ctx context.Context, f domain.LogFilter, afterID uint64, limit int) ([]NotificationLog, error) {
	var ls []NotificationLog
	err := d.filter(ctx, f).Where("id > ?", afterID).Order("id ASC").Limit(limit).Find(&ls).Error
	return ls, err
}

func (d *notificationLogDAO) rangeQuery(ctx context.Context, schoolID int64, start, end int64) *gorm.DB {
	db := d.db.WithContext(ctx).Model(&NotificationLog{}).Where("school_id = ?", schoolID)
	if start != 0 {
		db = db.Where("sent_at >= ?", start)
	}
	if end != 0 {
		db = db.Where("sent_at < ?", end)
	}
	return db
}

func (d *notificationLogDAO) StatGroups(ctx context.Context, schoolID int64, start, end int64) ([]LogGroupRow, error) {
	var rows []LogGroupRow
	err := d.rangeQuery(ctx, schoolID, start, end).
		Select("status, notification_type, channel, COUNT(*) AS cnt, COALESCE(SUM(cost), 0) AS cost").
		Group("status, notification_type, channel").
		Scan(&rows).Error
	return rows, err
}

func (d *notificationLogDAO) DailyStatusCounts(ctx context.Context, schoolID int64, start, end int64, bounds []int64) ([]LogDayRow, error) {
	bucket := "0"
	args := make([]any, 0, len(bounds))
	if len(bounds) > 0 {
		bucket = "INTERVAL(sent_at" + strings.Repeat(", ?", len(bounds)) + ")"
		for _, b := range bounds {
			args = append(args, b)
		}
	}
	var rows []LogDayRow
	err := d.rangeQuery(ctx, schoolID, start, end).
		Select(bucket+" AS bucket, status, COUNT(*) AS cnt", args...).
		Group("bucket, status").
		Scan(&rows).Error
	return rows, err
}

func (d *notificationLogDAO) SentAtRange(ctx context.Context, schoolID int64, start, end int64) (SentAtRange, error) {
	var r SentAtRange
	err := d.rangeQuery(ctx, schoolID, start, end).
		Select("COALESCE(MIN(sent_at), 0) AS min_sent_at, COALESCE(MAX(sent_at), 0) AS max_sent_at").
		Scan(&r).Error
	return r, err
}

func (d *notificationLogDAO) DeleteBefore(ctx context.Context, schoolID int64, before int64, limit int) (int64, error) {
	var ids []uint64
	err := d.db.WithContext(ctx).Model(&NotificationLog{}).
		Where("school_id = ? AND sent_at < ?", schoolID, before).
		Limit(limit).Pluck("id", &ids).Error
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}
	res := d.db.WithContext(ctx).Where("id IN ?", ids).Delete(&NotificationLog{})
	return res.RowsAffected, res.Error
}
