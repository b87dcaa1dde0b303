package domain

import (
	"math"
	"slices"
	"strings"
	"time"
)

// LogStatus 通知记录的投递状态
type LogStatus string

const (
	LogStatusPending   LogStatus = "pending"
	LogStatusSent      LogStatus = "sent"
	LogStatusDelivered LogStatus = "delivered"
	LogStatusRead      LogStatus = "read"
	LogStatusFailed    LogStatus = "failed"
)

func (s LogStatus) String() string {
	return string(s)
}

func (s LogStatus) IsValid() bool {
	switch s {
	case LogStatusPending, LogStatusSent, LogStatusDelivered, LogStatusRead, LogStatusFailed:
		return true
	default:
		return false
	}
}

// RecipientType 接收方类型
type RecipientType string

const (
	RecipientStudent RecipientType = "student"
	RecipientParent  RecipientType = "parent"
	RecipientTeacher RecipientType = "teacher"
)

// PreviewLength 消息预览的最大字符数
const PreviewLength = 100

// NotificationLog 一次发送尝试的记录，时间都是毫秒时间戳，0 表示没有
type NotificationLog struct {
	ID               uint64           `json:"id"`
	SchoolID         int64            `json:"schoolId"`
	RecipientID      int64            `json:"recipientId"`
	RecipientName    string           `json:"recipientName"`
	RecipientPhone   string           `json:"recipientPhone"`
	RecipientType    RecipientType    `json:"recipientType"`
	NotificationType NotificationType `json:"notificationType"`
	Channel          Channel          `json:"channel"`
	Status           LogStatus        `json:"status"`
	Message          string           `json:"message"`
	MessagePreview   string           `json:"messagePreview"`
	TemplateID       int64            `json:"templateId,omitempty"`
	TemplateName     string           `json:"templateName,omitempty"`
	Cost             float64          `json:"cost"`
	ProviderSID      string           `json:"providerSid,omitempty"`
	ErrorMessage     string           `json:"errorMessage,omitempty"`
	SentAt           int64            `json:"sentAt"`
	DeliveredAt      int64            `json:"deliveredAt,omitempty"`
	ReadAt           int64            `json:"readAt,omitempty"`
	Ctime            int64            `json:"createdAt"`
	Utime            int64            `json:"updatedAt"`
}

// Preview 截取消息前 100 个字符
func Preview(message string) string {
	runes := []rune(message)
	if len(runes) <= PreviewLength {
		return message
	}
	return string(runes[:PreviewLength])
}

// LogFilter 查询条件，零值字段表示不过滤
type LogFilter struct {
	SchoolID         int64
	Status           LogStatus
	NotificationType NotificationType
	Channel          Channel
	TemplateID       int64
	// StartTime EndTime 毫秒，作用于 SentAt，左闭右开
	StartTime int64
	EndTime   int64
	// Search 按接收人姓名或者手机号模糊匹配
	Search string
}

// Match 内存里判断一条记录是否满足过滤条件，订阅推送的时候用
func (f LogFilter) Match(l NotificationLog) bool {
	if f.SchoolID != 0 && l.SchoolID != f.SchoolID {
		return false
	}
	if f.Status != "" && l.Status != f.Status {
		return false
	}
	if f.NotificationType != "" && l.NotificationType != f.NotificationType {
		return false
	}
	if f.Channel != "" && l.Channel != f.Channel {
		return false
	}
	if f.TemplateID != 0 && l.TemplateID != f.TemplateID {
		return false
	}
	if f.StartTime != 0 && l.SentAt < f.StartTime {
		return false
	}
	if f.EndTime != 0 && l.SentAt >= f.EndTime {
		return false
	}
	if f.Search != "" {
		search := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(l.RecipientName), search) &&
			!strings.Contains(l.RecipientPhone, f.Search) {
			return false
		}
	}
	return true
}

// LogSort 排序，Field 只允许 SortableLogFields 里面的字段
type LogSort struct {
	Field string
	Desc  bool
}

// SortableLogFields 对外字段名到列名的映射
var SortableLogFields = map[string]string{
	"id":               "id",
	"recipientId":      "recipient_id",
	"recipientName":    "recipient_name",
	"recipientPhone":   "recipient_phone",
	"recipientType":    "recipient_type",
	"notificationType": "notification_type",
	"channel":          "channel",
	"status":           "status",
	"messagePreview":   "message_preview",
	"templateId":       "template_id",
	"templateName":     "template_name",
	"cost":             "cost",
	"providerSid":      "provider_sid",
	"errorMessage":     "error_message",
	"sentAt":           "sent_at",
	"deliveredAt":      "delivered_at",
	"readAt":           "read_at",
	"createdAt":        "ctime",
	"updatedAt":        "utime",
}

// DefaultLogSort 默认按发送时间倒序
var DefaultLogSort = LogSort{Field: "sentAt", Desc: true}

type Page struct {
	Page     int
	PageSize int
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 200
)

// Normalize 修正非法的分页参数
func (p Page) Normalize() Page {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

func (p Page) Offset() int {
	return (p.Page - 1) * p.PageSize
}

type LogPage struct {
	Logs  []NotificationLog `json:"logs"`
	Total int64             `json:"total"`
}

// DailyCount 某一天的发送量
type DailyCount struct {
	Date  string `json:"date"`
	Total int64  `json:"total"`
	Sent  int64  `json:"sent"`
	Fail  int64  `json:"failed"`
}

// LogStats 一段时间内的统计
type LogStats struct {
	Total         int64                      `json:"total"`
	ByStatus      map[LogStatus]int64        `json:"byStatus"`
	ByType        map[NotificationType]int64 `json:"byType"`
	SuccessRate   float64                    `json:"successRate"`
	TotalCost     float64                    `json:"totalCost"`
	CostByChannel map[Channel]float64        `json:"costByChannel"`
	Daily         []DailyCount               `json:"daily"`
}

// LogGroup 按 (状态, 类型, 渠道) 聚合的数量和费用
type LogGroup struct {
	Status           LogStatus
	NotificationType NotificationType
	Channel          Channel
	Count            int64
	Cost             float64
}

// DayStatusCount 某一天某个状态的数量
type DayStatusCount struct {
	Date   string
	Status LogStatus
	Count  int64
}

// NewLogStats 汇总聚合结果，days 按日期升序输出
func NewLogStats(groups []LogGroup, days []DayStatusCount) LogStats {
	stats := LogStats{
		ByStatus:      make(map[LogStatus]int64, 5),
		ByType:        make(map[NotificationType]int64, 8),
		CostByChannel: make(map[Channel]float64, 2),
	}
	for _, g := range groups {
		stats.Total += g.Count
		stats.ByStatus[g.Status] += g.Count
		stats.ByType[g.NotificationType] += g.Count
		stats.TotalCost += g.Cost
		stats.CostByChannel[g.Channel] += g.Cost
	}
	stats.SuccessRate = SuccessRate(stats.ByStatus, stats.Total)

	daily := make(map[string]*DailyCount)
	dates := make([]string, 0, len(days))
	for _, d := range days {
		dc, ok := daily[d.Date]
		if !ok {
			dc = &DailyCount{Date: d.Date}
			daily[d.Date] = dc
			dates = append(dates, d.Date)
		}
		dc.Total += d.Count
		switch d.Status {
		case LogStatusSent, LogStatusDelivered, LogStatusRead:
			dc.Sent += d.Count
		case LogStatusFailed:
			dc.Fail += d.Count
		}
	}
	slices.Sort(dates)
	stats.Daily = make([]DailyCount, 0, len(dates))
	for _, d := range dates {
		stats.Daily = append(stats.Daily, *daily[d])
	}
	return stats
}

// DayBuckets 把 [start, end) 按 loc 的自然日切分。
// Bounds 是区间内部的零点，下标 i 的一天是 [Bounds[i-1], Bounds[i])
type DayBuckets struct {
	Dates  []string
	Bounds []int64
}

func NewDayBuckets(start, end int64, loc *time.Location) DayBuckets {
	if loc == nil {
		loc = time.UTC
	}
	var b DayBuckets
	if end <= start {
		return b
	}
	s := time.UnixMilli(start).In(loc)
	day := time.Date(s.Year(), s.Month(), s.Day(), 0, 0, 0, 0, loc)
	b.Dates = append(b.Dates, day.Format(time.DateOnly))
	for {
		day = day.AddDate(0, 0, 1)
		if day.UnixMilli() >= end {
			return b
		}
		b.Bounds = append(b.Bounds, day.UnixMilli())
		b.Dates = append(b.Dates, day.Format(time.DateOnly))
	}
}

// Date 下标越界的时候返回 false
func (b DayBuckets) Date(bucket int) (string, bool) {
	if bucket < 0 || bucket >= len(b.Dates) {
		return "", false
	}
	return b.Dates[bucket], true
}

// SuccessRate (sent+delivered+read)/total*100，保留两位小数，没有记录的时候是 0
func SuccessRate(byStatus map[LogStatus]int64, total int64) float64 {
	if total == 0 {
		return 0
	}
	ok := byStatus[LogStatusSent] + byStatus[LogStatusDelivered] + byStatus[LogStatusRead]
	return math.Round(float64(ok)/float64(total)*100*100) / 100
}
