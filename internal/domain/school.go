package domain

import (
	"fmt"
	"time"
)

const (
	SessionStatusScheduled = "scheduled"
	SessionStatusCancelled = "cancelled"
	SessionStatusCompleted = "completed"

	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
)

// Session 一节课，Date 格式 YYYY-MM-DD，Time 格式 HH:MM
type Session struct {
	ID          int64
	SchoolID    int64
	StudentID   int64
	TeacherID   int64
	GroupID     int64
	Subject     string
	Date        string
	Time        string
	Status      string
	MeetingLink string
}

// StartAt 上课时间，按学校所在时区解释
func (s Session) StartAt(loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02 15:04", s.Date+" "+s.Time, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("课程 %d 的时间不合法: %w", s.ID, err)
	}
	return t, nil
}

// Payment 待支付的费用，DueDate 格式 YYYY-MM-DD
type Payment struct {
	ID          int64
	SchoolID    int64
	StudentID   int64
	Amount      float64
	Currency    string
	DueDate     string
	Status      string
	Description string
}

// DueAt 到期日当天零点
func (p Payment) DueAt(loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(time.DateOnly, p.DueDate, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("账单 %d 的到期日不合法: %w", p.ID, err)
	}
	return t, nil
}

// FormatAmount 金额和币种
func (p Payment) FormatAmount() string {
	if p.Currency == "" {
		return fmt.Sprintf("%.2f", p.Amount)
	}
	return fmt.Sprintf("%.2f %s", p.Amount, p.Currency)
}

type Student struct {
	ID          int64
	SchoolID    int64
	Name        string
	Phone       string
	ParentName  string
	ParentPhone string
	Language    string
}

type Teacher struct {
	ID       int64
	SchoolID int64
	Name     string
	Phone    string
}

// Recipient 解析之后的一个接收人。WhatsAppPhone 为空的时候 WhatsApp 也用 Phone
type Recipient struct {
	ID            int64
	Name          string
	Phone         string
	WhatsAppPhone string
	Type          RecipientType
}

// PhoneFor 某个渠道实际使用的号码
func (r Recipient) PhoneFor(c Channel) string {
	if c == ChannelWhatsApp && r.WhatsAppPhone != "" {
		return r.WhatsAppPhone
	}
	return r.Phone
}

// Reachable 至少有一个号码
func (r Recipient) Reachable() bool {
	return r.Phone != "" || r.WhatsAppPhone != ""
}
