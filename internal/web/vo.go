package web

import (
	"gitee.com/flycash/school-notification/internal/domain"
	"gitee.com/flycash/school-notification/internal/service/scheduler"
	"github.com/ecodeclub/ekit/slice"
)

type Template struct {
	ID        int64                   `json:"id"`
	Type      domain.NotificationType `json:"type"`
	Language  string                  `json:"language"`
	Name      string                  `json:"name"`
	Body      string                  `json:"body"`
	CreatedAt int64                   `json:"createdAt"`
	UpdatedAt int64                   `json:"updatedAt"`
}

func newTemplate(t domain.NotificationTemplate) Template {
	return Template{
		ID:        t.ID,
		Type:      t.Type,
		Language:  t.Language,
		Name:      t.Name,
		Body:      t.Body,
		CreatedAt: t.Ctime,
		UpdatedAt: t.Utime,
	}
}

func (t Template) toDomain(schoolID int64) domain.NotificationTemplate {
	return domain.NotificationTemplate{
		ID:       t.ID,
		SchoolID: schoolID,
		Type:     t.Type,
		Language: t.Language,
		Name:     t.Name,
		Body:     t.Body,
	}
}

type ListTemplatesResp struct {
	Templates []Template `json:"templates"`
}

type PreviewTemplateReq struct {
	Body      string            `json:"body"`
	Variables map[string]string `json:"variables"`
}

type PreviewTemplateResp struct {
	Message string `json:"message"`
}

type SeedResp struct {
	Templates int `json:"templates"`
}

type Rule struct {
	Type       domain.NotificationType `json:"type"`
	Enabled    bool                    `json:"enabled"`
	Recipients domain.Recipients       `json:"recipients"`
	Reminders  []domain.Reminder       `json:"reminders"`
	UpdatedAt  int64                   `json:"updatedAt"`
}

func newRule(r domain.NotificationRule) Rule {
	reminders := r.Reminders
	if reminders == nil {
		reminders = []domain.Reminder{}
	}
	return Rule{
		Type:       r.Type,
		Enabled:    r.Enabled,
		Recipients: r.Recipients,
		Reminders:  reminders,
		UpdatedAt:  r.Utime,
	}
}

func (r Rule) toDomain(schoolID int64) domain.NotificationRule {
	return domain.NotificationRule{
		SchoolID:   schoolID,
		Type:       r.Type,
		Enabled:    r.Enabled,
		Recipients: r.Recipients,
		Reminders:  r.Reminders,
	}
}

type ListRulesResp struct {
	Rules []Rule `json:"rules"`
}

type SendResult struct {
	Outcome domain.SendOutcome      `json:"outcome"`
	Reason  domain.SuppressReason   `json:"reason,omitempty"`
	Log     *domain.NotificationLog `json:"log,omitempty"`
	Error   string                  `json:"error,omitempty"`
}

func newSendResult(r domain.SendResult) SendResult {
	res := SendResult{Outcome: r.Outcome, Reason: r.Reason}
	if r.Outcome != domain.OutcomeSuppressed {
		l := r.Log
		res.Log = &l
	}
	if r.Err != nil {
		res.Error = r.Err.Error()
	}
	return res
}

type SendNotificationReq struct {
	StudentID int64                   `json:"studentId"`
	Type      domain.NotificationType `json:"type"`
	Variables map[string]string       `json:"variables"`
}

type SendNotificationResp struct {
	Results []SendResult `json:"results"`
}

func newSendNotificationResp(results []domain.SendResult) SendNotificationResp {
	return SendNotificationResp{
		Results: slice.Map(results, func(_ int, src domain.SendResult) SendResult {
			return newSendResult(src)
		}),
	}
}

type RunReport struct {
	scheduler.RunReport
	Error string `json:"error,omitempty"`
}

func newRunReport(r scheduler.RunReport) RunReport {
	res := RunReport{RunReport: r}
	if r.Err != nil {
		res.Error = r.Err.Error()
	}
	return res
}

type ListLogsReq struct {
	Status     domain.LogStatus        `form:"status"`
	Type       domain.NotificationType `form:"type"`
	Channel    domain.Channel          `form:"channel"`
	TemplateID int64                   `form:"templateId"`
	Start      int64                   `form:"start"`
	End        int64                   `form:"end"`
	Search     string                  `form:"search"`
	Sort       string                  `form:"sort"`
	Order      string                  `form:"order"`
	Page       int                     `form:"page"`
	PageSize   int                     `form:"pageSize"`
}

func (r ListLogsReq) filter(schoolID int64) domain.LogFilter {
	return domain.LogFilter{
		SchoolID:         schoolID,
		Status:           r.Status,
		NotificationType: r.Type,
		Channel:          r.Channel,
		TemplateID:       r.TemplateID,
		StartTime:        r.Start,
		EndTime:          r.End,
		Search:           r.Search,
	}
}

func (r ListLogsReq) sort() domain.LogSort {
	return domain.LogSort{Field: r.Sort, Desc: r.Order != "asc"}
}

type StatsReq struct {
	Start int64 `form:"start"`
	End   int64 `form:"end"`
}

type PruneReq struct {
	Days int `json:"days"`
}

type PruneResp struct {
	Deleted int64 `json:"deleted"`
}

type UpdateStatusReq struct {
	Status       domain.LogStatus `json:"status"`
	ErrorMessage string           `json:"errorMessage"`
}
