package domain

// SuppressReason 没有发送的原因，这些情况都不写通知记录
type SuppressReason string

const (
	SuppressMasterToggleOff     SuppressReason = "master_toggle_off"
	SuppressNoChannelConfigured SuppressReason = "no_channel_configured"
	SuppressOptedOut            SuppressReason = "opted_out"
	SuppressQuietHours          SuppressReason = "quiet_hours"
	SuppressChannelDisabled     SuppressReason = "channel_disabled"
)

// SendOutcome 发送结果的类型
type SendOutcome string

const (
	OutcomeSent       SendOutcome = "sent"
	OutcomeFailed     SendOutcome = "failed"
	OutcomeSuppressed SendOutcome = "suppressed"
)

// SendResult 网关一次发送的结果。
// Sent 和 Failed 都带有写入的通知记录，Suppressed 只有原因
type SendResult struct {
	Outcome SendOutcome     `json:"outcome"`
	Log     NotificationLog `json:"log,omitempty"`
	Reason  SuppressReason  `json:"reason,omitempty"`
	Err     error           `json:"-"`
}

func Sent(log NotificationLog) SendResult {
	return SendResult{Outcome: OutcomeSent, Log: log}
}

func Failed(log NotificationLog, err error) SendResult {
	return SendResult{Outcome: OutcomeFailed, Log: log, Err: err}
}

func Suppressed(reason SuppressReason) SendResult {
	return SendResult{Outcome: OutcomeSuppressed, Reason: reason}
}

func (r SendResult) IsSent() bool {
	return r.Outcome == OutcomeSent
}

// SendRequest 网关的发送请求
type SendRequest struct {
	SchoolID         int64
	RecipientID      int64
	RecipientName    string
	RecipientType    RecipientType
	Phone            string
	Message          string
	Channel          Channel
	NotificationType NotificationType
	// Template 可选，用来在记录上冗余模板信息
	Template *NotificationTemplate
}

// TransportResult 供应商一次调用的结果
type TransportResult struct {
	Success           bool
	Cost              float64
	ProviderMessageID string
	ErrorMessage      string
}
