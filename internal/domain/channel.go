package domain

// Channel 通知渠道
type Channel string

const (
	ChannelSMS      Channel = "sms"      // 短信
	ChannelWhatsApp Channel = "whatsapp" // WhatsApp
)

func (c Channel) String() string {
	return string(c)
}

func (c Channel) IsValid() bool {
	return c == ChannelSMS || c == ChannelWhatsApp
}

// Other 返回另外一个渠道，用于渠道降级
func (c Channel) Other() Channel {
	if c == ChannelSMS {
		return ChannelWhatsApp
	}
	return ChannelSMS
}

// ChannelSelection 规则里配置的渠道，可以同时选择两个渠道
type ChannelSelection string

const (
	SelectSMS      ChannelSelection = "sms"
	SelectWhatsApp ChannelSelection = "whatsapp"
	SelectBoth     ChannelSelection = "both"
)

func (s ChannelSelection) IsValid() bool {
	return s == SelectSMS || s == SelectWhatsApp || s == SelectBoth
}

// Channels 展开成具体的渠道，顺序固定：先短信后 WhatsApp
func (s ChannelSelection) Channels() []Channel {
	switch s {
	case SelectSMS:
		return []Channel{ChannelSMS}
	case SelectWhatsApp:
		return []Channel{ChannelWhatsApp}
	case SelectBoth:
		return []Channel{ChannelSMS, ChannelWhatsApp}
	default:
		return nil
	}
}
