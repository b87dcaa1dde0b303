//go:build unit

package domain

import (
	"testing"
	"time"

	"github.com/ecodeclub/ekit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuietHours_Contains(t *testing.T) {
	t.Parallel()
	at := func(hour, minute int) time.Time {
		return time.Date(2025, 3, 10, hour, minute, 0, 0, time.UTC)
	}
	testCases := []struct {
		name string
		qh   QuietHours
		now  time.Time
		want bool
	}{
		{name: "跨午夜-晚上", qh: QuietHours{Start: "22:00", End: "08:00"}, now: at(23, 0), want: true},
		{name: "跨午夜-白天", qh: QuietHours{Start: "22:00", End: "08:00"}, now: at(9, 0), want: false},
		{name: "跨午夜-结束前一分钟", qh: QuietHours{Start: "22:00", End: "08:00"}, now: at(7, 59), want: true},
		{name: "跨午夜-结束时间不包含", qh: QuietHours{Start: "22:00", End: "08:00"}, now: at(8, 0), want: false},
		{name: "跨午夜-开始时间包含", qh: QuietHours{Start: "22:00", End: "08:00"}, now: at(22, 0), want: true},
		{name: "同一天-区间内", qh: QuietHours{Start: "12:00", End: "14:00"}, now: at(13, 0), want: true},
		{name: "同一天-区间外", qh: QuietHours{Start: "12:00", End: "14:00"}, now: at(14, 0), want: false},
		{name: "格式不合法", qh: QuietHours{Start: "25:00", End: "08:00"}, now: at(23, 0), want: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.qh.Contains(tc.now))
		})
	}
}

func TestPrefsPatch_Apply(t *testing.T) {
	t.Parallel()
	origin := StudentNotificationPrefs{
		StudentID:       1,
		SchoolID:        2,
		SMSEnabled:      true,
		WhatsAppEnabled: true,
		PhoneNumber:     "+15550001",
		QuietHours:      &QuietHours{Start: "22:00", End: "08:00"},
	}

	res, err := PrefsPatch{WhatsAppEnabled: ekit.ToPtr(false)}.Apply(origin)
	require.NoError(t, err)
	assert.False(t, res.WhatsAppEnabled)
	assert.True(t, res.SMSEnabled)
	assert.Equal(t, "+15550001", res.PhoneNumber)
	assert.Equal(t, origin.QuietHours, res.QuietHours)

	res, err = PrefsPatch{ClearQuietHours: true, OptedOut: ekit.ToPtr(true)}.Apply(origin)
	require.NoError(t, err)
	assert.Nil(t, res.QuietHours)
	assert.True(t, res.OptedOut)

	_, err = PrefsPatch{QuietHours: &QuietHours{Start: "abc", End: "08:00"}}.Apply(origin)
	assert.Error(t, err)
}

func TestStudentNotificationPrefs_PhoneFor(t *testing.T) {
	t.Parallel()
	p := StudentNotificationPrefs{PhoneNumber: "+1000", WhatsAppNumber: "+2000"}
	assert.Equal(t, "+1000", p.PhoneFor(ChannelSMS))
	assert.Equal(t, "+2000", p.PhoneFor(ChannelWhatsApp))
	p.WhatsAppNumber = ""
	assert.Equal(t, "+1000", p.PhoneFor(ChannelWhatsApp))
}
