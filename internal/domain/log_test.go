//go:build unit

package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessRate(t *testing.T) {
	t.Parallel()
	byStatus := map[LogStatus]int64{
		LogStatusSent:    3,
		LogStatusFailed:  1,
		LogStatusPending: 1,
	}
	assert.Equal(t, 60.00, SuccessRate(byStatus, 5))
	assert.Equal(t, 0.0, SuccessRate(map[LogStatus]int64{}, 0))
	// 1/3 四舍五入到两位小数
	assert.Equal(t, 33.33, SuccessRate(map[LogStatus]int64{LogStatusRead: 1, LogStatusFailed: 2}, 3))
}

func TestNewLogStats(t *testing.T) {
	t.Parallel()
	groups := []LogGroup{
		{Status: LogStatusSent, Channel: ChannelSMS, NotificationType: NotificationTypeLessonReminder, Count: 1, Cost: 0.0079},
		{Status: LogStatusDelivered, Channel: ChannelWhatsApp, NotificationType: NotificationTypeLessonReminder, Count: 1, Cost: 0.005},
		{Status: LogStatusFailed, Channel: ChannelSMS, NotificationType: NotificationTypePaymentReminder, Count: 1},
		{Status: LogStatusPending, Channel: ChannelSMS, NotificationType: NotificationTypeCustom, Count: 1},
	}
	days := []DayStatusCount{
		{Date: "2025-03-11", Status: LogStatusSent, Count: 1},
		{Date: "2025-03-10", Status: LogStatusDelivered, Count: 1},
		{Date: "2025-03-10", Status: LogStatusFailed, Count: 1},
		{Date: "2025-03-11", Status: LogStatusPending, Count: 1},
	}
	stats := NewLogStats(groups, days)
	assert.Equal(t, int64(4), stats.Total)
	assert.Equal(t, int64(1), stats.ByStatus[LogStatusFailed])
	assert.Equal(t, int64(2), stats.ByType[NotificationTypeLessonReminder])
	assert.Equal(t, 50.0, stats.SuccessRate)
	assert.InDelta(t, 0.0129, stats.TotalCost, 1e-9)
	assert.InDelta(t, 0.0079, stats.CostByChannel[ChannelSMS], 1e-9)
	assert.Equal(t, []DailyCount{
		{Date: "2025-03-10", Total: 2, Sent: 1, Fail: 1},
		{Date: "2025-03-11", Total: 2, Sent: 1},
	}, stats.Daily)

	empty := NewLogStats(nil, nil)
	assert.Equal(t, int64(0), empty.Total)
	assert.Equal(t, 0.0, empty.SuccessRate)
	assert.Empty(t, empty.Daily)
}

func TestNewDayBuckets(t *testing.T) {
	t.Parallel()
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	testCases := []struct {
		name  string
		start time.Time
		end   time.Time
		loc   *time.Location
		want  DayBuckets
	}{
		{
			name:  "同一天",
			start: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
			end:   time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC),
			loc:   time.UTC,
			want:  DayBuckets{Dates: []string{"2025-03-10"}},
		},
		{
			name:  "结束时间正好是零点",
			start: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
			end:   time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
			loc:   time.UTC,
			want: DayBuckets{
				Dates:  []string{"2025-03-10", "2025-03-11"},
				Bounds: []int64{time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC).UnixMilli()},
			},
		},
		{
			// 3 月 9 日夏令时开始，这一天只有 23 小时
			name:  "跨夏令时",
			start: time.Date(2025, 3, 8, 12, 0, 0, 0, ny),
			end:   time.Date(2025, 3, 10, 12, 0, 0, 0, ny),
			loc:   ny,
			want: DayBuckets{
				Dates: []string{"2025-03-08", "2025-03-09", "2025-03-10"},
				Bounds: []int64{
					time.Date(2025, 3, 9, 0, 0, 0, 0, ny).UnixMilli(),
					time.Date(2025, 3, 10, 0, 0, 0, 0, ny).UnixMilli(),
				},
			},
		},
		{
			name:  "半小时时区",
			start: time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC),
			end:   time.Date(2025, 3, 10, 19, 0, 0, 0, time.UTC),
			loc:   kolkata,
			want: DayBuckets{
				Dates:  []string{"2025-03-10", "2025-03-11"},
				Bounds: []int64{time.Date(2025, 3, 11, 0, 0, 0, 0, kolkata).UnixMilli()},
			},
		},
		{
			name:  "空区间",
			start: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			loc:   time.UTC,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := NewDayBuckets(tc.start.UnixMilli(), tc.end.UnixMilli(), tc.loc)
			assert.Equal(t, tc.want, got)
		})
	}

	b := NewDayBuckets(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC).UnixMilli(),
		time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC).UnixMilli(), time.UTC)
	d, ok := b.Date(1)
	assert.True(t, ok)
	assert.Equal(t, "2025-03-11", d)
	_, ok = b.Date(2)
	assert.False(t, ok)
}

func TestPreview(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "hello", Preview("hello"))
	long := strings.Repeat("课", 150)
	assert.Equal(t, strings.Repeat("课", 100), Preview(long))
}

func TestLogFilter_Match(t *testing.T) {
	t.Parallel()
	l := NotificationLog{
		SchoolID:         1,
		RecipientName:    "Alice Smith",
		RecipientPhone:   "+15551234",
		NotificationType: NotificationTypeLessonReminder,
		Channel:          ChannelSMS,
		Status:           LogStatusSent,
		SentAt:           1000,
	}
	assert.True(t, LogFilter{}.Match(l))
	assert.True(t, LogFilter{SchoolID: 1, Search: "alice"}.Match(l))
	assert.True(t, LogFilter{Search: "1234"}.Match(l))
	assert.False(t, LogFilter{Search: "bob"}.Match(l))
	// % 和 _ 按字面匹配
	assert.False(t, LogFilter{Search: "Al%"}.Match(l))
	assert.False(t, LogFilter{Search: "A_ice"}.Match(l))
	assert.True(t, LogFilter{Search: "50%"}.Match(NotificationLog{RecipientName: "Discount 50% group"}))
	assert.False(t, LogFilter{Status: LogStatusFailed}.Match(l))
	assert.False(t, LogFilter{Channel: ChannelWhatsApp}.Match(l))
	assert.True(t, LogFilter{StartTime: 1000, EndTime: 1001}.Match(l))
	assert.False(t, LogFilter{StartTime: 0, EndTime: 1000}.Match(l))
}

func TestPage_Normalize(t *testing.T) {
	t.Parallel()
	assert.Equal(t, Page{Page: 1, PageSize: DefaultPageSize}, Page{}.Normalize())
	assert.Equal(t, Page{Page: 3, PageSize: MaxPageSize}, Page{Page: 3, PageSize: 1000}.Normalize())
	assert.Equal(t, 40, Page{Page: 3, PageSize: 20}.Offset())
}
