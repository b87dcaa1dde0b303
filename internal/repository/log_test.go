//go:build unit

package repository

import (
	"context"
	"testing"

	"gitee.com/flycash/school-notification/internal/domain"
	"gitee.com/flycash/school-notification/internal/errs"
	"gitee.com/flycash/school-notification/internal/repository/dao"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLogDAO 只实现用到的方法，其余方法调用会 panic
type stubLogDAO struct {
	dao.NotificationLogDAO
	sortColumn string
	desc       bool
	dayRows    []dao.LogDayRow
}

func (s *stubLogDAO) List(_ context.Context, _ domain.LogFilter, sortColumn string, desc bool, _, _ int) ([]dao.NotificationLog, error) {
	s.sortColumn = sortColumn
	s.desc = desc
	return []dao.NotificationLog{{ID: 1, RecipientPhone: "+15551234"}}, nil
}

func (s *stubLogDAO) Count(context.Context, domain.LogFilter) (int64, error) {
	return 1, nil
}

func (s *stubLogDAO) DailyStatusCounts(context.Context, int64, int64, int64, []int64) ([]dao.LogDayRow, error) {
	return s.dayRows, nil
}

func TestNotificationLogRepository_ListSort(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		field   string
		column  string
		wantErr error
	}{
		{field: "id", column: "id"},
		{field: "recipientPhone", column: "recipient_phone"},
		{field: "recipientType", column: "recipient_type"},
		{field: "templateName", column: "template_name"},
		{field: "messagePreview", column: "message_preview"},
		{field: "createdAt", column: "ctime"},
		{field: "message", wantErr: errs.ErrInvalidParameter},
		{field: "school_id", wantErr: errs.ErrInvalidParameter},
	}
	for _, tc := range testCases {
		t.Run(tc.field, func(t *testing.T) {
			t.Parallel()
			d := &stubLogDAO{}
			repo := NewNotificationLogRepository(d)
			res, err := repo.List(context.Background(), domain.LogFilter{SchoolID: 1},
				domain.LogSort{Field: tc.field}, domain.Page{})
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.column, d.sortColumn)
			assert.False(t, d.desc)
			assert.Equal(t, int64(1), res.Total)
			assert.Equal(t, "+15551234", res.Logs[0].RecipientPhone)
		})
	}
}

func TestNotificationLogRepository_DailyStatusCounts(t *testing.T) {
	t.Parallel()
	buckets := domain.DayBuckets{
		Dates:  []string{"2025-03-10", "2025-03-11"},
		Bounds: []int64{1741651200000},
	}

	d := &stubLogDAO{dayRows: []dao.LogDayRow{
		{Bucket: 0, Status: "sent", Cnt: 2},
		{Bucket: 1, Status: "failed", Cnt: 1},
	}}
	res, err := NewNotificationLogRepository(d).DailyStatusCounts(context.Background(), 1, 0, 0, buckets)
	require.NoError(t, err)
	assert.Equal(t, []domain.DayStatusCount{
		{Date: "2025-03-10", Status: domain.LogStatusSent, Count: 2},
		{Date: "2025-03-11", Status: domain.LogStatusFailed, Count: 1},
	}, res)

	d = &stubLogDAO{dayRows: []dao.LogDayRow{{Bucket: 2, Status: "sent", Cnt: 1}}}
	_, err = NewNotificationLogRepository(d).DailyStatusCounts(context.Background(), 1, 0, 0, buckets)
	assert.Error(t, err)
}
