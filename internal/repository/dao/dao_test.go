//go:build unit

package dao

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	"gitee.com/flycash/school-notification/internal/domain"
	"gitee.com/flycash/school-notification/internal/errs"
)

func newMockDB(t *testing.T) (*egorm.Component, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	db, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestReminderAttemptDAO_Claim(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		mock     func(mock sqlmock.Sqlmock)
		wantErr  error
		// otherErr 出错但不是重复领取
		otherErr bool
	}{
		{
			name: "领取成功",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `reminder_attempts`")).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		{
			name: "已经被领取",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `reminder_attempts`")).
					WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
			},
			wantErr: errs.ErrAttemptDuplicate,
		},
		{
			name: "其他数据库错误",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `reminder_attempts`")).
					WillReturnError(&mysql.MySQLError{Number: 1213, Message: "Deadlock"})
			},
			otherErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			db, mock := newMockDB(t)
			tc.mock(mock)
			d := NewReminderAttemptDAO(db)
			err := d.Claim(context.Background(), ReminderAttempt{
				SchoolID:  1,
				Kind:      "session",
				EntityID:  10,
				OffsetKey: "24_hours_sms",
			})
			switch {
			case tc.wantErr != nil:
				assert.ErrorIs(t, err, tc.wantErr)
			case tc.otherErr:
				assert.Error(t, err)
				assert.NotErrorIs(t, err, errs.ErrAttemptDuplicate)
			default:
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestNotificationLogDAO_DeleteBefore(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	d := NewNotificationLogDAO(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT `id` FROM `notification_logs`")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2).AddRow(3))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `notification_logs`")).
		WillReturnResult(sqlmock.NewResult(0, 3))
	cnt, err := d.DeleteBefore(context.Background(), 1, 1000, 500)
	require.NoError(t, err)
	assert.Equal(t, int64(3), cnt)

	// 没有可以删除的记录的时候不发 DELETE
	mock.ExpectQuery(regexp.QuoteMeta("SELECT `id` FROM `notification_logs`")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	cnt, err = d.DeleteBefore(context.Background(), 1, 1000, 500)
	require.NoError(t, err)
	assert.Equal(t, int64(0), cnt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationLogDAO_UpdateStatus(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	d := NewNotificationLogDAO(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE `notification_logs` SET")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, d.UpdateStatus(context.Background(), 1, 100, "delivered", ""))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE `notification_logs` SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	err := d.UpdateStatus(context.Background(), 1, 101, "read", "")
	assert.ErrorIs(t, err, errs.ErrLogNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationLogDAO_SearchEscapesWildcards(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	d := NewNotificationLogDAO(db)

	// % _ \ 都要转义，否则 "50%_x" 会匹配到 "50 abc x"
	like := `%50\%\_x\\%`
	mock.ExpectQuery(regexp.QuoteMeta("FROM `notification_logs`") + ".*" +
		regexp.QuoteMeta(`recipient_name LIKE ? ESCAPE '\\' OR recipient_phone LIKE ? ESCAPE '\\'`)).
		WithArgs(int64(1), like, like).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	cnt, err := d.Count(context.Background(), domain.LogFilter{SchoolID: 1, Search: `50%_x\`})
	require.NoError(t, err)
	assert.Equal(t, int64(2), cnt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationLogDAO_StatGroups(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	d := NewNotificationLogDAO(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT status, notification_type, channel, COUNT(*) AS cnt, COALESCE(SUM(cost), 0) AS cost FROM `notification_logs`") +
		".*" + regexp.QuoteMeta("GROUP BY status, notification_type, channel")).
		WithArgs(int64(1), int64(100), int64(200)).
		WillReturnRows(sqlmock.NewRows([]string{"status", "notification_type", "channel", "cnt", "cost"}).
			AddRow("sent", "lesson_reminder", "sms", 3, 0.0237).
			AddRow("failed", "custom", "whatsapp", 1, 0))
	rows, err := d.StatGroups(context.Background(), 1, 100, 200)
	require.NoError(t, err)
	assert.Equal(t, []LogGroupRow{
		{Status: "sent", NotificationType: "lesson_reminder", Channel: "sms", Cnt: 3, Cost: 0.0237},
		{Status: "failed", NotificationType: "custom", Channel: "whatsapp", Cnt: 1},
	}, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationLogDAO_DailyStatusCounts(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name   string
		bounds []int64
		query  string
		args   []driver.Value
	}{
		{
			name:   "多天",
			bounds: []int64{1000, 2000},
			query:  "SELECT INTERVAL(sent_at, ?, ?) AS bucket, status, COUNT(*) AS cnt FROM `notification_logs`",
			args:   []driver.Value{int64(1000), int64(2000), int64(1), int64(500), int64(2500)},
		},
		{
			name:  "只有一天",
			query: "SELECT 0 AS bucket, status, COUNT(*) AS cnt FROM `notification_logs`",
			args:  []driver.Value{int64(1), int64(500), int64(2500)},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			db, mock := newMockDB(t)
			d := NewNotificationLogDAO(db)

			mock.ExpectQuery(regexp.QuoteMeta(tc.query) + ".*" + regexp.QuoteMeta("GROUP BY bucket, status")).
				WithArgs(tc.args...).
				WillReturnRows(sqlmock.NewRows([]string{"bucket", "status", "cnt"}).
					AddRow(0, "sent", 2).
					AddRow(len(tc.bounds), "failed", 1))
			rows, err := d.DailyStatusCounts(context.Background(), 1, 500, 2500, tc.bounds)
			require.NoError(t, err)
			assert.Equal(t, []LogDayRow{
				{Bucket: 0, Status: "sent", Cnt: 2},
				{Bucket: len(tc.bounds), Status: "failed", Cnt: 1},
			}, rows)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestNotificationLogDAO_SentAtRange(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	d := NewNotificationLogDAO(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(MIN(sent_at), 0) AS min_sent_at, COALESCE(MAX(sent_at), 0) AS max_sent_at FROM `notification_logs`")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"min_sent_at", "max_sent_at"}).AddRow(1000, 5000))
	rg, err := d.SentAtRange(context.Background(), 1, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, SentAtRange{MinSentAt: 1000, MaxSentAt: 5000}, rg)
	assert.NoError(t, mock.ExpectationsWereMet())
}
