//go:build unit

package preference

import (
	"context"
	"errors"
	"testing"
	"time"

	"gitee.com/flycash/school-notification/internal/domain"
	"gitee.com/flycash/school-notification/internal/errs"
	repomocks "gitee.com/flycash/school-notification/internal/repository/mocks"
	"github.com/ecodeclub/ekit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_Check(t *testing.T) {
	t.Parallel()

	svc := NewService(nil, nil, time.UTC)
	quiet := &domain.QuietHours{Start: "22:00", End: "08:00"}
	at := func(hh, mm int) time.Time {
		return time.Date(2025, 3, 10, hh, mm, 0, 0, time.UTC)
	}

	testCases := []struct {
		name    string
		prefs   domain.StudentNotificationPrefs
		channel domain.Channel
		now     time.Time
		want    domain.Decision
	}{
		{
			name:    "默认偏好允许发送",
			prefs:   domain.DefaultPrefs(1, 2),
			channel: domain.ChannelSMS,
			now:     at(12, 0),
			want:    domain.Allow(),
		},
		{
			name: "退订优先",
			prefs: domain.StudentNotificationPrefs{
				SMSEnabled: true, OptedOut: true, QuietHours: quiet,
			},
			channel: domain.ChannelSMS,
			now:     at(23, 0),
			want:    domain.Deny(domain.SuppressOptedOut),
		},
		{
			name:    "免打扰时段内",
			prefs:   domain.StudentNotificationPrefs{SMSEnabled: true, QuietHours: quiet},
			channel: domain.ChannelSMS,
			now:     at(7, 59),
			want:    domain.Deny(domain.SuppressQuietHours),
		},
		{
			name:    "免打扰结束时间不包含",
			prefs:   domain.StudentNotificationPrefs{SMSEnabled: true, QuietHours: quiet},
			channel: domain.ChannelSMS,
			now:     at(8, 0),
			want:    domain.Allow(),
		},
		{
			name:    "渠道被关闭",
			prefs:   domain.StudentNotificationPrefs{SMSEnabled: true},
			channel: domain.ChannelWhatsApp,
			now:     at(12, 0),
			want:    domain.Deny(domain.SuppressChannelDisabled),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, svc.Check(tc.prefs, tc.channel, tc.now))
		})
	}
}

func TestService_Check_Location(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+8", 8*3600)
	svc := NewService(nil, nil, loc)
	prefs := domain.StudentNotificationPrefs{
		SMSEnabled: true,
		QuietHours: &domain.QuietHours{Start: "22:00", End: "08:00"},
	}
	// UTC 15:00 是学校本地时间 23:00
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, domain.Deny(domain.SuppressQuietHours), svc.Check(prefs, domain.ChannelSMS, now))
}

func TestService_Upsert(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) *repomocks.MockStudentPrefsRepository
		patch   domain.PrefsPatch
		want    domain.StudentNotificationPrefs
		wantErr error
	}{
		{
			name: "没有记录的时候在默认偏好上合并",
			mock: func(ctrl *gomock.Controller) *repomocks.MockStudentPrefsRepository {
				repo := repomocks.NewMockStudentPrefsRepository(ctrl)
				repo.EXPECT().Get(gomock.Any(), int64(1), int64(2)).
					Return(domain.StudentNotificationPrefs{}, errs.ErrPrefsNotFound)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				return repo
			},
			patch: domain.PrefsPatch{SMSEnabled: ekit.ToPtr(false)},
			want: domain.StudentNotificationPrefs{
				StudentID: 2, SchoolID: 1, SMSEnabled: false, WhatsAppEnabled: true,
			},
		},
		{
			name: "保留没有修改的字段",
			mock: func(ctrl *gomock.Controller) *repomocks.MockStudentPrefsRepository {
				repo := repomocks.NewMockStudentPrefsRepository(ctrl)
				repo.EXPECT().Get(gomock.Any(), int64(1), int64(2)).
					Return(domain.StudentNotificationPrefs{
						StudentID: 2, SchoolID: 1, SMSEnabled: true, PhoneNumber: "+15550001111",
						QuietHours: &domain.QuietHours{Start: "22:00", End: "08:00"},
					}, nil)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				return repo
			},
			patch: domain.PrefsPatch{WhatsAppEnabled: ekit.ToPtr(true)},
			want: domain.StudentNotificationPrefs{
				StudentID: 2, SchoolID: 1, SMSEnabled: true, WhatsAppEnabled: true, PhoneNumber: "+15550001111",
				QuietHours: &domain.QuietHours{Start: "22:00", End: "08:00"},
			},
		},
		{
			name: "免打扰时间格式错误",
			mock: func(ctrl *gomock.Controller) *repomocks.MockStudentPrefsRepository {
				repo := repomocks.NewMockStudentPrefsRepository(ctrl)
				repo.EXPECT().Get(gomock.Any(), int64(1), int64(2)).
					Return(domain.StudentNotificationPrefs{}, errs.ErrPrefsNotFound)
				return repo
			},
			patch:   domain.PrefsPatch{QuietHours: &domain.QuietHours{Start: "25:00", End: "08:00"}},
			wantErr: errs.ErrInvalidParameter,
		},
		{
			name: "保存失败",
			mock: func(ctrl *gomock.Controller) *repomocks.MockStudentPrefsRepository {
				repo := repomocks.NewMockStudentPrefsRepository(ctrl)
				repo.EXPECT().Get(gomock.Any(), int64(1), int64(2)).
					Return(domain.StudentNotificationPrefs{}, errs.ErrPrefsNotFound)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("mock db error"))
				return repo
			},
			patch:   domain.PrefsPatch{OptedOut: ekit.ToPtr(true)},
			wantErr: errors.New("mock db error"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewService(tc.mock(ctrl), nil, time.UTC)
			got, err := svc.Upsert(context.Background(), 1, 2, tc.patch)
			if tc.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tc.wantErr, errs.ErrInvalidParameter) {
					assert.ErrorIs(t, err, tc.wantErr)
				} else {
					assert.EqualError(t, err, tc.wantErr.Error())
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestService_ResolveRecipients(t *testing.T) {
	t.Parallel()

	student := domain.Student{
		ID: 2, SchoolID: 1, Name: "John", Phone: "+15550000002",
		ParentName: "Mary", ParentPhone: "",
	}
	teacher := domain.Teacher{ID: 3, SchoolID: 1, Name: "Ms Lee", Phone: "+15550000003"}

	testCases := []struct {
		name      string
		flags     domain.Recipients
		prefs     domain.StudentNotificationPrefs
		teacherID int64
		mock      func(school *repomocks.MockSchoolRepository)
		want      []domain.Recipient
	}{
		{
			name:  "家长没有号码被跳过",
			flags: domain.Recipients{Student: true, Parent: true},
			prefs: domain.DefaultPrefs(1, 2),
			mock: func(school *repomocks.MockSchoolRepository) {
				school.EXPECT().GetStudent(gomock.Any(), int64(1), int64(2)).Return(student, nil)
			},
			want: []domain.Recipient{
				{ID: 2, Name: "John", Phone: "+15550000002", Type: domain.RecipientStudent},
			},
		},
		{
			name:  "偏好里的号码覆盖学生号码",
			flags: domain.Recipients{Student: true},
			prefs: domain.StudentNotificationPrefs{PhoneNumber: "+15559999999", WhatsAppNumber: "+15558888888"},
			mock: func(school *repomocks.MockSchoolRepository) {
				school.EXPECT().GetStudent(gomock.Any(), int64(1), int64(2)).Return(student, nil)
			},
			want: []domain.Recipient{
				{ID: 2, Name: "John", Phone: "+15559999999", WhatsAppPhone: "+15558888888", Type: domain.RecipientStudent},
			},
		},
		{
			name:      "只通知老师",
			flags:     domain.Recipients{Teacher: true},
			teacherID: 3,
			mock: func(school *repomocks.MockSchoolRepository) {
				school.EXPECT().GetTeacher(gomock.Any(), int64(1), int64(3)).Return(teacher, nil)
			},
			want: []domain.Recipient{
				{ID: 3, Name: "Ms Lee", Phone: "+15550000003", Type: domain.RecipientTeacher},
			},
		},
		{
			name:      "老师不存在",
			flags:     domain.Recipients{Teacher: true},
			teacherID: 4,
			mock: func(school *repomocks.MockSchoolRepository) {
				school.EXPECT().GetTeacher(gomock.Any(), int64(1), int64(4)).Return(domain.Teacher{}, errs.ErrTeacherNotFound)
			},
			want: []domain.Recipient{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			school := repomocks.NewMockSchoolRepository(ctrl)
			tc.mock(school)
			svc := NewService(nil, school, time.UTC)
			got, err := svc.ResolveRecipients(context.Background(), 1, 2, tc.teacherID, tc.flags, tc.prefs)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
