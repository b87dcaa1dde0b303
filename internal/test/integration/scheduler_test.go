//go:build e2e

package integration

import (
	"bytes"
	"net/http"
	"strings"
	"testing"
	"time"

	"gitee.com/flycash/school-notification/internal/domain"
	"gitee.com/flycash/school-notification/internal/pkg/jwt"
	"gitee.com/flycash/school-notification/internal/repository/dao"
	"gitee.com/flycash/school-notification/internal/service/provider/twilio"
	twiliomocks "gitee.com/flycash/school-notification/internal/service/provider/twilio/mocks"
	"gitee.com/flycash/school-notification/internal/test"
	schoolioc "gitee.com/flycash/school-notification/internal/test/integration/ioc/school"
	"gitee.com/flycash/school-notification/internal/web"
	"gitee.com/flycash/school-notification/internal/web/middleware"
	"github.com/ecodeclub/ekit"
	jwtv4 "github.com/golang-jwt/jwt/v4"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/mock/gomock"
)

const schoolID = int64(1)

var tables = []string{
	"notification_templates", "notification_rules", "notification_logs",
	"student_notification_prefs", "twilio_configs", "reminder_attempts",
	"sessions", "payments", "students", "teachers",
}

func TestSchedulerE2ESuite(t *testing.T) {
	suite.Run(t, new(SchedulerE2ESuite))
}

type SchedulerE2ESuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	client *twiliomocks.MockClient
	svc    *schoolioc.Service
}

func (s *SchedulerE2ESuite) SetupSuite() {
	now := func() time.Time { return time.Date(2025, 3, 10, 16, 0, 0, 0, time.UTC) }
	s.svc = schoolioc.Init(func(_, _ string) twilio.Client {
		return s.client
	}, time.UTC, now)
}

func (s *SchedulerE2ESuite) SetupTest() {
	t := s.T()
	s.ctrl = gomock.NewController(t)
	s.client = twiliomocks.NewMockClient(s.ctrl)

	ctx := t.Context()
	require.NoError(t, s.svc.Configs.Save(ctx, domain.TwilioConfig{
		SchoolID:       schoolID,
		AccountSID:     "AC1",
		AuthToken:      "token",
		PhoneNumberSMS: "+10000000000",
		IsActive:       true,
	}))
	_, err := s.svc.Templates.SeedDefaults(ctx, schoolID)
	require.NoError(t, err)
	require.NoError(t, s.svc.Rules.SeedDefaults(ctx, schoolID))

	student := dao.Student{
		SchoolID:    schoolID,
		Name:        "Ann",
		Phone:       "+15550001",
		ParentName:  "Bob",
		ParentPhone: "+15550002",
		Language:    "en",
	}
	require.NoError(t, s.svc.DB.WithContext(ctx).Create(&student).Error)
	require.NoError(t, s.svc.DB.WithContext(ctx).Create(&dao.Session{
		SchoolID:  schoolID,
		StudentID: student.ID,
		Subject:   "Piano",
		Date:      "2025-03-11",
		Time:      "15:00",
		Status:    domain.SessionStatusScheduled,
	}).Error)
}

func (s *SchedulerE2ESuite) TearDownTest() {
	s.ctrl.Finish()
	for _, table := range tables {
		s.NoError(s.svc.DB.Exec("TRUNCATE TABLE `" + table + "`").Error)
	}
}

// 24 小时的短信提醒到期，学生和家长各一条，第二次检查不会重复发送
func (s *SchedulerE2ESuite) TestRunScheduledChecks_Idempotent() {
	t := s.T()
	ctx := t.Context()

	s.client.EXPECT().CreateMessage(gomock.Any()).
		DoAndReturn(func(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error) {
			assert.Equal(t, "+10000000000", *params.From)
			return &openapi.ApiV2010Message{Sid: ekit.ToPtr("SM" + *params.To), Status: ekit.ToPtr("queued")}, nil
		}).Times(2)

	first := s.svc.Scheduler.RunScheduledChecks(ctx, schoolID)
	require.NoError(t, first.Err)
	assert.Equal(t, 1, first.Lessons.Due)
	assert.Equal(t, 2, first.Lessons.Sent)

	second := s.svc.Scheduler.RunScheduledChecks(ctx, schoolID)
	require.NoError(t, second.Err)
	assert.Equal(t, 1, second.Lessons.Duplicates)
	assert.Equal(t, 0, second.Lessons.Sent)

	page, err := s.svc.Logs.List(ctx, domain.LogFilter{SchoolID: schoolID}, domain.DefaultLogSort, domain.Page{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	for _, l := range page.Logs {
		assert.Equal(t, domain.LogStatusSent, l.Status)
		assert.Equal(t, domain.ChannelSMS, l.Channel)
		assert.Equal(t, 0.0079, l.Cost)
		assert.Equal(t, "SM"+l.RecipientPhone, l.ProviderSID)
		assert.True(t, strings.Contains(l.Message, "Piano"))
	}

	var buf bytes.Buffer
	require.NoError(t, s.svc.Logs.ExportCSV(ctx, domain.LogFilter{SchoolID: schoolID}, &buf))
	assert.Len(t, strings.Split(strings.TrimSpace(buf.String()), "\n"), 3)

	cfg, err := s.svc.Configs.Get(ctx, schoolID)
	require.NoError(t, err)
	assert.InDelta(t, 0.0158, cfg.CurrentSpend, 1e-9)
}

// 免打扰时段内不发送也不写记录，保留幂等记录
func (s *SchedulerE2ESuite) TestRunScheduledChecks_QuietHours() {
	t := s.T()
	ctx := t.Context()

	_, err := s.svc.Prefs.Upsert(ctx, schoolID, 1, domain.PrefsPatch{
		QuietHours: &domain.QuietHours{Start: "15:00", End: "17:00"},
	})
	require.NoError(t, err)

	report := s.svc.Scheduler.RunScheduledChecks(ctx, schoolID)
	require.NoError(t, report.Err)
	assert.Equal(t, 2, report.Lessons.Suppressed)
	assert.Equal(t, 0, report.Lessons.Sent)

	page, err := s.svc.Logs.List(ctx, domain.LogFilter{SchoolID: schoolID}, domain.DefaultLogSort, domain.Page{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), page.Total)
}

// 总开关关闭之后整个学校跳过
func (s *SchedulerE2ESuite) TestRunScheduledChecks_MasterToggleOff() {
	t := s.T()
	ctx := t.Context()

	require.NoError(t, s.svc.Configs.Save(ctx, domain.TwilioConfig{
		SchoolID:       schoolID,
		AccountSID:     "AC1",
		AuthToken:      "****oken",
		PhoneNumberSMS: "+10000000000",
		IsActive:       false,
	}))

	report := s.svc.Scheduler.RunScheduledChecks(ctx, schoolID)
	assert.True(t, report.Skipped)
}

func (s *SchedulerE2ESuite) TestTemplateHandler_Seed() {
	t := s.T()

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	auth := jwt.NewJwtAuth("e2e-key")
	server.Use(middleware.NewAuthBuilder(auth).Build())
	web.NewTemplateHandler(s.svc.Templates, s.svc.Rules).PrivateRoutes(server.Engine)

	token, err := auth.Encode(jwtv4.MapClaims{jwt.SchoolIDName: int64(2)})
	require.NoError(t, err)

	seed, err := http.NewRequest(http.MethodPost, "/templates/seed", nil)
	require.NoError(t, err)
	seed.Header.Set("Authorization", "Bearer "+token)
	seedRecorder := test.NewJSONResponseRecorder[web.SeedResp]()
	server.ServeHTTP(seedRecorder, seed)
	require.Equal(t, http.StatusOK, seedRecorder.Code)
	assert.Equal(t, 7, seedRecorder.MustScan().Data.Templates)

	list, err := http.NewRequest(http.MethodGet, "/templates", nil)
	require.NoError(t, err)
	list.Header.Set("Authorization", "Bearer "+token)
	listRecorder := test.NewJSONResponseRecorder[web.ListTemplatesResp]()
	server.ServeHTTP(listRecorder, list)
	require.Equal(t, http.StatusOK, listRecorder.Code)
	assert.Len(t, listRecorder.MustScan().Data.Templates, 7)

	rules, err := s.svc.Rules.List(t.Context(), 2)
	require.NoError(t, err)
	assert.NotEmpty(t, rules)
}
