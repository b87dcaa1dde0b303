//go:build unit

package web_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gitee.com/flycash/school-notification/internal/domain"
	"gitee.com/flycash/school-notification/internal/errs"
	"gitee.com/flycash/school-notification/internal/pkg/jwt"
	deliverylogmocks "gitee.com/flycash/school-notification/internal/service/deliverylog/mocks"
	"gitee.com/flycash/school-notification/internal/service/gateway"
	gatewaymocks "gitee.com/flycash/school-notification/internal/service/gateway/mocks"
	preferencemocks "gitee.com/flycash/school-notification/internal/service/preference/mocks"
	rulemocks "gitee.com/flycash/school-notification/internal/service/rule/mocks"
	"gitee.com/flycash/school-notification/internal/service/scheduler"
	schedulermocks "gitee.com/flycash/school-notification/internal/service/scheduler/mocks"
	templatemocks "gitee.com/flycash/school-notification/internal/service/template/mocks"
	twilioconfigmocks "gitee.com/flycash/school-notification/internal/service/twilioconfig/mocks"
	"gitee.com/flycash/school-notification/internal/test"
	"gitee.com/flycash/school-notification/internal/web"
	"gitee.com/flycash/school-notification/internal/web/middleware"
	"github.com/ecodeclub/ekit/iox"
	jwtv4 "github.com/golang-jwt/jwt/v4"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	schoolID = int64(42)
	jwtKey   = "web-handler-test-key"
)

type routes interface {
	PrivateRoutes(server gin.IRouter)
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

type HandlerTestSuite struct {
	suite.Suite
	token string
}

func (s *HandlerTestSuite) SetupSuite() {
	token, err := jwt.NewJwtAuth(jwtKey).Encode(jwtv4.MapClaims{jwt.SchoolIDName: schoolID})
	s.Require().NoError(err)
	s.token = token
}

func (s *HandlerTestSuite) newGinServer(handler routes) *egin.Component {
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(middleware.NewAuthBuilder(jwt.NewJwtAuth(jwtKey)).Build())
	handler.PrivateRoutes(server.Engine)
	return server
}

func (s *HandlerTestSuite) newRequest(method, url string, body any) *http.Request {
	var reader io.Reader
	if body != nil {
		reader = iox.NewJSONReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	s.Require().NoError(err)
	req.Header.Set("content-type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)
	return req
}

func (s *HandlerTestSuite) TestAuth() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := s.newGinServer(web.NewRuleHandler(rulemocks.NewMockService(ctrl)))

	testCases := []struct {
		name  string
		token string
	}{
		{name: "没有令牌", token: ""},
		{name: "令牌签名不对", token: func() string {
			token, err := jwt.NewJwtAuth("other-key").Encode(jwtv4.MapClaims{jwt.SchoolIDName: schoolID})
			require.NoError(t, err)
			return token
		}()},
		{name: "令牌中没有学校ID", token: func() string {
			token, err := jwt.NewJwtAuth(jwtKey).Encode(jwtv4.MapClaims{"uid": 1})
			require.NoError(t, err)
			return token
		}()},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, "/rules", nil)
			require.NoError(t, err)
			if tc.token != "" {
				req.Header.Set("Authorization", tc.token)
			}
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)
			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		})
	}
}

func (s *HandlerTestSuite) TestTemplateHandler() {
	t := s.T()

	testCases := []struct {
		name     string
		method   string
		url      string
		body     any
		before   func(svc *templatemocks.MockService, rules *rulemocks.MockService)
		wantCode int
		assert   func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name:   "列出模板",
			method: http.MethodGet,
			url:    "/templates",
			before: func(svc *templatemocks.MockService, _ *rulemocks.MockService) {
				svc.EXPECT().ListBySchool(gomock.Any(), schoolID).Return([]domain.NotificationTemplate{
					{ID: 1, SchoolID: schoolID, Type: domain.NotificationTypeLessonReminder, Language: "en", Name: "n1", Body: "Hi {studentName}"},
					{ID: 2, SchoolID: schoolID, Type: domain.NotificationTypeWelcome, Language: "fr", Name: "n2", Body: "Bonjour"},
				}, nil)
			},
			wantCode: http.StatusOK,
			assert: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				res := test.JSONResponseRecorder[web.ListTemplatesResp]{ResponseRecorder: recorder}.MustScan()
				require.Len(t, res.Data.Templates, 2)
				assert.Equal(t, int64(1), res.Data.Templates[0].ID)
				assert.Equal(t, "Hi {studentName}", res.Data.Templates[0].Body)
				assert.Equal(t, "fr", res.Data.Templates[1].Language)
			},
		},
		{
			name:   "创建模板使用令牌中的学校",
			method: http.MethodPost,
			url:    "/templates",
			body: web.Template{
				Type: domain.NotificationTypeLessonReminder, Language: "en", Name: "lesson", Body: "Hello",
			},
			before: func(svc *templatemocks.MockService, _ *rulemocks.MockService) {
				svc.EXPECT().Create(gomock.Any(), domain.NotificationTemplate{
					SchoolID: schoolID, Type: domain.NotificationTypeLessonReminder, Language: "en", Name: "lesson", Body: "Hello",
				}).Return(domain.NotificationTemplate{
					ID: 9, SchoolID: schoolID, Type: domain.NotificationTypeLessonReminder, Language: "en", Name: "lesson", Body: "Hello",
				}, nil)
			},
			wantCode: http.StatusOK,
			assert: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				res := test.JSONResponseRecorder[web.Template]{ResponseRecorder: recorder}.MustScan()
				assert.Equal(t, web.CodeOK, res.Code)
				assert.Equal(t, int64(9), res.Data.ID)
			},
		},
		{
			name:   "创建模板参数错误",
			method: http.MethodPost,
			url:    "/templates",
			body:   web.Template{Type: "unknown", Language: "en"},
			before: func(svc *templatemocks.MockService, _ *rulemocks.MockService) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(domain.NotificationTemplate{}, fmt.Errorf("%w: Type", errs.ErrInvalidParameter))
			},
			wantCode: http.StatusBadRequest,
			assert: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				res := test.JSONResponseRecorder[any]{ResponseRecorder: recorder}.MustScan()
				assert.Equal(t, web.CodeInvalidParam, res.Code)
			},
		},
		{
			name:     "更新模板ID不合法",
			method:   http.MethodPut,
			url:      "/templates/abc",
			body:     web.Template{Type: domain.NotificationTypeWelcome, Language: "en"},
			before:   func(_ *templatemocks.MockService, _ *rulemocks.MockService) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:   "删除不存在的模板",
			method: http.MethodDelete,
			url:    "/templates/7",
			before: func(svc *templatemocks.MockService, _ *rulemocks.MockService) {
				svc.EXPECT().Delete(gomock.Any(), schoolID, int64(7)).Return(errs.ErrTemplateNotFound)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:   "预览",
			method: http.MethodPost,
			url:    "/templates/preview",
			body:   web.PreviewTemplateReq{Body: "Hi {studentName}", Variables: map[string]string{"studentName": "Ann"}},
			before: func(svc *templatemocks.MockService, _ *rulemocks.MockService) {
				svc.EXPECT().Preview("Hi {studentName}", map[string]string{"studentName": "Ann"}).Return("Hi Ann")
			},
			wantCode: http.StatusOK,
			assert: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				res := test.JSONResponseRecorder[web.PreviewTemplateResp]{ResponseRecorder: recorder}.MustScan()
				assert.Equal(t, "Hi Ann", res.Data.Message)
			},
		},
		{
			name:   "写入默认模板和规则",
			method: http.MethodPost,
			url:    "/templates/seed",
			before: func(svc *templatemocks.MockService, rules *rulemocks.MockService) {
				svc.EXPECT().SeedDefaults(gomock.Any(), schoolID).Return(7, nil)
				rules.EXPECT().SeedDefaults(gomock.Any(), schoolID).Return(nil)
			},
			wantCode: http.StatusOK,
			assert: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				res := test.JSONResponseRecorder[web.SeedResp]{ResponseRecorder: recorder}.MustScan()
				assert.Equal(t, 7, res.Data.Templates)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := templatemocks.NewMockService(ctrl)
			rules := rulemocks.NewMockService(ctrl)
			tc.before(svc, rules)

			server := s.newGinServer(web.NewTemplateHandler(svc, rules))
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, s.newRequest(tc.method, tc.url, tc.body))

			require.Equal(t, tc.wantCode, recorder.Code)
			if tc.assert != nil {
				tc.assert(t, recorder)
			}
		})
	}
}

func (s *HandlerTestSuite) TestRuleHandler() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := rulemocks.NewMockService(ctrl)
	rule := domain.NotificationRule{
		SchoolID:   schoolID,
		Type:       domain.NotificationTypeLessonReminder,
		Enabled:    true,
		Recipients: domain.Recipients{Student: true},
		Reminders: []domain.Reminder{
			{Timing: domain.Timing{Value: 24, Unit: domain.TimeUnitHours}, Channel: domain.SelectBoth},
		},
	}
	svc.EXPECT().Save(gomock.Any(), rule).Return(nil)
	svc.EXPECT().List(gomock.Any(), schoolID).Return([]domain.NotificationRule{rule}, nil)
	svc.EXPECT().Delete(gomock.Any(), schoolID, domain.NotificationTypeLessonReminder).Return(nil)

	server := s.newGinServer(web.NewRuleHandler(svc))

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, s.newRequest(http.MethodPut, "/rules", web.Rule{
		Type:       rule.Type,
		Enabled:    true,
		Recipients: rule.Recipients,
		Reminders:  rule.Reminders,
	}))
	require.Equal(t, http.StatusOK, recorder.Code)

	listRecorder := test.NewJSONResponseRecorder[web.ListRulesResp]()
	server.ServeHTTP(listRecorder, s.newRequest(http.MethodGet, "/rules", nil))
	require.Equal(t, http.StatusOK, listRecorder.Code)
	res := listRecorder.MustScan()
	require.Len(t, res.Data.Rules, 1)
	assert.Equal(t, rule.Reminders, res.Data.Rules[0].Reminders)

	recorder = httptest.NewRecorder()
	server.ServeHTTP(recorder, s.newRequest(http.MethodDelete, "/rules/lesson_reminder", nil))
	require.Equal(t, http.StatusOK, recorder.Code)
}

func (s *HandlerTestSuite) TestLogHandler() {
	t := s.T()
	now := func() time.Time { return time.Date(2025, 3, 10, 16, 0, 0, 0, time.UTC) }

	testCases := []struct {
		name     string
		method   string
		url      string
		body     any
		before   func(svc *deliverylogmocks.MockService)
		wantCode int
		assert   func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name:   "按条件列出",
			method: http.MethodGet,
			url:    "/logs?status=failed&channel=sms&search=ann&sort=cost&order=asc&page=2&pageSize=10",
			before: func(svc *deliverylogmocks.MockService) {
				svc.EXPECT().List(gomock.Any(),
					domain.LogFilter{SchoolID: schoolID, Status: domain.LogStatusFailed, Channel: domain.ChannelSMS, Search: "ann"},
					domain.LogSort{Field: "cost"},
					domain.Page{Page: 2, PageSize: 10},
				).Return(domain.LogPage{Logs: []domain.NotificationLog{{ID: 3}}, Total: 11}, nil)
			},
			wantCode: http.StatusOK,
			assert: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				res := test.JSONResponseRecorder[domain.LogPage]{ResponseRecorder: recorder}.MustScan()
				assert.Equal(t, int64(11), res.Data.Total)
				require.Len(t, res.Data.Logs, 1)
				assert.Equal(t, uint64(3), res.Data.Logs[0].ID)
			},
		},
		{
			name:   "导出CSV",
			method: http.MethodGet,
			url:    "/logs/export?type=welcome",
			before: func(svc *deliverylogmocks.MockService) {
				svc.EXPECT().ExportCSV(gomock.Any(),
					domain.LogFilter{SchoolID: schoolID, NotificationType: domain.NotificationTypeWelcome},
					gomock.Any(),
				).DoAndReturn(func(_ context.Context, _ domain.LogFilter, w io.Writer) error {
					_, err := io.WriteString(w, "id,recipient_name\n1,Ann\n")
					return err
				})
			},
			wantCode: http.StatusOK,
			assert: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, "text/csv; charset=utf-8", recorder.Header().Get("Content-Type"))
				assert.True(t, strings.Contains(recorder.Header().Get("Content-Disposition"), "notification-logs-2025-03-10.csv"))
				assert.Equal(t, "id,recipient_name\n1,Ann\n", recorder.Body.String())
			},
		},
		{
			name:   "统计默认截止到现在",
			method: http.MethodGet,
			url:    "/logs/stats?start=1000",
			before: func(svc *deliverylogmocks.MockService) {
				svc.EXPECT().Stats(gomock.Any(), schoolID, int64(1000), now().UnixMilli()).
					Return(domain.LogStats{Total: 4, SuccessRate: 75}, nil)
			},
			wantCode: http.StatusOK,
			assert: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				res := test.JSONResponseRecorder[domain.LogStats]{ResponseRecorder: recorder}.MustScan()
				assert.Equal(t, 75.0, res.Data.SuccessRate)
			},
		},
		{
			name:   "清理",
			method: http.MethodPost,
			url:    "/logs/prune",
			body:   web.PruneReq{Days: 30},
			before: func(svc *deliverylogmocks.MockService) {
				svc.EXPECT().Prune(gomock.Any(), schoolID, 30).Return(int64(12), nil)
			},
			wantCode: http.StatusOK,
			assert: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				res := test.JSONResponseRecorder[web.PruneResp]{ResponseRecorder: recorder}.MustScan()
				assert.Equal(t, int64(12), res.Data.Deleted)
			},
		},
		{
			name:   "清理天数不合法",
			method: http.MethodPost,
			url:    "/logs/prune",
			body:   web.PruneReq{Days: 0},
			before: func(svc *deliverylogmocks.MockService) {
				svc.EXPECT().Prune(gomock.Any(), schoolID, 0).Return(int64(0), errs.ErrInvalidParameter)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name:   "重发",
			method: http.MethodPost,
			url:    "/logs/5/resend",
			before: func(svc *deliverylogmocks.MockService) {
				svc.EXPECT().Resend(gomock.Any(), schoolID, uint64(5)).
					Return(domain.Failed(domain.NotificationLog{ID: 5, Status: domain.LogStatusFailed}, errs.ErrSendFailed), nil)
			},
			wantCode: http.StatusOK,
			assert: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				res := test.JSONResponseRecorder[web.SendResult]{ResponseRecorder: recorder}.MustScan()
				assert.Equal(t, domain.OutcomeFailed, res.Data.Outcome)
				require.NotNil(t, res.Data.Log)
				assert.Equal(t, uint64(5), res.Data.Log.ID)
				assert.Equal(t, errs.ErrSendFailed.Error(), res.Data.Error)
			},
		},
		{
			name:   "重发不存在的记录",
			method: http.MethodPost,
			url:    "/logs/6/resend",
			before: func(svc *deliverylogmocks.MockService) {
				svc.EXPECT().Resend(gomock.Any(), schoolID, uint64(6)).Return(domain.SendResult{}, errs.ErrLogNotFound)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:   "更新状态",
			method: http.MethodPut,
			url:    "/logs/5/status",
			body:   web.UpdateStatusReq{Status: domain.LogStatusDelivered},
			before: func(svc *deliverylogmocks.MockService) {
				svc.EXPECT().UpdateStatus(gomock.Any(), schoolID, uint64(5), domain.LogStatusDelivered, "").Return(nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "记录ID不合法",
			method:   http.MethodPut,
			url:      "/logs/-1/status",
			body:     web.UpdateStatusReq{Status: domain.LogStatusDelivered},
			before:   func(_ *deliverylogmocks.MockService) {},
			wantCode: http.StatusBadRequest,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := deliverylogmocks.NewMockService(ctrl)
			tc.before(svc)

			server := s.newGinServer(web.NewLogHandler(svc, now))
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, s.newRequest(tc.method, tc.url, tc.body))

			require.Equal(t, tc.wantCode, recorder.Code)
			if tc.assert != nil {
				tc.assert(t, recorder)
			}
		})
	}
}

func (s *HandlerTestSuite) TestNotificationHandler() {
	t := s.T()

	testCases := []struct {
		name     string
		url      string
		body     any
		before   func(sch *schedulermocks.MockService, gw *gatewaymocks.MockService)
		wantCode int
		assert   func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "手动触发定时检查",
			url:  "/schedule/run",
			before: func(sch *schedulermocks.MockService, _ *gatewaymocks.MockService) {
				sch.EXPECT().RunScheduledChecks(gomock.Any(), schoolID).Return(scheduler.RunReport{
					SchoolID: schoolID,
					Lessons:  scheduler.PassReport{Entities: 2, Due: 2, Sent: 3},
					Payments: scheduler.PassReport{Skipped: true},
					Err:      errs.ErrTemplateNotFound,
				})
			},
			wantCode: http.StatusOK,
			assert: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				res := test.JSONResponseRecorder[web.RunReport]{ResponseRecorder: recorder}.MustScan()
				assert.Equal(t, 3, res.Data.Lessons.Sent)
				assert.True(t, res.Data.Payments.Skipped)
				assert.Equal(t, errs.ErrTemplateNotFound.Error(), res.Data.Error)
			},
		},
		{
			name: "发送通知",
			url:  "/notifications/send",
			body: web.SendNotificationReq{
				StudentID: 7,
				Type:      domain.NotificationTypeWelcome,
				Variables: map[string]string{"schoolName": "Music"},
			},
			before: func(sch *schedulermocks.MockService, _ *gatewaymocks.MockService) {
				sch.EXPECT().SendNotification(gomock.Any(), schoolID, int64(7), domain.NotificationTypeWelcome,
					map[string]string{"schoolName": "Music"}).
					Return([]domain.SendResult{
						domain.Sent(domain.NotificationLog{ID: 1, Status: domain.LogStatusSent}),
						domain.Suppressed(domain.SuppressQuietHours),
					}, nil)
			},
			wantCode: http.StatusOK,
			assert: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				res := test.JSONResponseRecorder[web.SendNotificationResp]{ResponseRecorder: recorder}.MustScan()
				require.Len(t, res.Data.Results, 2)
				assert.Equal(t, domain.OutcomeSent, res.Data.Results[0].Outcome)
				assert.Nil(t, res.Data.Results[1].Log)
				assert.Equal(t, domain.SuppressQuietHours, res.Data.Results[1].Reason)
			},
		},
		{
			name:     "发送通知缺少学生",
			url:      "/notifications/send",
			body:     web.SendNotificationReq{Type: domain.NotificationTypeWelcome},
			before:   func(_ *schedulermocks.MockService, _ *gatewaymocks.MockService) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "测试消息被限流",
			url:  "/notifications/test",
			body: gateway.TestRequest{Phone: "+15550001", Message: "hello"},
			before: func(_ *schedulermocks.MockService, gw *gatewaymocks.MockService) {
				gw.EXPECT().SendTest(gomock.Any(), schoolID, gateway.TestRequest{Phone: "+15550001", Message: "hello"}).
					Return(domain.SendResult{}, errs.ErrRateLimited)
			},
			wantCode: http.StatusTooManyRequests,
			assert: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				res := test.JSONResponseRecorder[any]{ResponseRecorder: recorder}.MustScan()
				assert.Equal(t, web.CodeRateLimited, res.Code)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			sch := schedulermocks.NewMockService(ctrl)
			gw := gatewaymocks.NewMockService(ctrl)
			tc.before(sch, gw)

			server := s.newGinServer(web.NewNotificationHandler(sch, gw))
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, s.newRequest(http.MethodPost, tc.url, tc.body))

			require.Equal(t, tc.wantCode, recorder.Code)
			if tc.assert != nil {
				tc.assert(t, recorder)
			}
		})
	}
}

func (s *HandlerTestSuite) TestPreferenceHandler() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := preferencemocks.NewMockService(ctrl)
	off := false
	patch := domain.PrefsPatch{WhatsAppEnabled: &off}
	want := domain.DefaultPrefs(schoolID, 7)
	want.WhatsAppEnabled = false
	svc.EXPECT().Upsert(gomock.Any(), schoolID, int64(7), patch).Return(want, nil)
	svc.EXPECT().Get(gomock.Any(), schoolID, int64(8)).Return(domain.DefaultPrefs(schoolID, 8), nil)

	server := s.newGinServer(web.NewPreferenceHandler(svc))

	recorder := test.NewJSONResponseRecorder[domain.StudentNotificationPrefs]()
	server.ServeHTTP(recorder, s.newRequest(http.MethodPut, "/preferences/7", patch))
	require.Equal(t, http.StatusOK, recorder.Code)
	res := recorder.MustScan()
	assert.True(t, res.Data.SMSEnabled)
	assert.False(t, res.Data.WhatsAppEnabled)

	recorder = test.NewJSONResponseRecorder[domain.StudentNotificationPrefs]()
	server.ServeHTTP(recorder, s.newRequest(http.MethodGet, "/preferences/8", nil))
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, int64(8), recorder.MustScan().Data.StudentID)

	recorder = test.NewJSONResponseRecorder[domain.StudentNotificationPrefs]()
	server.ServeHTTP(recorder, s.newRequest(http.MethodGet, "/preferences/x", nil))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func (s *HandlerTestSuite) TestTwilioHandler() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	configs := twilioconfigmocks.NewMockService(ctrl)
	gw := gatewaymocks.NewMockService(ctrl)
	cfg := domain.TwilioConfig{
		SchoolID:       schoolID,
		AccountSID:     "AC123",
		AuthToken:      "secret-token-9876",
		PhoneNumberSMS: "+15550000",
		IsActive:       true,
	}
	configs.EXPECT().Get(gomock.Any(), schoolID).Return(cfg, nil)
	configs.EXPECT().Save(gomock.Any(), domain.TwilioConfig{
		SchoolID:       schoolID,
		AccountSID:     "AC123",
		AuthToken:      "****9876",
		PhoneNumberSMS: "+15550000",
		IsActive:       true,
	}).Return(nil)
	gw.EXPECT().ValidateCredentials(gomock.Any(), schoolID).
		Return(domain.CredentialCheck{Valid: true, Details: "Twilio"}, nil)

	server := s.newGinServer(web.NewTwilioHandler(configs, gw))

	recorder := test.NewJSONResponseRecorder[domain.TwilioConfig]()
	server.ServeHTTP(recorder, s.newRequest(http.MethodGet, "/twilio", nil))
	require.Equal(t, http.StatusOK, recorder.Code)
	masked := recorder.MustScan().Data
	assert.Equal(t, "****9876", masked.AuthToken)

	// 前端原样回传脱敏之后的配置
	saveRecorder := httptest.NewRecorder()
	server.ServeHTTP(saveRecorder, s.newRequest(http.MethodPut, "/twilio", masked))
	require.Equal(t, http.StatusOK, saveRecorder.Code)

	checkRecorder := test.NewJSONResponseRecorder[domain.CredentialCheck]()
	server.ServeHTTP(checkRecorder, s.newRequest(http.MethodPost, "/twilio/validate", nil))
	require.Equal(t, http.StatusOK, checkRecorder.Code)
	assert.True(t, checkRecorder.MustScan().Data.Valid)
}
