package web

import (
	"fmt"

	"gitee.com/flycash/school-notification/internal/errs"
	"gitee.com/flycash/school-notification/internal/service/gateway"
	"gitee.com/flycash/school-notification/internal/service/scheduler"
	"github.com/gin-gonic/gin"
)

// NotificationHandler 手动触发定时检查和发送
type NotificationHandler struct {
	scheduler scheduler.Service
	gateway   gateway.Service
}

func NewNotificationHandler(s scheduler.Service, g gateway.Service) *NotificationHandler {
	return &NotificationHandler{scheduler: s, gateway: g}
}

func (h *NotificationHandler) PrivateRoutes(server gin.IRouter) {
	server.POST("/schedule/run", wrap(h.RunSchedule))
	server.POST("/notifications/send", wrapBody(h.Send))
	server.POST("/notifications/test", wrapBody(h.SendTest))
}

func (h *NotificationHandler) RunSchedule(ctx *gin.Context, schoolID int64) (any, error) {
	report := h.scheduler.RunScheduledChecks(ctx.Request.Context(), schoolID)
	return newRunReport(report), nil
}

func (h *NotificationHandler) Send(ctx *gin.Context, schoolID int64, req SendNotificationReq) (any, error) {
	if req.StudentID <= 0 {
		return nil, fmt.Errorf("%w: studentId = %d", errs.ErrInvalidParameter, req.StudentID)
	}
	results, err := h.scheduler.SendNotification(ctx.Request.Context(), schoolID, req.StudentID, req.Type, req.Variables)
	if err != nil {
		return nil, err
	}
	return newSendNotificationResp(results), nil
}

func (h *NotificationHandler) SendTest(ctx *gin.Context, schoolID int64, req gateway.TestRequest) (any, error) {
	res, err := h.gateway.SendTest(ctx.Request.Context(), schoolID, req)
	if err != nil {
		return nil, err
	}
	return newSendResult(res), nil
}
