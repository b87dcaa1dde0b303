package web

import (
	"fmt"
	"strconv"

	"gitee.com/flycash/school-notification/internal/domain"
	"gitee.com/flycash/school-notification/internal/errs"
	"gitee.com/flycash/school-notification/internal/service/preference"
	"github.com/gin-gonic/gin"
)

type PreferenceHandler struct {
	svc preference.Service
}

func NewPreferenceHandler(svc preference.Service) *PreferenceHandler {
	return &PreferenceHandler{svc: svc}
}

func (h *PreferenceHandler) PrivateRoutes(server gin.IRouter) {
	server.GET("/preferences/:studentId", wrap(h.Get))
	server.PUT("/preferences/:studentId", wrapBody(h.Upsert))
}

// Get 没有配置过的学生返回默认偏好
func (h *PreferenceHandler) Get(ctx *gin.Context, schoolID int64) (any, error) {
	studentID, err := studentID(ctx)
	if err != nil {
		return nil, err
	}
	return h.svc.Get(ctx.Request.Context(), schoolID, studentID)
}

func (h *PreferenceHandler) Upsert(ctx *gin.Context, schoolID int64, patch domain.PrefsPatch) (any, error) {
	studentID, err := studentID(ctx)
	if err != nil {
		return nil, err
	}
	return h.svc.Upsert(ctx.Request.Context(), schoolID, studentID, patch)
}

func studentID(ctx *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("studentId"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: studentId = %q", errs.ErrInvalidParameter, ctx.Param("studentId"))
	}
	return id, nil
}
