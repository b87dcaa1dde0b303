package web

import (
	"errors"
	"net/http"

	"gitee.com/flycash/school-notification/internal/errs"
	"gitee.com/flycash/school-notification/internal/web/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// 业务错误码，0 表示成功
const (
	CodeOK           = 0
	CodeInvalidParam = 4
	CodeNotFound     = 5
	CodeRateLimited  = 6
	CodeInternal     = 10
)

// Result 统一的响应格式
type Result struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data"`
}

// wrap 从上下文中取出学校 ID，统一处理响应
func wrap(fn func(ctx *gin.Context, schoolID int64) (any, error)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		schoolID, err := middleware.SchoolID(ctx)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, Result{Code: CodeInvalidParam, Msg: err.Error()})
			return
		}
		data, err := fn(ctx, schoolID)
		if err != nil {
			writeError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, Result{Code: CodeOK, Msg: "OK", Data: data})
	}
}

// wrapBody 在 wrap 的基础上解析 JSON 请求体
func wrapBody[Req any](fn func(ctx *gin.Context, schoolID int64, req Req) (any, error)) gin.HandlerFunc {
	return wrap(func(ctx *gin.Context, schoolID int64) (any, error) {
		var req Req
		if err := ctx.ShouldBindJSON(&req); err != nil {
			return nil, errors.Join(errs.ErrInvalidParameter, err)
		}
		return fn(ctx, schoolID, req)
	})
}

func writeError(ctx *gin.Context, err error) {
	status, code, msg := http.StatusInternalServerError, CodeInternal, "系统错误"
	switch {
	case errors.Is(err, errs.ErrInvalidParameter):
		status, code, msg = http.StatusBadRequest, CodeInvalidParam, err.Error()
	case errors.Is(err, errs.ErrTemplateNotFound),
		errors.Is(err, errs.ErrRuleNotFound),
		errors.Is(err, errs.ErrLogNotFound),
		errors.Is(err, errs.ErrTwilioConfigNotFound),
		errors.Is(err, errs.ErrStudentNotFound),
		errors.Is(err, errs.ErrTeacherNotFound):
		status, code, msg = http.StatusNotFound, CodeNotFound, err.Error()
	case errors.Is(err, errs.ErrRateLimited):
		status, code, msg = http.StatusTooManyRequests, CodeRateLimited, err.Error()
	default:
		elog.DefaultLogger.Error("处理请求失败",
			elog.String("path", ctx.FullPath()),
			elog.FieldErr(err))
	}
	ctx.AbortWithStatusJSON(status, Result{Code: code, Msg: msg})
}
