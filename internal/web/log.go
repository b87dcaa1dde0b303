package web

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"gitee.com/flycash/school-notification/internal/domain"
	"gitee.com/flycash/school-notification/internal/errs"
	"gitee.com/flycash/school-notification/internal/service/deliverylog"
	"gitee.com/flycash/school-notification/internal/web/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

type LogHandler struct {
	svc    deliverylog.Service
	now    func() time.Time
	logger *elog.Component
}

func NewLogHandler(svc deliverylog.Service, now func() time.Time) *LogHandler {
	return &LogHandler{svc: svc, now: now, logger: elog.DefaultLogger}
}

func (h *LogHandler) PrivateRoutes(server gin.IRouter) {
	server.GET("/logs", wrap(h.List))
	server.GET("/logs/export", h.Export)
	server.GET("/logs/stream", h.Stream)
	server.GET("/logs/stats", wrap(h.Stats))
	server.POST("/logs/prune", wrapBody(h.Prune))
	server.POST("/logs/:id/resend", wrap(h.Resend))
	server.PUT("/logs/:id/status", wrapBody(h.UpdateStatus))
}

func (h *LogHandler) List(ctx *gin.Context, schoolID int64) (any, error) {
	var req ListLogsReq
	if err := ctx.ShouldBindQuery(&req); err != nil {
		return nil, errors.Join(errs.ErrInvalidParameter, err)
	}
	return h.svc.List(ctx.Request.Context(), req.filter(schoolID), req.sort(),
		domain.Page{Page: req.Page, PageSize: req.PageSize})
}

// Export 以 CSV 下载，条件和列表相同，不分页
func (h *LogHandler) Export(ctx *gin.Context) {
	schoolID, err := middleware.SchoolID(ctx)
	if err != nil {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	var req ListLogsReq
	if err = ctx.ShouldBindQuery(&req); err != nil {
		writeError(ctx, errors.Join(errs.ErrInvalidParameter, err))
		return
	}
	filename := fmt.Sprintf("notification-logs-%s.csv", h.now().Format("2006-01-02"))
	ctx.Header("Content-Type", "text/csv; charset=utf-8")
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Status(http.StatusOK)
	if err = h.svc.ExportCSV(ctx.Request.Context(), req.filter(schoolID), ctx.Writer); err != nil {
		// 响应头已经写出去了，只能记录日志
		h.logger.Error("导出通知记录失败",
			elog.Int64("schoolID", schoolID),
			elog.FieldErr(err))
	}
}

// Stream 用 SSE 推送新增和更新的记录，直到客户端断开
func (h *LogHandler) Stream(ctx *gin.Context) {
	schoolID, err := middleware.SchoolID(ctx)
	if err != nil {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	var req ListLogsReq
	if err = ctx.ShouldBindQuery(&req); err != nil {
		writeError(ctx, errors.Join(errs.ErrInvalidParameter, err))
		return
	}
	reqCtx := ctx.Request.Context()
	ch, err := h.svc.Subscribe(reqCtx, req.filter(schoolID))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Stream(func(_ io.Writer) bool {
		select {
		case l, ok := <-ch:
			if !ok {
				return false
			}
			ctx.SSEvent("log", l)
			return true
		case <-reqCtx.Done():
			return false
		}
	})
}

func (h *LogHandler) Stats(ctx *gin.Context, schoolID int64) (any, error) {
	var req StatsReq
	if err := ctx.ShouldBindQuery(&req); err != nil {
		return nil, errors.Join(errs.ErrInvalidParameter, err)
	}
	if req.End == 0 {
		req.End = h.now().UnixMilli()
	}
	return h.svc.Stats(ctx.Request.Context(), schoolID, req.Start, req.End)
}

func (h *LogHandler) Prune(ctx *gin.Context, schoolID int64, req PruneReq) (any, error) {
	n, err := h.svc.Prune(ctx.Request.Context(), schoolID, req.Days)
	if err != nil {
		return nil, err
	}
	return PruneResp{Deleted: n}, nil
}

func (h *LogHandler) Resend(ctx *gin.Context, schoolID int64) (any, error) {
	id, err := logID(ctx)
	if err != nil {
		return nil, err
	}
	res, err := h.svc.Resend(ctx.Request.Context(), schoolID, id)
	if err != nil {
		return nil, err
	}
	return newSendResult(res), nil
}

func (h *LogHandler) UpdateStatus(ctx *gin.Context, schoolID int64, req UpdateStatusReq) (any, error) {
	id, err := logID(ctx)
	if err != nil {
		return nil, err
	}
	return nil, h.svc.UpdateStatus(ctx.Request.Context(), schoolID, id, req.Status, req.ErrorMessage)
}

func logID(ctx *gin.Context) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id = %q", errs.ErrInvalidParameter, ctx.Param("id"))
	}
	return id, nil
}
