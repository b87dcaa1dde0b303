package web

import (
	"fmt"
	"strconv"

	"gitee.com/flycash/school-notification/internal/domain"
	"gitee.com/flycash/school-notification/internal/errs"
	"gitee.com/flycash/school-notification/internal/service/rule"
	"gitee.com/flycash/school-notification/internal/service/template"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gin-gonic/gin"
)

type TemplateHandler struct {
	svc   template.Service
	rules rule.Service
}

func NewTemplateHandler(svc template.Service, rules rule.Service) *TemplateHandler {
	return &TemplateHandler{svc: svc, rules: rules}
}

func (h *TemplateHandler) PrivateRoutes(server gin.IRouter) {
	server.GET("/templates", wrap(h.List))
	server.POST("/templates", wrapBody(h.Create))
	server.PUT("/templates/:id", wrapBody(h.Update))
	server.DELETE("/templates/:id", wrap(h.Delete))
	server.POST("/templates/preview", wrapBody(h.Preview))
	server.POST("/templates/validate", wrapBody(h.Validate))
	server.POST("/templates/seed", wrap(h.Seed))
}

func (h *TemplateHandler) List(ctx *gin.Context, schoolID int64) (any, error) {
	ts, err := h.svc.ListBySchool(ctx.Request.Context(), schoolID)
	if err != nil {
		return nil, err
	}
	return ListTemplatesResp{
		Templates: slice.Map(ts, func(_ int, src domain.NotificationTemplate) Template {
			return newTemplate(src)
		}),
	}, nil
}

func (h *TemplateHandler) Create(ctx *gin.Context, schoolID int64, req Template) (any, error) {
	t, err := h.svc.Create(ctx.Request.Context(), req.toDomain(schoolID))
	if err != nil {
		return nil, err
	}
	return newTemplate(t), nil
}

func (h *TemplateHandler) Update(ctx *gin.Context, schoolID int64, req Template) (any, error) {
	id, err := templateID(ctx)
	if err != nil {
		return nil, err
	}
	t := req.toDomain(schoolID)
	t.ID = id
	return nil, h.svc.Update(ctx.Request.Context(), t)
}

func (h *TemplateHandler) Delete(ctx *gin.Context, schoolID int64) (any, error) {
	id, err := templateID(ctx)
	if err != nil {
		return nil, err
	}
	return nil, h.svc.Delete(ctx.Request.Context(), schoolID, id)
}

func (h *TemplateHandler) Preview(_ *gin.Context, _ int64, req PreviewTemplateReq) (any, error) {
	return PreviewTemplateResp{Message: h.svc.Preview(req.Body, req.Variables)}, nil
}

func (h *TemplateHandler) Validate(_ *gin.Context, schoolID int64, req Template) (any, error) {
	return h.svc.Validate(req.toDomain(schoolID)), nil
}

// Seed 写入默认模板和默认规则，已经有的保持不变
func (h *TemplateHandler) Seed(ctx *gin.Context, schoolID int64) (any, error) {
	n, err := h.svc.SeedDefaults(ctx.Request.Context(), schoolID)
	if err != nil {
		return nil, err
	}
	if err = h.rules.SeedDefaults(ctx.Request.Context(), schoolID); err != nil {
		return nil, err
	}
	return SeedResp{Templates: n}, nil
}

func templateID(ctx *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: id = %q", errs.ErrInvalidParameter, ctx.Param("id"))
	}
	return id, nil
}
