package web

import (
	"gitee.com/flycash/school-notification/internal/domain"
	"gitee.com/flycash/school-notification/internal/service/rule"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gin-gonic/gin"
)

type RuleHandler struct {
	svc rule.Service
}

func NewRuleHandler(svc rule.Service) *RuleHandler {
	return &RuleHandler{svc: svc}
}

func (h *RuleHandler) PrivateRoutes(server gin.IRouter) {
	server.GET("/rules", wrap(h.List))
	server.PUT("/rules", wrapBody(h.Save))
	server.DELETE("/rules/:type", wrap(h.Delete))
}

func (h *RuleHandler) List(ctx *gin.Context, schoolID int64) (any, error) {
	rules, err := h.svc.List(ctx.Request.Context(), schoolID)
	if err != nil {
		return nil, err
	}
	return ListRulesResp{
		Rules: slice.Map(rules, func(_ int, src domain.NotificationRule) Rule {
			return newRule(src)
		}),
	}, nil
}

func (h *RuleHandler) Save(ctx *gin.Context, schoolID int64, req Rule) (any, error) {
	return nil, h.svc.Save(ctx.Request.Context(), req.toDomain(schoolID))
}

func (h *RuleHandler) Delete(ctx *gin.Context, schoolID int64) (any, error) {
	return nil, h.svc.Delete(ctx.Request.Context(), schoolID, domain.NotificationType(ctx.Param("type")))
}
