package web

import (
	"gitee.com/flycash/school-notification/internal/domain"
	"gitee.com/flycash/school-notification/internal/service/gateway"
	"gitee.com/flycash/school-notification/internal/service/twilioconfig"
	"github.com/gin-gonic/gin"
)

type TwilioHandler struct {
	configs twilioconfig.Service
	gateway gateway.Service
}

func NewTwilioHandler(configs twilioconfig.Service, g gateway.Service) *TwilioHandler {
	return &TwilioHandler{configs: configs, gateway: g}
}

func (h *TwilioHandler) PrivateRoutes(server gin.IRouter) {
	server.GET("/twilio", wrap(h.Get))
	server.PUT("/twilio", wrapBody(h.Save))
	server.POST("/twilio/validate", wrap(h.Validate))
}

// Get AuthToken 脱敏之后返回
func (h *TwilioHandler) Get(ctx *gin.Context, schoolID int64) (any, error) {
	cfg, err := h.configs.Get(ctx.Request.Context(), schoolID)
	if err != nil {
		return nil, err
	}
	return cfg.Masked(), nil
}

func (h *TwilioHandler) Save(ctx *gin.Context, schoolID int64, req domain.TwilioConfig) (any, error) {
	req.SchoolID = schoolID
	return nil, h.configs.Save(ctx.Request.Context(), req)
}

func (h *TwilioHandler) Validate(ctx *gin.Context, schoolID int64) (any, error) {
	return h.gateway.ValidateCredentials(ctx.Request.Context(), schoolID)
}
