package ioc

import (
	"gitee.com/flycash/school-notification/internal/pkg/jwt"
	"gitee.com/flycash/school-notification/internal/web"
	"gitee.com/flycash/school-notification/internal/web/middleware"
	"github.com/gotomicro/ego/server/egin"
	"github.com/prometheus/client_golang/prometheus"
)

func InitWebServer(
	reg prometheus.Registerer,
	auth *jwt.JwtAuth,
	notificationHdl *web.NotificationHandler,
	logHdl *web.LogHandler,
	templateHdl *web.TemplateHandler,
	ruleHdl *web.RuleHandler,
	preferenceHdl *web.PreferenceHandler,
	twilioHdl *web.TwilioHandler,
) *egin.Component {
	server := egin.Load("server.http").Build()
	server.Use(middleware.NewObservabilityBuilder(reg).Build())

	api := server.Group("/api", middleware.NewAuthBuilder(auth).Build())
	notificationHdl.PrivateRoutes(api)
	logHdl.PrivateRoutes(api)
	templateHdl.PrivateRoutes(api)
	ruleHdl.PrivateRoutes(api)
	preferenceHdl.PrivateRoutes(api)
	twilioHdl.PrivateRoutes(api)
	return server
}
