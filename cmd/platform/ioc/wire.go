//go:build wireinject

package ioc

import (
	"gitee.com/flycash/school-notification/internal/event/logevent"
	"gitee.com/flycash/school-notification/internal/ioc"
	"gitee.com/flycash/school-notification/internal/repository"
	"gitee.com/flycash/school-notification/internal/repository/cache/local"
	rediscache "gitee.com/flycash/school-notification/internal/repository/cache/redis"
	"gitee.com/flycash/school-notification/internal/repository/dao"
	"gitee.com/flycash/school-notification/internal/service/deliverylog"
	"gitee.com/flycash/school-notification/internal/service/gateway"
	"gitee.com/flycash/school-notification/internal/service/preference"
	"gitee.com/flycash/school-notification/internal/service/rule"
	"gitee.com/flycash/school-notification/internal/service/scheduler"
	"gitee.com/flycash/school-notification/internal/service/template"
	"gitee.com/flycash/school-notification/internal/service/twilioconfig"
	"gitee.com/flycash/school-notification/internal/web"
	"github.com/google/wire"
)

var (
	BaseSet = wire.NewSet(
		ioc.InitDB,
		ioc.InitRegisterer,
		ioc.InitRedisClient,
		ioc.InitRedisCmd,
		ioc.InitGoCache,
		ioc.InitKafkaConfig,
		ioc.InitKafkaProducer,
		ioc.InitIDGenerator,
		ioc.InitDistributedLock,
		ioc.InitLocker,
		ioc.InitLimiter,
		ioc.InitProvider,
		ioc.InitCatalog,
		ioc.InitLocation,
		ioc.InitClock,
		ioc.InitJwtAuth,

		local.NewCache,
		rediscache.NewCache,
	)
	templateSvcSet = wire.NewSet(
		template.NewService,
		repository.NewNotificationTemplateRepository,
		dao.NewNotificationTemplateDAO,
	)
	ruleSvcSet = wire.NewSet(
		rule.NewService,
		repository.NewNotificationRuleRepository,
		dao.NewNotificationRuleDAO,
	)
	schoolRepoSet = wire.NewSet(
		repository.NewSchoolRepository,
		dao.NewSchoolDAO,
	)
	preferenceSvcSet = wire.NewSet(
		preference.NewService,
		repository.NewStudentPrefsRepository,
		dao.NewStudentPrefsDAO,
	)
	twilioConfigSvcSet = wire.NewSet(
		twilioconfig.NewService,
		twilioconfig.NewSpendResetCron,
		newTwilioConfigRepository,
		dao.NewTwilioConfigDAO,
	)
	deliveryLogSvcSet = wire.NewSet(
		deliverylog.NewService,
		repository.NewNotificationLogRepository,
		dao.NewNotificationLogDAO,
		ioc.InitLogEventProducer,
		ioc.InitLogSubscriber,
		wire.Bind(new(deliverylog.LogSubscriber), new(*logevent.Subscriber)),
		wire.Bind(new(gateway.LogRecorder), new(*deliverylog.LogService)),
		newDeliveryLogService,
	)
	schedulerSvcSet = wire.NewSet(
		scheduler.NewScheduler,
		scheduler.NewCronJob,
		repository.NewReminderAttemptRepository,
		dao.NewReminderAttemptDAO,
		wire.Bind(new(scheduler.Service), new(*scheduler.Scheduler)),
	)
	webSet = wire.NewSet(
		web.NewNotificationHandler,
		web.NewLogHandler,
		web.NewTemplateHandler,
		web.NewRuleHandler,
		web.NewPreferenceHandler,
		web.NewTwilioHandler,
		ioc.InitWebServer,
	)
)

func newTwilioConfigRepository(d dao.TwilioConfigDAO, l *local.Cache, r *rediscache.Cache) repository.TwilioConfigRepository {
	return repository.NewTwilioConfigRepository(d, l, r)
}

// newDeliveryLogService 网关写记录依赖通知记录服务，重发又依赖网关，构造完之后再注入网关
func newDeliveryLogService(svc *deliverylog.LogService, g gateway.Service) deliverylog.Service {
	svc.SetGateway(g)
	return svc
}

func InitApp() *ioc.App {
	wire.Build(
		BaseSet,

		templateSvcSet,
		ruleSvcSet,
		schoolRepoSet,
		preferenceSvcSet,
		twilioConfigSvcSet,
		deliveryLogSvcSet,
		gateway.NewService,
		schedulerSvcSet,

		webSet,
		ioc.Crons,
		ioc.InitTasks,
		wire.Struct(new(ioc.App), "*"),
	)
	return new(ioc.App)
}
