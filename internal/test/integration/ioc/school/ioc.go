package school

import (
	"time"

	"gitee.com/flycash/school-notification/internal/event/logevent"
	"gitee.com/flycash/school-notification/internal/pkg/catalog"
	"gitee.com/flycash/school-notification/internal/pkg/ratelimit"
	"gitee.com/flycash/school-notification/internal/repository"
	"gitee.com/flycash/school-notification/internal/repository/cache/local"
	rediscache "gitee.com/flycash/school-notification/internal/repository/cache/redis"
	"gitee.com/flycash/school-notification/internal/repository/dao"
	"gitee.com/flycash/school-notification/internal/service/deliverylog"
	"gitee.com/flycash/school-notification/internal/service/gateway"
	"gitee.com/flycash/school-notification/internal/service/preference"
	"gitee.com/flycash/school-notification/internal/service/provider/twilio"
	"gitee.com/flycash/school-notification/internal/service/rule"
	"gitee.com/flycash/school-notification/internal/service/scheduler"
	"gitee.com/flycash/school-notification/internal/service/template"
	"gitee.com/flycash/school-notification/internal/service/twilioconfig"
	testioc "gitee.com/flycash/school-notification/internal/test/ioc"
	"github.com/ego-component/egorm"
	dlockRedis "github.com/meoying/dlock-go/redis"
	ca "github.com/patrickmn/go-cache"
	"github.com/sony/sonyflake"
)

type Service struct {
	DB        *egorm.Component
	Templates template.Service
	Rules     rule.Service
	Prefs     preference.Service
	Configs   twilioconfig.Service
	Logs      deliverylog.Service
	Gateway   gateway.Service
	Scheduler scheduler.Service
}

// Init 使用真实的 mysql 和 redis，只替换 Twilio 客户端和时钟
func Init(newClient twilio.ClientFactory, loc *time.Location, now func() time.Time) *Service {
	db := testioc.InitDBAndTables()
	rdb := testioc.InitRedis()

	c, err := catalog.Default()
	if err != nil {
		panic(err)
	}
	producer := logevent.NewProducer(testioc.InitKafkaProducer())
	sf, err := sonyflake.New(sonyflake.Settings{})
	if err != nil {
		panic(err)
	}

	templates := template.NewService(repository.NewNotificationTemplateRepository(dao.NewNotificationTemplateDAO(db)), c)
	rules := rule.NewService(repository.NewNotificationRuleRepository(dao.NewNotificationRuleDAO(db)), c)
	school := repository.NewSchoolRepository(dao.NewSchoolDAO(db))
	prefs := preference.NewService(repository.NewStudentPrefsRepository(dao.NewStudentPrefsDAO(db)), school, loc)
	configs := twilioconfig.NewService(repository.NewTwilioConfigRepository(
		dao.NewTwilioConfigDAO(db),
		local.NewCache(ca.New(time.Minute, time.Minute)),
		rediscache.NewCache(rdb),
	))
	logs := deliverylog.NewService(
		repository.NewNotificationLogRepository(dao.NewNotificationLogDAO(db)),
		producer,
		logevent.NewSubscriber(logevent.NewKafkaConsumerFactory(testioc.KafkaAddr)),
		sf,
		loc,
		now,
	)
	gw := gateway.NewService(configs,
		twilio.NewProvider(newClient, twilio.Cost{SMS: 0.0079, WhatsApp: 0.005}),
		logs,
		ratelimit.NewRedisSlidingWindowLimiter(rdb, time.Minute, 5),
		now,
	)
	logs.SetGateway(gw)
	sch := scheduler.NewScheduler(rules, templates, prefs, gw, configs, school,
		repository.NewReminderAttemptRepository(dao.NewReminderAttemptDAO(db)),
		scheduler.NewDLocker(dlockRedis.NewClient(rdb), time.Minute), loc, now)

	return &Service{
		DB:        db,
		Templates: templates,
		Rules:     rules,
		Prefs:     prefs,
		Configs:   configs,
		Logs:      logs,
		Gateway:   gw,
		Scheduler: sch,
	}
}
