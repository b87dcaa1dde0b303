package ioc

import (
	"time"

	"gitee.com/flycash/school-notification/internal/service/scheduler"
	"github.com/gotomicro/ego/core/econf"
	"github.com/meoying/dlock-go"
	dlockRedis "github.com/meoying/dlock-go/redis"
	"github.com/redis/go-redis/v9"
)

func InitDistributedLock(rdb *redis.Client) dlock.Client {
	return dlockRedis.NewClient(rdb)
}

func InitLocker(client dlock.Client) scheduler.Locker {
	expiration := econf.GetDuration("scheduler.lockExpiration")
	if expiration <= 0 {
		expiration = 5 * time.Minute
	}
	return scheduler.NewDLocker(client, expiration)
}
