package ioc

import (
	"context"
	"database/sql"
	"time"

	"gitee.com/flycash/school-notification/internal/pkg/retry"
	"gitee.com/flycash/school-notification/internal/repository/dao"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"

	// 注册 database/sql 的 mysql 驱动
	_ "github.com/go-sql-driver/mysql"
)

func InitDB() *egorm.Component {
	type Config struct {
		DSN   string       `yaml:"dsn"`
		Retry retry.Config `yaml:"retry"`
	}
	var cfg Config
	if err := econf.UnmarshalKey("mysql", &cfg); err != nil {
		panic(err)
	}
	WaitForDBSetup(cfg.DSN, cfg.Retry)
	db := egorm.Load("mysql").Build()
	if err := dao.InitTables(db); err != nil {
		panic(err)
	}
	return db
}

// WaitForDBSetup 数据库还没有启动好的时候按照重试策略等待
func WaitForDBSetup(dsn string, retryCfg retry.Config) {
	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		panic(err)
	}
	defer sqlDB.Close()
	strategy, err := retry.NewRetry(retryCfg)
	if err != nil {
		panic(err)
	}
	const timeout = 5 * time.Second
	for {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		err = sqlDB.PingContext(ctx)
		cancel()
		if err == nil {
			return
		}
		next, ok := strategy.Next()
		if !ok {
			panic("WaitForDBSetup 重试失败......")
		}
		elog.DefaultLogger.Warn("等待数据库启动", elog.String("next", next.String()), elog.FieldErr(err))
		time.Sleep(next)
	}
}
