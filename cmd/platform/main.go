package main

import (
	"context"
	"time"

	"gitee.com/flycash/school-notification/cmd/platform/ioc"
	internalioc "gitee.com/flycash/school-notification/internal/ioc"
	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/server/egovernor"
)

func main() {
	egoApp := ego.New()
	shutdownTracer := internalioc.InitZipkinTracer()

	app := ioc.InitApp()
	ctx, cancel := context.WithCancel(context.Background())
	for _, t := range app.Tasks {
		t.Start(ctx)
	}

	err := egoApp.
		Serve(
			egovernor.Load("server.governor").Build(),
			app.Web,
		).
		Cron(app.Crons...).
		Run()
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err1 := shutdownTracer(shutdownCtx); err1 != nil {
		elog.DefaultLogger.Error("关闭链路上报失败", elog.FieldErr(err1))
	}
	if err != nil {
		elog.Panic("startup", elog.FieldErr(err))
	}
}
