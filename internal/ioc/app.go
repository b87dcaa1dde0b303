package ioc

import (
	"context"

	"github.com/gotomicro/ego/server/egin"
	"github.com/gotomicro/ego/task/ecron"
)

type App struct {
	Web   *egin.Component
	Crons []ecron.Ecron
	Tasks []Task
}

// Task 随应用启动的后台任务，ctx 取消之后退出
type Task interface {
	Start(ctx context.Context)
}
