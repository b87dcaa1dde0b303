package scheduler

import (
	"context"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/meoying/dlock-go"
)

const defaultTimeout = time.Second * 3

// Locker 每个学校同一时间只有一个实例在跑定时检查
//
//go:generate mockgen -source=./locker.go -destination=./mocks/locker.mock.go -package=schedulermocks -typed Locker
type Locker interface {
	// TryLock 锁被其他实例持有的时候返回 false，拿到锁之后必须调用 unlock
	TryLock(ctx context.Context, key string) (unlock func(), ok bool, err error)
}

type dLocker struct {
	client     dlock.Client
	expiration time.Duration
	logger     *elog.Component
}

// NewDLocker expiration 要大于一次检查的耗时
func NewDLocker(client dlock.Client, expiration time.Duration) Locker {
	return &dLocker{
		client:     client,
		expiration: expiration,
		logger:     elog.DefaultLogger,
	}
}

func (l *dLocker) TryLock(ctx context.Context, key string) (func(), bool, error) {
	lock, err := l.client.NewLock(ctx, key, l.expiration)
	if err != nil {
		return nil, false, err
	}
	lockCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	err = lock.Lock(lockCtx)
	cancel()
	if err != nil {
		// 不管是锁被人持有还是超时，这一轮都跳过
		l.logger.Warn("没有抢到分布式锁", elog.String("key", key), elog.FieldErr(err))
		return nil, false, nil
	}
	return func() {
		// 原始 ctx 可能已经被取消了
		unCtx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
		defer cancel()
		//nolint:contextcheck // 释放锁不受原始 ctx 控制
		if er := lock.Unlock(unCtx); er != nil {
			l.logger.Error("释放分布式锁失败", elog.String("key", key), elog.FieldErr(er))
		}
	}, true, nil
}
