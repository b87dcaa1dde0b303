package metrics

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

var _ redis.Hook = (*Hook)(nil)

// Hook 统计 redis 命令、管道和建连的情况
type Hook struct {
	commandCounter   *prometheus.CounterVec
	commandDuration  *prometheus.SummaryVec
	pipelineCounter  *prometheus.CounterVec
	pipelineDuration prometheus.Summary
	dialCounter      *prometheus.CounterVec
}

func NewHook(reg prometheus.Registerer) *Hook {
	objectives := map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.95: 0.005, 0.99: 0.001}
	h := &Hook{
		commandCounter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "redis_commands_total",
			Help: "redis 命令执行次数",
		}, []string{"command", "status"}),
		commandDuration: prometheus.NewSummaryVec(prometheus.SummaryOpts{
			Name:       "redis_command_duration_seconds",
			Help:       "redis 命令耗时",
			Objectives: objectives,
		}, []string{"command"}),
		pipelineCounter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "redis_pipelines_total",
			Help: "redis 管道执行次数",
		}, []string{"status"}),
		pipelineDuration: prometheus.NewSummary(prometheus.SummaryOpts{
			Name:       "redis_pipeline_duration_seconds",
			Help:       "redis 管道耗时",
			Objectives: objectives,
		}),
		dialCounter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "redis_dials_total",
			Help: "redis 建立连接次数",
		}, []string{"status"}),
	}
	reg.MustRegister(h.commandCounter, h.commandDuration, h.pipelineCounter, h.pipelineDuration, h.dialCounter)
	return h
}

func (h *Hook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmd)
		h.commandDuration.WithLabelValues(cmd.Name()).Observe(time.Since(start).Seconds())
		h.commandCounter.WithLabelValues(cmd.Name(), status(err)).Inc()
		return err
	}
}

func (h *Hook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		if len(cmds) == 0 {
			return next(ctx, cmds)
		}
		start := time.Now()
		err := next(ctx, cmds)
		h.pipelineDuration.Observe(time.Since(start).Seconds())
		st := status(err)
		for _, cmd := range cmds {
			if status(cmd.Err()) == statusError {
				st = statusError
				break
			}
		}
		h.pipelineCounter.WithLabelValues(st).Inc()
		return err
	}
}

func (h *Hook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		conn, err := next(ctx, network, addr)
		h.dialCounter.WithLabelValues(status(err)).Inc()
		return conn, err
	}
}

// redis.Nil 不算错误
func status(err error) string {
	if err != nil && !errors.Is(err, redis.Nil) {
		return statusError
	}
	return statusSuccess
}
