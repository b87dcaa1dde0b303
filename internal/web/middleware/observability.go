package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

type ObservabilityBuilder struct {
	apiDurationHistogram *prometheus.HistogramVec
}

// NewObservabilityBuilder 指标注册到 reg 上
func NewObservabilityBuilder(reg prometheus.Registerer) *ObservabilityBuilder {
	h := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_server_handling_seconds",
			Help:    "HTTP 接口响应耗时（秒）",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
	reg.MustRegister(h)
	return &ObservabilityBuilder{apiDurationHistogram: h}
}

func (b *ObservabilityBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		startTime := time.Now()
		ctx.Next()
		b.apiDurationHistogram.WithLabelValues(
			ctx.Request.Method,
			ctx.FullPath(),
			strconv.Itoa(ctx.Writer.Status()),
		).Observe(time.Since(startTime).Seconds())
	}
}
