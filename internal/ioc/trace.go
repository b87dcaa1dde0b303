package ioc

import (
	"context"
	"time"

	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// InitZipkinTracer 没有配置 zipkin 地址的时候不上报。返回的函数在退出的时候调用
func InitZipkinTracer() func(ctx context.Context) error {
	type Config struct {
		URL         string `yaml:"url"`
		ServiceName string `yaml:"serviceName"`
	}
	cfg := Config{ServiceName: "school-notification"}
	if err := econf.UnmarshalKey("trace.zipkin", &cfg); err != nil {
		panic(err)
	}
	if cfg.URL == "" {
		elog.DefaultLogger.Info("没有配置 zipkin，不上报链路")
		return func(context.Context) error { return nil }
	}
	exporter, err := zipkin.New(cfg.URL)
	if err != nil {
		panic(err)
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(time.Second)),
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", cfg.ServiceName),
		)),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown
}
