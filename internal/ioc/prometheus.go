package ioc

import "github.com/prometheus/client_golang/prometheus"

// InitRegisterer ego 的治理端口会暴露默认注册器里的指标
func InitRegisterer() prometheus.Registerer {
	return prometheus.DefaultRegisterer
}
