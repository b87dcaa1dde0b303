package ioc

import (
	"gitee.com/flycash/school-notification/internal/pkg/jwt"
	"github.com/gotomicro/ego/core/econf"
)

func InitJwtAuth() *jwt.JwtAuth {
	key := econf.GetString("jwt.key")
	if key == "" {
		panic("没有配置 jwt.key")
	}
	return jwt.NewJwtAuth(key)
}
