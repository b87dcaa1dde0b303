package ioc

import (
	"time"

	ca "github.com/patrickmn/go-cache"
)

func InitGoCache() *ca.Cache {
	return ca.New(time.Minute, 5*time.Minute)
}
