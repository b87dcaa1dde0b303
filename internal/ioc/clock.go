package ioc

import (
	"time"

	"github.com/gotomicro/ego/core/econf"
)

// InitLocation 学校所在的时区，"今天"、免打扰和统计的按天分组都按这个时区计算
func InitLocation() *time.Location {
	name := econf.GetString("app.timezone")
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

func InitClock() func() time.Time {
	return time.Now
}
