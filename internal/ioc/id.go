package ioc

import (
	"time"

	"gitee.com/flycash/school-notification/internal/service/deliverylog"
	"github.com/gotomicro/ego/core/econf"
	"github.com/sony/sonyflake"
)

func InitIDGenerator() deliverylog.IDGenerator {
	type Config struct {
		// MachineID 多实例部署的时候需要各不相同，0 表示使用私有 IP 的低 16 位
		MachineID uint16 `yaml:"machineId"`
	}
	var cfg Config
	if err := econf.UnmarshalKey("idgen", &cfg); err != nil {
		panic(err)
	}
	st := sonyflake.Settings{
		StartTime: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if cfg.MachineID != 0 {
		st.MachineID = func() (uint16, error) {
			return cfg.MachineID, nil
		}
	}
	sf, err := sonyflake.New(st)
	if err != nil {
		panic(err)
	}
	return sf
}
