package cache

import (
	"context"
	"fmt"
	"time"

	"gitee.com/flycash/school-notification/internal/domain"
	"github.com/pkg/errors"
)

const (
	TwilioConfigPrefix = "twilio_config"
	DefaultExpiredTime = 10 * time.Minute
)

var ErrKeyNotFound = errors.New("key not found")

type TwilioConfigCache interface {
	Get(ctx context.Context, schoolID int64) (domain.TwilioConfig, error)
	Set(ctx context.Context, cfg domain.TwilioConfig) error
	Del(ctx context.Context, schoolID int64) error
}

func TwilioConfigKey(schoolID int64) string {
	return fmt.Sprintf("%s:%d", TwilioConfigPrefix, schoolID)
}
