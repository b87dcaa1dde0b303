package logevent

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gitee.com/flycash/school-notification/internal/domain"
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/gofrs/uuid"
	"github.com/gotomicro/ego/core/elog"
)

const defaultPollInterval = 500 * time.Millisecond

// Subscriber 每次订阅使用独立的消费组，从最新位置开始消费，不会收到订阅之前的事件
type Subscriber struct {
	newConsumer  ConsumerFactory
	pollInterval time.Duration
	logger       *elog.Component
}

func NewSubscriber(newConsumer ConsumerFactory) *Subscriber {
	return &Subscriber{
		newConsumer:  newConsumer,
		pollInterval: defaultPollInterval,
		logger:       elog.DefaultLogger,
	}
}

// Subscribe 推送满足 filter 的记录，ctx 取消之后关闭返回的 channel
func (s *Subscriber) Subscribe(ctx context.Context, filter domain.LogFilter) (<-chan domain.NotificationLog, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	consumer, err := s.newConsumer("log_subscriber_" + id.String())
	if err != nil {
		return nil, err
	}
	if err = consumer.SubscribeTopics([]string{Topic}, nil); err != nil {
		_ = consumer.Close()
		return nil, err
	}

	out := make(chan domain.NotificationLog, 16)
	go func() {
		defer close(out)
		defer func() {
			if er := consumer.Close(); er != nil {
				s.logger.Warn("关闭消费者失败", elog.FieldErr(er))
			}
		}()
		for ctx.Err() == nil {
			msg, er := consumer.ReadMessage(s.pollInterval)
			if er != nil {
				var kErr kafka.Error
				if errors.As(er, &kErr) && kErr.Code() == kafka.ErrTimedOut {
					continue
				}
				s.logger.Warn("获取消息失败", elog.FieldErr(er))
				select {
				case <-ctx.Done():
				case <-time.After(s.pollInterval):
				}
				continue
			}
			var evt Event
			if er = json.Unmarshal(msg.Value, &evt); er != nil {
				s.logger.Warn("解析消息失败",
					elog.FieldErr(er),
					elog.Any("msg", msg.Value))
				continue
			}
			if !filter.Match(evt.Log) {
				continue
			}
			select {
			case out <- evt.Log:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}
