//go:build e2e

package logevent_test

import (
	"context"
	"testing"
	"time"

	"gitee.com/flycash/school-notification/internal/domain"
	"gitee.com/flycash/school-notification/internal/event/logevent"
	testioc "gitee.com/flycash/school-notification/internal/test/ioc"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type SubscriberE2ESuite struct {
	suite.Suite
	producer logevent.Producer
	sub      *logevent.Subscriber
}

func TestSubscriberE2E(t *testing.T) {
	suite.Run(t, new(SubscriberE2ESuite))
}

func (s *SubscriberE2ESuite) SetupSuite() {
	s.producer = logevent.NewProducer(testioc.InitKafkaProducer())
	s.sub = logevent.NewSubscriber(logevent.NewKafkaConsumerFactory(testioc.KafkaAddr))
}

// 订阅之前产生的事件不会推送给新的订阅方
func (s *SubscriberE2ESuite) TestSubscribe_OnlyNewEvents() {
	t := s.T()
	// 每次运行使用不同的学校，避免受到之前运行留下的消息影响
	schoolID := time.Now().UnixNano()
	for id := uint64(1); id <= 3; id++ {
		require.NoError(t, s.producer.Produce(t.Context(), logevent.Event{
			Kind: logevent.KindCreated,
			Log:  domain.NotificationLog{ID: id, SchoolID: schoolID, Status: domain.LogStatusSent},
		}))
	}

	ctx, cancel := context.WithTimeout(t.Context(), 30*time.Second)
	defer cancel()
	ch, err := s.sub.Subscribe(ctx, domain.LogFilter{SchoolID: schoolID})
	require.NoError(t, err)

	// 分区分配是异步的，持续发送新事件直到收到为止
	received := make([]uint64, 0, 4)
	next := uint64(100)
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for len(received) == 0 {
		select {
		case <-ticker.C:
			require.NoError(t, s.producer.Produce(ctx, logevent.Event{
				Kind: logevent.KindCreated,
				Log:  domain.NotificationLog{ID: next, SchoolID: schoolID, Status: domain.LogStatusSent},
			}))
			next++
		case l := <-ch:
			received = append(received, l.ID)
		case <-ctx.Done():
			t.Fatal("没有收到订阅之后的事件")
		}
	}
	for _, id := range received {
		require.GreaterOrEqual(t, id, uint64(100), "收到了订阅之前的事件 %d", id)
	}
}
