//go:build unit

package logevent_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"gitee.com/flycash/school-notification/internal/domain"
	"gitee.com/flycash/school-notification/internal/event/logevent"
	evtmocks "gitee.com/flycash/school-notification/internal/event/mocks"
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestConsumerConfig(t *testing.T) {
	t.Parallel()
	cfg := logevent.ConsumerConfig("localhost:9092", "g1")

	reset, err := cfg.Get("auto.offset.reset", nil)
	require.NoError(t, err)
	assert.Equal(t, "latest", reset)
	commit, err := cfg.Get("enable.auto.commit", nil)
	require.NoError(t, err)
	assert.Equal(t, false, commit)
	group, err := cfg.Get("group.id", nil)
	require.NoError(t, err)
	assert.Equal(t, "g1", group)
}

// fakeStream 按顺序吐出消息，没有消息的时候按超时处理
type fakeStream struct {
	msgs chan *kafka.Message
}

func (f *fakeStream) read(timeout time.Duration) (*kafka.Message, error) {
	select {
	case m := <-f.msgs:
		return m, nil
	case <-time.After(timeout):
		return nil, kafka.NewError(kafka.ErrTimedOut, "timed out", false)
	}
}

func eventMsg(t *testing.T, evt logevent.Event) *kafka.Message {
	val, err := json.Marshal(evt)
	require.NoError(t, err)
	return &kafka.Message{Value: val}
}

func TestSubscriber_Subscribe(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stream := &fakeStream{msgs: make(chan *kafka.Message, 8)}
	consumer := evtmocks.NewMockKafkaConsumer(ctrl)
	consumer.EXPECT().SubscribeTopics([]string{logevent.Topic}, gomock.Nil()).Return(nil)
	consumer.EXPECT().ReadMessage(gomock.Any()).DoAndReturn(stream.read).AnyTimes()
	consumer.EXPECT().Close().Return(nil)

	var groupID string
	sub := logevent.NewSubscriber(func(id string) (logevent.KafkaConsumer, error) {
		groupID = id
		return consumer, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, err := sub.Subscribe(ctx, domain.LogFilter{
		SchoolID: 1,
		Status:   domain.LogStatusFailed,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(groupID, "log_subscriber_"))

	// 状态不匹配
	stream.msgs <- eventMsg(t, logevent.Event{Kind: logevent.KindCreated, Log: domain.NotificationLog{
		ID: 1, SchoolID: 1, Status: domain.LogStatusSent,
	}})
	// 无法解析
	stream.msgs <- &kafka.Message{Value: []byte("not json")}
	// 学校不匹配
	stream.msgs <- eventMsg(t, logevent.Event{Kind: logevent.KindCreated, Log: domain.NotificationLog{
		ID: 2, SchoolID: 2, Status: domain.LogStatusFailed,
	}})
	stream.msgs <- eventMsg(t, logevent.Event{Kind: logevent.KindUpdated, Log: domain.NotificationLog{
		ID: 3, SchoolID: 1, Status: domain.LogStatusFailed, ErrorMessage: "undelivered",
	}})

	select {
	case l := <-ch:
		assert.Equal(t, uint64(3), l.ID)
		assert.Equal(t, "undelivered", l.ErrorMessage)
	case <-time.After(3 * time.Second):
		t.Fatal("没有收到事件")
	}

	cancel()
	assert.Eventually(t, func() bool {
		select {
		case _, ok := <-ch:
			return !ok
		default:
			return false
		}
	}, 3*time.Second, 10*time.Millisecond)
}

func TestSubscriber_SubscribeUsesFreshGroup(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var (
		mu     sync.Mutex
		groups []string
	)
	sub := logevent.NewSubscriber(func(id string) (logevent.KafkaConsumer, error) {
		mu.Lock()
		groups = append(groups, id)
		mu.Unlock()
		consumer := evtmocks.NewMockKafkaConsumer(ctrl)
		consumer.EXPECT().SubscribeTopics(gomock.Any(), gomock.Any()).Return(nil)
		consumer.EXPECT().ReadMessage(gomock.Any()).
			Return(nil, kafka.NewError(kafka.ErrTimedOut, "timed out", false)).AnyTimes()
		consumer.EXPECT().Close().Return(nil)
		return consumer, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	ch1, err := sub.Subscribe(ctx, domain.LogFilter{})
	require.NoError(t, err)
	ch2, err := sub.Subscribe(ctx, domain.LogFilter{})
	require.NoError(t, err)
	cancel()
	for range ch1 {
	}
	for range ch2 {
	}

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, groups, 2)
	assert.NotEqual(t, groups[0], groups[1])
}

func TestSubscriber_SubscribeTopicsFailed(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	consumer := evtmocks.NewMockKafkaConsumer(ctrl)
	consumer.EXPECT().SubscribeTopics(gomock.Any(), gomock.Any()).Return(errors.New("mock kafka error"))
	consumer.EXPECT().Close().Return(nil)

	sub := logevent.NewSubscriber(func(string) (logevent.KafkaConsumer, error) {
		return consumer, nil
	})
	_, err := sub.Subscribe(t.Context(), domain.LogFilter{})
	assert.Error(t, err)
}

func TestProducer_Produce(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		deliverErr error
		produceErr error
		wantErr    bool
	}{
		{name: "投递成功"},
		{name: "投递失败", deliverErr: errors.New("mock broker error"), wantErr: true},
		{name: "发送失败", produceErr: errors.New("mock queue full"), wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			evt := logevent.Event{Kind: logevent.KindCreated, Log: domain.NotificationLog{ID: 7, SchoolID: 12}}
			kp := evtmocks.NewMockKafkaProducer(ctrl)
			kp.EXPECT().Produce(gomock.Any(), gomock.Any()).
				DoAndReturn(func(msg *kafka.Message, deliveryChan chan kafka.Event) error {
					require.NotNil(t, msg.TopicPartition.Topic)
					assert.Equal(t, logevent.Topic, *msg.TopicPartition.Topic)
					assert.Equal(t, "12", string(msg.Key))
					var got logevent.Event
					assert.NoError(t, json.Unmarshal(msg.Value, &got))
					assert.Equal(t, evt, got)
					if tc.produceErr != nil {
						return tc.produceErr
					}
					msg.TopicPartition.Error = tc.deliverErr
					deliveryChan <- msg
					return nil
				})

			err := logevent.NewProducer(kp).Produce(t.Context(), evt)
			assert.Equal(t, tc.wantErr, err != nil)
		})
	}
}
