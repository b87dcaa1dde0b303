package logevent

import (
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

//go:generate mockgen -source=./kafka.go -package=evtmocks -destination=../mocks/kafka.mock.go -typed KafkaProducer,KafkaConsumer
type KafkaProducer interface {
	Produce(msg *kafka.Message, deliveryChan chan kafka.Event) error
}

type KafkaConsumer interface {
	SubscribeTopics(topics []string, rebalanceCb kafka.RebalanceCb) error
	ReadMessage(timeout time.Duration) (*kafka.Message, error)
	Close() error
}

// ConsumerFactory 按消费组创建消费者
type ConsumerFactory func(groupID string) (KafkaConsumer, error)

// ConsumerConfig 订阅方只关心订阅之后的变更，新的消费组从最新位置开始，也不提交进度
func ConsumerConfig(addr, groupID string) *kafka.ConfigMap {
	return &kafka.ConfigMap{
		"bootstrap.servers":  addr,
		"group.id":           groupID,
		"auto.offset.reset":  "latest",
		"enable.auto.commit": false,
	}
}

func NewKafkaConsumerFactory(addr string) ConsumerFactory {
	return func(groupID string) (KafkaConsumer, error) {
		c, err := kafka.NewConsumer(ConsumerConfig(addr, groupID))
		if err != nil {
			return nil, err
		}
		return c, nil
	}
}
