package ioc

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gitee.com/flycash/school-notification/internal/event/logevent"
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

const KafkaAddr = "localhost:9092"

var (
	producer     *kafka.Producer
	producerOnce sync.Once
)

// InitKafkaProducer 创建通知记录事件的 topic 并返回共享的生产者
func InitKafkaProducer() *kafka.Producer {
	producerOnce.Do(func() {
		InitTopic()
		p, err := kafka.NewProducer(&kafka.ConfigMap{
			"bootstrap.servers": KafkaAddr,
			"client.id":         "school-notification-test",
		})
		if err != nil {
			panic(fmt.Sprintf("创建生产者失败: %v", err))
		}
		producer = p
	})
	return producer
}

func InitTopic() {
	adminClient, err := kafka.NewAdminClient(&kafka.ConfigMap{
		"bootstrap.servers": KafkaAddr,
	})
	if err != nil {
		panic(fmt.Sprintf("创建kafka连接失败: %v", err))
	}
	defer adminClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	results, err := adminClient.CreateTopics(ctx, []kafka.TopicSpecification{
		{Topic: logevent.Topic, NumPartitions: 1, ReplicationFactor: 1},
	})
	if err != nil {
		panic(fmt.Sprintf("创建topic失败: %v", err))
	}
	for _, result := range results {
		if result.Error.Code() != kafka.ErrNoError && result.Error.Code() != kafka.ErrTopicAlreadyExists {
			panic(fmt.Sprintf("创建topic失败 %s: %v", result.Topic, result.Error))
		}
	}
}
