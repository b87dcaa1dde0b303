package ioc

import (
	"context"
	"fmt"
	"time"

	"gitee.com/flycash/school-notification/internal/event/logevent"
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

type KafkaConfig struct {
	Addr       string `yaml:"addr"`
	Partitions int    `yaml:"partitions"`
	Replicas   int    `yaml:"replicas"`
}

func InitKafkaConfig() KafkaConfig {
	cfg := KafkaConfig{Partitions: 1, Replicas: 1}
	if err := econf.UnmarshalKey("kafka", &cfg); err != nil {
		panic(err)
	}
	if cfg.Addr == "" {
		panic("kafka.addr 不能为空")
	}
	return cfg
}

// InitKafkaProducer 启动的时候确保 topic 存在
func InitKafkaProducer(cfg KafkaConfig) *kafka.Producer {
	initTopic(cfg)
	p, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": cfg.Addr,
		"client.id":         "school-notification",
	})
	if err != nil {
		panic(fmt.Sprintf("创建生产者失败: %v", err))
	}
	return p
}

func initTopic(cfg KafkaConfig) {
	adminClient, err := kafka.NewAdminClient(&kafka.ConfigMap{
		"bootstrap.servers": cfg.Addr,
	})
	if err != nil {
		panic(fmt.Sprintf("创建kafka连接失败: %v", err))
	}
	defer adminClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	results, err := adminClient.CreateTopics(ctx, []kafka.TopicSpecification{
		{
			Topic:             logevent.Topic,
			NumPartitions:     cfg.Partitions,
			ReplicationFactor: cfg.Replicas,
		},
	})
	if err != nil {
		panic(fmt.Sprintf("创建topic失败: %v", err))
	}
	for _, result := range results {
		if result.Error.Code() != kafka.ErrNoError && result.Error.Code() != kafka.ErrTopicAlreadyExists {
			panic(fmt.Sprintf("创建topic失败 %s: %v", result.Topic, result.Error))
		}
		elog.DefaultLogger.Info("topic 已就绪", elog.String("topic", result.Topic))
	}
}

func InitLogEventProducer(p *kafka.Producer) logevent.Producer {
	return logevent.NewProducer(p)
}

func InitLogSubscriber(cfg KafkaConfig) *logevent.Subscriber {
	return logevent.NewSubscriber(logevent.NewKafkaConsumerFactory(cfg.Addr))
}
