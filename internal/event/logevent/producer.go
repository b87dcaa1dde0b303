package logevent

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

//go:generate mockgen -source=./producer.go -package=evtmocks -destination=../mocks/log_event_producer.mock.go -typed Producer
type Producer interface {
	Produce(ctx context.Context, evt Event) error
}

type producer struct {
	producer KafkaProducer
	topic    string
}

func NewProducer(p KafkaProducer) Producer {
	return &producer{
		producer: p,
		topic:    Topic,
	}
}

// Produce 等待 broker 确认。同一个学校的事件落在同一个分区，保证顺序
func (p *producer) Produce(ctx context.Context, evt Event) error {
	val, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("序列化topic的消息失败 %w", err)
	}
	deliveryChan := make(chan kafka.Event, 1)
	err = p.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &p.topic, Partition: kafka.PartitionAny},
		Key:            []byte(strconv.FormatInt(evt.Log.SchoolID, 10)),
		Value:          val,
	}, deliveryChan)
	if err != nil {
		return fmt.Errorf("发送消息失败 %w", err)
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case e := <-deliveryChan:
		if m, ok := e.(*kafka.Message); ok && m.TopicPartition.Error != nil {
			return fmt.Errorf("消息投递失败 %w", m.TopicPartition.Error)
		}
		return nil
	}
}
