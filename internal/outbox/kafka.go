package outbox

import (
	"context"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/segmentio/kafka-go"
)

type kafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher пишет в топик, указанный в каждом сообщении. Ключ сообщения id заказа,
// поэтому события одного заказа попадают в одну партицию.
func NewKafkaPublisher(brokers []string, batchTimeout time.Duration) *kafkaPublisher {
	return &kafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Balancer:               &kafka.Hash{},
			BatchTimeout:           batchTimeout,
			RequiredAcks:           kafka.RequireAll,
			AllowAutoTopicCreation: true,
		},
	}
}

func (p *kafkaPublisher) Publish(ctx context.Context, msgs []entities.OutboxMessage) error {
	return p.writer.WriteMessages(ctx, toKafkaMessages(msgs)...)
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

func toKafkaMessages(msgs []entities.OutboxMessage) []kafka.Message {
	res := make([]kafka.Message, 0, len(msgs))
	for _, m := range msgs {
		res = append(res, kafka.Message{
			Topic: m.Topic,
			Key:   []byte(m.Key),
			Value: m.Payload,
			Headers: []kafka.Header{
				{Key: "event_id", Value: []byte(m.EventID)},
			},
		})
	}
	return res
}
