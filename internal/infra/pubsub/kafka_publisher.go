package pubsub

import (
	"context"
	"strings"
	"time"

	"agrimatch/internal/domain/constants"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

// kafkaWriter is the part of *kafka.Writer the transport uses.
type kafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// kafkaTransport publishes to a Kafka topic, keyed so events of one pairing
// stay ordered within a partition.
type kafkaTransport struct {
	writer kafkaWriter
}

// parseBrokers splits a comma separated broker list.
func parseBrokers(brokers string) []string {
	var list []string
	for _, b := range strings.Split(brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			list = append(list, b)
		}
	}

	return list
}

func newKafkaTransport(brokers []string, topic string) *kafkaTransport {
	return &kafkaTransport{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			BatchSize:              100,
			BatchTimeout:           10 * time.Millisecond,
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		},
	}
}

func (t *kafkaTransport) name() string { return constants.PubSubProviderKafka }

func (t *kafkaTransport) send(ctx context.Context, msg *message) error {
	headers := make([]kafka.Header, 0, len(msg.Attributes)+1)
	headers = append(headers, kafka.Header{Key: "message_id", Value: []byte(msg.ID)})
	for k, v := range msg.Attributes {
		headers = append(headers, kafka.Header{Key: k, Value: []byte(v)})
	}

	if err := t.writer.WriteMessages(ctx, kafka.Message{
		Key:     []byte(msg.Key),
		Value:   msg.Data,
		Headers: headers,
	}); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (t *kafkaTransport) close() error {
	return errors.WithStack(t.writer.Close())
}
