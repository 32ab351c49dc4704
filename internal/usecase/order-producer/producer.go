package orderproducer

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	messagev1 "github.com/DuckDuck5000/TradingSystem/internal/domain/message/v1"
	"github.com/DuckDuck5000/TradingSystem/pkg/config"
	"github.com/DuckDuck5000/TradingSystem/pkg/errors"
	"github.com/DuckDuck5000/TradingSystem/pkg/logger"
)

// Producer publishes accepted orders to the orders topic. It implements
// orderproducerv1.OrderProducer and is used by the HTTP gateway.
type Producer struct {
	writer *kafka.Writer
	logger logger.Interface
}

// NewProducer creates a Kafka writer for the order intake topic. Orders are
// keyed by instrument so a given instrument always lands on one partition
// and stays in submission order.
func NewProducer(cfg config.OrderTopic, log logger.Interface) *Producer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(cfg.Brokers...),
		Topic:    cfg.Topic,
		Balancer: &kafka.Hash{},
	}

	return &Producer{
		writer: writer,
		logger: log,
	}
}

// PublishOrder writes a single order message to the orders topic.
func (p *Producer) PublishOrder(ctx context.Context, msg *messagev1.OrderMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return errors.NewTracer(string(errors.MessageDecodeError)).Wrap(err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.InstrumentID),
		Value: payload,
	})
	if err != nil {
		p.logger.ErrorContext(ctx, errors.TracerFromError(err),
			logger.Field{Key: "operation", Value: "PublishOrder"},
			logger.Field{Key: "orderID", Value: msg.OrderID},
		)
		return errors.NewTracer(string(errors.KafkaPublishError)).Wrap(err)
	}

	p.logger.DebugContext(ctx, "order published",
		logger.Field{Key: "orderID", Value: msg.OrderID},
		logger.Field{Key: "instrument", Value: msg.InstrumentID},
	)

	return nil
}

// Close properly closes the Kafka writer.
func (p *Producer) Close() error {
	return p.writer.Close()
}
