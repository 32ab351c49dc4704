package orderreader

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	messagev1 "github.com/DuckDuck5000/TradingSystem/internal/domain/message/v1"
	"github.com/DuckDuck5000/TradingSystem/pkg/config"
	"github.com/DuckDuck5000/TradingSystem/pkg/errors"
	"github.com/DuckDuck5000/TradingSystem/pkg/logger"
)

// Reader consumes order messages from the orders topic. It implements
// orderreaderv1.OrderReader.
type Reader struct {
	kafkaReader *kafka.Reader
	logger      logger.Interface
}

// NewReader creates a Kafka reader for the order intake topic.
func NewReader(cfg config.OrderTopic, log logger.Interface) *Reader {
	kafkaReader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Brokers,
		Topic:    cfg.Topic,
		GroupID:  cfg.GroupID,
		MinBytes: 1,
		MaxBytes: 10e6,
	})

	return &Reader{
		kafkaReader: kafkaReader,
		logger:      log,
	}
}

// ReadMessage reads the next message from the orders topic and decodes it.
// A read failure and a malformed payload are distinct errors so the caller
// can keep consuming after a bad message.
func (r *Reader) ReadMessage(ctx context.Context) (kafka.Message, *messagev1.OrderMessage, error) {
	msg, err := r.kafkaReader.ReadMessage(ctx)
	if err != nil {
		return kafka.Message{}, nil, errors.NewTracer(string(errors.KafkaReadError)).Wrap(err)
	}

	var order messagev1.OrderMessage
	if err := json.Unmarshal(msg.Value, &order); err != nil {
		r.logger.Error(errors.TracerFromError(err),
			logger.Field{Key: "operation", Value: "UnmarshalOrder"},
			logger.Field{Key: "offset", Value: msg.Offset},
		)
		return msg, nil, errors.NewErrorDetails(
			"malformed order message", string(errors.MessageDecodeError), "payload",
		)
	}
	order.Offset = msg.Offset

	r.logger.Debug("order message received",
		logger.Field{Key: "orderID", Value: order.OrderID},
		logger.Field{Key: "instrument", Value: order.InstrumentID},
		logger.Field{Key: "side", Value: order.Side},
		logger.Field{Key: "type", Value: order.Type},
		logger.Field{Key: "offset", Value: msg.Offset},
	)

	return msg, &order, nil
}

// CommitMessages commits the messages after processing.
func (r *Reader) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	if err := r.kafkaReader.CommitMessages(ctx, msgs...); err != nil {
		return errors.NewTracer(string(errors.KafkaReadError)).Wrap(err)
	}
	return nil
}

// Close properly closes the Kafka reader.
func (r *Reader) Close() error {
	return r.kafkaReader.Close()
}
