package tradepublisher

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	messagev1 "github.com/DuckDuck5000/TradingSystem/internal/domain/message/v1"
	orderv1 "github.com/DuckDuck5000/TradingSystem/internal/domain/order/v1"
	"github.com/DuckDuck5000/TradingSystem/pkg/config"
	"github.com/DuckDuck5000/TradingSystem/pkg/errors"
	"github.com/DuckDuck5000/TradingSystem/pkg/logger"
)

// Publisher writes executed trades to the trades topic. It implements
// tradepublisherv1.TradePublisher.
type Publisher struct {
	writer *kafka.Writer
	logger logger.Interface
}

// NewPublisher creates a Kafka writer for the trades topic.
func NewPublisher(cfg config.TradeTopic, log logger.Interface) *Publisher {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(cfg.Brokers...),
		Topic:    cfg.Topic,
		Balancer: &kafka.Hash{},
	}

	return &Publisher{
		writer: writer,
		logger: log,
	}
}

// PublishTrades writes one message per trade, keyed by instrument. The batch
// goes out in a single WriteMessages call so a match that produced several
// trades is published as one unit from the writer's point of view.
func (p *Publisher) PublishTrades(ctx context.Context, trades []orderv1.Trade) error {
	if len(trades) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(trades))
	for i := range trades {
		payload, err := json.Marshal(messagev1.FromTrade(trades[i]))
		if err != nil {
			return errors.NewTracer(string(errors.MessageDecodeError)).Wrap(err)
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(trades[i].InstrumentID),
			Value: payload,
		})
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		p.logger.ErrorContext(ctx, errors.TracerFromError(err),
			logger.Field{Key: "operation", Value: "PublishTrades"},
			logger.Field{Key: "count", Value: len(trades)},
		)
		return errors.NewTracer(string(errors.KafkaPublishError)).Wrap(err)
	}

	p.logger.DebugContext(ctx, "trades published",
		logger.Field{Key: "count", Value: len(trades)},
		logger.Field{Key: "instrument", Value: trades[0].InstrumentID},
	)

	return nil
}

// Close properly closes the Kafka writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
