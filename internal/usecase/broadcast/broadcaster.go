package broadcast

import (
	"context"
	"encoding/json"

	messagev1 "github.com/DuckDuck5000/TradingSystem/internal/domain/message/v1"
	orderv1 "github.com/DuckDuck5000/TradingSystem/internal/domain/order/v1"
	"github.com/DuckDuck5000/TradingSystem/pkg/errors"
	"github.com/DuckDuck5000/TradingSystem/pkg/logger"
	"github.com/DuckDuck5000/TradingSystem/pkg/redis"
)

// Broadcaster fans executed trades out over a Redis pub/sub channel so
// downstream consumers (tickers, UIs) see them without tailing Kafka.
// It implements broadcastv1.Broadcaster.
type Broadcaster struct {
	client  redis.Client
	channel string
	logger  logger.Interface
}

// NewBroadcaster wraps a connected Redis client.
func NewBroadcaster(client redis.Client, channel string, log logger.Interface) *Broadcaster {
	return &Broadcaster{
		client:  client,
		channel: channel,
		logger:  log,
	}
}

// BroadcastTrades publishes each trade to the configured channel. Broadcast
// is best effort: a publish failure triggers one reconnect-and-retry, and a
// failure past that is logged and returned, but the trades are already
// committed to the ledger and the trades topic.
func (b *Broadcaster) BroadcastTrades(ctx context.Context, trades []orderv1.Trade) error {
	for i := range trades {
		payload, err := json.Marshal(messagev1.FromTrade(trades[i]))
		if err != nil {
			return errors.NewTracer(string(errors.MessageDecodeError)).Wrap(err)
		}

		if err := b.publish(ctx, payload); err != nil {
			b.logger.ErrorContext(ctx, errors.TracerFromError(err),
				logger.Field{Key: "operation", Value: "BroadcastTrades"},
				logger.Field{Key: "tradeID", Value: trades[i].TradeID},
			)
			return err
		}
	}

	return nil
}

// publish writes one payload to the channel, reconnecting once if the first
// attempt fails on a stale connection.
func (b *Broadcaster) publish(ctx context.Context, payload []byte) error {
	_, err := b.client.Publish(ctx, b.channel, payload)
	if err == nil {
		return nil
	}

	b.logger.WarnContext(ctx, "trade broadcast failed, reconnecting",
		logger.Field{Key: "channel", Value: b.channel},
	)
	if !b.client.Reconnect(ctx) {
		return err
	}

	_, err = b.client.Publish(ctx, b.channel, payload)
	return err
}
