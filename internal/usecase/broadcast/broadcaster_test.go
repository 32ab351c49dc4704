package broadcast

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	messagev1 "github.com/DuckDuck5000/TradingSystem/internal/domain/message/v1"
	orderv1 "github.com/DuckDuck5000/TradingSystem/internal/domain/order/v1"
	"github.com/DuckDuck5000/TradingSystem/pkg/errors"
	"github.com/DuckDuck5000/TradingSystem/pkg/logger"
	redis_mock "github.com/DuckDuck5000/TradingSystem/pkg/redis/mock"
)

func newTrade() orderv1.Trade {
	return orderv1.NewTrade(uuid.New(), uuid.New(), "BTC-USD",
		decimal.RequireFromString("100"), decimal.RequireFromString("1"))
}

func TestBroadcaster_BroadcastTrades(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := redis_mock.NewMockClient(ctrl)

	log, err := logger.NewLogger(logger.WithLoggingLevel(logger.ErrorLevel))
	require.NoError(t, err)

	trade := newTrade()

	var payload []byte
	client.EXPECT().Publish(gomock.Any(), "exchange.trades", gomock.Any()).DoAndReturn(
		func(ctx context.Context, channel string, message any) (int64, error) {
			payload = message.([]byte)
			return 1, nil
		},
	)

	b := NewBroadcaster(client, "exchange.trades", log)
	require.NoError(t, b.BroadcastTrades(context.Background(), []orderv1.Trade{trade}))

	var decoded messagev1.TradeMessage
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, trade.TradeID.String(), decoded.TradeID)
	assert.Equal(t, "BTC-USD", decoded.InstrumentID)
	assert.True(t, decoded.Price.Equal(decimal.RequireFromString("100")))
}

func TestBroadcaster_PublishFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := redis_mock.NewMockClient(ctrl)

	log, err := logger.NewLogger(logger.WithLoggingLevel(logger.ErrorLevel))
	require.NoError(t, err)

	// First publish fails and the connection cannot be re-established.
	client.EXPECT().Publish(gomock.Any(), "exchange.trades", gomock.Any()).Return(int64(0),
		errors.NewErrorDetails("redis down", string(errors.RedisPublishError), ""),
	)
	client.EXPECT().Reconnect(gomock.Any()).Return(false)

	b := NewBroadcaster(client, "exchange.trades", log)
	err = b.BroadcastTrades(context.Background(), []orderv1.Trade{newTrade()})
	require.Error(t, err)
}

func TestBroadcaster_PublishRetriesAfterReconnect(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := redis_mock.NewMockClient(ctrl)

	log, err := logger.NewLogger(logger.WithLoggingLevel(logger.ErrorLevel))
	require.NoError(t, err)

	gomock.InOrder(
		client.EXPECT().Publish(gomock.Any(), "exchange.trades", gomock.Any()).Return(int64(0),
			errors.NewErrorDetails("redis down", string(errors.RedisPublishError), ""),
		),
		client.EXPECT().Reconnect(gomock.Any()).Return(true),
		client.EXPECT().Publish(gomock.Any(), "exchange.trades", gomock.Any()).Return(int64(1), nil),
	)

	b := NewBroadcaster(client, "exchange.trades", log)
	require.NoError(t, b.BroadcastTrades(context.Background(), []orderv1.Trade{newTrade()}))
}

func TestBroadcaster_NoTrades(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := redis_mock.NewMockClient(ctrl)

	log, err := logger.NewLogger(logger.WithLoggingLevel(logger.ErrorLevel))
	require.NoError(t, err)

	// No Publish expectation: an empty batch must not touch the client.
	b := NewBroadcaster(client, "exchange.trades", log)
	require.NoError(t, b.BroadcastTrades(context.Background(), nil))
}
