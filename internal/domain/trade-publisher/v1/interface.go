package tradepublisherv1

import (
	"context"

	orderv1 "github.com/DuckDuck5000/TradingSystem/internal/domain/order/v1"
)

// TradePublisher defines the interface for publishing executed trades.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=tradepublisherv1_mock
type TradePublisher interface {
	// PublishTrades publishes executed trades to the trades topic.
	PublishTrades(ctx context.Context, trades []orderv1.Trade) error
	// Close closes the publisher.
	Close() error
}
