package broadcastv1

import (
	"context"

	orderv1 "github.com/DuckDuck5000/TradingSystem/internal/domain/order/v1"
)

// Broadcaster defines the interface for fanning executed trades out to
// market-data subscribers.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=broadcastv1_mock
type Broadcaster interface {
	// BroadcastTrades publishes executed trades to the market-data channel.
	BroadcastTrades(ctx context.Context, trades []orderv1.Trade) error
}
