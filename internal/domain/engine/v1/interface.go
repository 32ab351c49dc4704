package enginev1

import (
	"context"

	"github.com/google/uuid"

	bookv1 "github.com/DuckDuck5000/TradingSystem/internal/domain/book/v1"
	orderv1 "github.com/DuckDuck5000/TradingSystem/internal/domain/order/v1"
)

// Matcher defines the matching core as seen by its collaborators: the order
// processing loop and the HTTP gateway. Process is the sole mutation entry
// point for new orders; orders must come from the validating factory.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=enginev1_mock
type Matcher interface {
	// Process matches the incoming order against its instrument's book and
	// returns the executed trades, oldest first. The returned slice is empty,
	// never nil, when nothing crossed.
	Process(ctx context.Context, order *orderv1.Order) ([]orderv1.Trade, error)
	// CancelOrder cancels a resting order. Unknown ids and orders already in
	// a terminal state are a no-op.
	CancelOrder(ctx context.Context, id uuid.UUID) error
	// GetOrder returns a point-in-time copy of the order with the given id.
	GetOrder(ctx context.Context, id uuid.UUID) (orderv1.Order, error)
	// OrderBookSnapshot returns the aggregated book for an instrument.
	OrderBookSnapshot(ctx context.Context, instrumentID string) (*bookv1.Snapshot, error)
	// Trades returns the trade ledger, optionally filtered by instrument
	// (case-insensitive). An empty instrumentID returns everything.
	Trades(ctx context.Context, instrumentID string) []orderv1.Trade
}
