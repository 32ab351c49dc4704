package orderproducerv1

import (
	"context"

	messagev1 "github.com/DuckDuck5000/TradingSystem/internal/domain/message/v1"
)

// OrderProducer defines the interface for submitting order messages to the
// intake topic. The HTTP gateway uses it; the matching engine never does.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=orderproducerv1_mock
type OrderProducer interface {
	// PublishOrder publishes an order message to the orders topic.
	PublishOrder(ctx context.Context, msg *messagev1.OrderMessage) error
	// Close closes the producer.
	Close() error
}
