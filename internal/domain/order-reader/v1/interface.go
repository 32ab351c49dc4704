package orderreaderv1

import (
	"context"

	"github.com/segmentio/kafka-go"

	messagev1 "github.com/DuckDuck5000/TradingSystem/internal/domain/message/v1"
)

// OrderReader defines the interface for reading order messages from the
// intake topic.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=orderreaderv1_mock
type OrderReader interface {
	// ReadMessage reads the next message and returns the raw message plus the
	// decoded order payload.
	ReadMessage(ctx context.Context) (kafka.Message, *messagev1.OrderMessage, error)
	// CommitMessages commits the messages after processing.
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	// Close closes the reader.
	Close() error
}
