package engine

import (
	"context"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	broadcastv1 "github.com/DuckDuck5000/TradingSystem/internal/domain/broadcast/v1"
	enginev1 "github.com/DuckDuck5000/TradingSystem/internal/domain/engine/v1"
	messagev1 "github.com/DuckDuck5000/TradingSystem/internal/domain/message/v1"
	orderreaderv1 "github.com/DuckDuck5000/TradingSystem/internal/domain/order-reader/v1"
	orderv1 "github.com/DuckDuck5000/TradingSystem/internal/domain/order/v1"
	tradepublisherv1 "github.com/DuckDuck5000/TradingSystem/internal/domain/trade-publisher/v1"
	"github.com/DuckDuck5000/TradingSystem/pkg/errors"
	"github.com/DuckDuck5000/TradingSystem/pkg/logger"
)

// Engine drives the matching core: it consumes order messages, feeds them
// through the matcher, and fans executed trades out to the trades topic and
// the broadcast channel.
type Engine struct {
	matcher     enginev1.Matcher
	orderReader orderreaderv1.OrderReader
	publisher   tradepublisherv1.TradePublisher
	broadcaster broadcastv1.Broadcaster
	logger      logger.Interface

	// Shutdown coordination
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	readBackoff time.Duration

	// Trade statistics
	totalTrades int64
	tradesMutex sync.RWMutex
}

// NewEngine creates a new instance of Engine with the provided dependencies.
func NewEngine(
	matcher enginev1.Matcher,
	orderReader orderreaderv1.OrderReader,
	publisher tradepublisherv1.TradePublisher,
	broadcaster broadcastv1.Broadcaster,
	log logger.Interface,
) *Engine {
	return NewEngineWithOptions(matcher, orderReader, publisher, broadcaster, log, DefaultEngineOptions())
}

// NewEngineWithOptions creates a new engine with custom options.
func NewEngineWithOptions(
	matcher enginev1.Matcher,
	orderReader orderreaderv1.OrderReader,
	publisher tradepublisherv1.TradePublisher,
	broadcaster broadcastv1.Broadcaster,
	log logger.Interface,
	options *Options,
) *Engine {
	return &Engine{
		matcher:     matcher,
		orderReader: orderReader,
		publisher:   publisher,
		broadcaster: broadcaster,
		logger:      log,
		readBackoff: options.ReadBackoff,
	}
}

// Start launches the order processing routine.
func (e *Engine) Start(ctx context.Context) error {
	e.ctx, e.cancel = context.WithCancel(ctx)

	e.wg.Add(1)
	go e.runOrderProcessor()

	e.logger.Info("engine started")

	return nil
}

// Stop gracefully shuts down the engine.
func (e *Engine) Stop(ctx context.Context) error {
	if e.cancel != nil {
		e.cancel()
	}

	// Wait for goroutines to finish with timeout
	done := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		e.logger.Info("engine stopped gracefully")
		return nil
	case <-ctx.Done():
		e.logger.Warn("engine stop timeout exceeded")
		return ctx.Err()
	}
}

// runOrderProcessor combines order reading and processing in a single goroutine.
func (e *Engine) runOrderProcessor() {
	defer e.wg.Done()

	e.logger.Info("starting order processor")

	for {
		select {
		case <-e.ctx.Done():
			e.logger.Info("order processor shutting down")
			e.orderReader.Close()
			return
		default:
			msg, orderMsg, err := e.orderReader.ReadMessage(e.ctx)
			if err != nil {
				// A decode failure still carries the raw message; commit
				// it so the poison payload is not re-read forever.
				if errors.ErrorCodeEquals(err, errors.MessageDecodeError) {
					e.commit(msg)
					continue
				}
				if e.ctx.Err() != nil {
					continue
				}
				e.logger.ErrorContext(e.ctx, err, logger.Field{
					Key:   "action",
					Value: "read_order_message",
				})
				time.Sleep(e.readBackoff)
				continue
			}

			e.commit(msg)

			if err := e.processMessage(orderMsg); err != nil {
				e.logger.ErrorContext(e.ctx, err, logger.Field{
					Key:   "action",
					Value: "process_order",
				}, logger.Field{
					Key:   "offset",
					Value: msg.Offset,
				})
				continue
			}
		}
	}
}

// processMessage turns a wire message into a domain order, matches it and
// publishes whatever trades came out.
func (e *Engine) processMessage(msg *messagev1.OrderMessage) error {
	order, err := msg.ToOrder()
	if err != nil {
		// Validation failures are rejected, not retried.
		return err
	}

	e.logger.Debug("processing order",
		logger.Field{Key: "orderID", Value: order.ID()},
		logger.Field{Key: "instrument", Value: order.InstrumentID()},
		logger.Field{Key: "side", Value: order.Side()},
		logger.Field{Key: "type", Value: order.Type()},
	)

	trades, err := e.matcher.Process(e.ctx, order)
	if err != nil {
		return err
	}

	if len(trades) > 0 {
		e.publishTrades(trades)
	}

	return nil
}

// publishTrades sends trades downstream and updates statistics. Publish
// failures are logged but do not stop the processor: the ledger already
// holds the trades.
func (e *Engine) publishTrades(trades []orderv1.Trade) {
	e.tradesMutex.Lock()
	e.totalTrades += int64(len(trades))
	currentTotal := e.totalTrades
	e.tradesMutex.Unlock()

	e.logger.Info("trades executed",
		logger.Field{Key: "tradeCount", Value: len(trades)},
		logger.Field{Key: "totalTrades", Value: currentTotal},
	)

	if err := e.publisher.PublishTrades(e.ctx, trades); err != nil {
		e.logger.ErrorContext(e.ctx, err, logger.Field{
			Key:   "action",
			Value: "publish_trades",
		})
	}

	if err := e.broadcaster.BroadcastTrades(e.ctx, trades); err != nil {
		e.logger.ErrorContext(e.ctx, err, logger.Field{
			Key:   "action",
			Value: "broadcast_trades",
		})
	}
}

func (e *Engine) commit(msg kafka.Message) {
	if err := e.orderReader.CommitMessages(e.ctx, msg); err != nil {
		e.logger.ErrorContext(e.ctx, err, logger.Field{
			Key:   "action",
			Value: "commit_order_message",
		})
	}
}

// GetTotalTrades returns the total number of trades published so far.
func (e *Engine) GetTotalTrades() int64 {
	e.tradesMutex.RLock()
	defer e.tradesMutex.RUnlock()
	return e.totalTrades
}
