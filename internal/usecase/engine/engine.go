package engine

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	bookv1 "github.com/DuckDuck5000/TradingSystem/internal/domain/book/v1"
	orderv1 "github.com/DuckDuck5000/TradingSystem/internal/domain/order/v1"
	"github.com/DuckDuck5000/TradingSystem/pkg/errors"
	"github.com/DuckDuck5000/TradingSystem/pkg/logger"
)

// instrumentBook pairs a book with the mutex that serializes every operation
// touching that instrument. The mutex is held for the whole of a Process or
// CancelOrder call, so concurrent submitters on the same instrument always
// observe some serial ordering, while different instruments proceed in
// parallel.
type instrumentBook struct {
	mu   sync.Mutex
	book *bookv1.Book
}

// MatchingEngine owns every order book and the global trade ledger. All
// exposure is through returned copies; no caller ever holds a reference into
// book internals.
type MatchingEngine struct {
	mu    sync.RWMutex
	books map[string]*instrumentBook // canonical (upper-case) instrument id -> book

	ledgerMu sync.RWMutex
	ledger   []orderv1.Trade

	opts   Options
	logger logger.Interface
}

// New creates an empty matching engine.
func New(log logger.Interface, opts *Options) *MatchingEngine {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &MatchingEngine{
		books:  make(map[string]*instrumentBook),
		opts:   *opts,
		logger: log,
	}
}

// Process matches the incoming order against its instrument's book by
// price-time priority and returns the executed trades, oldest first. Any
// unfilled limit remainder rests in the book; a market remainder follows the
// configured RemainderPolicy.
func (e *MatchingEngine) Process(ctx context.Context, incoming *orderv1.Order) ([]orderv1.Trade, error) {
	if incoming == nil {
		return nil, errors.NewErrorDetails(
			"order cannot be nil", string(errors.GeneralBadRequestError), "order",
		)
	}

	ib := e.bookFor(incoming.InstrumentID())

	ib.mu.Lock()
	trades := match(ib.book, incoming)

	if incoming.Remaining().IsPositive() && incoming.IsActive() {
		if incoming.Type() == orderv1.OrderTypeMarket && e.opts.MarketRemainder == RemainderCancel {
			incoming.Cancel()
		} else {
			ib.book.Add(incoming)
		}
	}
	// Ledger appends and the status read happen before the instrument lock is
	// released: once the incoming order rests, another Process call may fill
	// it, and a later Process call on the same instrument must not get its
	// trades into the ledger first.
	if len(trades) > 0 {
		e.appendTrades(trades)
	}
	status := incoming.Status()
	ib.mu.Unlock()

	e.logger.DebugContext(ctx, "order processed",
		logger.Field{Key: "orderID", Value: incoming.ID().String()},
		logger.Field{Key: "instrument", Value: incoming.InstrumentID()},
		logger.Field{Key: "status", Value: status},
		logger.Field{Key: "trades", Value: len(trades)},
	)

	return trades, nil
}

// match runs the price-time priority loop. The caller holds the instrument
// lock.
func match(book *bookv1.Book, incoming *orderv1.Order) []orderv1.Trade {
	trades := make([]orderv1.Trade, 0)
	opposing := incoming.Side().Opposite()

	for incoming.Remaining().IsPositive() {
		resting := book.Front(opposing)
		if resting == nil {
			break // opposing side exhausted
		}

		// The front order sits at the best opposing price.
		bestPrice := resting.Price()
		if incoming.Type() == orderv1.OrderTypeLimit && !crosses(incoming, bestPrice) {
			break
		}

		matched := decimal.Min(incoming.Remaining(), resting.Remaining())

		// Execution price is the resting order's price: price improvement
		// goes to the passive side.
		var trade orderv1.Trade
		if incoming.IsBuy() {
			trade = orderv1.NewTrade(incoming.ID(), resting.ID(), incoming.InstrumentID(), bestPrice, matched)
		} else {
			trade = orderv1.NewTrade(resting.ID(), incoming.ID(), incoming.InstrumentID(), bestPrice, matched)
		}
		trades = append(trades, trade)

		incoming.Fill(matched)
		resting.Fill(matched)

		if resting.Status() == orderv1.StatusFilled {
			book.PopFront(opposing)
		}
	}

	return trades
}

// crosses reports whether a limit order is marketable against the best
// opposing price.
func crosses(incoming *orderv1.Order, bestPrice decimal.Decimal) bool {
	if incoming.IsBuy() {
		return incoming.Price().GreaterThanOrEqual(bestPrice)
	}
	return incoming.Price().LessThanOrEqual(bestPrice)
}

// CancelOrder cancels a resting order and removes it from its book. Unknown
// ids and orders already filled or canceled are a no-op.
func (e *MatchingEngine) CancelOrder(ctx context.Context, id uuid.UUID) error {
	for _, ib := range e.allBooks() {
		ib.mu.Lock()
		if o := ib.book.Order(id); o != nil {
			if o.IsActive() {
				o.Cancel()
				ib.book.Remove(o)
				e.logger.InfoContext(ctx, "order canceled",
					logger.Field{Key: "orderID", Value: id.String()},
					logger.Field{Key: "instrument", Value: o.InstrumentID()},
				)
			}
			ib.mu.Unlock()
			return nil
		}
		ib.mu.Unlock()
	}
	return nil
}

// GetOrder returns a point-in-time copy of the resting order with the given
// id. Orders that already left the books (filled or canceled) are not found.
func (e *MatchingEngine) GetOrder(ctx context.Context, id uuid.UUID) (orderv1.Order, error) {
	for _, ib := range e.allBooks() {
		ib.mu.Lock()
		if o := ib.book.Order(id); o != nil {
			copied := *o
			ib.mu.Unlock()
			return copied, nil
		}
		ib.mu.Unlock()
	}
	return orderv1.Order{}, errors.NewErrorDetails(
		"order not found", string(errors.OrderNotFoundError), "orderID",
	)
}

// OrderBookSnapshot returns the aggregated two-sided book for an instrument.
// An instrument the engine has never seen yields InstrumentNotFoundError.
func (e *MatchingEngine) OrderBookSnapshot(ctx context.Context, instrumentID string) (*bookv1.Snapshot, error) {
	e.mu.RLock()
	ib, ok := e.books[canonical(instrumentID)]
	e.mu.RUnlock()
	if !ok {
		return nil, errors.NewErrorDetails(
			"instrument not found", string(errors.InstrumentNotFoundError), "instrumentID",
		)
	}

	ib.mu.Lock()
	defer ib.mu.Unlock()
	return &bookv1.Snapshot{
		InstrumentID: ib.book.InstrumentID(),
		Bids:         ib.book.BidLevels(),
		Asks:         ib.book.AskLevels(),
	}, nil
}

// Trades returns a copy of the trade ledger, optionally filtered by
// instrument (case-insensitive exact match). An empty instrumentID returns
// everything.
func (e *MatchingEngine) Trades(ctx context.Context, instrumentID string) []orderv1.Trade {
	e.ledgerMu.RLock()
	defer e.ledgerMu.RUnlock()

	if strings.TrimSpace(instrumentID) == "" {
		out := make([]orderv1.Trade, len(e.ledger))
		copy(out, e.ledger)
		return out
	}

	out := make([]orderv1.Trade, 0)
	for _, t := range e.ledger {
		if strings.EqualFold(t.InstrumentID, instrumentID) {
			out = append(out, t)
		}
	}
	return out
}

// bookFor returns the instrument's book, creating it on first use.
func (e *MatchingEngine) bookFor(instrumentID string) *instrumentBook {
	key := canonical(instrumentID)

	e.mu.RLock()
	ib, ok := e.books[key]
	e.mu.RUnlock()
	if ok {
		return ib
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if ib, ok = e.books[key]; ok {
		return ib
	}
	ib = &instrumentBook{book: bookv1.NewBook(instrumentID)}
	e.books[key] = ib
	return ib
}

// allBooks returns a stable snapshot of the current books for id scans.
func (e *MatchingEngine) allBooks() []*instrumentBook {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]*instrumentBook, 0, len(e.books))
	for _, ib := range e.books {
		out = append(out, ib)
	}
	return out
}

// appendTrades appends to the global ledger. Callers hold their instrument
// lock, which keeps same-instrument trades in execution order; the ledger's
// own lock is only held for the append, so books of different instruments
// never serialize on each other.
func (e *MatchingEngine) appendTrades(trades []orderv1.Trade) {
	e.ledgerMu.Lock()
	e.ledger = append(e.ledger, trades...)
	e.ledgerMu.Unlock()
}

func canonical(instrumentID string) string {
	return strings.ToUpper(strings.TrimSpace(instrumentID))
}
