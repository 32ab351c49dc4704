package bookv1

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	orderv1 "github.com/DuckDuck5000/TradingSystem/internal/domain/order/v1"
	"github.com/DuckDuck5000/TradingSystem/pkg/errors"
)

// levels keeps a book side ordered best-first: descending prices for bids,
// ascending for asks. Lookup and ordered traversal share the same slice;
// inserts binary-search the position, so best-price queries stay O(1) and
// inserts O(log n) search plus a memmove.
type levels struct {
	ordered   []*Level
	ascending bool // asks: true, bids: false
}

// search returns the index of the level with the given price, or the index
// where it would be inserted.
func (ls *levels) search(price decimal.Decimal) int {
	return sort.Search(len(ls.ordered), func(i int) bool {
		cmp := ls.ordered[i].price.Cmp(price)
		if ls.ascending {
			return cmp >= 0
		}
		return cmp <= 0
	})
}

func (ls *levels) get(price decimal.Decimal) *Level {
	i := ls.search(price)
	if i < len(ls.ordered) && ls.ordered[i].price.Equal(price) {
		return ls.ordered[i]
	}
	return nil
}

func (ls *levels) getOrCreate(price decimal.Decimal) *Level {
	i := ls.search(price)
	if i < len(ls.ordered) && ls.ordered[i].price.Equal(price) {
		return ls.ordered[i]
	}
	lvl := newLevel(price)
	ls.ordered = append(ls.ordered, nil)
	copy(ls.ordered[i+1:], ls.ordered[i:])
	ls.ordered[i] = lvl
	return lvl
}

func (ls *levels) drop(lvl *Level) {
	i := ls.search(lvl.price)
	if i < len(ls.ordered) && ls.ordered[i] == lvl {
		ls.ordered = append(ls.ordered[:i], ls.ordered[i+1:]...)
	}
}

func (ls *levels) best() *Level {
	if len(ls.ordered) == 0 {
		return nil
	}
	return ls.ordered[0]
}

// Book holds the resting orders of a single instrument: bids ordered
// descending, asks ascending, FIFO inside each price level. Every order in
// the book is active and has remaining quantity; an emptied level is removed
// immediately. The book itself is not goroutine safe - the engine serializes
// access per instrument.
type Book struct {
	instrumentID string
	bids         levels
	asks         levels
	orders       map[uuid.UUID]*orderv1.Order
}

// NewBook creates an empty book for the given instrument.
func NewBook(instrumentID string) *Book {
	return &Book{
		instrumentID: instrumentID,
		bids:         levels{ascending: false},
		asks:         levels{ascending: true},
		orders:       make(map[uuid.UUID]*orderv1.Order),
	}
}

// InstrumentID returns the instrument this book belongs to.
func (b *Book) InstrumentID() string { return b.instrumentID }

// HasBids reports whether the bid side has at least one level.
func (b *Book) HasBids() bool { return len(b.bids.ordered) > 0 }

// HasAsks reports whether the ask side has at least one level.
func (b *Book) HasAsks() bool { return len(b.asks.ordered) > 0 }

// BestBid returns the highest bid price.
func (b *Book) BestBid() (decimal.Decimal, error) {
	if lvl := b.bids.best(); lvl != nil {
		return lvl.price, nil
	}
	return decimal.Zero, errors.NewErrorDetails(
		"bid side is empty", string(errors.BookSideEmptyError), "bids",
	)
}

// BestAsk returns the lowest ask price.
func (b *Book) BestAsk() (decimal.Decimal, error) {
	if lvl := b.asks.best(); lvl != nil {
		return lvl.price, nil
	}
	return decimal.Zero, errors.NewErrorDetails(
		"ask side is empty", string(errors.BookSideEmptyError), "asks",
	)
}

// Front returns the oldest resting order at the best price on the given side,
// or nil when that side is empty.
func (b *Book) Front(side orderv1.Side) *orderv1.Order {
	if lvl := b.side(side).best(); lvl != nil {
		return lvl.Head()
	}
	return nil
}

// PopFront removes the head order of the best level on the given side,
// deleting the level if it becomes empty. Returns the removed order, or nil
// when the side is empty.
func (b *Book) PopFront(side orderv1.Side) *orderv1.Order {
	ls := b.side(side)
	lvl := ls.best()
	if lvl == nil {
		return nil
	}
	o := lvl.popHead()
	if o != nil {
		delete(b.orders, o.ID())
	}
	if lvl.empty() {
		ls.drop(lvl)
	}
	return o
}

// Add rests an order at its price on the side matching its own.
func (b *Book) Add(o *orderv1.Order) {
	b.side(o.Side()).getOrCreate(o.Price()).enqueue(o)
	b.orders[o.ID()] = o
}

// Remove removes an order by identity from its price level, deleting the
// level when it becomes empty. Removing an order that is not in the book is
// a no-op.
func (b *Book) Remove(o *orderv1.Order) {
	if _, ok := b.orders[o.ID()]; !ok {
		return
	}
	ls := b.side(o.Side())
	if lvl := ls.get(o.Price()); lvl != nil && lvl.remove(o.ID()) {
		if lvl.empty() {
			ls.drop(lvl)
		}
	}
	delete(b.orders, o.ID())
}

// Order returns the resting order with the given id, or nil.
func (b *Book) Order(id uuid.UUID) *orderv1.Order {
	return b.orders[id]
}

// Size returns the number of resting orders across both sides.
func (b *Book) Size() int { return len(b.orders) }

// BidLevels returns (price, aggregate unfilled quantity) per bid level,
// best (highest) first.
func (b *Book) BidLevels() []LevelSnapshot { return snapshotLevels(b.bids.ordered) }

// AskLevels returns (price, aggregate unfilled quantity) per ask level,
// best (lowest) first.
func (b *Book) AskLevels() []LevelSnapshot { return snapshotLevels(b.asks.ordered) }

func (b *Book) side(side orderv1.Side) *levels {
	if side == orderv1.SideBuy {
		return &b.bids
	}
	return &b.asks
}

func snapshotLevels(ordered []*Level) []LevelSnapshot {
	out := make([]LevelSnapshot, 0, len(ordered))
	for _, lvl := range ordered {
		out = append(out, LevelSnapshot{
			Price:    lvl.price,
			Quantity: lvl.TotalRemaining(),
		})
	}
	return out
}
