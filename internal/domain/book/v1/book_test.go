package bookv1

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orderv1 "github.com/DuckDuck5000/TradingSystem/internal/domain/order/v1"
	"github.com/DuckDuck5000/TradingSystem/pkg/errors"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func limitOrder(t *testing.T, side orderv1.Side, price, qty string) *orderv1.Order {
	t.Helper()
	o, err := orderv1.NewLimitOrder("BTC-USD", side, d(price), d(qty))
	require.NoError(t, err)
	return o
}

// Test 1: Empty book
func TestNewBook(t *testing.T) {
	b := NewBook("BTC-USD")

	assert.Equal(t, "BTC-USD", b.InstrumentID())
	assert.False(t, b.HasBids())
	assert.False(t, b.HasAsks())
	assert.Equal(t, 0, b.Size())
	assert.Nil(t, b.Front(orderv1.SideBuy))
	assert.Nil(t, b.PopFront(orderv1.SideSell))

	_, err := b.BestBid()
	assert.True(t, errors.ErrorCodeEquals(err, errors.BookSideEmptyError))
	_, err = b.BestAsk()
	assert.True(t, errors.ErrorCodeEquals(err, errors.BookSideEmptyError))
}

// Test 2: Bid ordering is highest first, ask ordering lowest first
func TestBook_BestPriceOrdering(t *testing.T) {
	b := NewBook("BTC-USD")

	b.Add(limitOrder(t, orderv1.SideBuy, "99", "1"))
	b.Add(limitOrder(t, orderv1.SideBuy, "101", "1"))
	b.Add(limitOrder(t, orderv1.SideBuy, "100", "1"))
	b.Add(limitOrder(t, orderv1.SideSell, "105", "1"))
	b.Add(limitOrder(t, orderv1.SideSell, "103", "1"))
	b.Add(limitOrder(t, orderv1.SideSell, "104", "1"))

	bestBid, err := b.BestBid()
	require.NoError(t, err)
	assert.True(t, bestBid.Equal(d("101")))

	bestAsk, err := b.BestAsk()
	require.NoError(t, err)
	assert.True(t, bestAsk.Equal(d("103")))

	bids := b.BidLevels()
	require.Len(t, bids, 3)
	assert.True(t, bids[0].Price.Equal(d("101")))
	assert.True(t, bids[1].Price.Equal(d("100")))
	assert.True(t, bids[2].Price.Equal(d("99")))

	asks := b.AskLevels()
	require.Len(t, asks, 3)
	assert.True(t, asks[0].Price.Equal(d("103")))
	assert.True(t, asks[1].Price.Equal(d("104")))
	assert.True(t, asks[2].Price.Equal(d("105")))
}

// Test 3: FIFO within a price level
func TestBook_TimePriorityWithinLevel(t *testing.T) {
	b := NewBook("BTC-USD")

	first := limitOrder(t, orderv1.SideSell, "100", "1")
	second := limitOrder(t, orderv1.SideSell, "100", "2")
	third := limitOrder(t, orderv1.SideSell, "100", "3")

	b.Add(first)
	b.Add(second)
	b.Add(third)

	assert.Equal(t, first.ID(), b.Front(orderv1.SideSell).ID())
	assert.Equal(t, first.ID(), b.PopFront(orderv1.SideSell).ID())
	assert.Equal(t, second.ID(), b.PopFront(orderv1.SideSell).ID())
	assert.Equal(t, third.ID(), b.PopFront(orderv1.SideSell).ID())
	assert.False(t, b.HasAsks())
}

// Test 4: Same price on equal decimals with different exponents
func TestBook_EqualPricesDifferentScale(t *testing.T) {
	b := NewBook("BTC-USD")

	b.Add(limitOrder(t, orderv1.SideBuy, "100", "1"))
	b.Add(limitOrder(t, orderv1.SideBuy, "100.00", "2"))

	levels := b.BidLevels()
	require.Len(t, levels, 1)
	assert.True(t, levels[0].Quantity.Equal(d("3")))
}

// Test 5: Level aggregates remaining, not original, quantity
func TestBook_LevelQuantityIsRemaining(t *testing.T) {
	b := NewBook("BTC-USD")

	o := limitOrder(t, orderv1.SideSell, "100", "10")
	o.Fill(d("4"))
	b.Add(o)

	levels := b.AskLevels()
	require.Len(t, levels, 1)
	assert.True(t, levels[0].Quantity.Equal(d("6")))
}

// Test 6: Remove drops the emptied level and is idempotent
func TestBook_Remove(t *testing.T) {
	b := NewBook("BTC-USD")

	keep := limitOrder(t, orderv1.SideBuy, "100", "1")
	gone := limitOrder(t, orderv1.SideBuy, "100", "2")
	lone := limitOrder(t, orderv1.SideBuy, "99", "1")

	b.Add(keep)
	b.Add(gone)
	b.Add(lone)
	require.Equal(t, 3, b.Size())

	b.Remove(gone)
	assert.Equal(t, 2, b.Size())
	assert.Nil(t, b.Order(gone.ID()))
	assert.NotNil(t, b.Order(keep.ID()))

	// Removing again is a no-op.
	b.Remove(gone)
	assert.Equal(t, 2, b.Size())

	// Removing the only order at a price drops the level entirely.
	b.Remove(lone)
	levels := b.BidLevels()
	require.Len(t, levels, 1)
	assert.True(t, levels[0].Price.Equal(d("100")))
}

// Test 7: PopFront removes the index entry too
func TestBook_PopFrontDeindexes(t *testing.T) {
	b := NewBook("BTC-USD")

	o := limitOrder(t, orderv1.SideSell, "100", "1")
	b.Add(o)

	popped := b.PopFront(orderv1.SideSell)
	require.NotNil(t, popped)
	assert.Equal(t, o.ID(), popped.ID())
	assert.Nil(t, b.Order(o.ID()))
	assert.Equal(t, 0, b.Size())
}
