package bookv1

import "github.com/shopspring/decimal"

// LevelSnapshot is one aggregated price level in a book snapshot.
type LevelSnapshot struct {
	Price    decimal.Decimal `json:"price"`
	Quantity decimal.Decimal `json:"quantity"`
}

// Snapshot is the stable read-side view of one instrument's book: bids sorted
// descending, asks ascending, each level carrying the sum of unfilled
// quantities.
type Snapshot struct {
	InstrumentID string          `json:"instrumentID"`
	Bids         []LevelSnapshot `json:"bids"`
	Asks         []LevelSnapshot `json:"asks"`
}
