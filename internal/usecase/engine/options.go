package engine

import (
	"fmt"
	"strings"

	"github.com/DuckDuck5000/TradingSystem/pkg/errors"
)

// RemainderPolicy controls what happens to the unfilled remainder of a market
// order once the opposing side of the book is exhausted.
type RemainderPolicy string

const (
	// RemainderCancel cancels the unfilled remainder (immediate-or-cancel
	// semantics). This is the default: a market order has no price, so
	// resting it would park it at an implicit price of zero.
	RemainderCancel RemainderPolicy = "cancel"
	// RemainderRest rests the unfilled remainder in the book at price zero.
	RemainderRest RemainderPolicy = "rest"
)

// Options represents configuration options for the matching engine.
type Options struct {
	MarketRemainder RemainderPolicy
}

// DefaultOptions returns the default engine options.
func DefaultOptions() *Options {
	return &Options{
		MarketRemainder: RemainderCancel,
	}
}

// ParseRemainderPolicy parses a policy name case-insensitively.
func ParseRemainderPolicy(s string) (RemainderPolicy, error) {
	switch RemainderPolicy(strings.ToLower(s)) {
	case RemainderCancel:
		return RemainderCancel, nil
	case RemainderRest:
		return RemainderRest, nil
	default:
		return "", errors.NewErrorDetails(
			fmt.Sprintf("unknown market remainder policy %q", s),
			string(errors.GeneralBadRequestError),
			"marketRemainder",
		)
	}
}
