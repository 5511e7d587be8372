package pnl

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Side is the direction of an executed trade.
type Side string

const (
	Buy  Side = "buy"
	Sell Side = "sell"
)

// ParseSide parses the wire representation of a trade side. Kraken reports
// exactly "buy" or "sell"; anything else marks the record as invalid.
func ParseSide(s string) (Side, error) {
	switch Side(s) {
	case Buy, Sell:
		return Side(s), nil
	}
	return "", fmt.Errorf("invalid trade side %q", s)
}

// Trade is one executed fill of an order, as reported by the exchange.
//
// The numeric fields are kept as the exact decimal strings from the wire and
// are converted to float64 at the point of use. A Trade is immutable once
// constructed by the ingestion pipeline.
type Trade struct {
	TxID      string  // trade transaction id (the key of the record in its page)
	OrderTxID string  // parent order id, used to cross-reference closed orders
	Pair      string  // trading pair symbol, e.g. XXBTZEUR
	Time      float64 // execution time, fractional seconds since epoch
	Side      Side
	OrderType string // informational only
	Price     string
	Fee       string
	Volume    string
	Cost      string
}

// Timestamp returns the execution time as a UTC time.Time.
func (t Trade) Timestamp() time.Time {
	sec := int64(t.Time)
	nsec := int64((t.Time - float64(sec)) * 1e9)
	return time.Unix(sec, nsec).UTC()
}

// Year returns the UTC calendar year the trade was executed in.
func (t Trade) Year() int { return t.Timestamp().Year() }

// parseFloat parses one of the exact decimal strings the exchange returns
// and converts it to float64.
func parseFloat(field, value string) (float64, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", field, value, err)
	}
	return d.InexactFloat64(), nil
}

// numbers converts the accounting-relevant fields to float64.
func (t Trade) numbers() (price, fee, volume float64, err error) {
	if price, err = parseFloat("price", t.Price); err != nil {
		return
	}
	if fee, err = parseFloat("fee", t.Fee); err != nil {
		return
	}
	volume, err = parseFloat("volume", t.Volume)
	return
}

// Validate checks that the trade satisfies the invariants the engine relies
// on: a known side, parsable decimal quantities, price > 0, volume > 0 and
// fee >= 0. The ingestion pipeline rejects a whole page on the first invalid
// record, since partial histories would corrupt the FIFO accounting.
func (t Trade) Validate() error {
	if _, err := ParseSide(string(t.Side)); err != nil {
		return err
	}
	price, fee, volume, err := t.numbers()
	if err != nil {
		return err
	}
	if _, err := parseFloat("cost", t.Cost); err != nil {
		return err
	}
	if price <= 0 {
		return fmt.Errorf("price must be positive, got %s", t.Price)
	}
	if volume <= 0 {
		return fmt.Errorf("volume must be positive, got %s", t.Volume)
	}
	if fee < 0 {
		return fmt.Errorf("fee must not be negative, got %s", t.Fee)
	}
	return nil
}
