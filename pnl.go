package pnl

import "fmt"

// RunStatistics accumulates the result of replaying one trade sequence.
//
// RealizedPnL honors the optional calendar-year filter; every other field
// always aggregates over the full sequence, so volume and cost totals remain
// comparable across runs with different year filters.
type RunStatistics struct {
	RealizedPnL   float64
	UnrealizedPnL float64
	Balance       float64 // ending position, base currency units

	BuyVolumeBase   float64 // sum of bought amounts
	BuyVolumeQuote  float64 // sum of buy costs including fees
	SellVolumeBase  float64 // sum of sold amounts
	SellVolumeQuote float64 // sum of sell proceeds net of fees

	SoldCost  float64 // FIFO cost basis of everything sold
	SoldValue float64 // proceeds of everything sold
}

// ComputeFIFOPnL replays the given trades, which must already be in
// chronological order, against a fresh FIFO lot queue and returns the final
// statistics. Order is load-bearing: the cost basis attributed to each sell
// depends on which lots are still open when it executes.
//
// A year of 0 disables the calendar-year filter; any other value restricts
// RealizedPnL to sells executed in that UTC year. The aggregate totals are
// never year-filtered.
//
// Lots remaining after the last trade form the open position; they are
// valued at the price of the most recently processed trade of either side
// (mark-to-last-trade, not a live market price).
func ComputeFIFOPnL(trades []Trade, year int) (RunStatistics, error) {
	var (
		queue     lotQueue
		stats     RunStatistics
		lastPrice float64
	)

	for _, t := range trades {
		price, fee, volume, err := t.numbers()
		if err != nil {
			return RunStatistics{}, fmt.Errorf("trade %s: %w", t.TxID, err)
		}
		lastPrice = price

		switch t.Side {
		case Buy:
			cost := volume*price + fee
			queue.pushBack(lot{amount: volume, cost: cost})
			stats.Balance += volume
			stats.BuyVolumeBase += volume
			stats.BuyVolumeQuote += cost

		case Sell:
			proceeds := volume*price - fee
			costBasis := queue.consume(volume)

			if year == 0 || t.Year() == year {
				stats.RealizedPnL += proceeds - costBasis
			}
			stats.Balance -= volume
			stats.SellVolumeBase += volume
			stats.SellVolumeQuote += proceeds
			stats.SoldCost += costBasis
			stats.SoldValue += proceeds

		default:
			return RunStatistics{}, fmt.Errorf("trade %s: invalid trade side %q", t.TxID, t.Side)
		}
	}

	stats.UnrealizedPnL = queue.unrealized(lastPrice)
	return stats, nil
}
