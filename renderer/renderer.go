// Package renderer builds markdown reports from trade listings and run
// statistics. Commands render the markdown for the terminal.
package renderer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	pnl "github.com/btschwertfeger/kraken-pnl-calculator"
)

// f renders a float64 without imposing a fixed precision; the engine does
// not round, so neither does the report.
func f(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// Trades renders the ordered trade listing as a markdown table.
func Trades(trades []pnl.Trade) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Trades (%d)\n\n", len(trades))
	fmt.Fprintln(&b, "| Time | Pair | Side | Price | Fee | Volume | Cost | Order Type | Order |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|---:|---:|:---|:---|")

	for _, t := range trades {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			t.Timestamp().Format(time.RFC3339),
			t.Pair,
			t.Side,
			t.Price,
			t.Fee,
			t.Volume,
			t.Cost,
			t.OrderType,
			t.OrderTxID,
		)
	}

	return b.String()
}

// Statistics renders the final statistics block of a run. year is 0 when
// realized PnL is unfiltered.
func Statistics(pair string, year int, stats pnl.RunStatistics) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# FIFO PnL for %s\n\n", pair)

	realized := "Realized PnL"
	if year != 0 {
		realized = fmt.Sprintf("Realized PnL (%d)", year)
	}

	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| %s | %s |\n", realized, f(stats.RealizedPnL))
	fmt.Fprintf(&b, "| Unrealized PnL | %s |\n", f(stats.UnrealizedPnL))
	fmt.Fprintf(&b, "| Balance | %s |\n", f(stats.Balance))
	fmt.Fprintf(&b, "| Total buy volume (base) | %s |\n", f(stats.BuyVolumeBase))
	fmt.Fprintf(&b, "| Total buy volume (quote) | %s |\n", f(stats.BuyVolumeQuote))
	fmt.Fprintf(&b, "| Total sell volume (base) | %s |\n", f(stats.SellVolumeBase))
	fmt.Fprintf(&b, "| Total sell volume (quote) | %s |\n", f(stats.SellVolumeQuote))
	fmt.Fprintf(&b, "| Total cost of sold assets | %s |\n", f(stats.SoldCost))
	fmt.Fprintf(&b, "| Total value of sold assets | %s |\n", f(stats.SoldValue))

	return b.String()
}
