// Package pnl reconstructs a trader's realized and unrealized profit and
// loss from the historical buy/sell executions of a single Kraken trading
// pair, using first-in-first-out (FIFO) lot matching.
//
// The package is designed for auditing: given the complete, chronologically
// ordered trade history of one pair (see the kraken sub-package for the
// ingestion pipeline), it replays every execution against an owned queue of
// open lots and produces:
//   - Realized PnL: profit recognized on sells, optionally restricted to a
//     single calendar year.
//   - Unrealized PnL: mark-to-last-trade valuation of the lots still open at
//     the end of the run.
//   - The ending base-currency balance and aggregate buy/sell volume and
//     cost/proceeds statistics.
//
// All accounting arithmetic is performed in 64-bit floating point; no
// rounding is applied internally. Rounding, if any, belongs to the output
// layer.
//
// This package serves as the foundational logic for the `kraken-pnl`
// command-line tool.
package pnl
