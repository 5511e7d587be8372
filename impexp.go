package pnl

import (
	"encoding/csv"
	"io"
	"time"
)

// this file contains the export format for trade listings.
// It should remain human readable and easy to load into a spreadsheet.

// ExportCSV writes the ordered trade listing to w as CSV, one row per trade,
// preceded by a header row. Numeric fields are written as the exact strings
// received from the exchange.
func ExportCSV(w io.Writer, trades []Trade) error {
	cw := csv.NewWriter(w)

	header := []string{"txid", "time", "pair", "type", "ordertype", "price", "fee", "vol", "cost", "ordertxid"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, t := range trades {
		row := []string{
			t.TxID,
			t.Timestamp().Format(time.RFC3339),
			t.Pair,
			string(t.Side),
			t.OrderType,
			t.Price,
			t.Fee,
			t.Volume,
			t.Cost,
			t.OrderTxID,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
