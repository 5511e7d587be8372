package kraken

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"sort"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	pnl "github.com/btschwertfeger/kraken-pnl-calculator"
)

// pageSize is the number of records Kraken returns per history page.
const pageSize = 50

// Query restricts which history records a fetch considers. Pair is matched
// client-side against every returned record, because the history collections
// are not symbol-scoped. The remaining fields are passed to the API.
type Query struct {
	Pair    string
	UserRef *int   // order group to restrict to, via closed-order membership
	Start   *int64 // inclusive window start, epoch seconds
	End     *int64 // inclusive window end, epoch seconds
}

// values encodes the API parameters for one page request.
func (q Query) values(offset int) url.Values {
	params := url.Values{}
	if q.UserRef != nil {
		params.Set("userref", strconv.Itoa(*q.UserRef))
	}
	if q.Start != nil {
		params.Set("start", strconv.FormatInt(*q.Start, 10))
	}
	if q.End != nil {
		params.Set("end", strconv.FormatInt(*q.End, 10))
	}
	params.Set("ofs", strconv.Itoa(offset))
	return params
}

// FetchTrades retrieves the complete, deduplicated, chronologically sorted
// trade history matching q.
//
// It pages through TradesHistory until the server-reported total is covered,
// keeping only records of the requested pair. When q.UserRef is set it also
// pages through ClosedOrders and retains only trades whose parent order is in
// that set: the trade record itself carries no user reference, so closed-order
// membership is the only way to associate the two.
//
// delay is the pause between successive page requests, derived from the API
// rate tier (see DelayForTier). There is no pause after the final page. Any
// remote or decode error aborts the whole fetch; FIFO accounting cannot work
// on a partial history.
func FetchTrades(c *Client, q Query, delay time.Duration) ([]pnl.Trade, error) {
	// One limiter spans both pagination loops: the client is reused
	// sequentially and shares a single rate budget.
	limiter := rate.NewLimiter(rate.Every(delay), 1)

	trades, err := fetchTradePages(c, q, limiter)
	if err != nil {
		return nil, err
	}

	if q.UserRef != nil {
		closed, err := fetchClosedOrderIDs(c, q, limiter)
		if err != nil {
			return nil, err
		}
		kept := trades[:0]
		for _, t := range trades {
			if closed[t.OrderTxID] {
				kept = append(kept, t)
			}
		}
		trades = kept
	}

	// Chronological order is load-bearing for FIFO; the sort is stable so
	// equal timestamps keep their fetch order.
	sort.SliceStable(trades, func(i, j int) bool { return trades[i].Time < trades[j].Time })
	return trades, nil
}

// fetchTradePages drives the TradesHistory pagination until the reported
// total is covered and returns the pair-filtered, deduplicated records.
func fetchTradePages(c *Client, q Query, limiter *rate.Limiter) ([]pnl.Trade, error) {
	var trades []pnl.Trade
	seen := make(map[string]bool)

	log.Println("Fetching trades...")
	for offset := 0; ; offset += pageSize {
		if err := limiter.Wait(context.Background()); err != nil {
			return nil, err
		}
		page, err := c.TradesHistory(q, offset)
		if err != nil {
			return nil, fmt.Errorf("fetching trades at offset %d: %w", offset, err)
		}

		// Page records arrive as a map; fix their order by txid so that
		// re-running the pipeline yields an identical sequence.
		for _, txid := range sortedKeys(page.Trades) {
			rec := page.Trades[txid]
			if rec.Pair != q.Pair || seen[txid] {
				continue
			}
			t := pnl.Trade{
				TxID:      txid,
				OrderTxID: rec.OrderTxID,
				Pair:      rec.Pair,
				Time:      rec.Time,
				Side:      pnl.Side(rec.Type),
				OrderType: rec.OrderType,
				Price:     rec.Price,
				Fee:       rec.Fee,
				Volume:    rec.Vol,
				Cost:      rec.Cost,
			}
			if err := t.Validate(); err != nil {
				return nil, fmt.Errorf("malformed trade %s: %w", txid, err)
			}
			seen[txid] = true
			trades = append(trades, t)
		}

		log.Printf("Fetched %d/%d trades...", len(trades), page.Count)
		if page.Count <= offset+pageSize {
			return trades, nil
		}
	}
}

// fetchClosedOrderIDs drives the ClosedOrders pagination until the reported
// total of distinct order ids has been collected.
func fetchClosedOrderIDs(c *Client, q Query, limiter *rate.Limiter) (map[string]bool, error) {
	ids := make(map[string]bool)

	log.Println("Fetching closed orders...")
	for offset := 0; ; offset += pageSize {
		if err := limiter.Wait(context.Background()); err != nil {
			return nil, err
		}
		page, err := c.ClosedOrders(q, offset)
		if err != nil {
			return nil, fmt.Errorf("fetching closed orders at offset %d: %w", offset, err)
		}

		for txid := range page.Closed {
			ids[txid] = true
		}

		log.Printf("Fetched %d/%d closed orders...", len(ids), page.Count)
		if page.Count <= len(ids) {
			return ids, nil
		}
	}
}

func sortedKeys(m map[string]TradeRecord) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
