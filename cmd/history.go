package cmd

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	pnl "github.com/btschwertfeger/kraken-pnl-calculator"
	"github.com/btschwertfeger/kraken-pnl-calculator/kraken"
)

// historyFlags are the filters shared by every command that needs the trade
// history of one pair.
type historyFlags struct {
	symbol  string
	tier    string
	start   string
	end     string
	userref string
}

func (h *historyFlags) setFlags(f *flag.FlagSet) {
	f.StringVar(&h.symbol, "symbol", "", "Trading pair symbol (e.g. XXBTZEUR), required")
	f.StringVar(&h.tier, "tier", "", "API verification tier (starter, intermediate, pro), required")
	f.StringVar(&h.start, "s", "", "Start date of the trade window (YYYY-MM-DD, inclusive)")
	f.StringVar(&h.end, "d", "", "End date of the trade window (YYYY-MM-DD, inclusive)")
	f.StringVar(&h.userref, "userref", "", "Restrict to trades of orders carrying this user reference id")
}

// validate checks the filter flags and builds the history query and the
// inter-page delay. It runs before any network activity.
func (h *historyFlags) validate() (kraken.Query, time.Duration, error) {
	q := kraken.Query{Pair: h.symbol}

	if h.symbol == "" {
		return q, 0, fmt.Errorf("-symbol is required")
	}
	delay, err := kraken.DelayForTier(h.tier)
	if err != nil {
		return q, 0, err
	}
	if h.start != "" {
		start, err := pnl.ParseDayStart(h.start)
		if err != nil {
			return q, 0, err
		}
		q.Start = &start
	}
	if h.end != "" {
		end, err := pnl.ParseDayEnd(h.end)
		if err != nil {
			return q, 0, err
		}
		q.End = &end
	}
	if h.userref != "" {
		ref, err := strconv.Atoi(h.userref)
		if err != nil {
			return q, 0, fmt.Errorf("invalid -userref %q: %w", h.userref, err)
		}
		q.UserRef = &ref
	}
	return q, delay, nil
}

// fetch loads the credentials and retrieves the ordered trade history.
func fetch(q kraken.Query, delay time.Duration) ([]pnl.Trade, error) {
	key, secret, err := Credentials()
	if err != nil {
		return nil, err
	}
	return kraken.FetchTrades(kraken.NewClient(key, secret), q, delay)
}

// exportCSV writes the listing to the given file.
func exportCSV(filename string, trades []pnl.Trade) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("cannot create %q: %w", filename, err)
	}
	defer f.Close()

	if err := pnl.ExportCSV(f, trades); err != nil {
		return fmt.Errorf("cannot write %q: %w", filename, err)
	}
	return nil
}
