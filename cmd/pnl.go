package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	pnl "github.com/btschwertfeger/kraken-pnl-calculator"
	"github.com/btschwertfeger/kraken-pnl-calculator/renderer"
	"github.com/google/subcommands"
)

// pnlCmd holds the flags for the 'pnl' subcommand.
type pnlCmd struct {
	historyFlags
	year    int
	list    bool
	csvFile string
}

func (*pnlCmd) Name() string     { return "pnl" }
func (*pnlCmd) Synopsis() string { return "compute FIFO realized and unrealized PnL for one pair" }
func (*pnlCmd) Usage() string {
	return `kraken-pnl pnl -symbol <pair> -tier <tier> [-s <date>] [-d <date>] [-userref <id>] [-year <year>] [-list] [-csv <file>]

  Fetches the complete trade history of the pair, replays it with FIFO lot
  matching and prints realized PnL, unrealized PnL, ending balance and the
  aggregate volume and cost statistics.
`
}

func (c *pnlCmd) SetFlags(f *flag.FlagSet) {
	c.historyFlags.setFlags(f)
	f.IntVar(&c.year, "year", 0, "Restrict realized PnL to sells of this calendar year (UTC)")
	f.BoolVar(&c.list, "list", false, "Print the ordered trade listing before the statistics")
	f.StringVar(&c.csvFile, "csv", "", "Write the ordered trade listing to this CSV file")
}

func (c *pnlCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	q, delay, err := c.validate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	trades, err := fetch(q, delay)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching trades: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.list {
		printMarkdown(renderer.Trades(trades))
	}
	if c.csvFile != "" {
		if err := exportCSV(c.csvFile, trades); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting trades: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "Wrote %d trades to %s\n", len(trades), c.csvFile)
	}

	stats, err := pnl.ComputeFIFOPnL(trades, c.year)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing PnL: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Statistics(c.symbol, c.year, stats))
	return subcommands.ExitSuccess
}
