package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/btschwertfeger/kraken-pnl-calculator/renderer"
	"github.com/google/subcommands"
)

// tradesCmd holds the flags for the 'trades' subcommand.
type tradesCmd struct {
	historyFlags
	csvFile string
}

func (*tradesCmd) Name() string     { return "trades" }
func (*tradesCmd) Synopsis() string { return "list the ordered trade history of one pair" }
func (*tradesCmd) Usage() string {
	return `kraken-pnl trades -symbol <pair> -tier <tier> [-s <date>] [-d <date>] [-userref <id>] [-csv <file>]

  Fetches and prints the deduplicated, chronologically ordered trade history
  that the pnl command would feed into the FIFO engine. Useful to eyeball
  the input of an audit before trusting the numbers.
`
}

func (c *tradesCmd) SetFlags(f *flag.FlagSet) {
	c.historyFlags.setFlags(f)
	f.StringVar(&c.csvFile, "csv", "", "Write the listing to this CSV file")
}

func (c *tradesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.Trades(trades))

	if c.csvFile != "" {
		if err := exportCSV(c.csvFile, trades); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting trades: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "Wrote %d trades to %s\n", len(trades), c.csvFile)
	}

	return subcommands.ExitSuccess
}
