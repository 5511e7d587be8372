// Package cmd implements the CLI application to audit the FIFO PnL of a
// Kraken trading pair.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&pnlCmd{}, "reports")
	c.Register(&tradesCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// Credentials loads the Kraken API key pair from the environment. A .env
// file in the working directory is honored when present, so credentials
// never have to live in shell history.
func Credentials() (key, secret string, err error) {
	_ = godotenv.Load() // a missing .env file is fine

	key = os.Getenv("KRAKEN_API_KEY")
	secret = os.Getenv("KRAKEN_SECRET_KEY")
	if key == "" || secret == "" {
		return "", "", fmt.Errorf("KRAKEN_API_KEY and KRAKEN_SECRET_KEY must be set")
	}
	return key, secret, nil
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the terminal renderer is unavailable.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err == nil {
		if out, rerr := r.Render(md); rerr == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(md)
}
