// Package cmd implements the CLI application to manage the portfolio journal.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/gmottier/patrimoine"
	"github.com/google/subcommands"
)

// Register registers all subcommands on a commander. A main package calls
// Register, then Execute on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&declareCmd{}, "journal")
	c.Register(newCashCmd(patrimoine.Deposit, "record cash moved into a holding"), "journal")
	c.Register(newCashCmd(patrimoine.Withdraw, "record cash moved out of a holding"), "journal")
	c.Register(newCashCmd(patrimoine.Distribution, "record a dividend or interest payment"), "journal")
	c.Register(newCashCmd(patrimoine.Fee, "record a cost charged to a holding"), "journal")
	c.Register(newTradeCmd(patrimoine.Buy, "record a purchase of units"), "journal")
	c.Register(newTradeCmd(patrimoine.Sell, "record a sale of units"), "journal")
	c.Register(&valueCmd{}, "journal")
	c.Register(&setRateCmd{}, "journal")
	c.Register(&fmtCmd{}, "journal")

	c.Register(&dashboardCmd{}, "reports")
	c.Register(&projectCmd{}, "reports")
	c.Register(&adviseCmd{}, "reports")

	c.Register(&updateCmd{}, "prices")

	c.Register(&topicCmd{}, "help")
}

// As a CLI application it has a very short lived lifecycle, so it is ok to
// use global variables.
var ledgerFile = flag.String("ledger-file", "patrimoine.jsonl", "Path to the journal file (JSONL format)")

// decodeLedger loads the journal from the app ledger file. A missing file is
// an empty ledger.
func decodeLedger() (*patrimoine.Ledger, error) {
	f, err := os.Open(*ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		return patrimoine.NewLedger(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return patrimoine.DecodeLedger(f)
}

// appendRecord appends a single journal line written by encode to the app
// ledger file.
func appendRecord(encode func(io.Writer) error) subcommands.ExitStatus {
	f, err := os.OpenFile(*ledgerFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening journal file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := encode(f); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to journal file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully appended record to %s\n", *ledgerFile)
	return subcommands.ExitSuccess
}
