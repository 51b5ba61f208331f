package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/gmottier/patrimoine"
	"github.com/gmottier/patrimoine/renderer"
	"github.com/google/subcommands"
)

type dashboardCmd struct {
	date string
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display the portfolio dashboard" }
func (*dashboardCmd) Usage() string {
	return `pat dashboard [-d <date>]

  Displays the portfolio: per-holding value, net invested amount, gains and
  allocation, plus the portfolio totals, as of the given date.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", patrimoine.Today().String(), "As-of date for the dashboard (YYYY-MM-DD)")
}

func (c *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := patrimoine.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := decodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding journal: %v\n", err)
		return subcommands.ExitFailure
	}

	summary := ledger.Summary(on)
	printMarkdown(renderer.DashboardMarkdown(&summary))
	return subcommands.ExitSuccess
}
