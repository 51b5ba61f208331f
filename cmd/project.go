package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/gmottier/patrimoine"
	"github.com/gmottier/patrimoine/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type projectCmd struct {
	holding      string
	initial      float64
	rate         float64
	contribution float64
	frequency    string
	years        int
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "project compound growth over a horizon" }
func (*projectCmd) Usage() string {
	return `pat project [-i <holding>] [-initial <amount>] -rate <annual rate> [-contribution <amount>] [-frequency <monthly|quarterly|annual>] -years <n>

  Projects compound growth year by year: each period the value grows by
  rate/periods-per-year and the contribution is added. With -i the initial
  capital defaults to the holding's current value and the rate to the
  holding's rate schedule in force today.
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.holding, "i", "", "Seed initial capital and rate from this holding")
	f.Float64Var(&c.initial, "initial", 0, "Initial capital in EUR")
	f.Float64Var(&c.rate, "rate", 0, "Annual rate, e.g. 0.08 for 8%")
	f.Float64Var(&c.contribution, "contribution", 0, "Contribution in EUR per period")
	f.StringVar(&c.frequency, "frequency", "annual", "Contribution frequency: monthly, quarterly or annual")
	f.IntVar(&c.years, "years", 0, "Projection horizon in years")
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	freq, err := patrimoine.ParseFrequency(c.frequency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	initial := patrimoine.EUR(c.initial)
	rate := decimal.NewFromFloat(c.rate)
	title := "Projection"

	if c.holding != "" {
		ledger, err := decodeLedger()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error decoding journal: %v\n", err)
			return subcommands.ExitFailure
		}
		h := ledger.Holding(c.holding)
		if h == nil {
			fmt.Fprintf(os.Stderr, "Error: holding %q not declared in journal\n", c.holding)
			return subcommands.ExitFailure
		}
		today := patrimoine.Today()
		perf := patrimoine.ComputeHoldingPerformance(*h, ledger.MovementsOf(h.ID), ledger.PricesOf(h.ID), today)
		if c.initial == 0 && perf.Valued {
			initial = perf.CurrentValue
		}
		if c.rate == 0 {
			rate = ledger.RatesOf(h.ID).On(today)
		}
		title = fmt.Sprintf("Projection for %s", h.Name)
	}

	table, err := patrimoine.NewProjectionTable(initial, rate, patrimoine.EUR(c.contribution), freq, c.years)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(renderer.ProjectionMarkdown(title, table))
	return subcommands.ExitSuccess
}
