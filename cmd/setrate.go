package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gmottier/patrimoine"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type setRateCmd struct {
	date    string
	holding string
	rate    float64
}

func (*setRateCmd) Name() string     { return "set-rate" }
func (*setRateCmd) Synopsis() string { return "record a savings rate change for a cash-like holding" }
func (*setRateCmd) Usage() string {
	return `pat set-rate -i <holding> -rate <annual rate> [-d <date>]

  Appends a rate schedule entry: the annual rate (0.03 for 3%) in force from
  the given date. The latest entry on or before a date is the rate in force.
`
}

func (c *setRateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", patrimoine.Today().String(), "Effective date (YYYY-MM-DD)")
	f.StringVar(&c.holding, "i", "", "Holding identifier")
	f.Float64Var(&c.rate, "rate", 0, "Annual rate, e.g. 0.03 for 3%")
}

func (c *setRateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.holding == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := patrimoine.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	r := patrimoine.RateEntry{
		Holding:    c.holding,
		Effective:  day,
		AnnualRate: decimal.NewFromFloat(c.rate),
	}
	return appendRecord(func(w io.Writer) error { return patrimoine.EncodeRate(w, r) })
}
