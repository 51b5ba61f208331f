package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gmottier/patrimoine"
	"github.com/google/subcommands"
)

type valueCmd struct {
	date    string
	holding string
	price   float64
	total   float64
}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "record an observed valuation of a holding" }
func (*valueCmd) Usage() string {
	return `pat value -i <holding> (-p <unit price> | -total <total value>) [-d <date>]

  Records a valuation snapshot. Quantity-based holdings take a unit price in
  the canonical unit; unit-less holdings take a total value. At most one
  valuation exists per holding and date: recording again replaces it.
`
}

func (c *valueCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", patrimoine.Today().String(), "Valuation date (YYYY-MM-DD)")
	f.StringVar(&c.holding, "i", "", "Holding identifier")
	f.Float64Var(&c.price, "p", 0, "Unit price in EUR per canonical unit")
	f.Float64Var(&c.total, "total", 0, "Total value in EUR")
}

func (c *valueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.holding == "" || (c.price == 0) == (c.total == 0) {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := patrimoine.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	p := patrimoine.PriceRecord{
		Holding: c.holding,
		Date:    day,
		Price:   patrimoine.EUR(c.price),
		Total:   patrimoine.EUR(c.total),
	}
	return appendRecord(func(w io.Writer) error { return patrimoine.EncodePrice(w, p) })
}
