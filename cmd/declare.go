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

type declareCmd struct {
	id       string
	name     string
	typ      string
	unit     string
	currency string
}

func (*declareCmd) Name() string     { return "declare" }
func (*declareCmd) Synopsis() string { return "declare a new holding" }
func (*declareCmd) Usage() string {
	return `pat declare -id <id> -name <name> -type <type> [-unit <unit>]

  Declares a holding so that movements and valuations can be recorded
  against it. Types: CASH, SAVINGS, SCPI, BITCOIN, INSURANCE, PER, FCPI.
  Units: NONE (default), SHARES, SATS.
`
}

func (c *declareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Holding identifier")
	f.StringVar(&c.name, "name", "", "Display name")
	f.StringVar(&c.typ, "type", "", "Holding type")
	f.StringVar(&c.unit, "unit", "NONE", "Quantity unit")
	f.StringVar(&c.currency, "currency", "EUR", "Base currency")
}

func (c *declareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" || c.name == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	typ, err := patrimoine.ParseHoldingType(c.typ)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	unit, err := patrimoine.ParseQuantityUnit(c.unit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	h := patrimoine.Holding{ID: c.id, Name: c.name, Type: typ, Unit: unit, Currency: c.currency}
	return appendRecord(func(w io.Writer) error { return patrimoine.EncodeHolding(w, h) })
}
