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

// checkMovement validates a movement against the declared holding before it
// is appended, so obvious mistakes never reach the journal.
func checkMovement(m patrimoine.Movement) error {
	ledger, err := decodeLedger()
	if err != nil {
		return err
	}
	h := ledger.Holding(m.Holding)
	if h == nil {
		return fmt.Errorf("holding %q not declared in journal", m.Holding)
	}
	return m.Check(*h)
}

// --- Cash movements (deposit, withdraw, distribution, fee) ---

type cashCmd struct {
	kind     patrimoine.MovementKind
	synopsis string

	date    string
	holding string
	amount  float64
	memo    string
}

func newCashCmd(kind patrimoine.MovementKind, synopsis string) *cashCmd {
	return &cashCmd{kind: kind, synopsis: synopsis}
}

func (c *cashCmd) Name() string     { return c.kind.String() }
func (c *cashCmd) Synopsis() string { return c.synopsis }
func (c *cashCmd) Usage() string {
	return fmt.Sprintf(`pat %s -i <holding> -a <amount> [-d <date>] [-m <memo>]

  %s
`, c.kind, c.synopsis)
}

func (c *cashCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", patrimoine.Today().String(), "Movement date (YYYY-MM-DD)")
	f.StringVar(&c.holding, "i", "", "Holding identifier")
	f.Float64Var(&c.amount, "a", 0, "Amount in EUR")
	f.StringVar(&c.memo, "m", "", "An optional rationale or note for the movement")
}

func (c *cashCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.holding == "" || c.amount < 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := patrimoine.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	m := patrimoine.Movement{
		Holding: c.holding,
		Date:    day,
		Kind:    c.kind,
		Amount:  patrimoine.EUR(c.amount),
		Memo:    c.memo,
	}
	if err := checkMovement(m); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return appendRecord(func(w io.Writer) error { return patrimoine.EncodeMovement(w, m) })
}

// --- Trades (buy, sell) ---

type tradeCmd struct {
	kind     patrimoine.MovementKind
	synopsis string

	date     string
	holding  string
	amount   float64
	quantity float64
	price    float64
	memo     string
}

func newTradeCmd(kind patrimoine.MovementKind, synopsis string) *tradeCmd {
	return &tradeCmd{kind: kind, synopsis: synopsis}
}

func (c *tradeCmd) Name() string     { return c.kind.String() }
func (c *tradeCmd) Synopsis() string { return c.synopsis }
func (c *tradeCmd) Usage() string {
	return fmt.Sprintf(`pat %s -i <holding> -a <amount> -q <quantity> -p <price> [-d <date>] [-m <memo>]

  %s. The quantity and unit price are in the holding's canonical unit
  (satoshis for SATS holdings), and amount must match quantity x price to
  the cent. When the amount is omitted it is computed from quantity x price.
`, c.kind, c.synopsis)
}

func (c *tradeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", patrimoine.Today().String(), "Movement date (YYYY-MM-DD)")
	f.StringVar(&c.holding, "i", "", "Holding identifier")
	f.Float64Var(&c.amount, "a", 0, "Amount in EUR, quantity x price when omitted")
	f.Float64Var(&c.quantity, "q", 0, "Quantity in canonical units")
	f.Float64Var(&c.price, "p", 0, "Unit price in EUR per canonical unit")
	f.StringVar(&c.memo, "m", "", "An optional rationale or note for the movement")
}

func (c *tradeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.holding == "" || c.quantity <= 0 || c.price <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := patrimoine.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	quantity := patrimoine.Q(c.quantity)
	price := patrimoine.EUR(c.price)
	amount := patrimoine.EUR(c.amount)
	if c.amount == 0 {
		amount = patrimoine.Amount(quantity, price)
	}
	m := patrimoine.Movement{
		Holding:  c.holding,
		Date:     day,
		Kind:     c.kind,
		Amount:   amount,
		Quantity: quantity,
		Price:    price,
		Memo:     c.memo,
	}
	if err := checkMovement(m); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return appendRecord(func(w io.Writer) error { return patrimoine.EncodeMovement(w, m) })
}
