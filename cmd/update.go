package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gmottier/patrimoine"
	"github.com/gmottier/patrimoine/coingecko"
	"github.com/google/subcommands"
)

type updateCmd struct {
	date string
	coin string
}

func (*updateCmd) Name() string { return "update" }
func (*updateCmd) Synopsis() string {
	return "fetch the bitcoin price from CoinGecko and record it"
}
func (*updateCmd) Usage() string {
	return `pat update [-d <date>]

  Fetches the EUR spot price (or the closing price on a past date) from
  CoinGecko and appends a valuation snapshot for every BITCOIN holding,
  as a price per satoshi.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", patrimoine.Today().String(), "Price date (YYYY-MM-DD)")
	f.StringVar(&c.coin, "coin", "bitcoin", "CoinGecko coin identifier")
}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := patrimoine.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := decodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding journal: %v\n", err)
		return subcommands.ExitFailure
	}

	var coins float64
	if day == patrimoine.Today() {
		coins, err = coingecko.FetchPrice(c.coin, "EUR")
	} else {
		coins, err = coingecko.FetchPriceOn(c.coin, "EUR", day)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	// the journal carries prices in the atomic unit
	perSat := patrimoine.EUR(coins).Shift(-8)

	status := subcommands.ExitSuccess
	for _, h := range ledger.Holdings() {
		if h.Type != patrimoine.Bitcoin {
			continue
		}
		p := patrimoine.PriceRecord{Holding: h.ID, Date: day, Price: perSat}
		if s := appendRecord(func(w io.Writer) error { return patrimoine.EncodePrice(w, p) }); s != subcommands.ExitSuccess {
			status = s
		}
	}
	return status
}
