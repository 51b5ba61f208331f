package renderer

import (
	"strings"
	"testing"

	"github.com/gmottier/patrimoine"
	"github.com/shopspring/decimal"
)

func buildSummary(t *testing.T) patrimoine.PortfolioSummary {
	t.Helper()
	l := patrimoine.NewLedger()
	holdings := []patrimoine.Holding{
		{ID: "cash", Name: "Checking account", Type: patrimoine.Cash, Currency: "EUR"},
		{ID: "scpi", Name: "SCPI parts", Type: patrimoine.SCPI, Unit: patrimoine.UnitShares, Currency: "EUR"},
	}
	for _, h := range holdings {
		if err := l.Declare(h); err != nil {
			t.Fatal(err)
		}
	}
	movements := []patrimoine.Movement{
		{Holding: "cash", Date: patrimoine.NewDate(2024, 1, 1), Kind: patrimoine.Deposit, Amount: patrimoine.EUR(1000)},
		{Holding: "scpi", Date: patrimoine.NewDate(2024, 1, 10), Kind: patrimoine.Buy, Amount: patrimoine.EUR(2500), Quantity: patrimoine.Q(10), Price: patrimoine.EUR(250)},
	}
	for _, m := range movements {
		if err := l.Record(m); err != nil {
			t.Fatal(err)
		}
	}
	if err := l.RecordPrice(patrimoine.PriceRecord{Holding: "scpi", Date: patrimoine.NewDate(2024, 6, 30), Price: patrimoine.EUR(260)}); err != nil {
		t.Fatal(err)
	}
	return l.Summary(patrimoine.NewDate(2024, 12, 31))
}

func TestDashboardMarkdown(t *testing.T) {
	s := buildSummary(t)
	md := DashboardMarkdown(&s)

	for _, want := range []string{
		"# Portfolio Dashboard on 2024-12-31",
		"## Summary",
		"## Holdings",
		"Checking account",
		// the SCPI valuation is from June, the dashboard flags it as stale
		"SCPI parts (as of 2024-06-30)",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("dashboard markdown misses %q:\n%s", want, md)
		}
	}
	if strings.Contains(md, "## Anomalies") {
		t.Errorf("dashboard reports anomalies on a clean ledger:\n%s", md)
	}
	if strings.Contains(md, "error") {
		t.Errorf("dashboard markdown contains a template error:\n%s", md)
	}
}

func TestDashboardMarkdown_UnvaluedAndAnomalies(t *testing.T) {
	l := patrimoine.NewLedger()
	if err := l.Declare(patrimoine.Holding{ID: "scpi", Name: "SCPI parts", Type: patrimoine.SCPI, Unit: patrimoine.UnitShares, Currency: "EUR"}); err != nil {
		t.Fatal(err)
	}
	// an oversold position, never valued
	movements := []patrimoine.Movement{
		{Holding: "scpi", Date: patrimoine.NewDate(2024, 1, 1), Kind: patrimoine.Buy, Amount: patrimoine.EUR(1000), Quantity: patrimoine.Q(10), Price: patrimoine.EUR(100)},
		{Holding: "scpi", Date: patrimoine.NewDate(2024, 2, 1), Kind: patrimoine.Sell, Amount: patrimoine.EUR(1500), Quantity: patrimoine.Q(15), Price: patrimoine.EUR(100)},
	}
	for _, m := range movements {
		if err := l.Record(m); err != nil {
			t.Fatal(err)
		}
	}
	s := l.Summary(patrimoine.NewDate(2024, 12, 31))
	md := DashboardMarkdown(&s)

	if !strings.Contains(md, "n/a") {
		t.Errorf("dashboard misses the n/a placeholder for an unvalued holding:\n%s", md)
	}
	if !strings.Contains(md, "## Anomalies") || !strings.Contains(md, "overdrawn") {
		t.Errorf("dashboard misses the overdrawn anomaly:\n%s", md)
	}
}

func TestProjectionMarkdown(t *testing.T) {
	table, err := patrimoine.NewProjectionTable(
		patrimoine.EUR(1000), decimal.NewFromFloat(0), patrimoine.EUR(100), patrimoine.Monthly, 2)
	if err != nil {
		t.Fatal(err)
	}
	md := ProjectionMarkdown("Savings plan", table)

	for _, want := range []string{
		"# Savings plan",
		"| Year | Start | Contributions | Gains | End |",
		"| 1 |",
		"| 2 |",
		"**Total**",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("projection markdown misses %q:\n%s", want, md)
		}
	}
	if strings.Contains(md, "error") {
		t.Errorf("projection markdown contains a template error:\n%s", md)
	}
}
