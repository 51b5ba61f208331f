package patrimoine

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func rate(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func TestProject_ZeroRateIsConstant(t *testing.T) {
	seq, err := Project(EUR(5000), rate(0), EUR(0), Monthly, 36)
	if err != nil {
		t.Fatal(err)
	}
	count := 0
	for p, v := range seq {
		assertMoney(t, "value", v, 5000)
		if p != count {
			t.Fatalf("period = %d, want %d", p, count)
		}
		count++
	}
	if count != 37 {
		t.Errorf("yielded %d pairs, want 37 (periods 0 to 36)", count)
	}
}

func TestProject_ContributionsOnly(t *testing.T) {
	seq, err := Project(EUR(0), rate(0), EUR(100), Monthly, 24)
	if err != nil {
		t.Fatal(err)
	}
	assertMoney(t, "FinalValue", FinalValue(seq), 2400)
}

// TestProject_AnnualCompounding checks the classic compound-interest result:
// 10000 at 8% annually over 10 years.
func TestProject_AnnualCompounding(t *testing.T) {
	seq, err := Project(EUR(10000), rate(0.08), EUR(0), Annual, 10)
	if err != nil {
		t.Fatal(err)
	}
	assertMoney(t, "FinalValue", FinalValue(seq), 21589.25)
}

// TestProject_PeriodRateIsSimpleDivision checks that the per-period rate is
// the annual rate divided by the number of periods, not a geometric root.
func TestProject_PeriodRateIsSimpleDivision(t *testing.T) {
	seq, err := Project(EUR(1200), rate(0.12), EUR(0), Monthly, 1)
	if err != nil {
		t.Fatal(err)
	}
	// one month at 0.12/12 = 1%
	assertMoney(t, "value after one month", FinalValue(seq), 1212)
}

func TestProject_Restartable(t *testing.T) {
	seq, err := Project(EUR(1000), rate(0.05), EUR(50), Quarterly, 20)
	if err != nil {
		t.Fatal(err)
	}
	first := FinalValue(seq)
	second := FinalValue(seq)
	if !first.Equal(second) {
		t.Errorf("second pass = %s, want %s: the sequence must replay from period 0", second, first)
	}

	// an early break leaves the sequence reusable too
	for p := range seq {
		if p == 3 {
			break
		}
	}
	if got := FinalValue(seq); !got.Equal(first) {
		t.Errorf("after early break = %s, want %s", got, first)
	}
}

func TestProject_ParameterErrors(t *testing.T) {
	if _, err := Project(EUR(1000), rate(0.05), EUR(0), Annual, -1); !errors.Is(err, ErrNegativeHorizon) {
		t.Errorf("negative horizon: err = %v, want ErrNegativeHorizon", err)
	}
	if _, err := Project(EUR(1000), rate(0.05), EUR(0), Frequency(99), 10); !errors.Is(err, ErrInvalidFrequency) {
		t.Errorf("unknown frequency: err = %v, want ErrInvalidFrequency", err)
	}
}

func TestProject_ZeroHorizon(t *testing.T) {
	seq, err := Project(EUR(777), rate(0.10), EUR(100), Annual, 0)
	if err != nil {
		t.Fatal(err)
	}
	count := 0
	for _, v := range seq {
		assertMoney(t, "value", v, 777)
		count++
	}
	if count != 1 {
		t.Errorf("yielded %d pairs, want only period 0", count)
	}
}

// TestProjectSchedule_RateChangeAtNextBoundary checks that a rate change takes
// effect at the following period boundary, never retroactively.
func TestProjectSchedule_RateChangeAtNextBoundary(t *testing.T) {
	start := NewDate(2024, 1, 1)
	schedule := RateSchedule{
		{Holding: "book", Effective: NewDate(2024, 1, 1), AnnualRate: rate(0.04)},
		{Holding: "book", Effective: NewDate(2024, 4, 1), AnnualRate: rate(0.08)},
	}

	seq, err := ProjectSchedule(EUR(10000), schedule, start, EUR(0), Quarterly, 2)
	if err != nil {
		t.Fatal(err)
	}
	values := map[int]Money{}
	for p, v := range seq {
		values[p] = v
	}
	// first quarter at 0.04/4 = 1%, second at 0.08/4 = 2%
	assertMoney(t, "after Q1", values[1], 10100)
	assertMoney(t, "after Q2", values[2], 10302)
}

// TestProjectSchedule_RateBeforeFirstEntry checks that periods before any
// effective entry grow at rate zero.
func TestProjectSchedule_RateBeforeFirstEntry(t *testing.T) {
	schedule := RateSchedule{
		{Holding: "book", Effective: NewDate(2024, 7, 1), AnnualRate: rate(0.12)},
	}

	seq, err := ProjectSchedule(EUR(1200), schedule, NewDate(2024, 6, 1), EUR(0), Monthly, 2)
	if err != nil {
		t.Fatal(err)
	}
	values := map[int]Money{}
	for p, v := range seq {
		values[p] = v
	}
	// June grows at 0, July at 0.12/12 = 1%
	assertMoney(t, "after June", values[1], 1200)
	assertMoney(t, "after July", values[2], 1212)
}

func TestNewProjectionTable(t *testing.T) {
	table, err := NewProjectionTable(EUR(1000), rate(0), EUR(100), Monthly, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(table.Rows) != 3 {
		t.Fatalf("len(Rows) = %d, want 3", len(table.Rows))
	}
	for i, row := range table.Rows {
		if row.Year != i+1 {
			t.Errorf("Rows[%d].Year = %d, want %d", i, row.Year, i+1)
		}
		assertMoney(t, "Contributions", row.Contributions, 1200)
		assertMoney(t, "Gains", row.Gains, 0)
	}
	assertMoney(t, "Rows[0].StartValue", table.Rows[0].StartValue, 1000)
	assertMoney(t, "Rows[2].EndValue", table.Rows[2].EndValue, 4600)
	assertMoney(t, "FinalValue", table.FinalValue, 4600)
	assertMoney(t, "TotalContributed", table.TotalContributed, 4600)
	assertMoney(t, "TotalGains", table.TotalGains, 0)
}

func TestNewProjectionTable_GainsAddUp(t *testing.T) {
	table, err := NewProjectionTable(EUR(10000), rate(0.08), EUR(0), Annual, 10)
	if err != nil {
		t.Fatal(err)
	}
	assertMoney(t, "FinalValue", table.FinalValue, 21589.25)

	sum := EUR(0)
	for _, row := range table.Rows {
		sum = sum.Add(row.Gains)
	}
	if !sum.Equal(table.TotalGains) {
		t.Errorf("sum of yearly gains = %s, want TotalGains %s", sum, table.TotalGains)
	}
}
