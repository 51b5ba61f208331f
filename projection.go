package patrimoine

import (
	"errors"
	"fmt"
	"iter"

	"github.com/shopspring/decimal"
)

// Frequency is the contribution and compounding frequency of a projection.
type Frequency int

const (
	Monthly Frequency = iota
	Quarterly
	Annual
)

func (f Frequency) String() string {
	switch f {
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case Annual:
		return "annual"
	default:
		return "unknown"
	}
}

// ParseFrequency parses a string into a Frequency.
func ParseFrequency(s string) (Frequency, error) {
	switch s {
	case "monthly":
		return Monthly, nil
	case "quarterly":
		return Quarterly, nil
	case "annual", "yearly":
		return Annual, nil
	default:
		return 0, fmt.Errorf("unknown frequency: %q", s)
	}
}

// PeriodsPerYear returns the number of periods per year, or 0 for an
// unknown frequency.
func (f Frequency) PeriodsPerYear() int {
	switch f {
	case Monthly:
		return 12
	case Quarterly:
		return 4
	case Annual:
		return 1
	default:
		return 0
	}
}

// months returns the length of one period in months.
func (f Frequency) months() int { return 12 / f.PeriodsPerYear() }

// Malformed projection parameters are a caller contract violation: no
// meaningful partial result exists, so they are rejected up front.
var (
	ErrNegativeHorizon  = errors.New("projection horizon must not be negative")
	ErrInvalidFrequency = errors.New("projection frequency must have a positive number of periods per year")
)

var one = decimal.NewFromInt(1)

// Project computes a compound-growth trajectory: starting from an initial
// capital, each period applies value = value x (1 + rate/periodsPerYear) and
// adds the contribution. It returns a lazy, finite sequence of (period,
// cumulative value) pairs, one per period from 0 to the horizon inclusive.
// The sequence is restartable: every range over it replays from period 0.
func Project(initial Money, annualRate decimal.Decimal, contribution Money, freq Frequency, horizon int) (iter.Seq2[int, Money], error) {
	return projectWith(initial, contribution, freq, horizon, func(int) decimal.Decimal { return annualRate })
}

// ProjectSchedule is Project with a time-varying rate: the annual rate is
// re-resolved from the schedule at the start of each period, so a rate change
// takes effect at the next period boundary, never retroactively. The start
// date anchors period 1.
func ProjectSchedule(initial Money, schedule RateSchedule, start Date, contribution Money, freq Frequency, horizon int) (iter.Seq2[int, Money], error) {
	return projectWith(initial, contribution, freq, horizon, func(period int) decimal.Decimal {
		return schedule.On(start.AddMonths((period - 1) * freq.months()))
	})
}

func projectWith(initial, contribution Money, freq Frequency, horizon int, rateFor func(period int) decimal.Decimal) (iter.Seq2[int, Money], error) {
	if horizon < 0 {
		return nil, ErrNegativeHorizon
	}
	periods := freq.PeriodsPerYear()
	if periods <= 0 {
		return nil, ErrInvalidFrequency
	}
	perYear := decimal.NewFromInt(int64(periods))
	return func(yield func(int, Money) bool) {
		value := initial
		if !yield(0, value) {
			return
		}
		for p := 1; p <= horizon; p++ {
			rate := rateFor(p).Div(perYear)
			value = value.Mul(Q(one.Add(rate))).Add(contribution)
			if !yield(p, value) {
				return
			}
		}
	}, nil
}

// FinalValue drains a projection sequence and returns its last value.
func FinalValue(seq iter.Seq2[int, Money]) Money {
	var last Money
	for _, v := range seq {
		last = v
	}
	return last
}

// ProjectionRow is one year of a projection table.
type ProjectionRow struct {
	Year          int
	StartValue    Money
	Contributions Money
	Gains         Money
	EndValue      Money
}

// ProjectionTable is a year-by-year view of a projection, for reporting.
type ProjectionTable struct {
	Initial          Money
	Contribution     Money
	Frequency        Frequency
	Years            int
	Rows             []ProjectionRow
	FinalValue       Money
	TotalContributed Money
	TotalGains       Money
}

// NewProjectionTable folds a projection over whole years into a table: per
// year the starting value, the contributions paid in, the gains earned, and
// the ending value.
func NewProjectionTable(initial Money, annualRate decimal.Decimal, contribution Money, freq Frequency, years int) (*ProjectionTable, error) {
	periods := freq.PeriodsPerYear()
	seq, err := Project(initial, annualRate, contribution, freq, years*periods)
	if err != nil {
		return nil, err
	}
	t := &ProjectionTable{
		Initial:          initial,
		Contribution:     contribution,
		Frequency:        freq,
		Years:            years,
		TotalContributed: initial,
	}
	start := initial
	for p, value := range seq {
		t.FinalValue = value
		if p == 0 || p%periods != 0 {
			continue
		}
		contributed := contribution.Mul(Q(periods))
		t.Rows = append(t.Rows, ProjectionRow{
			Year:          p / periods,
			StartValue:    start,
			Contributions: contributed,
			Gains:         value.Sub(start).Sub(contributed),
			EndValue:      value,
		})
		t.TotalContributed = t.TotalContributed.Add(contributed)
		start = value
	}
	t.TotalGains = t.FinalValue.Sub(t.TotalContributed)
	return t, nil
}
