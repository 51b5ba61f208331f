package patrimoine

import "github.com/shopspring/decimal"

// RateEntry is one entry of a cash-like holding's savings rate schedule: an
// annual rate in force from its effective date (0.03 for 3%).
type RateEntry struct {
	Holding    string
	Effective  Date
	AnnualRate decimal.Decimal
}

// RateSchedule is a holding's rate entries ordered by effective date.
type RateSchedule []RateEntry

// On returns the annual rate in force on a date: the latest entry whose
// effective date is not after it, or zero when none applies yet.
func (s RateSchedule) On(on Date) decimal.Decimal {
	rate := decimal.Zero
	for _, e := range s {
		if e.Effective.After(on) {
			break
		}
		rate = e.AnnualRate
	}
	return rate
}
