package patrimoine

// PriceRecord is an observed price or value of a holding at a specific date.
// Unit-less holdings carry a total value; quantity-based holdings carry a
// unit price in the canonical denomination. At most one record exists per
// (holding, date) pair.
type PriceRecord struct {
	Holding string
	Date    Date
	Price   Money // unit price per canonical unit, zero for unit-less holdings
	Total   Money // total value, zero for quantity-based holdings
}

// Valuation is the outcome of resolving a holding's value at a date.
type Valuation struct {
	Date     Date  // date of the observation used, possibly stale
	Price    Money // unit price per canonical unit, when applicable
	Total    Money // total value, when applicable
	Implicit bool  // true when the value is the par value of a cash-like holding
	OK       bool  // false when no valuation is available
}

// ResolveValuation selects the price record with the greatest date not after
// the as-of date. The value is always the most recent explicit observation:
// no interpolation, no extrapolation, no averaging. Cash-like holdings
// without an observation are valued at par, their net invested amount.
func ResolveValuation(h Holding, prices []PriceRecord, on Date, pos Position) Valuation {
	var found *PriceRecord
	for i := range prices {
		if prices[i].Holding != h.ID || prices[i].Date.After(on) {
			continue
		}
		if found == nil || prices[i].Date.After(found.Date) {
			found = &prices[i]
		}
	}
	if found != nil {
		return Valuation{Date: found.Date, Price: found.Price, Total: found.Total, OK: true}
	}
	if h.CashLike() {
		return Valuation{Date: on, Total: pos.NetInvested, Implicit: true, OK: true}
	}
	return Valuation{}
}
