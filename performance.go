package patrimoine

// HoldingPerformance combines a holding's replayed position with its resolved
// valuation into the figures shown on the dashboard.
type HoldingPerformance struct {
	Holding   Holding
	Position  Position
	Valuation Valuation

	CurrentValue   Money   // quantity x resolved unit price, or the resolved total
	Valued         bool    // false when no valuation is available
	Performance    Money   // current value minus net invested amount
	PerformancePct Percent // performance relative to net invested, 0 when undefined
	UnrealizedGain Money   // (unit price - average cost) x quantity
	AllocationPct  Percent // share of the portfolio's total value, set by the summary
}

// PortfolioSummary aggregates per-holding performance across the portfolio.
// Holdings without a valuation are excluded from value-dependent totals but
// still counted in the invested total.
type PortfolioSummary struct {
	Date          Date
	Currency      string
	TotalValue    Money
	TotalInvested Money
	TotalGain     Money
	GainPct       Percent
	CashAvailable Money
	Holdings      []HoldingPerformance
}

// ratioPercent returns num/den as a percentage, or 0 when the denominator is
// zero. The zero guard is a deliberate policy for degenerate divisions, not
// an error.
func ratioPercent(num, den Money) Percent {
	if den.IsZero() {
		return 0
	}
	return Percent(100 * num.AsFloat() / den.AsFloat())
}

// ComputeHoldingPerformance computes a holding's current value, performance
// and unrealized gain from its date-ordered movements and valuation records,
// as of a date. It is a pure function: a deterministic result, no side
// effects, no access to storage.
func ComputeHoldingPerformance(h Holding, movements []Movement, prices []PriceRecord, asOf Date) HoldingPerformance {
	var upTo []Movement
	for _, m := range movements {
		if m.Date.After(asOf) {
			continue
		}
		upTo = append(upTo, m)
	}
	pos := Aggregate(h, upTo)
	val := ResolveValuation(h, prices, asOf, pos)

	perf := HoldingPerformance{
		Holding:        h,
		Position:       pos,
		Valuation:      val,
		Valued:         val.OK,
		CurrentValue:   h.Zero(),
		Performance:    h.Zero(),
		UnrealizedGain: h.Zero(),
	}
	if !val.OK {
		return perf
	}
	if h.HasQuantity() && !val.Price.IsZero() {
		perf.CurrentValue = val.Price.Mul(pos.Quantity)
		perf.UnrealizedGain = val.Price.Sub(pos.AverageCost()).Mul(pos.Quantity)
	} else {
		perf.CurrentValue = val.Total
	}
	perf.Performance = perf.CurrentValue.Sub(pos.NetInvested)
	perf.PerformancePct = ratioPercent(perf.Performance, pos.NetInvested)
	return perf
}

// ComputePortfolioSummary computes every holding's performance and the
// portfolio-level totals. Totals are plain sums of per-holding current value
// and net invested amount; allocation is each valued holding's share of the
// total value (0 when the portfolio total is 0).
func ComputePortfolioSummary(holdings []Holding, movements map[string][]Movement, prices map[string][]PriceRecord, asOf Date) PortfolioSummary {
	currency := "EUR"
	if len(holdings) > 0 {
		currency = holdings[0].Currency
	}
	s := PortfolioSummary{
		Date:          asOf,
		Currency:      currency,
		TotalValue:    M(0, currency),
		TotalInvested: M(0, currency),
		CashAvailable: M(0, currency),
	}
	for _, h := range holdings {
		p := ComputeHoldingPerformance(h, movements[h.ID], prices[h.ID], asOf)
		s.Holdings = append(s.Holdings, p)
		s.TotalInvested = s.TotalInvested.Add(p.Position.NetInvested)
		if !p.Valued {
			continue
		}
		s.TotalValue = s.TotalValue.Add(p.CurrentValue)
		if h.Type == Cash {
			s.CashAvailable = s.CashAvailable.Add(p.CurrentValue)
		}
	}
	s.TotalGain = s.TotalValue.Sub(s.TotalInvested)
	s.GainPct = ratioPercent(s.TotalGain, s.TotalInvested)
	for i := range s.Holdings {
		if !s.Holdings[i].Valued {
			continue
		}
		s.Holdings[i].AllocationPct = ratioPercent(s.Holdings[i].CurrentValue, s.TotalValue)
	}
	return s
}

// Summary is a convenience over ComputePortfolioSummary using the ledger's
// own collections.
func (l *Ledger) Summary(asOf Date) PortfolioSummary {
	holdings := l.Holdings()
	movements := make(map[string][]Movement, len(holdings))
	prices := make(map[string][]PriceRecord, len(holdings))
	for _, h := range holdings {
		movements[h.ID] = l.MovementsOf(h.ID)
		prices[h.ID] = l.PricesOf(h.ID)
	}
	return ComputePortfolioSummary(holdings, movements, prices, asOf)
}
