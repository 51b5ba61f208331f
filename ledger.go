package patrimoine

import (
	"fmt"
	"iter"
	"slices"
	"sort"
)

// AnomalyKind classifies a non-fatal problem found while replaying a
// holding's movement history.
type AnomalyKind int

const (
	// Inconsistency is a movement whose fields contradict each other
	// (amount vs quantity x price, missing or forbidden quantity).
	Inconsistency AnomalyKind = iota
	// Overdrawn is a sell or withdraw exceeding the running balance.
	Overdrawn
)

func (k AnomalyKind) String() string {
	switch k {
	case Inconsistency:
		return "inconsistency"
	case Overdrawn:
		return "overdrawn"
	default:
		return "unknown"
	}
}

// Anomaly is a structured report attached to a holding's result. A single bad
// record never blocks computing the rest of the portfolio; the caller decides
// whether to surface anomalies.
type Anomaly struct {
	Date    Date
	Kind    AnomalyKind
	Message string
}

func (a Anomaly) String() string {
	return fmt.Sprintf("%s %s: %s", a.Date, a.Kind, a.Message)
}

// Position is the state of a holding after replaying its full movement
// history: running quantity, cost basis, net invested amount and realized
// gain accumulators.
type Position struct {
	Holding      string
	Quantity     Quantity // canonical units currently held
	NetInvested  Money    // inflows minus outflows (see Aggregate)
	CostBasis    Money    // acquisition cost of the currently held quantity
	RealizedGain Money    // gains locked in by sales, against average cost
	Anomalies    []Anomaly
}

// AverageCost returns the weighted-average acquisition cost per canonical
// unit (PRU), or zero when no quantity is held.
func (p Position) AverageCost() Money {
	if p.Quantity.IsZero() {
		return M(0, p.NetInvested.Currency())
	}
	return p.CostBasis.Div(p.Quantity)
}

// Aggregate replays a holding's date-ordered movement sequence into a
// Position. The fold maintains:
//
//   - net invested: deposit, sell and distribution increase it; withdraw,
//     buy and fee decrease it. Distribution is a cash inflow only.
//   - quantity and cost basis: buy adds the movement's quantity and amount;
//     sell removes the quantity and reduces the cost basis by average cost x
//     sold quantity, so the average cost is unchanged by a sale.
//   - realized gain: proceeds minus average cost x sold quantity.
//
// A sell exceeding the held quantity, or a withdraw exceeding the cash
// balance of a cash-like holding, is clamped and reported as an Overdrawn
// anomaly. Inconsistent movements are reported and applied as recorded.
func Aggregate(h Holding, movements []Movement) Position {
	pos := Position{
		Holding:      h.ID,
		NetInvested:  h.Zero(),
		CostBasis:    h.Zero(),
		RealizedGain: h.Zero(),
	}
	for _, m := range movements {
		if err := m.Check(h); err != nil {
			pos.Anomalies = append(pos.Anomalies, Anomaly{Date: m.Date, Kind: Inconsistency, Message: err.Error()})
		}
		switch m.Kind {
		case Deposit, Distribution:
			pos.NetInvested = pos.NetInvested.Add(m.Amount)
		case Withdraw:
			if h.CashLike() && m.Amount.GreaterThan(pos.NetInvested) {
				pos.Anomalies = append(pos.Anomalies, Anomaly{
					Date: m.Date, Kind: Overdrawn,
					Message: fmt.Sprintf("withdraw %s exceeds balance %s", m.Amount, pos.NetInvested),
				})
				pos.NetInvested = h.Zero()
				continue
			}
			pos.NetInvested = pos.NetInvested.Sub(m.Amount)
		case Fee:
			pos.NetInvested = pos.NetInvested.Sub(m.Amount)
		case Buy:
			pos.NetInvested = pos.NetInvested.Sub(m.Amount)
			pos.Quantity = pos.Quantity.Add(m.Quantity)
			pos.CostBasis = pos.CostBasis.Add(m.Amount)
		case Sell:
			pos.NetInvested = pos.NetInvested.Add(m.Amount)
			sold := m.Quantity
			if sold.GreaterThan(pos.Quantity) {
				pos.Anomalies = append(pos.Anomalies, Anomaly{
					Date: m.Date, Kind: Overdrawn,
					Message: fmt.Sprintf("sell %s exceeds position %s", sold, pos.Quantity),
				})
				sold = pos.Quantity
			}
			avg := pos.AverageCost()
			consumed := avg.Mul(sold)
			pos.RealizedGain = pos.RealizedGain.Add(m.Amount.Sub(consumed))
			pos.CostBasis = pos.CostBasis.Sub(consumed)
			pos.Quantity = pos.Quantity.Sub(sold)
		}
	}
	return pos
}

// Ledger is the in-memory, replayable record of the portfolio: declared
// holdings and their date-ordered movements, valuations and rate entries.
//
// The engine functions consume plain ordered slices; the Ledger is the
// storage collaborator that owns them. Movements keep their insertion order
// within a date.
type Ledger struct {
	holdings  map[string]Holding
	movements []Movement
	prices    []PriceRecord
	rates     []RateEntry
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{holdings: make(map[string]Holding)}
}

// Declare registers a holding. Redeclaring an existing identifier replaces
// its definition.
func (l *Ledger) Declare(h Holding) error {
	if h.ID == "" {
		return fmt.Errorf("holding identifier is missing")
	}
	if h.Currency == "" {
		h.Currency = "EUR"
	}
	l.holdings[h.ID] = h
	return nil
}

// Holding returns the holding declared with this identifier, or nil if unknown.
func (l *Ledger) Holding(id string) *Holding {
	h, ok := l.holdings[id]
	if !ok {
		return nil
	}
	return &h
}

// Holdings returns all declared holdings sorted by identifier.
func (l *Ledger) Holdings() []Holding {
	out := make([]Holding, 0, len(l.holdings))
	for _, h := range l.holdings {
		out = append(out, h)
	}
	slices.SortFunc(out, func(a, b Holding) int {
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}
		return 0
	})
	return out
}

// Record appends a movement after checking that its holding is declared.
func (l *Ledger) Record(m Movement) error {
	h := l.Holding(m.Holding)
	if h == nil {
		return fmt.Errorf("holding %q not declared in ledger", m.Holding)
	}
	l.movements = append(l.movements, m)
	l.sortMovements()
	return nil
}

// RecordPrice appends a valuation record. A later record for the same
// (holding, date) pair replaces the earlier one.
func (l *Ledger) RecordPrice(p PriceRecord) error {
	if l.Holding(p.Holding) == nil {
		return fmt.Errorf("holding %q not declared in ledger", p.Holding)
	}
	for i, existing := range l.prices {
		if existing.Holding == p.Holding && existing.Date == p.Date {
			l.prices[i] = p
			return nil
		}
	}
	l.prices = append(l.prices, p)
	sort.SliceStable(l.prices, func(i, j int) bool { return l.prices[i].Date.Before(l.prices[j].Date) })
	return nil
}

// RecordRate appends a savings rate entry.
func (l *Ledger) RecordRate(r RateEntry) error {
	h := l.Holding(r.Holding)
	if h == nil {
		return fmt.Errorf("holding %q not declared in ledger", r.Holding)
	}
	if !h.CashLike() {
		return fmt.Errorf("holding %q is not cash-like, it cannot carry a rate schedule", r.Holding)
	}
	l.rates = append(l.rates, r)
	sort.SliceStable(l.rates, func(i, j int) bool { return l.rates[i].Effective.Before(l.rates[j].Effective) })
	return nil
}

// sortMovements keeps movements ordered by date, preserving insertion order
// within a date.
func (l *Ledger) sortMovements() {
	sort.SliceStable(l.movements, func(i, j int) bool {
		return l.movements[i].Date.Before(l.movements[j].Date)
	})
}

// MovementsOf returns the holding's date-ordered movements.
func (l *Ledger) MovementsOf(id string) []Movement {
	var out []Movement
	for _, m := range l.movements {
		if m.Holding == id {
			out = append(out, m)
		}
	}
	return out
}

// PricesOf returns the holding's date-ordered valuation records.
func (l *Ledger) PricesOf(id string) []PriceRecord {
	var out []PriceRecord
	for _, p := range l.prices {
		if p.Holding == id {
			out = append(out, p)
		}
	}
	return out
}

// RatesOf returns the holding's rate schedule ordered by effective date.
func (l *Ledger) RatesOf(id string) RateSchedule {
	var out RateSchedule
	for _, r := range l.rates {
		if r.Holding == id {
			out = append(out, r)
		}
	}
	return out
}

// All returns an iterator over all movements in chronological order.
func (l *Ledger) All() iter.Seq[Movement] {
	return func(yield func(Movement) bool) {
		for _, m := range l.movements {
			if !yield(m) {
				return
			}
		}
	}
}

// Position replays the holding's movements up to and including a date.
func (l *Ledger) Position(id string, on Date) (Position, error) {
	h := l.Holding(id)
	if h == nil {
		return Position{}, fmt.Errorf("holding %q not declared in ledger", id)
	}
	var upTo []Movement
	for _, m := range l.MovementsOf(id) {
		if m.Date.After(on) {
			break
		}
		upTo = append(upTo, m)
	}
	return Aggregate(*h, upTo), nil
}
