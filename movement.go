package patrimoine

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MovementKind is the closed set of movement kinds a ledger can contain.
type MovementKind int

const (
	Deposit MovementKind = iota
	Withdraw
	Buy
	Sell
	Distribution
	Fee
)

func (k MovementKind) String() string {
	switch k {
	case Deposit:
		return "deposit"
	case Withdraw:
		return "withdraw"
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	case Distribution:
		return "distribution"
	case Fee:
		return "fee"
	default:
		return "unknown"
	}
}

// ParseMovementKind parses a string into a MovementKind.
func ParseMovementKind(s string) (MovementKind, error) {
	switch s {
	case "deposit":
		return Deposit, nil
	case "withdraw":
		return Withdraw, nil
	case "buy":
		return Buy, nil
	case "sell":
		return Sell, nil
	case "distribution":
		return Distribution, nil
	case "fee":
		return Fee, nil
	default:
		return 0, fmt.Errorf("unknown movement kind: %q", s)
	}
}

// HasQuantity reports whether movements of this kind carry a quantity and a
// unit price (buy and sell), as opposed to pure cash movements.
func (k MovementKind) HasQuantity() bool { return k == Buy || k == Sell }

// Movement is a dated, typed event changing cash or quantity of a holding.
// Movements are immutable once recorded; an edit is a retraction followed by
// a re-insertion, so a replay always sees a consistent ordered sequence.
type Movement struct {
	Holding  string       // holding identifier
	Date     Date         // date of the movement
	Kind     MovementKind // one of the six movement kinds
	Amount   Money        // non-negative monetary amount
	Quantity Quantity     // required for buy/sell, zero otherwise
	Price    Money        // unit price, present exactly when Quantity is
	Memo     string       // optional rationale
}

// crossTolerance is the maximum accepted distance between a movement's amount
// and the product quantity x unit price: one cent, i.e. agreement at the
// currency precision.
var crossTolerance = decimal.New(1, -2)

// Check verifies the movement's internal consistency for the given holding.
// A non-nil error describes an input inconsistency; the aggregator reports it
// as an anomaly rather than aborting.
func (m Movement) Check(h Holding) error {
	if m.Holding != h.ID {
		return fmt.Errorf("movement belongs to holding %q, not %q", m.Holding, h.ID)
	}
	if m.Amount.IsNegative() {
		return fmt.Errorf("%s of %s: amount must not be negative", m.Kind, m.Amount)
	}
	if m.Kind.HasQuantity() {
		if !m.Quantity.IsPositive() {
			return fmt.Errorf("%s requires a positive quantity", m.Kind)
		}
		if m.Price.IsZero() {
			return fmt.Errorf("%s requires a unit price", m.Kind)
		}
		if !h.HasQuantity() {
			return fmt.Errorf("%s on %q: holding is not quantity-based", m.Kind, h.ID)
		}
		product := m.Price.Mul(m.Quantity)
		diff := m.Amount.Sub(product).value.Abs()
		if diff.GreaterThan(crossTolerance) {
			return fmt.Errorf("%s: amount %s does not match %s x %s = %s",
				m.Kind, m.Amount, m.Quantity, m.Price, product)
		}
		return nil
	}
	if !m.Quantity.IsZero() {
		return fmt.Errorf("%s must not carry a quantity", m.Kind)
	}
	if !m.Price.IsZero() {
		return fmt.Errorf("%s must not carry a unit price", m.Kind)
	}
	return nil
}
