package patrimoine

import "fmt"

// HoldingType identifies the kind of investment product a holding represents.
type HoldingType string

const (
	Cash      HoldingType = "CASH"
	Savings   HoldingType = "SAVINGS"
	SCPI      HoldingType = "SCPI"
	Bitcoin   HoldingType = "BITCOIN"
	Insurance HoldingType = "INSURANCE"
	PER       HoldingType = "PER"
	FCPI      HoldingType = "FCPI"
)

// ParseHoldingType parses a string into a HoldingType.
func ParseHoldingType(s string) (HoldingType, error) {
	switch HoldingType(s) {
	case Cash, Savings, SCPI, Bitcoin, Insurance, PER, FCPI:
		return HoldingType(s), nil
	default:
		return "", fmt.Errorf("unknown holding type: %q", s)
	}
}

// QuantityUnit declares how a holding's quantity is denominated.
type QuantityUnit int

const (
	// UnitNone is for holdings tracked by value only (cash, insurance wrappers).
	UnitNone QuantityUnit = iota
	// UnitShares is for whole or fractional fund shares (SCPI parts).
	UnitShares
	// UnitSats is for satoshi-denominated assets. Quantities and unit prices
	// are carried in the atomic unit, 1e-8 of a whole coin.
	UnitSats
)

func (u QuantityUnit) String() string {
	switch u {
	case UnitNone:
		return "NONE"
	case UnitShares:
		return "SHARES"
	case UnitSats:
		return "SATS"
	default:
		return "unknown"
	}
}

// ParseQuantityUnit parses a string into a QuantityUnit.
func ParseQuantityUnit(s string) (QuantityUnit, error) {
	switch s {
	case "NONE", "":
		return UnitNone, nil
	case "SHARES":
		return UnitShares, nil
	case "SATS":
		return UnitSats, nil
	default:
		return 0, fmt.Errorf("unknown quantity unit: %q", s)
	}
}

// Decimals returns the number of decimal places separating the display
// denomination from the atomic denomination (8 for satoshis: 1 BTC = 1e8 sats).
func (u QuantityUnit) Decimals() int32 {
	if u == UnitSats {
		return 8
	}
	return 0
}

// Holding is a single tracked asset or account within the portfolio.
// It is read-only to the calculation engine.
type Holding struct {
	ID       string
	Name     string
	Type     HoldingType
	Unit     QuantityUnit
	Currency string
}

// HasQuantity reports whether the holding tracks a unit quantity
// (shares, satoshis) in addition to cash flows.
func (h Holding) HasQuantity() bool { return h.Unit != UnitNone }

// CashLike reports whether the holding is a cash or savings account, valued
// at par (its net invested amount) when no explicit valuation exists.
func (h Holding) CashLike() bool { return h.Type == Cash || h.Type == Savings }

// Zero returns the zero monetary value in the holding's currency.
func (h Holding) Zero() Money { return M(0, h.Currency) }
