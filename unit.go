package patrimoine

// Unit normalization.
//
// A holding declares the denomination its quantities are tracked in. For
// sub-divisible assets the canonical denomination is the atomic unit (the
// satoshi), and the unit price is quoted per atomic unit. The conversion
// between denominations is a pure decimal-point shift: the invariant is that
// quantity x price reproduces the monetary amount at the currency precision,
// and shifting both legs by opposite exponents preserves the product exactly.
// Converting through an intermediate whole-coin value (a division followed by
// a multiplication) would compound rounding error and is never done here.

// NormalizeUnits converts a (quantity, unit price) pair expressed in the
// holding's display denomination (whole coins, shares) into the canonical
// atomic denomination. For holdings without a sub-unit it returns its inputs
// unchanged.
func NormalizeUnits(h Holding, quantity Quantity, price Money) (Quantity, Money) {
	dec := h.Unit.Decimals()
	if dec == 0 {
		return quantity, price
	}
	return quantity.Shift(dec), price.Shift(-dec)
}

// DisplayUnits converts a canonical (quantity, unit price) pair back to the
// holding's display denomination, for presentation only.
func DisplayUnits(h Holding, quantity Quantity, price Money) (Quantity, Money) {
	dec := h.Unit.Decimals()
	if dec == 0 {
		return quantity, price
	}
	return quantity.Shift(-dec), price.Shift(dec)
}

// Amount returns the monetary amount of a canonical (quantity, unit price)
// pair, computed directly in the canonical denomination.
func Amount(quantity Quantity, price Money) Money {
	return price.Mul(quantity)
}
