package patrimoine

import (
	"math"
	"testing"
)

// Common holdings used across the package tests.
var (
	testCash = Holding{ID: "cash", Name: "Checking account", Type: Cash, Currency: "EUR"}
	testBook = Holding{ID: "book", Name: "Livret A", Type: Savings, Currency: "EUR"}
	testSCPI = Holding{ID: "scpi", Name: "SCPI parts", Type: SCPI, Unit: UnitShares, Currency: "EUR"}
	testBTC  = Holding{ID: "btc", Name: "Bitcoin wallet", Type: Bitcoin, Unit: UnitSats, Currency: "EUR"}
)

// assertMoney fails when got is more than half a cent away from want.
func assertMoney(t *testing.T, name string, got Money, want float64) {
	t.Helper()
	if math.Abs(got.AsFloat()-want) >= 0.005 {
		t.Errorf("%s = %s, want %.2f", name, got, want)
	}
}

// assertQuantity fails when got is not exactly want.
func assertQuantity(t *testing.T, name string, got, want Quantity) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("%s = %s, want %s", name, got, want)
	}
}

// newTestLedger creates a ledger with the common holdings declared.
func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	l := NewLedger()
	for _, h := range []Holding{testCash, testBook, testSCPI, testBTC} {
		if err := l.Declare(h); err != nil {
			t.Fatalf("Declare(%q) failed: %v", h.ID, err)
		}
	}
	return l
}

// mustRecord appends movements to the ledger, failing the test on error.
func mustRecord(t *testing.T, l *Ledger, movements ...Movement) {
	t.Helper()
	for _, m := range movements {
		if err := l.Record(m); err != nil {
			t.Fatalf("Record(%v) failed: %v", m, err)
		}
	}
}
