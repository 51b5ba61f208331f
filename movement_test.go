package patrimoine

import (
	"strings"
	"testing"
)

func TestMovementKind_Parse(t *testing.T) {
	for _, kind := range []MovementKind{Deposit, Withdraw, Buy, Sell, Distribution, Fee} {
		got, err := ParseMovementKind(kind.String())
		if err != nil {
			t.Errorf("ParseMovementKind(%q) failed: %v", kind, err)
		}
		if got != kind {
			t.Errorf("ParseMovementKind(%q) = %v, want %v", kind, got, kind)
		}
	}
	if _, err := ParseMovementKind("transfer"); err == nil {
		t.Error("ParseMovementKind(\"transfer\") succeeded, want error")
	}
}

func TestMovement_Check(t *testing.T) {
	day := NewDate(2024, 5, 1)
	testCases := []struct {
		name     string
		holding  Holding
		movement Movement
		wantErr  string // empty for a valid movement
	}{
		{
			name:     "valid deposit",
			holding:  testCash,
			movement: Movement{Holding: "cash", Date: day, Kind: Deposit, Amount: EUR(100)},
		},
		{
			name:     "valid buy",
			holding:  testSCPI,
			movement: Movement{Holding: "scpi", Date: day, Kind: Buy, Amount: EUR(2500), Quantity: Q(10), Price: EUR(250)},
		},
		{
			name:    "amount within one cent of the cross product",
			holding: testSCPI,
			movement: Movement{Holding: "scpi", Date: day, Kind: Buy,
				Amount: EUR(2500.01), Quantity: Q(10), Price: EUR(250)},
		},
		{
			name:    "amount off by more than one cent",
			holding: testSCPI,
			movement: Movement{Holding: "scpi", Date: day, Kind: Buy,
				Amount: EUR(2501), Quantity: Q(10), Price: EUR(250)},
			wantErr: "does not match",
		},
		{
			name:     "wrong holding",
			holding:  testCash,
			movement: Movement{Holding: "scpi", Date: day, Kind: Deposit, Amount: EUR(100)},
			wantErr:  "belongs to holding",
		},
		{
			name:     "negative amount",
			holding:  testCash,
			movement: Movement{Holding: "cash", Date: day, Kind: Deposit, Amount: EUR(-1)},
			wantErr:  "must not be negative",
		},
		{
			name:     "buy without quantity",
			holding:  testSCPI,
			movement: Movement{Holding: "scpi", Date: day, Kind: Buy, Amount: EUR(100), Price: EUR(100)},
			wantErr:  "requires a positive quantity",
		},
		{
			name:     "buy without price",
			holding:  testSCPI,
			movement: Movement{Holding: "scpi", Date: day, Kind: Buy, Amount: EUR(100), Quantity: Q(1)},
			wantErr:  "requires a unit price",
		},
		{
			name:    "buy on a unit-less holding",
			holding: testCash,
			movement: Movement{Holding: "cash", Date: day, Kind: Buy,
				Amount: EUR(100), Quantity: Q(1), Price: EUR(100)},
			wantErr: "not quantity-based",
		},
		{
			name:     "deposit with a quantity",
			holding:  testSCPI,
			movement: Movement{Holding: "scpi", Date: day, Kind: Deposit, Amount: EUR(100), Quantity: Q(1)},
			wantErr:  "must not carry a quantity",
		},
		{
			name:     "fee with a unit price",
			holding:  testSCPI,
			movement: Movement{Holding: "scpi", Date: day, Kind: Fee, Amount: EUR(10), Price: EUR(10)},
			wantErr:  "must not carry a unit price",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.movement.Check(tc.holding)
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Check() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Check() = nil, want error containing %q", tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Check() = %q, want it to contain %q", err, tc.wantErr)
			}
		})
	}
}
