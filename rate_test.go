package patrimoine

import "testing"

func TestRateSchedule_On(t *testing.T) {
	schedule := RateSchedule{
		{Holding: "book", Effective: NewDate(2023, 2, 1), AnnualRate: rate(0.03)},
		{Holding: "book", Effective: NewDate(2025, 2, 1), AnnualRate: rate(0.024)},
	}

	testCases := []struct {
		name string
		on   Date
		want float64
	}{
		{"before any entry", NewDate(2023, 1, 31), 0},
		{"on the effective date", NewDate(2023, 2, 1), 0.03},
		{"between two entries", NewDate(2024, 8, 1), 0.03},
		{"after the last change", NewDate(2025, 6, 1), 0.024},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := schedule.On(tc.on)
			if !got.Equal(rate(tc.want)) {
				t.Errorf("On(%s) = %s, want %v", tc.on, got, tc.want)
			}
		})
	}
}
