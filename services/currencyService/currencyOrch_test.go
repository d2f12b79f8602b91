package currencyService

import "testing"

func TestCrystalTax(t *testing.T) {
	tests := []struct {
		name     string
		amount   int64
		taxRate  int
		expected int64
	}{
		{"No guild tax", 1000, 0, 0},
		{"Five percent", 1000, 5, 50},
		{"Rounds down", 99, 5, 4},
		{"Full rate", 1000, 100, 1000},
		{"Negative rate ignored", 1000, -10, 0},
		{"Zero amount", 0, 5, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CrystalTax(tc.amount, tc.taxRate)
			if got != tc.expected {
				t.Errorf("expected %d, got %d", tc.expected, got)
			}
		})
	}
}

func TestSwapOutput(t *testing.T) {
	tests := []struct {
		name        string
		amount      float64
		rate        float64
		feePct      float64
		expectedOut float64
		expectedFee float64
	}{
		{"No fee", 100, 2, 0, 200, 0},
		{"Half percent fee", 100, 2, 0.5, 199, 0.5},
		{"Rate below one", 100, 0.25, 0, 25, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, fee := SwapOutput(tc.amount, tc.rate, tc.feePct)
			if out != tc.expectedOut {
				t.Errorf("expected output %.4f, got %.4f", tc.expectedOut, out)
			}
			if fee != tc.expectedFee {
				t.Errorf("expected fee %.4f, got %.4f", tc.expectedFee, fee)
			}
		})
	}
}
