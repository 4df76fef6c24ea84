package loancalc

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.005
}

func TestAmortizeReferenceLoan(t *testing.T) {
	// 10,000 at 5%/yr over 12 months.
	s := Amortize(10000, 5, 12)

	if !almostEqual(s.MonthlyPayment, 856.07) {
		t.Errorf("MonthlyPayment = %.2f, want 856.07", s.MonthlyPayment)
	}
	if !almostEqual(s.TotalPayment, 10272.84) {
		t.Errorf("TotalPayment = %.2f, want 10272.84", s.TotalPayment)
	}
	if !almostEqual(s.TotalInterest, 272.84) {
		t.Errorf("TotalInterest = %.2f, want 272.84", s.TotalInterest)
	}
}

func TestAmortizeIdentities(t *testing.T) {
	cases := []struct {
		name      string
		principal float64
		rate      float64
		months    int
	}{
		{"small 6 months", 500, 5, 6},
		{"standard 12 months", 10000, 5, 12},
		{"long 36 months", 25000, 5, 36},
		{"high rate", 12000, 18, 24},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			s := Amortize(tc.principal, tc.rate, tc.months)

			if s.MonthlyPayment <= 0 {
				t.Fatalf("MonthlyPayment = %v, want > 0", s.MonthlyPayment)
			}
			// monthly*n must round to the total, and total-principal to the
			// interest, within a cent of rounding drift per the 2dp contract.
			if !almostEqual(s.MonthlyPayment*float64(tc.months), s.TotalPayment) {
				t.Errorf("monthly*n = %.4f, total = %.2f",
					s.MonthlyPayment*float64(tc.months), s.TotalPayment)
			}
			if !almostEqual(s.TotalPayment-tc.principal, s.TotalInterest) {
				t.Errorf("total-principal = %.4f, interest = %.2f",
					s.TotalPayment-tc.principal, s.TotalInterest)
			}
		})
	}
}

func TestAmortizeDegenerateInputs(t *testing.T) {
	cases := []struct {
		name      string
		principal float64
		rate      float64
		months    int
	}{
		{"zero principal", 0, 5, 12},
		{"negative principal", -100, 5, 12},
		{"zero months", 10000, 5, 0},
		{"negative months", 10000, 5, -6},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			s := Amortize(tc.principal, tc.rate, tc.months)
			if s != (Schedule{}) {
				t.Errorf("Amortize(%v, %v, %v) = %+v, want zero schedule",
					tc.principal, tc.rate, tc.months, s)
			}
		})
	}
}

func TestAmortizeZeroRate(t *testing.T) {
	s := Amortize(1200, 0, 12)
	if s.MonthlyPayment != 100 {
		t.Errorf("MonthlyPayment = %v, want 100", s.MonthlyPayment)
	}
	if s.TotalInterest != 0 {
		t.Errorf("TotalInterest = %v, want 0", s.TotalInterest)
	}
	if s.TotalPayment != 1200 {
		t.Errorf("TotalPayment = %v, want 1200", s.TotalPayment)
	}
}
