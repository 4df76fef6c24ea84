package loancalc

import "math"

// DefaultAnnualRate is the cooperative's fixed annual interest rate (percent).
const DefaultAnnualRate = 5.0

// Schedule holds the amortization figures for a loan, rounded to cents.
type Schedule struct {
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalInterest  float64 `json:"total_interest"`
	TotalPayment   float64 `json:"total_payment"`
}

// Amortize computes equal monthly payments for principal at annualRate
// (percent per year) over months. Zero or negative principal/months, and a
// degenerate denominator, yield a zero schedule rather than an error.
func Amortize(principal, annualRate float64, months int) Schedule {
	if principal <= 0 || months <= 0 {
		return Schedule{}
	}

	monthlyRate := annualRate / 100 / 12
	if monthlyRate == 0 {
		// Interest-free: straight division.
		monthly := round2(principal / float64(months))
		return Schedule{
			MonthlyPayment: monthly,
			TotalInterest:  0,
			TotalPayment:   round2(monthly * float64(months)),
		}
	}

	growth := math.Pow(1+monthlyRate, float64(months))
	denom := growth - 1
	if denom == 0 {
		return Schedule{}
	}

	// Totals derive from the rounded monthly payment, so the figures a member
	// sees stay consistent: MonthlyPayment*months == TotalPayment to the cent.
	monthly := round2(principal * monthlyRate * growth / denom)
	total := monthly * float64(months)

	return Schedule{
		MonthlyPayment: monthly,
		TotalInterest:  round2(total - principal),
		TotalPayment:   round2(total),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
