package finance

import "math"

// MonthlyPayment computes the fixed installment of a standard fixed-rate
// amortizing loan using the closed-form annuity formula:
//
//	payment = P * r * (1+r)^n / ((1+r)^n - 1)
//
// where r is the monthly rate and n the number of installments. A zero
// interest rate is a valid domain state, handled by straight division so
// that payment * n equals the principal exactly.
//
// (1+r)^n - 1 cannot underflow to zero for r > 0 and n >= 12 under double
// precision, so no further special-casing is needed.
func MonthlyPayment(principal, annualRatePercent float64, years int) float64 {
	n := float64(years * MonthsPerYear)
	if annualRatePercent == 0 {
		return principal / n
	}
	r := annualRatePercent / 100 / MonthsPerYear
	growth := math.Pow(1+r, n)
	return principal * r * growth / (growth - 1)
}
