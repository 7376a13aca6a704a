package finance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/os4p/engine/internal/apperrors"
)

// TestModel_Price_ReferenceScenario pins the pilot reference quote:
// 5 outposts, 5% over 10 years, 15% SLA premium.
func TestModel_Price_ReferenceScenario(t *testing.T) {
	model := NewModel(DefaultConstants(), Opex{})

	quote, err := model.Price(Terms{
		NumOutposts:         5,
		InterestRatePercent: 5,
		LoanYears:           10,
		SLAPremiumPercent:   15,
	})
	require.NoError(t, err)

	assert.InDelta(t, 850000, quote.TotalCapex, 1e-6)
	assert.InDelta(t, 1062500, quote.PilotMarkup, 1e-6)
	assert.InDelta(t, 637500, quote.GrantAmount, 1e-6)
	assert.InDelta(t, 425000, quote.FinancedAmount, 1e-6)
	assert.InDelta(t, 4507.78, quote.MonthlyDebtPayment, 0.01)
	assert.InDelta(t, 1036.79, quote.MonthlyFeePerOutpost, 0.01)
	assert.InDelta(t, quote.MonthlyDebtPayment*120-425000, quote.TotalInterest, 1e-6)

	// Same annuity expressed as P*r/(1-(1+r)^-n) must agree bit-for-bit
	// within double precision.
	r := 0.05 / 12
	alt := 425000 * r / (1 - math.Pow(1+r, -120))
	assert.InDelta(t, alt, quote.MonthlyDebtPayment, 1e-6)
}

// TestModel_Price_ZeroInterest verifies the r == 0 branch is exact:
// payment * n must recover the principal with no drift.
func TestModel_Price_ZeroInterest(t *testing.T) {
	model := NewModel(DefaultConstants(), Opex{})

	quote, err := model.Price(Terms{
		NumOutposts:         1,
		InterestRatePercent: 0,
		LoanYears:           5,
	})
	require.NoError(t, err)

	assert.Equal(t, quote.FinancedAmount/60, quote.MonthlyDebtPayment)
	assert.InDelta(t, quote.FinancedAmount, quote.MonthlyDebtPayment*60, 1e-9)
	assert.GreaterOrEqual(t, quote.TotalInterest, -1e-9,
		"zero-rate total interest must not drift negative")
}

// TestModel_Price_Invariants checks the grant/financing identities across
// a spread of inputs.
func TestModel_Price_Invariants(t *testing.T) {
	tests := []struct {
		name  string
		terms Terms
	}{
		{name: "single outpost short term", terms: Terms{NumOutposts: 1, InterestRatePercent: 3.5, LoanYears: 1}},
		{name: "large fleet long term", terms: Terms{NumOutposts: 250, InterestRatePercent: 7.25, LoanYears: 25, SLAPremiumPercent: 40}},
		{name: "zero rate", terms: Terms{NumOutposts: 12, InterestRatePercent: 0, LoanYears: 8, SLAPremiumPercent: 5}},
		{name: "high rate", terms: Terms{NumOutposts: 3, InterestRatePercent: 19.9, LoanYears: 30}},
	}

	model := NewModel(DefaultConstants(), Opex{})
	constants := DefaultConstants()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := model.Price(tt.terms)
			require.NoError(t, err)

			wantFinanced := quote.TotalCapex * constants.PilotMarkupFactor * (1 - constants.GrantFraction)
			assert.InEpsilon(t, wantFinanced, quote.FinancedAmount, 1e-9)
			assert.InEpsilon(t, quote.PilotMarkup*constants.GrantFraction, quote.GrantAmount, 1e-9)
			assert.InDelta(t, quote.PilotMarkup-quote.GrantAmount, quote.FinancedAmount, 1e-6)

			n := float64(tt.terms.LoanYears * MonthsPerYear)
			assert.InDelta(t, quote.MonthlyDebtPayment*n-quote.FinancedAmount, quote.TotalInterest, 1e-6)
			assert.GreaterOrEqual(t, quote.TotalInterest, -1e-9)

			// SLA premium applies after the per-outpost split.
			wantFee := quote.MonthlyDebtPayment / float64(tt.terms.NumOutposts) * (1 + tt.terms.SLAPremiumPercent/100)
			assert.InDelta(t, wantFee, quote.MonthlyFeePerOutpost, 1e-9)
		})
	}
}

// TestModel_Price_Monotonicity: payment grows with rate and shrinks with term.
func TestModel_Price_Monotonicity(t *testing.T) {
	model := NewModel(DefaultConstants(), Opex{})

	var prev float64
	for i, rate := range []float64{0, 1, 2.5, 5, 7.5, 10, 15} {
		quote, err := model.Price(Terms{NumOutposts: 5, InterestRatePercent: rate, LoanYears: 10})
		require.NoError(t, err)
		if i > 0 {
			assert.GreaterOrEqual(t, quote.MonthlyDebtPayment, prev,
				"payment must be non-decreasing in interest rate")
		}
		prev = quote.MonthlyDebtPayment
	}

	for i, years := range []int{1, 2, 5, 10, 20, 30} {
		quote, err := model.Price(Terms{NumOutposts: 5, InterestRatePercent: 5, LoanYears: years})
		require.NoError(t, err)
		if i > 0 {
			assert.LessOrEqual(t, quote.MonthlyDebtPayment, prev,
				"payment must be non-increasing in loan term")
		}
		prev = quote.MonthlyDebtPayment
	}
}

// TestModel_Price_Opex verifies the operating-cost supplements.
func TestModel_Price_Opex(t *testing.T) {
	opex := Opex{MaintenancePerYear: 6000, CommunicationsPerYear: 2400, SecurityPerYear: 3600}
	model := NewModel(DefaultConstants(), opex)

	quote, err := model.Price(Terms{NumOutposts: 4, InterestRatePercent: 5, LoanYears: 10, SLAPremiumPercent: 10})
	require.NoError(t, err)

	assert.InDelta(t, 12000.0*4, quote.AnnualOpex, 1e-9)
	assert.InDelta(t, quote.AnnualOpex*10, quote.LifetimeOpex, 1e-9)
	assert.InDelta(t, quote.TotalCapex+quote.LifetimeOpex, quote.TCO, 1e-6)
	assert.InDelta(t, quote.TCO/4, quote.TCOPerOutpost, 1e-9)

	// Opex share of the fee is billed monthly under the same SLA markup.
	wantFee := (quote.MonthlyDebtPayment/4 + 12000.0/12) * 1.10
	assert.InDelta(t, wantFee, quote.MonthlyFeePerOutpost, 1e-9)
	assert.InDelta(t, wantFee*12, quote.AnnualFeePerOutpost, 1e-9)
	assert.InDelta(t, quote.AnnualFeePerOutpost*4*10, quote.LifetimeFeeTotal, 1e-6)
}

// TestModel_Price_Validation verifies constraint enforcement.
func TestModel_Price_Validation(t *testing.T) {
	tests := []struct {
		name  string
		terms Terms
	}{
		{name: "zero outposts", terms: Terms{NumOutposts: 0, LoanYears: 5}},
		{name: "negative outposts", terms: Terms{NumOutposts: -1, LoanYears: 5}},
		{name: "zero loan years", terms: Terms{NumOutposts: 1, LoanYears: 0}},
		{name: "negative loan years", terms: Terms{NumOutposts: 1, LoanYears: -10}},
		{name: "negative interest rate", terms: Terms{NumOutposts: 1, LoanYears: 5, InterestRatePercent: -0.5}},
		{name: "negative sla premium", terms: Terms{NumOutposts: 1, LoanYears: 5, SLAPremiumPercent: -1}},
	}

	model := NewModel(DefaultConstants(), Opex{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := model.Price(tt.terms)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err), "expected a validation error, got %v", err)
			assert.Zero(t, quote, "no partial result on validation failure")
		})
	}
}

// TestMonthlyPayment pins the closed-form annuity against known values.
func TestMonthlyPayment(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		rate      float64
		years     int
		want      float64
		tolerance float64
	}{
		{name: "pilot reference", principal: 425000, rate: 5, years: 10, want: 4507.78, tolerance: 0.01},
		{name: "zero rate divides evenly", principal: 60000, rate: 0, years: 5, want: 1000, tolerance: 0},
		{name: "textbook mortgage", principal: 100000, rate: 6, years: 30, want: 599.55, tolerance: 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthlyPayment(tt.principal, tt.rate, tt.years)
			if tt.tolerance == 0 {
				assert.Equal(t, tt.want, got)
			} else {
				assert.InDelta(t, tt.want, got, tt.tolerance)
			}
		})
	}
}
