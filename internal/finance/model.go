package finance

import (
	"github.com/os4p/engine/internal/apperrors"
)

// Terms describes the customer-specific side of a quote.
type Terms struct {
	// NumOutposts is the fleet size (>= 1).
	NumOutposts int

	// InterestRatePercent is the annual loan rate in percent (>= 0).
	InterestRatePercent float64

	// LoanYears is the financing term in years (>= 1).
	LoanYears int

	// SLAPremiumPercent is the service-level surcharge on the per-outpost
	// fee, in percent (>= 0).
	SLAPremiumPercent float64
}

// Quote is the priced deployment. All monetary values are in currency
// units; monthly values are per month. Nothing is rounded.
type Quote struct {
	// TotalCapex is the raw hardware cost of the fleet.
	TotalCapex float64

	// PilotMarkup is the quoted customer price (capex plus overhead).
	PilotMarkup float64

	// GrantAmount is the share of the quoted price covered by grants.
	GrantAmount float64

	// FinancedAmount is the debt principal (may be zero when the grant
	// covers the full quoted price).
	FinancedAmount float64

	// MonthlyDebtPayment is the fixed loan installment for the fleet.
	MonthlyDebtPayment float64

	// TotalInterest is the interest paid over the full term.
	TotalInterest float64

	// LifetimeDebtPayment is the sum of all installments.
	LifetimeDebtPayment float64

	// MonthlyFeePerOutpost is the customer-billed fee per outpost per
	// month: the outpost's share of debt service plus operating cost,
	// marked up by the SLA premium.
	MonthlyFeePerOutpost float64

	// AnnualFeePerOutpost is MonthlyFeePerOutpost over a year.
	AnnualFeePerOutpost float64

	// LifetimeFeeTotal is the fee revenue over the whole fleet and term.
	LifetimeFeeTotal float64

	// AnnualOpex is the fleet-wide operating cost per year.
	AnnualOpex float64

	// LifetimeOpex is the fleet-wide operating cost over the term.
	LifetimeOpex float64

	// TCO is total cost of ownership: fleet capex plus lifetime opex.
	TCO float64

	// TCOPerOutpost is TCO divided by fleet size.
	TCOPerOutpost float64
}

// Model prices deployments from fixed program constants and operating costs.
type Model struct {
	constants Constants
	opex      Opex
}

// NewModel creates a pricing model.
func NewModel(constants Constants, opex Opex) *Model {
	return &Model{constants: constants, opex: opex}
}

// Constants returns the program constants the model was built with.
func (m *Model) Constants() Constants {
	return m.constants
}

// Price produces the financial quote for the given terms.
func (m *Model) Price(terms Terms) (Quote, error) {
	if terms.NumOutposts < 1 {
		return Quote{}, apperrors.Validation("num_outposts", "num_outposts must be at least 1")
	}
	if terms.LoanYears < 1 {
		return Quote{}, apperrors.Validation("loan_years", "loan_years must be at least 1")
	}
	if terms.InterestRatePercent < 0 {
		return Quote{}, apperrors.Validation("interest_rate", "interest_rate must not be negative")
	}
	if terms.SLAPremiumPercent < 0 {
		return Quote{}, apperrors.Validation("sla_premium", "sla_premium must not be negative")
	}

	fleet := float64(terms.NumOutposts)
	months := float64(terms.LoanYears * MonthsPerYear)

	totalCapex := m.constants.CapexPerOutpost() * fleet
	pilotMarkup := totalCapex * m.constants.PilotMarkupFactor
	grantAmount := pilotMarkup * m.constants.GrantFraction
	financed := pilotMarkup - grantAmount

	payment := MonthlyPayment(financed, terms.InterestRatePercent, terms.LoanYears)
	lifetimePayment := payment * months

	annualOpexPerOutpost := m.opex.AnnualPerOutpost()
	annualOpex := annualOpexPerOutpost * fleet
	lifetimeOpex := annualOpex * float64(terms.LoanYears)

	slaMultiplier := 1 + terms.SLAPremiumPercent/100
	monthlyFee := (payment/fleet + annualOpexPerOutpost/MonthsPerYear) * slaMultiplier
	annualFee := monthlyFee * MonthsPerYear

	return Quote{
		TotalCapex:           totalCapex,
		PilotMarkup:          pilotMarkup,
		GrantAmount:          grantAmount,
		FinancedAmount:       financed,
		MonthlyDebtPayment:   payment,
		TotalInterest:        lifetimePayment - financed,
		LifetimeDebtPayment:  lifetimePayment,
		MonthlyFeePerOutpost: monthlyFee,
		AnnualFeePerOutpost:  annualFee,
		LifetimeFeeTotal:     annualFee * fleet * float64(terms.LoanYears),
		AnnualOpex:           annualOpex,
		LifetimeOpex:         lifetimeOpex,
		TCO:                  totalCapex + lifetimeOpex,
		TCOPerOutpost:        (totalCapex + lifetimeOpex) / fleet,
	}, nil
}
