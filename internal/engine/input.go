package engine

import (
	"github.com/os4p/engine/internal/apperrors"
)

// Input is the validated calculation request: the five operator-supplied
// deployment parameters. It is constructed once per request and never
// mutated afterwards.
type Input struct {
	// NumOutposts is the fleet size (>= 1).
	NumOutposts int `json:"num_outposts" form:"num_outposts"`

	// FuelConsumption is the displaced generator's fuel use in liters per
	// hour (>= 0).
	FuelConsumption float64 `json:"fuel_consumption" form:"fuel_consumption"`

	// InterestRate is the annual loan rate in percent (>= 0).
	InterestRate float64 `json:"interest_rate" form:"interest_rate"`

	// LoanYears is the financing term in years (>= 1).
	LoanYears int `json:"loan_years" form:"loan_years"`

	// SLAPremium is the service-level surcharge in percent (>= 0).
	SLAPremium float64 `json:"sla_premium" form:"sla_premium"`
}

// Validate reports the first violated input constraint. A failed
// validation is permanent for that input; no retry applies.
func (in Input) Validate() error {
	if in.NumOutposts < 1 {
		return apperrors.Validation("num_outposts", "num_outposts must be at least 1")
	}
	if in.FuelConsumption < 0 {
		return apperrors.Validation("fuel_consumption", "fuel_consumption must not be negative")
	}
	if in.InterestRate < 0 {
		return apperrors.Validation("interest_rate", "interest_rate must not be negative")
	}
	if in.LoanYears < 1 {
		return apperrors.Validation("loan_years", "loan_years must be at least 1")
	}
	if in.SLAPremium < 0 {
		return apperrors.Validation("sla_premium", "sla_premium must not be negative")
	}
	return nil
}
