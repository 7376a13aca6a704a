package carbon

import (
	"github.com/os4p/engine/internal/apperrors"
)

// Request describes one fleet for savings estimation.
type Request struct {
	// NumOutposts is the fleet size (>= 1).
	NumOutposts int

	// FuelLitersPerHour is the displaced generator's fuel consumption (>= 0).
	FuelLitersPerHour float64

	// LifetimeYears is the project evaluation window in years (>= 1).
	// The caller defaults it to the financing horizon when no distinct
	// project lifetime is configured.
	LifetimeYears int
}

// Savings contains the estimated CO2 savings in metric tonnes.
type Savings struct {
	// PerOutpostTonnes is the annual savings of a single outpost.
	PerOutpostTonnes float64

	// FleetTonnesPerYear is the fleet-wide annual savings.
	FleetTonnesPerYear float64

	// LifetimeTonnes is the fleet-wide savings over the project lifetime.
	LifetimeTonnes float64

	// BaselineTonnesPerOutpost is the manned outpost's annual emissions.
	BaselineTonnesPerOutpost float64

	// ResidualTonnesPerOutpost is the autonomous outpost's annual emissions.
	ResidualTonnesPerOutpost float64
}

// Estimator computes CO2 savings from displaced fuel consumption.
type Estimator struct {
	factors Factors
}

// NewEstimator creates an estimator with the given emission factors.
func NewEstimator(factors Factors) *Estimator {
	return &Estimator{factors: factors}
}

// Estimate calculates CO2 savings for a fleet. No rounding is applied;
// formatting is a presentation concern.
func (e *Estimator) Estimate(req Request) (Savings, error) {
	if req.NumOutposts < 1 {
		return Savings{}, apperrors.Validation("num_outposts", "num_outposts must be at least 1")
	}
	if req.FuelLitersPerHour < 0 {
		return Savings{}, apperrors.Validation("fuel_consumption", "fuel_consumption must not be negative")
	}
	if req.LifetimeYears < 1 {
		return Savings{}, apperrors.Validation("loan_years", "lifetime must be at least 1 year")
	}

	baselineKg := req.FuelLitersPerHour * e.factors.HoursPerYear * e.factors.EmissionFactorKgPerLiter
	perOutpost := CalculateSavingsTonnes(baselineKg, e.factors.ResidualEmissionsKgPerYear)
	fleet := perOutpost * float64(req.NumOutposts)

	return Savings{
		PerOutpostTonnes:         perOutpost,
		FleetTonnesPerYear:       fleet,
		LifetimeTonnes:           fleet * float64(req.LifetimeYears),
		BaselineTonnesPerOutpost: baselineKg / KgPerTonne,
		ResidualTonnesPerOutpost: e.factors.ResidualEmissionsKgPerYear / KgPerTonne,
	}, nil
}

// CalculateSavingsTonnes converts the manned baseline emissions minus the
// autonomous residual from kilograms to tonnes, flooring at zero when the
// residual exceeds the baseline.
func CalculateSavingsTonnes(baselineKg, residualKg float64) float64 {
	savingsKg := baselineKg - residualKg
	if savingsKg < 0 {
		savingsKg = 0
	}
	return savingsKg / KgPerTonne
}
