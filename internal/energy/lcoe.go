package energy

import (
	"math"

	"github.com/goccy/go-json"
)

// Metrics summarizes one outpost's energy system.
type Metrics struct {
	SolarAnnualKWh float64 `json:"solar_annual_kwh"`
	WindAnnualKWh  float64 `json:"wind_annual_kwh"`
	TotalAnnualKWh float64 `json:"total_annual_kwh"`
	LifetimeKWh    float64 `json:"lifetime_kwh"`

	// LCOE is the levelized cost of energy in currency per kWh.
	LCOE float64 `json:"lcoe"`

	// LCOECents is LCOE expressed in cents per kWh.
	LCOECents float64 `json:"lcoe_cents"`
}

// MarshalJSON renders an infinite LCOE (no production) as null; JSON has
// no infinity.
func (m Metrics) MarshalJSON() ([]byte, error) {
	type wire struct {
		SolarAnnualKWh float64  `json:"solar_annual_kwh"`
		WindAnnualKWh  float64  `json:"wind_annual_kwh"`
		TotalAnnualKWh float64  `json:"total_annual_kwh"`
		LifetimeKWh    float64  `json:"lifetime_kwh"`
		LCOE           *float64 `json:"lcoe"`
		LCOECents      *float64 `json:"lcoe_cents"`
	}
	out := wire{
		SolarAnnualKWh: m.SolarAnnualKWh,
		WindAnnualKWh:  m.WindAnnualKWh,
		TotalAnnualKWh: m.TotalAnnualKWh,
		LifetimeKWh:    m.LifetimeKWh,
	}
	if !math.IsInf(m.LCOE, 0) && !math.IsNaN(m.LCOE) {
		lcoe, cents := m.LCOE, m.LCOECents
		out.LCOE = &lcoe
		out.LCOECents = &cents
	}
	return json.Marshal(out)
}

// LCOE computes the levelized cost of energy: total discounted costs over
// total discounted production across the system lifetime.
//
// Capital costs land in year zero; maintenance recurs annually and is
// discounted alongside degraded production. Returns +Inf when the system
// produces no energy.
func LCOE(capitalCost, annualMaintenance float64, lifetimeYears int, annualKWh, discountRate, degradationRate float64) float64 {
	discountedCosts := capitalCost
	discountedEnergy := 0.0

	output := annualKWh
	for year := 1; year <= lifetimeYears; year++ {
		discount := math.Pow(1+discountRate, float64(year))
		discountedCosts += annualMaintenance / discount
		discountedEnergy += output / discount
		output *= 1 - degradationRate
	}

	if discountedEnergy <= 0 {
		return math.Inf(1)
	}
	return discountedCosts / discountedEnergy
}

// Evaluate derives the full energy metrics for one outpost.
//
// capitalCost is the energy system capex, annualMaintenance its yearly
// upkeep (already scaled by the maintenance share), and discountRate the
// project discount rate as a fraction.
func Evaluate(p Params, capitalCost, annualMaintenance float64, lifetimeYears int, discountRate float64) Metrics {
	solar, wind := AnnualProduction(p)
	total := solar + wind
	lcoe := LCOE(capitalCost, annualMaintenance, lifetimeYears, total, discountRate, p.DegradationRate)

	return Metrics{
		SolarAnnualKWh: solar,
		WindAnnualKWh:  wind,
		TotalAnnualKWh: total,
		LifetimeKWh:    LifetimeProduction(total, lifetimeYears, p.DegradationRate),
		LCOE:           lcoe,
		LCOECents:      lcoe * 100,
	}
}
