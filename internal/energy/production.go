// Package energy models the renewable generation of one outpost's
// microgrid and its levelized cost of energy.
package energy

const (
	// HoursPerYear is used to convert nameplate capacity into annual
	// production.
	HoursPerYear = 8760.0

	// DefaultDegradationRate is the annual decline in energy output.
	DefaultDegradationRate = 0.005

	// DefaultMaintenanceShare is the fraction of an outpost's maintenance
	// cost attributed to the energy system when computing LCOE.
	DefaultMaintenanceShare = 0.60
)

// Params describes one outpost's generation assets.
type Params struct {
	// SolarCapacityKW is the solar PV nameplate capacity.
	SolarCapacityKW float64 `yaml:"solar_capacity_kw" json:"solar_capacity_kw"`

	// WindCapacityKW is the wind turbine nameplate capacity.
	WindCapacityKW float64 `yaml:"wind_capacity_kw" json:"wind_capacity_kw"`

	// SolarCapacityFactor is the solar capacity factor (0..1).
	SolarCapacityFactor float64 `yaml:"solar_capacity_factor" json:"solar_capacity_factor"`

	// WindCapacityFactor is the wind capacity factor (0..1).
	WindCapacityFactor float64 `yaml:"wind_capacity_factor" json:"wind_capacity_factor"`

	// DegradationRate is the annual production decline (0..1).
	DegradationRate float64 `yaml:"degradation_rate" json:"degradation_rate"`

	// MaintenanceShare is the fraction of maintenance OPEX attributed to
	// the energy system.
	MaintenanceShare float64 `yaml:"maintenance_share" json:"maintenance_share"`
}

// DefaultParams returns the pilot microgrid configuration: 10 kWp solar at
// a 15% capacity factor and a 3 kW turbine at 25%.
func DefaultParams() Params {
	return Params{
		SolarCapacityKW:     10,
		WindCapacityKW:      3,
		SolarCapacityFactor: 0.15,
		WindCapacityFactor:  0.25,
		DegradationRate:     DefaultDegradationRate,
		MaintenanceShare:    DefaultMaintenanceShare,
	}
}

// AnnualProduction returns the first-year solar and wind output in kWh.
func AnnualProduction(p Params) (solarKWh, windKWh float64) {
	solarKWh = p.SolarCapacityKW * p.SolarCapacityFactor * HoursPerYear
	windKWh = p.WindCapacityKW * p.WindCapacityFactor * HoursPerYear
	return solarKWh, windKWh
}

// LifetimeProduction sums annual output over the system lifetime with
// compounding degradation.
func LifetimeProduction(annualKWh float64, lifetimeYears int, degradationRate float64) float64 {
	total := 0.0
	output := annualKWh
	for year := 1; year <= lifetimeYears; year++ {
		total += output
		output *= 1 - degradationRate
	}
	return total
}
