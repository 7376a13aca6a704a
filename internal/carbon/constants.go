// Package carbon estimates the CO2 savings of replacing manned,
// fuel-burning outposts with autonomous microgrid-powered ones.
package carbon

const (
	// HoursPerYear is the operating hours of the displaced baseline
	// generator, assumed to run continuously for the full year.
	HoursPerYear = 8760.0

	// DefaultEmissionFactorKgPerLiter is the CO2 mass emitted per liter of
	// fuel burned by the displaced generator. The program carries the
	// conservative 1.0 kg/L figure used by the OS4P pilot model; pure
	// diesel combustion is closer to 2.68 kg/L.
	DefaultEmissionFactorKgPerLiter = 1.0

	// DefaultResidualEmissionsKgPerYear is the annual CO2 emitted by an
	// autonomous outpost itself (maintenance visits, standby systems).
	// Zero by default so the headline figure is pure displaced fuel; the
	// pilot dashboard used 1594.3 kg/year.
	DefaultResidualEmissionsKgPerYear = 0.0

	// KgPerTonne converts kilograms to metric tonnes.
	KgPerTonne = 1000.0
)

// Factors holds the emission methodology constants. They are injected
// rather than inlined so tests and deployments can override them without
// drifting from the values the rest of the engine sees.
type Factors struct {
	// HoursPerYear is the annual operating hours of the displaced generator.
	HoursPerYear float64 `yaml:"hours_per_year" json:"hours_per_year"`

	// EmissionFactorKgPerLiter is kg CO2 emitted per liter of fuel burned.
	EmissionFactorKgPerLiter float64 `yaml:"emission_factor_kg_per_liter" json:"emission_factor_kg_per_liter"`

	// ResidualEmissionsKgPerYear is the autonomous outpost's own annual
	// emissions, subtracted from the manned baseline.
	ResidualEmissionsKgPerYear float64 `yaml:"residual_emissions_kg_per_year" json:"residual_emissions_kg_per_year"`
}

// DefaultFactors returns the pilot-model emission factors.
func DefaultFactors() Factors {
	return Factors{
		HoursPerYear:               HoursPerYear,
		EmissionFactorKgPerLiter:   DefaultEmissionFactorKgPerLiter,
		ResidualEmissionsKgPerYear: DefaultResidualEmissionsKgPerYear,
	}
}
