package engine

import (
	"github.com/os4p/engine/internal/apperrors"
	"github.com/os4p/engine/internal/carbon"
	"github.com/os4p/engine/internal/energy"
	"github.com/os4p/engine/internal/finance"
)

// Config collects the fixed program parameters of the engine. Everything
// here is process-wide configuration, never user input.
type Config struct {
	// Constants are the pricing parameters (capex, markup, grant split).
	Constants finance.Constants `yaml:"constants" json:"constants"`

	// Opex is the per-outpost recurring operating cost.
	Opex finance.Opex `yaml:"opex" json:"opex"`

	// Factors are the emission methodology constants.
	Factors carbon.Factors `yaml:"factors" json:"factors"`

	// Energy describes the outpost microgrid for LCOE metrics.
	Energy energy.Params `yaml:"energy" json:"energy"`

	// ProjectLifetimeYears is the CO2 evaluation window. Zero means
	// "use the financing term", which the pilot model conflated with the
	// project lifetime.
	ProjectLifetimeYears int `yaml:"project_lifetime_years" json:"project_lifetime_years"`
}

// DefaultConfig returns the pilot program configuration.
func DefaultConfig() Config {
	return Config{
		Constants: finance.DefaultConstants(),
		Opex:      finance.Opex{},
		Factors:   carbon.DefaultFactors(),
		Energy:    energy.DefaultParams(),
	}
}

// Validate rejects configurations that would make every calculation fail.
func (c Config) Validate() error {
	if c.Constants.MicrogridCapex < 0 || c.Constants.DroneCapex < 0 || c.Constants.BOSCapex < 0 {
		return apperrors.New(apperrors.TypeConfig, "capex constants must not be negative")
	}
	if c.Constants.PilotMarkupFactor < 1 {
		return apperrors.New(apperrors.TypeConfig, "pilot_markup_factor must be at least 1")
	}
	if c.Constants.GrantFraction < 0 || c.Constants.GrantFraction > 1 {
		return apperrors.New(apperrors.TypeConfig, "grant_fraction must be within [0, 1]")
	}
	if c.Factors.HoursPerYear <= 0 {
		return apperrors.New(apperrors.TypeConfig, "hours_per_year must be positive")
	}
	if c.Factors.EmissionFactorKgPerLiter < 0 || c.Factors.ResidualEmissionsKgPerYear < 0 {
		return apperrors.New(apperrors.TypeConfig, "emission factors must not be negative")
	}
	if c.ProjectLifetimeYears < 0 {
		return apperrors.New(apperrors.TypeConfig, "project_lifetime_years must not be negative")
	}
	return nil
}

// lifetimeYears resolves the CO2 evaluation window for one calculation.
func (c Config) lifetimeYears(loanYears int) int {
	if c.ProjectLifetimeYears > 0 {
		return c.ProjectLifetimeYears
	}
	return loanYears
}
