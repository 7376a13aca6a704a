// Package finance prices an outpost fleet deployment: capital roll-up,
// grant split, fixed-rate loan amortization and the per-outpost service fee.
package finance

// MonthsPerYear is the number of loan installments per year.
const MonthsPerYear = 12

// Constants holds the fixed pricing parameters of the deployment program.
// They are process-wide configuration, not user input, and are injected so
// tests and deployments can override them in one place.
type Constants struct {
	// MicrogridCapex is the hardware cost of one outpost's microgrid.
	MicrogridCapex float64 `yaml:"microgrid_capex" json:"microgrid_capex"`

	// DroneCapex is the hardware cost of one outpost's drone system.
	DroneCapex float64 `yaml:"drone_capex" json:"drone_capex"`

	// BOSCapex is the balance-of-system cost per outpost (cabling,
	// mounting, installation). Zero in the baseline pilot model.
	BOSCapex float64 `yaml:"bos_capex" json:"bos_capex"`

	// PilotMarkupFactor scales raw hardware cost to the quoted customer
	// price, covering project overhead.
	PilotMarkupFactor float64 `yaml:"pilot_markup_factor" json:"pilot_markup_factor"`

	// GrantFraction is the share of the quoted price covered by non-debt
	// funding.
	GrantFraction float64 `yaml:"grant_fraction" json:"grant_fraction"`
}

// DefaultConstants returns the pilot program's pricing parameters.
func DefaultConstants() Constants {
	return Constants{
		MicrogridCapex:    110000,
		DroneCapex:        60000,
		BOSCapex:          0,
		PilotMarkupFactor: 1.25,
		GrantFraction:     0.60,
	}
}

// CapexPerOutpost is the raw hardware cost of a single outpost.
func (c Constants) CapexPerOutpost() float64 {
	return c.MicrogridCapex + c.DroneCapex + c.BOSCapex
}

// Opex holds the recurring per-outpost operating costs per year. All zero
// in the baseline pilot model; set them to enable TCO analysis.
type Opex struct {
	MaintenancePerYear    float64 `yaml:"maintenance_per_year" json:"maintenance_per_year"`
	CommunicationsPerYear float64 `yaml:"communications_per_year" json:"communications_per_year"`
	SecurityPerYear       float64 `yaml:"security_per_year" json:"security_per_year"`
}

// AnnualPerOutpost is the total yearly operating cost of one outpost.
func (o Opex) AnnualPerOutpost() float64 {
	return o.MaintenancePerYear + o.CommunicationsPerYear + o.SecurityPerYear
}
