package engine

import (
	"github.com/os4p/engine/internal/energy"
	"github.com/os4p/engine/internal/scoring"
)

// Result is the merged calculation response. The first five field names
// are the wire contract of the existing form consumer and must not change;
// the derived financial fields are returned directly so the consumer stops
// recomputing them from the payment and echoed inputs.
type Result struct {
	CO2SavingsPerOutpost  float64 `json:"co2_savings_per_outpost"`
	CO2SavingsAllOutposts float64 `json:"co2_savings_all_outposts"`
	CO2SavingsLifetime    float64 `json:"co2_savings_lifetime"`
	MonthlyDebtPayment    float64 `json:"monthly_debt_payment"`
	MonthlyFeeUnit        float64 `json:"monthly_fee_unit"`

	TotalCapex     float64 `json:"total_capex"`
	PilotMarkup    float64 `json:"pilot_markup"`
	GrantAmount    float64 `json:"grant_amount"`
	FinancedAmount float64 `json:"financed_amount"`
	TotalInterest  float64 `json:"total_interest"`

	// LifetimeYears is the CO2 evaluation window that was applied.
	LifetimeYears int `json:"lifetime_years"`

	Operations OperationsSummary  `json:"operations"`
	Emissions  EmissionsBreakdown `json:"emissions"`
	Energy     energy.Metrics     `json:"energy_metrics"`
	Efficiency scoring.Assessment `json:"efficiency"`
}

// OperationsSummary carries the OPEX/TCO and fee roll-ups.
type OperationsSummary struct {
	AnnualOpex          float64 `json:"annual_opex"`
	LifetimeOpex        float64 `json:"lifetime_opex"`
	TCO                 float64 `json:"tco"`
	TCOPerOutpost       float64 `json:"tco_per_outpost"`
	LifetimeDebtPayment float64 `json:"lifetime_debt_payment"`
	AnnualFeeUnit       float64 `json:"annual_fee_unit"`
	LifetimeFeeTotal    float64 `json:"lifetime_fee_total"`
}

// EmissionsBreakdown reports the manned baseline and autonomous residual
// behind the headline savings, in tonnes per outpost per year.
type EmissionsBreakdown struct {
	BaselineTonnesPerOutpost float64 `json:"manned_emissions_per_outpost"`
	ResidualTonnesPerOutpost float64 `json:"autonomous_emissions_per_outpost"`
}
