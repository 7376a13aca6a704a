// Package scoring rates a deployment's grant cost-efficiency against the
// Innovation Fund pilot criteria (INNOVFUND-2024-NZT-PILOTS).
package scoring

import (
	"math"

	"github.com/goccy/go-json"
)

const (
	// MaxScore is the highest attainable cost-efficiency score.
	MaxScore = 12.0

	// CostEfficiencyCeiling is the ratio (currency per tonne CO2-eq) above
	// which a deployment scores zero.
	CostEfficiencyCeiling = 2000.0
)

// Assessment bundles the cost-efficiency figures at both horizons.
type Assessment struct {
	// CostPerTonneAnnual is grant currency per tonne of annual fleet savings.
	CostPerTonneAnnual float64 `json:"cost_per_tonne_annual"`

	// CostPerTonneLifetime is grant currency per tonne of lifetime savings.
	CostPerTonneLifetime float64 `json:"cost_per_tonne_lifetime"`

	// Score is the Innovation Fund score at the annual horizon.
	Score float64 `json:"innovation_fund_score"`

	// ScoreLifetime is the Innovation Fund score at the lifetime horizon.
	ScoreLifetime float64 `json:"innovation_fund_score_lifetime"`
}

// MarshalJSON renders unbounded ratios as null; JSON has no infinity and
// a zero-savings deployment must still serialize.
func (a Assessment) MarshalJSON() ([]byte, error) {
	type wire struct {
		CostPerTonneAnnual   *float64 `json:"cost_per_tonne_annual"`
		CostPerTonneLifetime *float64 `json:"cost_per_tonne_lifetime"`
		Score                float64  `json:"innovation_fund_score"`
		ScoreLifetime        float64  `json:"innovation_fund_score_lifetime"`
	}
	out := wire{Score: a.Score, ScoreLifetime: a.ScoreLifetime}
	if !math.IsInf(a.CostPerTonneAnnual, 0) && !math.IsNaN(a.CostPerTonneAnnual) {
		v := a.CostPerTonneAnnual
		out.CostPerTonneAnnual = &v
	}
	if !math.IsInf(a.CostPerTonneLifetime, 0) && !math.IsNaN(a.CostPerTonneLifetime) {
		v := a.CostPerTonneLifetime
		out.CostPerTonneLifetime = &v
	}
	return json.Marshal(out)
}

// CostEfficiency returns the grant spend per tonne of CO2 saved. A
// deployment that saves nothing costs infinitely much per tonne.
func CostEfficiency(grantAmount, savingsTonnes float64) float64 {
	if savingsTonnes <= 0 {
		return math.Inf(1)
	}
	return grantAmount / savingsTonnes
}

// InnovationFundScore maps a cost-efficiency ratio to the 0..12 point
// scale: 12 - 12*(ratio/2000) up to the ceiling, rounded to the nearest
// half point; zero beyond the ceiling.
func InnovationFundScore(costPerTonne float64) float64 {
	if costPerTonne > CostEfficiencyCeiling {
		return 0
	}
	score := MaxScore - MaxScore*(costPerTonne/CostEfficiencyCeiling)
	score = math.Round(score*2) / 2
	return math.Max(0, score)
}

// Assess scores a deployment at the annual and lifetime horizons.
func Assess(grantAmount, annualTonnes, lifetimeTonnes float64) Assessment {
	annual := CostEfficiency(grantAmount, annualTonnes)
	lifetime := CostEfficiency(grantAmount, lifetimeTonnes)

	return Assessment{
		CostPerTonneAnnual:   annual,
		CostPerTonneLifetime: lifetime,
		Score:                InnovationFundScore(annual),
		ScoreLifetime:        InnovationFundScore(lifetime),
	}
}
