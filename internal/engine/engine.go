// Package engine composes the environmental and financial estimators into
// the single calculation the form surface exposes.
package engine

import (
	"github.com/rs/zerolog"

	"github.com/os4p/engine/internal/carbon"
	"github.com/os4p/engine/internal/energy"
	"github.com/os4p/engine/internal/finance"
	"github.com/os4p/engine/internal/scoring"
)

// Engine is a pure, synchronous calculator. It holds no mutable state
// beyond its configuration and is safe for unlimited concurrent use.
type Engine struct {
	cfg       Config
	estimator *carbon.Estimator
	model     *finance.Model
	logger    zerolog.Logger
}

// New creates an engine from the given configuration. The logger is the
// engine's only collaborator with side effects.
func New(cfg Config, logger zerolog.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		cfg:       cfg,
		estimator: carbon.NewEstimator(cfg.Factors),
		model:     finance.NewModel(cfg.Constants, cfg.Opex),
		logger:    logger,
	}, nil
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}

// Calculate runs the full deployment calculation: CO2 savings, financing
// quote, energy metrics and cost-efficiency scoring, merged into one
// result. A validation failure yields a zero Result and no partial output.
func (e *Engine) Calculate(in Input) (Result, error) {
	if err := in.Validate(); err != nil {
		e.logger.Debug().Err(err).Msg("calculation input rejected")
		return Result{}, err
	}

	lifetime := e.cfg.lifetimeYears(in.LoanYears)

	savings, err := e.estimator.Estimate(carbon.Request{
		NumOutposts:       in.NumOutposts,
		FuelLitersPerHour: in.FuelConsumption,
		LifetimeYears:     lifetime,
	})
	if err != nil {
		return Result{}, err
	}

	quote, err := e.model.Price(finance.Terms{
		NumOutposts:         in.NumOutposts,
		InterestRatePercent: in.InterestRate,
		LoanYears:           in.LoanYears,
		SLAPremiumPercent:   in.SLAPremium,
	})
	if err != nil {
		return Result{}, err
	}

	metrics := energy.Evaluate(
		e.cfg.Energy,
		e.cfg.Constants.MicrogridCapex,
		e.cfg.Opex.MaintenancePerYear*e.cfg.Energy.MaintenanceShare,
		lifetime,
		in.InterestRate/100,
	)

	assessment := scoring.Assess(quote.GrantAmount, savings.FleetTonnesPerYear, savings.LifetimeTonnes)

	e.logger.Debug().
		Int("num_outposts", in.NumOutposts).
		Int("lifetime_years", lifetime).
		Float64("co2_savings_all_outposts", savings.FleetTonnesPerYear).
		Float64("monthly_debt_payment", quote.MonthlyDebtPayment).
		Msg("calculation complete")

	return Result{
		CO2SavingsPerOutpost:  savings.PerOutpostTonnes,
		CO2SavingsAllOutposts: savings.FleetTonnesPerYear,
		CO2SavingsLifetime:    savings.LifetimeTonnes,
		MonthlyDebtPayment:    quote.MonthlyDebtPayment,
		MonthlyFeeUnit:        quote.MonthlyFeePerOutpost,

		TotalCapex:     quote.TotalCapex,
		PilotMarkup:    quote.PilotMarkup,
		GrantAmount:    quote.GrantAmount,
		FinancedAmount: quote.FinancedAmount,
		TotalInterest:  quote.TotalInterest,

		LifetimeYears: lifetime,

		Operations: OperationsSummary{
			AnnualOpex:          quote.AnnualOpex,
			LifetimeOpex:        quote.LifetimeOpex,
			TCO:                 quote.TCO,
			TCOPerOutpost:       quote.TCOPerOutpost,
			LifetimeDebtPayment: quote.LifetimeDebtPayment,
			AnnualFeeUnit:       quote.AnnualFeePerOutpost,
			LifetimeFeeTotal:    quote.LifetimeFeeTotal,
		},
		Emissions: EmissionsBreakdown{
			BaselineTonnesPerOutpost: savings.BaselineTonnesPerOutpost,
			ResidualTonnesPerOutpost: savings.ResidualTonnesPerOutpost,
		},
		Energy:     metrics,
		Efficiency: assessment,
	}, nil
}
