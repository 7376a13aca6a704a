// Package sensitivity re-runs the calculation engine across a range of
// values for one input parameter, holding the others fixed. The analysis
// page rendering these points is a separate consumer; this is the
// engine-side support it calls.
package sensitivity

import (
	"math"

	"github.com/os4p/engine/internal/apperrors"
	"github.com/os4p/engine/internal/engine"
)

// Parameter names an input field that can be swept.
type Parameter string

const (
	ParamNumOutposts     Parameter = "num_outposts"
	ParamFuelConsumption Parameter = "fuel_consumption"
	ParamInterestRate    Parameter = "interest_rate"
	ParamLoanYears       Parameter = "loan_years"
	ParamSLAPremium      Parameter = "sla_premium"
)

// Point is one sweep sample: the parameter value and the full result.
type Point struct {
	Value  float64       `json:"value"`
	Result engine.Result `json:"result"`
}

// Sweep evaluates the engine at each value of the given parameter. Integer
// parameters take the truncated value. The whole sweep fails on the first
// invalid point so a partial series is never returned.
func Sweep(eng *engine.Engine, base engine.Input, param Parameter, values []float64) ([]Point, error) {
	if len(values) == 0 {
		return nil, apperrors.Validation("values", "at least one sweep value is required")
	}

	points := make([]Point, 0, len(values))
	for _, v := range values {
		in, err := apply(base, param, v)
		if err != nil {
			return nil, err
		}

		result, err := eng.Calculate(in)
		if err != nil {
			return nil, err
		}

		points = append(points, Point{Value: v, Result: result})
	}
	return points, nil
}

// Range produces steps+1 evenly spaced values spanning [from, to].
func Range(from, to float64, steps int) []float64 {
	if steps < 1 {
		return []float64{from}
	}
	values := make([]float64, 0, steps+1)
	width := (to - from) / float64(steps)
	for i := 0; i <= steps; i++ {
		values = append(values, from+width*float64(i))
	}
	return values
}

func apply(base engine.Input, param Parameter, value float64) (engine.Input, error) {
	switch param {
	case ParamNumOutposts:
		base.NumOutposts = int(math.Trunc(value))
	case ParamFuelConsumption:
		base.FuelConsumption = value
	case ParamInterestRate:
		base.InterestRate = value
	case ParamLoanYears:
		base.LoanYears = int(math.Trunc(value))
	case ParamSLAPremium:
		base.SLAPremium = value
	default:
		return engine.Input{}, apperrors.Validationf("parameter", "unknown sweep parameter %q", string(param))
	}
	return base, nil
}
