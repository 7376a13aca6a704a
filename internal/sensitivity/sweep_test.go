package sensitivity

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/os4p/engine/internal/apperrors"
	"github.com/os4p/engine/internal/engine"
)

func testEngine(t *testing.T) *engine.Engine {
	t.Helper()
	eng, err := engine.New(engine.DefaultConfig(), zerolog.Nop())
	require.NoError(t, err)
	return eng
}

var baseInput = engine.Input{
	NumOutposts:     5,
	FuelConsumption: 25,
	InterestRate:    5,
	LoanYears:       10,
	SLAPremium:      15,
}

// TestSweep_InterestRate: the payment series must be non-decreasing.
func TestSweep_InterestRate(t *testing.T) {
	points, err := Sweep(testEngine(t), baseInput, ParamInterestRate, []float64{0, 1, 2, 4, 8})
	require.NoError(t, err)
	require.Len(t, points, 5)

	for i := 1; i < len(points); i++ {
		assert.GreaterOrEqual(t,
			points[i].Result.MonthlyDebtPayment,
			points[i-1].Result.MonthlyDebtPayment)
	}

	// Only the swept parameter varies: capex stays fixed.
	for _, p := range points {
		assert.InDelta(t, 850000, p.Result.TotalCapex, 1e-6)
	}
}

// TestSweep_FleetSize: CO2 savings scale linearly with the fleet.
func TestSweep_FleetSize(t *testing.T) {
	points, err := Sweep(testEngine(t), baseInput, ParamNumOutposts, []float64{1, 2, 4, 8})
	require.NoError(t, err)

	per := points[0].Result.CO2SavingsPerOutpost
	for _, p := range points {
		assert.InDelta(t, per*p.Value, p.Result.CO2SavingsAllOutposts, 1e-9)
	}
}

// TestSweep_Validation covers unknown parameters, empty ranges and
// invalid points.
func TestSweep_Validation(t *testing.T) {
	eng := testEngine(t)

	_, err := Sweep(eng, baseInput, Parameter("fuel_price"), []float64{1})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	_, err = Sweep(eng, baseInput, ParamInterestRate, nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	// A single out-of-range value fails the whole sweep.
	points, err := Sweep(eng, baseInput, ParamNumOutposts, []float64{1, 0, 2})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Nil(t, points, "no partial series on failure")
}

// TestRange verifies the inclusive linear spacing.
func TestRange(t *testing.T) {
	assert.Equal(t, []float64{0, 2.5, 5, 7.5, 10}, Range(0, 10, 4))
	assert.Equal(t, []float64{3}, Range(3, 9, 0))

	got := Range(1, 2, 10)
	require.Len(t, got, 11)
	assert.InDelta(t, 1, got[0], 1e-12)
	assert.InDelta(t, 2, got[10], 1e-12)
}
