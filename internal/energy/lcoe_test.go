package energy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestAnnualProduction pins the pilot microgrid's first-year output.
func TestAnnualProduction(t *testing.T) {
	solar, wind := AnnualProduction(DefaultParams())

	// 10 kW * 0.15 * 8760 and 3 kW * 0.25 * 8760.
	assert.InDelta(t, 13140, solar, 1e-9)
	assert.InDelta(t, 6570, wind, 1e-9)
}

// TestLifetimeProduction verifies degradation compounding.
func TestLifetimeProduction(t *testing.T) {
	// No degradation: exactly years * annual.
	assert.InDelta(t, 50000, LifetimeProduction(10000, 5, 0), 1e-9)

	// With degradation the total falls strictly below the undegraded sum
	// but stays above the fully degraded floor.
	got := LifetimeProduction(10000, 20, 0.005)
	assert.Less(t, got, 200000.0)
	assert.Greater(t, got, 10000*20*math.Pow(0.995, 19))

	// Two years: y1 + y1*(1-d).
	assert.InDelta(t, 10000+9950, LifetimeProduction(10000, 2, 0.005), 1e-9)
}

// TestLCOE covers the discounting identity and edge cases.
func TestLCOE(t *testing.T) {
	t.Run("no production yields infinite cost", func(t *testing.T) {
		got := LCOE(110000, 1000, 10, 0, 0.05, 0.005)
		assert.True(t, math.IsInf(got, 1))
	})

	t.Run("zero discount and degradation reduces to plain division", func(t *testing.T) {
		// (capex + years*maintenance) / (years*annual)
		got := LCOE(100000, 1000, 10, 20000, 0, 0)
		assert.InDelta(t, 110000.0/200000.0, got, 1e-12)
	})

	t.Run("more production lowers the cost", func(t *testing.T) {
		low := LCOE(110000, 3600, 10, 10000, 0.05, 0.005)
		high := LCOE(110000, 3600, 10, 20000, 0.05, 0.005)
		assert.Greater(t, low, high)
		assert.Greater(t, high, 0.0)
	})

	t.Run("discounting raises the cost of future energy", func(t *testing.T) {
		flat := LCOE(110000, 0, 10, 19710, 0, 0)
		discounted := LCOE(110000, 0, 10, 19710, 0.05, 0)
		assert.Greater(t, discounted, flat)
	})
}

// TestEvaluate checks the composed metrics for the default microgrid.
func TestEvaluate(t *testing.T) {
	m := Evaluate(DefaultParams(), 110000, 3600, 10, 0.05)

	assert.InDelta(t, 19710, m.TotalAnnualKWh, 1e-9)
	assert.InDelta(t, m.SolarAnnualKWh+m.WindAnnualKWh, m.TotalAnnualKWh, 1e-9)
	assert.Less(t, m.LifetimeKWh, 197100.0)
	assert.Greater(t, m.LifetimeKWh, 190000.0)
	assert.Greater(t, m.LCOE, 0.0)
	assert.InDelta(t, m.LCOE*100, m.LCOECents, 1e-9)
}
