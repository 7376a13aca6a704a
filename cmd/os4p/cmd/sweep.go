package cmd

import (
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/os4p/engine/internal/engine"
	"github.com/os4p/engine/internal/sensitivity"
)

var sweepFlags struct {
	param string
	from  float64
	to    float64
	steps int
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Vary one parameter across a range and emit the result series",
	RunE: func(_ *cobra.Command, _ []string) error {
		eng, err := buildEngine()
		if err != nil {
			return err
		}

		base := engine.Input{
			NumOutposts:     calculateFlags.outposts,
			FuelConsumption: calculateFlags.fuel,
			InterestRate:    calculateFlags.rate,
			LoanYears:       calculateFlags.years,
			SLAPremium:      calculateFlags.sla,
		}

		points, err := sensitivity.Sweep(
			eng,
			base,
			sensitivity.Parameter(sweepFlags.param),
			sensitivity.Range(sweepFlags.from, sweepFlags.to, sweepFlags.steps),
		)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(points)
	},
}

func init() {
	sweepCmd.Flags().StringVar(&sweepFlags.param, "param", "interest_rate", "parameter to sweep")
	sweepCmd.Flags().Float64Var(&sweepFlags.from, "from", 0, "range start")
	sweepCmd.Flags().Float64Var(&sweepFlags.to, "to", 0, "range end")
	sweepCmd.Flags().IntVar(&sweepFlags.steps, "steps", 10, "number of steps")

	sweepCmd.Flags().IntVar(&calculateFlags.outposts, "outposts", 1, "number of outposts")
	sweepCmd.Flags().Float64Var(&calculateFlags.fuel, "fuel", 0, "displaced fuel consumption (liters/hour)")
	sweepCmd.Flags().Float64Var(&calculateFlags.rate, "rate", 0, "annual interest rate (percent)")
	sweepCmd.Flags().IntVar(&calculateFlags.years, "years", 1, "loan term (years)")
	sweepCmd.Flags().Float64Var(&calculateFlags.sla, "sla", 0, "SLA premium (percent)")
}
