package cmd

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/os4p/engine/internal/engine"
)

var calculateFlags struct {
	outposts int
	fuel     float64
	rate     float64
	years    int
	sla      float64
	format   string
}

var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Run one deployment calculation",
	RunE: func(_ *cobra.Command, _ []string) error {
		eng, err := buildEngine()
		if err != nil {
			return err
		}

		result, err := eng.Calculate(engine.Input{
			NumOutposts:     calculateFlags.outposts,
			FuelConsumption: calculateFlags.fuel,
			InterestRate:    calculateFlags.rate,
			LoanYears:       calculateFlags.years,
			SLAPremium:      calculateFlags.sla,
		})
		if err != nil {
			return err
		}

		if calculateFlags.format == "json" {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}
		printResult(result)
		return nil
	},
}

func init() {
	calculateCmd.Flags().IntVar(&calculateFlags.outposts, "outposts", 1, "number of outposts")
	calculateCmd.Flags().Float64Var(&calculateFlags.fuel, "fuel", 0, "displaced fuel consumption (liters/hour)")
	calculateCmd.Flags().Float64Var(&calculateFlags.rate, "rate", 0, "annual interest rate (percent)")
	calculateCmd.Flags().IntVar(&calculateFlags.years, "years", 1, "loan term (years)")
	calculateCmd.Flags().Float64Var(&calculateFlags.sla, "sla", 0, "SLA premium (percent)")
	calculateCmd.Flags().StringVar(&calculateFlags.format, "format", "pretty", "output format (pretty, json)")
}

func printResult(r engine.Result) {
	fmt.Printf("CO2 savings\n")
	fmt.Printf("  per outpost:   %10.1f t/year\n", r.CO2SavingsPerOutpost)
	fmt.Printf("  fleet:         %10.1f t/year\n", r.CO2SavingsAllOutposts)
	fmt.Printf("  lifetime:      %10.1f t over %d years\n", r.CO2SavingsLifetime, r.LifetimeYears)
	fmt.Printf("Financing\n")
	fmt.Printf("  total capex:   %12.2f\n", r.TotalCapex)
	fmt.Printf("  quoted price:  %12.2f\n", r.PilotMarkup)
	fmt.Printf("  grant:         %12.2f\n", r.GrantAmount)
	fmt.Printf("  financed:      %12.2f\n", r.FinancedAmount)
	fmt.Printf("  monthly debt:  %12.2f\n", r.MonthlyDebtPayment)
	fmt.Printf("  total interest:%12.2f\n", r.TotalInterest)
	fmt.Printf("  fee per unit:  %12.2f /month\n", r.MonthlyFeeUnit)
}
