package cmd

import (
	"fmt"
	"sort"

	"fraxlend/internal/simulation"
	"fraxlend/pkg/number"

	"github.com/fox-one/pkg/logger"
	"github.com/spf13/cobra"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "run a scripted lending scenario on an in-memory pair",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		ctx = logger.WithContext(ctx, logger.FromContext(ctx))

		opts := simulation.DefaultOptions()
		if v, _ := cmd.Flags().GetString("price"); v != "" {
			opts.Price = number.Decimal(v)
		}
		if v, _ := cmd.Flags().GetString("crash"); v != "" {
			opts.CrashPrice = number.Decimal(v)
		}
		opts.Elapsed, _ = cmd.Flags().GetDuration("elapsed")

		w, err := simulation.NewWorld(ctx, opts)
		if err != nil {
			return err
		}

		report, err := w.Run(ctx, opts)
		for _, step := range report.Steps {
			cmd.Printf("%-14s %s\n", step.Name, step.Result)
		}

		if err != nil {
			return err
		}

		state := report.State
		cmd.Println()
		cmd.Println("total asset     ", state.TotalAsset.Amount, "/", state.TotalAsset.Shares)
		cmd.Println("total borrow    ", state.TotalBorrow.Amount, "/", state.TotalBorrow.Shares)
		cmd.Println("total collateral", state.TotalCollateral)
		cmd.Println("rate per sec    ", state.RateInfo.RatePerSec)
		cmd.Println("exchange rate   ", state.ExchangeRate.ExchangeRate)

		counts := make(map[string]int)
		for _, e := range report.Events {
			counts[string(e.Type)]++
		}

		types := make([]string, 0, len(counts))
		for typ := range counts {
			types = append(types, typ)
		}
		sort.Strings(types)

		cmd.Println()
		cmd.Println(fmt.Sprintf("%d events", len(report.Events)))
		for _, typ := range types {
			cmd.Printf("  %-26s %d\n", typ, counts[typ])
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().String("price", "", "initial exchange rate, asset per collateral scaled by 1e18")
	simulateCmd.Flags().String("crash", "", "exchange rate after the crash")
	simulateCmd.Flags().Duration("elapsed", simulation.DefaultOptions().Elapsed, "time elapsed before the crash")
}
