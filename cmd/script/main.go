package main

import (
	"log"
	"nestegg/cmd"
	"nestegg/internal"
	"nestegg/internal/service"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "nestegg-script",
	Short: "one-off maintenance jobs",
}

var recomputeHistoryCmd = &cobra.Command{
	Use:   "recompute-history",
	Short: "recompute today's net worth snapshot from the current asset set",
	RunE: func(c *cobra.Command, args []string) error {
		handler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(handler)

		out, err := handler.AssetService.RecomputeDailyTotal()
		if err != nil {
			return err
		}
		internal.Pprint(out)
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "insert a few sample assets for local development",
	RunE: func(c *cobra.Command, args []string) error {
		handler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(handler)

		samples := []service.CreateAssetInput{
			{Name: "emergency fund", Amount: int64Ptr(1200000), Category: service.CategorySavings},
			{Name: "index fund", Amount: int64Ptr(800000), Category: service.CategoryStock},
			{Name: "mortgage", Amount: int64Ptr(2500000), Category: service.LoanCategory},
		}
		for _, in := range samples {
			if _, err := handler.AssetService.Create(in); err != nil {
				return err
			}
		}
		return nil
	},
}

func int64Ptr(i int64) *int64 {
	return &i
}

func main() {
	rootCmd.AddCommand(recomputeHistoryCmd)
	rootCmd.AddCommand(seedCmd)
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
