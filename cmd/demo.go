package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thinkle/sbgsync/internal/demo"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Seed demo students, skills, and attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("students")
		seed, _ := cmd.Flags().GetInt64("seed")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		stats, err := demo.NewSeeder(s.GradingConfigRepo(), s.GradebookRepo(), seed).Seed(cmd.Context(), n)
		if err != nil {
			return fmt.Errorf("seed demo data: %w", err)
		}
		fmt.Printf("Seeded %d students, %d skills, %d rows, %d attempts.\n",
			stats.Students, stats.Skills, stats.Rows, stats.Attempts)
		fmt.Println("Run `sbgsync view` to see the gradebook.")
		return nil
	},
}

func init() {
	demoCmd.Flags().IntP("students", "n", 8, "Number of demo students")
	demoCmd.Flags().Int64("seed", 1, "Random seed for generated data")
}
