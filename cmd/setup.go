package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thinkle/sbgsync/internal/config"
	"github.com/thinkle/sbgsync/internal/grading"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Install the grading configuration",
	Long:  "Install grading symbols, levels, and fallback scores from a JSON file, or built-in defaults when no file is given. Existing configuration is kept.",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")

		symbols := grading.DefaultSymbols()
		levels := grading.DefaultLevels()
		fallbacks := grading.DefaultFallbacks()

		if configPath != "" {
			file, err := config.LoadGradingFile(configPath)
			if err != nil {
				return fmt.Errorf("load grading config: %w", err)
			}
			symbols = file.GradingSymbols()
			levels = file.GradingLevels()
			fallbacks = file.GradingFallbacks()
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		if err := s.GradingConfigRepo().Seed(ctx, symbols, levels, fallbacks); err != nil {
			return fmt.Errorf("seed grading config: %w", err)
		}

		fmt.Printf("Grading configuration ready: %d symbols, %d levels.\n", len(symbols), len(levels))
		return nil
	},
}

func init() {
	setupCmd.Flags().StringP("config", "c", "", "Path to a grading configuration JSON file")
}
