package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thinkle/sbgsync/internal/grading"
	"github.com/thinkle/sbgsync/internal/snapshot"
)

var gradeCmd = &cobra.Command{
	Use:   "grade <email> <unit> <skill#>",
	Short: "Record attempts and recompute the grade",
	Long:  "Record one or more attempt symbols on a student's skill row at the given level, then recompute and print the row's grade.",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		email, unit, skillNumber := args[0], args[1], args[2]
		level, _ := cmd.Flags().GetString("level")
		attemptsFlag, _ := cmd.Flags().GetString("attempts")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()
		ctx := cmd.Context()

		levels, err := s.GradingConfigRepo().Levels(ctx)
		if err != nil {
			return fmt.Errorf("load levels: %w", err)
		}
		level = strings.ToUpper(strings.TrimSpace(level))
		known := false
		var codes []string
		for _, lvl := range levels {
			codes = append(codes, lvl.ShortCode)
			if lvl.ShortCode == level {
				known = true
			}
		}
		if !known {
			return fmt.Errorf("unknown level %q (have %s)", level, strings.Join(codes, ", "))
		}

		symbolList, err := s.GradingConfigRepo().Symbols(ctx)
		if err != nil {
			return fmt.Errorf("load symbols: %w", err)
		}
		symbols := grading.NewSymbolTable(symbolList)

		var marks []string
		for _, raw := range strings.Split(attemptsFlag, ",") {
			mark := grading.NormalizeAttempt(raw)
			if mark == "" {
				continue
			}
			if !symbols.Known(mark) {
				return fmt.Errorf("unknown attempt symbol %q", mark)
			}
			marks = append(marks, mark)
		}
		if len(marks) == 0 {
			return fmt.Errorf("no attempts given (use --attempts, e.g. --attempts 1,X,1)")
		}

		rows, err := s.GradebookRepo().RowsForStudent(ctx, email)
		if err != nil {
			return fmt.Errorf("load rows: %w", err)
		}
		rowID := 0
		for _, row := range rows {
			if row.Unit == unit && row.SkillNumber == skillNumber {
				rowID = row.ID
				break
			}
		}
		if rowID == 0 {
			return fmt.Errorf("no grade row for %s %s %s (run populate first)", email, unit, skillNumber)
		}

		for _, mark := range marks {
			if err := s.GradebookRepo().RecordAttempt(ctx, rowID, level, mark); err != nil {
				return fmt.Errorf("record attempt: %w", err)
			}
		}

		snap, err := snapshot.NewReader(s.GradingConfigRepo(), s.GradebookRepo()).Load(ctx)
		if err != nil {
			return fmt.Errorf("recompute grade: %w", err)
		}
		if row, ok := snap.Row(email, unit, skillNumber); ok {
			fmt.Printf("Recorded %d attempts at %s. Grade: %s\n", len(marks), level, row.Grade.Display())
		}
		return nil
	},
}

func init() {
	gradeCmd.Flags().StringP("level", "l", "", "Level short code (e.g. B, I, M)")
	gradeCmd.Flags().StringP("attempts", "a", "", "Comma-separated attempt symbols")
	gradeCmd.MarkFlagRequired("level")
	gradeCmd.MarkFlagRequired("attempts")
}
