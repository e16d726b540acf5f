package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thinkle/sbgsync/internal/snapshot"
	"github.com/thinkle/sbgsync/internal/syncer"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Push changed grades to the SIS",
	Long:  "Reconcile the grade snapshot against the sync ledger and post every score that changed since the last run.",
	RunE: func(cmd *cobra.Command, args []string) error {
		classID, _ := cmd.Flags().GetString("class")
		unitAverages, _ := cmd.Flags().GetBool("unit-averages")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()
		ctx := cmd.Context()

		class, err := activeClass(ctx, s, classID)
		if err != nil {
			return err
		}
		api, gate, err := newSISAPI(s)
		if err != nil {
			return err
		}

		snap, err := snapshot.NewReader(s.GradingConfigRepo(), s.GradebookRepo()).Load(ctx)
		if err != nil {
			return err
		}

		sy := syncer.New(api, gate, s.LedgerRepo(), class)
		if err := sy.Load(ctx, s.ClassRepo(), s.AssignmentRepo()); err != nil {
			return fmt.Errorf("load sync state: %w", err)
		}

		sum := sy.SyncSkills(ctx, snap)
		if unitAverages {
			avg := sy.SyncUnitAverages(ctx, snap)
			sum.Attempted += avg.Attempted
			sum.Synced += avg.Synced
			sum.Skipped += avg.Skipped
			sum.Errors = append(sum.Errors, avg.Errors...)
		}

		fmt.Printf("Synced %d of %d grades (%d unchanged).\n", sum.Synced, sum.Attempted, sum.Skipped)
		for _, re := range sum.Errors {
			fmt.Println("  error:", re.String())
		}
		if len(sum.Errors) > 0 {
			return fmt.Errorf("%d grades failed to sync", len(sum.Errors))
		}
		return nil
	},
}

func init() {
	syncCmd.Flags().String("class", "", "Linked class sourcedId (default: the active class)")
	syncCmd.Flags().Bool("unit-averages", false, "Also sync per-unit averages")
}
