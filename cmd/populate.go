package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var populateCmd = &cobra.Command{
	Use:   "populate",
	Short: "Create missing grade rows for every student and skill",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		created, err := s.GradebookRepo().EnsureRows(cmd.Context())
		if err != nil {
			return fmt.Errorf("populate rows: %w", err)
		}
		if created == 0 {
			fmt.Println("Grade rows already up to date.")
			return nil
		}
		fmt.Printf("Created %d grade rows.\n", created)
		return nil
	},
}
