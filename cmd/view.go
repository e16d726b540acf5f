package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thinkle/sbgsync/internal/snapshot"
	"github.com/thinkle/sbgsync/internal/view"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Show the grade snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		student, _ := cmd.Flags().GetString("student")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		snap, err := snapshot.NewReader(s.GradingConfigRepo(), s.GradebookRepo()).Load(cmd.Context())
		if err != nil {
			return err
		}
		if len(snap.Rows) == 0 {
			fmt.Println("No grade rows yet. Add students and skills, then run populate.")
			return nil
		}

		if student != "" {
			fmt.Print(view.RenderStudent(snap, student))
			return nil
		}
		fmt.Print(view.RenderAll(snap))
		return nil
	},
}

func init() {
	viewCmd.Flags().StringP("student", "s", "", "Show a single student by email")
}
