package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thinkle/sbgsync/internal/store"
)

var studentsCmd = &cobra.Command{
	Use:   "students",
	Short: "Manage the student roster",
}

var studentsAddCmd = &cobra.Command{
	Use:   "add <email>",
	Short: "Add a student",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		first, _ := cmd.Flags().GetString("first")
		last, _ := cmd.Flags().GetString("last")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		err = s.GradebookRepo().AddStudent(cmd.Context(), store.Student{
			Email:     args[0],
			FirstName: first,
			LastName:  last,
		})
		if err != nil {
			return fmt.Errorf("add student: %w", err)
		}
		fmt.Println("Added", args[0])
		return nil
	},
}

var studentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List students",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		students, err := s.GradebookRepo().Students(cmd.Context())
		if err != nil {
			return fmt.Errorf("list students: %w", err)
		}
		if len(students) == 0 {
			fmt.Println("No students yet.")
			return nil
		}
		for _, stu := range students {
			name := stu.FirstName + " " + stu.LastName
			fmt.Printf("%-32s  %s\n", stu.Email, name)
		}
		return nil
	},
}

func init() {
	studentsAddCmd.Flags().String("first", "", "First name")
	studentsAddCmd.Flags().String("last", "", "Last name")

	studentsCmd.AddCommand(studentsAddCmd)
	studentsCmd.AddCommand(studentsListCmd)
}
