package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thinkle/sbgsync/internal/store"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Manage the skill list",
}

var skillsAddCmd = &cobra.Command{
	Use:   "add <unit> <number> <descriptor>",
	Short: "Add a skill",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		err = s.GradebookRepo().AddSkill(cmd.Context(), store.Skill{
			Unit:       args[0],
			Number:     args[1],
			Descriptor: args[2],
		})
		if err != nil {
			return fmt.Errorf("add skill: %w", err)
		}
		fmt.Printf("Added %s %s (%s)\n", args[0], args[1], args[2])
		return nil
	},
}

var skillsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List skills",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		skills, err := s.GradebookRepo().Skills(cmd.Context())
		if err != nil {
			return fmt.Errorf("list skills: %w", err)
		}
		if len(skills) == 0 {
			fmt.Println("No skills yet.")
			return nil
		}
		for _, sk := range skills {
			fmt.Printf("%-12s  %-6s  %s\n", sk.Unit, sk.Number, sk.Descriptor)
		}
		return nil
	},
}

func init() {
	skillsCmd.AddCommand(skillsAddCmd)
	skillsCmd.AddCommand(skillsListCmd)
}
