package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/thinkle/sbgsync/internal/registry"
	"github.com/thinkle/sbgsync/internal/snapshot"
	"github.com/thinkle/sbgsync/internal/store"
)

var assignmentsCmd = &cobra.Command{
	Use:   "assignments",
	Short: "Stage and create SIS assignments",
}

// activeClass returns the linked class, by id when given, otherwise
// the single active one.
func activeClass(ctx context.Context, s *store.Store, classID string) (store.ClassConfig, error) {
	if classID != "" {
		cfg, err := s.ClassRepo().Class(ctx, classID)
		if err != nil {
			return store.ClassConfig{}, err
		}
		if cfg == nil {
			return store.ClassConfig{}, fmt.Errorf("class %s not linked (run sis init first)", classID)
		}
		return *cfg, nil
	}
	classes, err := s.ClassRepo().Classes(ctx)
	if err != nil {
		return store.ClassConfig{}, err
	}
	var active []store.ClassConfig
	for _, cfg := range classes {
		if cfg.Active {
			active = append(active, cfg)
		}
	}
	switch len(active) {
	case 0:
		return store.ClassConfig{}, fmt.Errorf("no linked class (run sis init first)")
	case 1:
		return active[0], nil
	default:
		return store.ClassConfig{}, fmt.Errorf("%d classes linked, pick one with --class", len(active))
	}
}

func parseDue(cmd *cobra.Command) (time.Time, error) {
	due, _ := cmd.Flags().GetString("due")
	t, err := time.Parse("2006-01-02", due)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --due %q (want YYYY-MM-DD): %w", due, err)
	}
	return t, nil
}

func printStageSummary(what string, sum registry.Summary) {
	fmt.Printf("Staged %d %s (%d already staged).\n", sum.Created, what, sum.Skipped)
	for _, re := range sum.Errors {
		fmt.Println("  error:", re.String())
	}
}

var assignmentsAddSkillsCmd = &cobra.Command{
	Use:   "add-skills",
	Short: "Stage one assignment per skill",
	RunE: func(cmd *cobra.Command, args []string) error {
		classID, _ := cmd.Flags().GetString("class")
		due, err := parseDue(cmd)
		if err != nil {
			return err
		}

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
		skills, err := s.GradebookRepo().Skills(ctx)
		if err != nil {
			return fmt.Errorf("list skills: %w", err)
		}
		sum, err := registry.New(s.AssignmentRepo()).StageSkills(ctx, class, skills, due)
		if err != nil {
			return err
		}
		printStageSummary("skill assignments", sum)
		return nil
	},
}

var assignmentsAddUnitAveragesCmd = &cobra.Command{
	Use:   "add-unit-averages",
	Short: "Stage one average assignment per unit",
	RunE: func(cmd *cobra.Command, args []string) error {
		classID, _ := cmd.Flags().GetString("class")
		due, err := parseDue(cmd)
		if err != nil {
			return err
		}

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
		snap, err := snapshot.NewReader(s.GradingConfigRepo(), s.GradebookRepo()).Load(ctx)
		if err != nil {
			return err
		}
		sum, err := registry.New(s.AssignmentRepo()).StageUnitAverages(ctx, class, snap.Units(), due)
		if err != nil {
			return err
		}
		printStageSummary("unit averages", sum)
		return nil
	},
}

var assignmentsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create staged assignments in the SIS",
	RunE: func(cmd *cobra.Command, args []string) error {
		classID, _ := cmd.Flags().GetString("class")

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

		sum, err := registry.New(s.AssignmentRepo()).CreateMissing(ctx, api, gate, class)
		if err != nil {
			return err
		}
		fmt.Printf("Created %d assignments (%d skipped).\n", sum.Created, sum.Skipped)
		for _, re := range sum.Errors {
			fmt.Println("  error:", re.String())
		}
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{assignmentsAddSkillsCmd, assignmentsAddUnitAveragesCmd, assignmentsCreateCmd} {
		c.Flags().String("class", "", "Linked class sourcedId (default: the active class)")
	}
	assignmentsAddSkillsCmd.Flags().String("due", "", "Due date, YYYY-MM-DD")
	assignmentsAddUnitAveragesCmd.Flags().String("due", "", "Due date, YYYY-MM-DD")
	assignmentsAddSkillsCmd.MarkFlagRequired("due")
	assignmentsAddUnitAveragesCmd.MarkFlagRequired("due")

	assignmentsCmd.AddCommand(assignmentsAddSkillsCmd)
	assignmentsCmd.AddCommand(assignmentsAddUnitAveragesCmd)
	assignmentsCmd.AddCommand(assignmentsCreateCmd)
}
