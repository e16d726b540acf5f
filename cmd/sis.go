package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thinkle/sbgsync/internal/oneroster"
	"github.com/thinkle/sbgsync/internal/store"
)

var sisCmd = &cobra.Command{
	Use:   "sis",
	Short: "Connect to the student information system",
}

var sisCoursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List the acting teacher's classes",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		api, gate, err := newSISAPI(s)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		teacher, err := gate.Teacher(ctx)
		if err != nil {
			return fmt.Errorf("resolve teacher: %w", err)
		}
		classes, err := api.ClassesForTeacher(ctx, teacher.SourcedID)
		if err != nil {
			return fmt.Errorf("list classes: %w", err)
		}
		if len(classes) == 0 {
			fmt.Println("No classes found.")
			return nil
		}
		for _, cl := range classes {
			fmt.Printf("%-24s  %s\n", cl.SourcedID, cl.Title)
		}
		return nil
	},
}

var sisInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Link a class and mirror its roster",
	Long:  "Verify the acting teacher can reach the class, pick a grading category and period, and mirror the class roster locally.",
	RunE: func(cmd *cobra.Command, args []string) error {
		classID, _ := cmd.Flags().GetString("class")
		categoryTitle, _ := cmd.Flags().GetString("category")
		periodID, _ := cmd.Flags().GetString("grading-period")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		api, gate, err := newSISAPI(s)
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		if err := gate.RequireClass(ctx, classID); err != nil {
			return err
		}

		teacher, err := gate.Teacher(ctx)
		if err != nil {
			return fmt.Errorf("resolve teacher: %w", err)
		}
		classes, err := api.ClassesForTeacher(ctx, teacher.SourcedID)
		if err != nil {
			return fmt.Errorf("list classes: %w", err)
		}
		cfg := store.ClassConfig{ClassID: classID, Active: true}
		for _, cl := range classes {
			if cl.SourcedID == classID {
				cfg.ClassTitle = cl.Title
				cfg.CourseID = cl.Course.SourcedID
				break
			}
		}

		if err := pickCategory(ctx, api.Categories, categoryTitle, &cfg); err != nil {
			return err
		}
		if err := pickGradingPeriod(ctx, api.GradingPeriods, periodID, &cfg); err != nil {
			return err
		}

		students, err := api.StudentsForClass(ctx, classID)
		if err != nil {
			return fmt.Errorf("fetch roster: %w", err)
		}
		roster := make([]store.RosterStudent, 0, len(students))
		for _, stu := range students {
			roster = append(roster, store.RosterStudent{
				ClassID:    classID,
				SourcedID:  stu.SourcedID,
				Email:      stu.Email,
				GivenName:  stu.GivenName,
				FamilyName: stu.FamilyName,
			})
		}

		if err := s.ClassRepo().SaveClass(ctx, cfg); err != nil {
			return fmt.Errorf("save class: %w", err)
		}
		if err := s.ClassRepo().ReplaceRoster(ctx, classID, roster); err != nil {
			return fmt.Errorf("mirror roster: %w", err)
		}

		fmt.Printf("Linked %s (%s): category %q, %d students mirrored.\n",
			cfg.ClassTitle, classID, cfg.CategoryTitle, len(roster))
		return nil
	},
}

// pickCategory fills the class config's category, matching by title
// when one is given and falling back to the first category otherwise.
func pickCategory(ctx context.Context, list func(context.Context, string) ([]oneroster.Category, error), title string, cfg *store.ClassConfig) error {
	filter := ""
	if title != "" {
		filter = fmt.Sprintf("title='%s'", title)
	}
	cats, err := list(ctx, filter)
	if err != nil {
		return fmt.Errorf("fetch categories: %w", err)
	}
	if len(cats) == 0 {
		if title != "" {
			return fmt.Errorf("no category titled %q", title)
		}
		return fmt.Errorf("no grading categories found")
	}
	cfg.CategoryID = cats[0].SourcedID
	cfg.CategoryTitle = cats[0].Title
	return nil
}

func pickGradingPeriod(ctx context.Context, list func(context.Context) ([]oneroster.GradingPeriod, error), periodID string, cfg *store.ClassConfig) error {
	periods, err := list(ctx)
	if err != nil {
		return fmt.Errorf("fetch grading periods: %w", err)
	}
	if periodID != "" {
		for _, p := range periods {
			if p.SourcedID == periodID {
				cfg.GradingPeriodID = p.SourcedID
				return nil
			}
		}
		return fmt.Errorf("no grading period %q", periodID)
	}
	if len(periods) > 0 {
		cfg.GradingPeriodID = periods[0].SourcedID
	}
	return nil
}

func init() {
	sisInitCmd.Flags().String("class", "", "SIS class sourcedId to link")
	sisInitCmd.Flags().String("category", "", "Grading category title (default: first category)")
	sisInitCmd.Flags().String("grading-period", "", "Grading period sourcedId (default: first period)")
	sisInitCmd.MarkFlagRequired("class")

	sisCmd.AddCommand(sisInitCmd)
	sisCmd.AddCommand(sisCoursesCmd)
}
