package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thinkle/sbgsync/internal/config"
	"github.com/thinkle/sbgsync/internal/oneroster"
	"github.com/thinkle/sbgsync/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "sbgsync",
	Short: "Standards-based gradebook with SIS sync",
	Long:  "sbgsync — a standards-based gradebook that evaluates mastery from attempt streaks and syncs scores to a OneRoster SIS.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SBGSYNC_DB env var)")

	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(studentsCmd)
	rootCmd.AddCommand(skillsCmd)
	rootCmd.AddCommand(populateCmd)
	rootCmd.AddCommand(gradeCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(sisCmd)
	rootCmd.AddCommand(assignmentsCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SBGSYNC_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore resolves the database path and opens the store. Callers
// own the Close.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// newSISAPI builds a logged OneRoster client and an access gate for
// the acting teacher from the environment configuration.
func newSISAPI(s *store.Store) (*oneroster.LoggingAPI, *oneroster.AccessGate, error) {
	cfg := config.FromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	client, err := oneroster.NewClient(cfg.SIS)
	if err != nil {
		return nil, nil, fmt.Errorf("build SIS client: %w", err)
	}
	api := oneroster.WithLogging(client, s.EventRepo())
	gate := oneroster.NewAccessGate(api, cfg.TeacherEmail)
	return api, gate, nil
}
