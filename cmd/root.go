package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/meera/lingodrill/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "lingodrill",
	Short: "Practice tests for language learners",
	Long:  "LingoDrill — terminal app that drills language-course lessons with adaptive practice tests.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LINGODRILL_DB env var)")
	rootCmd.PersistentFlags().String("profile", "", "Learner profile name (overrides LINGODRILL_PROFILE env var)")
	rootCmd.PersistentFlags().String("content", "", "Course content directory (overrides LINGODRILL_CONTENT env var)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then LINGODRILL_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveProfile returns the explicit learner profile: --profile flag, then
// LINGODRILL_PROFILE env var, then "default". Every store operation is keyed
// by this value; there is no ambient current-user state anywhere below cmd.
func resolveProfile(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("profile"); p != "" {
		return p
	}
	if p := os.Getenv("LINGODRILL_PROFILE"); p != "" {
		return p
	}
	return "default"
}
