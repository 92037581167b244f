package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meera/lingodrill/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all data for a profile",
	Long:  "Deletes the profile's performance records, test history, and saved configuration. Requires --yes.",
	RunE: func(cmd *cobra.Command, args []string) error {
		profile := resolveProfile(cmd)

		confirmed, _ := cmd.Flags().GetBool("yes")
		if !confirmed {
			fmt.Printf("This deletes all data for profile %q. Re-run with --yes to confirm.\n", profile)
			return nil
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.Reset(cmd.Context(), profile); err != nil {
			return fmt.Errorf("reset profile: %w", err)
		}
		fmt.Printf("Profile %q reset.\n", profile)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")
}
