package cmd

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/meera/lingodrill/internal/ledger"
	"github.com/meera/lingodrill/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-question performance counters",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		profile := resolveProfile(cmd)
		records, err := st.Ledger().Ledger(cmd.Context(), profile)
		if err != nil {
			return fmt.Errorf("load ledger: %w", err)
		}
		if len(records) == 0 {
			fmt.Printf("No attempts recorded for profile %q yet.\n", profile)
			return nil
		}

		printStats(cmd, profile, records)
		return nil
	},
}

// printStats writes a tab-aligned table, one row per attempted question.
func printStats(cmd *cobra.Command, profile string, records ledger.Map) {
	ids := make([]string, 0, len(records))
	for id := range records {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var total ledger.Record

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "QUESTION\tATTEMPTS\tCORRECT\tWRONG\tDOUBT\n")
	for _, id := range ids {
		r := records[id]
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\n", id, r.TotalAttempts, r.Correct, r.Wrong, r.Doubt)
		total.TotalAttempts += r.TotalAttempts
		total.Correct += r.Correct
		total.Wrong += r.Wrong
		total.Doubt += r.Doubt
	}
	fmt.Fprintf(w, "TOTAL\t%d\t%d\t%d\t%d\n", total.TotalAttempts, total.Correct, total.Wrong, total.Doubt)
	w.Flush()

	fmt.Fprintf(cmd.OutOrStdout(), "\nprofile: %s, questions attempted: %d\n", profile, len(ids))
}
