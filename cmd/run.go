package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meera/lingodrill/internal/app"
	"github.com/meera/lingodrill/internal/bank"
	"github.com/meera/lingodrill/internal/store"
)

// runApp opens the store, loads the question bank, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	b, err := loadBank(cmd)
	if err != nil {
		return fmt.Errorf("load question bank: %w", err)
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

	return app.Run(app.Options{
		Bank:    b,
		Store:   st,
		Profile: resolveProfile(cmd),
	})
}

// loadBank loads course content from --content, LINGODRILL_CONTENT, or the
// embedded sample course, in that order.
func loadBank(cmd *cobra.Command) (bank.Bank, error) {
	if dir, _ := cmd.Flags().GetString("content"); dir != "" {
		return bank.LoadDir(dir)
	}
	return bank.LoadDefault()
}
