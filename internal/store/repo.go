package store

import (
	"context"

	"github.com/meera/lingodrill/internal/ledger"
	"github.com/meera/lingodrill/internal/practice"
)

// ConfigRepo persists each profile's last-used test configuration.
type ConfigRepo interface {
	// LastConfig returns the profile's saved configuration, or nil if the
	// profile has never saved one.
	LastConfig(ctx context.Context, profile string) (*practice.Config, error)

	// SaveConfig stores cfg as the profile's defaults for the next test.
	SaveConfig(ctx context.Context, profile string, cfg practice.Config) error
}

// LedgerRepo manages the per-question performance counters.
type LedgerRepo interface {
	// Ledger loads the profile's full ledger. Questions never attempted have
	// no entry.
	Ledger(ctx context.Context, profile string) (ledger.Map, error)

	// ApplyUpdates increments the counters for every update in the batch,
	// creating records lazily. All updates apply or none do.
	ApplyUpdates(ctx context.Context, profile string, updates []ledger.Update) error
}

// ResultRepo manages the append-only test-result history.
type ResultRepo interface {
	// Append stores one completed session's result.
	Append(ctx context.Context, profile string, result practice.Result) error

	// List returns the profile's results, newest first, at most limit
	// (0 = unlimited).
	List(ctx context.Context, profile string, limit int) ([]practice.Result, error)
}
