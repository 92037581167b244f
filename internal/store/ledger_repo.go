package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/meera/lingodrill/internal/ledger"
)

type ledgerRepo struct {
	db *sql.DB
}

func (r *ledgerRepo) Ledger(ctx context.Context, profile string) (ledger.Map, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT question_id, total_attempts, correct, wrong, doubt
		 FROM performance_records
		 WHERE profile = ?`,
		profile,
	)
	if err != nil {
		return nil, fmt.Errorf("query ledger: %w", err)
	}
	defer rows.Close()

	m := make(ledger.Map)
	for rows.Next() {
		var (
			questionID string
			rec        ledger.Record
		)
		if err := rows.Scan(&questionID, &rec.TotalAttempts, &rec.Correct, &rec.Wrong, &rec.Doubt); err != nil {
			return nil, fmt.Errorf("scan ledger row: %w", err)
		}
		m[questionID] = rec
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledger rows: %w", err)
	}
	return m, nil
}

// ApplyUpdates runs as a single transaction so the batch lands whole: a
// failed increment leaves every counter untouched.
func (r *ledgerRepo) ApplyUpdates(ctx context.Context, profile string, updates []ledger.Update) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin ledger tx: %w", err)
	}
	defer tx.Rollback()

	if err := applyUpdatesTx(ctx, tx, profile, updates); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit ledger updates: %w", err)
	}
	return nil
}

// applyUpdatesTx performs the increments inside an existing transaction.
// Records are created lazily on first attempt; counters only ever grow.
func applyUpdatesTx(ctx context.Context, tx *sql.Tx, profile string, updates []ledger.Update) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO performance_records
			(profile, question_id, total_attempts, correct, wrong, doubt)
		 VALUES (?, ?, 1, ?, ?, ?)
		 ON CONFLICT (profile, question_id) DO UPDATE SET
			total_attempts = total_attempts + 1,
			correct = correct + excluded.correct,
			wrong = wrong + excluded.wrong,
			doubt = doubt + excluded.doubt`,
	)
	if err != nil {
		return fmt.Errorf("prepare ledger upsert: %w", err)
	}
	defer stmt.Close()

	for _, u := range updates {
		var correct, wrong, doubt int
		switch u.Class {
		case ledger.ClassCorrect:
			correct = 1
		case ledger.ClassWrong:
			wrong = 1
		case ledger.ClassDoubt:
			doubt = 1
		default:
			return fmt.Errorf("unknown classification for question %s", u.QuestionID)
		}
		if _, err := stmt.ExecContext(ctx, profile, u.QuestionID, correct, wrong, doubt); err != nil {
			return fmt.Errorf("apply update for question %s: %w", u.QuestionID, err)
		}
	}
	return nil
}
