package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/meera/lingodrill/internal/practice"
)

type resultRepo struct {
	db *sql.DB
}

func (r *resultRepo) Append(ctx context.Context, profile string, result practice.Result) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin result tx: %w", err)
	}
	defer tx.Rollback()

	if err := appendResultTx(ctx, tx, profile, result); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit result: %w", err)
	}
	return nil
}

func appendResultTx(ctx context.Context, tx *sql.Tx, profile string, result practice.Result) error {
	cfgRaw, err := marshalJSON(result.Config)
	if err != nil {
		return fmt.Errorf("encode result config: %w", err)
	}
	idsRaw, err := marshalJSON(result.QuestionIDs)
	if err != nil {
		return fmt.Errorf("encode question ids: %w", err)
	}
	answersRaw, err := marshalJSON(result.Answers)
	if err != nil {
		return fmt.Errorf("encode answers: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO test_results
			(id, profile, lesson_id, config, question_ids, answers, score, total_questions, completed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		result.ID, profile, result.LessonID, cfgRaw, idsRaw, answersRaw,
		result.Score, result.TotalQuestions,
		result.CompletedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert result: %w", err)
	}
	return nil
}

func (r *resultRepo) List(ctx context.Context, profile string, limit int) ([]practice.Result, error) {
	query := `SELECT id, lesson_id, config, question_ids, answers, score, total_questions, completed_at
		 FROM test_results
		 WHERE profile = ?
		 ORDER BY completed_at DESC`
	args := []any{profile}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var results []practice.Result
	for rows.Next() {
		res, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate results: %w", err)
	}
	return results, nil
}

func scanResult(rows *sql.Rows) (practice.Result, error) {
	var (
		res         practice.Result
		cfgRaw      string
		idsRaw      string
		answersRaw  string
		completedAt string
	)
	if err := rows.Scan(&res.ID, &res.LessonID, &cfgRaw, &idsRaw, &answersRaw,
		&res.Score, &res.TotalQuestions, &completedAt); err != nil {
		return practice.Result{}, fmt.Errorf("scan result row: %w", err)
	}

	if err := json.Unmarshal([]byte(cfgRaw), &res.Config); err != nil {
		return practice.Result{}, fmt.Errorf("decode result config: %w", err)
	}
	if err := json.Unmarshal([]byte(idsRaw), &res.QuestionIDs); err != nil {
		return practice.Result{}, fmt.Errorf("decode question ids: %w", err)
	}
	if err := json.Unmarshal([]byte(answersRaw), &res.Answers); err != nil {
		return practice.Result{}, fmt.Errorf("decode answers: %w", err)
	}
	t, err := time.Parse(time.RFC3339Nano, completedAt)
	if err != nil {
		return practice.Result{}, fmt.Errorf("parse completed_at: %w", err)
	}
	res.CompletedAt = t
	return res, nil
}
