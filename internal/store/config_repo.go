package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/meera/lingodrill/internal/practice"
)

type configRepo struct {
	db *sql.DB
}

func (r *configRepo) LastConfig(ctx context.Context, profile string) (*practice.Config, error) {
	var raw string
	err := r.db.QueryRowContext(ctx,
		"SELECT config FROM test_configs WHERE profile = ?", profile,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query last config: %w", err)
	}

	var cfg practice.Config
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return nil, fmt.Errorf("decode last config: %w", err)
	}
	return &cfg, nil
}

func (r *configRepo) SaveConfig(ctx context.Context, profile string, cfg practice.Config) error {
	raw, err := marshalJSON(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO test_configs (profile, config, updated_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT (profile) DO UPDATE SET
			config = excluded.config,
			updated_at = excluded.updated_at`,
		profile, raw, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}
