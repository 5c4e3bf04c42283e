package database

import (
	"context"
	"database/sql"
)

// Tipos portáveis entre postgres e sqlite. TIMESTAMP é o decltype que o
// driver do sqlite reconhece para devolver time.Time.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS plans (
		id          TEXT PRIMARY KEY,
		body        TEXT NOT NULL,
		source_text TEXT NOT NULL,
		status      TEXT NOT NULL,
		version     INTEGER NOT NULL,
		created_at  TIMESTAMP NOT NULL,
		updated_at  TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_plans_status ON plans (status)`,
	`CREATE TABLE IF NOT EXISTS campaign_metrics (
		id          TEXT PRIMARY KEY,
		plan_id     TEXT NOT NULL,
		channel     TEXT NOT NULL,
		impressions INTEGER NOT NULL,
		clicks      INTEGER NOT NULL,
		conversions INTEGER NOT NULL,
		cost        DOUBLE PRECISION NOT NULL,
		created_at  TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_campaign_metrics_plan ON campaign_metrics (plan_id)`,
}

// EnsureSchema cria as tabelas e índices que ainda não existem.
func EnsureSchema(ctx context.Context, conn *Connection) error {
	return conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, stmt := range schema {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return err
			}
		}
		return nil
	})
}
