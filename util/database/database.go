package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// New opens a pgx-backed *sql.DB and verifies connectivity.
func New(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxIdleTime(90 * time.Second)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// CheckTables walks the expected tables in order and logs whether each
// exists and how many rows it holds. A missing table means the schema in
// migrations/schema.sql has not been applied.
func CheckTables(ctx context.Context, db *sql.DB, log *slog.Logger, tables []string) error {
	for _, t := range tables {
		var count int64
		err := db.QueryRowContext(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM %s`, t)).Scan(&count)
		if err != nil {
			log.Error("table check failed", "table", t, "err", err)
			return fmt.Errorf("table %s: %w", t, err)
		}
		log.Info("table ok", "table", t, "rows", count)
	}
	return nil
}
