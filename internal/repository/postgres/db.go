package postgres

import (
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/nicitum/orderappu-sub000/internal/config"
)

// NewDB opens a pgx-backed sqlx pool and verifies connectivity before
// returning it.
func NewDB(cfg *config.DBConfig) (*sqlx.DB, error) {
	db, err := sqlx.Connect("pgx", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("postgres connect: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpen)
	db.SetMaxIdleConns(cfg.MaxIdle)
	// Recycle connections so stale ones don't outlive a failover.
	db.SetConnMaxLifetime(30 * time.Minute)
	return db, nil
}
