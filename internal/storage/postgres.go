package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/XSAM/otelsql"
	"github.com/aaravmahajanofficial/storefront-studio/internal/config"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	_ "github.com/lib/pq"
)

const schema = `
	CREATE TABLE IF NOT EXISTS storefront_kv (
		key        TEXT PRIMARY KEY,
		value      BYTEA NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

type postgresStore struct {
	DB     *sql.DB
	prefix string
}

// OpenPostgres opens an instrumented connection pool and verifies it is reachable.
func OpenPostgres(ctx context.Context, cfg *config.Config) (*sql.DB, error) {

	db, err := otelsql.Open("postgres", cfg.Database.GetDSN(), otelsql.WithAttributes(semconv.DBSystemPostgreSQL))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func NewPostgresStore(db *sql.DB, prefix string) BlobStore {
	return &postgresStore{DB: db, prefix: prefix}
}

// EnsureSchema creates the key/value table when it does not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create storefront_kv table: %w", err)
	}

	return nil
}

func (p *postgresStore) Get(ctx context.Context, key string) ([]byte, bool, error) {

	query := `
		SELECT value
		FROM storefront_kv
		WHERE key = $1
	`

	var value []byte

	err := p.DB.QueryRowContext(ctx, query, Key(p.prefix, key)).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}

		return nil, false, fmt.Errorf("failed to get key %s from postgres: %w", key, err)
	}

	return value, true, nil
}

func (p *postgresStore) Set(ctx context.Context, key string, value []byte) error {

	query := `
		INSERT INTO storefront_kv (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`

	if _, err := p.DB.ExecContext(ctx, query, Key(p.prefix, key), value); err != nil {
		return fmt.Errorf("failed to set key %s in postgres: %w", key, err)
	}

	return nil
}

func (p *postgresStore) Remove(ctx context.Context, key string) error {

	query := `
		DELETE FROM storefront_kv
		WHERE key = $1
	`

	if _, err := p.DB.ExecContext(ctx, query, Key(p.prefix, key)); err != nil {
		return fmt.Errorf("failed to delete key %s from postgres: %w", key, err)
	}

	return nil
}

func (p *postgresStore) Close() error {
	return p.DB.Close()
}
