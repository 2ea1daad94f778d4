package settings

import (
	"context"
	"embed"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/comingsoon/integration/database/pg"
)

// Migrations holds the goose migrations for PostgresStore.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory inside Migrations.
const MigrationsDir = "migrations"

const (
	selectSettingsSQL = `SELECT enabled, title, message, logo_key, password FROM comingsoon_settings WHERE id = 1`

	upsertSettingsSQL = `INSERT INTO comingsoon_settings (id, enabled, title, message, logo_key, password, updated_at)
VALUES (1, $1, $2, $3, $4, $5, now())
ON CONFLICT (id) DO UPDATE SET
	enabled = EXCLUDED.enabled,
	title = EXCLUDED.title,
	message = EXCLUDED.message,
	logo_key = EXCLUDED.logo_key,
	password = EXCLUDED.password,
	updated_at = EXCLUDED.updated_at`
)

// Querier is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresStore keeps settings in a single-row table.
// A transaction attached with pg.WithTx takes precedence over the pool.
type PostgresStore struct {
	db Querier
}

// NewPostgresStore returns a store using db.
func NewPostgresStore(db Querier) (*PostgresStore, error) {
	if db == nil {
		return nil, ErrNilClient
	}
	return &PostgresStore{db: db}, nil
}

func (p *PostgresStore) querier(ctx context.Context) Querier {
	if tx, ok := pg.TxFromContext(ctx); ok {
		return tx
	}
	return p.db
}

func (p *PostgresStore) Load(ctx context.Context) (Settings, error) {
	var s Settings
	err := p.querier(ctx).QueryRow(ctx, selectSettingsSQL).
		Scan(&s.Enabled, &s.Title, &s.Message, &s.LogoKey, &s.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Settings{}, ErrNotFound
		}
		return Settings{}, fmt.Errorf("%w: postgres: %w", ErrLoadFailed, err)
	}
	return s, nil
}

func (p *PostgresStore) Save(ctx context.Context, s Settings) error {
	_, err := p.querier(ctx).Exec(ctx, upsertSettingsSQL, s.Enabled, s.Title, s.Message, s.LogoKey, s.Password)
	if err != nil {
		return fmt.Errorf("postgres upsert: %w", err)
	}
	return nil
}
