package pg

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrEmptyConnectionString    = errors.New("pg: empty connection string, set PG_CONN_URL")
	ErrFailedToParseDBConfig    = errors.New("pg: invalid connection string")
	ErrFailedToOpenDBConnection = errors.New("pg: failed to connect")
	ErrHealthcheckFailed        = errors.New("pg: healthcheck failed")
	ErrFailedToApplyMigrations  = errors.New("pg: failed to apply migrations")
	ErrMigrationPathNotProvided = errors.New("pg: migration directory not provided")
)

// IsNotFoundError reports whether err is pgx.ErrNoRows.
func IsNotFoundError(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// IsDuplicateKeyError reports a unique constraint violation.
func IsDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// IsTxClosedError reports use of a committed or rolled back transaction.
func IsTxClosedError(err error) bool {
	return errors.Is(err, pgx.ErrTxClosed)
}
