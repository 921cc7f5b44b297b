package i18n

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresConfig configures the PostgreSQL-backed translation source.
type PostgresConfig struct {
	ConnectionString string        `env:"I18N_PG_CONN_URL,required"`              // ConnectionString is the connection string to the database.
	Table            string        `env:"I18N_PG_TABLE" envDefault:"translations"` // Table holds (locale, key, value) rows.
	RetryAttempts    int           `env:"I18N_PG_RETRY_ATTEMPTS" envDefault:"3"`   // RetryAttempts is the number of retry attempts to connect.
	RetryInterval    time.Duration `env:"I18N_PG_RETRY_INTERVAL" envDefault:"5s"`  // RetryInterval is the interval between retry attempts.
}

// Identifiers cannot be bound as query parameters, so the table name is
// validated against this pattern before interpolation.
var tableNameRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*(\.[a-zA-Z_][a-zA-Z0-9_]*)?$`)

// PostgresAdapter loads translations from a table of (locale, key, value)
// rows. Keys may be dotted paths ("greeting.morning"); since rows are already
// flat they pass through flattening unchanged.
type PostgresAdapter struct {
	pool  *pgxpool.Pool
	table string
}

// NewPostgresAdapter connects to PostgreSQL with retry and returns an adapter
// bound to the configured table. The pool is owned by the adapter; use
// NewPostgresAdapterFromPool to share an existing one.
func NewPostgresAdapter(ctx context.Context, cfg PostgresConfig) (*PostgresAdapter, error) {
	if !tableNameRe.MatchString(cfg.Table) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTableName, cfg.Table)
	}

	connConfig, err := pgxpool.ParseConfig(cfg.ConnectionString)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseDBConn, err)
	}

	// Linear backoff between attempts, same as the rest of the stack does on
	// startup: attempt 1 waits RetryInterval, attempt 2 waits 2x, and so on.
	for i := 0; i < cfg.RetryAttempts; i++ {
		pool, err := pgxpool.NewWithConfig(ctx, connConfig)
		if err != nil {
			time.Sleep(time.Duration(i+1) * cfg.RetryInterval)
			continue
		}

		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			time.Sleep(time.Duration(i+1) * cfg.RetryInterval)
			continue
		}

		return &PostgresAdapter{pool: pool, table: cfg.Table}, nil
	}

	return nil, ErrStoreNotReady
}

// NewPostgresAdapterFromPool wraps an existing pool. The caller keeps
// ownership of the pool. Returns nil if pool is nil or the table name is
// invalid.
func NewPostgresAdapterFromPool(pool *pgxpool.Pool, table string) *PostgresAdapter {
	if pool == nil || !tableNameRe.MatchString(table) {
		return nil
	}
	return &PostgresAdapter{pool: pool, table: table}
}

// Load implements the Adapter interface.
func (a *PostgresAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	query := fmt.Sprintf(`SELECT locale, key, value FROM %s`, a.table)

	rows, err := a.pool.Query(ctx, query)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadSource, err)
	}
	defer rows.Close()

	result := make(map[string]map[string]any)
	for rows.Next() {
		var locale, key, value string
		if err := rows.Scan(&locale, &key, &value); err != nil {
			return nil, errors.Join(ErrFailedToReadSource, err)
		}
		if result[locale] == nil {
			result[locale] = make(map[string]any)
		}
		result[locale][key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrFailedToReadSource, err)
	}

	return result, nil
}

// Close releases the underlying pool. Only call this when the adapter was
// created with NewPostgresAdapter.
func (a *PostgresAdapter) Close() {
	a.pool.Close()
}
