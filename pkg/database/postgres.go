package database

import (
	"context"
	"fmt"
	"time"

	"arte-booking/pkg/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxIface is the slice of pgxpool the repositories need. *pgxpool.Pool
// satisfies it directly and pgxmock satisfies it in tests.
type PgxIface interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var _ PgxIface = (*pgxpool.Pool)(nil)

const (
	connectTimeout = 5 * time.Second
	pingTimeout    = 3 * time.Second
)

// InitDB opens the pool and pings it once.
func InitDB(config utils.DatabaseConfig) (PgxIface, error) {
	poolConfig, err := newPoolConfig(config)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database %s@%s:%s: %w", config.Name, config.Host, config.Port, err)
	}

	return pool, nil
}

// newPoolConfig builds the pool settings. Bookings come in bursts when a
// window opens, so a couple of warm connections are kept.
func newPoolConfig(config utils.DatabaseConfig) (*pgxpool.Config, error) {
	sslMode := config.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	connStr := fmt.Sprintf("user=%s password=%s dbname=%s sslmode=%s host=%s port=%s",
		config.User, config.Password, config.Name, sslMode, config.Host, config.Port)

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}

	if config.MaxConns > 0 {
		poolConfig.MaxConns = config.MaxConns
	}
	poolConfig.MinConns = min(2, poolConfig.MaxConns)
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute
	poolConfig.ConnConfig.ConnectTimeout = connectTimeout

	if config.AppName != "" {
		poolConfig.ConnConfig.RuntimeParams["application_name"] = config.AppName
	}

	return poolConfig, nil
}
