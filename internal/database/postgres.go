package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
	SSLMode  string
}

type DB struct {
	Pool *pgxpool.Pool
}

func New(ctx context.Context, config Config) (*DB, error) {
	connString := config.ConnectionString()
	pgPool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &DB{
		Pool: pgPool,
	}, nil
}

// NewWithBackoff retries the initial connection, doubling the wait between
// attempts. The vector store may still be starting when the service boots.
func NewWithBackoff(ctx context.Context, config Config, maxRetries int) (*DB, error) {
	wait := time.Second

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		db, err := New(ctx, config)
		if err == nil {
			if err := db.Ping(ctx); err == nil {
				return db, nil
			} else {
				db.Close()
				lastErr = err
			}
		} else {
			lastErr = err
		}

		log.Warn().
			Int("attempt", attempt).
			Dur("wait", wait).
			Err(lastErr).
			Msg("Database not ready, retrying")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
		wait *= 2
	}

	return nil, fmt.Errorf("database unreachable after %d attempts: %w", maxRetries, lastErr)
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s", c.User, c.Password, c.Host, c.Port, c.Database, c.SSLMode)
}

func (db *DB) Ping(ctx context.Context) error {
	if err := db.Pool.Ping(ctx); err != nil {
		return err
	}

	return nil
}

func (db *DB) Close() {
	db.Pool.Close()
}
