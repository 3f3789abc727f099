// Package db opens provider-appropriate database connections and carries
// the per-provider knobs the rest of the tool needs: SQL placeholder format
// and the bind parameter budget for multi-row inserts.
package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// Connection wraps a database handle with its provider name.
type Connection struct {
	DB       *sql.DB
	Provider string
}

// Open connects to the database for the given provider and verifies the
// connection with a ping, so that misconfiguration fails before any write.
func Open(ctx context.Context, provider, url string) (*Connection, error) {
	var driverName string
	switch provider {
	case "postgresql", "postgres":
		driverName = "pgx"
	case "mysql":
		driverName = "mysql"
	case "sqlite", "sqlite3":
		driverName = "sqlite3"
	default:
		return nil, fmt.Errorf("unsupported database provider: %s", provider)
	}

	db, err := sql.Open(driverName, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &Connection{DB: db, Provider: provider}, nil
}

// Close closes the database connection.
func (c *Connection) Close() error {
	return c.DB.Close()
}

// Count returns the number of rows in a table.
func (c *Connection) Count(ctx context.Context, table string) (int, error) {
	var count int
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", table)
	if err := c.DB.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count rows in %s: %w", table, err)
	}
	return count, nil
}

// Placeholder returns the bind placeholder format for a provider.
func Placeholder(provider string) squirrel.PlaceholderFormat {
	switch provider {
	case "postgresql", "postgres":
		return squirrel.Dollar
	default:
		return squirrel.Question
	}
}

// MaxParams returns the number of bind parameters a single statement may
// carry. SQLite's default limit is 999; PostgreSQL caps at 65535 and MySQL
// at a packet size well beyond what seeding batches reach, but both are
// kept at a round number that keeps statements manageable.
func MaxParams(provider string) int {
	switch provider {
	case "sqlite", "sqlite3":
		return 900
	default:
		return 16000
	}
}
