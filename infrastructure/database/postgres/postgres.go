package postgres

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"

	"github.com/aideveloperindia/KDSMS-sub000/internal/config"
)

// Connection wraps the shared *sql.DB handle. It is the only mutable
// resource shared across requests; correctness under concurrent writes comes
// from the unique constraints in the schema, never from locking here.
type Connection struct {
	*sql.DB
}

func NewConnection(ctx context.Context, cfg config.Database) (*Connection, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	return &Connection{DB: db}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}
