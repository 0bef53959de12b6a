package database

import (
	"context"
	"database/sql"
	"fmt"
	"storebill_server/structs"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// DB wraps the bun database handle. It is constructed once in main and
// passed by reference to every consumer; there is no package-level
// instance.
type DB struct {
	*bun.DB
}

// Connect establishes a connection pool against Postgres.
func Connect(cfg *structs.DatabaseConfig, logger *gecho.Logger) (*DB, error) {
	connector := pgdriver.NewConnector(
		pgdriver.WithAddr(fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
		pgdriver.WithUser(cfg.User),
		pgdriver.WithPassword(cfg.Password),
		pgdriver.WithDatabase(cfg.Name),
		pgdriver.WithInsecure(true),
		pgdriver.WithReadTimeout(cfg.ReadTimeout),
		pgdriver.WithWriteTimeout(cfg.WriteTimeout),
	)

	sqldb := sql.OpenDB(connector)
	sqldb.SetMaxOpenConns(cfg.MaxConns)
	sqldb.SetMaxIdleConns(cfg.MinConns)
	sqldb.SetConnMaxLifetime(cfg.MaxLifetime)
	sqldb.SetConnMaxIdleTime(cfg.MaxIdleTime)

	db := bun.NewDB(sqldb, pgdialect.New())
	db.AddQueryHook(&slowQueryHook{logger: logger})

	// Test the connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Connected to database successfully")

	return &DB{db}, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}

// Health checks the database connection health
func (db *DB) Health() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return db.PingContext(ctx)
}

// slowQueryHook logs queries that take over a second.
type slowQueryHook struct {
	logger *gecho.Logger
}

func (h *slowQueryHook) BeforeQuery(ctx context.Context, event *bun.QueryEvent) context.Context {
	return ctx
}

func (h *slowQueryHook) AfterQuery(ctx context.Context, event *bun.QueryEvent) {
	duration := time.Since(event.StartTime)
	if duration > 1*time.Second {
		h.logger.Warn("Slow database query detected",
			gecho.Field("query", event.Query),
			gecho.Field("duration", duration),
		)
	}

	if event.Err != nil && (event.Err.Error() == "EOF" || event.Err.Error() == "unexpected EOF") {
		h.logger.Error("Database connection EOF error - connection may have been closed by server",
			gecho.Field("error", event.Err),
			gecho.Field("query", event.Query),
		)
	}
}
