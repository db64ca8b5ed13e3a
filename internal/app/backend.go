package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/tourcrew-backend/internal/adapter/postgres"
	pgdocument "github.com/heartmarshall/tourcrew-backend/internal/adapter/postgres/document"
	"github.com/heartmarshall/tourcrew-backend/internal/adapter/sqlite"
	sqlitedocument "github.com/heartmarshall/tourcrew-backend/internal/adapter/sqlite/document"
	"github.com/heartmarshall/tourcrew-backend/internal/config"
	"github.com/heartmarshall/tourcrew-backend/internal/docstore"
)

// Backend is the document store selected by configuration.
type Backend struct {
	Driver string
	Store  docstore.Store
	Tx     docstore.TxManager

	ping     func(ctx context.Context) error
	migrator func() (*goose.Provider, error)
	close    func()
}

// Ping checks that the store is reachable.
func (b *Backend) Ping(ctx context.Context) error { return b.ping(ctx) }

// Migrator returns a goose provider for the backend's schema.
func (b *Backend) Migrator() (*goose.Provider, error) { return b.migrator() }

// Close releases the underlying connections.
func (b *Backend) Close() { b.close() }

// OpenBackend connects to the configured store. The SQLite file is migrated
// on open; PostgreSQL migrations are applied with `tourcrew migrate up`.
func OpenBackend(ctx context.Context, cfg config.StoreConfig, logger *slog.Logger) (*Backend, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		sqlDB := postgres.OpenSQL(pool)
		logger.Info("store connected", slog.String("driver", cfg.Driver))
		return &Backend{
			Driver:   cfg.Driver,
			Store:    pgdocument.New(pool),
			Tx:       postgres.NewTxManager(pool),
			ping:     pool.Ping,
			migrator: func() (*goose.Provider, error) { return postgres.NewMigrator(sqlDB) },
			close: func() {
				_ = sqlDB.Close()
				pool.Close()
			},
		}, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLite)
		if err != nil {
			return nil, err
		}
		if err := sqlite.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		logger.Info("store connected",
			slog.String("driver", cfg.Driver),
			slog.String("path", cfg.SQLite.Path))
		return &Backend{
			Driver:   cfg.Driver,
			Store:    sqlitedocument.New(db),
			Tx:       sqlite.NewTxManager(db),
			ping:     db.PingContext,
			migrator: func() (*goose.Provider, error) { return sqlite.NewMigrator(db) },
			close:    func() { _ = db.Close() },
		}, nil

	default:
		return nil, fmt.Errorf("app: unknown store driver %q", cfg.Driver)
	}
}
