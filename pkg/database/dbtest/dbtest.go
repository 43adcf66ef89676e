// Package dbtest starts a throwaway postgres for repository tests.
package dbtest

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/robertwachen/fritterfrontend/pkg/database"
)

type DB struct {
	*bun.DB
	container *postgres.PostgresContainer
}

func Start(ctx context.Context) (*DB, error) {
	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("freets"),
		postgres.WithUsername("freets"),
		postgres.WithPassword("password"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to start container")
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable", "application_name=test")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, errors.Wrap(err, "failed to get connection string")
	}

	sqlDB := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(connStr)))
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = container.Terminate(ctx)
		return nil, errors.Wrap(err, "failed to ping db")
	}

	db := bun.NewDB(sqlDB, pgdialect.New())
	if err := database.CreateSchema(ctx, db); err != nil {
		db.Close()
		_ = container.Terminate(ctx)
		return nil, err
	}
	return &DB{DB: db, container: container}, nil
}

func (d *DB) Stop(ctx context.Context) error {
	d.DB.Close()
	return d.container.Terminate(ctx)
}
