package database

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	club "github.com/robertwachen/fritterfrontend/internal/club/model"
	discourse "github.com/robertwachen/fritterfrontend/internal/discourse/model"
	freet "github.com/robertwachen/fritterfrontend/internal/freet/model"
	user "github.com/robertwachen/fritterfrontend/internal/user/model"
)

func Open(ctx context.Context, dsn string) (*bun.DB, error) {
	connector := pgdriver.NewConnector(pgdriver.WithDSN(dsn))
	sqlDB := sql.OpenDB(connector)

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, errors.Wrap(err, "database.Open.Ping")
	}
	return bun.NewDB(sqlDB, pgdialect.New()), nil
}

// Tables in creation order.
func Tables() []any {
	return []any{
		(*user.User)(nil),
		(*club.Club)(nil),
		(*club.ClubMember)(nil),
		(*freet.Freet)(nil),
		(*discourse.Discourse)(nil),
	}
}

func CreateSchema(ctx context.Context, db *bun.DB) error {
	if _, err := db.ExecContext(ctx, `CREATE EXTENSION IF NOT EXISTS "pgcrypto";`); err != nil {
		return errors.Wrap(err, "database.CreateSchema.Extension")
	}

	for _, t := range Tables() {
		if _, err := db.NewCreateTable().Model(t).IfNotExists().Exec(ctx); err != nil {
			return errors.Wrapf(err, "database.CreateSchema.CreateTable %T", t)
		}
	}

	_, err := db.NewCreateIndex().
		Model((*club.Club)(nil)).
		Index("clubs_lower_name_idx").
		Unique().
		ColumnExpr("lower(name)").
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "database.CreateSchema.ClubNameIndex")
	}

	// author+club lookups back the intersection query
	_, err = db.NewCreateIndex().
		Model((*freet.Freet)(nil)).
		Index("freets_author_club_idx").
		Column("author_id", "club_id").
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "database.CreateSchema.FreetIndex")
	}
	return nil
}

// Truncate empties every table, for tests.
func Truncate(ctx context.Context, db bun.IDB) error {
	_, err := db.ExecContext(ctx, `TRUNCATE TABLE discourses, freets, club_members, clubs, users RESTART IDENTITY CASCADE`)
	return errors.Wrap(err, "database.Truncate")
}
