package repository

import (
	"context"
	"database/sql"

	Freet "github.com/robertwachen/fritterfrontend/internal/freet/model"
	"github.com/robertwachen/fritterfrontend/pkg/logger"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type FreetRepository struct {
	db     bun.IDB
	logger *logger.Logger
}

var ErrFreetNotFound = errors.New("freet not found")

func NewFreetRepository(db bun.IDB, logger logger.Logger) *FreetRepository {
	return &FreetRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *FreetRepository) CreateFreet(ctx context.Context, freet *Freet.Freet) error {
	_, err := r.db.NewInsert().Model(freet).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "freetRepo.CreateFreet.Insert")
	}
	return nil
}

func (r *FreetRepository) GetFreetByID(ctx context.Context, id uuid.UUID) (*Freet.Freet, error) {
	freet := new(Freet.Freet)
	err := r.db.NewSelect().
		Model(freet).
		Relation("Author").
		Where("freet.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFreetNotFound
		}
		return nil, errors.Wrap(err, "freetRepo.GetFreetByID.Scan")
	}
	return freet, nil
}

func (r *FreetRepository) UpdateFreetContent(ctx context.Context, id uuid.UUID, content string) (*Freet.Freet, error) {
	freet := new(Freet.Freet)
	res, err := r.db.NewUpdate().
		Model(freet).
		Set("content = ?", content).
		Set("updated_at = current_timestamp").
		Where("id = ?", id).
		Returning("*").
		Exec(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFreetNotFound
		}
		return nil, errors.Wrap(err, "freetRepo.UpdateFreetContent.Update")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrFreetNotFound
	}
	return freet, nil
}

func (r *FreetRepository) DeleteFreet(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.NewDelete().
		Model((*Freet.Freet)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "freetRepo.DeleteFreet.Delete")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrFreetNotFound
	}
	return nil
}
