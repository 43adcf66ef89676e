package repository

import (
	"context"
	"database/sql"

	Discourse "github.com/robertwachen/fritterfrontend/internal/discourse/model"
	"github.com/robertwachen/fritterfrontend/pkg/logger"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type DiscourseRepository struct {
	db     bun.IDB
	logger *logger.Logger
}

var ErrDiscourseNotFound = errors.New("discourse not found")

func NewDiscourseRepository(db bun.IDB, logger logger.Logger) *DiscourseRepository {
	return &DiscourseRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *DiscourseRepository) CreateDiscourse(ctx context.Context, discourse *Discourse.Discourse) error {
	_, err := r.db.NewInsert().Model(discourse).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "discourseRepo.CreateDiscourse.Insert")
	}
	return nil
}

func (r *DiscourseRepository) GetDiscourseByID(ctx context.Context, id uuid.UUID) (*Discourse.Discourse, error) {
	discourse := new(Discourse.Discourse)
	err := r.db.NewSelect().Model(discourse).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDiscourseNotFound
		}
		return nil, errors.Wrap(err, "discourseRepo.GetDiscourseByID.Scan")
	}
	return discourse, nil
}

func (r *DiscourseRepository) UpdateDiscourse(ctx context.Context, discourse *Discourse.Discourse) error {
	res, err := r.db.NewUpdate().
		Model(discourse).
		Column("end_date", "clubs").
		WherePK().
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "discourseRepo.UpdateDiscourse.Update")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrDiscourseNotFound
	}
	return nil
}

func (r *DiscourseRepository) DeleteDiscourse(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.NewDelete().
		Model((*Discourse.Discourse)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "discourseRepo.DeleteDiscourse.Delete")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrDiscourseNotFound
	}
	return nil
}
