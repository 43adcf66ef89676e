package repository

import (
	"context"
	"database/sql"
	"strings"

	Club "github.com/robertwachen/fritterfrontend/internal/club/model"
	freet "github.com/robertwachen/fritterfrontend/internal/freet/model"
	"github.com/robertwachen/fritterfrontend/pkg/logger"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"
)

type ClubRepository struct {
	db     bun.IDB
	logger *logger.Logger
}

var (
	ErrClubNotFound   = errors.New("club not found")
	ErrMemberNotFound = errors.New("club member not found")
	ErrClubNameTaken  = errors.New("club name already in use")
)

func NewClubRepository(db bun.IDB, logger logger.Logger) *ClubRepository {
	return &ClubRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *ClubRepository) CreateClub(ctx context.Context, club *Club.Club) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		taken, err := tx.NewSelect().
			Model((*Club.Club)(nil)).
			Where("lower(name) = lower(?)", strings.TrimSpace(club.Name)).
			Exists(ctx)
		if err != nil {
			return errors.Wrap(err, "clubRepo.CreateClub.Exists")
		}
		if taken {
			return ErrClubNameTaken
		}

		if _, err := tx.NewInsert().Model(club).Returning("*").Exec(ctx); err != nil {
			// a concurrent create won the lower(name) index
			if isUniqueViolation(err) {
				return ErrClubNameTaken
			}
			return errors.Wrap(err, "clubRepo.CreateClub.InsertClub")
		}

		owner := &Club.ClubMember{
			ClubID: club.ID,
			UserID: club.OwnerID,
			Status: Club.StatusMember,
		}
		if _, err := tx.NewInsert().Model(owner).Exec(ctx); err != nil {
			return errors.Wrap(err, "clubRepo.CreateClub.InsertOwner")
		}
		return nil
	})
}

func (r *ClubRepository) GetClubByID(ctx context.Context, id uuid.UUID) (*Club.Club, error) {
	club := new(Club.Club)
	err := r.db.NewSelect().Model(club).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClubNotFound
		}
		return nil, errors.Wrap(err, "clubRepo.GetClubByID.Scan")
	}
	return club, nil
}

func (r *ClubRepository) GetClubByName(ctx context.Context, name string) (*Club.Club, error) {
	club := new(Club.Club)
	err := r.db.NewSelect().
		Model(club).
		Where("lower(name) = lower(?)", strings.TrimSpace(name)).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClubNotFound
		}
		return nil, errors.Wrap(err, "clubRepo.GetClubByName.Scan")
	}
	return club, nil
}

// UpdateClub writes privacy and rules. Names never change.
func (r *ClubRepository) UpdateClub(ctx context.Context, club *Club.Club) error {
	res, err := r.db.NewUpdate().
		Model(club).
		Column("privacy", "rules").
		WherePK().
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "clubRepo.UpdateClub.Update")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrClubNotFound
	}
	return nil
}

func (r *ClubRepository) DeleteClub(ctx context.Context, id uuid.UUID) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewDelete().Model((*freet.Freet)(nil)).Where("club_id = ?", id).Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "clubRepo.DeleteClub.DeleteFreets")
		}

		_, err = tx.NewDelete().Model((*Club.ClubMember)(nil)).Where("club_id = ?", id).Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "clubRepo.DeleteClub.DeleteMembers")
		}

		res, err := tx.NewDelete().Model((*Club.Club)(nil)).Where("id = ?", id).Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "clubRepo.DeleteClub.DeleteClub")
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return ErrClubNotFound
		}
		return nil
	})
}

func (r *ClubRepository) ListClubNames(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.NewSelect().
		Model((*Club.Club)(nil)).
		Column("name").
		Order("name ASC").
		Scan(ctx, &names)
	if err != nil {
		return nil, errors.Wrap(err, "clubRepo.ListClubNames.Scan")
	}
	return names, nil
}

func (r *ClubRepository) GetMember(ctx context.Context, clubID, userID uuid.UUID) (*Club.ClubMember, error) {
	member := new(Club.ClubMember)
	err := r.db.NewSelect().
		Model(member).
		Where("club_id = ? AND user_id = ?", clubID, userID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, errors.Wrap(err, "clubRepo.GetMember.Scan")
	}
	return member, nil
}

// UpsertMember inserts the row or moves an existing one to member.Status.
func (r *ClubRepository) UpsertMember(ctx context.Context, member *Club.ClubMember) error {
	_, err := r.db.NewInsert().
		Model(member).
		On("CONFLICT (club_id, user_id) DO UPDATE").
		Set("status = EXCLUDED.status").
		Returning("*").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "clubRepo.UpsertMember.Exec")
	}
	return nil
}

func (r *ClubRepository) RemoveMember(ctx context.Context, clubID, userID uuid.UUID) error {
	res, err := r.db.NewDelete().
		Model((*Club.ClubMember)(nil)).
		Where("club_id = ? AND user_id = ?", clubID, userID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "clubRepo.RemoveMember.Delete")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrMemberNotFound
	}
	return nil
}

func (r *ClubRepository) ListMembers(ctx context.Context, clubID uuid.UUID) ([]Club.ClubMember, error) {
	var members []Club.ClubMember
	err := r.db.NewSelect().
		Model(&members).
		Where("club_id = ?", clubID).
		Order("joined_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "clubRepo.ListMembers.Scan")
	}
	return members, nil
}

func isUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	return errors.As(err, &pgErr) && pgErr.Field('C') == "23505"
}
