package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	Club "github.com/robertwachen/fritterfrontend/internal/club/model"
	Freet "github.com/robertwachen/fritterfrontend/internal/freet/model"
	User "github.com/robertwachen/fritterfrontend/internal/user/model"
	"github.com/robertwachen/fritterfrontend/pkg/logger"
)

var (
	ErrUnknownAuthor = errors.New("author not found")
	ErrUnknownClub   = errors.New("club not found")
)

// FeedRepository reads freets, clubs and memberships from postgres.
type FeedRepository struct {
	db     bun.IDB
	logger *logger.Logger
}

func NewFeedRepository(db bun.IDB, logger logger.Logger) *FeedRepository {
	return &FeedRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *FeedRepository) selectFreets(posts *[]*Freet.Freet) *bun.SelectQuery {
	return r.db.NewSelect().
		Model(posts).
		Relation("Author").
		Order("freet.updated_at DESC", "freet.seq ASC")
}

func (r *FeedRepository) FindAllPosts(ctx context.Context) ([]*Freet.Freet, error) {
	var posts []*Freet.Freet
	if err := r.selectFreets(&posts).Scan(ctx); err != nil {
		return nil, errors.Wrap(err, "feedRepo.FindAllPosts.Scan")
	}
	return posts, nil
}

func (r *FeedRepository) FindPostsByAuthor(ctx context.Context, username string) ([]*Freet.Freet, error) {
	author, err := r.GetAuthor(ctx, username)
	if err != nil {
		return nil, err
	}

	var posts []*Freet.Freet
	err = r.selectFreets(&posts).
		Where("freet.author_id = ?", author.ID).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "feedRepo.FindPostsByAuthor.Scan")
	}
	return posts, nil
}

func (r *FeedRepository) FindPostsByClub(ctx context.Context, clubName string) ([]*Freet.Freet, error) {
	club, err := r.GetClub(ctx, clubName)
	if err != nil {
		return nil, err
	}

	var posts []*Freet.Freet
	err = r.selectFreets(&posts).
		Where("freet.club_id = ?", club.ID).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "feedRepo.FindPostsByClub.Scan")
	}
	return posts, nil
}

// FindPostsByAuthorInClub hits the (author_id, club_id) index directly.
func (r *FeedRepository) FindPostsByAuthorInClub(ctx context.Context, username string, clubName string) ([]*Freet.Freet, error) {
	author, err := r.GetAuthor(ctx, username)
	if err != nil {
		return nil, err
	}
	club, err := r.GetClub(ctx, clubName)
	if err != nil {
		return nil, err
	}

	var posts []*Freet.Freet
	err = r.selectFreets(&posts).
		Where("freet.author_id = ?", author.ID).
		Where("freet.club_id = ?", club.ID).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "feedRepo.FindPostsByAuthorInClub.Scan")
	}
	return posts, nil
}

func (r *FeedRepository) GetAuthor(ctx context.Context, username string) (*User.User, error) {
	user := new(User.User)
	err := r.db.NewSelect().Model(user).Where("username = ?", username).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUnknownAuthor
		}
		return nil, errors.Wrap(err, "feedRepo.GetAuthor.Scan")
	}
	return user, nil
}

func (r *FeedRepository) GetClub(ctx context.Context, clubName string) (*Club.Club, error) {
	club := new(Club.Club)
	err := r.db.NewSelect().
		Model(club).
		Where("lower(name) = lower(?)", strings.TrimSpace(clubName)).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUnknownClub
		}
		return nil, errors.Wrap(err, "feedRepo.GetClub.Scan")
	}
	return club, nil
}

func (r *FeedRepository) GetClubByID(ctx context.Context, id uuid.UUID) (*Club.Club, error) {
	club := new(Club.Club)
	err := r.db.NewSelect().Model(club).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUnknownClub
		}
		return nil, errors.Wrap(err, "feedRepo.GetClubByID.Scan")
	}
	return club, nil
}

// IsMember is true only for admitted members, never for pending ones.
func (r *FeedRepository) IsMember(ctx context.Context, clubID uuid.UUID, userID uuid.UUID) (bool, error) {
	if userID == uuid.Nil {
		return false, nil
	}
	ok, err := r.db.NewSelect().
		Model((*Club.ClubMember)(nil)).
		Where("club_id = ? AND user_id = ?", clubID, userID).
		Where("status = ?", Club.StatusMember).
		Exists(ctx)
	if err != nil {
		return false, errors.Wrap(err, "feedRepo.IsMember.Exists")
	}
	return ok, nil
}
