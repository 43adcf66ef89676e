package usecase

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/robertwachen/fritterfrontend/internal/club"
	Club "github.com/robertwachen/fritterfrontend/internal/club/model"
	clubRepository "github.com/robertwachen/fritterfrontend/internal/club/repository"
	"github.com/robertwachen/fritterfrontend/internal/feed"
	"github.com/robertwachen/fritterfrontend/internal/freet"
	Freet "github.com/robertwachen/fritterfrontend/internal/freet/model"
	"github.com/robertwachen/fritterfrontend/internal/freet/repository"
	appErrors "github.com/robertwachen/fritterfrontend/pkg/errors"
	"github.com/robertwachen/fritterfrontend/pkg/logger"
)

type FreetUsecase struct {
	repo     freet.FreetRepository
	clubs    club.ClubRepository
	logger   logger.Logger
	validate *validator.Validate
}

func NewFreetUsecase(repo freet.FreetRepository, clubs club.ClubRepository, logger logger.Logger) *FreetUsecase {
	return &FreetUsecase{
		repo:     repo,
		clubs:    clubs,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// checkContent rejects blank content and content over 140 characters.
func (uc *FreetUsecase) checkContent(cmd any) error {
	err := uc.validate.Struct(cmd)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].Tag() == "max" {
		return appErrors.ErrFreetTooLong
	}
	return appErrors.ErrEmptyFreet
}

func (uc *FreetUsecase) CreateFreet(ctx context.Context, authorID uuid.UUID, cmd freet.CreateFreetCommand) (*freet.FreetDTO, error) {
	cmd.Content = strings.TrimSpace(cmd.Content)
	if err := uc.checkContent(cmd); err != nil {
		return nil, err
	}

	f := &Freet.Freet{AuthorID: authorID, Content: cmd.Content}

	if name := strings.TrimSpace(cmd.ClubName); name != "" && !feed.IsHomeClub(name) {
		c, err := uc.memberClub(ctx, authorID, name)
		if err != nil {
			return nil, err
		}
		f.ClubID = &c.ID
	}

	if err := uc.repo.CreateFreet(ctx, f); err != nil {
		return nil, uc.internal("failed to create freet", err)
	}
	return freet.ToDTO(f), nil
}

// memberClub loads the club named name if authorID may post in it.
func (uc *FreetUsecase) memberClub(ctx context.Context, authorID uuid.UUID, name string) (*Club.Club, error) {
	c, err := uc.clubs.GetClubByName(ctx, name)
	if err != nil {
		if errors.Is(err, clubRepository.ErrClubNotFound) {
			return nil, appErrors.ErrUnknownClub
		}
		return nil, uc.internal("failed to load club", err)
	}

	m, err := uc.clubs.GetMember(ctx, c.ID, authorID)
	if err != nil {
		if errors.Is(err, clubRepository.ErrMemberNotFound) {
			return nil, appErrors.ErrForbidden
		}
		return nil, uc.internal("failed to read membership", err)
	}
	if m.Status != Club.StatusMember {
		return nil, appErrors.ErrForbidden
	}
	return c, nil
}

func (uc *FreetUsecase) EditFreet(ctx context.Context, userID uuid.UUID, id uuid.UUID, cmd freet.EditFreetCommand) (*freet.FreetDTO, error) {
	cmd.Content = strings.TrimSpace(cmd.Content)
	if err := uc.checkContent(cmd); err != nil {
		return nil, err
	}
	if _, err := uc.authoredFreet(ctx, userID, id); err != nil {
		return nil, err
	}

	f, err := uc.repo.UpdateFreetContent(ctx, id, cmd.Content)
	if err != nil {
		if errors.Is(err, repository.ErrFreetNotFound) {
			return nil, appErrors.ErrFreetNotFound
		}
		return nil, uc.internal("failed to update freet", err)
	}
	return freet.ToDTO(f), nil
}

func (uc *FreetUsecase) DeleteFreet(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	if _, err := uc.authoredFreet(ctx, userID, id); err != nil {
		return err
	}

	if err := uc.repo.DeleteFreet(ctx, id); err != nil {
		if errors.Is(err, repository.ErrFreetNotFound) {
			return appErrors.ErrFreetNotFound
		}
		return uc.internal("failed to delete freet", err)
	}
	return nil
}

func (uc *FreetUsecase) authoredFreet(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*Freet.Freet, error) {
	f, err := uc.repo.GetFreetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFreetNotFound) {
			return nil, appErrors.ErrFreetNotFound
		}
		return nil, uc.internal("failed to load freet", err)
	}
	if f.AuthorID != userID {
		return nil, appErrors.ErrNotFreetAuthor
	}
	return f, nil
}

func (uc *FreetUsecase) internal(msg string, err error) error {
	uc.logger.Error(msg, "err", err)
	return appErrors.Wrap(appErrors.CodeInternal, msg, err)
}
