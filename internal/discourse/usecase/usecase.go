package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/robertwachen/fritterfrontend/internal/club"
	Club "github.com/robertwachen/fritterfrontend/internal/club/model"
	clubRepository "github.com/robertwachen/fritterfrontend/internal/club/repository"
	"github.com/robertwachen/fritterfrontend/internal/discourse"
	Discourse "github.com/robertwachen/fritterfrontend/internal/discourse/model"
	"github.com/robertwachen/fritterfrontend/internal/discourse/repository"
	appErrors "github.com/robertwachen/fritterfrontend/pkg/errors"
	"github.com/robertwachen/fritterfrontend/pkg/logger"
)

// DefaultDuration is how long a discourse runs when no end date is given.
const DefaultDuration = 7 * 24 * time.Hour

type DiscourseUsecase struct {
	repo   discourse.DiscourseRepository
	clubs  club.ClubRepository
	logger logger.Logger
	now    func() time.Time
}

func NewDiscourseUsecase(repo discourse.DiscourseRepository, clubs club.ClubRepository, logger logger.Logger) *DiscourseUsecase {
	return &DiscourseUsecase{
		repo:   repo,
		clubs:  clubs,
		logger: logger,
		now:    time.Now,
	}
}

func (uc *DiscourseUsecase) CreateDiscourse(ctx context.Context, cmd discourse.CreateDiscourseCommand) (*discourse.DiscourseDTO, error) {
	clubs, err := uc.resolveClubs(ctx, cmd.Clubs)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	end := now.Add(DefaultDuration)
	if cmd.EndDate != nil {
		if cmd.EndDate.Before(now) {
			return nil, appErrors.ErrEndDateInPast
		}
		end = *cmd.EndDate
	}

	d := &Discourse.Discourse{StartDate: now, EndDate: end, Clubs: clubs}
	if err := uc.repo.CreateDiscourse(ctx, d); err != nil {
		return nil, uc.internal("failed to create discourse", err)
	}
	uc.logger.Info("discourse created", "id", d.ID, "clubs", strings.Join(clubs, ","))
	return discourse.ToDTO(d), nil
}

func (uc *DiscourseUsecase) GetDiscourse(ctx context.Context, id uuid.UUID) (*discourse.DiscourseDTO, error) {
	d, err := uc.findDiscourse(ctx, id)
	if err != nil {
		return nil, err
	}
	return discourse.ToDTO(d), nil
}

func (uc *DiscourseUsecase) UpdateDiscourse(ctx context.Context, userID uuid.UUID, id uuid.UUID, cmd discourse.UpdateDiscourseCommand) (*discourse.DiscourseDTO, error) {
	d, err := uc.editableDiscourse(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cmd.Clubs) != "" {
		clubs, err := uc.resolveClubs(ctx, cmd.Clubs)
		if err != nil {
			return nil, err
		}
		d.Clubs = clubs
	}
	if cmd.EndDate != nil {
		if cmd.EndDate.Before(uc.now()) {
			return nil, appErrors.ErrEndDateInPast
		}
		d.EndDate = *cmd.EndDate
	}

	if err := uc.repo.UpdateDiscourse(ctx, d); err != nil {
		if errors.Is(err, repository.ErrDiscourseNotFound) {
			return nil, appErrors.ErrDiscourseNotFound
		}
		return nil, uc.internal("failed to update discourse", err)
	}
	return discourse.ToDTO(d), nil
}

func (uc *DiscourseUsecase) DeleteDiscourse(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	if _, err := uc.editableDiscourse(ctx, userID, id); err != nil {
		return err
	}

	if err := uc.repo.DeleteDiscourse(ctx, id); err != nil {
		if errors.Is(err, repository.ErrDiscourseNotFound) {
			return appErrors.ErrDiscourseNotFound
		}
		return uc.internal("failed to delete discourse", err)
	}
	return nil
}

func (uc *DiscourseUsecase) HasEditingPermissions(ctx context.Context, userID uuid.UUID, id uuid.UUID) (bool, error) {
	d, err := uc.findDiscourse(ctx, id)
	if err != nil {
		return false, err
	}
	return uc.ownsParticipant(ctx, userID, d)
}

func (uc *DiscourseUsecase) editableDiscourse(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*Discourse.Discourse, error) {
	d, err := uc.findDiscourse(ctx, id)
	if err != nil {
		return nil, err
	}
	ok, err := uc.ownsParticipant(ctx, userID, d)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, appErrors.ErrNoEditPermission
	}
	return d, nil
}

// ownsParticipant checks the clubs in order and stops at the first one
// owned by userID. Clubs deleted since the discourse was created are
// skipped.
func (uc *DiscourseUsecase) ownsParticipant(ctx context.Context, userID uuid.UUID, d *Discourse.Discourse) (bool, error) {
	if userID == uuid.Nil {
		return false, nil
	}
	for _, name := range d.Clubs {
		c, err := uc.clubs.GetClubByName(ctx, name)
		if err != nil {
			if errors.Is(err, clubRepository.ErrClubNotFound) {
				continue
			}
			return false, uc.internal("failed to load club", err)
		}
		if c.OwnerID == userID {
			return true, nil
		}
	}
	return false, nil
}

// resolveClubs splits a comma separated list and maps each entry to an
// existing club's name. Repeated clubs count once.
func (uc *DiscourseUsecase) resolveClubs(ctx context.Context, raw string) ([]string, error) {
	var requested []string
	for _, name := range strings.Split(raw, ",") {
		if name = strings.TrimSpace(name); name != "" {
			requested = append(requested, name)
		}
	}
	if len(requested) < 2 {
		return nil, appErrors.ErrTooFewClubs
	}

	existing, err := uc.clubs.ListClubNames(ctx)
	if err != nil {
		return nil, uc.internal("failed to list clubs", err)
	}

	clubs := make([]string, 0, len(requested))
	for _, name := range requested {
		canonical := ""
		for _, e := range existing {
			if Club.SameName(e, name) {
				canonical = e
				break
			}
		}
		if canonical == "" {
			return nil, appErrors.ErrUnknownClubs
		}
		if !containsClub(clubs, canonical) {
			clubs = append(clubs, canonical)
		}
	}

	if len(clubs) < 2 {
		return nil, appErrors.ErrTooFewClubs
	}
	return clubs, nil
}

func containsClub(names []string, name string) bool {
	for _, n := range names {
		if Club.SameName(n, name) {
			return true
		}
	}
	return false
}

func (uc *DiscourseUsecase) findDiscourse(ctx context.Context, id uuid.UUID) (*Discourse.Discourse, error) {
	d, err := uc.repo.GetDiscourseByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDiscourseNotFound) {
			return nil, appErrors.ErrDiscourseNotFound
		}
		return nil, uc.internal("failed to load discourse", err)
	}
	return d, nil
}

func (uc *DiscourseUsecase) internal(msg string, err error) error {
	uc.logger.Error(msg, "err", err)
	return appErrors.Wrap(appErrors.CodeInternal, msg, err)
}
