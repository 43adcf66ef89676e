package usecase

import (
	"context"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/robertwachen/fritterfrontend/internal/club"
	models "github.com/robertwachen/fritterfrontend/internal/club/model"
	"github.com/robertwachen/fritterfrontend/internal/club/repository"
	"github.com/robertwachen/fritterfrontend/internal/feed"
	appErrors "github.com/robertwachen/fritterfrontend/pkg/errors"
	"github.com/robertwachen/fritterfrontend/pkg/logger"
)

const defaultRules = "No rules yet"

var clubNameRegex = regexp.MustCompile(`^\w+$`)

type ClubUsecase struct {
	repo     club.ClubRepository
	logger   logger.Logger
	validate *validator.Validate
}

func NewClubUsecase(repo club.ClubRepository, logger logger.Logger) *ClubUsecase {
	return &ClubUsecase{repo: repo, logger: logger, validate: newValidator()}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("clubname", func(fl validator.FieldLevel) bool {
		return clubNameRegex.MatchString(fl.Field().String())
	})
	return v
}

// validationError maps the first failed field to its domain error.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return appErrors.InvalidArg(err.Error())
	}
	switch verrs[0].Field() {
	case "Name":
		return appErrors.ErrInvalidClubName
	case "Privacy":
		return appErrors.ErrInvalidPrivacy
	case "Rules":
		return appErrors.ErrMissingClubRules
	}
	return appErrors.InvalidArg(verrs[0].Error())
}

func (uc *ClubUsecase) CreateClub(ctx context.Context, ownerID uuid.UUID, cmd club.CreateClubCommand) (*club.ClubDTO, error) {
	cmd.Name = strings.TrimSpace(cmd.Name)
	if err := uc.validate.Struct(cmd); err != nil {
		return nil, validationError(err)
	}
	// the home sentinel can never name a real club
	if feed.IsHomeClub(cmd.Name) {
		return nil, appErrors.ErrReservedClubName
	}

	rules := defaultRules
	if cmd.Rules != nil {
		if strings.TrimSpace(*cmd.Rules) == "" {
			return nil, appErrors.ErrMissingClubRules
		}
		rules = *cmd.Rules
	}

	c := &models.Club{
		Name:    cmd.Name,
		Privacy: cmd.Privacy,
		Rules:   rules,
		OwnerID: ownerID,
	}
	if err := uc.repo.CreateClub(ctx, c); err != nil {
		if errors.Is(err, repository.ErrClubNameTaken) {
			return nil, appErrors.ErrClubNameTaken
		}
		uc.logger.Error("failed to create club", "name", cmd.Name, "err", err)
		return nil, appErrors.Wrap(appErrors.CodeInternal, "failed to create club", err)
	}

	uc.logger.Info("club created", "club", c.Name, "owner", ownerID)
	return &club.ClubDTO{
		ID:        c.ID,
		Name:      c.Name,
		Privacy:   c.Privacy,
		Rules:     c.Rules,
		OwnerID:   c.OwnerID,
		Members:   []uuid.UUID{ownerID},
		CreatedAt: c.CreatedAt,
	}, nil
}

func (uc *ClubUsecase) GetClub(ctx context.Context, name string) (*club.ClubDTO, error) {
	c, err := uc.findClub(ctx, name)
	if err != nil {
		return nil, err
	}
	return uc.toDTO(ctx, c)
}

func (uc *ClubUsecase) UpdateClub(ctx context.Context, userID uuid.UUID, name string, cmd club.UpdateClubCommand) (*club.ClubDTO, error) {
	if err := uc.validate.Struct(cmd); err != nil {
		return nil, validationError(err)
	}

	c, err := uc.ownedClub(ctx, userID, name)
	if err != nil {
		return nil, err
	}

	if cmd.Privacy != "" {
		c.Privacy = cmd.Privacy
	}
	if cmd.Rules != nil {
		c.Rules = *cmd.Rules
	}

	if err := uc.repo.UpdateClub(ctx, c); err != nil {
		if errors.Is(err, repository.ErrClubNotFound) {
			return nil, appErrors.ErrUnknownClub
		}
		uc.logger.Error("failed to update club", "club", c.Name, "err", err)
		return nil, appErrors.Wrap(appErrors.CodeInternal, "failed to update club", err)
	}
	return uc.toDTO(ctx, c)
}

func (uc *ClubUsecase) DeleteClub(ctx context.Context, userID uuid.UUID, name string) error {
	c, err := uc.ownedClub(ctx, userID, name)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteClub(ctx, c.ID); err != nil {
		if errors.Is(err, repository.ErrClubNotFound) {
			return appErrors.ErrUnknownClub
		}
		uc.logger.Error("failed to delete club", "club", c.Name, "err", err)
		return appErrors.Wrap(appErrors.CodeInternal, "failed to delete club", err)
	}
	uc.logger.Info("club deleted", "club", c.Name)
	return nil
}

func (uc *ClubUsecase) RequestToJoin(ctx context.Context, userID uuid.UUID, name string) error {
	c, err := uc.findClub(ctx, name)
	if err != nil {
		return err
	}

	existing, err := uc.repo.GetMember(ctx, c.ID, userID)
	switch {
	case err == nil && existing.Status == models.StatusMember:
		return appErrors.ErrAlreadyMember
	case err == nil:
		// already pending
		return nil
	case !errors.Is(err, repository.ErrMemberNotFound):
		return uc.internal("failed to read membership", err)
	}

	// anyone may walk into a public club
	status := models.StatusPending
	if c.IsPublic() {
		status = models.StatusMember
	}

	err = uc.repo.UpsertMember(ctx, &models.ClubMember{ClubID: c.ID, UserID: userID, Status: status})
	if err != nil {
		return uc.internal("failed to request membership", err)
	}
	return nil
}

func (uc *ClubUsecase) AdmitMember(ctx context.Context, ownerID uuid.UUID, name string, userID uuid.UUID) error {
	c, err := uc.ownedClub(ctx, ownerID, name)
	if err != nil {
		return err
	}

	member, err := uc.repo.GetMember(ctx, c.ID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return appErrors.ErrNoPendingRequest
		}
		return uc.internal("failed to read membership", err)
	}
	if member.Status == models.StatusMember {
		return appErrors.ErrAlreadyMember
	}

	member.Status = models.StatusMember
	if err := uc.repo.UpsertMember(ctx, member); err != nil {
		return uc.internal("failed to admit member", err)
	}
	return nil
}

func (uc *ClubUsecase) Leave(ctx context.Context, userID uuid.UUID, name string) error {
	c, err := uc.findClub(ctx, name)
	if err != nil {
		return err
	}
	if c.OwnerID == userID {
		return appErrors.ErrOwnerCannotLeave
	}

	if err := uc.repo.RemoveMember(ctx, c.ID, userID); err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return nil
		}
		return uc.internal("failed to leave club", err)
	}
	return nil
}

func (uc *ClubUsecase) findClub(ctx context.Context, name string) (*models.Club, error) {
	c, err := uc.repo.GetClubByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrClubNotFound) {
			return nil, appErrors.ErrUnknownClub
		}
		return nil, uc.internal("failed to load club", err)
	}
	return c, nil
}

func (uc *ClubUsecase) ownedClub(ctx context.Context, userID uuid.UUID, name string) (*models.Club, error) {
	c, err := uc.findClub(ctx, name)
	if err != nil {
		return nil, err
	}
	if c.OwnerID != userID {
		return nil, appErrors.ErrNotClubOwner
	}
	return c, nil
}

func (uc *ClubUsecase) toDTO(ctx context.Context, c *models.Club) (*club.ClubDTO, error) {
	members, err := uc.repo.ListMembers(ctx, c.ID)
	if err != nil {
		return nil, uc.internal("failed to list members", err)
	}

	dto := &club.ClubDTO{
		ID:        c.ID,
		Name:      c.Name,
		Privacy:   c.Privacy,
		Rules:     c.Rules,
		OwnerID:   c.OwnerID,
		CreatedAt: c.CreatedAt,
	}
	for _, m := range members {
		if m.Status == models.StatusMember {
			dto.Members = append(dto.Members, m.UserID)
		} else {
			dto.PendingMembers = append(dto.PendingMembers, m.UserID)
		}
	}
	return dto, nil
}

func (uc *ClubUsecase) internal(msg string, err error) error {
	uc.logger.Error(msg, "err", err)
	return appErrors.Wrap(appErrors.CodeInternal, msg, err)
}
