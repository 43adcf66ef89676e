package usecase

import (
	"context"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/robertwachen/fritterfrontend/internal/user"
	User "github.com/robertwachen/fritterfrontend/internal/user/model"
	"github.com/robertwachen/fritterfrontend/internal/user/repository"
	appErrors "github.com/robertwachen/fritterfrontend/pkg/errors"
	"github.com/robertwachen/fritterfrontend/pkg/logger"
)

type UserUsecase struct {
	repo   user.UserRepository
	logger logger.Logger
}

func NewUserUsecase(repo user.UserRepository, logger logger.Logger) *UserUsecase {
	return &UserUsecase{repo: repo, logger: logger}
}

func (uc *UserUsecase) Register(ctx context.Context, cmd user.RegisterCommand) (*user.UserDTO, error) {
	if err := validateUsername(cmd.Username); err != nil {
		return nil, err
	}
	displayName := strings.TrimSpace(cmd.DisplayName)
	if displayName == "" {
		return nil, appErrors.ErrMissingDisplayName
	}

	if exists, err := uc.repo.UsernameExists(ctx, cmd.Username); err != nil {
		uc.logger.Error("database error checking username", "err", err)
		return nil, appErrors.Internal("internal server error")
	} else if exists {
		return nil, appErrors.ErrUsernameTaken
	}

	u := &User.User{
		Username: cmd.Username,
		Name:     displayName,
	}
	if err := uc.repo.CreateUser(ctx, u); err != nil {
		uc.logger.Errorf("error while saving user in db: %v", err)
		return nil, appErrors.Wrap(appErrors.CodeInternal, "failed to register user", err)
	}

	return user.ToDTO(u), nil
}

var usernameRegex = regexp.MustCompile(`^[a-z0-9_]{3,32}$`)

func validateUsername(username string) error {
	if !usernameRegex.MatchString(username) {
		return appErrors.ErrInvalidUsername
	}
	return nil
}

func (uc *UserUsecase) UpdateDisplayName(ctx context.Context, userID uuid.UUID, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return appErrors.ErrMissingDisplayName
	}

	err := uc.repo.UpdateUserDisplayName(ctx, userID, newName)
	if errors.Is(err, repository.ErrUserNotFound) {
		return appErrors.ErrUserNotFound
	}
	if err != nil {
		uc.logger.Errorf("error while updating display name in db: %v", err)
		return appErrors.Internal("error while updating display name in db")
	}
	return nil
}

func (uc *UserUsecase) GetUserByID(ctx context.Context, id uuid.UUID) (*user.UserDTO, error) {
	u, err := uc.repo.GetUserByID(ctx, id)
	return uc.profile(u, err)
}

func (uc *UserUsecase) GetUserByUsername(ctx context.Context, username string) (*user.UserDTO, error) {
	u, err := uc.repo.GetUserByUsername(ctx, username)
	return uc.profile(u, err)
}

func (uc *UserUsecase) profile(u *User.User, err error) (*user.UserDTO, error) {
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, appErrors.ErrUserNotFound
	}
	if err != nil {
		uc.logger.Error("failed to load user", "err", err)
		return nil, appErrors.Wrap(appErrors.CodeInternal, "failed to load user", err)
	}
	return user.ToDTO(u), nil
}
