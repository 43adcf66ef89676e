package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robertwachen/fritterfrontend/internal/user"
	"github.com/robertwachen/fritterfrontend/internal/user/mocks"
	models "github.com/robertwachen/fritterfrontend/internal/user/model"
	"github.com/robertwachen/fritterfrontend/internal/user/repository"
	appErrors "github.com/robertwachen/fritterfrontend/pkg/errors"
	"github.com/robertwachen/fritterfrontend/pkg/logger"
)

func Test_Register(t *testing.T) {
	cmd := user.RegisterCommand{
		Username:    "testuser",
		DisplayName: " Test User ",
	}

	t.Run("happy path- valid user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockUserRepository(ctrl)
		uc := NewUserUsecase(mockRepo, logger.Logger{})

		userID := uuid.New()
		g := mockRepo.EXPECT()
		g.UsernameExists(gomock.Any(), "testuser").Return(false, nil)
		g.CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *models.User) error {
				assert.Equal(t, "Test User", u.Name)
				u.ID = userID
				return nil
			})

		userDTO, err := uc.Register(context.Background(), cmd)
		require.NoError(t, err)
		assert.Equal(t, userID, userDTO.ID)
		assert.Equal(t, "testuser", userDTO.Username)
		assert.Equal(t, "Test User", userDTO.DisplayName)
	})

	t.Run("sad path- username taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockUserRepository(ctrl)
		uc := NewUserUsecase(mockRepo, logger.Logger{})

		mockRepo.EXPECT().UsernameExists(gomock.Any(), "testuser").Return(true, nil)

		userDTO, err := uc.Register(context.Background(), cmd)
		assert.ErrorIs(t, err, appErrors.ErrUsernameTaken)
		assert.Nil(t, userDTO)
	})

	t.Run("sad path- invalid username", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockUserRepository(ctrl)
		uc := NewUserUsecase(mockRepo, logger.Logger{})

		for _, name := range []string{"", "ab", "Alice", "no spaces", "dash-name"} {
			_, err := uc.Register(context.Background(), user.RegisterCommand{Username: name, DisplayName: "x"})
			assert.ErrorIs(t, err, appErrors.ErrInvalidUsername, name)
		}
	})

	t.Run("sad path- blank display name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockUserRepository(ctrl)
		uc := NewUserUsecase(mockRepo, logger.Logger{})

		_, err := uc.Register(context.Background(), user.RegisterCommand{Username: "testuser", DisplayName: "  "})
		assert.ErrorIs(t, err, appErrors.ErrMissingDisplayName)
	})

	t.Run("sad path- db down", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockUserRepository(ctrl)
		uc := NewUserUsecase(mockRepo, logger.Logger{})

		mockRepo.EXPECT().UsernameExists(gomock.Any(), "testuser").Return(false, errors.New("db down"))

		userDTO, err := uc.Register(context.Background(), cmd)
		assert.Equal(t, appErrors.CodeInternal, appErrors.CodeOf(err))
		assert.Nil(t, userDTO)
	})
}

func Test_UpdateDisplayName(t *testing.T) {
	userID := uuid.New()

	t.Run("happy path- trimmed name is saved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockUserRepository(ctrl)
		uc := NewUserUsecase(mockRepo, logger.Logger{})

		mockRepo.EXPECT().UpdateUserDisplayName(gomock.Any(), userID, "New Name").Return(nil)

		assert.NoError(t, uc.UpdateDisplayName(context.Background(), userID, " New Name "))
	})

	t.Run("sad path- unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockUserRepository(ctrl)
		uc := NewUserUsecase(mockRepo, logger.Logger{})

		mockRepo.EXPECT().UpdateUserDisplayName(gomock.Any(), userID, "New Name").Return(repository.ErrUserNotFound)

		err := uc.UpdateDisplayName(context.Background(), userID, "New Name")
		assert.ErrorIs(t, err, appErrors.ErrUserNotFound)
	})

	t.Run("sad path- empty name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockUserRepository(ctrl)
		uc := NewUserUsecase(mockRepo, logger.Logger{})

		err := uc.UpdateDisplayName(context.Background(), userID, "")
		assert.ErrorIs(t, err, appErrors.ErrMissingDisplayName)
	})
}

func Test_GetUserByUsername(t *testing.T) {
	validUser := &models.User{
		ID:        uuid.New(),
		Username:  "testuser",
		Name:      "Test User",
		CreatedAt: time.Now(),
	}

	t.Run("happy path- existing user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockUserRepository(ctrl)
		uc := NewUserUsecase(mockRepo, logger.Logger{})

		mockRepo.EXPECT().GetUserByUsername(gomock.Any(), "testuser").Return(validUser, nil)

		dto, err := uc.GetUserByUsername(context.Background(), "testuser")
		require.NoError(t, err)
		assert.Equal(t, validUser.ID, dto.ID)
		assert.Equal(t, validUser.CreatedAt, dto.DateJoined)
	})

	t.Run("happy path- by id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockUserRepository(ctrl)
		uc := NewUserUsecase(mockRepo, logger.Logger{})

		mockRepo.EXPECT().GetUserByID(gomock.Any(), validUser.ID).Return(validUser, nil)

		dto, err := uc.GetUserByID(context.Background(), validUser.ID)
		require.NoError(t, err)
		assert.Equal(t, "testuser", dto.Username)
	})

	t.Run("sad path- unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockUserRepository(ctrl)
		uc := NewUserUsecase(mockRepo, logger.Logger{})

		mockRepo.EXPECT().GetUserByUsername(gomock.Any(), "ghost").Return(nil, repository.ErrUserNotFound)

		_, err := uc.GetUserByUsername(context.Background(), "ghost")
		assert.ErrorIs(t, err, appErrors.ErrUserNotFound)
	})
}
