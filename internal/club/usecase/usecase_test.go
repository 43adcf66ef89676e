package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robertwachen/fritterfrontend/internal/club"
	"github.com/robertwachen/fritterfrontend/internal/club/mocks"
	models "github.com/robertwachen/fritterfrontend/internal/club/model"
	"github.com/robertwachen/fritterfrontend/internal/club/repository"
	appErrors "github.com/robertwachen/fritterfrontend/pkg/errors"
	"github.com/robertwachen/fritterfrontend/pkg/logger"
)

func newUsecase(t *testing.T) (*ClubUsecase, *mocks.MockClubRepository) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockClubRepository(ctrl)
	return NewClubUsecase(mockRepo, logger.Logger{}), mockRepo
}

func TestClubUsecase_CreateClub(t *testing.T) {
	ownerID := uuid.New()

	t.Run("happy path - default rules and owner is a member", func(t *testing.T) {
		uc, mockRepo := newUsecase(t)

		mockRepo.EXPECT().
			CreateClub(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *models.Club) error {
				assert.Equal(t, "Chess", c.Name)
				assert.Equal(t, "No rules yet", c.Rules)
				assert.Equal(t, ownerID, c.OwnerID)
				c.ID = uuid.New()
				return nil
			})

		dto, err := uc.CreateClub(context.Background(), ownerID, club.CreateClubCommand{
			Name:    " Chess ",
			Privacy: models.PrivacyPrivate,
		})
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{ownerID}, dto.Members)
		assert.Equal(t, models.PrivacyPrivate, dto.Privacy)
	})

	t.Run("happy path - explicit rules kept", func(t *testing.T) {
		uc, mockRepo := newUsecase(t)
		rules := "no cheating"

		mockRepo.EXPECT().
			CreateClub(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *models.Club) error {
				assert.Equal(t, "no cheating", c.Rules)
				return nil
			})

		dto, err := uc.CreateClub(context.Background(), ownerID, club.CreateClubCommand{
			Name:    "Chess",
			Privacy: models.PrivacyPublic,
			Rules:   &rules,
		})
		require.NoError(t, err)
		assert.Equal(t, "no cheating", dto.Rules)
	})

	t.Run("sad path - explicitly empty rules", func(t *testing.T) {
		uc, _ := newUsecase(t)

		for _, rules := range []string{"", "   "} {
			_, err := uc.CreateClub(context.Background(), ownerID, club.CreateClubCommand{
				Name:    "Chess",
				Privacy: models.PrivacyPublic,
				Rules:   &rules,
			})
			assert.ErrorIs(t, err, appErrors.ErrMissingClubRules, "rules %q", rules)
		}
	})

	t.Run("sad path - home club name is reserved", func(t *testing.T) {
		uc, _ := newUsecase(t)

		for _, name := range []string{"Main", "main", " MAIN "} {
			_, err := uc.CreateClub(context.Background(), ownerID, club.CreateClubCommand{
				Name:    name,
				Privacy: models.PrivacySecret,
			})
			assert.ErrorIs(t, err, appErrors.ErrReservedClubName, name)
		}
	})

	t.Run("sad path - invalid name", func(t *testing.T) {
		uc, _ := newUsecase(t)

		_, err := uc.CreateClub(context.Background(), ownerID, club.CreateClubCommand{
			Name:    "chess club!",
			Privacy: models.PrivacyPublic,
		})
		assert.ErrorIs(t, err, appErrors.ErrInvalidClubName)
	})

	t.Run("sad path - invalid privacy", func(t *testing.T) {
		uc, _ := newUsecase(t)

		_, err := uc.CreateClub(context.Background(), ownerID, club.CreateClubCommand{
			Name:    "Chess",
			Privacy: "hidden",
		})
		assert.ErrorIs(t, err, appErrors.ErrInvalidPrivacy)
	})

	t.Run("sad path - name taken", func(t *testing.T) {
		uc, mockRepo := newUsecase(t)

		mockRepo.EXPECT().CreateClub(gomock.Any(), gomock.Any()).Return(repository.ErrClubNameTaken)

		_, err := uc.CreateClub(context.Background(), ownerID, club.CreateClubCommand{
			Name:    "chess",
			Privacy: models.PrivacyPublic,
		})
		assert.ErrorIs(t, err, appErrors.ErrClubNameTaken)
	})

	t.Run("sad path - storage failure", func(t *testing.T) {
		uc, mockRepo := newUsecase(t)

		mockRepo.EXPECT().CreateClub(gomock.Any(), gomock.Any()).Return(errors.New("boom"))

		_, err := uc.CreateClub(context.Background(), ownerID, club.CreateClubCommand{
			Name:    "Chess",
			Privacy: models.PrivacyPublic,
		})
		assert.Equal(t, appErrors.CodeInternal, appErrors.CodeOf(err))
	})
}

func TestClubUsecase_UpdateClub(t *testing.T) {
	ownerID := uuid.New()
	chess := func() *models.Club {
		return &models.Club{ID: uuid.New(), Name: "Chess", Privacy: models.PrivacyPublic, Rules: "be nice", OwnerID: ownerID}
	}

	t.Run("owner changes privacy", func(t *testing.T) {
		uc, mockRepo := newUsecase(t)
		c := chess()

		g := mockRepo.EXPECT()
		g.GetClubByName(gomock.Any(), "chess").Return(c, nil)
		g.UpdateClub(gomock.Any(), c).Return(nil)
		g.ListMembers(gomock.Any(), c.ID).Return([]models.ClubMember{
			{ClubID: c.ID, UserID: ownerID, Status: models.StatusMember},
		}, nil)

		dto, err := uc.UpdateClub(context.Background(), ownerID, "chess", club.UpdateClubCommand{Privacy: models.PrivacySecret})
		require.NoError(t, err)
		assert.Equal(t, models.PrivacySecret, dto.Privacy)
		assert.Equal(t, "be nice", dto.Rules)
	})

	t.Run("empty rules rejected", func(t *testing.T) {
		uc, _ := newUsecase(t)
		empty := ""

		_, err := uc.UpdateClub(context.Background(), ownerID, "chess", club.UpdateClubCommand{Rules: &empty})
		assert.ErrorIs(t, err, appErrors.ErrMissingClubRules)
	})

	t.Run("non owner rejected", func(t *testing.T) {
		uc, mockRepo := newUsecase(t)

		mockRepo.EXPECT().GetClubByName(gomock.Any(), "chess").Return(chess(), nil)

		_, err := uc.UpdateClub(context.Background(), uuid.New(), "chess", club.UpdateClubCommand{Privacy: models.PrivacyPrivate})
		assert.ErrorIs(t, err, appErrors.ErrNotClubOwner)
	})

	t.Run("unknown club", func(t *testing.T) {
		uc, mockRepo := newUsecase(t)

		mockRepo.EXPECT().GetClubByName(gomock.Any(), "go").Return(nil, repository.ErrClubNotFound)

		_, err := uc.UpdateClub(context.Background(), ownerID, "go", club.UpdateClubCommand{Privacy: models.PrivacyPrivate})
		assert.ErrorIs(t, err, appErrors.ErrUnknownClub)
	})
}

func TestClubUsecase_DeleteClub(t *testing.T) {
	ownerID := uuid.New()
	c := &models.Club{ID: uuid.New(), Name: "Chess", OwnerID: ownerID}

	uc, mockRepo := newUsecase(t)
	g := mockRepo.EXPECT()
	g.GetClubByName(gomock.Any(), "Chess").Return(c, nil).Times(2)
	g.DeleteClub(gomock.Any(), c.ID).Return(nil)

	assert.ErrorIs(t, uc.DeleteClub(context.Background(), uuid.New(), "Chess"), appErrors.ErrNotClubOwner)
	assert.NoError(t, uc.DeleteClub(context.Background(), ownerID, "Chess"))
}

func TestClubUsecase_Membership(t *testing.T) {
	ownerID := uuid.New()
	userID := uuid.New()

	t.Run("request to join private club is pending", func(t *testing.T) {
		uc, mockRepo := newUsecase(t)
		c := &models.Club{ID: uuid.New(), Name: "Chess", Privacy: models.PrivacyPrivate, OwnerID: ownerID}

		g := mockRepo.EXPECT()
		g.GetClubByName(gomock.Any(), "Chess").Return(c, nil)
		g.GetMember(gomock.Any(), c.ID, userID).Return(nil, repository.ErrMemberNotFound)
		g.UpsertMember(gomock.Any(), &models.ClubMember{ClubID: c.ID, UserID: userID, Status: models.StatusPending}).Return(nil)

		require.NoError(t, uc.RequestToJoin(context.Background(), userID, "Chess"))
	})

	t.Run("request to join public club admits directly", func(t *testing.T) {
		uc, mockRepo := newUsecase(t)
		c := &models.Club{ID: uuid.New(), Name: "Go", Privacy: models.PrivacyPublic, OwnerID: ownerID}

		g := mockRepo.EXPECT()
		g.GetClubByName(gomock.Any(), "Go").Return(c, nil)
		g.GetMember(gomock.Any(), c.ID, userID).Return(nil, repository.ErrMemberNotFound)
		g.UpsertMember(gomock.Any(), &models.ClubMember{ClubID: c.ID, UserID: userID, Status: models.StatusMember}).Return(nil)

		require.NoError(t, uc.RequestToJoin(context.Background(), userID, "Go"))
	})

	t.Run("existing member cannot request again", func(t *testing.T) {
		uc, mockRepo := newUsecase(t)
		c := &models.Club{ID: uuid.New(), Name: "Chess", Privacy: models.PrivacyPrivate, OwnerID: ownerID}

		g := mockRepo.EXPECT()
		g.GetClubByName(gomock.Any(), "Chess").Return(c, nil)
		g.GetMember(gomock.Any(), c.ID, userID).Return(&models.ClubMember{Status: models.StatusMember}, nil)

		assert.ErrorIs(t, uc.RequestToJoin(context.Background(), userID, "Chess"), appErrors.ErrAlreadyMember)
	})

	t.Run("owner admits pending member", func(t *testing.T) {
		uc, mockRepo := newUsecase(t)
		c := &models.Club{ID: uuid.New(), Name: "Chess", Privacy: models.PrivacyPrivate, OwnerID: ownerID}
		pending := &models.ClubMember{ClubID: c.ID, UserID: userID, Status: models.StatusPending}

		g := mockRepo.EXPECT()
		g.GetClubByName(gomock.Any(), "Chess").Return(c, nil)
		g.GetMember(gomock.Any(), c.ID, userID).Return(pending, nil)
		g.UpsertMember(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m *models.ClubMember) error {
			assert.Equal(t, models.StatusMember, m.Status)
			return nil
		})

		require.NoError(t, uc.AdmitMember(context.Background(), ownerID, "Chess", userID))
	})

	t.Run("admit without request", func(t *testing.T) {
		uc, mockRepo := newUsecase(t)
		c := &models.Club{ID: uuid.New(), Name: "Chess", OwnerID: ownerID}

		g := mockRepo.EXPECT()
		g.GetClubByName(gomock.Any(), "Chess").Return(c, nil)
		g.GetMember(gomock.Any(), c.ID, userID).Return(nil, repository.ErrMemberNotFound)

		assert.ErrorIs(t, uc.AdmitMember(context.Background(), ownerID, "Chess", userID), appErrors.ErrNoPendingRequest)
	})

	t.Run("owner cannot leave", func(t *testing.T) {
		uc, mockRepo := newUsecase(t)
		c := &models.Club{ID: uuid.New(), Name: "Chess", OwnerID: ownerID}

		mockRepo.EXPECT().GetClubByName(gomock.Any(), "Chess").Return(c, nil)

		assert.ErrorIs(t, uc.Leave(context.Background(), ownerID, "Chess"), appErrors.ErrOwnerCannotLeave)
	})

	t.Run("get club splits members and pending", func(t *testing.T) {
		uc, mockRepo := newUsecase(t)
		c := &models.Club{ID: uuid.New(), Name: "Chess", OwnerID: ownerID}

		g := mockRepo.EXPECT()
		g.GetClubByName(gomock.Any(), "Chess").Return(c, nil)
		g.ListMembers(gomock.Any(), c.ID).Return([]models.ClubMember{
			{UserID: ownerID, Status: models.StatusMember},
			{UserID: userID, Status: models.StatusPending},
		}, nil)

		dto, err := uc.GetClub(context.Background(), "Chess")
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{ownerID}, dto.Members)
		assert.Equal(t, []uuid.UUID{userID}, dto.PendingMembers)
	})
}
