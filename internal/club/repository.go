package club

import (
	"context"

	"github.com/google/uuid"
	Club "github.com/robertwachen/fritterfrontend/internal/club/model"
)

type ClubRepository interface {
	// CreateClub stores the club and its owner as the first member.
	CreateClub(ctx context.Context, club *Club.Club) error
	GetClubByID(ctx context.Context, id uuid.UUID) (*Club.Club, error)
	// GetClubByName matches names ignoring case and surrounding spaces.
	GetClubByName(ctx context.Context, name string) (*Club.Club, error)
	UpdateClub(ctx context.Context, club *Club.Club) error
	// DeleteClub removes the club, its memberships and its freets.
	DeleteClub(ctx context.Context, id uuid.UUID) error
	ListClubNames(ctx context.Context) ([]string, error)

	GetMember(ctx context.Context, clubID, userID uuid.UUID) (*Club.ClubMember, error)
	UpsertMember(ctx context.Context, member *Club.ClubMember) error
	RemoveMember(ctx context.Context, clubID, userID uuid.UUID) error
	ListMembers(ctx context.Context, clubID uuid.UUID) ([]Club.ClubMember, error)
}
